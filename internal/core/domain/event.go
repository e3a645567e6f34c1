package domain

import (
	"time"

	"github.com/google/uuid"
)

// EventType names a fact published after a committed state change.
type EventType string

const (
	EventCampaignCreated       EventType = "campaign.created"
	EventCampaignStatusChanged EventType = "campaign.status_changed"
	EventApplicationSubmitted  EventType = "application.submitted"
	EventApplicationsDecided   EventType = "application.decided"
)

// Event describes a committed change to a campaign or its applications.
// Status carries the new campaign status for campaign events and the
// decision (selected or rejected) for application.decided.
type Event struct {
	Type          EventType
	CampaignID    uuid.UUID
	ActorID       uuid.UUID
	Status        string
	InfluencerIDs []uuid.UUID
	Count         int
	OccurredAt    time.Time
}
