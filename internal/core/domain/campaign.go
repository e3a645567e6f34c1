package domain

import (
	"time"

	"github.com/google/uuid"
)

// DateLayout is the wire and storage format for calendar dates.
const DateLayout = "2006-01-02"

// CampaignStatus is the recruitment state of a campaign.
type CampaignStatus string

const (
	CampaignRecruiting        CampaignStatus = "recruiting"
	CampaignClosed            CampaignStatus = "closed"
	CampaignTerminatedEarly   CampaignStatus = "terminated_early"
	CampaignSelectionComplete CampaignStatus = "selection_complete"
)

// Valid reports whether s is a known campaign status.
func (s CampaignStatus) Valid() bool {
	switch s {
	case CampaignRecruiting, CampaignClosed, CampaignTerminatedEarly, CampaignSelectionComplete:
		return true
	}
	return false
}

// Campaign is a time-boxed recruitment unit owned by one advertiser.
// StartDate and EndDate are calendar dates held at UTC midnight.
type Campaign struct {
	ID           uuid.UUID
	AdvertiserID uuid.UUID
	CampaignFields
	Status                 CampaignStatus
	EarlyTerminationDate   *time.Time
	EarlyTerminationReason *string
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// CampaignFields is the editable part of a campaign. It is only mutable
// while the campaign is recruiting.
type CampaignFields struct {
	Title            string
	Description      string
	Mission          string
	Benefits         string
	Location         string
	RecruitmentCount int
	StartDate        time.Time
	EndDate          time.Time
}

// OwnedBy reports whether userID is the owning advertiser.
func (c *Campaign) OwnedBy(userID uuid.UUID) bool {
	return c.AdvertiserID == userID
}

// Editable reports whether the editable field set may be changed.
func (c *Campaign) Editable() bool {
	return c.Status == CampaignRecruiting
}

// CanTransitionTo reports whether an advertiser-initiated transition from
// the current status to target is legal. Only closing and early
// termination are advertiser commands, and both require recruiting.
func (c *Campaign) CanTransitionTo(target CampaignStatus) bool {
	switch target {
	case CampaignClosed, CampaignTerminatedEarly:
		return c.Status == CampaignRecruiting
	default:
		return false
	}
}

// Started reports whether the campaign start date is on or before today.
func (c *Campaign) Started(today time.Time) bool {
	return !today.Before(c.StartDate)
}

// CampaignSummary is the compact projection used by list views.
type CampaignSummary struct {
	ID               uuid.UUID
	Title            string
	Status           CampaignStatus
	RecruitmentCount int
	StartDate        time.Time
	EndDate          time.Time
	CreatedAt        time.Time
	ApplicationCount int
}
