package domain

import (
	"time"

	"github.com/google/uuid"
)

// ApplicationStatus is the decision state of a single application.
type ApplicationStatus string

const (
	ApplicationSubmitted ApplicationStatus = "submitted"
	ApplicationSelected  ApplicationStatus = "selected"
	ApplicationRejected  ApplicationStatus = "rejected"
)

// Valid reports whether s is a known application status.
func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationSubmitted, ApplicationSelected, ApplicationRejected:
		return true
	}
	return false
}

// Decided reports whether s is terminal.
func (s ApplicationStatus) Decided() bool {
	return s == ApplicationSelected || s == ApplicationRejected
}

// Application is an influencer's request to join a campaign. At most one
// application exists per (CampaignID, InfluencerID).
type Application struct {
	ID           uuid.UUID
	CampaignID   uuid.UUID
	InfluencerID uuid.UUID
	Motivation   string
	VisitDate    time.Time
	Status       ApplicationStatus
	AppliedAt    time.Time
	UpdatedAt    time.Time
}

// Applicant is an application enriched with the influencer's public
// profile, as shown on the advertiser's applicant board.
type Applicant struct {
	Application
	InfluencerName string
	ChannelName    string
	FollowerCount  int
}

// ApplicantBoard is the owner view of a campaign and its applicants.
type ApplicantBoard struct {
	CampaignID       uuid.UUID
	Title            string
	Status           CampaignStatus
	RecruitmentCount int
	SelectedCount    int
	Applicants       []Applicant
}

// MyApplication is an influencer's own application with campaign context.
type MyApplication struct {
	Application
	CampaignTitle string
	CompanyName   string
}
