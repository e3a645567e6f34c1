package domain

import "github.com/google/uuid"

// CampaignInput is the unvalidated payload of a create or update request.
// Dates use DateLayout.
type CampaignInput struct {
	Title            string
	Description      string
	Mission          string
	Benefits         string
	Location         string
	RecruitmentCount int
	StartDate        string
	EndDate          string
}

// ApplicationInput is the unvalidated payload of an apply request.
type ApplicationInput struct {
	CampaignID uuid.UUID
	Motivation string
	VisitDate  string
}
