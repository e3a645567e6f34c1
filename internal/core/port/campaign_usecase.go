package port

import (
	"context"

	"github.com/google/uuid"

	"campaign-hub/internal/core/domain"
)

// CampaignUseCase is the primary port into the campaign lifecycle and
// applicant selection workflow. Every failure it returns is a
// *domain.Error; infrastructure failures surface as domain.ErrInternal.
type CampaignUseCase interface {
	// CreateCampaign validates the payload, requires an advertiser
	// profile and the monthly creation quota, then stores a recruiting
	// campaign.
	CreateCampaign(ctx context.Context, ownerID uuid.UUID, in domain.CampaignInput) (*domain.Campaign, error)
	// UpdateCampaign overwrites the editable fields of a recruiting
	// campaign owned by ownerID.
	UpdateCampaign(ctx context.Context, ownerID, campaignID uuid.UUID, in domain.CampaignInput) (*domain.Campaign, error)
	// DeleteCampaign removes a campaign and its applications.
	DeleteCampaign(ctx context.Context, ownerID, campaignID uuid.UUID) error
	// TransitionStatus closes or early-terminates a recruiting campaign.
	TransitionStatus(ctx context.Context, ownerID, campaignID uuid.UUID, change StatusChange) (*domain.Campaign, error)

	// SelectInfluencers marks submitted applicants as selected, never
	// exceeding the recruitment count, and completes the campaign once
	// the count is reached.
	SelectInfluencers(ctx context.Context, ownerID, campaignID uuid.UUID, influencerIDs []uuid.UUID) (DecisionResult, error)
	// RejectInfluencers marks submitted applicants as rejected.
	RejectInfluencers(ctx context.Context, ownerID, campaignID uuid.UUID, influencerIDs []uuid.UUID) (DecisionResult, error)
	// ApplicantBoard lists a campaign's applicants for its owner.
	ApplicantBoard(ctx context.Context, ownerID, campaignID uuid.UUID) (*domain.ApplicantBoard, error)

	// Apply submits an influencer's application to a recruiting campaign.
	Apply(ctx context.Context, influencerID uuid.UUID, in domain.ApplicationInput) (*domain.Application, error)
	// ListMyApplications pages through an influencer's applications.
	ListMyApplications(ctx context.Context, influencerID uuid.UUID, filter ApplicationFilter) (ApplicationPage, error)

	// GetCampaign returns any campaign by id.
	GetCampaign(ctx context.Context, campaignID uuid.UUID) (*domain.Campaign, error)
	// ListCampaigns pages through campaigns, optionally by status.
	ListCampaigns(ctx context.Context, status *domain.CampaignStatus, page domain.PageRequest) (CampaignPage, error)
	// ListAdvertiserCampaigns pages through the caller's own campaigns.
	ListAdvertiserCampaigns(ctx context.Context, ownerID uuid.UUID, page domain.PageRequest) (CampaignPage, error)
	// GetAdvertiserCampaign returns one of the caller's own campaigns.
	GetAdvertiserCampaign(ctx context.Context, ownerID, campaignID uuid.UUID) (*domain.Campaign, error)
}

// StatusChange is an advertiser-requested status transition.
type StatusChange struct {
	Target domain.CampaignStatus
	Reason *string
}

// DecisionResult reports a selection or rejection. Updated counts the
// applications this call actually changed.
type DecisionResult struct {
	Updated        int
	CampaignStatus domain.CampaignStatus
}

// CampaignPage is one page of campaign summaries.
type CampaignPage struct {
	Campaigns  []domain.CampaignSummary
	Pagination domain.Pagination
}

// ApplicationPage is one page of an influencer's applications.
type ApplicationPage struct {
	Applications []domain.MyApplication
	Pagination   domain.Pagination
}
