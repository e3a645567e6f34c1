package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"campaign-hub/internal/core/domain"
)

// Quota bounds how many campaigns an advertiser may create whose creation
// time falls in [From, To).
type Quota struct {
	Limit int
	From  time.Time
	To    time.Time
}

// Termination is recorded when a campaign is terminated early.
type Termination struct {
	Date   time.Time
	Reason *string
}

// SelectionOutcome is what the store observed while marking applications
// selected under the campaign lock. Updated is the authoritative number of
// rows that moved from submitted to selected.
type SelectionOutcome struct {
	AlreadySelected int
	Updated         int
}

// CampaignRepository is the campaign entity store. Lookups return a nil
// campaign and nil error when the row does not exist. All mutations are
// conditional on the state the caller expects, and report through their
// result whether a row actually changed.
type CampaignRepository interface {
	// Create inserts c with status recruiting, provided the owner has
	// created fewer than quota.Limit campaigns inside the quota window.
	// The count and insert are serialized per advertiser. It fails with
	// domain.ErrCreationLimitExceeded when the quota is used up.
	Create(ctx context.Context, c *domain.Campaign, quota Quota) error
	// Get returns a campaign by id.
	Get(ctx context.Context, id uuid.UUID) (*domain.Campaign, error)
	// UpdateFields overwrites the editable fields only while the campaign
	// is still recruiting. It returns nil when no row matched.
	UpdateFields(ctx context.Context, id uuid.UUID, fields domain.CampaignFields) (*domain.Campaign, error)
	// Delete removes the campaign owned by advertiserID together with its
	// applications. It reports whether a row was removed.
	Delete(ctx context.Context, id, advertiserID uuid.UUID) (bool, error)
	// Transition moves the campaign from one status to another and sets
	// or clears the termination fields. It returns nil when the campaign
	// was no longer in status from.
	Transition(ctx context.Context, id uuid.UUID, from, to domain.CampaignStatus, termination *Termination) (*domain.Campaign, error)
	// PromoteSelectionComplete moves a closed campaign to
	// selection_complete and reports whether it did.
	PromoteSelectionComplete(ctx context.Context, id uuid.UUID) (bool, error)
	// ListByAdvertiser pages through an advertiser's campaigns, newest
	// first, and returns the total count.
	ListByAdvertiser(ctx context.Context, advertiserID uuid.UUID, page domain.PageRequest) ([]domain.CampaignSummary, int, error)
	// List pages through all campaigns, optionally filtered by status.
	List(ctx context.Context, status *domain.CampaignStatus, page domain.PageRequest) ([]domain.CampaignSummary, int, error)
}

// ApplicationFilter narrows an influencer's application list.
type ApplicationFilter struct {
	Status *domain.ApplicationStatus
	// SortBy is "applied_at" or "updated_at".
	SortBy    string
	Ascending bool
	Page      domain.PageRequest
}

// ApplicationRepository is the application entity store.
type ApplicationRepository interface {
	// Create inserts a submitted application provided the campaign is
	// still recruiting. It fails with domain.ErrDuplicateApplication when
	// the (campaign, influencer) pair exists and domain.ErrNotRecruiting
	// when the campaign stopped recruiting.
	Create(ctx context.Context, a *domain.Application) error
	// Exists reports whether the influencer applied to the campaign.
	Exists(ctx context.Context, campaignID, influencerID uuid.UUID) (bool, error)
	// FindByInfluencers returns the campaign's applications made by any of
	// influencerIDs.
	FindByInfluencers(ctx context.Context, campaignID uuid.UUID, influencerIDs []uuid.UUID) ([]domain.Application, error)
	// CountByStatus counts the campaign's applications in status.
	CountByStatus(ctx context.Context, campaignID uuid.UUID, status domain.ApplicationStatus) (int, error)
	// MarkSelected locks the campaign, then moves the still-submitted
	// applications of influencerIDs to selected. It fails with
	// domain.ErrCampaignNotClosed when the campaign is not closed and
	// domain.ErrCapacityExceeded when the pending rows would overflow the
	// recruitment count. Updated is zero when nothing was pending.
	MarkSelected(ctx context.Context, campaignID uuid.UUID, influencerIDs []uuid.UUID) (SelectionOutcome, error)
	// MarkRejected moves the still-submitted applications of influencerIDs
	// to rejected while the campaign is closed, returning the number of
	// rows changed.
	MarkRejected(ctx context.Context, campaignID uuid.UUID, influencerIDs []uuid.UUID) (int, error)
	// ListApplicants returns the campaign's applications with influencer
	// profile data, newest first.
	ListApplicants(ctx context.Context, campaignID uuid.UUID) ([]domain.Applicant, error)
	// ListByInfluencer pages through an influencer's applications.
	ListByInfluencer(ctx context.Context, influencerID uuid.UUID, filter ApplicationFilter) ([]domain.MyApplication, int, error)
}

// ProfileRepository answers profile existence questions owned by the
// surrounding profile service.
type ProfileRepository interface {
	HasAdvertiserProfile(ctx context.Context, userID uuid.UUID) (bool, error)
	HasInfluencerProfile(ctx context.Context, userID uuid.UUID) (bool, error)
}
