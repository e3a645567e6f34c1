package usecase

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"campaign-hub/internal/core/domain"
	"campaign-hub/internal/core/port"
)

// ApplicantBoard returns the campaign summary and its applicants. Boards
// are served from the cache when possible; ownership is always checked
// against the store first. A rebuilt board is cached under the generation
// read before the applicants, so a selection that commits in between
// voids the write.
func (u *CampaignUseCase) ApplicantBoard(ctx context.Context, ownerID, campaignID uuid.UUID) (*domain.ApplicantBoard, error) {
	const op = "applicant_board"

	c, err := u.ownedCampaign(ctx, op, ownerID, campaignID)
	if err != nil {
		return nil, err
	}

	gen, genErr := u.cache.Generation(ctx, campaignID)
	if genErr != nil {
		u.log.WarnContext(ctx, "applicant cache generation read failed", campaignAttr(campaignID), slog.Any("error", genErr))
	}

	board, err := u.cache.Get(ctx, campaignID)
	if err != nil {
		u.log.WarnContext(ctx, "applicant cache read failed", campaignAttr(campaignID), slog.Any("error", err))
	}
	if board != nil && board.Status == c.Status {
		return board, nil
	}

	applicants, err := u.applications.ListApplicants(ctx, campaignID)
	if err != nil {
		return nil, u.fail(ctx, op, err, actor(ownerID), campaignAttr(campaignID))
	}
	board = &domain.ApplicantBoard{
		CampaignID:       c.ID,
		Title:            c.Title,
		Status:           c.Status,
		RecruitmentCount: c.RecruitmentCount,
		Applicants:       applicants,
	}
	for _, a := range applicants {
		if a.Status == domain.ApplicationSelected {
			board.SelectedCount++
		}
	}

	if genErr != nil {
		return board, nil
	}
	if err = u.cache.Set(ctx, board, gen); err != nil {
		u.log.WarnContext(ctx, "applicant cache write failed", campaignAttr(campaignID), slog.Any("error", err))
	}
	return board, nil
}

// GetCampaign returns any campaign by id.
func (u *CampaignUseCase) GetCampaign(ctx context.Context, campaignID uuid.UUID) (*domain.Campaign, error) {
	c, err := u.campaigns.Get(ctx, campaignID)
	if err != nil {
		return nil, u.fail(ctx, "get_campaign", err, campaignAttr(campaignID))
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return c, nil
}

// ListCampaigns pages through all campaigns, optionally by status.
func (u *CampaignUseCase) ListCampaigns(ctx context.Context, status *domain.CampaignStatus, page domain.PageRequest) (port.CampaignPage, error) {
	if status != nil && !status.Valid() {
		return port.CampaignPage{}, domain.ErrInvalidInput.WithDetails(map[string]string{
			"status": "unknown campaign status",
		})
	}
	page = page.Normalize(defaultPageLimit, maxPageLimit)

	items, total, err := u.campaigns.List(ctx, status, page)
	if err != nil {
		return port.CampaignPage{}, u.fail(ctx, "list_campaigns", err)
	}
	return port.CampaignPage{Campaigns: items, Pagination: domain.NewPagination(page, total)}, nil
}

// ListAdvertiserCampaigns pages through the caller's own campaigns.
func (u *CampaignUseCase) ListAdvertiserCampaigns(ctx context.Context, ownerID uuid.UUID, page domain.PageRequest) (port.CampaignPage, error) {
	const op = "list_advertiser_campaigns"

	if err := u.requireAdvertiser(ctx, op, ownerID); err != nil {
		return port.CampaignPage{}, err
	}
	page = page.Normalize(defaultPageLimit, maxPageLimit)

	items, total, err := u.campaigns.ListByAdvertiser(ctx, ownerID, page)
	if err != nil {
		return port.CampaignPage{}, u.fail(ctx, op, err, actor(ownerID))
	}
	return port.CampaignPage{Campaigns: items, Pagination: domain.NewPagination(page, total)}, nil
}

// GetAdvertiserCampaign returns one of the caller's campaigns.
func (u *CampaignUseCase) GetAdvertiserCampaign(ctx context.Context, ownerID, campaignID uuid.UUID) (*domain.Campaign, error) {
	return u.ownedCampaign(ctx, "get_advertiser_campaign", ownerID, campaignID)
}
