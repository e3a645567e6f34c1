package usecase

import (
	"context"

	"github.com/google/uuid"

	"campaign-hub/internal/core/domain"
	"campaign-hub/internal/core/port"
	"campaign-hub/internal/core/validation"
)

// Apply submits an application to a recruiting campaign. The store insert
// is itself gated on the campaign still recruiting and on the
// (campaign, influencer) unique key, so the checks below only shape the
// error for the common case.
func (u *CampaignUseCase) Apply(ctx context.Context, influencerID uuid.UUID, in domain.ApplicationInput) (*domain.Application, error) {
	const op = "apply"

	motivation, visit, err := validation.Application(in, u.today())
	if err != nil {
		return nil, err
	}
	if err = u.requireInfluencer(ctx, op, influencerID); err != nil {
		return nil, err
	}

	c, err := u.campaigns.Get(ctx, in.CampaignID)
	if err != nil {
		return nil, u.fail(ctx, op, err, actor(influencerID), campaignAttr(in.CampaignID))
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	if c.Status != domain.CampaignRecruiting {
		return nil, domain.ErrNotRecruiting
	}
	if visit.After(c.EndDate) {
		return nil, domain.ErrInvalidVisitDate
	}

	exists, err := u.applications.Exists(ctx, c.ID, influencerID)
	if err != nil {
		return nil, u.fail(ctx, op, err, actor(influencerID), campaignAttr(c.ID))
	}
	if exists {
		return nil, domain.ErrDuplicateApplication
	}

	a := &domain.Application{
		ID:           uuid.New(),
		CampaignID:   c.ID,
		InfluencerID: influencerID,
		Motivation:   motivation,
		VisitDate:    visit,
		Status:       domain.ApplicationSubmitted,
	}
	if err = u.applications.Create(ctx, a); err != nil {
		return nil, u.fail(ctx, op, err, actor(influencerID), campaignAttr(c.ID))
	}
	u.invalidate(ctx, c.ID)

	u.log.InfoContext(ctx, "application submitted", actor(influencerID), campaignAttr(c.ID))
	u.publish(ctx, domain.Event{
		Type:          domain.EventApplicationSubmitted,
		CampaignID:    c.ID,
		ActorID:       influencerID,
		Status:        string(a.Status),
		InfluencerIDs: []uuid.UUID{influencerID},
		Count:         1,
	})
	return a, nil
}

// ListMyApplications pages through the caller's applications, newest
// first unless asked otherwise.
func (u *CampaignUseCase) ListMyApplications(ctx context.Context, influencerID uuid.UUID, filter port.ApplicationFilter) (port.ApplicationPage, error) {
	const op = "list_my_applications"

	if filter.Status != nil && !filter.Status.Valid() {
		return port.ApplicationPage{}, domain.ErrInvalidInput.WithDetails(map[string]string{
			"status": "must be submitted, selected or rejected",
		})
	}
	switch filter.SortBy {
	case "":
		filter.SortBy = "applied_at"
	case "applied_at", "updated_at":
	default:
		return port.ApplicationPage{}, domain.ErrInvalidInput.WithDetails(map[string]string{
			"sortBy": "must be applied_at or updated_at",
		})
	}
	filter.Page = filter.Page.Normalize(defaultPageLimit, maxPageLimit)

	if err := u.requireInfluencer(ctx, op, influencerID); err != nil {
		return port.ApplicationPage{}, err
	}

	apps, total, err := u.applications.ListByInfluencer(ctx, influencerID, filter)
	if err != nil {
		return port.ApplicationPage{}, u.fail(ctx, op, err, actor(influencerID))
	}
	return port.ApplicationPage{
		Applications: apps,
		Pagination:   domain.NewPagination(filter.Page, total),
	}, nil
}
