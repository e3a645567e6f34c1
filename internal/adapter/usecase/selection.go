package usecase

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"campaign-hub/internal/core/domain"
	"campaign-hub/internal/core/port"
)

// SelectInfluencers marks submitted applicants selected. The capacity
// check here is advisory; MarkSelected repeats it under the campaign lock
// and its Updated count is the ground truth. Reaching the recruitment
// count promotes the campaign to selection_complete.
func (u *CampaignUseCase) SelectInfluencers(ctx context.Context, ownerID, campaignID uuid.UUID, influencerIDs []uuid.UUID) (port.DecisionResult, error) {
	const op = "select_influencers"

	c, ids, err := u.prepareDecision(ctx, op, ownerID, campaignID, influencerIDs)
	if err != nil {
		return port.DecisionResult{}, err
	}

	selected, err := u.applications.CountByStatus(ctx, campaignID, domain.ApplicationSelected)
	if err != nil {
		return port.DecisionResult{}, u.fail(ctx, op, err, actor(ownerID), campaignAttr(campaignID))
	}
	if selected+len(ids) > c.RecruitmentCount {
		return port.DecisionResult{}, domain.ErrCapacityExceeded
	}

	out, err := u.applications.MarkSelected(ctx, campaignID, ids)
	if err != nil {
		return port.DecisionResult{}, u.fail(ctx, op, err, actor(ownerID), campaignAttr(campaignID))
	}
	if out.Updated == 0 {
		return port.DecisionResult{}, domain.ErrNoOp
	}
	u.publish(ctx, domain.Event{
		Type:          domain.EventApplicationsDecided,
		CampaignID:    campaignID,
		ActorID:       ownerID,
		Status:        string(domain.ApplicationSelected),
		InfluencerIDs: ids,
		Count:         out.Updated,
	})

	status := domain.CampaignClosed
	if out.AlreadySelected+out.Updated >= c.RecruitmentCount {
		promoted, err := u.campaigns.PromoteSelectionComplete(ctx, campaignID)
		switch {
		case err != nil:
			// The selections are committed; report them and leave the
			// campaign closed.
			u.log.ErrorContext(ctx, "selection complete promotion failed",
				actor(ownerID), campaignAttr(campaignID), slog.Any("error", err))
		case promoted:
			status = domain.CampaignSelectionComplete
			u.publish(ctx, domain.Event{
				Type:       domain.EventCampaignStatusChanged,
				CampaignID: campaignID,
				ActorID:    ownerID,
				Status:     string(status),
			})
		}
	}
	u.invalidate(ctx, campaignID)

	u.log.InfoContext(ctx, "influencers selected", actor(ownerID), campaignAttr(campaignID),
		slog.Int("updated", out.Updated), slog.String("status", string(status)))
	return port.DecisionResult{Updated: out.Updated, CampaignStatus: status}, nil
}

// RejectInfluencers marks submitted applicants rejected. Capacity and the
// campaign status are never touched.
func (u *CampaignUseCase) RejectInfluencers(ctx context.Context, ownerID, campaignID uuid.UUID, influencerIDs []uuid.UUID) (port.DecisionResult, error) {
	const op = "reject_influencers"

	c, ids, err := u.prepareDecision(ctx, op, ownerID, campaignID, influencerIDs)
	if err != nil {
		return port.DecisionResult{}, err
	}

	n, err := u.applications.MarkRejected(ctx, campaignID, ids)
	if err != nil {
		return port.DecisionResult{}, u.fail(ctx, op, err, actor(ownerID), campaignAttr(campaignID))
	}
	if n == 0 {
		return port.DecisionResult{}, domain.ErrNoOp
	}
	u.invalidate(ctx, campaignID)
	u.publish(ctx, domain.Event{
		Type:          domain.EventApplicationsDecided,
		CampaignID:    campaignID,
		ActorID:       ownerID,
		Status:        string(domain.ApplicationRejected),
		InfluencerIDs: ids,
		Count:         n,
	})

	u.log.InfoContext(ctx, "influencers rejected", actor(ownerID), campaignAttr(campaignID), slog.Int("updated", n))
	return port.DecisionResult{Updated: n, CampaignStatus: c.Status}, nil
}

// prepareDecision runs the checks shared by selection and rejection:
// ownership, the closed gate, id dedup, existence and the
// already-processed check. It returns the campaign and the unique ids.
func (u *CampaignUseCase) prepareDecision(ctx context.Context, op string, ownerID, campaignID uuid.UUID, influencerIDs []uuid.UUID) (*domain.Campaign, []uuid.UUID, error) {
	if len(influencerIDs) == 0 {
		return nil, nil, domain.ErrInvalidInput.WithDetails(map[string]string{
			"influencerIds": "must not be empty",
		})
	}

	c, err := u.ownedCampaign(ctx, op, ownerID, campaignID)
	if err != nil {
		return nil, nil, err
	}
	if c.Status != domain.CampaignClosed {
		return nil, nil, domain.ErrCampaignNotClosed
	}

	ids := dedupe(influencerIDs)
	apps, err := u.applications.FindByInfluencers(ctx, campaignID, ids)
	if err != nil {
		return nil, nil, u.fail(ctx, op, err, actor(ownerID), campaignAttr(campaignID))
	}
	if len(apps) != len(ids) {
		return nil, nil, domain.ErrApplicantsNotFound
	}
	for _, a := range apps {
		if a.Status != domain.ApplicationSubmitted {
			return nil, nil, domain.ErrAlreadyProcessed
		}
	}
	return c, ids, nil
}

// dedupe drops repeated ids, keeping first-seen order.
func dedupe(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
