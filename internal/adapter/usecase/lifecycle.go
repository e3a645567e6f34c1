package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"campaign-hub/internal/core/domain"
	"campaign-hub/internal/core/port"
	"campaign-hub/internal/core/validation"
)

// CreateCampaign validates the payload, checks the advertiser profile and
// stores a recruiting campaign. The monthly quota is enforced by the store
// under a per-advertiser lock.
func (u *CampaignUseCase) CreateCampaign(ctx context.Context, ownerID uuid.UUID, in domain.CampaignInput) (*domain.Campaign, error) {
	const op = "create_campaign"

	fields, err := validation.Campaign(in)
	if err != nil {
		return nil, err
	}
	if err = u.requireAdvertiser(ctx, op, ownerID); err != nil {
		return nil, err
	}

	c := &domain.Campaign{
		ID:             uuid.New(),
		AdvertiserID:   ownerID,
		CampaignFields: fields,
		Status:         domain.CampaignRecruiting,
	}
	if err = u.campaigns.Create(ctx, c, u.quota()); err != nil {
		return nil, u.fail(ctx, op, err, actor(ownerID))
	}

	u.log.InfoContext(ctx, "campaign created", actor(ownerID), campaignAttr(c.ID))
	u.publish(ctx, domain.Event{
		Type:       domain.EventCampaignCreated,
		CampaignID: c.ID,
		ActorID:    ownerID,
		Status:     string(c.Status),
	})
	return c, nil
}

// UpdateCampaign overwrites the editable fields. Fields are locked once
// the campaign leaves recruiting; the store re-checks the status in the
// same statement.
func (u *CampaignUseCase) UpdateCampaign(ctx context.Context, ownerID, campaignID uuid.UUID, in domain.CampaignInput) (*domain.Campaign, error) {
	const op = "update_campaign"

	c, err := u.ownedCampaign(ctx, op, ownerID, campaignID)
	if err != nil {
		return nil, err
	}
	if !c.Editable() {
		return nil, domain.ErrLocked
	}
	fields, err := validation.Campaign(in)
	if err != nil {
		return nil, err
	}

	updated, err := u.campaigns.UpdateFields(ctx, campaignID, fields)
	if err != nil {
		return nil, u.fail(ctx, op, err, actor(ownerID), campaignAttr(campaignID))
	}
	if updated == nil {
		return nil, domain.ErrLocked
	}
	u.invalidate(ctx, campaignID)
	return updated, nil
}

// DeleteCampaign removes the campaign and, by cascade, its applications.
func (u *CampaignUseCase) DeleteCampaign(ctx context.Context, ownerID, campaignID uuid.UUID) error {
	const op = "delete_campaign"

	if _, err := u.ownedCampaign(ctx, op, ownerID, campaignID); err != nil {
		return err
	}
	deleted, err := u.campaigns.Delete(ctx, campaignID, ownerID)
	if err != nil {
		return u.fail(ctx, op, err, actor(ownerID), campaignAttr(campaignID))
	}
	if !deleted {
		return domain.ErrNotFound
	}
	u.invalidate(ctx, campaignID)

	u.log.InfoContext(ctx, "campaign deleted", actor(ownerID), campaignAttr(campaignID))
	return nil
}

// TransitionStatus closes or early-terminates a recruiting campaign.
// Early termination stamps today's date and the optional reason; closing
// clears both.
func (u *CampaignUseCase) TransitionStatus(ctx context.Context, ownerID, campaignID uuid.UUID, change port.StatusChange) (*domain.Campaign, error) {
	const op = "transition_status"

	if change.Target != domain.CampaignClosed && change.Target != domain.CampaignTerminatedEarly {
		return nil, domain.ErrInvalidInput.WithDetails(map[string]string{
			"status": "must be closed or terminated_early",
		})
	}
	var reason *string
	if change.Target == domain.CampaignTerminatedEarly && change.Reason != nil {
		if err := validation.TerminationReason(*change.Reason); err != nil {
			return nil, err
		}
		if r := strings.TrimSpace(*change.Reason); r != "" {
			reason = &r
		}
	}

	c, err := u.ownedCampaign(ctx, op, ownerID, campaignID)
	if err != nil {
		return nil, err
	}
	if !c.CanTransitionTo(change.Target) {
		return nil, domain.ErrInvalidTransition
	}

	var term *port.Termination
	if change.Target == domain.CampaignTerminatedEarly {
		today := u.today()
		if !c.Started(today) {
			return nil, domain.ErrNotStarted
		}
		term = &port.Termination{Date: today, Reason: reason}
	}

	updated, err := u.campaigns.Transition(ctx, campaignID, domain.CampaignRecruiting, change.Target, term)
	if err != nil {
		return nil, u.fail(ctx, op, err, actor(ownerID), campaignAttr(campaignID))
	}
	if updated == nil {
		return nil, domain.ErrInvalidTransition
	}
	u.invalidate(ctx, campaignID)

	u.log.InfoContext(ctx, "campaign status changed",
		actor(ownerID), campaignAttr(campaignID), slog.String("status", string(updated.Status)))
	u.publish(ctx, domain.Event{
		Type:       domain.EventCampaignStatusChanged,
		CampaignID: campaignID,
		ActorID:    ownerID,
		Status:     string(updated.Status),
	})
	return updated, nil
}
