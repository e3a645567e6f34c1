package usecase

import (
	"context"

	"github.com/google/uuid"

	"campaign-hub/internal/core/domain"
)

// ownedCampaign loads a campaign and checks that ownerID is its
// advertiser. A missing campaign is reported as domain.ErrNotFound, a
// foreign one as domain.ErrForbidden.
func (u *CampaignUseCase) ownedCampaign(ctx context.Context, op string, ownerID, campaignID uuid.UUID) (*domain.Campaign, error) {
	c, err := u.campaigns.Get(ctx, campaignID)
	if err != nil {
		return nil, u.fail(ctx, op, err, actor(ownerID), campaignAttr(campaignID))
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	if !c.OwnedBy(ownerID) {
		return nil, domain.ErrForbidden
	}
	return c, nil
}

func (u *CampaignUseCase) requireAdvertiser(ctx context.Context, op string, userID uuid.UUID) error {
	ok, err := u.profiles.HasAdvertiserProfile(ctx, userID)
	if err != nil {
		return u.fail(ctx, op, err, actor(userID))
	}
	if !ok {
		return domain.ErrOwnerProfileRequired
	}
	return nil
}

func (u *CampaignUseCase) requireInfluencer(ctx context.Context, op string, userID uuid.UUID) error {
	ok, err := u.profiles.HasInfluencerProfile(ctx, userID)
	if err != nil {
		return u.fail(ctx, op, err, actor(userID))
	}
	if !ok {
		return domain.ErrProfileRequired
	}
	return nil
}
