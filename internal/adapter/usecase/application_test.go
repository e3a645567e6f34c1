package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"campaign-hub/internal/core/domain"
	"campaign-hub/internal/core/port"
)

func applyInput(campaignID uuid.UUID, visit string) domain.ApplicationInput {
	return domain.ApplicationInput{
		CampaignID: campaignID,
		Motivation: "I review restaurants in this area every week.",
		VisitDate:  visit,
	}
}

func TestApply(t *testing.T) {
	influencer := uuid.New()

	t.Run("submits", func(t *testing.T) {
		f := newFixture(t)
		camp := campaignFixture(uuid.New(), domain.CampaignRecruiting, 2)
		f.profiles.EXPECT().HasInfluencerProfile(mock.Anything, influencer).Return(true, nil)
		f.campaigns.EXPECT().Get(mock.Anything, camp.ID).Return(camp, nil)
		f.applications.EXPECT().Exists(mock.Anything, camp.ID, influencer).Return(false, nil)
		f.applications.EXPECT().Create(mock.Anything, mock.AnythingOfType("*domain.Application")).Return(nil)
		f.cache.EXPECT().Invalidate(mock.Anything, camp.ID).Return(nil)

		a, err := f.svc.Apply(context.Background(), influencer, applyInput(camp.ID, "2025-03-31"))
		require.NoError(t, err)
		assert.Equal(t, domain.ApplicationSubmitted, a.Status)
		assert.Equal(t, influencer, a.InfluencerID)
		assert.Equal(t, date(2025, time.March, 31), a.VisitDate)
	})

	t.Run("visit after end date", func(t *testing.T) {
		f := newFixture(t)
		camp := campaignFixture(uuid.New(), domain.CampaignRecruiting, 2)
		f.profiles.EXPECT().HasInfluencerProfile(mock.Anything, influencer).Return(true, nil)
		f.campaigns.EXPECT().Get(mock.Anything, camp.ID).Return(camp, nil)

		_, err := f.svc.Apply(context.Background(), influencer, applyInput(camp.ID, "2025-04-01"))
		require.ErrorIs(t, err, domain.ErrInvalidVisitDate)
	})

	t.Run("visit in the past", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.svc.Apply(context.Background(), influencer, applyInput(uuid.New(), "2025-03-14"))
		require.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("applies twice", func(t *testing.T) {
		f := newFixture(t)
		camp := campaignFixture(uuid.New(), domain.CampaignRecruiting, 2)
		f.profiles.EXPECT().HasInfluencerProfile(mock.Anything, influencer).Return(true, nil)
		f.campaigns.EXPECT().Get(mock.Anything, camp.ID).Return(camp, nil)
		f.applications.EXPECT().Exists(mock.Anything, camp.ID, influencer).Return(false, nil).Once()
		f.applications.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()
		f.cache.EXPECT().Invalidate(mock.Anything, camp.ID).Return(nil).Once()

		_, err := f.svc.Apply(context.Background(), influencer, applyInput(camp.ID, "2025-03-20"))
		require.NoError(t, err)

		f.applications.EXPECT().Exists(mock.Anything, camp.ID, influencer).Return(true, nil).Once()
		_, err = f.svc.Apply(context.Background(), influencer, applyInput(camp.ID, "2025-03-20"))
		require.ErrorIs(t, err, domain.ErrDuplicateApplication)
	})

	t.Run("duplicate caught by store", func(t *testing.T) {
		f := newFixture(t)
		camp := campaignFixture(uuid.New(), domain.CampaignRecruiting, 2)
		f.profiles.EXPECT().HasInfluencerProfile(mock.Anything, influencer).Return(true, nil)
		f.campaigns.EXPECT().Get(mock.Anything, camp.ID).Return(camp, nil)
		f.applications.EXPECT().Exists(mock.Anything, camp.ID, influencer).Return(false, nil)
		f.applications.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrDuplicateApplication)

		_, err := f.svc.Apply(context.Background(), influencer, applyInput(camp.ID, "2025-03-20"))
		require.ErrorIs(t, err, domain.ErrDuplicateApplication)
	})

	t.Run("campaign closed", func(t *testing.T) {
		f := newFixture(t)
		camp := campaignFixture(uuid.New(), domain.CampaignClosed, 2)
		f.profiles.EXPECT().HasInfluencerProfile(mock.Anything, influencer).Return(true, nil)
		f.campaigns.EXPECT().Get(mock.Anything, camp.ID).Return(camp, nil)

		_, err := f.svc.Apply(context.Background(), influencer, applyInput(camp.ID, "2025-03-20"))
		require.ErrorIs(t, err, domain.ErrNotRecruiting)
	})

	t.Run("no campaign", func(t *testing.T) {
		f := newFixture(t)
		id := uuid.New()
		f.profiles.EXPECT().HasInfluencerProfile(mock.Anything, influencer).Return(true, nil)
		f.campaigns.EXPECT().Get(mock.Anything, id).Return(nil, nil)

		_, err := f.svc.Apply(context.Background(), influencer, applyInput(id, "2025-03-20"))
		require.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("no influencer profile", func(t *testing.T) {
		f := newFixture(t)
		f.profiles.EXPECT().HasInfluencerProfile(mock.Anything, influencer).Return(false, nil)

		_, err := f.svc.Apply(context.Background(), influencer, applyInput(uuid.New(), "2025-03-20"))
		require.ErrorIs(t, err, domain.ErrProfileRequired)
	})
}

func TestListMyApplications(t *testing.T) {
	influencer := uuid.New()

	t.Run("defaults", func(t *testing.T) {
		f := newFixture(t)
		f.profiles.EXPECT().HasInfluencerProfile(mock.Anything, influencer).Return(true, nil)
		f.applications.EXPECT().
			ListByInfluencer(mock.Anything, influencer, port.ApplicationFilter{
				SortBy: "applied_at",
				Page:   domain.PageRequest{Page: 1, Limit: 20},
			}).
			Return([]domain.MyApplication{{CampaignTitle: "Spring tasting"}}, 21, nil)

		page, err := f.svc.ListMyApplications(context.Background(), influencer, port.ApplicationFilter{})
		require.NoError(t, err)
		assert.Len(t, page.Applications, 1)
		assert.Equal(t, domain.Pagination{Page: 1, Limit: 20, Total: 21, TotalPages: 2, HasNext: true}, page.Pagination)
	})

	t.Run("limit is capped", func(t *testing.T) {
		f := newFixture(t)
		selected := domain.ApplicationSelected
		f.profiles.EXPECT().HasInfluencerProfile(mock.Anything, influencer).Return(true, nil)
		f.applications.EXPECT().
			ListByInfluencer(mock.Anything, influencer, mock.MatchedBy(func(filter port.ApplicationFilter) bool {
				return filter.Page.Limit == 50 && filter.SortBy == "updated_at" && *filter.Status == selected
			})).
			Return(nil, 0, nil)

		_, err := f.svc.ListMyApplications(context.Background(), influencer, port.ApplicationFilter{
			Status: &selected,
			SortBy: "updated_at",
			Page:   domain.PageRequest{Page: 1, Limit: 500},
		})
		require.NoError(t, err)
	})

	t.Run("unknown sort", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.svc.ListMyApplications(context.Background(), influencer, port.ApplicationFilter{SortBy: "motivation"})
		require.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("unknown status", func(t *testing.T) {
		f := newFixture(t)
		status := domain.ApplicationStatus("pending")
		_, err := f.svc.ListMyApplications(context.Background(), influencer, port.ApplicationFilter{Status: &status})
		require.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}
