package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"campaign-hub/internal/core/domain"
	"campaign-hub/internal/core/port"
	"campaign-hub/internal/core/port/mocks"
)

func newPublishingFixture(t *testing.T) (*fixture, *mocks.MockEventPublisher) {
	t.Helper()
	f := newFixture(t)
	events := mocks.NewMockEventPublisher(t)
	f.svc = NewCampaignUseCase(f.campaigns, f.applications, f.profiles, f.cache,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		Options{Now: func() time.Time { return testNow }, Events: events},
	)
	return f, events
}

func TestSelectionPublishesDecisionAndCompletion(t *testing.T) {
	f, events := newPublishingFixture(t)
	owner := uuid.New()
	a, b := uuid.New(), uuid.New()
	camp := campaignFixture(owner, domain.CampaignClosed, 2)

	f.campaigns.EXPECT().Get(mock.Anything, camp.ID).Return(camp, nil)
	f.applications.EXPECT().FindByInfluencers(mock.Anything, camp.ID, []uuid.UUID{a, b}).Return(submitted(camp.ID, a, b), nil)
	f.applications.EXPECT().CountByStatus(mock.Anything, camp.ID, domain.ApplicationSelected).Return(0, nil)
	f.applications.EXPECT().MarkSelected(mock.Anything, camp.ID, []uuid.UUID{a, b}).
		Return(port.SelectionOutcome{Updated: 2}, nil)
	f.campaigns.EXPECT().PromoteSelectionComplete(mock.Anything, camp.ID).Return(true, nil)
	f.cache.EXPECT().Invalidate(mock.Anything, camp.ID).Return(nil)

	var published []domain.Event
	events.EXPECT().Publish(mock.Anything, mock.Anything).
		Run(func(_ context.Context, e domain.Event) { published = append(published, e) }).
		Return(nil).Times(2)

	_, err := f.svc.SelectInfluencers(context.Background(), owner, camp.ID, []uuid.UUID{a, b})
	require.NoError(t, err)

	require.Len(t, published, 2)
	assert.Equal(t, domain.Event{
		Type:          domain.EventApplicationsDecided,
		CampaignID:    camp.ID,
		ActorID:       owner,
		Status:        "selected",
		InfluencerIDs: []uuid.UUID{a, b},
		Count:         2,
		OccurredAt:    testNow,
	}, published[0])
	assert.Equal(t, domain.EventCampaignStatusChanged, published[1].Type)
	assert.Equal(t, "selection_complete", published[1].Status)
}

func TestPublishFailureDoesNotFailOperation(t *testing.T) {
	f, events := newPublishingFixture(t)
	owner := uuid.New()
	camp := campaignFixture(owner, domain.CampaignRecruiting, 5)
	closed := *camp
	closed.Status = domain.CampaignClosed

	f.campaigns.EXPECT().Get(mock.Anything, camp.ID).Return(camp, nil)
	f.campaigns.EXPECT().Transition(mock.Anything, camp.ID, domain.CampaignRecruiting, domain.CampaignClosed, (*port.Termination)(nil)).
		Return(&closed, nil)
	f.cache.EXPECT().Invalidate(mock.Anything, camp.ID).Return(nil)
	events.EXPECT().Publish(mock.Anything, mock.MatchedBy(func(e domain.Event) bool {
		return e.Type == domain.EventCampaignStatusChanged && e.Status == "closed"
	})).Return(errors.New("broker down"))

	got, err := f.svc.TransitionStatus(context.Background(), owner, camp.ID, port.StatusChange{Target: domain.CampaignClosed})
	require.NoError(t, err)
	assert.Equal(t, domain.CampaignClosed, got.Status)
}

func TestFailedOperationPublishesNothing(t *testing.T) {
	f, _ := newPublishingFixture(t)
	owner := uuid.New()
	camp := campaignFixture(owner, domain.CampaignRecruiting, 5)

	f.campaigns.EXPECT().Get(mock.Anything, camp.ID).Return(camp, nil)

	_, err := f.svc.RejectInfluencers(context.Background(), owner, camp.ID, []uuid.UUID{uuid.New()})
	require.ErrorIs(t, err, domain.ErrCampaignNotClosed)
}
