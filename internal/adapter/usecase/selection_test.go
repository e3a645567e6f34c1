package usecase

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"campaign-hub/internal/core/domain"
	"campaign-hub/internal/core/port"
)

func submitted(campaignID uuid.UUID, ids ...uuid.UUID) []domain.Application {
	apps := make([]domain.Application, 0, len(ids))
	for _, id := range ids {
		apps = append(apps, domain.Application{
			ID:           uuid.New(),
			CampaignID:   campaignID,
			InfluencerID: id,
			Status:       domain.ApplicationSubmitted,
		})
	}
	return apps
}

// A capacity-2 campaign fills with A and B, completes, and then refuses C.
func TestSelectFillsCapacityAndCompletes(t *testing.T) {
	f := newFixture(t)
	owner := uuid.New()
	a, b, c := uuid.New(), uuid.New(), uuid.New()
	camp := campaignFixture(owner, domain.CampaignClosed, 2)
	complete := *camp
	complete.Status = domain.CampaignSelectionComplete

	f.campaigns.EXPECT().Get(mock.Anything, camp.ID).Return(camp, nil).Once()
	f.applications.EXPECT().
		FindByInfluencers(mock.Anything, camp.ID, []uuid.UUID{a, b}).
		Return(submitted(camp.ID, a, b), nil)
	f.applications.EXPECT().CountByStatus(mock.Anything, camp.ID, domain.ApplicationSelected).Return(0, nil)
	f.applications.EXPECT().
		MarkSelected(mock.Anything, camp.ID, []uuid.UUID{a, b}).
		Return(port.SelectionOutcome{AlreadySelected: 0, Updated: 2}, nil)
	f.campaigns.EXPECT().PromoteSelectionComplete(mock.Anything, camp.ID).Return(true, nil)
	f.cache.EXPECT().Invalidate(mock.Anything, camp.ID).Return(nil)

	res, err := f.svc.SelectInfluencers(context.Background(), owner, camp.ID, []uuid.UUID{a, b})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Updated)
	assert.Equal(t, domain.CampaignSelectionComplete, res.CampaignStatus)

	f.campaigns.EXPECT().Get(mock.Anything, camp.ID).Return(&complete, nil).Once()

	_, err = f.svc.SelectInfluencers(context.Background(), owner, camp.ID, []uuid.UUID{c})
	require.ErrorIs(t, err, domain.ErrCampaignNotClosed)
}

func TestSelectBelowCapacityKeepsCampaignClosed(t *testing.T) {
	f := newFixture(t)
	owner := uuid.New()
	a := uuid.New()
	camp := campaignFixture(owner, domain.CampaignClosed, 3)

	f.campaigns.EXPECT().Get(mock.Anything, camp.ID).Return(camp, nil)
	f.applications.EXPECT().FindByInfluencers(mock.Anything, camp.ID, []uuid.UUID{a}).Return(submitted(camp.ID, a), nil)
	f.applications.EXPECT().CountByStatus(mock.Anything, camp.ID, domain.ApplicationSelected).Return(1, nil)
	f.applications.EXPECT().
		MarkSelected(mock.Anything, camp.ID, []uuid.UUID{a}).
		Return(port.SelectionOutcome{AlreadySelected: 1, Updated: 1}, nil)
	f.cache.EXPECT().Invalidate(mock.Anything, camp.ID).Return(nil)

	res, err := f.svc.SelectInfluencers(context.Background(), owner, camp.ID, []uuid.UUID{a})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Updated)
	assert.Equal(t, domain.CampaignClosed, res.CampaignStatus)
}

func TestSelectDeduplicatesIDs(t *testing.T) {
	f := newFixture(t)
	owner := uuid.New()
	a, b := uuid.New(), uuid.New()
	camp := campaignFixture(owner, domain.CampaignClosed, 2)

	f.campaigns.EXPECT().Get(mock.Anything, camp.ID).Return(camp, nil)
	f.applications.EXPECT().
		FindByInfluencers(mock.Anything, camp.ID, []uuid.UUID{a, b}).
		Return(submitted(camp.ID, a, b), nil)
	f.applications.EXPECT().CountByStatus(mock.Anything, camp.ID, domain.ApplicationSelected).Return(0, nil)
	f.applications.EXPECT().
		MarkSelected(mock.Anything, camp.ID, []uuid.UUID{a, b}).
		Return(port.SelectionOutcome{Updated: 2}, nil)
	f.campaigns.EXPECT().PromoteSelectionComplete(mock.Anything, camp.ID).Return(true, nil)
	f.cache.EXPECT().Invalidate(mock.Anything, camp.ID).Return(nil)

	res, err := f.svc.SelectInfluencers(context.Background(), owner, camp.ID, []uuid.UUID{a, b, a, b})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Updated)
}

func TestSelectPreconditions(t *testing.T) {
	owner := uuid.New()
	a, b := uuid.New(), uuid.New()

	t.Run("empty ids", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.svc.SelectInfluencers(context.Background(), owner, uuid.New(), nil)
		require.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("not owner", func(t *testing.T) {
		f := newFixture(t)
		camp := campaignFixture(uuid.New(), domain.CampaignClosed, 2)
		f.campaigns.EXPECT().Get(mock.Anything, camp.ID).Return(camp, nil)

		_, err := f.svc.SelectInfluencers(context.Background(), owner, camp.ID, []uuid.UUID{a})
		require.ErrorIs(t, err, domain.ErrForbidden)
	})

	for _, status := range []domain.CampaignStatus{
		domain.CampaignRecruiting, domain.CampaignTerminatedEarly, domain.CampaignSelectionComplete,
	} {
		t.Run("campaign "+string(status), func(t *testing.T) {
			f := newFixture(t)
			camp := campaignFixture(owner, status, 2)
			f.campaigns.EXPECT().Get(mock.Anything, camp.ID).Return(camp, nil)

			_, err := f.svc.SelectInfluencers(context.Background(), owner, camp.ID, []uuid.UUID{a})
			require.ErrorIs(t, err, domain.ErrCampaignNotClosed)
		})
	}

	t.Run("someone did not apply", func(t *testing.T) {
		f := newFixture(t)
		camp := campaignFixture(owner, domain.CampaignClosed, 2)
		f.campaigns.EXPECT().Get(mock.Anything, camp.ID).Return(camp, nil)
		f.applications.EXPECT().
			FindByInfluencers(mock.Anything, camp.ID, []uuid.UUID{a, b}).
			Return(submitted(camp.ID, a), nil)

		_, err := f.svc.SelectInfluencers(context.Background(), owner, camp.ID, []uuid.UUID{a, b})
		require.ErrorIs(t, err, domain.ErrApplicantsNotFound)
	})

	t.Run("already decided", func(t *testing.T) {
		f := newFixture(t)
		camp := campaignFixture(owner, domain.CampaignClosed, 2)
		apps := submitted(camp.ID, a, b)
		apps[1].Status = domain.ApplicationRejected
		f.campaigns.EXPECT().Get(mock.Anything, camp.ID).Return(camp, nil)
		f.applications.EXPECT().FindByInfluencers(mock.Anything, camp.ID, []uuid.UUID{a, b}).Return(apps, nil)

		_, err := f.svc.SelectInfluencers(context.Background(), owner, camp.ID, []uuid.UUID{a, b})
		require.ErrorIs(t, err, domain.ErrAlreadyProcessed)
	})

	t.Run("over capacity", func(t *testing.T) {
		f := newFixture(t)
		camp := campaignFixture(owner, domain.CampaignClosed, 2)
		f.campaigns.EXPECT().Get(mock.Anything, camp.ID).Return(camp, nil)
		f.applications.EXPECT().FindByInfluencers(mock.Anything, camp.ID, []uuid.UUID{a, b}).Return(submitted(camp.ID, a, b), nil)
		f.applications.EXPECT().CountByStatus(mock.Anything, camp.ID, domain.ApplicationSelected).Return(1, nil)

		_, err := f.svc.SelectInfluencers(context.Background(), owner, camp.ID, []uuid.UUID{a, b})
		require.ErrorIs(t, err, domain.ErrCapacityExceeded)
	})

	t.Run("store rejects overflow", func(t *testing.T) {
		f := newFixture(t)
		camp := campaignFixture(owner, domain.CampaignClosed, 2)
		f.campaigns.EXPECT().Get(mock.Anything, camp.ID).Return(camp, nil)
		f.applications.EXPECT().FindByInfluencers(mock.Anything, camp.ID, []uuid.UUID{a}).Return(submitted(camp.ID, a), nil)
		f.applications.EXPECT().CountByStatus(mock.Anything, camp.ID, domain.ApplicationSelected).Return(1, nil)
		f.applications.EXPECT().MarkSelected(mock.Anything, camp.ID, []uuid.UUID{a}).Return(port.SelectionOutcome{}, domain.ErrCapacityExceeded)

		_, err := f.svc.SelectInfluencers(context.Background(), owner, camp.ID, []uuid.UUID{a})
		require.ErrorIs(t, err, domain.ErrCapacityExceeded)
	})
}

// Two overlapping selections of the same applicant on a capacity-1
// campaign: exactly one wins, the other sees zero updated rows.
func TestConcurrentSelectionOfSameApplicant(t *testing.T) {
	f := newFixture(t)
	owner := uuid.New()
	a := uuid.New()
	camp := campaignFixture(owner, domain.CampaignClosed, 1)

	var (
		mu     sync.Mutex
		status = domain.ApplicationSubmitted
	)

	f.campaigns.EXPECT().Get(mock.Anything, camp.ID).Return(camp, nil)
	f.applications.EXPECT().FindByInfluencers(mock.Anything, camp.ID, []uuid.UUID{a}).Return(submitted(camp.ID, a), nil)
	f.applications.EXPECT().CountByStatus(mock.Anything, camp.ID, domain.ApplicationSelected).Return(0, nil)
	f.applications.EXPECT().
		MarkSelected(mock.Anything, camp.ID, []uuid.UUID{a}).
		RunAndReturn(func(context.Context, uuid.UUID, []uuid.UUID) (port.SelectionOutcome, error) {
			mu.Lock()
			defer mu.Unlock()
			if status != domain.ApplicationSubmitted {
				return port.SelectionOutcome{AlreadySelected: 1}, nil
			}
			status = domain.ApplicationSelected
			return port.SelectionOutcome{Updated: 1}, nil
		})
	f.campaigns.EXPECT().PromoteSelectionComplete(mock.Anything, camp.ID).Return(true, nil).Once()
	f.cache.EXPECT().Invalidate(mock.Anything, camp.ID).Return(nil).Once()

	errs := make([]error, 2)
	results := make([]port.DecisionResult, 2)
	var wg sync.WaitGroup
	wg.Add(2)
	for i := 0; i < 2; i++ {
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = f.svc.SelectInfluencers(context.Background(), owner, camp.ID, []uuid.UUID{a})
		}(i)
	}
	wg.Wait()

	var won, noop int
	for i, err := range errs {
		switch {
		case err == nil:
			won++
			assert.Equal(t, 1, results[i].Updated)
			assert.Equal(t, domain.CampaignSelectionComplete, results[i].CampaignStatus)
		case assert.ErrorIs(t, err, domain.ErrNoOp):
			noop++
		}
	}
	assert.Equal(t, 1, won)
	assert.Equal(t, 1, noop)
}

// Many distinct applicants race for three seats; the store's locked
// capacity check is the only thing standing between them and overselling.
func TestConcurrentSelectionNeverOversells(t *testing.T) {
	const capacity = 3
	const applicants = 12

	f := newFixture(t)
	owner := uuid.New()
	camp := campaignFixture(owner, domain.CampaignClosed, capacity)

	var (
		mu       sync.Mutex
		selected = map[uuid.UUID]bool{}
	)

	f.campaigns.EXPECT().Get(mock.Anything, camp.ID).Return(camp, nil)
	f.applications.EXPECT().
		FindByInfluencers(mock.Anything, camp.ID, mock.Anything).
		RunAndReturn(func(_ context.Context, campaignID uuid.UUID, ids []uuid.UUID) ([]domain.Application, error) {
			return submitted(campaignID, ids...), nil
		})
	f.applications.EXPECT().
		CountByStatus(mock.Anything, camp.ID, domain.ApplicationSelected).
		RunAndReturn(func(context.Context, uuid.UUID, domain.ApplicationStatus) (int, error) {
			mu.Lock()
			defer mu.Unlock()
			return len(selected), nil
		})
	f.applications.EXPECT().
		MarkSelected(mock.Anything, camp.ID, mock.Anything).
		RunAndReturn(func(_ context.Context, _ uuid.UUID, ids []uuid.UUID) (port.SelectionOutcome, error) {
			mu.Lock()
			defer mu.Unlock()
			already := len(selected)
			if already+len(ids) > capacity {
				return port.SelectionOutcome{}, domain.ErrCapacityExceeded
			}
			for _, id := range ids {
				selected[id] = true
			}
			return port.SelectionOutcome{AlreadySelected: already, Updated: len(ids)}, nil
		})
	f.campaigns.EXPECT().PromoteSelectionComplete(mock.Anything, camp.ID).Return(true, nil).Once()
	f.cache.EXPECT().Invalidate(mock.Anything, camp.ID).Return(nil)

	var (
		wg   sync.WaitGroup
		wins int
		rmu  sync.Mutex
	)
	wg.Add(applicants)
	for i := 0; i < applicants; i++ {
		go func() {
			defer wg.Done()
			_, err := f.svc.SelectInfluencers(context.Background(), owner, camp.ID, []uuid.UUID{uuid.New()})
			if err == nil {
				rmu.Lock()
				wins++
				rmu.Unlock()
				return
			}
			assert.ErrorIs(t, err, domain.ErrCapacityExceeded)
		}()
	}
	wg.Wait()

	assert.Equal(t, capacity, wins)
	assert.Len(t, selected, capacity)
}

func TestRejectInfluencers(t *testing.T) {
	owner := uuid.New()
	a, b := uuid.New(), uuid.New()

	t.Run("rejects without touching campaign", func(t *testing.T) {
		f := newFixture(t)
		camp := campaignFixture(owner, domain.CampaignClosed, 1)
		f.campaigns.EXPECT().Get(mock.Anything, camp.ID).Return(camp, nil)
		f.applications.EXPECT().FindByInfluencers(mock.Anything, camp.ID, []uuid.UUID{a, b}).Return(submitted(camp.ID, a, b), nil)
		f.applications.EXPECT().MarkRejected(mock.Anything, camp.ID, []uuid.UUID{a, b}).Return(2, nil)
		f.cache.EXPECT().Invalidate(mock.Anything, camp.ID).Return(nil)

		res, err := f.svc.RejectInfluencers(context.Background(), owner, camp.ID, []uuid.UUID{a, b, b})
		require.NoError(t, err)
		assert.Equal(t, 2, res.Updated)
		assert.Equal(t, domain.CampaignClosed, res.CampaignStatus)
	})

	t.Run("while recruiting", func(t *testing.T) {
		f := newFixture(t)
		camp := campaignFixture(owner, domain.CampaignRecruiting, 1)
		f.campaigns.EXPECT().Get(mock.Anything, camp.ID).Return(camp, nil)

		_, err := f.svc.RejectInfluencers(context.Background(), owner, camp.ID, []uuid.UUID{a})
		require.ErrorIs(t, err, domain.ErrCampaignNotClosed)
	})

	t.Run("already selected", func(t *testing.T) {
		f := newFixture(t)
		camp := campaignFixture(owner, domain.CampaignClosed, 1)
		apps := submitted(camp.ID, a)
		apps[0].Status = domain.ApplicationSelected
		f.campaigns.EXPECT().Get(mock.Anything, camp.ID).Return(camp, nil)
		f.applications.EXPECT().FindByInfluencers(mock.Anything, camp.ID, []uuid.UUID{a}).Return(apps, nil)

		_, err := f.svc.RejectInfluencers(context.Background(), owner, camp.ID, []uuid.UUID{a})
		require.ErrorIs(t, err, domain.ErrAlreadyProcessed)
	})

	t.Run("lost race", func(t *testing.T) {
		f := newFixture(t)
		camp := campaignFixture(owner, domain.CampaignClosed, 1)
		f.campaigns.EXPECT().Get(mock.Anything, camp.ID).Return(camp, nil)
		f.applications.EXPECT().FindByInfluencers(mock.Anything, camp.ID, []uuid.UUID{a}).Return(submitted(camp.ID, a), nil)
		f.applications.EXPECT().MarkRejected(mock.Anything, camp.ID, []uuid.UUID{a}).Return(0, nil)

		_, err := f.svc.RejectInfluencers(context.Background(), owner, camp.ID, []uuid.UUID{a})
		require.ErrorIs(t, err, domain.ErrNoOp)
	})
}
