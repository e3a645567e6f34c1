package usecase

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"

	"campaign-hub/internal/core/domain"
	"campaign-hub/internal/core/port/mocks"
)

// now is 2025-03-15 10:00 UTC in every test.
var testNow = time.Date(2025, time.March, 15, 10, 0, 0, 0, time.UTC)

type fixture struct {
	campaigns    *mocks.MockCampaignRepository
	applications *mocks.MockApplicationRepository
	profiles     *mocks.MockProfileRepository
	cache        *mocks.MockApplicantCache
	svc          *CampaignUseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		campaigns:    mocks.NewMockCampaignRepository(t),
		applications: mocks.NewMockApplicationRepository(t),
		profiles:     mocks.NewMockProfileRepository(t),
		cache:        mocks.NewMockApplicantCache(t),
	}
	f.svc = NewCampaignUseCase(f.campaigns, f.applications, f.profiles, f.cache,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		Options{Now: func() time.Time { return testNow }},
	)
	return f
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func campaignFixture(owner uuid.UUID, status domain.CampaignStatus, capacity int) *domain.Campaign {
	return &domain.Campaign{
		ID:           uuid.New(),
		AdvertiserID: owner,
		CampaignFields: domain.CampaignFields{
			Title:            "Spring tasting",
			Description:      "Visit and review the new menu",
			Mission:          "Post one review",
			Benefits:         "Free dinner for two",
			Location:         "Seoul",
			RecruitmentCount: capacity,
			StartDate:        date(2025, time.March, 1),
			EndDate:          date(2025, time.March, 31),
		},
		Status: status,
	}
}

func validInput() domain.CampaignInput {
	return domain.CampaignInput{
		Title:            "  Spring tasting  ",
		Description:      "Visit and review the new menu",
		Mission:          "Post one review",
		Benefits:         "Free dinner for two",
		Location:         "Seoul",
		RecruitmentCount: 5,
		StartDate:        "2025-03-20",
		EndDate:          "2025-04-20",
	}
}
