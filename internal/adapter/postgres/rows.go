package postgres

import (
	"time"

	"github.com/google/uuid"

	"campaign-hub/internal/core/domain"
)

// Row types mirror the selected column lists one to one so pgx can scan
// them by name. Nothing outside this package sees them.

const campaignColumns = `id, advertiser_id, title, description, mission, benefits, location,
	recruitment_count, start_date, end_date, status, early_termination_date,
	early_termination_reason, created_at, updated_at`

type campaignRow struct {
	ID                     uuid.UUID  `db:"id"`
	AdvertiserID           uuid.UUID  `db:"advertiser_id"`
	Title                  string     `db:"title"`
	Description            string     `db:"description"`
	Mission                string     `db:"mission"`
	Benefits               string     `db:"benefits"`
	Location               string     `db:"location"`
	RecruitmentCount       int32      `db:"recruitment_count"`
	StartDate              time.Time  `db:"start_date"`
	EndDate                time.Time  `db:"end_date"`
	Status                 string     `db:"status"`
	EarlyTerminationDate   *time.Time `db:"early_termination_date"`
	EarlyTerminationReason *string    `db:"early_termination_reason"`
	CreatedAt              time.Time  `db:"created_at"`
	UpdatedAt              time.Time  `db:"updated_at"`
}

func (r campaignRow) toDomain() *domain.Campaign {
	return &domain.Campaign{
		ID:           r.ID,
		AdvertiserID: r.AdvertiserID,
		CampaignFields: domain.CampaignFields{
			Title:            r.Title,
			Description:      r.Description,
			Mission:          r.Mission,
			Benefits:         r.Benefits,
			Location:         r.Location,
			RecruitmentCount: int(r.RecruitmentCount),
			StartDate:        calendarDate(r.StartDate),
			EndDate:          calendarDate(r.EndDate),
		},
		Status:                 domain.CampaignStatus(r.Status),
		EarlyTerminationDate:   calendarDatePtr(r.EarlyTerminationDate),
		EarlyTerminationReason: r.EarlyTerminationReason,
		CreatedAt:              r.CreatedAt,
		UpdatedAt:              r.UpdatedAt,
	}
}

const summaryColumns = `c.id, c.title, c.status, c.recruitment_count, c.start_date, c.end_date, c.created_at,
	(SELECT count(*) FROM applications a WHERE a.campaign_id = c.id) AS application_count`

type summaryRow struct {
	ID               uuid.UUID `db:"id"`
	Title            string    `db:"title"`
	Status           string    `db:"status"`
	RecruitmentCount int32     `db:"recruitment_count"`
	StartDate        time.Time `db:"start_date"`
	EndDate          time.Time `db:"end_date"`
	CreatedAt        time.Time `db:"created_at"`
	ApplicationCount int64     `db:"application_count"`
}

func (r summaryRow) toDomain() domain.CampaignSummary {
	return domain.CampaignSummary{
		ID:               r.ID,
		Title:            r.Title,
		Status:           domain.CampaignStatus(r.Status),
		RecruitmentCount: int(r.RecruitmentCount),
		StartDate:        calendarDate(r.StartDate),
		EndDate:          calendarDate(r.EndDate),
		CreatedAt:        r.CreatedAt,
		ApplicationCount: int(r.ApplicationCount),
	}
}

const applicationColumns = `a.id, a.campaign_id, a.influencer_id, a.motivation, a.visit_date,
	a.status, a.applied_at, a.updated_at`

type applicationRow struct {
	ID           uuid.UUID `db:"id"`
	CampaignID   uuid.UUID `db:"campaign_id"`
	InfluencerID uuid.UUID `db:"influencer_id"`
	Motivation   string    `db:"motivation"`
	VisitDate    time.Time `db:"visit_date"`
	Status       string    `db:"status"`
	AppliedAt    time.Time `db:"applied_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

func (r applicationRow) toDomain() domain.Application {
	return domain.Application{
		ID:           r.ID,
		CampaignID:   r.CampaignID,
		InfluencerID: r.InfluencerID,
		Motivation:   r.Motivation,
		VisitDate:    calendarDate(r.VisitDate),
		Status:       domain.ApplicationStatus(r.Status),
		AppliedAt:    r.AppliedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

type applicantRow struct {
	applicationRow
	InfluencerName string `db:"influencer_name"`
	ChannelName    string `db:"channel_name"`
	FollowerCount  int32  `db:"follower_count"`
}

func (r applicantRow) toDomain() domain.Applicant {
	return domain.Applicant{
		Application:    r.applicationRow.toDomain(),
		InfluencerName: r.InfluencerName,
		ChannelName:    r.ChannelName,
		FollowerCount:  int(r.FollowerCount),
	}
}

type myApplicationRow struct {
	applicationRow
	CampaignTitle string `db:"campaign_title"`
	CompanyName   string `db:"company_name"`
}

func (r myApplicationRow) toDomain() domain.MyApplication {
	return domain.MyApplication{
		Application:   r.applicationRow.toDomain(),
		CampaignTitle: r.CampaignTitle,
		CompanyName:   r.CompanyName,
	}
}

// calendarDate normalizes a scanned DATE to UTC midnight.
func calendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func calendarDatePtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	d := calendarDate(*t)
	return &d
}

func uuidStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}
