package httpadapter

import (
	"time"

	"github.com/google/uuid"

	"campaign-hub/internal/core/domain"
	"campaign-hub/internal/core/port"
)

type campaignRequest struct {
	Title            string `json:"title"`
	Description      string `json:"description"`
	Mission          string `json:"mission"`
	Benefits         string `json:"benefits"`
	Location         string `json:"location"`
	RecruitmentCount int    `json:"recruitmentCount"`
	StartDate        string `json:"startDate"`
	EndDate          string `json:"endDate"`
}

func (r campaignRequest) input() domain.CampaignInput {
	return domain.CampaignInput{
		Title:            r.Title,
		Description:      r.Description,
		Mission:          r.Mission,
		Benefits:         r.Benefits,
		Location:         r.Location,
		RecruitmentCount: r.RecruitmentCount,
		StartDate:        r.StartDate,
		EndDate:          r.EndDate,
	}
}

type statusRequest struct {
	Status string  `json:"status"`
	Reason *string `json:"reason"`
}

type decisionRequest struct {
	InfluencerIDs []uuid.UUID `json:"influencerIds"`
}

type applyRequest struct {
	CampaignID uuid.UUID `json:"campaignId"`
	Motivation string    `json:"motivation"`
	VisitDate  string    `json:"visitDate"`
}

type campaignResponse struct {
	ID                     uuid.UUID `json:"id"`
	AdvertiserID           uuid.UUID `json:"advertiserId"`
	Title                  string    `json:"title"`
	Description            string    `json:"description"`
	Mission                string    `json:"mission"`
	Benefits               string    `json:"benefits"`
	Location               string    `json:"location"`
	RecruitmentCount       int       `json:"recruitmentCount"`
	StartDate              string    `json:"startDate"`
	EndDate                string    `json:"endDate"`
	Status                 string    `json:"status"`
	EarlyTerminationDate   *string   `json:"earlyTerminationDate"`
	EarlyTerminationReason *string   `json:"earlyTerminationReason"`
	CreatedAt              time.Time `json:"createdAt"`
	UpdatedAt              time.Time `json:"updatedAt"`
}

func toCampaignResponse(c *domain.Campaign) campaignResponse {
	resp := campaignResponse{
		ID:                     c.ID,
		AdvertiserID:           c.AdvertiserID,
		Title:                  c.Title,
		Description:            c.Description,
		Mission:                c.Mission,
		Benefits:               c.Benefits,
		Location:               c.Location,
		RecruitmentCount:       c.RecruitmentCount,
		StartDate:              formatDate(c.StartDate),
		EndDate:                formatDate(c.EndDate),
		Status:                 string(c.Status),
		EarlyTerminationReason: c.EarlyTerminationReason,
		CreatedAt:              c.CreatedAt,
		UpdatedAt:              c.UpdatedAt,
	}
	if c.EarlyTerminationDate != nil {
		d := formatDate(*c.EarlyTerminationDate)
		resp.EarlyTerminationDate = &d
	}
	return resp
}

type campaignSummaryResponse struct {
	ID               uuid.UUID `json:"id"`
	Title            string    `json:"title"`
	Status           string    `json:"status"`
	RecruitmentCount int       `json:"recruitmentCount"`
	StartDate        string    `json:"startDate"`
	EndDate          string    `json:"endDate"`
	CreatedAt        time.Time `json:"createdAt"`
	ApplicationCount int       `json:"applicationCount"`
}

type paginationResponse struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	Total      int  `json:"total"`
	TotalPages int  `json:"totalPages"`
	HasNext    bool `json:"hasNext"`
	HasPrev    bool `json:"hasPrev"`
}

func toPagination(p domain.Pagination) paginationResponse {
	return paginationResponse(p)
}

type campaignPageResponse struct {
	Campaigns  []campaignSummaryResponse `json:"campaigns"`
	Pagination paginationResponse        `json:"pagination"`
}

func toCampaignPage(p port.CampaignPage) campaignPageResponse {
	items := make([]campaignSummaryResponse, 0, len(p.Campaigns))
	for _, s := range p.Campaigns {
		items = append(items, campaignSummaryResponse{
			ID:               s.ID,
			Title:            s.Title,
			Status:           string(s.Status),
			RecruitmentCount: s.RecruitmentCount,
			StartDate:        formatDate(s.StartDate),
			EndDate:          formatDate(s.EndDate),
			CreatedAt:        s.CreatedAt,
			ApplicationCount: s.ApplicationCount,
		})
	}
	return campaignPageResponse{Campaigns: items, Pagination: toPagination(p.Pagination)}
}

type applicationResponse struct {
	ID           uuid.UUID `json:"id"`
	CampaignID   uuid.UUID `json:"campaignId"`
	InfluencerID uuid.UUID `json:"influencerId"`
	Motivation   string    `json:"motivation"`
	VisitDate    string    `json:"visitDate"`
	Status       string    `json:"status"`
	AppliedAt    time.Time `json:"appliedAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func toApplicationResponse(a *domain.Application) applicationResponse {
	return applicationResponse{
		ID:           a.ID,
		CampaignID:   a.CampaignID,
		InfluencerID: a.InfluencerID,
		Motivation:   a.Motivation,
		VisitDate:    formatDate(a.VisitDate),
		Status:       string(a.Status),
		AppliedAt:    a.AppliedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

type applicantResponse struct {
	applicationResponse
	InfluencerName string `json:"influencerName"`
	ChannelName    string `json:"channelName"`
	FollowerCount  int    `json:"followerCount"`
}

type boardCampaignResponse struct {
	ID               uuid.UUID `json:"id"`
	Title            string    `json:"title"`
	Status           string    `json:"status"`
	RecruitmentCount int       `json:"recruitmentCount"`
	SelectedCount    int       `json:"selectedCount"`
}

type boardResponse struct {
	Campaign   boardCampaignResponse `json:"campaign"`
	Applicants []applicantResponse   `json:"applicants"`
}

func toBoardResponse(b *domain.ApplicantBoard) boardResponse {
	applicants := make([]applicantResponse, 0, len(b.Applicants))
	for i := range b.Applicants {
		a := &b.Applicants[i]
		applicants = append(applicants, applicantResponse{
			applicationResponse: toApplicationResponse(&a.Application),
			InfluencerName:      a.InfluencerName,
			ChannelName:         a.ChannelName,
			FollowerCount:       a.FollowerCount,
		})
	}
	return boardResponse{
		Campaign: boardCampaignResponse{
			ID:               b.CampaignID,
			Title:            b.Title,
			Status:           string(b.Status),
			RecruitmentCount: b.RecruitmentCount,
			SelectedCount:    b.SelectedCount,
		},
		Applicants: applicants,
	}
}

type myApplicationResponse struct {
	applicationResponse
	CampaignTitle string `json:"campaignTitle"`
	CompanyName   string `json:"companyName"`
}

type applicationPageResponse struct {
	Applications []myApplicationResponse `json:"applications"`
	Pagination   paginationResponse      `json:"pagination"`
}

func toApplicationPage(p port.ApplicationPage) applicationPageResponse {
	items := make([]myApplicationResponse, 0, len(p.Applications))
	for i := range p.Applications {
		a := &p.Applications[i]
		items = append(items, myApplicationResponse{
			applicationResponse: toApplicationResponse(&a.Application),
			CampaignTitle:       a.CampaignTitle,
			CompanyName:         a.CompanyName,
		})
	}
	return applicationPageResponse{Applications: items, Pagination: toPagination(p.Pagination)}
}

type decisionResponse struct {
	Updated        int    `json:"updated"`
	CampaignStatus string `json:"campaignStatus"`
}

func formatDate(t time.Time) string {
	return t.Format(domain.DateLayout)
}
