package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"campaign-hub/internal/config/configs"
	"campaign-hub/internal/core/domain"
	"campaign-hub/internal/core/port"
	"campaign-hub/internal/core/port/mocks"
	"campaign-hub/internal/metrics"
)

const testToken = "valid-token"

type testServer struct {
	svc      *mocks.MockCampaignUseCase
	identity *mocks.MockIdentityProvider
	metrics  *metrics.Metrics
	handler  http.Handler
	userID   uuid.UUID
}

func newTestServer(t *testing.T, opts Options) *testServer {
	t.Helper()
	s := &testServer{
		svc:      mocks.NewMockCampaignUseCase(t),
		identity: mocks.NewMockIdentityProvider(t),
		metrics:  metrics.New("test"),
		userID:   uuid.New(),
	}
	s.identity.EXPECT().Authenticate(mock.Anything, testToken).
		Return(domain.Identity{UserID: s.userID, Role: "advertiser"}, nil).Maybe()
	s.identity.EXPECT().Authenticate(mock.Anything, mock.MatchedBy(func(tok string) bool { return tok != testToken })).
		Return(domain.Identity{}, domain.ErrUnauthorized).Maybe()

	opts.Metrics = s.metrics
	h := NewHandler(s.svc, s.identity, slog.New(slog.NewTextHandler(io.Discard, nil)), opts)
	s.handler = h.Router()
	return s
}

func (s *testServer) do(t *testing.T, method, target, body string, authed bool) *httptest.ResponseRecorder {
	t.Helper()
	var rdr io.Reader
	if body != "" {
		rdr = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rdr)
	if authed {
		req.Header.Set("Authorization", "Bearer "+testToken)
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

type testEnvelope struct {
	Data  json.RawMessage `json:"data"`
	Error *errorBody      `json:"error"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) testEnvelope {
	t.Helper()
	var env testEnvelope
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&env))
	return env
}

func sampleCampaign(owner uuid.UUID) *domain.Campaign {
	return &domain.Campaign{
		ID:           uuid.New(),
		AdvertiserID: owner,
		CampaignFields: domain.CampaignFields{
			Title:            "Spring tasting",
			Description:      "Visit and review the new menu",
			Mission:          "Post one review",
			Benefits:         "Free dinner for two",
			Location:         "Seoul",
			RecruitmentCount: 5,
			StartDate:        time.Date(2025, time.March, 20, 0, 0, 0, 0, time.UTC),
			EndDate:          time.Date(2025, time.April, 20, 0, 0, 0, 0, time.UTC),
		},
		Status:    domain.CampaignRecruiting,
		CreatedAt: time.Date(2025, time.March, 15, 10, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2025, time.March, 15, 10, 0, 0, 0, time.UTC),
	}
}

func TestHealth(t *testing.T) {
	s := newTestServer(t, Options{})

	rec := s.do(t, http.MethodGet, "/healthz", "", false)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(requestIDHeader))
}

func TestReadyReportsFailingDependency(t *testing.T) {
	s := newTestServer(t, Options{Ready: map[string]Check{
		"postgres": func(context.Context) error { return nil },
		"redis":    func(context.Context) error { return errors.New("connection refused") },
	}})

	rec := s.do(t, http.MethodGet, "/readyz", "", false)
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "NOT_READY", env.Error.Code)
	assert.Equal(t, map[string]string{"postgres": "ok", "redis": "unavailable"}, env.Error.Details)
}

func TestRequestIDIsEchoed(t *testing.T) {
	s := newTestServer(t, Options{})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(requestIDHeader, "req-42")
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)

	assert.Equal(t, "req-42", rec.Header().Get(requestIDHeader))
}

func TestAuthRequired(t *testing.T) {
	s := newTestServer(t, Options{})

	t.Run("missing header", func(t *testing.T) {
		rec := s.do(t, http.MethodPost, "/api/v1/campaigns", `{}`, false)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "UNAUTHORIZED", decodeEnvelope(t, rec).Error.Code)
	})

	t.Run("rejected token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/me/applications", nil)
		req.Header.Set("Authorization", "Bearer forged")
		rec := httptest.NewRecorder()
		s.handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("wrong scheme", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/me/applications", nil)
		req.Header.Set("Authorization", "Basic "+testToken)
		rec := httptest.NewRecorder()
		s.handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestCreateCampaign(t *testing.T) {
	s := newTestServer(t, Options{})
	c := sampleCampaign(s.userID)

	s.svc.EXPECT().CreateCampaign(mock.Anything, s.userID, domain.CampaignInput{
		Title:            "Spring tasting",
		Description:      "Visit and review the new menu",
		Mission:          "Post one review",
		Benefits:         "Free dinner for two",
		Location:         "Seoul",
		RecruitmentCount: 5,
		StartDate:        "2025-03-20",
		EndDate:          "2025-04-20",
	}).Return(c, nil)

	body := `{"title":"Spring tasting","description":"Visit and review the new menu",
		"mission":"Post one review","benefits":"Free dinner for two","location":"Seoul",
		"recruitmentCount":5,"startDate":"2025-03-20","endDate":"2025-04-20"}`
	rec := s.do(t, http.MethodPost, "/api/v1/campaigns", body, true)
	require.Equal(t, http.StatusCreated, rec.Code)

	var got campaignResponse
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &got))
	assert.Equal(t, c.ID, got.ID)
	assert.Equal(t, "2025-03-20", got.StartDate)
	assert.Equal(t, "recruiting", got.Status)
	assert.Nil(t, got.EarlyTerminationDate)
}

func TestRejectsMalformedBodies(t *testing.T) {
	s := newTestServer(t, Options{})

	cases := map[string]string{
		"unknown field": `{"title":"x","budget":10}`,
		"wrong type":    `{"recruitmentCount":"five"}`,
		"empty":         ``,
		"trailing":      `{"title":"x"}{"title":"y"}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			rec := s.do(t, http.MethodPost, "/api/v1/campaigns", body, true)
			require.Equal(t, http.StatusBadRequest, rec.Code)
			env := decodeEnvelope(t, rec)
			assert.Equal(t, "INVALID_INPUT", env.Error.Code)
			assert.Contains(t, env.Error.Details, "body")
		})
	}
}

func TestInvalidPathID(t *testing.T) {
	s := newTestServer(t, Options{})

	rec := s.do(t, http.MethodGet, "/api/v1/campaigns/not-a-uuid", "", false)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, map[string]string{"id": "must be a valid uuid"}, decodeEnvelope(t, rec).Error.Details)
}

func TestErrorMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{domain.ErrInvalidInput.WithDetails(map[string]string{"title": "is required"}), http.StatusBadRequest, "INVALID_INPUT"},
		{domain.ErrOwnerProfileRequired, http.StatusForbidden, "OWNER_PROFILE_REQUIRED"},
		{domain.ErrForbidden, http.StatusForbidden, "FORBIDDEN"},
		{domain.ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
		{domain.ErrCreationLimitExceeded, http.StatusConflict, "CREATION_LIMIT_EXCEEDED"},
		{domain.ErrNoOp, http.StatusConflict, "NO_OP"},
		{errors.New("pool closed"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}
	for _, tc := range cases {
		t.Run(tc.code, func(t *testing.T) {
			s := newTestServer(t, Options{})
			id := uuid.New()
			s.svc.EXPECT().GetAdvertiserCampaign(mock.Anything, s.userID, id).Return(nil, tc.err)

			rec := s.do(t, http.MethodGet, "/api/v1/advertiser/campaigns/"+id.String(), "", true)
			require.Equal(t, tc.status, rec.Code)
			env := decodeEnvelope(t, rec)
			require.NotNil(t, env.Error)
			assert.Equal(t, tc.code, env.Error.Code)
			assert.NotContains(t, env.Error.Message, "pool closed")
			assert.Equal(t, float64(1), testutil.ToFloat64(s.metrics.DomainErrors.WithLabelValues(tc.code)))
		})
	}
}

func TestTransitionStatus(t *testing.T) {
	s := newTestServer(t, Options{})
	c := sampleCampaign(s.userID)
	c.Status = domain.CampaignTerminatedEarly
	ended := time.Date(2025, time.March, 25, 0, 0, 0, 0, time.UTC)
	reason := "venue closed"
	c.EarlyTerminationDate = &ended
	c.EarlyTerminationReason = &reason

	s.svc.EXPECT().TransitionStatus(mock.Anything, s.userID, c.ID, mock.MatchedBy(func(ch port.StatusChange) bool {
		return ch.Target == domain.CampaignTerminatedEarly && ch.Reason != nil && *ch.Reason == reason
	})).Return(c, nil)

	rec := s.do(t, http.MethodPatch, "/api/v1/campaigns/"+c.ID.String()+"/status",
		`{"status":"terminated_early","reason":"venue closed"}`, true)
	require.Equal(t, http.StatusOK, rec.Code)

	var got campaignResponse
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &got))
	require.NotNil(t, got.EarlyTerminationDate)
	assert.Equal(t, "2025-03-25", *got.EarlyTerminationDate)
	assert.Equal(t, "terminated_early", got.Status)
}

func TestDeleteCampaign(t *testing.T) {
	s := newTestServer(t, Options{})
	id := uuid.New()
	s.svc.EXPECT().DeleteCampaign(mock.Anything, s.userID, id).Return(nil)

	rec := s.do(t, http.MethodDelete, "/api/v1/campaigns/"+id.String(), "", true)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestSelection(t *testing.T) {
	s := newTestServer(t, Options{})
	campaignID := uuid.New()
	a, b := uuid.New(), uuid.New()

	s.svc.EXPECT().SelectInfluencers(mock.Anything, s.userID, campaignID, []uuid.UUID{a, b}).
		Return(port.DecisionResult{Updated: 2, CampaignStatus: domain.CampaignSelectionComplete}, nil)

	body := `{"influencerIds":["` + a.String() + `","` + b.String() + `"]}`
	rec := s.do(t, http.MethodPost, "/api/v1/campaigns/"+campaignID.String()+"/selection", body, true)
	require.Equal(t, http.StatusOK, rec.Code)

	var got decisionResponse
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &got))
	assert.Equal(t, decisionResponse{Updated: 2, CampaignStatus: "selection_complete"}, got)
	assert.Equal(t, float64(2), testutil.ToFloat64(s.metrics.Decisions.WithLabelValues("selected")))
}

func TestSelectionRejectsBadInfluencerID(t *testing.T) {
	s := newTestServer(t, Options{})

	rec := s.do(t, http.MethodPost, "/api/v1/campaigns/"+uuid.NewString()+"/selection",
		`{"influencerIds":["nope"]}`, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRejectionNoOp(t *testing.T) {
	s := newTestServer(t, Options{})
	campaignID, a := uuid.New(), uuid.New()

	s.svc.EXPECT().RejectInfluencers(mock.Anything, s.userID, campaignID, []uuid.UUID{a}).
		Return(port.DecisionResult{}, domain.ErrNoOp)

	rec := s.do(t, http.MethodPost, "/api/v1/campaigns/"+campaignID.String()+"/rejection",
		`{"influencerIds":["`+a.String()+`"]}`, true)
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "NO_OP", decodeEnvelope(t, rec).Error.Code)
	assert.Equal(t, float64(0), testutil.ToFloat64(s.metrics.Decisions.WithLabelValues("rejected")))
}

func TestApplicantBoard(t *testing.T) {
	s := newTestServer(t, Options{})
	campaignID := uuid.New()
	board := &domain.ApplicantBoard{
		CampaignID:       campaignID,
		Title:            "Spring tasting",
		Status:           domain.CampaignClosed,
		RecruitmentCount: 2,
		SelectedCount:    1,
		Applicants: []domain.Applicant{{
			Application: domain.Application{
				ID:           uuid.New(),
				CampaignID:   campaignID,
				InfluencerID: uuid.New(),
				Motivation:   "I review restaurants weekly",
				VisitDate:    time.Date(2025, time.March, 22, 0, 0, 0, 0, time.UTC),
				Status:       domain.ApplicationSelected,
			},
			InfluencerName: "Jimin",
			ChannelName:    "jimin_eats",
			FollowerCount:  12000,
		}},
	}
	s.svc.EXPECT().ApplicantBoard(mock.Anything, s.userID, campaignID).Return(board, nil)

	rec := s.do(t, http.MethodGet, "/api/v1/campaigns/"+campaignID.String()+"/applicants", "", true)
	require.Equal(t, http.StatusOK, rec.Code)

	var got boardResponse
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &got))
	assert.Equal(t, 1, got.Campaign.SelectedCount)
	require.Len(t, got.Applicants, 1)
	assert.Equal(t, "jimin_eats", got.Applicants[0].ChannelName)
	assert.Equal(t, "2025-03-22", got.Applicants[0].VisitDate)
	assert.Equal(t, "selected", got.Applicants[0].Status)
}

func TestApply(t *testing.T) {
	s := newTestServer(t, Options{})
	campaignID := uuid.New()
	app := &domain.Application{
		ID:           uuid.New(),
		CampaignID:   campaignID,
		InfluencerID: s.userID,
		Motivation:   "I review restaurants weekly",
		VisitDate:    time.Date(2025, time.March, 22, 0, 0, 0, 0, time.UTC),
		Status:       domain.ApplicationSubmitted,
	}
	s.svc.EXPECT().Apply(mock.Anything, s.userID, domain.ApplicationInput{
		CampaignID: campaignID,
		Motivation: "I review restaurants weekly",
		VisitDate:  "2025-03-22",
	}).Return(app, nil)

	body := `{"campaignId":"` + campaignID.String() + `","motivation":"I review restaurants weekly","visitDate":"2025-03-22"}`
	rec := s.do(t, http.MethodPost, "/api/v1/applications", body, true)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, float64(1), testutil.ToFloat64(s.metrics.Applications))
}

func TestListMyApplications(t *testing.T) {
	t.Run("query mapping", func(t *testing.T) {
		s := newTestServer(t, Options{})
		s.svc.EXPECT().ListMyApplications(mock.Anything, s.userID, mock.MatchedBy(func(f port.ApplicationFilter) bool {
			return f.Status != nil && *f.Status == domain.ApplicationSelected &&
				f.SortBy == "updated_at" && f.Ascending &&
				f.Page == domain.PageRequest{Page: 2, Limit: 10}
		})).Return(port.ApplicationPage{
			Pagination: domain.Pagination{Page: 2, Limit: 10, Total: 11, TotalPages: 2, HasPrev: true},
		}, nil)

		rec := s.do(t, http.MethodGet,
			"/api/v1/me/applications?status=selected&sortBy=updated_at&sortOrder=asc&page=2&limit=10", "", true)
		require.Equal(t, http.StatusOK, rec.Code)

		var got applicationPageResponse
		require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &got))
		assert.Empty(t, got.Applications)
		assert.NotNil(t, got.Applications)
		assert.Equal(t, paginationResponse{Page: 2, Limit: 10, Total: 11, TotalPages: 2, HasPrev: true}, got.Pagination)
	})

	t.Run("bad sort order", func(t *testing.T) {
		s := newTestServer(t, Options{})
		rec := s.do(t, http.MethodGet, "/api/v1/me/applications?sortOrder=sideways", "", true)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decodeEnvelope(t, rec).Error.Details, "sortOrder")
	})

	t.Run("bad page", func(t *testing.T) {
		s := newTestServer(t, Options{})
		rec := s.do(t, http.MethodGet, "/api/v1/me/applications?page=0&limit=x", "", true)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		details := decodeEnvelope(t, rec).Error.Details
		assert.Contains(t, details, "page")
		assert.Contains(t, details, "limit")
	})
}

func TestPublicCampaignList(t *testing.T) {
	s := newTestServer(t, Options{})
	s.svc.EXPECT().ListCampaigns(mock.Anything, mock.MatchedBy(func(st *domain.CampaignStatus) bool {
		return st != nil && *st == domain.CampaignRecruiting
	}), domain.PageRequest{}).Return(port.CampaignPage{
		Campaigns:  []domain.CampaignSummary{{ID: uuid.New(), Title: "Spring tasting", Status: domain.CampaignRecruiting, ApplicationCount: 3}},
		Pagination: domain.Pagination{Page: 1, Limit: 20, Total: 1, TotalPages: 1},
	}, nil)

	rec := s.do(t, http.MethodGet, "/api/v1/campaigns?status=recruiting", "", false)
	require.Equal(t, http.StatusOK, rec.Code)

	var got campaignPageResponse
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &got))
	require.Len(t, got.Campaigns, 1)
	assert.Equal(t, 3, got.Campaigns[0].ApplicationCount)
}

func TestRateLimit(t *testing.T) {
	s := newTestServer(t, Options{RateLimit: configs.RateLimit{Enabled: true, RPS: 0.001, Burst: 1}})
	s.svc.EXPECT().ListCampaigns(mock.Anything, (*domain.CampaignStatus)(nil), domain.PageRequest{}).
		Return(port.CampaignPage{}, nil).Once()

	first := s.do(t, http.MethodGet, "/api/v1/campaigns", "", false)
	require.Equal(t, http.StatusOK, first.Code)

	second := s.do(t, http.MethodGet, "/api/v1/campaigns", "", false)
	require.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.Equal(t, "RATE_LIMITED", decodeEnvelope(t, second).Error.Code)
	assert.Equal(t, float64(1), testutil.ToFloat64(s.metrics.RateLimitHits))

	health := s.do(t, http.MethodGet, "/healthz", "", false)
	assert.Equal(t, http.StatusOK, health.Code)
}

func forwardedRequest(forwardedFor string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/campaigns", nil)
	req.Header.Set("X-Forwarded-For", forwardedFor)
	return req
}

// Rotating X-Forwarded-For from one peer must not earn fresh buckets.
func TestRateLimitIgnoresForwardedForByDefault(t *testing.T) {
	s := newTestServer(t, Options{RateLimit: configs.RateLimit{Enabled: true, RPS: 0.001, Burst: 1}})
	s.svc.EXPECT().ListCampaigns(mock.Anything, (*domain.CampaignStatus)(nil), domain.PageRequest{}).
		Return(port.CampaignPage{}, nil).Once()

	first := httptest.NewRecorder()
	s.handler.ServeHTTP(first, forwardedRequest("203.0.113.1"))
	require.Equal(t, http.StatusOK, first.Code)

	second := httptest.NewRecorder()
	s.handler.ServeHTTP(second, forwardedRequest("203.0.113.2"))
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}

func TestRateLimitTrustedProxy(t *testing.T) {
	s := newTestServer(t, Options{
		RateLimit:  configs.RateLimit{Enabled: true, RPS: 0.001, Burst: 1},
		TrustProxy: true,
	})
	s.svc.EXPECT().ListCampaigns(mock.Anything, (*domain.CampaignStatus)(nil), domain.PageRequest{}).
		Return(port.CampaignPage{}, nil).Twice()

	for _, ip := range []string{"203.0.113.1", "203.0.113.2"} {
		rec := httptest.NewRecorder()
		s.handler.ServeHTTP(rec, forwardedRequest(ip))
		require.Equal(t, http.StatusOK, rec.Code, ip)
	}

	again := httptest.NewRecorder()
	s.handler.ServeHTTP(again, forwardedRequest("203.0.113.1"))
	assert.Equal(t, http.StatusTooManyRequests, again.Code)
}

func TestPanicIsRecovered(t *testing.T) {
	s := newTestServer(t, Options{})
	id := uuid.New()
	s.svc.EXPECT().GetCampaign(mock.Anything, id).
		RunAndReturn(func(context.Context, uuid.UUID) (*domain.Campaign, error) { panic("boom") })

	rec := s.do(t, http.MethodGet, "/api/v1/campaigns/"+id.String(), "", false)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "INTERNAL_ERROR", decodeEnvelope(t, rec).Error.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer(t, Options{MetricsPath: "/metrics"})

	s.do(t, http.MethodGet, "/healthz", "", false)
	rec := s.do(t, http.MethodGet, "/metrics", "", false)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `test_http_requests_total{method="GET",route="/healthz",status="200"} 1`)
}
