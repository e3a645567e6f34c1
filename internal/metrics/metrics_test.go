package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorders(t *testing.T) {
	m := New("campaign_hub")

	m.RecordRequest(http.MethodPost, "/api/v1/campaigns", http.StatusCreated, 20*time.Millisecond)
	m.RecordDecision("selected", 3)
	m.RecordDecision("selected", 2)
	m.RecordDomainError("NO_OP")
	m.RecordApplication()
	m.RecordRateLimitHit()

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Requests.WithLabelValues("POST", "/api/v1/campaigns", "201")))
	assert.Equal(t, 5.0, testutil.ToFloat64(m.Decisions.WithLabelValues("selected")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DomainErrors.WithLabelValues("NO_OP")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Applications))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RateLimitHits))
}

func TestInstancesAreIndependent(t *testing.T) {
	a := New("campaign_hub")
	b := New("campaign_hub")
	a.RecordApplication()

	assert.Equal(t, 0.0, testutil.ToFloat64(b.Applications))
}

func TestHandlerExposesCollectors(t *testing.T) {
	m := New("campaign_hub")
	m.RecordDecision("rejected", 1)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `campaign_hub_application_decisions_total{decision="rejected"} 1`)
}
