package httpadapter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"campaign-hub/internal/config/configs"
)

func TestBearerToken(t *testing.T) {
	cases := map[string]struct {
		header string
		token  string
		ok     bool
	}{
		"plain":        {"Bearer abc", "abc", true},
		"lower scheme": {"bearer abc", "abc", true},
		"padded":       {"  Bearer   abc  ", "abc", true},
		"no token":     {"Bearer ", "", false},
		"other scheme": {"Basic abc", "", false},
		"empty":        {"", "", false},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			token, ok := bearerToken(tc.header)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.token, token)
		})
	}
}

func TestRateLimiterPerClient(t *testing.T) {
	now := time.Date(2025, time.March, 15, 10, 0, 0, 0, time.UTC)
	l := newRateLimiter(configs.RateLimit{Enabled: true, RPS: 1, Burst: 2})
	l.now = func() time.Time { return now }

	assert.True(t, l.allow("10.0.0.1"))
	assert.True(t, l.allow("10.0.0.1"))
	assert.False(t, l.allow("10.0.0.1"))
	assert.True(t, l.allow("10.0.0.2"))

	now = now.Add(time.Second)
	assert.True(t, l.allow("10.0.0.1"))
}

func TestRateLimiterSweepsIdleClients(t *testing.T) {
	now := time.Date(2025, time.March, 15, 10, 0, 0, 0, time.UTC)
	l := newRateLimiter(configs.RateLimit{Enabled: true, RPS: 1, Burst: 1})
	l.now = func() time.Time { return now }

	l.allow("10.0.0.1")
	now = now.Add(limiterIdleTTL + limiterSweepGap)
	l.allow("10.0.0.2")

	assert.Len(t, l.clients, 1)
	assert.Contains(t, l.clients, "10.0.0.2")
}

func TestRateLimiterDisabled(t *testing.T) {
	l := newRateLimiter(configs.RateLimit{Enabled: false, RPS: 1, Burst: 1})
	for i := 0; i < 5; i++ {
		assert.True(t, l.allow("10.0.0.1"))
	}
	assert.Empty(t, l.clients)
}
