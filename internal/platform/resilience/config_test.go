package resilience

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCircuitBreakerConfig_FillsDefaults(t *testing.T) {
	got := NormalizeCircuitBreakerConfig(CircuitBreakerConfig{Enabled: true, OpenTimeout: time.Minute})

	assert.Equal(t, 5, got.FailureThreshold)
	assert.Equal(t, time.Minute, got.OpenTimeout)
	assert.Equal(t, 2, got.HalfOpenMaxReq)
}

func TestRetryPolicy(t *testing.T) {
	p := NormalizeRetryPolicy(RetryPolicy{MaxRetries: -3})
	assert.Equal(t, 1, p.Attempts())
	assert.Equal(t, time.Second, p.Delay(0))

	p = NormalizeRetryPolicy(RetryPolicy{MaxRetries: 2, Backoff: 100 * time.Millisecond})
	assert.Equal(t, 3, p.Attempts())
	assert.Equal(t, 300*time.Millisecond, p.Delay(2))
}

func TestRetryableStatus(t *testing.T) {
	for code, want := range map[int]bool{
		http.StatusTooManyRequests:    true,
		http.StatusBadGateway:         true,
		http.StatusServiceUnavailable: true,
		http.StatusBadRequest:         false,
		http.StatusNotFound:           false,
		http.StatusOK:                 false,
	} {
		assert.Equal(t, want, RetryableStatus(code), code)
	}
}
