package config

import (
	"testing"

	"golang.org/x/time/rate"
)

func TestCooperatorLimiter(t *testing.T) {
	t.Parallel()

	t.Run("uses configured budget", func(t *testing.T) {
		cfg := Config{CooperatorRateLimitRPS: 25, CooperatorRateLimitBurst: 50}
		limiter := cfg.CooperatorLimiter()

		if limiter.Limit() != rate.Limit(25) {
			t.Fatalf("unexpected limit: %v", limiter.Limit())
		}
		if limiter.Burst() != 50 {
			t.Fatalf("unexpected burst: %d", limiter.Burst())
		}
	})

	t.Run("clamps non-positive values", func(t *testing.T) {
		cfg := Config{CooperatorRateLimitRPS: 0, CooperatorRateLimitBurst: 0}
		limiter := cfg.CooperatorLimiter()

		if limiter.Limit() != rate.Limit(1) {
			t.Fatalf("unexpected limit: %v", limiter.Limit())
		}
		if limiter.Burst() != 1 {
			t.Fatalf("unexpected burst: %d", limiter.Burst())
		}
		if !limiter.Allow() {
			t.Fatalf("expected clamped limiter to admit a request")
		}
	})
}
