package config

import "golang.org/x/time/rate"

// CooperatorLimiter builds the token-bucket limiter that callers of the
// cooperator service are expected to share. Non-positive values are clamped
// to 1 rather than producing a limiter that never admits a request.
func (c Config) CooperatorLimiter() *rate.Limiter {
	rps := c.CooperatorRateLimitRPS
	if rps <= 0 {
		rps = 1
	}

	burst := c.CooperatorRateLimitBurst
	if burst <= 0 {
		burst = 1
	}

	return rate.NewLimiter(rate.Limit(rps), burst)
}
