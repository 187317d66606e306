package middleware

import (
	"time"

	"github.com/gorilla/mux"
	"github.com/ulule/limiter/v3"
	mhttp "github.com/ulule/limiter/v3/drivers/middleware/stdlib"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

type RateLimitConfig struct {
	RequestsPerPeriod int
	Period            time.Duration
	Store             limiter.Store
}

func NewMemoryStore() limiter.Store {
	return memory.NewStore()
}

// RateLimit limits requests per client IP against the configured store.
func RateLimit(cfg RateLimitConfig) mux.MiddlewareFunc {
	period := cfg.Period
	if period <= 0 {
		period = time.Second
	}
	store := cfg.Store
	if store == nil {
		store = NewMemoryStore()
	}
	instance := limiter.New(store, limiter.Rate{
		Period: period,
		Limit:  int64(cfg.RequestsPerPeriod),
	})
	return mhttp.NewMiddleware(instance).Handler
}

// IPRateLimitPeriod is a convenience wrapper for endpoint-scoped limits,
// e.g. login attempts per IP per minute.
func IPRateLimitPeriod(requests int, period time.Duration) mux.MiddlewareFunc {
	return RateLimit(RateLimitConfig{
		RequestsPerPeriod: requests,
		Period:            period,
		Store:             NewMemoryStore(),
	})
}
