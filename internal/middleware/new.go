package middleware

import (
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/time/rate"

	"travel-planner/config"
	"travel-planner/pkg/log"
)

// limiterTableSize bounds the per-client limiter table so unique client
// addresses cannot grow it without limit.
const limiterTableSize = 1024

type Middleware struct {
	l        log.Logger
	cfg      config.RateLimitConfig
	limiters *lru.Cache[string, *rate.Limiter]
}

func New(l log.Logger, cfg config.RateLimitConfig) Middleware {
	limiters, _ := lru.New[string, *rate.Limiter](limiterTableSize)
	return Middleware{
		l:        l,
		cfg:      cfg,
		limiters: limiters,
	}
}
