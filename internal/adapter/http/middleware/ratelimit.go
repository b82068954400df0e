package middleware

import (
	"fmt"
	"strconv"
	"time"

	redisStore "stp-signer/internal/adapter/storage/redis"
	"stp-signer/pkg/apperror"
	"stp-signer/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RateLimitRule defines a rate limit for an endpoint group.
type RateLimitRule struct {
	Limit  int64
	Window time.Duration
}

// DefaultRateLimitRules returns the rate limits per endpoint group.
func DefaultRateLimitRules() map[string]RateLimitRule {
	return map[string]RateLimitRule{
		"firma":      {Limit: 120, Window: time.Minute},
		"submit":     {Limit: 60, Window: time.Minute},
		"clasificar": {Limit: 300, Window: time.Minute},
		"lookup":     {Limit: 300, Window: time.Minute},
	}
}

// RateLimitRules overlays configured limits on the defaults. Groups with a
// non-positive limit keep their default; a non-positive window means one minute.
func RateLimitRules(window time.Duration, limits map[string]int64) map[string]RateLimitRule {
	if window <= 0 {
		window = time.Minute
	}
	rules := DefaultRateLimitRules()
	for group, rule := range rules {
		if limit := limits[group]; limit > 0 {
			rule.Limit = limit
		}
		rule.Window = window
		rules[group] = rule
	}
	return rules
}

// RateLimiter creates a rate-limiting middleware for a given endpoint group.
func RateLimiter(store *redisStore.RateLimitStore, group string, rule RateLimitRule, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		identifier := extractIdentifier(c)
		key := fmt.Sprintf("%s:%s", identifier, group)

		result, err := store.Allow(c.Request.Context(), key, rule.Limit, rule.Window)
		if err != nil {
			log.Warn().Err(err).Str("group", group).Msg("rate limit check failed, allowing request (degraded mode)")
			c.Next()
			return
		}

		// Always set rate limit headers
		c.Header("X-RateLimit-Limit", strconv.FormatInt(result.Limit, 10))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(result.Remaining, 10))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt, 10))

		if !result.Allowed {
			retryAfter := result.ResetAt - time.Now().Unix()
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.FormatInt(retryAfter, 10))
			response.Error(c, apperror.ErrRateLimitExceeded())
			c.Abort()
			return
		}

		c.Next()
	}
}

// extractIdentifier keys limits by operator, falling back to the client IP.
func extractIdentifier(c *gin.Context) string {
	if sub := c.GetString(CtxSubject); sub != "" {
		return "sub:" + sub
	}
	return "ip:" + c.ClientIP()
}
