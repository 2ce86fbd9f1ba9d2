package middleware

import (
	"net/http"
	"strconv"
	"time"

	"pokelists-mcp/internal/identity"
	"pokelists-mcp/internal/logging"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	Enabled        bool
	RequestsPerMin int64
}

// NewRateLimitConfigFromEnv creates rate limit config from environment variables
func NewRateLimitConfigFromEnv() *RateLimitConfig {
	enabled := getEnv("RATE_LIMIT_ENABLED", "true") == "true"
	requestsPerMin, _ := strconv.ParseInt(getEnv("RATE_LIMIT_REQUESTS_PER_MIN", "120"), 10, 64)

	return &RateLimitConfig{
		Enabled:        enabled,
		RequestsPerMin: requestsPerMin,
	}
}

// GlobalRateLimiter creates an IP-keyed rate limiter middleware
func GlobalRateLimiter(config *RateLimitConfig) gin.HandlerFunc {
	if !config.Enabled {
		logging.Logger.Info("Rate limiting is disabled")
		return func(c *gin.Context) {
			c.Next()
		}
	}

	rate := limiter.Rate{
		Period: 1 * time.Minute,
		Limit:  config.RequestsPerMin,
	}

	store := memory.NewStore()
	instance := limiter.New(store, rate)

	middleware := mgin.NewMiddleware(instance, mgin.WithLimitReachedHandler(func(c *gin.Context) {
		logging.Logger.WithFields(map[string]interface{}{
			"client_ip":     c.ClientIP(),
			"path":          c.Request.URL.Path,
			"method":        c.Request.Method,
			"rate_limited":  true,
			"limit_per_min": config.RequestsPerMin,
		}).Warn("Rate limit exceeded")

		c.JSON(http.StatusTooManyRequests, gin.H{
			"code":       "RATE_LIMIT_EXCEEDED",
			"message":    "Too many requests. Please try again later.",
			"retryAfter": int(rate.Period.Seconds()),
		})
		c.Abort()
	}))

	logging.Logger.Infof("Rate limiting enabled: %d requests per minute", config.RequestsPerMin)
	return middleware
}

// PerUserRateLimiter creates a rate limiter keyed by the caller's user id
// header. Requests without the header fall back to IP-based limiting, so
// anonymous callers share per-IP buckets instead of one global bucket.
func PerUserRateLimiter(config *RateLimitConfig) gin.HandlerFunc {
	if !config.Enabled {
		logging.Logger.Info("Per-user rate limiting is disabled")
		return func(c *gin.Context) {
			c.Next()
		}
	}

	rate := limiter.Rate{
		Period: 1 * time.Minute,
		Limit:  config.RequestsPerMin,
	}

	store := memory.NewStore()
	instance := limiter.New(store, rate)

	keyGetter := func(c *gin.Context) string {
		if userID := c.GetHeader(identity.HeaderName); userID != "" {
			return "user:" + userID
		}
		return "ip:" + c.ClientIP()
	}

	middleware := mgin.NewMiddleware(instance,
		mgin.WithKeyGetter(keyGetter),
		mgin.WithLimitReachedHandler(func(c *gin.Context) {
			limitType := "ip"
			identifier := c.ClientIP()
			if userID := c.GetHeader(identity.HeaderName); userID != "" {
				limitType = "user"
				identifier = userID
			}

			logging.Logger.WithFields(map[string]interface{}{
				"limit_type":    limitType,
				"identifier":    identifier,
				"client_ip":     c.ClientIP(),
				"path":          c.Request.URL.Path,
				"method":        c.Request.Method,
				"rate_limited":  true,
				"limit_per_min": config.RequestsPerMin,
			}).Warn("Per-user rate limit exceeded")

			c.JSON(http.StatusTooManyRequests, gin.H{
				"code":       "RATE_LIMIT_EXCEEDED",
				"message":    "Too many requests from this account. Please try again later.",
				"retryAfter": int(rate.Period.Seconds()),
				"limit":      rate.Limit,
			})
			c.Abort()
		}))

	logging.Logger.Infof("Per-user rate limiting enabled: %d requests per minute", config.RequestsPerMin)
	return middleware
}
