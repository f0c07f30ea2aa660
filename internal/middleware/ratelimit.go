package middleware

import (
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimit rejects requests beyond a shared token bucket with 429.
func RateLimit(requestsPerSecond float64, burst int) gin.HandlerFunc {
	limiter := rate.NewLimiter(rate.Limit(requestsPerSecond), burst)
	retryAfter := "1"
	if requestsPerSecond > 0 && requestsPerSecond < 1 {
		retryAfter = strconv.Itoa(int(math.Ceil(1 / requestsPerSecond)))
	}

	return func(c *gin.Context) {
		if !limiter.Allow() {
			c.Header("Retry-After", retryAfter)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"code":       "RATE_LIMIT_EXCEEDED",
				"message":    "too many requests",
				"request_id": c.GetString(RequestIDKey),
				"timestamp":  time.Now().UTC(),
			})
			return
		}
		c.Next()
	}
}

// Metrics records request counts and latency. route is the matched pattern,
// so ids in paths do not explode label cardinality.
func Metrics(observe func(method, route string, status int, elapsed time.Duration)) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		observe(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}
