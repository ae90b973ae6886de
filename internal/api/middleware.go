package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/time/rate"

	"github.com/moehq/moe/internal/logger"
)

const requestIDHeader = "X-Request-ID"

// DatabaseBinder returns middleware that attaches the shared connection's
// sub-database handle to every request context, before route dispatch.
// The handle is captured at registration time, so all requests observe
// the identical instance for the life of the process.
func DatabaseBinder(handle *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(databaseKey, handle)
		c.Next()
	}
}

// RequestID returns middleware that assigns a request ID to each request.
// An inbound X-Request-ID is preserved; otherwise one is generated.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

// CORS returns middleware that sets the allow-origin headers and
// short-circuits preflight requests
func CORS(origin string) gin.HandlerFunc {
	if origin == "" {
		origin = "*"
	}
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", origin)
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, "+requestIDHeader)

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// RateLimit returns middleware that rejects requests above the given
// rate with 429. A single token bucket covers the whole process.
func RateLimit(limit rate.Limit, burst int) gin.HandlerFunc {
	limiter := rate.NewLimiter(limit, burst)
	return func(c *gin.Context) {
		if !limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, APIResponse{
				Success: false,
				Error:   "rate limit exceeded",
			})
			return
		}
		c.Next()
	}
}

// AccessLog returns middleware that logs one line per completed request
func AccessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("%s %s %d %s %s",
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			time.Since(start),
			RequestIDFrom(c),
		)
	}
}
