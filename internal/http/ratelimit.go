package http

import (
	"time"

	"github.com/didip/tollbooth/v7"
	"github.com/didip/tollbooth/v7/limiter"
	"github.com/gin-gonic/gin"
)

const rateLimitTTL = time.Hour

// NewRateLimiter builds a per-client limiter allowing rps requests a second.
func NewRateLimiter(rps float64) *limiter.Limiter {
	return tollbooth.NewLimiter(rps, &limiter.ExpirableOptions{
		DefaultExpirationTTL: rateLimitTTL,
	})
}

// LimitHandler rejects requests over the limiter's rate with 429.
func LimitHandler(lmt *limiter.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		httpError := tollbooth.LimitByRequest(lmt, c.Writer, c.Request)
		if httpError != nil {
			c.Data(httpError.StatusCode, lmt.GetMessageContentType(), []byte(httpError.Message))
			c.Abort()
			return
		}
		c.Next()
	}
}
