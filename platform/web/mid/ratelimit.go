package mid

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/note-list-api/platform/web/handler"
	"golang.org/x/time/rate"
	"net/http"
)

// RateLimit rejects requests above rps requests per second, allowing bursts of burst requests.
// A non positive rps disables the limit.
func RateLimit(rps, burst int) gin.HandlerFunc {
	if rps <= 0 {
		return func(ctx *gin.Context) { ctx.Next() }
	}
	if burst <= 0 {
		burst = 1
	}

	limiter := rate.NewLimiter(rate.Limit(rps), burst)

	return func(ctx *gin.Context) {
		if !limiter.Allow() {
			ctx.AbortWithStatusJSON(http.StatusTooManyRequests, handler.Error{Message: "Too many requests"})
			return
		}
		ctx.Next()
	}
}
