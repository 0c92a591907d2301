package healthcheck

import (
	"context"
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/note-list-api/platform/web/handler"
	"net/http"
	"time"
)

// Pinger is anything able to tell whether the store answers
type Pinger interface {
	Ping(ctx context.Context) error
}

type Status struct {
	Status string `json:"status" example:"ok"`
}

// Get godoc
// @Summary Healthcheck
// @Description Reports whether the api can reach its store
// @Tags Health
// @Produce json
// @Success 200 {object} healthcheck.Status
// @Failure 503 {object} handler.Error
// @Router /v1/healthcheck [get]
func Get(p Pinger) handler.Handler {
	return func(ctx *gin.Context) handler.Result {
		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()

		if err := p.Ping(pingCtx); err != nil {
			return handler.Result{
				Status: http.StatusServiceUnavailable,
				Body:   handler.Error{Message: "store unavailable"},
			}
		}
		return handler.Result{
			Status: http.StatusOK,
			Body:   Status{Status: "ok"},
		}
	}
}
