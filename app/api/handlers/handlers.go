package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/note-list-api/app/api/handlers/v1/healthcheck"
	"github.com/ribgsilva/note-list-api/app/api/handlers/v1/notes"
	"github.com/ribgsilva/note-list-api/platform/web/handler"
	"net/http"
)

func MapDefaults(r *gin.Engine, p healthcheck.Pinger) {
	r.GET("/v1/healthcheck", handler.Wrapper(healthcheck.Get(p)))
}

func MapApi(r *gin.Engine, h notes.Handlers) {
	api := r.Group("/api")
	api.GET("/notes", handler.Wrapper(h.List))
	api.POST("/notes", handler.Wrapper(h.Create))
	api.DELETE("/notes/:id", handler.Wrapper(h.Delete))
}

// MapStatic serves the files under dir for every GET or HEAD no route claims
func MapStatic(r *gin.Engine, dir string) {
	files := http.FileServer(http.Dir(dir))
	r.NoRoute(func(ctx *gin.Context) {
		if ctx.Request.Method != http.MethodGet && ctx.Request.Method != http.MethodHead {
			ctx.JSON(http.StatusNotFound, handler.Error{Message: "Not found"})
			return
		}
		files.ServeHTTP(ctx.Writer, ctx.Request)
	})
}
