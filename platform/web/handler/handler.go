package handler

import (
	"github.com/gin-gonic/gin"
)

// Result is what every endpoint returns; Wrapper writes it as the response
type Result struct {
	Status int
	Body   any
}

// Error is the body of every failed response
type Error struct {
	Message string `json:"error" example:"Failed to fetch notes"`
	Detail  string `json:"detail,omitempty" example:"stored note is corrupted"`
}

// Message is the body of responses that only confirm an action
type Message struct {
	Message string `json:"message" example:"Note deleted"`
}

type Handler func(ctx *gin.Context) Result

// Wrapper adapts a Handler to gin, rendering the Result body as json
func Wrapper(h Handler) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		r := h(ctx)
		if r.Body == nil {
			ctx.Status(r.Status)
			return
		}
		ctx.JSON(r.Status, r.Body)
	}
}
