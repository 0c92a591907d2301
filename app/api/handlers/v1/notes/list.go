package notes

import (
	"errors"
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/note-list-api/business/v1/note"
	"github.com/ribgsilva/note-list-api/platform/web/handler"
	"github.com/ribgsilva/note-list-api/platform/web/mid"
	"net/http"
)

// List godoc
// @Summary List notes
// @Description List every note, the most recently created first
// @Tags Note
// @Produce json
// @Success 200 {array} note.Note
// @Failure 500 {object} handler.Error
// @Router /api/notes [get]
func (h Handlers) List(ctx *gin.Context) handler.Result {
	notes, err := h.Notes.List(ctx)
	if err != nil {
		h.Log.Errorw("list notes", "requestID", mid.GetRequestID(ctx), "ERROR", err)
		return failure("Failed to fetch notes", err)
	}

	return handler.Result{
		Status: http.StatusOK,
		Body:   notes,
	}
}

func failure(message string, err error) handler.Result {
	body := handler.Error{Message: message}
	if errors.Is(err, note.ErrCorrupted) {
		body.Detail = note.ErrCorrupted.Error()
	}
	return handler.Result{
		Status: http.StatusInternalServerError,
		Body:   body,
	}
}
