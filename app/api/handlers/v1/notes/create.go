package notes

import (
	"errors"
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/note-list-api/business/v1/note"
	"github.com/ribgsilva/note-list-api/platform/web/handler"
	"github.com/ribgsilva/note-list-api/platform/web/mid"
	"net/http"
)

// Create godoc
// @Summary Create a note
// @Description Create a note, its id and date are assigned by the server
// @Tags Note
// @Accept json
// @Produce json
// @Param note body note.NewNote true "Note text"
// @Success 201 {object} note.Note
// @Failure 400 {object} handler.Error
// @Failure 500 {object} handler.Error
// @Router /api/notes [post]
func (h Handlers) Create(ctx *gin.Context) handler.Result {
	var newN note.NewNote
	if err := ctx.ShouldBindJSON(&newN); err != nil {
		return textRequired()
	}

	n, err := h.Notes.Create(ctx, newN)
	switch {
	case errors.Is(err, note.ErrTextRequired):
		return textRequired()
	case err != nil:
		h.Log.Errorw("create note", "requestID", mid.GetRequestID(ctx), "ERROR", err)
		return failure("Failed to add note", err)
	default:
		return handler.Result{
			Status: http.StatusCreated,
			Body:   n,
		}
	}
}

func textRequired() handler.Result {
	return handler.Result{
		Status: http.StatusBadRequest,
		Body:   handler.Error{Message: "Note text required"},
	}
}
