package notes

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/note-list-api/platform/web/handler"
	"github.com/ribgsilva/note-list-api/platform/web/mid"
	"net/http"
	"strconv"
)

// Delete godoc
// @Summary Delete a note
// @Description Delete the notes with the given id, succeeds even when none matches
// @Tags Note
// @Produce json
// @Param id path integer true "Note id"
// @Success 200 {object} handler.Message
// @Failure 400 {object} handler.Error
// @Failure 500 {object} handler.Error
// @Router /api/notes/{id} [delete]
func (h Handlers) Delete(ctx *gin.Context) handler.Result {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return handler.Result{
			Status: http.StatusBadRequest,
			Body:   handler.Error{Message: "invalid id"},
		}
	}

	if err := h.Notes.Delete(ctx, id); err != nil {
		h.Log.Errorw("delete note", "requestID", mid.GetRequestID(ctx), "id", id, "ERROR", err)
		return failure("Failed to delete note", err)
	}

	return handler.Result{
		Status: http.StatusOK,
		Body:   handler.Message{Message: "Note deleted"},
	}
}
