package notes

import (
	"errors"
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/note-share/business/v1/note"
	"github.com/ribgsilva/note-share/platform/web/handler"
	"net/http"
)

// Get godoc
// @Summary Find a note
// @Description Find a note using its id
// @Tags Note
// @Produce json
// @Param id path string true "Note id"
// @Success 200 {object} notes.Found
// @Failure 404 {object} handler.Error
// @Failure 500 {object} handler.Error
// @Router /api/notes/{id} [get]
func (h Handlers) Get(ctx *gin.Context) handler.Result {
	get, err := h.Notes.Find(ctx.Request.Context(), ctx.Param("id"))

	switch {
	case errors.Is(err, note.ErrNotFound):
		return handler.Fail(http.StatusNotFound, "Note not found")
	case err != nil:
		return handler.Fail(http.StatusInternalServerError, "failed to find note")
	default:
		return handler.Result{
			Status: http.StatusOK,
			Body:   Found{Success: true, Note: get},
		}
	}
}
