package notes

import (
	"errors"
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/note-share/business/v1/note"
	"github.com/ribgsilva/note-share/platform/web/handler"
	"net/http"
)

// Update godoc
// @Summary Update a note
// @Description Replace the content of a note, used by the editor autosave
// @Tags Note
// @Accept json
// @Produce json
// @Param id path string true "Note id"
// @Param note body notes.UpdateBody true "New content"
// @Success 200 {object} notes.Found
// @Failure 400 {object} handler.Error
// @Failure 413 {object} handler.Error
// @Failure 404 {object} handler.Error
// @Failure 500 {object} handler.Error
// @Router /api/notes/{id} [put]
func (h Handlers) Update(ctx *gin.Context) handler.Result {
	var body UpdateBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		return handler.BindFail(err)
	}

	updated, err := h.Notes.Update(ctx.Request.Context(), ctx.Param("id"), body.Content)

	switch {
	case errors.Is(err, note.ErrNotFound):
		return handler.Fail(http.StatusNotFound, "Note not found")
	case err != nil:
		return handler.Fail(http.StatusInternalServerError, "failed to update note")
	default:
		return handler.Result{
			Status: http.StatusOK,
			Body:   Found{Success: true, Note: updated},
		}
	}
}
