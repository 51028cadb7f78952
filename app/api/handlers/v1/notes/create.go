package notes

import (
	"fmt"
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/note-share/business/v1/note"
	"github.com/ribgsilva/note-share/platform/web/handler"
	"net/http"
	"strings"
)

// Create godoc
// @Summary Create a note
// @Description Store a new note. A free custom extension becomes the note id, a taken or invalid one is replaced by a random id
// @Tags Note
// @Accept json
// @Produce json
// @Param note body note.NewNote true "Note content and optional custom extension"
// @Success 200 {object} notes.Created
// @Failure 400 {object} handler.Error
// @Failure 413 {object} handler.Error
// @Failure 500 {object} handler.Error
// @Router /api/notes [post]
func (h Handlers) Create(ctx *gin.Context) handler.Result {
	var newN note.NewNote
	if err := ctx.ShouldBindJSON(&newN); err != nil {
		return handler.BindFail(err)
	}

	created, err := h.Notes.Create(ctx.Request.Context(), newN)
	if err != nil {
		return handler.Fail(http.StatusInternalServerError, "failed to create note")
	}

	return handler.Result{
		Status: http.StatusOK,
		Body: Created{
			Success: true,
			NoteId:  created.Id,
			Url:     noteURL(ctx, created.Id),
			Note:    created,
		},
	}
}

// noteURL is where the editor serves a note
func noteURL(ctx *gin.Context, id string) string {
	scheme := "http"
	if ctx.Request.TLS != nil {
		scheme = "https"
	}
	switch proto := strings.ToLower(ctx.GetHeader("X-Forwarded-Proto")); proto {
	case "http", "https":
		scheme = proto
	}
	return fmt.Sprintf("%s://%s/note/%s", scheme, ctx.Request.Host, id)
}
