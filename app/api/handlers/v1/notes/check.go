package notes

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/note-share/platform/web/handler"
	"net/http"
)

// Check godoc
// @Summary Check a custom extension
// @Description Tell if a custom extension is free right now, nothing is reserved
// @Tags Note
// @Produce json
// @Param extension path string true "Custom extension"
// @Success 200 {object} notes.Checked
// @Router /api/check/{extension} [get]
func (h Handlers) Check(ctx *gin.Context) handler.Result {
	return handler.Result{
		Status: http.StatusOK,
		Body: Checked{
			Success:      true,
			Availability: h.Notes.CheckAvailability(ctx.Request.Context(), ctx.Param("extension")),
		},
	}
}
