package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/note-share/app/api/handlers/v1/healthcheck"
	"github.com/ribgsilva/note-share/app/api/handlers/v1/notes"
	"github.com/ribgsilva/note-share/platform/web/handler"
)

func MapDefaults(r *gin.Engine) {
	r.GET("/v1/healthcheck", handler.Wrapper(healthcheck.Get))
}

func MapApi(r *gin.Engine, svc notes.Service) {
	h := notes.Handlers{Notes: svc}

	r.POST("/api/notes", handler.Wrapper(h.Create))
	r.GET("/api/notes/:id", handler.Wrapper(h.Get))
	r.PUT("/api/notes/:id", handler.Wrapper(h.Update))
	r.GET("/api/check/:extension", handler.Wrapper(h.Check))
}
