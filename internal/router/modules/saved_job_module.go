package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/jobtrail/jobtrail-api/internal/interface/http"
)

// SavedJobModule wires the bookmarked-posting routes, all behind auth.
type SavedJobModule struct {
	Handler *handlers.SavedJobHandler
	Auth    gin.HandlerFunc
}

func NewSavedJobModule(h *handlers.SavedJobHandler, auth gin.HandlerFunc) *SavedJobModule {
	return &SavedJobModule{Handler: h, Auth: auth}
}

func (m *SavedJobModule) Register(rg *gin.RouterGroup) {
	saved := rg.Group("/saved-jobs")
	saved.Use(m.Auth)
	{
		saved.GET("", m.Handler.List)
		saved.POST("", m.Handler.Save)
		saved.DELETE("/:id", m.Handler.Delete)
	}
}
