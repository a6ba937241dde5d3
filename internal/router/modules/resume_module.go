package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/jobtrail/jobtrail-api/internal/interface/http"
)

// ResumeModule wires resume metadata and download routes, all behind auth.
type ResumeModule struct {
	Handler *handlers.ResumeHandler
	Auth    gin.HandlerFunc
}

func NewResumeModule(h *handlers.ResumeHandler, auth gin.HandlerFunc) *ResumeModule {
	return &ResumeModule{Handler: h, Auth: auth}
}

func (m *ResumeModule) Register(rg *gin.RouterGroup) {
	resumes := rg.Group("/resumes")
	resumes.Use(m.Auth)
	{
		resumes.GET("", m.Handler.List)
		resumes.POST("", m.Handler.Create)
		resumes.GET("/:id", m.Handler.Get)
		resumes.GET("/:id/download", m.Handler.Download)
		resumes.DELETE("/:id", m.Handler.Delete)
	}
}
