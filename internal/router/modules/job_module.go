package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/jobtrail/jobtrail-api/internal/interface/http"
)

// JobModule wires the job application CRUD routes, all behind auth.
type JobModule struct {
	Handler *handlers.JobHandler
	Auth    gin.HandlerFunc
}

func NewJobModule(h *handlers.JobHandler, auth gin.HandlerFunc) *JobModule {
	return &JobModule{Handler: h, Auth: auth}
}

func (m *JobModule) Register(rg *gin.RouterGroup) {
	jobs := rg.Group("/jobs")
	jobs.Use(m.Auth)
	{
		jobs.GET("", m.Handler.List)
		jobs.POST("", m.Handler.Create)
		jobs.GET("/:id", m.Handler.Get)
		jobs.PUT("/:id", m.Handler.Update)
		jobs.DELETE("/:id", m.Handler.Delete)
	}
}
