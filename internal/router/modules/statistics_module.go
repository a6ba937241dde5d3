package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/jobtrail/jobtrail-api/internal/interface/http"
)

// StatisticsModule wires the dashboard summary route.
type StatisticsModule struct {
	Handler *handlers.StatisticsHandler
	Auth    gin.HandlerFunc
}

func NewStatisticsModule(h *handlers.StatisticsHandler, auth gin.HandlerFunc) *StatisticsModule {
	return &StatisticsModule{Handler: h, Auth: auth}
}

func (m *StatisticsModule) Register(rg *gin.RouterGroup) {
	stats := rg.Group("/statistics")
	stats.Use(m.Auth)
	{
		stats.GET("", m.Handler.Summary)
	}
}
