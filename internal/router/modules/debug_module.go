package modules

import (
	"expvar"

	"github.com/gin-gonic/gin"
)

// DebugModule exposes expvar counters. Only registered when
// DEBUG_METRICS_ENABLED is set; the route is unauthenticated and meant
// for internal networks.
type DebugModule struct{}

func NewDebugModule() *DebugModule {
	return &DebugModule{}
}

func (m *DebugModule) Register(rg *gin.RouterGroup) {
	rg.GET("/debug/vars", gin.WrapH(expvar.Handler()))
}
