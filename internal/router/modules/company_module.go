package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/jobtrail/jobtrail-api/internal/interface/http"
)

// CompanyModule wires the company CRUD and catalog search routes.
// /companies/search is registered before the :id routes so it is never
// swallowed by the parameter match.
type CompanyModule struct {
	Handler *handlers.CompanyHandler
	Auth    gin.HandlerFunc
}

func NewCompanyModule(h *handlers.CompanyHandler, auth gin.HandlerFunc) *CompanyModule {
	return &CompanyModule{Handler: h, Auth: auth}
}

func (m *CompanyModule) Register(rg *gin.RouterGroup) {
	companies := rg.Group("/companies")
	companies.Use(m.Auth)
	{
		companies.GET("/search", m.Handler.Search)
		companies.GET("", m.Handler.List)
		companies.POST("", m.Handler.Create)
		companies.GET("/:id", m.Handler.Get)
		companies.PUT("/:id", m.Handler.Update)
		companies.DELETE("/:id", m.Handler.Delete)
	}
}
