package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/jobtrail/jobtrail-api/internal/interface/http"
)

// UserModule wires registration, login and profile routes.
// Public: POST /api/users, POST /api/users/login
// Protected: GET/PUT /api/users/profile, POST /api/users/profile/avatar
type UserModule struct {
	Handler *handlers.UserHandler
	Auth    gin.HandlerFunc
}

func NewUserModule(h *handlers.UserHandler, auth gin.HandlerFunc) *UserModule {
	return &UserModule{Handler: h, Auth: auth}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	rg.POST("/users", m.Handler.Register)
	rg.POST("/users/login", m.Handler.Login)

	auth := rg.Group("/users")
	auth.Use(m.Auth)
	{
		auth.GET("/profile", m.Handler.GetProfile)
		auth.PUT("/profile", m.Handler.UpdateProfile)
		auth.POST("/profile/avatar", m.Handler.UploadAvatar)
	}
}
