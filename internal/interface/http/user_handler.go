package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/jobtrail/jobtrail-api/internal/application"
	"github.com/jobtrail/jobtrail-api/internal/domain/entity"
	"github.com/jobtrail/jobtrail-api/pkg/response"
	"github.com/jobtrail/jobtrail-api/pkg/validation"
)

type UserHandler struct {
	Svc     *application.UserService
	Logger  *logrus.Logger
	Verbose bool
}

func NewUserHandler(svc *application.UserService, logger *logrus.Logger, verbose bool) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger, Verbose: verbose}
}

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,pwd"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type updateProfileRequest struct {
	Name           string `json:"name"`
	Email          string `json:"email" binding:"omitempty,email"`
	ProfilePicture string `json:"profilePicture"`
	Password       string `json:"password" binding:"omitempty,pwd"`
}

func authJSON(res *application.AuthResult) gin.H {
	return gin.H{
		"id":             res.User.ID,
		"name":           res.User.Name,
		"email":          res.User.Email,
		"profilePicture": res.User.ProfilePicture,
		"token":          res.Token,
	}
}

func profileJSON(u *entity.User) gin.H {
	return gin.H{
		"id":             u.ID,
		"name":           u.Name,
		"email":          u.Email,
		"profilePicture": u.ProfilePicture,
		"createdAt":      u.CreatedAt,
		"updatedAt":      u.UpdatedAt,
	}
}

func (h *UserHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	res, err := h.Svc.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		respondError(c, err, h.Verbose)
		return
	}
	response.Success(c, http.StatusCreated, authJSON(res), "user registered", gin.H{"expires_at": res.TokenExpiry})
}

func (h *UserHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	res, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err, h.Verbose)
		return
	}
	response.Success(c, http.StatusOK, authJSON(res), "login successful", gin.H{"expires_at": res.TokenExpiry})
}

func (h *UserHandler) GetProfile(c *gin.Context) {
	uid := c.GetString("userID")
	u, err := h.Svc.GetProfile(uid)
	if err != nil {
		respondError(c, err, h.Verbose)
		return
	}
	response.Success(c, http.StatusOK, profileJSON(u), "profile", nil)
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	uid := c.GetString("userID")
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	res, err := h.Svc.UpdateProfile(c.Request.Context(), uid, application.UpdateProfileInput{
		Name:           req.Name,
		Email:          req.Email,
		ProfilePicture: req.ProfilePicture,
		Password:       req.Password,
	})
	if err != nil {
		respondError(c, err, h.Verbose)
		return
	}
	response.Success(c, http.StatusOK, authJSON(res), "profile updated", gin.H{"expires_at": res.TokenExpiry})
}

func (h *UserHandler) UploadAvatar(c *gin.Context) {
	uid := c.GetString("userID")
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "missing file", nil)
		return
	}
	defer func() { _ = file.Close() }()

	url, err := h.Svc.UploadAvatar(c.Request.Context(), uid, file, header.Filename, header.Header.Get("Content-Type"))
	if err != nil {
		respondError(c, err, h.Verbose)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"profilePicture": url}, "avatar uploaded", nil)
}
