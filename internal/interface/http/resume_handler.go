package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/jobtrail/jobtrail-api/internal/application"
	"github.com/jobtrail/jobtrail-api/internal/domain/entity"
	"github.com/jobtrail/jobtrail-api/pkg/response"
	"github.com/jobtrail/jobtrail-api/pkg/validation"
)

type ResumeHandler struct {
	Svc     *application.ResumeService
	Logger  *logrus.Logger
	Verbose bool
}

func NewResumeHandler(svc *application.ResumeService, logger *logrus.Logger, verbose bool) *ResumeHandler {
	return &ResumeHandler{Svc: svc, Logger: logger, Verbose: verbose}
}

type createResumeRequest struct {
	Name     string `json:"name" binding:"required"`
	FileName string `json:"fileName" binding:"required"`
	FileData string `json:"fileData" binding:"required"`
}

// resumeJSON renders resume metadata; file bytes are never present here.
func resumeJSON(r *entity.Resume) gin.H {
	return gin.H{
		"id":           r.ID,
		"name":         r.Name,
		"originalName": r.OriginalName,
		"fileSize":     r.FileSize,
		"contentType":  r.ContentType,
		"uploadDate":   r.UploadDate,
		"createdAt":    r.CreatedAt,
		"updatedAt":    r.UpdatedAt,
	}
}

func (h *ResumeHandler) List(c *gin.Context) {
	uid := c.GetString("userID")
	resumes, err := h.Svc.List(uid)
	if err != nil {
		respondError(c, err, h.Verbose)
		return
	}
	out := make([]gin.H, 0, len(resumes))
	for _, r := range resumes {
		out = append(out, resumeJSON(r))
	}
	response.Success(c, http.StatusOK, out, "resumes", gin.H{"count": len(out)})
}

func (h *ResumeHandler) Get(c *gin.Context) {
	uid := c.GetString("userID")
	r, err := h.Svc.Get(uid, c.Param("id"))
	if err != nil {
		respondError(c, err, h.Verbose)
		return
	}
	response.Success(c, http.StatusOK, resumeJSON(r), "resume", nil)
}

func (h *ResumeHandler) Create(c *gin.Context) {
	uid := c.GetString("userID")
	var req createResumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "please provide name, file data, and file name", validation.ToDetails(err))
		return
	}
	r, err := h.Svc.Create(uid, application.CreateResumeInput{
		Name:     req.Name,
		FileName: req.FileName,
		FileData: req.FileData,
	})
	if err != nil {
		respondError(c, err, h.Verbose)
		return
	}
	response.Success(c, http.StatusCreated, resumeJSON(r), "resume uploaded", nil)
}

// Download streams the stored PDF bytes with attachment headers.
func (h *ResumeHandler) Download(c *gin.Context) {
	uid := c.GetString("userID")
	r, data, err := h.Svc.Download(uid, c.Param("id"))
	if err != nil {
		respondError(c, err, h.Verbose)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", r.OriginalName))
	c.Header("Content-Length", strconv.FormatInt(r.FileSize, 10))
	c.Data(http.StatusOK, r.ContentType, data)
}

func (h *ResumeHandler) Delete(c *gin.Context) {
	uid := c.GetString("userID")
	id, err := h.Svc.Delete(uid, c.Param("id"))
	if err != nil {
		respondError(c, err, h.Verbose)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"id": id}, "resume deleted", nil)
}
