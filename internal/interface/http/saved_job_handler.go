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

type SavedJobHandler struct {
	Svc     *application.SavedJobService
	Logger  *logrus.Logger
	Verbose bool
}

func NewSavedJobHandler(svc *application.SavedJobService, logger *logrus.Logger, verbose bool) *SavedJobHandler {
	return &SavedJobHandler{Svc: svc, Logger: logger, Verbose: verbose}
}

type saveJobRequest struct {
	Title       string `json:"title" binding:"required"`
	Company     string `json:"company" binding:"required"`
	Location    string `json:"location"`
	Description string `json:"description"`
	Salary      string `json:"salary"`
	JobType     string `json:"jobType"`
	URL         string `json:"url" binding:"omitempty,url"`
	Source      string `json:"source" binding:"required"`
}

func savedJobJSON(s *entity.SavedJob) gin.H {
	return gin.H{
		"id":          s.ID,
		"title":       s.Title,
		"company":     s.Company,
		"location":    s.Location,
		"description": s.Description,
		"salary":      s.Salary,
		"jobType":     s.JobType,
		"url":         s.URL,
		"source":      s.Source,
		"createdAt":   s.CreatedAt,
		"updatedAt":   s.UpdatedAt,
	}
}

func (h *SavedJobHandler) List(c *gin.Context) {
	uid := c.GetString("userID")
	saved, err := h.Svc.List(uid)
	if err != nil {
		respondError(c, err, h.Verbose)
		return
	}
	out := make([]gin.H, 0, len(saved))
	for _, s := range saved {
		out = append(out, savedJobJSON(s))
	}
	response.Success(c, http.StatusOK, out, "saved jobs", gin.H{"count": len(out)})
}

func (h *SavedJobHandler) Save(c *gin.Context) {
	uid := c.GetString("userID")
	var req saveJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	s, err := h.Svc.Save(uid, application.SaveJobInput{
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		Description: req.Description,
		Salary:      req.Salary,
		JobType:     req.JobType,
		URL:         req.URL,
		Source:      req.Source,
	})
	if err != nil {
		respondError(c, err, h.Verbose)
		return
	}
	response.Success(c, http.StatusCreated, savedJobJSON(s), "job saved", nil)
}

func (h *SavedJobHandler) Delete(c *gin.Context) {
	uid := c.GetString("userID")
	if err := h.Svc.Delete(uid, c.Param("id")); err != nil {
		respondError(c, err, h.Verbose)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"id": c.Param("id")}, "job removed from saved list", nil)
}
