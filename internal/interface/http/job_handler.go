package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/jobtrail/jobtrail-api/internal/application"
	"github.com/jobtrail/jobtrail-api/internal/domain/entity"
	"github.com/jobtrail/jobtrail-api/pkg/response"
	"github.com/jobtrail/jobtrail-api/pkg/validation"
)

type JobHandler struct {
	Svc     *application.JobService
	Logger  *logrus.Logger
	Verbose bool
}

func NewJobHandler(svc *application.JobService, logger *logrus.Logger, verbose bool) *JobHandler {
	return &JobHandler{Svc: svc, Logger: logger, Verbose: verbose}
}

type createJobRequest struct {
	Company       string    `json:"company" binding:"required"`
	Role          string    `json:"role" binding:"required"`
	Status        string    `json:"status" binding:"required"`
	DateApplied   time.Time `json:"dateApplied" binding:"required"`
	Location      string    `json:"location"`
	Salary        string    `json:"salary"`
	Link          string    `json:"link"`
	Description   string    `json:"description"`
	Notes         string    `json:"notes"`
	ContactPerson string    `json:"contactPerson"`
	ContactEmail  string    `json:"contactEmail" binding:"omitempty,email"`
	ResumeID      *string   `json:"resumeId"`
}

type updateJobRequest struct {
	Company       *string    `json:"company"`
	Role          *string    `json:"role"`
	Status        *string    `json:"status"`
	DateApplied   *time.Time `json:"dateApplied"`
	Location      *string    `json:"location"`
	Salary        *string    `json:"salary"`
	Link          *string    `json:"link"`
	Description   *string    `json:"description"`
	Notes         *string    `json:"notes"`
	ContactPerson *string    `json:"contactPerson"`
	ContactEmail  *string    `json:"contactEmail" binding:"omitempty"`
	ResumeID      *string    `json:"resumeId"`
}

func jobJSON(j *entity.Job) gin.H {
	out := gin.H{
		"id":            j.ID,
		"company":       j.Company,
		"role":          j.Role,
		"status":        j.Status,
		"dateApplied":   j.DateApplied,
		"location":      j.Location,
		"salary":        j.Salary,
		"link":          j.Link,
		"description":   j.Description,
		"notes":         j.Notes,
		"contactPerson": j.ContactPerson,
		"contactEmail":  j.ContactEmail,
		"createdAt":     j.CreatedAt,
		"updatedAt":     j.UpdatedAt,
	}
	if j.Resume != nil {
		out["resume"] = j.Resume
	}
	return out
}

func jobsJSON(jobs []*entity.Job) []gin.H {
	out := make([]gin.H, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, jobJSON(j))
	}
	return out
}

func (h *JobHandler) List(c *gin.Context) {
	uid := c.GetString("userID")
	jobs, err := h.Svc.List(uid)
	if err != nil {
		respondError(c, err, h.Verbose)
		return
	}
	response.Success(c, http.StatusOK, jobsJSON(jobs), "jobs", gin.H{"count": len(jobs)})
}

func (h *JobHandler) Get(c *gin.Context) {
	uid := c.GetString("userID")
	j, err := h.Svc.Get(uid, c.Param("id"))
	if err != nil {
		respondError(c, err, h.Verbose)
		return
	}
	response.Success(c, http.StatusOK, jobJSON(j), "job", nil)
}

func (h *JobHandler) Create(c *gin.Context) {
	uid := c.GetString("userID")
	var req createJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "please provide company, role, status, and date applied", validation.ToDetails(err))
		return
	}
	j, err := h.Svc.Create(uid, application.CreateJobInput{
		Company:       req.Company,
		Role:          req.Role,
		Status:        req.Status,
		DateApplied:   req.DateApplied,
		Location:      req.Location,
		Salary:        req.Salary,
		Link:          req.Link,
		Description:   req.Description,
		Notes:         req.Notes,
		ContactPerson: req.ContactPerson,
		ContactEmail:  req.ContactEmail,
		ResumeID:      req.ResumeID,
	})
	if err != nil {
		respondError(c, err, h.Verbose)
		return
	}
	response.Success(c, http.StatusCreated, jobJSON(j), "job created", nil)
}

func (h *JobHandler) Update(c *gin.Context) {
	uid := c.GetString("userID")
	var req updateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	j, err := h.Svc.Update(uid, c.Param("id"), application.UpdateJobInput{
		Company:       req.Company,
		Role:          req.Role,
		Status:        req.Status,
		DateApplied:   req.DateApplied,
		Location:      req.Location,
		Salary:        req.Salary,
		Link:          req.Link,
		Description:   req.Description,
		Notes:         req.Notes,
		ContactPerson: req.ContactPerson,
		ContactEmail:  req.ContactEmail,
		ResumeID:      req.ResumeID,
	})
	if err != nil {
		respondError(c, err, h.Verbose)
		return
	}
	response.Success(c, http.StatusOK, jobJSON(j), "job updated", nil)
}

func (h *JobHandler) Delete(c *gin.Context) {
	uid := c.GetString("userID")
	id, err := h.Svc.Delete(uid, c.Param("id"))
	if err != nil {
		respondError(c, err, h.Verbose)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"id": id}, "job deleted", nil)
}
