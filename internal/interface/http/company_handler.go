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

type CompanyHandler struct {
	Svc     *application.CompanyService
	Logger  *logrus.Logger
	Verbose bool
}

func NewCompanyHandler(svc *application.CompanyService, logger *logrus.Logger, verbose bool) *CompanyHandler {
	return &CompanyHandler{Svc: svc, Logger: logger, Verbose: verbose}
}

type createCompanyRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Website     string `json:"website" binding:"omitempty,url"`
	Industry    string `json:"industry"`
	Logo        string `json:"logo"`
	Location    string `json:"location"`
	Size        string `json:"size"`
	JobCount    int    `json:"jobCount"`
}

type updateCompanyRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Website     *string `json:"website"`
	Industry    *string `json:"industry"`
	Logo        *string `json:"logo"`
	Location    *string `json:"location"`
	Size        *string `json:"size"`
	JobCount    *int    `json:"jobCount"`
}

func companyJSON(co *entity.Company) gin.H {
	return gin.H{
		"id":          co.ID,
		"name":        co.Name,
		"description": co.Description,
		"website":     co.Website,
		"industry":    co.Industry,
		"logo":        co.Logo,
		"location":    co.Location,
		"size":        co.Size,
		"jobCount":    co.JobCount,
		"createdAt":   co.CreatedAt,
		"updatedAt":   co.UpdatedAt,
	}
}

func (h *CompanyHandler) List(c *gin.Context) {
	uid := c.GetString("userID")
	companies, err := h.Svc.List(uid)
	if err != nil {
		respondError(c, err, h.Verbose)
		return
	}
	out := make([]gin.H, 0, len(companies))
	for _, co := range companies {
		out = append(out, companyJSON(co))
	}
	response.Success(c, http.StatusOK, out, "companies", gin.H{"count": len(out)})
}

// Search runs over the fixed company catalog, not the caller's records.
func (h *CompanyHandler) Search(c *gin.Context) {
	results := h.Svc.Search(c.Query("q"))
	response.Success(c, http.StatusOK, results, "company search results", gin.H{"count": len(results)})
}

func (h *CompanyHandler) Get(c *gin.Context) {
	uid := c.GetString("userID")
	co, err := h.Svc.Get(uid, c.Param("id"))
	if err != nil {
		respondError(c, err, h.Verbose)
		return
	}
	response.Success(c, http.StatusOK, companyJSON(co), "company", nil)
}

func (h *CompanyHandler) Create(c *gin.Context) {
	uid := c.GetString("userID")
	var req createCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	co, err := h.Svc.Create(uid, application.CompanyInput{
		Name:        req.Name,
		Description: req.Description,
		Website:     req.Website,
		Industry:    req.Industry,
		Logo:        req.Logo,
		Location:    req.Location,
		Size:        req.Size,
		JobCount:    req.JobCount,
	})
	if err != nil {
		respondError(c, err, h.Verbose)
		return
	}
	response.Success(c, http.StatusCreated, companyJSON(co), "company created", nil)
}

func (h *CompanyHandler) Update(c *gin.Context) {
	uid := c.GetString("userID")
	var req updateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	co, err := h.Svc.Update(uid, c.Param("id"), application.UpdateCompanyInput{
		Name:        req.Name,
		Description: req.Description,
		Website:     req.Website,
		Industry:    req.Industry,
		Logo:        req.Logo,
		Location:    req.Location,
		Size:        req.Size,
		JobCount:    req.JobCount,
	})
	if err != nil {
		respondError(c, err, h.Verbose)
		return
	}
	response.Success(c, http.StatusOK, companyJSON(co), "company updated", nil)
}

func (h *CompanyHandler) Delete(c *gin.Context) {
	uid := c.GetString("userID")
	id, err := h.Svc.Delete(uid, c.Param("id"))
	if err != nil {
		respondError(c, err, h.Verbose)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"id": id}, "company removed", nil)
}
