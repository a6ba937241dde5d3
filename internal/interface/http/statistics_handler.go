package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/jobtrail/jobtrail-api/internal/application"
	"github.com/jobtrail/jobtrail-api/pkg/response"
)

type StatisticsHandler struct {
	Svc     *application.StatisticsService
	Logger  *logrus.Logger
	Verbose bool
}

func NewStatisticsHandler(svc *application.StatisticsService, logger *logrus.Logger, verbose bool) *StatisticsHandler {
	return &StatisticsHandler{Svc: svc, Logger: logger, Verbose: verbose}
}

func (h *StatisticsHandler) Summary(c *gin.Context) {
	uid := c.GetString("userID")
	summary, err := h.Svc.Summary(uid)
	if err != nil {
		respondError(c, err, h.Verbose)
		return
	}
	response.Success(c, http.StatusOK, summary, "statistics", nil)
}
