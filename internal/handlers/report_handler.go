package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"autocare/internal/services"
)

type ReportHandler struct {
	Service *services.ReportService
}

func NewReportHandler(service *services.ReportService) *ReportHandler {
	return &ReportHandler{Service: service}
}

// @Summary      Dashboard summary
// @Description  Lead and booking counts per status plus customer and store totals
// @Tags         Reports
// @Produce      json
// @Success      200  {object}  services.Summary
// @Failure      500  {object}  map[string]string
// @Router       /reports/summary [get]
func (h *ReportHandler) Summary(c *gin.Context) {
	summary, err := h.Service.GetSummary()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build summary"})
		return
	}
	c.JSON(http.StatusOK, summary)
}
