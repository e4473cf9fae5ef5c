package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"estatecrm/internal/services"
)

type ReportHandler struct {
	Service *services.ReportService
}

func NewReportHandler(service *services.ReportService) *ReportHandler {
	return &ReportHandler{Service: service}
}

// @Summary      Pipeline summary
// @Description  Lead counts per stage, every stage present even when empty
// @Tags         Reports
// @Produce      json
// @Success      200  {object}  services.PipelineSummary
// @Router       /reports/pipeline [get]
func (h *ReportHandler) PipelineSummary(c *gin.Context) {
	summary, err := h.Service.GetPipelineSummary(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build pipeline summary"})
		return
	}
	c.JSON(http.StatusOK, summary)
}

// @Summary      Pipeline report as PDF
// @Tags         Reports
// @Produce      application/pdf
// @Success      200  {file}  file
// @Router       /reports/pipeline/pdf [get]
func (h *ReportHandler) PipelinePDF(c *gin.Context) {
	path, err := h.Service.ExportPipelinePDF(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate pipeline report"})
		return
	}
	c.FileAttachment(path, "pipeline_report.pdf")
}
