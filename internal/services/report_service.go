package services

import (
	"context"
	"time"

	"estatecrm/internal/models"
	"estatecrm/internal/pdf"
	"estatecrm/internal/repositories"
)

// PipelineSummary is the per-stage breakdown of the current book.
type PipelineSummary struct {
	Total       int          `json:"total"`
	Stages      []StageCount `json:"stages"`
	GeneratedAt time.Time    `json:"generated_at"`
}

type StageCount struct {
	Stage models.Stage `json:"stage"`
	Count int          `json:"count"`
}

type ReportService struct {
	leads *repositories.LeadRepository
	pdf   pdf.Generator
}

func NewReportService(leads *repositories.LeadRepository, gen pdf.Generator) *ReportService {
	return &ReportService{leads: leads, pdf: gen}
}

// GetPipelineSummary counts leads per stage, in pipeline order, with
// empty stages included so the report shape is stable.
func (s *ReportService) GetPipelineSummary(ctx context.Context) (*PipelineSummary, error) {
	counts, err := s.leads.CountByStage(ctx)
	if err != nil {
		return nil, err
	}

	summary := &PipelineSummary{GeneratedAt: time.Now()}
	for _, stage := range models.AllStages {
		n := counts[stage]
		summary.Stages = append(summary.Stages, StageCount{Stage: stage, Count: n})
		summary.Total += n
	}
	return summary, nil
}

// ExportPipelinePDF renders the summary as a PDF and returns the file path.
func (s *ReportService) ExportPipelinePDF(ctx context.Context) (string, error) {
	summary, err := s.GetPipelineSummary(ctx)
	if err != nil {
		return "", err
	}

	data := pdf.PipelineReportData{
		GeneratedAt: summary.GeneratedAt,
		Total:       summary.Total,
	}
	for _, sc := range summary.Stages {
		data.Rows = append(data.Rows, pdf.PipelineReportRow{
			Stage: string(sc.Stage),
			Count: sc.Count,
		})
	}
	return s.pdf.GeneratePipelineReport(data)
}
