package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/constituent-office/internal/api/dto"
	"github.com/spec-kit/constituent-office/internal/auth"
	"github.com/spec-kit/constituent-office/internal/domain"
	"github.com/spec-kit/constituent-office/internal/service"
	apperrors "github.com/spec-kit/constituent-office/pkg/util"
)

// ReportsHandler exposes the aggregation endpoint.
type ReportsHandler struct {
	service *service.ReportService
}

// NewReportsHandler constructs handler.
func NewReportsHandler(reportService *service.ReportService) *ReportsHandler {
	return &ReportsHandler{service: reportService}
}

// Get GET /reports?period=WEEK.
func (h *ReportsHandler) Get(c *fiber.Ctx) error {
	actor, ok := auth.ActorFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	period := domain.ReportPeriod(c.Query("period", string(domain.PeriodAllTime)))
	report, err := h.service.Build(c.Context(), actor, period)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": reportResponse(report)})
}

func reportResponse(report *domain.Report) dto.ReportResponse {
	return dto.ReportResponse{
		Period:     report.Period,
		Total:      report.Total,
		Resolved:   report.Resolved,
		ByCategory: bucketResponses(report.CategoryCounts),
		ByArea:     bucketResponses(report.AreaCounts),
	}
}

func bucketResponses(buckets []domain.StatBucket) []dto.StatBucketResponse {
	out := make([]dto.StatBucketResponse, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, dto.StatBucketResponse{
			Label:      b.Label,
			Count:      b.Count,
			Percentage: b.Percentage,
		})
	}
	return out
}
