package service

import (
	"context"
	"time"

	"github.com/spec-kit/constituent-office/internal/domain"
	"github.com/spec-kit/constituent-office/internal/repository"
	apperrors "github.com/spec-kit/constituent-office/pkg/util"
)

// ReportService derives time-windowed statistics from an actor's visible
// set. Nothing here is persisted; every report is recomputed on demand.
type ReportService struct {
	complaints repository.ComplaintRepository
}

// NewReportService constructs the service.
func NewReportService(complaints repository.ComplaintRepository) *ReportService {
	return &ReportService{complaints: complaints}
}

// Build aggregates the actor's visible complaints over the period.
func (s *ReportService) Build(ctx context.Context, actor *domain.Actor, period domain.ReportPeriod) (*domain.Report, error) {
	if !period.Valid() {
		return nil, apperrors.NewValidationError("unknown report period", map[string]any{"period": period})
	}
	all, err := s.complaints.ListAll(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	visible := VisibleSet(actor, all)
	return BuildReport(visible, period, time.Now()), nil
}

// BuildReport computes the aggregation over an already-visible collection.
// Buckets are zero-filled over the closed category and area enumerations,
// so bucket counts always sum to Total; percentage is 0 when Total is 0.
func BuildReport(visible []domain.Complaint, period domain.ReportPeriod, now time.Time) *domain.Report {
	periodStart := period.Start(now)

	var windowed []domain.Complaint
	for _, c := range visible {
		if !c.CreatedAt.Before(periodStart) {
			windowed = append(windowed, c)
		}
	}

	report := &domain.Report{Period: period, Total: len(windowed)}
	for _, c := range windowed {
		if c.Status == domain.StatusResolved {
			report.Resolved++
		}
	}

	byCategory := make(map[domain.Category]int, len(windowed))
	byArea := make(map[domain.Area]int, len(windowed))
	for _, c := range windowed {
		byCategory[c.Category]++
		byArea[c.Area]++
	}

	for _, cat := range domain.Categories() {
		report.CategoryCounts = append(report.CategoryCounts, bucket(string(cat), byCategory[cat], report.Total))
	}
	for _, area := range domain.Areas() {
		report.AreaCounts = append(report.AreaCounts, bucket(string(area), byArea[area], report.Total))
	}
	return report
}

func bucket(label string, count, total int) domain.StatBucket {
	b := domain.StatBucket{Label: label, Count: count}
	if total > 0 {
		b.Percentage = 100 * float64(count) / float64(total)
	}
	return b
}
