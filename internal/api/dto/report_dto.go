package dto

import "github.com/spec-kit/constituent-office/internal/domain"

// StatBucketResponse is one labelled count with its share of the total.
type StatBucketResponse struct {
	Label      string  `json:"label"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// ReportResponse is the aggregated view for one period.
type ReportResponse struct {
	Period     domain.ReportPeriod  `json:"period"`
	Total      int                  `json:"total"`
	Resolved   int                  `json:"resolved"`
	ByCategory []StatBucketResponse `json:"by_category"`
	ByArea     []StatBucketResponse `json:"by_area"`
}
