package domain

import "time"

// ReportPeriod selects the reporting window.
type ReportPeriod string

const (
	PeriodDay     ReportPeriod = "DAY"
	PeriodWeek    ReportPeriod = "WEEK"
	PeriodMonth   ReportPeriod = "MONTH"
	PeriodYear    ReportPeriod = "YEAR"
	PeriodAllTime ReportPeriod = "ALL_TIME"
)

// Valid reports membership in the closed period vocabulary.
func (p ReportPeriod) Valid() bool {
	switch p {
	case PeriodDay, PeriodWeek, PeriodMonth, PeriodYear, PeriodAllTime:
		return true
	}
	return false
}

// Start computes the inclusive lower bound of the window ending at now.
// DAY is the start of the current calendar day; WEEK/MONTH/YEAR count back
// from now; ALL_TIME reaches to the epoch.
func (p ReportPeriod) Start(now time.Time) time.Time {
	switch p {
	case PeriodDay:
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	case PeriodWeek:
		return now.AddDate(0, 0, -7)
	case PeriodMonth:
		return now.AddDate(0, -1, 0)
	case PeriodYear:
		return now.AddDate(-1, 0, 0)
	default:
		return time.Unix(0, 0)
	}
}

// StatBucket is one row of a report breakdown. Derived on demand, never
// stored.
type StatBucket struct {
	Label      string
	Count      int
	Percentage float64
}

// Report aggregates the actor's visible set over a period. The bucket
// collections are zero-filled over the closed category and area
// enumerations, so their counts always sum to Total.
type Report struct {
	Period         ReportPeriod
	Total          int
	Resolved       int
	CategoryCounts []StatBucket
	AreaCounts     []StatBucket
}
