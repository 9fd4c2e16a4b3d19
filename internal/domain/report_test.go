package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestReportPeriodStart(t *testing.T) {
	now := time.Date(2026, 6, 15, 17, 30, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC), PeriodDay.Start(now))
	assert.Equal(t, now.AddDate(0, 0, -7), PeriodWeek.Start(now))
	assert.Equal(t, now.AddDate(0, -1, 0), PeriodMonth.Start(now))
	assert.Equal(t, now.AddDate(-1, 0, 0), PeriodYear.Start(now))
	assert.Equal(t, time.Unix(0, 0), PeriodAllTime.Start(now))
}

func TestReportPeriodValid(t *testing.T) {
	for _, p := range []ReportPeriod{PeriodDay, PeriodWeek, PeriodMonth, PeriodYear, PeriodAllTime} {
		assert.True(t, p.Valid())
	}
	assert.False(t, ReportPeriod("QUARTER").Valid())
}
