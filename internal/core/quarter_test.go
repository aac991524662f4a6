package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalendarQuarters(t *testing.T) {
	testCases := []struct {
		month   time.Month
		quarter Quarter
	}{
		{time.January, QuarterQ1},
		{time.March, QuarterQ1},
		{time.April, QuarterQ2},
		{time.June, QuarterQ2},
		{time.July, QuarterQ3},
		{time.September, QuarterQ3},
		{time.October, QuarterQ4},
		{time.December, QuarterQ4},
	}
	for _, tc := range testCases {
		t.Run(tc.month.String(), func(t *testing.T) {
			q, year := CalendarQuarters(time.Date(2025, tc.month, 15, 0, 0, 0, 0, time.UTC))
			assert.Equal(t, tc.quarter, q)
			assert.Equal(t, 2025, year)
		})
	}
}

func TestFiscalQuarters(t *testing.T) {
	// 四月制：2025/04 ~ 2026/03 為 2025 財年
	april := FiscalQuarters(time.April)
	testCases := []struct {
		name    string
		at      time.Time
		quarter Quarter
		year    int
	}{
		{"年度第一個月", time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC), QuarterQ1, 2025},
		{"第二季", time.Date(2025, time.August, 1, 0, 0, 0, 0, time.UTC), QuarterQ2, 2025},
		{"跨西元年的第三季", time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC), QuarterQ3, 2025},
		{"次年一月屬於前一財年", time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC), QuarterQ4, 2025},
		{"年度最後一個月", time.Date(2026, time.March, 31, 0, 0, 0, 0, time.UTC), QuarterQ4, 2025},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			q, year := april(tc.at)
			assert.Equal(t, tc.quarter, q)
			assert.Equal(t, tc.year, year)
		})
	}
}

func TestFiscalQuarters_FallsBackToCalendar(t *testing.T) {
	at := time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC)
	for _, month := range []time.Month{0, time.January, 13} {
		q, year := FiscalQuarters(month)(at)
		assert.Equal(t, QuarterQ2, q)
		assert.Equal(t, 2025, year)
	}
}

func TestParseQuarter(t *testing.T) {
	q, err := ParseQuarter(" q3 ")
	require.NoError(t, err)
	assert.Equal(t, QuarterQ3, q)
	assert.Equal(t, 3, q.Index())

	_, err = ParseQuarter("Q5")
	assert.ErrorIs(t, err, ErrInvalidQuarter)
	assert.Equal(t, 0, Quarter("Q5").Index())

	assert.Equal(t, "Q3-2025", QuarterKey(QuarterQ3, 2025))
}
