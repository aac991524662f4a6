package core

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

type Quarter string

const (
	QuarterQ1 Quarter = "Q1"
	QuarterQ2 Quarter = "Q2"
	QuarterQ3 Quarter = "Q3"
	QuarterQ4 Quarter = "Q4"
)

var Quarters = []Quarter{QuarterQ1, QuarterQ2, QuarterQ3, QuarterQ4}

var ErrInvalidQuarter = errors.New("invalid quarter")

func ParseQuarter(value string) (Quarter, error) {
	candidate := Quarter(strings.ToUpper(strings.TrimSpace(value)))
	for _, q := range Quarters {
		if q == candidate {
			return q, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidQuarter, value)
}

// Index Q1 → 1 … Q4 → 4，未知為 0
func (q Quarter) Index() int {
	for i, known := range Quarters {
		if q == known {
			return i + 1
		}
	}
	return 0
}

// QuarterKey 季度分組鍵，例如 "Q3-2025"
func QuarterKey(quarter Quarter, year int) string {
	return fmt.Sprintf("%s-%d", quarter, year)
}

// QuarterStrategy 將時間點對應到季度標籤與所屬年度
type QuarterStrategy func(t time.Time) (Quarter, int)

// CalendarQuarters 1-3 月 Q1、4-6 月 Q2、7-9 月 Q3、10-12 月 Q4
func CalendarQuarters(t time.Time) (Quarter, int) {
	return Quarters[(int(t.Month())-1)/3], t.Year()
}

// FiscalQuarters 財務年度自 startMonth 起算，年度以起始月份所在的西元年標示
func FiscalQuarters(startMonth time.Month) QuarterStrategy {
	if startMonth <= time.January || startMonth > time.December {
		return CalendarQuarters
	}
	return func(t time.Time) (Quarter, int) {
		offset := (int(t.Month()) - int(startMonth) + 12) % 12
		year := t.Year()
		if t.Month() < startMonth {
			year--
		}
		return Quarters[offset/3], year
	}
}

// QuarterStatus 季度目標狀態
type QuarterStatus string

const (
	QuarterCompleted  QuarterStatus = "Completed"
	QuarterInProgress QuarterStatus = "In Progress"
	QuarterPending    QuarterStatus = "Pending"
)
