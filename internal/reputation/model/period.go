package model

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// AllTime is the period literal meaning an unbounded window.
const AllTime = "all"

const periodExamples = `use format like "30d", "4w", "6m", "1y" or "all"`

// maxPeriodDays keeps Duration within time.Duration range.
const maxPeriodDays = math.MaxInt64 / int64(24*time.Hour)

// Period is a parsed relative window such as 30d or the unbounded "all".
type Period struct {
	raw  string
	days int
}

// ParsePeriod parses `<integer><unit>` (d, w, m=30d, y=365d) or "all".
func ParsePeriod(raw string) (Period, error) {
	value := strings.ToLower(strings.TrimSpace(raw))
	if value == AllTime {
		return Period{raw: AllTime}, nil
	}
	if len(value) < 2 {
		return Period{}, NewValidationError("period", raw, periodExamples)
	}

	digits := value[:len(value)-1]
	if digits[0] < '0' || digits[0] > '9' {
		return Period{}, NewValidationError("period", raw, periodExamples)
	}
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil || n <= 0 {
		return Period{}, NewValidationError("period", raw, periodExamples)
	}

	var multiplier int64
	switch value[len(value)-1] {
	case 'd':
		multiplier = 1
	case 'w':
		multiplier = 7
	case 'm':
		multiplier = 30
	case 'y':
		multiplier = 365
	default:
		return Period{}, NewValidationError("period", raw, periodExamples)
	}

	if n > maxPeriodDays/multiplier {
		return Period{}, NewValidationError("period", raw, "must not exceed 106751 days; "+periodExamples)
	}

	return Period{raw: value, days: int(n * multiplier)}, nil
}

// MustParsePeriod is ParsePeriod for constants; it panics on malformed input.
func MustParsePeriod(raw string) Period {
	p, err := ParsePeriod(raw)
	if err != nil {
		panic(err)
	}
	return p
}

// String returns the normalized period literal.
func (p Period) String() string {
	return p.raw
}

// IsAllTime reports whether the period is unbounded.
func (p Period) IsAllTime() bool {
	return p.raw == AllTime
}

// Days returns the period length in days; zero for "all".
func (p Period) Days() int {
	return p.days
}

// Duration returns the period length; zero for "all".
func (p Period) Duration() time.Duration {
	return time.Duration(p.days) * 24 * time.Hour
}

// StartDate returns the window start relative to now; the zero time for "all".
func (p Period) StartDate(now time.Time) time.Time {
	if p.IsAllTime() {
		return time.Time{}
	}
	return now.Add(-p.Duration())
}
