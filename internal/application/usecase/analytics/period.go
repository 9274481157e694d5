// Package analytics contains the revenue and customer analytics engine.
//
// Every function in this package is a pure, synchronous computation over
// already-authorized, already-fetched records: no I/O, no clock reads, no
// shared mutable state. Identical inputs always produce identical outputs,
// which callers rely on for snapshot tests and input-hash caching.
package analytics

import (
	"time"

	domainerror "github.com/salon-manager/backend/internal/domain/error"
)

// dateKeyFormat is the layout used for calendar-day keys and CSV dates.
const dateKeyFormat = "2006-01-02"

// RevenuePeriod is an inclusive date range a report covers.
type RevenuePeriod struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// NewRevenuePeriod creates a validated RevenuePeriod. Both bounds are
// truncated to midnight: the period is a date range, and a stray
// time-of-day on Start would otherwise leak into repository queries and
// exclude that day's earlier transactions.
func NewRevenuePeriod(start, end time.Time) (RevenuePeriod, error) {
	p := RevenuePeriod{Start: truncateToDay(start), End: truncateToDay(end)}
	if err := p.Validate(); err != nil {
		return RevenuePeriod{}, err
	}
	return p, nil
}

// Validate checks the period invariant start <= end.
func (p RevenuePeriod) Validate() error {
	if p.Start.After(p.End) {
		return domainerror.NewAnalyticsError(
			domainerror.ErrCodeInvalidDateRange,
			"start date must not be after end date",
			domainerror.ErrInvalidDateRange,
		)
	}
	return nil
}

// Days returns the number of calendar days the period spans, inclusive.
// Counting happens on UTC-normalized dates so a 23-hour DST day in the
// bounds' location cannot shift the count.
func (p RevenuePeriod) Days() int {
	start := utcDate(p.Start)
	end := utcDate(p.End)
	return int(end.Sub(start).Hours()/24) + 1
}

// Previous returns the immediately preceding period of equal length, used for
// period-over-period growth comparisons.
func (p RevenuePeriod) Previous() RevenuePeriod {
	days := p.Days()
	return RevenuePeriod{
		Start: truncateToDay(p.Start).AddDate(0, 0, -days),
		End:   truncateToDay(p.Start).AddDate(0, 0, -1),
	}
}

// Label renders the period as "<start> to <end>" with ISO dates.
func (p RevenuePeriod) Label() string {
	return p.Start.Format(dateKeyFormat) + " to " + p.End.Format(dateKeyFormat)
}

// truncateToDay drops the time-of-day component, keeping the location.
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// utcDate maps a timestamp to its calendar date at midnight UTC.
func utcDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// dayKey returns the calendar-day grouping key for a timestamp.
func dayKey(t time.Time) string {
	return t.Format(dateKeyFormat)
}
