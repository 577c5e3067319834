// Package valueobject contains domain value objects for the NutriTrack system.
package valueobject

import (
	"time"

	"github.com/nutritrack/backend/internal/domain/entity"
	domainerror "github.com/nutritrack/backend/internal/domain/error"
)

// Period is an inclusive range of calendar days a goal type covers.
// Start and End are midnight of their day in the reference date's location.
type Period struct {
	Start time.Time
	End   time.Time
}

// ResolvePeriod returns the period of goalType that contains referenceDate.
// Weeks start on Monday.
func ResolvePeriod(goalType entity.GoalType, referenceDate time.Time) (Period, error) {
	day := StartOfDay(referenceDate)

	switch goalType {
	case entity.GoalTypeDaily:
		return Period{Start: day, End: day}, nil
	case entity.GoalTypeWeekly:
		weekday := int(day.Weekday())
		if weekday == 0 {
			weekday = 7
		}
		start := day.AddDate(0, 0, -(weekday - 1))
		return Period{Start: start, End: start.AddDate(0, 0, 6)}, nil
	case entity.GoalTypeMonthly:
		start := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, day.Location())
		return Period{Start: start, End: start.AddDate(0, 1, -1)}, nil
	default:
		return Period{}, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidGoalType,
			"goal type must be DAILY, WEEKLY or MONTHLY",
			domainerror.ErrInvalidGoalType,
		)
	}
}

// Window returns the half-open instant range [Start, End+1 day) covering every moment of the period.
func (p Period) Window() (from, to time.Time) {
	return p.Start, p.End.AddDate(0, 0, 1)
}

// StartOfDay truncates t to midnight in its own location.
// time.Truncate is not used because it rounds in UTC.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
