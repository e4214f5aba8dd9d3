package recovery

import (
	"errors"
	"time"

	"github.com/fittrack/fittrack/internal/calendar"
	"github.com/fittrack/fittrack/pkg"
)

var ErrCheckInNotFound = errors.New("check-in not found")

const (
	MinSleepHours = 0.0
	MaxSleepHours = 16.0
	MinScore      = 1
	MaxScore      = 5
)

// CheckIn is the daily subjective recovery entry, at most one per user
// and date. Sleep hours and score are both optional, a notes-only
// check-in is fine.
type CheckIn struct {
	ID            int          `json:"id"`
	Date          calendar.Day `json:"date"`
	SleepHours    *float64     `json:"sleepHours"`
	RecoveryScore *int         `json:"recoveryScore"`
	Notes         *string      `json:"notes"`
	CreatedAt     time.Time    `json:"createdAt"`
}

func (c *CheckIn) Validate() error {
	if c.Date.IsZero() {
		return pkg.NewValidationError("date missing")
	}
	if c.SleepHours != nil && (*c.SleepHours < MinSleepHours || *c.SleepHours > MaxSleepHours) {
		return pkg.NewValidationError("sleep hours must be between %.0f and %.0f", MinSleepHours, MaxSleepHours)
	}
	if c.RecoveryScore != nil && (*c.RecoveryScore < MinScore || *c.RecoveryScore > MaxScore) {
		return pkg.NewValidationError("recovery score must be between %d and %d", MinScore, MaxScore)
	}
	return nil
}

// Summary aggregates the trailing week of check-ins. The averages are
// nil when no check-ins exist in the window.
type Summary struct {
	DaysCheckedIn    int      `json:"daysCheckedIn"`
	AvgSleepHours    *float64 `json:"avgSleepHours"`
	AvgRecoveryScore *float64 `json:"avgRecoveryScore"`
}
