package training

import (
	"errors"
	"time"

	"github.com/fittrack/fittrack/internal/calendar"
	"github.com/fittrack/fittrack/pkg"
)

var ErrSessionNotFound = errors.New("training session not found")

const (
	MinRPE = 1
	MaxRPE = 10
)

// Session is a single logged training session. Load is always derived
// from duration and RPE, never set directly.
type Session struct {
	ID          int          `json:"id"`
	UserID      int          `json:"-"`
	Date        calendar.Day `json:"date"`
	Type        string       `json:"type"`
	DurationMin int          `json:"durationMin"`
	RPE         int          `json:"rpe"`
	Load        int          `json:"load"`
	Notes       *string      `json:"notes,omitempty"`
	CreatedAt   time.Time    `json:"createdAt"`
}

// SessionLoad is the duration x RPE training stress proxy.
func SessionLoad(durationMin, rpe int) int {
	return durationMin * rpe
}

// Validate checks the user supplied fields and recomputes the load,
// so a session that passed validation always has a consistent load.
func (s *Session) Validate() error {
	if s.Date.IsZero() {
		return pkg.NewValidationError("please choose a date")
	}
	if s.Type == "" {
		return pkg.NewValidationError("please enter a session type (e.g. Run, Legs)")
	}
	if s.DurationMin < 0 {
		return pkg.NewValidationError("duration must be 0 or above")
	}
	if s.RPE < MinRPE || s.RPE > MaxRPE {
		return pkg.NewValidationError("RPE must be between %d and %d", MinRPE, MaxRPE)
	}
	s.Load = SessionLoad(s.DurationMin, s.RPE)
	return nil
}
