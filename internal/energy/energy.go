// Package energy computes basal metabolic rate and the daily energy
// balance from a user profile and the logged calorie intake.
package energy

import (
	"math"
	"strings"

	"github.com/fittrack/fittrack/internal/calendar"
)

const (
	// activityFactor approximates light daily activity on top of BMR.
	activityFactor = 1.2

	// fallbackExpenditure is used when the profile is incomplete and BMR
	// cannot be computed. A crude one-size-fits-all default, kept for
	// compatibility with the numbers users already see.
	// TODO: replace with a prompt to complete the profile instead
	fallbackExpenditure = 2400
)

// Profile carries the four fields needed for the BMR formula.
// All of them are optional on the account.
type Profile struct {
	Sex      *string  `json:"sex"`
	Age      *int     `json:"age"`
	HeightCm *float64 `json:"heightCm"`
	WeightKg *float64 `json:"weightKg"`
}

// BMR returns the basal metabolic rate per the Mifflin-St Jeor equation,
// or nil when any profile field is missing or the sex value is not
// recognized. Never conflate the nil result with a zero rate.
func BMR(p Profile) *int {
	if p.Sex == nil || p.Age == nil || p.HeightCm == nil || p.WeightKg == nil {
		return nil
	}

	base := 10*(*p.WeightKg) + 6.25*(*p.HeightCm) - 5*float64(*p.Age)

	var bmr int
	switch strings.ToLower(*p.Sex) {
	case "male", "m":
		bmr = int(math.Round(base + 5))
	case "female", "f":
		bmr = int(math.Round(base - 161))
	default:
		return nil
	}
	return &bmr
}

type Balance struct {
	Date     calendar.Day `json:"date"`
	Calories int          `json:"calories"`
	// BMR is nil when the profile is incomplete.
	BMR                  *int `json:"bmr"`
	EstimatedExpenditure int  `json:"estimatedExpenditure"`
	// Balance is intake minus expenditure: positive means a surplus.
	Balance int `json:"balance"`
}

// ComputeBalance compares the calories consumed on the given date with the
// estimated expenditure derived from the profile.
func ComputeBalance(p Profile, date calendar.Day, caloriesConsumed int) Balance {
	bmr := BMR(p)

	expenditure := fallbackExpenditure
	if bmr != nil {
		expenditure = int(math.Round(float64(*bmr) * activityFactor))
	}

	return Balance{
		Date:                 date,
		Calories:             caloriesConsumed,
		BMR:                  bmr,
		EstimatedExpenditure: expenditure,
		Balance:              caloriesConsumed - expenditure,
	}
}
