package training

import (
	"math"

	"github.com/fittrack/fittrack/internal/calendar"
)

// RiskBand classifies the acute:chronic workload ratio.
type RiskBand string

const (
	BandInsufficientData RiskBand = "Insufficient data"
	BandUndertraining    RiskBand = "Undertraining"
	BandOptimal          RiskBand = "Optimal"
	BandCaution          RiskBand = "Caution"
	BandHighRisk         RiskBand = "High risk"
)

type Loads struct {
	AcuteLoad   int `json:"acuteLoad"`
	ChronicLoad int `json:"chronicLoad"`
	// ACWR is nil while there is no chronic load to divide by.
	ACWR *float64 `json:"acwr"`
	Band RiskBand `json:"band"`
}

// ComputeLoads sums the session loads over the trailing 7-day (acute) and
// 28-day (chronic) windows ending at ref, both inclusive, and derives the
// acute:chronic workload ratio. Sessions outside the chronic window are
// ignored. ACWR = acute / (chronic / 4), reported with 2 decimals; with a
// zero chronic load the ratio is undefined and the band reports
// "Insufficient data" instead of a division result.
func ComputeLoads(sessions []Session, ref calendar.Day) Loads {
	acuteFrom, _ := calendar.TrailingRange(ref, 7)
	chronicFrom, _ := calendar.TrailingRange(ref, 28)

	var acute, chronic int
	for _, s := range sessions {
		if s.Date.Before(chronicFrom) || s.Date.After(ref) {
			continue
		}
		chronic += s.Load
		if !s.Date.Before(acuteFrom) {
			acute += s.Load
		}
	}

	loads := Loads{
		AcuteLoad:   acute,
		ChronicLoad: chronic,
		Band:        BandInsufficientData,
	}
	if chronic == 0 {
		return loads
	}

	acwr := math.Round(float64(acute)/(float64(chronic)/4)*100) / 100
	loads.ACWR = &acwr

	switch {
	case acwr < 0.8:
		loads.Band = BandUndertraining
	case acwr <= 1.3:
		loads.Band = BandOptimal
	case acwr <= 1.5:
		loads.Band = BandCaution
	default:
		loads.Band = BandHighRisk
	}
	return loads
}
