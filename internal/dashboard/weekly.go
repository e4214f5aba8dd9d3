package dashboard

import (
	"math"

	"github.com/fittrack/fittrack/internal/calendar"
	"github.com/fittrack/fittrack/internal/nutrition"
	"github.com/fittrack/fittrack/internal/training"
)

// WeeklyNutrition averages the logged days only: a week with two logged
// days divides by two, not seven. All zero when nothing was logged.
type WeeklyNutrition struct {
	DaysLogged  int     `json:"daysLogged"`
	AvgCalories int     `json:"avgCalories"`
	AvgProtein  float64 `json:"avgProtein"`
	AvgCarbs    float64 `json:"avgCarbs"`
	AvgFat      float64 `json:"avgFat"`
}

type WeeklyTraining struct {
	Sessions     int `json:"sessions"`
	DaysTrained  int `json:"daysTrained"`
	TotalLoad    int `json:"totalLoad"`
	TotalMinutes int `json:"totalMinutes"`
}

// Weekly is the trailing-7-day summary shown on the dashboard.
type Weekly struct {
	Nutrition WeeklyNutrition `json:"nutrition"`
	Training  WeeklyTraining  `json:"training"`
}

// ComputeWeekly aggregates the week's nutrition log rows and training
// sessions. Missing data reports zeroes, never errors.
func ComputeWeekly(logs []nutrition.Log, sessions []training.Session) Weekly {
	var weekly Weekly

	weekly.Nutrition.DaysLogged = len(logs)
	if len(logs) > 0 {
		var calories int
		var protein, carbs, fat float64
		for _, l := range logs {
			calories += l.Totals.Calories
			protein += l.Totals.Protein
			carbs += l.Totals.Carbs
			fat += l.Totals.Fat
		}
		days := float64(len(logs))
		weekly.Nutrition.AvgCalories = int(math.Round(float64(calories) / days))
		weekly.Nutrition.AvgProtein = round1(protein / days)
		weekly.Nutrition.AvgCarbs = round1(carbs / days)
		weekly.Nutrition.AvgFat = round1(fat / days)
	}

	trainedDays := map[calendar.Day]bool{}
	for _, s := range sessions {
		weekly.Training.Sessions++
		weekly.Training.TotalLoad += s.Load
		weekly.Training.TotalMinutes += s.DurationMin
		trainedDays[s.Date] = true
	}
	weekly.Training.DaysTrained = len(trainedDays)

	return weekly
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
