package nutrition

import "math"

// Totals are rounded aggregate values: calories to the nearest integer,
// macros to one decimal. Raw item values are summed first and rounded
// only here, at the aggregation boundary.
type Totals struct {
	Calories int     `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// Remaining mirrors Targets: a field is nil when no target is set for it.
type Remaining struct {
	Calories *int     `json:"calories"`
	Protein  *float64 `json:"protein"`
	Carbs    *float64 `json:"carbs"`
	Fat      *float64 `json:"fat"`
}

// ItemView is an item with its computed macro contribution. Item-level
// values keep one decimal on every field, calories included; the integer
// calorie rounding happens only on meal and day totals.
type ItemView struct {
	Item
	Totals Macros `json:"totals"`
}

type Meal struct {
	MealType MealType   `json:"mealType"`
	Name     string     `json:"name"`
	Items    []ItemView `json:"items"`
	Totals   Totals     `json:"totals"`
}

// DaySummary is the aggregated diary view for a single date.
type DaySummary struct {
	Meals     []Meal     `json:"meals"`
	Totals    Totals     `json:"totals"`
	Targets   *Targets   `json:"targets"`
	Remaining *Remaining `json:"remaining"`
}

// AggregateDay buckets items into meal slots, computes rounded meal and
// day totals from the raw sums, and derives the remaining values against
// the targets. Items with an unknown meal type are dropped.
func AggregateDay(items []Item, targets *Targets) DaySummary {
	mealItems := map[MealType][]Item{}
	for _, item := range items {
		if !item.MealType.IsValid() {
			continue
		}
		mealItems[item.MealType] = append(mealItems[item.MealType], item)
	}

	var meals []Meal
	var dayRaw Macros
	for mealType := MealBreakfast; mealType <= MealSnack; mealType++ {
		bucket := mealItems[mealType]
		if len(bucket) == 0 {
			continue
		}

		var mealRaw Macros
		views := make([]ItemView, 0, len(bucket))
		for _, item := range bucket {
			raw := item.Macros()
			mealRaw = mealRaw.Add(raw)
			views = append(views, ItemView{
				Item:   item,
				Totals: round1Macros(raw),
			})
		}
		dayRaw = dayRaw.Add(mealRaw)

		meals = append(meals, Meal{
			MealType: mealType,
			Name:     mealType.String(),
			Items:    views,
			Totals:   roundTotals(mealRaw),
		})
	}

	dayTotals := roundTotals(dayRaw)

	summary := DaySummary{
		Meals:   meals,
		Totals:  dayTotals,
		Targets: targets,
	}
	if targets != nil {
		summary.Remaining = remaining(dayTotals, *targets)
	}
	return summary
}

func remaining(totals Totals, targets Targets) *Remaining {
	rem := &Remaining{}
	if targets.Calories != nil {
		calories := *targets.Calories - totals.Calories
		rem.Calories = &calories
	}
	if targets.Protein != nil {
		protein := round1(*targets.Protein - totals.Protein)
		rem.Protein = &protein
	}
	if targets.Carbs != nil {
		carbs := round1(*targets.Carbs - totals.Carbs)
		rem.Carbs = &carbs
	}
	if targets.Fat != nil {
		fat := round1(*targets.Fat - totals.Fat)
		rem.Fat = &fat
	}
	return rem
}

func roundTotals(m Macros) Totals {
	return Totals{
		Calories: int(math.Round(m.Calories)),
		Protein:  round1(m.Protein),
		Carbs:    round1(m.Carbs),
		Fat:      round1(m.Fat),
	}
}

func round1Macros(m Macros) Macros {
	return Macros{
		Calories: round1(m.Calories),
		Protein:  round1(m.Protein),
		Carbs:    round1(m.Carbs),
		Fat:      round1(m.Fat),
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
