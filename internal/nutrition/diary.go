package nutrition

import (
	"errors"
	"strings"
	"time"

	"github.com/fittrack/fittrack/internal/calendar"
	"github.com/fittrack/fittrack/pkg"
)

var ErrDiaryItemNotFound = errors.New("diary item not found")

// MealType is the slot an item is logged under.
type MealType int

const (
	MealBreakfast MealType = 1
	MealLunch     MealType = 2
	MealDinner    MealType = 3
	MealSnack     MealType = 4
)

func (m MealType) IsValid() bool {
	return m >= MealBreakfast && m <= MealSnack
}

func (m MealType) String() string {
	switch m {
	case MealBreakfast:
		return "breakfast"
	case MealLunch:
		return "lunch"
	case MealDinner:
		return "dinner"
	case MealSnack:
		return "snack"
	default:
		return "unknown"
	}
}

// Macros is a raw, unrounded macro tuple. Rounding happens only at the
// meal and day aggregation boundaries.
type Macros struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

func (m Macros) Add(other Macros) Macros {
	return Macros{
		Calories: m.Calories + other.Calories,
		Protein:  m.Protein + other.Protein,
		Carbs:    m.Carbs + other.Carbs,
		Fat:      m.Fat + other.Fat,
	}
}

func (m Macros) Scale(factor float64) Macros {
	return Macros{
		Calories: m.Calories * factor,
		Protein:  m.Protein * factor,
		Carbs:    m.Carbs * factor,
		Fat:      m.Fat * factor,
	}
}

// FoodEntry is the food-based item variant: a catalog food eaten in a
// given amount of grams.
type FoodEntry struct {
	FoodID  int     `json:"foodId"`
	Name    string  `json:"name"`
	Brand   *string `json:"brand"`
	Grams   float64 `json:"grams"`
	Per100g Macros  `json:"per100g"`
}

// QuickEntry is the fallback variant: a free-form name with macros
// entered directly.
type QuickEntry struct {
	Name   string `json:"name"`
	Macros Macros `json:"macros"`
}

// Item is one diary entry. Exactly one of Food or Quick is set.
type Item struct {
	ID        int          `json:"id"`
	Date      calendar.Day `json:"date"`
	MealType  MealType     `json:"mealType"`
	Food      *FoodEntry   `json:"food,omitempty"`
	Quick     *QuickEntry  `json:"quick,omitempty"`
	CreatedAt time.Time    `json:"createdAt"`
}

// Macros returns the raw macro contribution of the item.
func (i *Item) Macros() Macros {
	if i.Food != nil {
		return i.Food.Per100g.Scale(i.Food.Grams / 100)
	}
	if i.Quick != nil {
		return i.Quick.Macros
	}
	return Macros{}
}

func validateMealType(mealType MealType) error {
	if !mealType.IsValid() {
		return pkg.NewValidationError("unknown meal type: %d", mealType)
	}
	return nil
}

func validateGrams(grams float64) error {
	if grams <= 0 {
		return pkg.NewValidationError("grams must be positive")
	}
	return nil
}

func validateQuickEntry(quick QuickEntry) error {
	if strings.TrimSpace(quick.Name) == "" {
		return pkg.NewValidationError("quick item name empty")
	}
	if quick.Macros.Calories < 0 || quick.Macros.Protein < 0 || quick.Macros.Carbs < 0 || quick.Macros.Fat < 0 {
		return pkg.NewValidationError("quick item macros must not be negative")
	}
	return nil
}
