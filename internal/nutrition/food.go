package nutrition

import (
	"errors"
	"strings"
	"time"

	"github.com/fittrack/fittrack/pkg"
)

var ErrFoodNotFound = errors.New("food not found")

// Food is a catalog entry with macros per 100 grams. Verified foods come
// from the curated global catalog; user-created foods are unverified and
// visible only to their creator.
type Food struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Brand     *string   `json:"brand"`
	Per100g   Macros    `json:"per100g"`
	Verified  bool      `json:"verified"`
	CreatedBy *int      `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
}

func (f *Food) Validate() error {
	f.Name = strings.TrimSpace(f.Name)
	if f.Name == "" {
		return pkg.NewValidationError("food name empty")
	}
	if f.Per100g.Calories < 0 || f.Per100g.Protein < 0 || f.Per100g.Carbs < 0 || f.Per100g.Fat < 0 {
		return pkg.NewValidationError("food macros must not be negative")
	}
	return nil
}
