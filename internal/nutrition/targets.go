package nutrition

import "github.com/fittrack/fittrack/pkg"

// Targets are the user's daily goals. Each field is independently
// optional; a nil field means no goal is set for it.
type Targets struct {
	Calories *int     `json:"calories"`
	Protein  *float64 `json:"protein"`
	Carbs    *float64 `json:"carbs"`
	Fat      *float64 `json:"fat"`
}

func (t *Targets) Validate() error {
	if t.Calories != nil && *t.Calories < 0 {
		return pkg.NewValidationError("calories target must not be negative")
	}
	if t.Protein != nil && *t.Protein < 0 {
		return pkg.NewValidationError("protein target must not be negative")
	}
	if t.Carbs != nil && *t.Carbs < 0 {
		return pkg.NewValidationError("carbs target must not be negative")
	}
	if t.Fat != nil && *t.Fat < 0 {
		return pkg.NewValidationError("fat target must not be negative")
	}
	return nil
}
