package nutrition

import (
	"context"
	"fmt"

	"github.com/fittrack/fittrack/internal/calendar"
	"github.com/fittrack/fittrack/internal/streak"
	"github.com/fittrack/fittrack/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=nutrition

const (
	defaultSearchLimit  = 25
	defaultHistoryLimit = 90
	streakLookbackDays  = 365
)

type diaryRepo interface {
	CreateFood(ctx context.Context, food Food) (*Food, error)
	GetFood(ctx context.Context, userID, foodID int) (*Food, error)
	SearchFoods(ctx context.Context, userID int, query string, limit int) ([]Food, error)
	AddItem(ctx context.Context, userID int, item Item) (*Item, error)
	GetItem(ctx context.Context, userID, itemID int) (*Item, error)
	ListItems(ctx context.Context, userID int, date calendar.Day) ([]Item, error)
	UpdateItem(ctx context.Context, userID int, item *Item) error
	DeleteItem(ctx context.Context, userID, itemID int) error
	GetTargets(ctx context.Context, userID int) (*Targets, error)
	UpsertTargets(ctx context.Context, userID int, t Targets) error
	UpsertLog(ctx context.Context, userID int, date calendar.Day, totals Totals) error
	DeleteLog(ctx context.Context, userID int, date calendar.Day) error
	LogHistory(ctx context.Context, userID, limit int) ([]Log, error)
	ListLogs(ctx context.Context, userID int, from, to calendar.Day) ([]Log, error)
	AllLogs(ctx context.Context, userID int) ([]Log, error)
	CaloriesForDate(ctx context.Context, userID int, date calendar.Day) (int, error)
	ActiveDiaryDates(ctx context.Context, userID int, from, to calendar.Day) (map[calendar.Day]bool, error)
}

// Service owns the diary rules: food visibility on add, item validation,
// and keeping the denormalized nutrition log in sync after every
// mutation.
type Service struct {
	repo diaryRepo
}

func NewService(repo diaryRepo) *Service {
	return &Service{
		repo: repo,
	}
}

func (s *Service) CreateFood(ctx context.Context, userID int, food Food) (*Food, error) {
	if err := food.Validate(); err != nil {
		return nil, err
	}
	food.Verified = false
	food.CreatedBy = &userID
	return s.repo.CreateFood(ctx, food)
}

func (s *Service) SearchFoods(ctx context.Context, userID int, query string, limit int) ([]Food, error) {
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	return s.repo.SearchFoods(ctx, userID, query, limit)
}

func (s *Service) AddFoodItem(
	ctx context.Context,
	userID int,
	date calendar.Day,
	mealType MealType,
	foodID int,
	grams float64,
) (*Item, error) {
	if date.IsZero() {
		return nil, pkg.NewValidationError("date missing")
	}
	if err := validateMealType(mealType); err != nil {
		return nil, err
	}
	if err := validateGrams(grams); err != nil {
		return nil, err
	}

	food, err := s.repo.GetFood(ctx, userID, foodID)
	if err != nil {
		return nil, err
	}

	item, err := s.repo.AddItem(ctx, userID, Item{
		Date:     date,
		MealType: mealType,
		Food: &FoodEntry{
			FoodID:  food.ID,
			Name:    food.Name,
			Brand:   food.Brand,
			Grams:   grams,
			Per100g: food.Per100g,
		},
	})
	if err != nil {
		return nil, err
	}

	if err := s.syncLog(ctx, userID, date); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *Service) AddQuickItem(
	ctx context.Context,
	userID int,
	date calendar.Day,
	mealType MealType,
	quick QuickEntry,
) (*Item, error) {
	if date.IsZero() {
		return nil, pkg.NewValidationError("date missing")
	}
	if err := validateMealType(mealType); err != nil {
		return nil, err
	}
	if err := validateQuickEntry(quick); err != nil {
		return nil, err
	}

	item, err := s.repo.AddItem(ctx, userID, Item{
		Date:     date,
		MealType: mealType,
		Quick:    &quick,
	})
	if err != nil {
		return nil, err
	}

	if err := s.syncLog(ctx, userID, date); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *Service) UpdateFoodItem(
	ctx context.Context,
	userID, itemID int,
	mealType MealType,
	grams float64,
) (*Item, error) {
	if err := validateMealType(mealType); err != nil {
		return nil, err
	}
	if err := validateGrams(grams); err != nil {
		return nil, err
	}

	item, err := s.repo.GetItem(ctx, userID, itemID)
	if err != nil {
		return nil, err
	}
	if item.Food == nil {
		return nil, pkg.NewValidationError("item %d is not a food item", itemID)
	}

	item.MealType = mealType
	item.Food.Grams = grams
	if err := s.repo.UpdateItem(ctx, userID, item); err != nil {
		return nil, err
	}

	if err := s.syncLog(ctx, userID, item.Date); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *Service) UpdateQuickItem(
	ctx context.Context,
	userID, itemID int,
	mealType MealType,
	quick QuickEntry,
) (*Item, error) {
	if err := validateMealType(mealType); err != nil {
		return nil, err
	}
	if err := validateQuickEntry(quick); err != nil {
		return nil, err
	}

	item, err := s.repo.GetItem(ctx, userID, itemID)
	if err != nil {
		return nil, err
	}
	if item.Quick == nil {
		return nil, pkg.NewValidationError("item %d is not a quick item", itemID)
	}

	item.MealType = mealType
	item.Quick = &quick
	if err := s.repo.UpdateItem(ctx, userID, item); err != nil {
		return nil, err
	}

	if err := s.syncLog(ctx, userID, item.Date); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *Service) DeleteItem(ctx context.Context, userID, itemID int) error {
	item, err := s.repo.GetItem(ctx, userID, itemID)
	if err != nil {
		return err
	}

	if err := s.repo.DeleteItem(ctx, userID, itemID); err != nil {
		return err
	}

	return s.syncLog(ctx, userID, item.Date)
}

// Day returns the aggregated diary view for the date.
func (s *Service) Day(ctx context.Context, userID int, date calendar.Day) (*DaySummary, error) {
	items, err := s.repo.ListItems(ctx, userID, date)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	targets, err := s.repo.GetTargets(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get targets: %w", err)
	}

	summary := AggregateDay(items, targets)
	return &summary, nil
}

func (s *Service) Targets(ctx context.Context, userID int) (*Targets, error) {
	return s.repo.GetTargets(ctx, userID)
}

func (s *Service) SetTargets(ctx context.Context, userID int, t Targets) error {
	if err := t.Validate(); err != nil {
		return err
	}
	return s.repo.UpsertTargets(ctx, userID, t)
}

func (s *Service) History(ctx context.Context, userID, limit int) ([]Log, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	return s.repo.LogHistory(ctx, userID, limit)
}

func (s *Service) Export(ctx context.Context, userID int) ([]Log, error) {
	return s.repo.AllLogs(ctx, userID)
}

// WeeklyLogs returns the log rows for the trailing week ending at ref.
func (s *Service) WeeklyLogs(ctx context.Context, userID int, ref calendar.Day) ([]Log, error) {
	from, to := calendar.WeekRange(ref)
	return s.repo.ListLogs(ctx, userID, from, to)
}

func (s *Service) CaloriesForDate(ctx context.Context, userID int, date calendar.Day) (int, error) {
	return s.repo.CaloriesForDate(ctx, userID, date)
}

// Streak counts consecutive days ending at ref with at least one diary
// item logged.
func (s *Service) Streak(ctx context.Context, userID int, ref calendar.Day) (int, error) {
	from := ref.AddDays(-(streakLookbackDays - 1))
	active, err := s.repo.ActiveDiaryDates(ctx, userID, from, ref)
	if err != nil {
		return 0, fmt.Errorf("active diary dates: %w", err)
	}
	return streak.Compute(active, ref), nil
}

// syncLog recomputes the day totals after a mutation and keeps the
// invariant: a nutrition_log row exists exactly when some total is
// nonzero.
func (s *Service) syncLog(ctx context.Context, userID int, date calendar.Day) error {
	items, err := s.repo.ListItems(ctx, userID, date)
	if err != nil {
		return fmt.Errorf("sync log, list items: %w", err)
	}

	totals := AggregateDay(items, nil).Totals
	if totals == (Totals{}) {
		return s.repo.DeleteLog(ctx, userID, date)
	}
	return s.repo.UpsertLog(ctx, userID, date, totals)
}
