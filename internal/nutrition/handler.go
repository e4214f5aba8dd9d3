package nutrition

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/fittrack/fittrack/internal/auth"
	"github.com/fittrack/fittrack/internal/calendar"
	"github.com/fittrack/fittrack/internal/telemetry/metrics"
	"github.com/fittrack/fittrack/internal/telemetry/tracing"
	"github.com/fittrack/fittrack/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=nutrition_test

type diaryService interface {
	CreateFood(ctx context.Context, userID int, food Food) (*Food, error)
	SearchFoods(ctx context.Context, userID int, query string, limit int) ([]Food, error)
	AddFoodItem(ctx context.Context, userID int, date calendar.Day, mealType MealType, foodID int, grams float64) (*Item, error)
	AddQuickItem(ctx context.Context, userID int, date calendar.Day, mealType MealType, quick QuickEntry) (*Item, error)
	UpdateFoodItem(ctx context.Context, userID, itemID int, mealType MealType, grams float64) (*Item, error)
	UpdateQuickItem(ctx context.Context, userID, itemID int, mealType MealType, quick QuickEntry) (*Item, error)
	DeleteItem(ctx context.Context, userID, itemID int) error
	Day(ctx context.Context, userID int, date calendar.Day) (*DaySummary, error)
	Targets(ctx context.Context, userID int) (*Targets, error)
	SetTargets(ctx context.Context, userID int, t Targets) error
	History(ctx context.Context, userID, limit int) ([]Log, error)
	Export(ctx context.Context, userID int) ([]Log, error)
	Streak(ctx context.Context, userID int, ref calendar.Day) (int, error)
}

type FoodItemRequest struct {
	Date     calendar.Day `json:"date"`
	MealType MealType     `json:"mealType"`
	FoodID   int          `json:"foodId"`
	Grams    float64      `json:"grams"`
}

type QuickItemRequest struct {
	Date     calendar.Day `json:"date"`
	MealType MealType     `json:"mealType"`
	Name     string       `json:"name"`
	Macros   Macros       `json:"macros"`
}

// UpdateItemRequest edits either variant: grams for food items, quick
// for quick items. Exactly one of the two must be set.
type UpdateItemRequest struct {
	MealType MealType    `json:"mealType"`
	Grams    *float64    `json:"grams,omitempty"`
	Quick    *QuickEntry `json:"quick,omitempty"`
}

type DeleteItemResponse struct {
	DeletedID int `json:"deletedId"`
}

type StreakResponse struct {
	Streak int `json:"streak"`
}

type Handler struct {
	service diaryService
	metrics *metrics.Manager
}

func NewHandler(service diaryService, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		service: service,
		metrics: metricsManager,
	}
}

func (handler *Handler) SetupRoutes(mainRouter *mux.Router) {
	mainRouter.HandleFunc("/foods", handler.HandleCreateFood).Methods("POST", "OPTIONS").Name("new-food")
	mainRouter.HandleFunc("/foods/search", handler.HandleSearchFoods).Methods("GET", "OPTIONS").Name("search-foods")

	diaryRouter := mainRouter.PathPrefix("/diary").Subrouter()
	diaryRouter.HandleFunc("/day", handler.HandleDay).Methods("GET", "OPTIONS").Name("diary-day")
	diaryRouter.HandleFunc("/items", handler.HandleAddFoodItem).Methods("POST", "OPTIONS").Name("new-diary-item")
	diaryRouter.HandleFunc("/quick", handler.HandleAddQuickItem).Methods("POST", "OPTIONS").Name("new-quick-item")
	diaryRouter.HandleFunc("/items/{id}", handler.HandleUpdateItem).Methods("PUT", "OPTIONS").Name("update-diary-item")
	diaryRouter.HandleFunc("/items/{id}", handler.HandleDeleteItem).Methods("DELETE", "OPTIONS").Name("delete-diary-item")
	diaryRouter.HandleFunc("/targets", handler.HandleGetTargets).Methods("GET", "OPTIONS").Name("get-targets")
	diaryRouter.HandleFunc("/targets", handler.HandleSetTargets).Methods("PUT", "OPTIONS").Name("set-targets")
	diaryRouter.HandleFunc("/history", handler.HandleHistory).Methods("GET", "OPTIONS").Name("diary-history")
	diaryRouter.HandleFunc("/export", handler.HandleExportCSV).Methods("GET", "OPTIONS").Name("diary-export")
	diaryRouter.HandleFunc("/streak", handler.HandleStreak).Methods("GET", "OPTIONS").Name("diary-streak")
}

func (handler *Handler) HandleCreateFood(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.createFood")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var food Food
	if err := json.NewDecoder(r.Body).Decode(&food); err != nil {
		log.Tracef("new food, unmarshal json params: %s", err)
		http.Error(w, "invalid food payload", http.StatusBadRequest)
		return
	}

	createdFood, err := handler.service.CreateFood(ctx, userID, food)
	if pkg.IsValidationError(err) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	} else if err != nil {
		log.Errorf("failed to create food [%s]: %s", food.Name, err)
		http.Error(w, "error, failed to create food", http.StatusInternalServerError)
		return
	}

	foodJson, err := json.Marshal(createdFood)
	if err != nil {
		log.Errorf("failed to marshal created food: %s", err)
		http.Error(w, "error, failed to create food", http.StatusInternalServerError)
		return
	}

	log.Debugf("new food created: %d", createdFood.ID)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, foodJson, http.StatusCreated)
}

func (handler *Handler) HandleSearchFoods(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.searchFoods")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		http.Error(w, "error, query empty", http.StatusBadRequest)
		return
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	foods, err := handler.service.SearchFoods(ctx, userID, query, limit)
	if err != nil {
		log.Errorf("search foods [%s]: %s", query, err)
		http.Error(w, "failed to search foods", http.StatusInternalServerError)
		return
	}
	if foods == nil {
		foods = []Food{}
	}

	foodsJson, err := json.Marshal(foods)
	if err != nil {
		log.Errorf("failed to marshal foods: %s", err)
		http.Error(w, "failed to search foods", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, foodsJson, http.StatusOK)
}

func (handler *Handler) HandleDay(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.day")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	date, err := refDate(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	summary, err := handler.service.Day(ctx, userID, date)
	if err != nil {
		log.Errorf("get diary day %s: %s", date, err)
		http.Error(w, "failed to get diary day", http.StatusInternalServerError)
		return
	}

	summaryJson, err := json.Marshal(summary)
	if err != nil {
		log.Errorf("failed to marshal diary day: %s", err)
		http.Error(w, "failed to get diary day", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, summaryJson, http.StatusOK)
}

func (handler *Handler) HandleAddFoodItem(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.addFoodItem")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var req FoodItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("new diary item, unmarshal json params: %s", err)
		http.Error(w, "invalid diary item payload", http.StatusBadRequest)
		return
	}

	item, err := handler.service.AddFoodItem(ctx, userID, req.Date, req.MealType, req.FoodID, req.Grams)
	if pkg.IsValidationError(err) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	} else if errors.Is(err, ErrFoodNotFound) {
		http.Error(w, "food not found", http.StatusNotFound)
		return
	} else if err != nil {
		log.Errorf("failed to add diary item: %s", err)
		http.Error(w, "error, failed to add diary item", http.StatusInternalServerError)
		return
	}

	handler.writeItemCreated(w, item)
}

func (handler *Handler) HandleAddQuickItem(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.addQuickItem")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var req QuickItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("new quick item, unmarshal json params: %s", err)
		http.Error(w, "invalid quick item payload", http.StatusBadRequest)
		return
	}

	item, err := handler.service.AddQuickItem(ctx, userID, req.Date, req.MealType, QuickEntry{
		Name:   req.Name,
		Macros: req.Macros,
	})
	if pkg.IsValidationError(err) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	} else if err != nil {
		log.Errorf("failed to add quick item: %s", err)
		http.Error(w, "error, failed to add quick item", http.StatusInternalServerError)
		return
	}

	handler.writeItemCreated(w, item)
}

func (handler *Handler) HandleUpdateItem(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.updateItem")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	id, err := itemID(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var req UpdateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("update diary item, unmarshal json params: %s", err)
		http.Error(w, "invalid diary item payload", http.StatusBadRequest)
		return
	}

	var item *Item
	switch {
	case req.Grams != nil && req.Quick == nil:
		item, err = handler.service.UpdateFoodItem(ctx, userID, id, req.MealType, *req.Grams)
	case req.Quick != nil && req.Grams == nil:
		item, err = handler.service.UpdateQuickItem(ctx, userID, id, req.MealType, *req.Quick)
	default:
		http.Error(w, "error, set either grams or quick", http.StatusBadRequest)
		return
	}

	if pkg.IsValidationError(err) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	} else if errors.Is(err, ErrDiaryItemNotFound) {
		http.Error(w, "diary item not found", http.StatusNotFound)
		return
	} else if err != nil {
		log.Errorf("failed to update diary item %d: %s", id, err)
		http.Error(w, "error, failed to update diary item", http.StatusInternalServerError)
		return
	}

	itemJson, err := json.Marshal(item)
	if err != nil {
		log.Errorf("failed to marshal diary item: %s", err)
		http.Error(w, "error, failed to update diary item", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, itemJson, http.StatusOK)
}

func (handler *Handler) HandleDeleteItem(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.deleteItem")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	id, err := itemID(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := handler.service.DeleteItem(ctx, userID, id); errors.Is(err, ErrDiaryItemNotFound) {
		http.Error(w, "diary item not found", http.StatusNotFound)
		return
	} else if err != nil {
		log.Errorf("failed to delete diary item %d: %s", id, err)
		http.Error(w, "error, diary item not deleted", http.StatusInternalServerError)
		return
	}

	deleteRespJson, err := json.Marshal(DeleteItemResponse{
		DeletedID: id,
	})
	if err != nil {
		log.Errorf("failed to marshal delete response: %s", err)
		http.Error(w, "failed to marshal delete response", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSONResponseOK(w, string(deleteRespJson))
}

func (handler *Handler) HandleGetTargets(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.getTargets")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	targets, err := handler.service.Targets(ctx, userID)
	if err != nil {
		log.Errorf("get targets for user %d: %s", userID, err)
		http.Error(w, "failed to get targets", http.StatusInternalServerError)
		return
	}
	if targets == nil {
		targets = &Targets{}
	}

	targetsJson, err := json.Marshal(targets)
	if err != nil {
		log.Errorf("failed to marshal targets: %s", err)
		http.Error(w, "failed to get targets", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, targetsJson, http.StatusOK)
}

func (handler *Handler) HandleSetTargets(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.setTargets")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var targets Targets
	if err := json.NewDecoder(r.Body).Decode(&targets); err != nil {
		log.Tracef("set targets, unmarshal json params: %s", err)
		http.Error(w, "invalid targets payload", http.StatusBadRequest)
		return
	}

	if err := handler.service.SetTargets(ctx, userID, targets); pkg.IsValidationError(err) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	} else if err != nil {
		log.Errorf("set targets for user %d: %s", userID, err)
		http.Error(w, "error, targets not saved", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, `{"updated": true}`)
}

func (handler *Handler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.history")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	logs, err := handler.service.History(ctx, userID, limit)
	if err != nil {
		log.Errorf("nutrition log history for user %d: %s", userID, err)
		http.Error(w, "failed to get history", http.StatusInternalServerError)
		return
	}
	if logs == nil {
		logs = []Log{}
	}

	logsJson, err := json.Marshal(logs)
	if err != nil {
		log.Errorf("failed to marshal nutrition logs: %s", err)
		http.Error(w, "failed to get history", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, logsJson, http.StatusOK)
}

// HandleExportCSV streams the full nutrition log as a CSV download.
func (handler *Handler) HandleExportCSV(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.export")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	logs, err := handler.service.Export(ctx, userID)
	if err != nil {
		log.Errorf("export nutrition logs for user %d: %s", userID, err)
		http.Error(w, "failed to export nutrition logs", http.StatusInternalServerError)
		return
	}

	var sb strings.Builder
	sb.WriteString("Date,Calories,Protein,Carbs,Fat\n")
	for _, l := range logs {
		sb.WriteString(fmt.Sprintf("%s,%d,%.1f,%.1f,%.1f\n",
			l.Date, l.Totals.Calories, l.Totals.Protein, l.Totals.Carbs, l.Totals.Fat))
	}

	w.Header().Set("Content-Disposition", "attachment; filename=nutrition-log.csv")
	pkg.WriteResponse(w, pkg.ContentType.CSV, sb.String(), http.StatusOK)
}

func (handler *Handler) HandleStreak(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.streak")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	ref, err := refDate(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	diaryStreak, err := handler.service.Streak(ctx, userID, ref)
	if err != nil {
		log.Errorf("failed to compute diary streak: %s", err)
		http.Error(w, "failed to compute diary streak", http.StatusInternalServerError)
		return
	}

	streakJson, err := json.Marshal(StreakResponse{Streak: diaryStreak})
	if err != nil {
		log.Errorf("failed to marshal diary streak: %s", err)
		http.Error(w, "failed to marshal diary streak", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, streakJson, http.StatusOK)
}

func (handler *Handler) writeItemCreated(w http.ResponseWriter, item *Item) {
	if handler.metrics != nil {
		handler.metrics.CounterDiaryItems.Inc()
	}

	itemJson, err := json.Marshal(item)
	if err != nil {
		log.Errorf("failed to marshal diary item: %s", err)
		http.Error(w, "error, failed to add diary item", http.StatusInternalServerError)
		return
	}

	log.Debugf("new diary item added: %d", item.ID)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, itemJson, http.StatusCreated)
}

func itemID(r *http.Request) (int, error) {
	idStr := mux.Vars(r)["id"]
	if idStr == "" {
		return 0, errors.New("error, id empty")
	}
	id, err := strconv.Atoi(idStr)
	if err != nil {
		return 0, errors.New("error, id NaN")
	}
	return id, nil
}

// refDate reads the optional ?date= query param, defaulting to today.
func refDate(r *http.Request) (calendar.Day, error) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		return calendar.Today(), nil
	}
	return calendar.ParseDay(dateStr)
}
