package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/fittrack/fittrack/internal/auth"
	"github.com/fittrack/fittrack/internal/calendar"
	"github.com/fittrack/fittrack/internal/energy"
	"github.com/fittrack/fittrack/internal/nutrition"
	"github.com/fittrack/fittrack/internal/recovery"
	"github.com/fittrack/fittrack/internal/telemetry/tracing"
	"github.com/fittrack/fittrack/internal/training"
	"github.com/fittrack/fittrack/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=dashboard_test

type profileSource interface {
	Profile(ctx context.Context, id int) (*energy.Profile, error)
}

type nutritionSource interface {
	CaloriesForDate(ctx context.Context, userID int, date calendar.Day) (int, error)
	WeeklyLogs(ctx context.Context, userID int, ref calendar.Day) ([]nutrition.Log, error)
	Streak(ctx context.Context, userID int, ref calendar.Day) (int, error)
}

type trainingSource interface {
	TrainingLoads(ctx context.Context, userID int, ref calendar.Day) (*training.Loads, error)
	WeekSessions(ctx context.Context, userID int, ref calendar.Day) ([]training.Session, error)
	Streak(ctx context.Context, userID int, ref calendar.Day) (int, error)
}

type recoverySource interface {
	GetForDate(ctx context.Context, userID int, date calendar.Day) (*recovery.CheckIn, error)
	Summary(ctx context.Context, userID int, ref calendar.Day) (*recovery.Summary, error)
}

// Dashboard is the single response the frontend home screen renders.
type Dashboard struct {
	Date            calendar.Day      `json:"date"`
	TrainingLoads   *training.Loads   `json:"trainingLoads"`
	EnergyBalance   energy.Balance    `json:"energyBalance"`
	TrainingStreak  int               `json:"trainingStreak"`
	DiaryStreak     int               `json:"diaryStreak"`
	Weekly          Weekly            `json:"weekly"`
	Recovery        *recovery.CheckIn `json:"recovery"`
	RecoverySummary *recovery.Summary `json:"recoverySummary"`
}

type Handler struct {
	profiles  profileSource
	nutrition nutritionSource
	training  trainingSource
	recovery  recoverySource
}

func NewHandler(
	profiles profileSource,
	nutritionSvc nutritionSource,
	trainingSvc trainingSource,
	recoverySvc recoverySource,
) *Handler {
	return &Handler{
		profiles:  profiles,
		nutrition: nutritionSvc,
		training:  trainingSvc,
		recovery:  recoverySvc,
	}
}

func (handler *Handler) SetupRoutes(mainRouter *mux.Router) {
	mainRouter.HandleFunc("/dashboard", handler.HandleDashboard).Methods("GET", "OPTIONS").Name("dashboard")
}

func (handler *Handler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.dashboard.get")
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

	dashboard, err := handler.assemble(ctx, userID, ref)
	if err != nil {
		log.Errorf("failed to assemble dashboard for user %d: %s", userID, err)
		http.Error(w, "failed to get dashboard", http.StatusInternalServerError)
		return
	}

	dashboardJson, err := json.Marshal(dashboard)
	if err != nil {
		log.Errorf("failed to marshal dashboard: %s", err)
		http.Error(w, "failed to get dashboard", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, dashboardJson, http.StatusOK)
}

func (handler *Handler) assemble(ctx context.Context, userID int, ref calendar.Day) (*Dashboard, error) {
	loads, err := handler.training.TrainingLoads(ctx, userID, ref)
	if err != nil {
		return nil, err
	}

	profile, err := handler.profiles.Profile(ctx, userID)
	if err != nil {
		return nil, err
	}
	calories, err := handler.nutrition.CaloriesForDate(ctx, userID, ref)
	if err != nil {
		return nil, err
	}
	balance := energy.ComputeBalance(*profile, ref, calories)

	trainingStreak, err := handler.training.Streak(ctx, userID, ref)
	if err != nil {
		return nil, err
	}
	diaryStreak, err := handler.nutrition.Streak(ctx, userID, ref)
	if err != nil {
		return nil, err
	}

	weekLogs, err := handler.nutrition.WeeklyLogs(ctx, userID, ref)
	if err != nil {
		return nil, err
	}
	weekSessions, err := handler.training.WeekSessions(ctx, userID, ref)
	if err != nil {
		return nil, err
	}

	checkIn, err := handler.recovery.GetForDate(ctx, userID, ref)
	if errors.Is(err, recovery.ErrCheckInNotFound) {
		checkIn = nil
	} else if err != nil {
		return nil, err
	}
	recoverySummary, err := handler.recovery.Summary(ctx, userID, ref)
	if err != nil {
		return nil, err
	}

	return &Dashboard{
		Date:            ref,
		TrainingLoads:   loads,
		EnergyBalance:   balance,
		TrainingStreak:  trainingStreak,
		DiaryStreak:     diaryStreak,
		Weekly:          ComputeWeekly(weekLogs, weekSessions),
		Recovery:        checkIn,
		RecoverySummary: recoverySummary,
	}, nil
}

// refDate reads the optional ?date= query param, defaulting to today.
func refDate(r *http.Request) (calendar.Day, error) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		return calendar.Today(), nil
	}
	return calendar.ParseDay(dateStr)
}
