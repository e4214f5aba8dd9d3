package recovery

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/fittrack/fittrack/internal/auth"
	"github.com/fittrack/fittrack/internal/calendar"
	"github.com/fittrack/fittrack/internal/telemetry/metrics"
	"github.com/fittrack/fittrack/internal/telemetry/tracing"
	"github.com/fittrack/fittrack/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=recovery_test

type checkInsRepo interface {
	Upsert(ctx context.Context, userID int, checkIn CheckIn) (*CheckIn, error)
	GetForDate(ctx context.Context, userID int, date calendar.Day) (*CheckIn, error)
	Summary(ctx context.Context, userID int, ref calendar.Day) (*Summary, error)
}

type Handler struct {
	repo    checkInsRepo
	metrics *metrics.Manager
}

func NewHandler(repo checkInsRepo, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		repo:    repo,
		metrics: metricsManager,
	}
}

func (handler *Handler) SetupRoutes(mainRouter *mux.Router) {
	recoveryRouter := mainRouter.PathPrefix("/recovery").Subrouter()
	recoveryRouter.HandleFunc("", handler.HandleUpsert).Methods("POST", "PUT", "OPTIONS").Name("upsert-check-in")
	recoveryRouter.HandleFunc("/day", handler.HandleGetForDate).Methods("GET", "OPTIONS").Name("get-check-in")
	recoveryRouter.HandleFunc("/summary", handler.HandleSummary).Methods("GET", "OPTIONS").Name("check-in-summary")
}

func (handler *Handler) HandleUpsert(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.recovery.upsert")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var checkIn CheckIn
	if err := json.NewDecoder(r.Body).Decode(&checkIn); err != nil {
		log.Tracef("new check-in, unmarshal json params: %s", err)
		http.Error(w, "invalid check-in payload", http.StatusBadRequest)
		return
	}

	if err := checkIn.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	savedCheckIn, err := handler.repo.Upsert(ctx, userID, checkIn)
	if err != nil {
		log.Errorf("failed to save check-in for %s: %s", checkIn.Date, err)
		http.Error(w, "error, failed to save check-in", http.StatusInternalServerError)
		return
	}

	if handler.metrics != nil {
		handler.metrics.CounterRecoveryCheckIns.Inc()
	}

	checkInJson, err := json.Marshal(savedCheckIn)
	if err != nil {
		log.Errorf("failed to marshal check-in: %s", err)
		http.Error(w, "error, failed to save check-in", http.StatusInternalServerError)
		return
	}

	log.Debugf("check-in saved: %d", savedCheckIn.ID)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, checkInJson, http.StatusOK)
}

func (handler *Handler) HandleGetForDate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.recovery.getForDate")
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

	checkIn, err := handler.repo.GetForDate(ctx, userID, date)
	if errors.Is(err, ErrCheckInNotFound) {
		http.Error(w, "check-in not found", http.StatusNotFound)
		return
	} else if err != nil {
		log.Errorf("failed to get check-in for %s: %s", date, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	checkInJson, err := json.Marshal(checkIn)
	if err != nil {
		log.Errorf("failed to marshal check-in: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, checkInJson, http.StatusOK)
}

func (handler *Handler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.recovery.summary")
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

	summary, err := handler.repo.Summary(ctx, userID, ref)
	if err != nil {
		log.Errorf("failed to get check-in summary: %s", err)
		http.Error(w, "failed to get check-in summary", http.StatusInternalServerError)
		return
	}

	summaryJson, err := json.Marshal(summary)
	if err != nil {
		log.Errorf("failed to marshal check-in summary: %s", err)
		http.Error(w, "failed to get check-in summary", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, summaryJson, http.StatusOK)
}

// refDate reads the optional ?date= query param, defaulting to today.
func refDate(r *http.Request) (calendar.Day, error) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		return calendar.Today(), nil
	}
	return calendar.ParseDay(dateStr)
}
