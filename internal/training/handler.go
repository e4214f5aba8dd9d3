package training

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/fittrack/fittrack/internal/auth"
	"github.com/fittrack/fittrack/internal/calendar"
	"github.com/fittrack/fittrack/internal/telemetry/metrics"
	"github.com/fittrack/fittrack/internal/telemetry/tracing"
	"github.com/fittrack/fittrack/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=training_test

type sessionsRepo interface {
	Add(ctx context.Context, session Session) (*Session, error)
	Get(ctx context.Context, userID, id int) (*Session, error)
	Update(ctx context.Context, session *Session) error
	Delete(ctx context.Context, userID, id int) error
	List(ctx context.Context, userID int) ([]Session, error)
	ListRange(ctx context.Context, userID int, from, to calendar.Day) ([]Session, error)
	ActiveDates(ctx context.Context, userID int, from, to calendar.Day) (map[calendar.Day]bool, error)
}

// SessionRequest is the payload for adding or editing a session.
// Numeric fields come in as JSON numbers and are rounded to whole
// minutes / RPE points; the session load is always derived, any
// client-sent value is ignored.
type SessionRequest struct {
	Date        calendar.Day `json:"date"`
	Type        string       `json:"type"`
	DurationMin float64      `json:"durationMin"`
	RPE         float64      `json:"rpe"`
	Notes       *string      `json:"notes"`
}

type DeleteSessionResponse struct {
	DeletedID int `json:"deletedId"`
}

type UpdateSessionResponse struct {
	UpdatedID int `json:"updatedId"`
}

type ListResponse struct {
	Sessions []Session `json:"sessions"`
	Total    int       `json:"total"`
}

type StreakResponse struct {
	Streak int `json:"streak"`
}

type Handler struct {
	repo     sessionsRepo
	analyzer *Analyzer
	metrics  *metrics.Manager
}

func NewHandler(repo sessionsRepo, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		repo:     repo,
		analyzer: NewAnalyzer(repo),
		metrics:  metricsManager,
	}
}

func (handler *Handler) session(r *http.Request, userID int) (*Session, error) {
	var req SessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, pkg.NewValidationError("invalid session payload")
	}

	s := &Session{
		UserID:      userID,
		Date:        req.Date,
		Type:        strings.TrimSpace(req.Type),
		DurationMin: int(math.Round(req.DurationMin)),
		RPE:         int(math.Round(req.RPE)),
		Notes:       req.Notes,
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.add")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	session, err := handler.session(r, userID)
	if err != nil {
		log.Tracef("new training session, invalid payload: %s", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	session.CreatedAt = time.Now()

	addedSession, err := handler.repo.Add(ctx, *session)
	if err != nil {
		log.Errorf("failed to add training session [%s]: %s", session.Type, err)
		http.Error(w, "error, failed to add training session", http.StatusInternalServerError)
		return
	}

	if handler.metrics != nil {
		handler.metrics.CounterTrainingSessions.Inc()
	}

	sessionJson, err := json.Marshal(addedSession)
	if err != nil {
		log.Errorf("failed to marshal added session: %s", err)
		http.Error(w, "error, failed to add training session", http.StatusInternalServerError)
		return
	}

	log.Debugf("new training session added: %d", addedSession.ID)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, sessionJson, http.StatusCreated)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.get")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	id, err := sessionID(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	session, err := handler.repo.Get(ctx, userID, id)
	if errors.Is(err, ErrSessionNotFound) {
		http.Error(w, "session not found", http.StatusNotFound)
		return
	} else if err != nil {
		log.Errorf("failed to get session %d: %s", id, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	sessionJson, err := json.Marshal(session)
	if err != nil {
		log.Errorf("failed to marshal session: %s", err)
		http.Error(w, "failed to marshal session", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, sessionJson, http.StatusOK)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.list")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	sessions, err := handler.repo.List(ctx, userID)
	if err != nil {
		log.Errorf("list training sessions error: %s", err)
		http.Error(w, "failed to get training sessions", http.StatusInternalServerError)
		return
	}

	listJson, err := json.Marshal(ListResponse{
		Sessions: sessions,
		Total:    len(sessions),
	})
	if err != nil {
		log.Errorf("marshal training sessions error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, listJson, http.StatusOK)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.update")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	id, err := sessionID(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	session, err := handler.session(r, userID)
	if err != nil {
		log.Tracef("update training session, invalid payload: %s", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	session.ID = id

	current, err := handler.repo.Get(ctx, userID, id)
	if errors.Is(err, ErrSessionNotFound) {
		http.Error(w, "session not found", http.StatusNotFound)
		return
	} else if err != nil {
		log.Errorf("failed to get session %d: %s", id, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	session.CreatedAt = current.CreatedAt

	if err := handler.repo.Update(ctx, session); err != nil {
		log.Errorf("failed to update session %d: %s", id, err)
		http.Error(w, "error, failed to update session", http.StatusInternalServerError)
		return
	}

	updateRespJson, err := json.Marshal(UpdateSessionResponse{
		UpdatedID: id,
	})
	if err != nil {
		log.Errorf("failed to marshal update response: %s", err)
		http.Error(w, "failed to marshal update response", http.StatusInternalServerError)
		return
	}

	log.Debugf("training session updated: [%s]: %d", session.Type, id)
	pkg.WriteJSONResponseOK(w, string(updateRespJson))
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.delete")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	id, err := sessionID(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := handler.repo.Delete(ctx, userID, id); errors.Is(err, ErrSessionNotFound) {
		log.Debugf("training session %d not found", id)
		http.Error(w, "session not found", http.StatusNotFound)
		return
	} else if err != nil {
		log.Errorf("failed to delete session %d: %s", id, err)
		http.Error(w, "session not deleted", http.StatusInternalServerError)
		return
	}

	deleteRespJson, err := json.Marshal(DeleteSessionResponse{
		DeletedID: id,
	})
	if err != nil {
		log.Errorf("failed to marshal delete response: %s", err)
		http.Error(w, "failed to marshal delete response", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSONResponseOK(w, string(deleteRespJson))
}

func (handler *Handler) HandleLoads(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.loads")
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

	loads, err := handler.analyzer.TrainingLoads(ctx, userID, ref)
	if err != nil {
		log.Errorf("failed to compute training loads: %s", err)
		http.Error(w, "failed to compute training loads", http.StatusInternalServerError)
		return
	}

	loadsJson, err := json.Marshal(loads)
	if err != nil {
		log.Errorf("failed to marshal training loads: %s", err)
		http.Error(w, "failed to marshal training loads", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, loadsJson, http.StatusOK)
}

func (handler *Handler) HandleStreak(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.streak")
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

	trainingStreak, err := handler.analyzer.Streak(ctx, userID, ref)
	if err != nil {
		log.Errorf("failed to compute training streak: %s", err)
		http.Error(w, "failed to compute training streak", http.StatusInternalServerError)
		return
	}

	streakJson, err := json.Marshal(StreakResponse{Streak: trainingStreak})
	if err != nil {
		log.Errorf("failed to marshal training streak: %s", err)
		http.Error(w, "failed to marshal training streak", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, streakJson, http.StatusOK)
}

// HandleExportCSV streams the full training history as a CSV download.
func (handler *Handler) HandleExportCSV(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.export")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	sessions, err := handler.repo.List(ctx, userID)
	if err != nil {
		log.Errorf("export training sessions error: %s", err)
		http.Error(w, "failed to get training sessions", http.StatusInternalServerError)
		return
	}

	var sb strings.Builder
	sb.WriteString("Date,Session Load,Duration (min)\n")
	for _, s := range sessions {
		sb.WriteString(fmt.Sprintf("%s,%d,%d\n", s.Date, s.Load, s.DurationMin))
	}

	w.Header().Set("Content-Disposition", "attachment; filename=training-history.csv")
	pkg.WriteResponse(w, pkg.ContentType.CSV, sb.String(), http.StatusOK)
}

func sessionID(r *http.Request) (int, error) {
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
