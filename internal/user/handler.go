package user

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/fittrack/fittrack/internal/auth"
	"github.com/fittrack/fittrack/internal/energy"
	"github.com/fittrack/fittrack/internal/middleware"
	"github.com/fittrack/fittrack/internal/telemetry/metrics"
	"github.com/fittrack/fittrack/internal/telemetry/tracing"
	"github.com/fittrack/fittrack/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=user_test

type usersRepo interface {
	Create(ctx context.Context, email, passwordHash string) (*User, error)
	Get(ctx context.Context, id int) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	UpdateProfile(ctx context.Context, id int, p energy.Profile) error
}

type loginService interface {
	Login(ctx context.Context, userID int, createdAt time.Time) (string, error)
	Logout(ctx context.Context, token string) error
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Handler struct {
	repo        usersRepo
	authService loginService
	metrics     *metrics.Manager
}

func NewHandler(repo usersRepo, authService loginService, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		repo:        repo,
		authService: authService,
		metrics:     metricsManager,
	}
}

func (handler *Handler) SetupRoutes(
	mainRouter *mux.Router,
	rateLimiter middleware.RequestRateLimiter,
	loginAllowedPerMin int,
) {
	authRouter := mainRouter.PathPrefix("/auth").Subrouter()
	authRouter.HandleFunc("/register", handler.handleRegister).Methods("POST", "OPTIONS").Name("register")
	authRouter.HandleFunc("/login", handler.handleLogin).Methods("POST", "OPTIONS").Name("login")
	authRouter.HandleFunc("/logout", handler.handleLogout).Methods("GET", "OPTIONS").Name("logout")

	// rate limit the /auth endpoints to prevent abuse
	authRouter.Use(middleware.RateLimit(rateLimiter, "auth", loginAllowedPerMin, handler.metrics))

	mainRouter.HandleFunc("/profile", handler.handleGetProfile).Methods("GET", "OPTIONS").Name("get-profile")
	mainRouter.HandleFunc("/profile", handler.handleUpdateProfile).Methods("PUT", "OPTIONS").Name("update-profile")
}

func (handler *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "userHandler.register")
	defer span.End()

	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("register, unmarshal json params: %s", err)
		http.Error(w, "registration failed", http.StatusBadRequest)
		return
	}

	if err := ValidateEmail(req.Email); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := ValidatePassword(req.Password); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	passwordHash, err := pkg.HashPassword(req.Password)
	if err != nil {
		log.Errorf("register, hash password: %s", err)
		http.Error(w, "registration failed", http.StatusInternalServerError)
		return
	}

	newUser, err := handler.repo.Create(ctx, req.Email, passwordHash)
	if errors.Is(err, ErrEmailTaken) {
		http.Error(w, "error, email already registered", http.StatusConflict)
		return
	} else if err != nil {
		log.Errorf("register, create user: %s", err)
		http.Error(w, "registration failed", http.StatusInternalServerError)
		return
	}

	if handler.metrics != nil {
		handler.metrics.CounterRegisteredUsers.Inc()
	}

	token, err := handler.authService.Login(ctx, newUser.ID, time.Now())
	if err != nil {
		log.Errorf("register, generate token error: %s", err)
		http.Error(w, "generate token error", http.StatusInternalServerError)
		return
	}

	log.Debugf("new user registered: %d", newUser.ID)
	pkg.WriteResponse(w, pkg.ContentType.JSON,
		fmt.Sprintf(`{"userId": %d, "token": "%s"}`, newUser.ID, token),
		http.StatusCreated,
	)
}

func (handler *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "userHandler.login")
	defer span.End()

	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("login, unmarshal json params: %s", err)
		http.Error(w, "login failed", http.StatusBadRequest)
		return
	}

	if req.Email == "" {
		http.Error(w, "error, email empty", http.StatusBadRequest)
		return
	}
	if req.Password == "" {
		http.Error(w, "error, password empty", http.StatusBadRequest)
		return
	}

	u, err := handler.repo.GetByEmail(ctx, req.Email)
	if errors.Is(err, ErrUserNotFound) {
		log.Tracef("[email] failed login attempt for: %s", req.Email)
		http.Error(w, "error, wrong credentials", http.StatusBadRequest)
		return
	} else if err != nil {
		log.Errorf("login, get user: %s", err)
		http.Error(w, "login failed", http.StatusInternalServerError)
		return
	}

	if !pkg.CheckPasswordHash(req.Password, u.PasswordHash) {
		log.Tracef("[password] failed login attempt for user: %d", u.ID)
		http.Error(w, "error, wrong credentials", http.StatusBadRequest)
		return
	}

	token, err := handler.authService.Login(ctx, u.ID, time.Now())
	if err != nil {
		log.Errorf("login failed, generate token error: %s", err)
		http.Error(w, "generate token error", http.StatusInternalServerError)
		return
	}

	log.Trace("new login success")
	pkg.WriteJSONResponseOK(w, fmt.Sprintf(`{"userId": %d, "token": "%s"}`, u.ID, token))
}

func (handler *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "userHandler.logout")
	defer span.End()

	authToken := r.Header.Get(middleware.AuthTokenHeader)
	if authToken == "" {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	if err := handler.authService.Logout(ctx, authToken); err != nil {
		log.Tracef("[failed logout] => %s: %s", r.URL.Path, err)
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	log.Printf("logout for [%s] success", authToken)
	pkg.WriteTextResponseOK(w, "logged-out")
}

func (handler *Handler) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "userHandler.getProfile")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	u, err := handler.repo.Get(ctx, userID)
	if errors.Is(err, ErrUserNotFound) {
		http.Error(w, "user not found", http.StatusNotFound)
		return
	} else if err != nil {
		log.Errorf("get profile, get user %d: %s", userID, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	userJson, err := json.Marshal(u)
	if err != nil {
		log.Errorf("get profile, marshal user: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, userJson, http.StatusOK)
}

func (handler *Handler) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "userHandler.updateProfile")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var p energy.Profile
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		log.Errorf("update profile, unmarshal json params: %s", err)
		http.Error(w, "invalid profile payload", http.StatusBadRequest)
		return
	}

	if err := ValidateProfile(p); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := handler.repo.UpdateProfile(ctx, userID, p); errors.Is(err, ErrUserNotFound) {
		http.Error(w, "user not found", http.StatusNotFound)
		return
	} else if err != nil {
		log.Errorf("update profile for user %d: %s", userID, err)
		http.Error(w, "error, profile not updated", http.StatusInternalServerError)
		return
	}

	log.Debugf("profile updated for user: %d", userID)
	pkg.WriteJSONResponseOK(w, `{"updated": true}`)
}
