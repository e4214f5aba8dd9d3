package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.uber.org/multierr"

	"github.com/fittrack/fittrack/internal/auth"
	"github.com/fittrack/fittrack/internal/config"
	"github.com/fittrack/fittrack/internal/dashboard"
	"github.com/fittrack/fittrack/internal/db"
	"github.com/fittrack/fittrack/internal/middleware"
	"github.com/fittrack/fittrack/internal/nutrition"
	"github.com/fittrack/fittrack/internal/recovery"
	"github.com/fittrack/fittrack/internal/telemetry/metrics"
	"github.com/fittrack/fittrack/internal/telemetry/tracing"
	"github.com/fittrack/fittrack/internal/training"
	"github.com/fittrack/fittrack/internal/user"
	"github.com/fittrack/fittrack/pkg"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config *config.Config
	dbPool *pgxpool.Pool

	userRepo         *user.Repo
	trainingRepo     *training.Repo
	nutritionService *nutrition.Service
	recoveryRepo     *recovery.Repo

	redisClient  *redis.Client
	loginChecker *auth.LoginChecker
	authService  *auth.Service

	// telemetry
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	VersionInfo             string
	RedisPassword           string
	PostgresPassword        string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         params.Config.PostgresHost,
		DBPort:         params.Config.PostgresPort,
		DBName:         params.Config.PostgresDBName,
		DBUser:         params.Config.PostgresUser,
		DBPassword:     params.PostgresPassword,
		TracingEnabled: params.HoneycombTracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}

	if err := db.Migrate(ctx, dbPool); err != nil {
		return nil, fmt.Errorf("migrate db: %w", err)
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": params.Config.PostgresDBName},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("fittrack", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(params.Config.RedisHost, params.Config.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	authService := auth.NewService(auth.DefaultTTL, rdb)
	go func() {
		for range time.Tick(time.Hour * 8) {
			authService.ScanAndClean(ctx)
		}
	}()

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "fittrack-backend")
	if err != nil {
		return nil, err
	}

	return &Server{
		config:           params.Config,
		dbPool:           dbPool,
		versionInfo:      params.VersionInfo,
		userRepo:         user.NewRepo(dbPool),
		trainingRepo:     training.NewRepo(dbPool),
		nutritionService: nutrition.NewService(nutrition.NewRepo(dbPool)),
		recoveryRepo:     recovery.NewRepo(dbPool),

		redisClient:  rdb,
		authService:  authService,
		loginChecker: auth.NewLoginChecker(auth.DefaultTTL, rdb),

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("main-router"))

	r.HandleFunc("/ping", func(w http.ResponseWriter, _ *http.Request) {
		pkg.WriteTextResponseOK(w, "pong")
	}).Methods("GET", "OPTIONS").Name("ping")

	reqRateLimiter := redis_rate.NewLimiter(s.redisClient)
	userHandler := user.NewHandler(s.userRepo, s.authService, s.metricsManager)
	userHandler.SetupRoutes(r, reqRateLimiter, s.config.LoginRateLimitAllowedPerMin)

	trainingHandler := training.NewHandler(s.trainingRepo, s.metricsManager)
	// fixed training paths registered before the {id} catch-all
	r.HandleFunc("/training/loads", trainingHandler.HandleLoads).Methods("GET", "OPTIONS").Name("training-loads")
	r.HandleFunc("/training/streak", trainingHandler.HandleStreak).Methods("GET", "OPTIONS").Name("training-streak")
	r.HandleFunc("/training/export", trainingHandler.HandleExportCSV).Methods("GET", "OPTIONS").Name("training-export")
	r.HandleFunc("/training", trainingHandler.HandleAdd).Methods("POST", "OPTIONS").Name("new-training")
	r.HandleFunc("/training", trainingHandler.HandleList).Methods("GET", "OPTIONS").Name("list-training")
	r.HandleFunc("/training/{id}", trainingHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-training")
	r.HandleFunc("/training/{id}", trainingHandler.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-training")
	r.HandleFunc("/training/{id}", trainingHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-training")

	nutritionHandler := nutrition.NewHandler(s.nutritionService, s.metricsManager)
	nutritionHandler.SetupRoutes(r)

	recoveryHandler := recovery.NewHandler(s.recoveryRepo, s.metricsManager)
	recoveryHandler.SetupRoutes(r)

	dashboardHandler := dashboard.NewHandler(
		s.userRepo,
		s.nutritionService,
		training.NewAnalyzer(s.trainingRepo),
		s.recoveryRepo,
	)
	dashboardHandler.SetupRoutes(r)

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "DELETE", "OPTIONS").Name("unknown")

	authMiddleware := middleware.NewAuthMiddlewareHandler(s.loginChecker)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors())
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.DrainAndCloseRequest())

	return r
}

func (s *Server) Serve(_ context.Context, host string, port int) {
	router := s.routerSetup()

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(
		s.promRegistry,
		promhttp.HandlerOpts{},
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	s.otelShutdown()
	log.Trace("otel shut down ...")

	var closeErrors error
	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			closeErrors = multierr.Append(closeErrors, fmt.Errorf("close redis client: %w", err))
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		closeErrors = multierr.Append(closeErrors, fmt.Errorf("shutdown http server: %w", err))
	}
	if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
		closeErrors = multierr.Append(closeErrors, fmt.Errorf("shutdown metrics http server: %w", err))
	}

	if closeErrors != nil {
		log.Errorf(" >>> shutdown errors: %s", closeErrors)
	}
	log.Warnln("server shut down")
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Sub(1)
	}
}
