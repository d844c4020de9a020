package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"interview-tracker/config"
	_ "interview-tracker/docs" // Important for Swagger
	v1 "interview-tracker/internal/delivery/http/v1"
	"interview-tracker/internal/repository/postgres"
	"interview-tracker/internal/usecase"
	"interview-tracker/migrations"
	"interview-tracker/pkg/auth"
	"interview-tracker/pkg/database"
	"interview-tracker/pkg/logger"
	"interview-tracker/pkg/metrics"
	"interview-tracker/pkg/redis"
	"interview-tracker/pkg/security"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	goredis "github.com/redis/go-redis/v9"
)

// redisPinger adapts the go-redis client to usecase.Pinger.
type redisPinger struct {
	client *goredis.Client
}

func (p redisPinger) Ping(ctx context.Context) error {
	return p.client.Ping(ctx).Err()
}

// @title           Interview Tracker API
// @version         1.0
// @description     Tracks interviewers, interviewees, jobs and scheduled interviews.
// @host            localhost:3000
// @BasePath        /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init(cfg.LogLevel)
	gin.SetMode(cfg.GinMode)
	logger.Log.Info("Starting interview tracker", "port", cfg.Port, "env", cfg.Environment)

	secLogger := security.NewProductionSecurityLogger("interview-tracker", cfg.Environment)
	defer func() { _ = secLogger.Sync() }()

	ctx := context.Background()

	// 3. Setup Database
	if cfg.AutoMigrate {
		status, err := database.Migrate(cfg.DatabaseURL(), migrations.FS, "up")
		if err != nil {
			logger.Log.Error("Failed to migrate database", "error", err)
			os.Exit(1)
		}
		logger.Log.Info("Database schema ready", "version", status.Version, "dirty", status.Dirty)
	}

	dbPool, err := database.NewPostgresConnection(ctx, database.PoolConfig{
		URL:      cfg.DatabaseURL(),
		MaxConns: cfg.DBMaxConns,
		MinConns: cfg.DBMinConns,
	})
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()
	txManager := database.NewTxManager(dbPool)

	// 4. Setup Redis (optional)
	redisClient, err := redis.NewClient(ctx, redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword})
	if err != nil {
		logger.Log.Warn("Redis unavailable, rate limiting uses in-memory counters", "error", err)
		redisClient = nil
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	// 5. Setup Repositories
	businessAreaRepo := postgres.NewBusinessAreaRepository(dbPool)
	jobRepo := postgres.NewJobRepository(dbPool)
	tagRepo := postgres.NewTagRepository(dbPool)
	intervieweeRepo := postgres.NewIntervieweeRepository(dbPool)
	interviewerRepo := postgres.NewInterviewerRepository(dbPool)
	interviewRepo := postgres.NewInterviewRepository(dbPool, txManager)
	interviewTagRepo := postgres.NewInterviewTagRepository(dbPool)

	// 6. Setup UseCases
	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.JWTExpiresIn)
	authUC, err := usecase.NewAuthUsecase(interviewerRepo, tokens, cfg.BcryptCost)
	if err != nil {
		logger.Log.Error("Invalid auth configuration", "error", err)
		os.Exit(1)
	}

	health := map[string]usecase.Pinger{"postgres": dbPool}
	if redisClient != nil {
		health["redis"] = redisPinger{client: redisClient}
	}

	// 7. Setup Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	httpMetrics, err := metrics.NewHTTPMetrics(registry)
	if err != nil {
		logger.Log.Error("Failed to register metrics", "error", err)
		os.Exit(1)
	}

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:         authUC,
		BusinessAreaUC: usecase.NewBusinessAreaUsecase(businessAreaRepo),
		JobUC:          usecase.NewJobUsecase(jobRepo),
		TagUC:          usecase.NewTagUsecase(tagRepo),
		IntervieweeUC:  usecase.NewIntervieweeUsecase(intervieweeRepo),
		InterviewerUC:  usecase.NewInterviewerUsecase(interviewerRepo),
		InterviewUC: usecase.NewInterviewUsecase(usecase.InterviewRepos{
			Interviews:    interviewRepo,
			Interviewers:  interviewerRepo,
			Interviewees:  intervieweeRepo,
			Jobs:          jobRepo,
			BusinessAreas: businessAreaRepo,
			InterviewTags: interviewTagRepo,
			Tags:          tagRepo,
		}),
		InterviewTagUC: usecase.NewInterviewTagUsecase(interviewTagRepo, interviewRepo, tagRepo),
		HealthUC:       usecase.NewHealthUsecase(health),
		Tokens:         tokens,
		SecurityLogger: secLogger,
		Metrics:        httpMetrics,
		Registry:       registry,
		Redis:          redisClient,
		Config:         cfg,
	})

	// 9. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Error("Listen failed", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
