package v1

import (
	"net/http"
	"time"

	"interview-tracker/config"
	"interview-tracker/internal/delivery/http/middleware"
	"interview-tracker/internal/delivery/http/response"
	"interview-tracker/internal/domain"
	"interview-tracker/internal/usecase"
	"interview-tracker/pkg/metrics"
	"interview-tracker/pkg/security"
	"interview-tracker/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	goredis "github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AuthUC         domain.AuthUsecase
	BusinessAreaUC domain.BusinessAreaUsecase
	JobUC          domain.JobUsecase
	TagUC          domain.TagUsecase
	IntervieweeUC  domain.IntervieweeUsecase
	InterviewerUC  domain.InterviewerUsecase
	InterviewUC    domain.InterviewUsecase
	InterviewTagUC domain.InterviewTagUsecase
	HealthUC       usecase.HealthUsecase

	Tokens         middleware.TokenVerifier
	SecurityLogger *security.SecurityLogger
	Metrics        *metrics.HTTPMetrics
	Registry       *prometheus.Registry
	Redis          *goredis.Client
	Config         *config.Config
}

func init() {
	binding.EnableDecoderDisallowUnknownFields = true
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		validation.RegisterValidators(v)
	}
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	var allowedOrigins []string
	if deps.Config != nil {
		allowedOrigins = deps.Config.CORSAllowedOrigins
	}

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(allowedOrigins)) // CORS must be first!
	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery())
	r.Use(middleware.AccessLog())
	r.Use(middleware.SecurityHeadersMiddleware())
	if deps.Metrics != nil {
		r.Use(middleware.Metrics(deps.Metrics))
	}
	r.Use(middleware.ErrorHandler())

	r.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	if deps.HealthUC != nil {
		r.GET("/readyz", func(c *gin.Context) {
			status, err := deps.HealthUC.Ready(c.Request.Context())
			if err != nil {
				response.Error(c, http.StatusServiceUnavailable, "Service not ready", status)
				return
			}
			response.Success(c, http.StatusOK, "Service ready", status)
		})
	}
	if deps.Registry != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{})))
	}
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")

	authDeps := AuthHandlerDeps{
		AuthUC:         deps.AuthUC,
		SecurityLogger: deps.SecurityLogger,
		Metrics:        deps.Metrics,
	}
	if deps.Tokens != nil {
		authDeps.RequireAuth = middleware.AuthMiddleware(deps.Tokens, deps.SecurityLogger)
	}
	if deps.Config != nil && deps.Config.RateLimitEnabled {
		limiter := middleware.NewRateLimiter(
			middleware.AuthRateLimitConfig(
				deps.Config.RateLimitAuthThreshold,
				time.Duration(deps.Config.RateLimitWindowSeconds)*time.Second,
			),
			deps.Redis,
			deps.SecurityLogger,
		)
		authDeps.RateLimit = limiter.Middleware()
	}

	NewAuthHandler(api, authDeps)
	NewBusinessAreaHandler(api, deps.BusinessAreaUC)
	NewJobHandler(api, deps.JobUC)
	NewTagHandler(api, deps.TagUC)
	NewIntervieweeHandler(api, deps.IntervieweeUC)
	NewInterviewerHandler(api, deps.InterviewerUC)
	NewInterviewHandler(api, deps.InterviewUC, deps.InterviewTagUC)

	return r
}
