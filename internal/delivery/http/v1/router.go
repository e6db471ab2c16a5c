package v1

import (
	"go-resume-backend/config"
	"go-resume-backend/internal/delivery/http/middleware"
	"go-resume-backend/internal/domain"
	"go-resume-backend/internal/usecase"
	"go-resume-backend/pkg/auth"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	goredis "github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "go-resume-backend/docs"
)

type RouterDeps struct {
	Resources  usecase.Resources
	Projection domain.ProjectionUsecase
	Setup      domain.SetupUsecase
	Export     domain.ExportUsecase
	Health     usecase.HealthUsecase
	Verifier   *auth.Verifier
	Config     *config.Config
	// Optional; rate limiting falls back to memory without it.
	Redis *goredis.Client
	// Serves /metrics and receives the HTTP collectors.
	Metrics *prometheus.Registry
}

func NewRouter(deps RouterDeps) *gin.Engine {
	if deps.Config == nil {
		deps.Config = &config.Config{}
	}
	if deps.Metrics == nil {
		deps.Metrics = prometheus.NewRegistry()
	}

	r := gin.New()

	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL, deps.Config.IsProduction())) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.AccessLog())
	r.Use(middleware.NewHTTPMetrics(deps.Metrics).Middleware())
	r.Use(middleware.SecurityHeadersMiddleware())
	rateLimit := middleware.DefaultRateLimitConfig(
		deps.Config.RateLimitGlobalThreshold,
		secondsToDuration(deps.Config.RateLimitWindowSeconds),
		deps.Redis,
	)
	rateLimit.FailClosed = deps.Config.RateLimitFailClosed
	r.Use(middleware.RateLimitMiddleware(rateLimit))
	r.Use(middleware.ErrorHandler())

	NewHealthHandler(r, deps.Health)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Metrics, promhttp.HandlerOpts{Registry: deps.Metrics})))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")

	// Public routes
	NewPublicHandler(api.Group("/public"), deps.Projection)

	// Protected routes
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Verifier))
	{
		v1 := protected.Group("/v1")
		res := deps.Resources
		registerResource[*domain.Resume, *domain.ResumeInput](v1.Group("/resume"), res.Resume,
			func() *domain.ResumeInput { return &domain.ResumeInput{} })
		registerResource[*domain.Experience, *domain.ExperienceInput](v1.Group("/experience"), res.Experience,
			func() *domain.ExperienceInput { return &domain.ExperienceInput{} })
		registerResource[*domain.Education, *domain.EducationInput](v1.Group("/education"), res.Education,
			func() *domain.EducationInput { return &domain.EducationInput{} })
		registerResource[*domain.Skill, *domain.SkillInput](v1.Group("/skill"), res.Skill,
			func() *domain.SkillInput { return &domain.SkillInput{} })
		registerResource[*domain.Language, *domain.LanguageInput](v1.Group("/language"), res.Language,
			func() *domain.LanguageInput { return &domain.LanguageInput{} })
		registerResource[*domain.Hobby, *domain.HobbyInput](v1.Group("/hobby"), res.Hobby,
			func() *domain.HobbyInput { return &domain.HobbyInput{} })
		registerResource[*domain.Project, *domain.ProjectInput](v1.Group("/project"), res.Project,
			func() *domain.ProjectInput { return &domain.ProjectInput{} })

		NewPlatformHandler(protected, deps.Resources, deps.Projection, deps.Setup, deps.Export)
	}

	return r
}
