package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/devfolio/portfolio-api/config"
	"github.com/devfolio/portfolio-api/internal/cache"
	"github.com/devfolio/portfolio-api/internal/database/postgres"
	"github.com/devfolio/portfolio-api/internal/handlers"
	"github.com/devfolio/portfolio-api/internal/middleware"
	"github.com/devfolio/portfolio-api/internal/repository"
	"github.com/devfolio/portfolio-api/internal/services"
	"github.com/devfolio/portfolio-api/pkg/db"
	"github.com/devfolio/portfolio-api/pkg/httpclient"
	"github.com/devfolio/portfolio-api/pkg/jwt"
	"github.com/devfolio/portfolio-api/pkg/logger"
	"github.com/devfolio/portfolio-api/pkg/metrics"
	"github.com/devfolio/portfolio-api/pkg/profiling"
	"github.com/devfolio/portfolio-api/pkg/recaptcha"
	"github.com/devfolio/portfolio-api/pkg/storage"
	"github.com/devfolio/portfolio-api/pkg/tracing"
)

const uploadsRoute = "/uploads"

type appHandlers struct {
	health  *handlers.HealthHandler
	auth    *handlers.AuthHandler
	skill   *handlers.SkillHandler
	project *handlers.ProjectHandler
	blog    *handlers.BlogHandler
	contact *handlers.ContactHandler
	profile *handlers.ProfileHandler
	stats   *handlers.StatsHandler
}

type rateLimiters struct {
	general *middleware.RateLimiter
	contact *middleware.RateLimiter
	login   *middleware.RateLimiter
}

// registerPublicRoutes registers read-only content routes and the contact form
func registerPublicRoutes(v1 *gin.RouterGroup, h appHandlers, limiters rateLimiters) {
	v1.Use(limiters.general.Middleware())

	v1.GET("/skills", h.skill.List)
	v1.GET("/projects", h.project.ListPublished)
	v1.GET("/projects/:id", h.project.ShowPublished)
	v1.GET("/blogs", h.blog.ListPublished)
	v1.GET("/blogs/:slug", h.blog.ShowBySlug)
	v1.GET("/profile", h.profile.Show)
	v1.POST("/contact", limiters.contact.Middleware(), h.contact.Submit)
}

// registerAdminRoutes registers the bearer-token protected management routes
func registerAdminRoutes(admin *gin.RouterGroup, h appHandlers) {
	admin.GET("/skills", h.skill.List)
	admin.POST("/skills", h.skill.Create)
	admin.GET("/skills/:id", h.skill.Show)
	admin.PUT("/skills/:id", h.skill.Update)
	admin.DELETE("/skills/:id", h.skill.Delete)

	admin.GET("/projects", h.project.ListAll)
	admin.POST("/projects", h.project.Create)
	admin.GET("/projects/:id", h.project.Show)
	admin.PUT("/projects/:id", h.project.Update)
	admin.DELETE("/projects/:id", h.project.Delete)

	admin.GET("/blogs", h.blog.ListAll)
	admin.POST("/blogs", h.blog.Create)
	admin.GET("/blogs/:id", h.blog.Show)
	admin.PUT("/blogs/:id", h.blog.Update)
	admin.DELETE("/blogs/:id", h.blog.Delete)

	admin.GET("/contacts", h.contact.List)
	admin.GET("/contacts/:id", h.contact.Show)
	admin.PATCH("/contacts/:id/read", h.contact.MarkRead)
	admin.DELETE("/contacts/:id", h.contact.Delete)

	admin.POST("/profile", h.profile.Update)
	admin.PUT("/profile", h.profile.Update)
	admin.DELETE("/profile/image", h.profile.RemoveImage)

	admin.GET("/stats", h.stats.Get)
}

// newStorage picks S3 when credentials are configured and local disk otherwise.
// The local directory is returned so that it can be served under /uploads.
func newStorage(cfg *config.Config) (storage.Client, string, error) {
	if cfg.Storage.UsesS3() {
		client, err := storage.NewS3Client(storage.S3Config{
			AccessKeyID:     cfg.Storage.AccessKeyID,
			SecretAccessKey: cfg.Storage.SecretAccessKey,
			BucketName:      cfg.Storage.BucketName,
			Endpoint:        cfg.Storage.Endpoint,
			Region:          cfg.Storage.Region,
			PublicBaseURL:   cfg.Storage.PublicBaseURL,
			MaxImageBytes:   cfg.Storage.MaxImageBytes,
		})
		return client, "", err
	}

	baseURL := strings.TrimRight(cfg.Server.BaseURL, "/") + uploadsRoute
	client, err := storage.NewLocalClient(cfg.Storage.LocalDir, baseURL, cfg.Storage.MaxImageBytes)
	if err != nil {
		return nil, "", err
	}
	return client, client.Dir(), nil
}

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	err = logger.Initialize(logger.Config{
		Level:       cfg.Logging.Level,
		LogDir:      cfg.Logging.Dir,
		Environment: cfg.Server.AppEnv,
		ServiceName: cfg.Observability.ServiceName,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting portfolio API",
		zap.String("version", cfg.Observability.ServiceVersion),
		zap.String("environment", cfg.Server.AppEnv),
	)

	// Initialize distributed tracing
	tracerShutdown, err := tracing.InitTracer(cfg.Observability, cfg.Server.AppEnv)
	if err != nil {
		logger.Fatal("Failed to initialize tracer", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if shutdownErr := tracerShutdown(ctx); shutdownErr != nil {
			logger.Error("Failed to shutdown tracer", zap.Error(shutdownErr))
		}
	}()

	stopProfiler, err := profiling.InitProfiler(cfg.Profiling, cfg.Observability, cfg.Server.AppEnv)
	if err != nil {
		logger.Error("Failed to start profiler", zap.Error(err))
	} else {
		defer stopProfiler()
	}

	// Background jobs stop when the server shuts down
	appCtx, stopApp := context.WithCancel(context.Background())
	defer stopApp()

	stopMetrics := make(chan struct{})
	defer close(stopMetrics)
	metrics.RecordInfrastructureMetrics(stopMetrics)

	if cfg.Database.AutoMigrate {
		if err := db.RunMigrations(db.MigrationConfig{
			DatabaseURL:    cfg.Database.URL,
			MigrationsPath: cfg.Database.MigrationsPath,
			CACertPath:     cfg.Database.CACertPath,
		}); err != nil {
			logger.Fatal("Failed to run database migrations", zap.Error(err))
		}
	}

	// Initialize PostgreSQL connection pool
	pool, err := db.NewPool(appCtx, db.PoolConfig{
		URL:        cfg.Database.URL,
		MaxConns:   cfg.Database.MaxConns,
		MinConns:   cfg.Database.MinConns,
		CACertPath: cfg.Database.CACertPath,
	})
	if err != nil {
		logger.Fatal("Failed to initialize database connection pool", zap.Error(err))
	}
	pgClient := postgres.NewClient(pool)
	defer pgClient.Close()

	imageStore, uploadsDir, err := newStorage(cfg)
	if err != nil {
		logger.Fatal("Failed to initialize image storage", zap.Error(err))
	}

	contentCache := cache.NewContentCache(cfg.Cache.ContentTTLSeconds, cfg.Cache.DisableContentCache)
	if cfg.Cache.DisableContentCache {
		logger.Warn("Content cache is DISABLED - reading listings from the database on every request")
	}

	revocationStore := cache.NewRevocationStore(appCtx, cfg.Redis.URL)
	if closer, ok := revocationStore.(interface{ Close() error }); ok {
		defer func() {
			if closeErr := closer.Close(); closeErr != nil {
				logger.Warn("Failed to close revocation store", zap.Error(closeErr))
			}
		}()
	}

	// Repositories
	skillRepo := repository.NewSkillRepository(pgClient, contentCache)
	projectRepo := repository.NewProjectRepository(pgClient, contentCache)
	blogRepo := repository.NewBlogRepository(pgClient, contentCache)
	contactRepo := repository.NewContactRepository(pgClient)
	profileRepo := repository.NewProfileRepository(pgClient)
	statsRepo := repository.NewStatsRepository(pgClient)

	// Initialize HTTP client for event triggers
	httpClient := httpclient.NewStandardClient(10 * time.Second)

	tokenManager := jwt.NewTokenManager(cfg.Session.JWTSecret, cfg.Session.JWTIssuer, cfg.Session.SessionTTLHours)

	// Services
	authService := services.NewAuthService(cfg.Admin, tokenManager, revocationStore)
	skillService := services.NewSkillService(skillRepo)
	projectService := services.NewProjectService(projectRepo, imageStore)
	blogService := services.NewBlogService(blogRepo, imageStore)
	contactService := services.NewContactService(contactRepo, httpClient, cfg.EventTriggers.ContactCreatedTriggerURL)
	if cfg.Recaptcha.SecretKey != "" {
		contactService.WithCaptcha(recaptcha.NewVerifier(cfg.Recaptcha.SecretKey, cfg.Recaptcha.VerifyURL, httpClient))
		logger.Info("Contact form captcha enabled")
	}
	profileService := services.NewProfileService(profileRepo, imageStore)
	statsService := services.NewStatsService(statsRepo)

	h := appHandlers{
		health:  handlers.NewHealthHandler(pgClient.Ping),
		auth:    handlers.NewAuthHandler(authService),
		skill:   handlers.NewSkillHandler(skillService),
		project: handlers.NewProjectHandler(projectService),
		blog:    handlers.NewBlogHandler(blogService),
		contact: handlers.NewContactHandler(contactService),
		profile: handlers.NewProfileHandler(profileService, cfg.Storage.MaxImageBytes),
		stats:   handlers.NewStatsHandler(statsService),
	}

	limiters := rateLimiters{
		general: middleware.NewRateLimiter(appCtx, "general", rate.Limit(cfg.RateLimit.GeneralRPS), cfg.RateLimit.GeneralBurst),
		contact: middleware.NewRateLimiter(appCtx, "contact", rate.Limit(cfg.RateLimit.ContactRPS), cfg.RateLimit.ContactBurst),
		login:   middleware.NewRateLimiter(appCtx, "login", rate.Limit(cfg.RateLimit.LoginRPS), cfg.RateLimit.LoginBurst),
	}

	// Set up Gin router
	gin.SetMode(cfg.Server.GinMode)
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(otelgin.Middleware(cfg.Observability.ServiceName))
	router.Use(middleware.ObservabilityMiddleware("/api/health", "/api/metrics", uploadsRoute))
	router.Use(middleware.SecurityHeadersMiddleware(uploadsRoute))
	router.Use(middleware.BodySizeLimitMiddleware(cfg.Server.MaxBodyBytes))

	allowedOrigins := cfg.Server.AllowedOrigins
	if cfg.IsDevelopment() {
		allowedOrigins = append(allowedOrigins, "http://localhost:3000", "http://127.0.0.1:3000", "http://localhost:5173")
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID", "traceparent", "tracestate"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	router.NoRoute(handlers.NotFound)

	if uploadsDir != "" {
		router.Static(uploadsRoute, uploadsDir)
	}

	api := router.Group("/api")
	api.GET("/health", h.health.Healthcheck)
	api.GET("/metrics", gin.WrapH(promhttp.Handler()))
	api.POST("/login", limiters.login.Middleware(), h.auth.Login)

	adminAuth := middleware.AdminAuthMiddleware(authService)
	api.POST("/logout", adminAuth, h.auth.Logout)
	api.GET("/me", adminAuth, h.auth.Me)

	registerPublicRoutes(api.Group("/v1"), h, limiters)

	admin := api.Group("/admin")
	admin.Use(limiters.general.Middleware(), adminAuth)
	registerAdminRoutes(admin, h)

	srv := &http.Server{
		Addr:              "0.0.0.0:" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 15 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("Server started", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	stopApp()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
