package api

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/portfolio-cms/portfolio-api/internal/api/handler"
	"github.com/portfolio-cms/portfolio-api/internal/api/middleware"
	"github.com/portfolio-cms/portfolio-api/internal/core/domain"
	"github.com/portfolio-cms/portfolio-api/internal/core/ports"
	"github.com/portfolio-cms/portfolio-api/internal/core/service"
	"github.com/portfolio-cms/portfolio-api/internal/infrastructure/db/postgres"
	"github.com/portfolio-cms/portfolio-api/internal/infrastructure/db/redis"
	"github.com/portfolio-cms/portfolio-api/internal/infrastructure/security"
)

// RouterConfig carries the settings the HTTP layer needs from the
// environment.
type RouterConfig struct {
	JWTSecret  string
	TokenTTL   time.Duration
	HasherCost int
}

// NewRouter builds the Echo instance with all routes, middleware and the
// authorization policy registered.
func NewRouter(db *sql.DB, rdb *goredis.Client, cfg RouterConfig, log zerolog.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
		MaxAge:       3600,
	}))
	e.Use(requestLogger(log))
	e.Use(echoprometheus.NewMiddleware("portfolio"))

	// --- Dependencies ---
	hasher := security.NewBcryptHasher(cfg.HasherCost)
	codec, err := security.NewJWTCodec(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		return nil, err
	}

	userRepo := postgres.NewUserRepository(db)
	authService, err := service.NewAuthService(userRepo, hasher, codec, service.SystemClock{})
	if err != nil {
		return nil, err
	}

	skillService := service.NewSkillService(postgres.NewSkillRepository(db))
	projectService := service.NewProjectService(postgres.NewProjectRepository(db))
	blogService := service.NewBlogService(postgres.NewBlogRepository(db), service.SystemClock{})
	experienceService := service.NewExperienceService(postgres.NewExperienceRepository(db))
	profileService := service.NewProfileService(postgres.NewProfileRepository(db))
	settingsService := service.NewSettingsService(postgres.NewSettingsRepository(db))

	var deduper ports.ContactDeduper
	if rdb != nil {
		deduper = redis.NewContactDeduper(rdb)
	}
	contactService := service.NewContactService(postgres.NewContactRepository(db), deduper, log)

	authHandler := handler.NewAuthHandler(authService)
	skillHandler := handler.NewSkillHandler(skillService)
	projectHandler := handler.NewProjectHandler(projectService)
	blogHandler := handler.NewBlogHandler(blogService)
	experienceHandler := handler.NewExperienceHandler(experienceService)
	contactHandler := handler.NewContactHandler(contactService)
	profileHandler := handler.NewProfileHandler(profileService)
	settingsHandler := handler.NewSettingsHandler(settingsService)

	// --- Authorization policy (ordered, first match wins) ---
	authenticator := middleware.NewAuthenticator(codec, userRepo, log)
	policy := middleware.NewPolicy(
		middleware.Public(http.MethodPost, "/api/auth/login"),
		middleware.Authenticated(http.MethodPost, "/api/auth/change-password"),
		middleware.Public("*", "/api/auth/**"),

		middleware.RequireRole(http.MethodPost, "/api/skills/**", domain.RoleAdmin),
		middleware.RequireRole(http.MethodPut, "/api/skills/**", domain.RoleAdmin),
		middleware.RequireRole(http.MethodDelete, "/api/skills/**", domain.RoleAdmin),
		middleware.Public(http.MethodGet, "/api/skills/**"),

		middleware.RequireRole(http.MethodPost, "/api/projects/**", domain.RoleAdmin),
		middleware.RequireRole(http.MethodPut, "/api/projects/**", domain.RoleAdmin),
		middleware.RequireRole(http.MethodDelete, "/api/projects/**", domain.RoleAdmin),
		middleware.Public(http.MethodGet, "/api/projects/**"),

		// Admin-only listing precedes the public catch-all.
		middleware.RequireRole(http.MethodGet, "/api/blogs/all", domain.RoleAdmin),
		middleware.RequireRole(http.MethodPost, "/api/blogs/**", domain.RoleAdmin),
		middleware.RequireRole(http.MethodPut, "/api/blogs/**", domain.RoleAdmin),
		middleware.RequireRole(http.MethodDelete, "/api/blogs/**", domain.RoleAdmin),
		middleware.Public(http.MethodGet, "/api/blogs/**"),

		middleware.RequireRole(http.MethodPost, "/api/experiences/**", domain.RoleAdmin),
		middleware.RequireRole(http.MethodPut, "/api/experiences/**", domain.RoleAdmin),
		middleware.RequireRole(http.MethodDelete, "/api/experiences/**", domain.RoleAdmin),
		middleware.Public(http.MethodGet, "/api/experiences/**"),

		// Anyone may submit the contact form; the inbox is admin-only.
		middleware.Public(http.MethodPost, "/api/contacts"),
		middleware.RequireRole("*", "/api/contacts/**", domain.RoleAdmin),

		middleware.Public(http.MethodGet, "/api/profile/**"),
		middleware.RequireRole("*", "/api/profile/**", domain.RoleAdmin),

		middleware.Public(http.MethodGet, "/api/settings"),
		middleware.RequireRole(http.MethodPut, "/api/settings", domain.RoleAdmin),

		middleware.Public("*", "/health/**"),
		middleware.Public(http.MethodGet, "/metrics"),
	)
	e.Use(middleware.Guard(policy, authenticator))

	// --- Auth routes ---
	e.POST("/api/auth/login", authHandler.Login)
	e.POST("/api/auth/change-password", authHandler.ChangePassword)

	// --- Skills ---
	e.GET("/api/skills", skillHandler.List)
	e.GET("/api/skills/category/:category", skillHandler.ListByCategory)
	e.GET("/api/skills/:id", skillHandler.Get)
	e.POST("/api/skills", skillHandler.Create)
	e.PUT("/api/skills/:id", skillHandler.Update)
	e.DELETE("/api/skills/:id", skillHandler.Delete)

	// --- Projects ---
	e.GET("/api/projects", projectHandler.List)
	e.GET("/api/projects/featured", projectHandler.ListFeatured)
	e.GET("/api/projects/:id", projectHandler.Get)
	e.POST("/api/projects", projectHandler.Create)
	e.PUT("/api/projects/:id", projectHandler.Update)
	e.DELETE("/api/projects/:id", projectHandler.Delete)
	e.POST("/api/projects/:id/thumbnail", projectHandler.UploadThumbnail)
	e.GET("/api/projects/:id/thumbnail", projectHandler.GetThumbnail)

	// --- Blogs ---
	e.GET("/api/blogs", blogHandler.ListPublished)
	e.GET("/api/blogs/all", blogHandler.ListAll)
	e.GET("/api/blogs/:slug", blogHandler.GetBySlug)
	e.POST("/api/blogs", blogHandler.Create)
	e.PUT("/api/blogs/:id", blogHandler.Update)
	e.DELETE("/api/blogs/:id", blogHandler.Delete)
	e.POST("/api/blogs/:id/cover-image", blogHandler.UploadCover)
	e.GET("/api/blogs/:id/cover-image", blogHandler.GetCover)

	// --- Experiences ---
	e.GET("/api/experiences", experienceHandler.List)
	e.GET("/api/experiences/current", experienceHandler.ListCurrent)
	e.GET("/api/experiences/:id", experienceHandler.Get)
	e.POST("/api/experiences", experienceHandler.Create)
	e.PUT("/api/experiences/:id", experienceHandler.Update)
	e.DELETE("/api/experiences/:id", experienceHandler.Delete)

	// --- Contacts ---
	e.POST("/api/contacts", contactHandler.Submit)
	e.GET("/api/contacts", contactHandler.List)
	e.GET("/api/contacts/unread", contactHandler.ListUnread)
	e.GET("/api/contacts/:id", contactHandler.Get)
	e.PATCH("/api/contacts/:id/read", contactHandler.MarkRead)
	e.DELETE("/api/contacts/:id", contactHandler.Delete)

	// --- Profile ---
	e.GET("/api/profile", profileHandler.Get)
	e.PUT("/api/profile", profileHandler.Update)
	e.GET("/api/profile/resume", profileHandler.GetResume)
	e.POST("/api/profile/:profileId/avatar", profileHandler.UploadAvatar)
	e.POST("/api/profile/:profileId/resume", profileHandler.UploadResume)
	e.GET("/api/profile/:profileId/avatar", profileHandler.GetAvatar)

	// --- Settings ---
	e.GET("/api/settings", settingsHandler.Get)
	e.PUT("/api/settings", settingsHandler.Update)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Metrics ---
	e.GET("/metrics", echoprometheus.NewHandler())

	return e, nil
}

// requestLogger emits one structured log line per request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogStatus:  true,
		LogMethod:  true,
		LogURI:     true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			log.Info().
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Msg("request")
			return nil
		},
	})
}
