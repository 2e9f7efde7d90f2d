package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/myjournal/journal-api/internal/api/handler"
	"github.com/myjournal/journal-api/internal/api/middleware"
	"github.com/myjournal/journal-api/internal/core/service"
	mongodb "github.com/myjournal/journal-api/internal/infrastructure/db/mongo"
	redisdb "github.com/myjournal/journal-api/internal/infrastructure/db/redis"
)

// RouterConfig carries the knobs the router needs beyond its connections.
type RouterConfig struct {
	Tokens        *service.TokenIssuer
	SecureCookies bool
	Logger        zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes
// registered. Every dependency is constructed here and handed down
// explicitly; there is no ambient global state.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(cfg.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("journal"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	articleRepo := mongodb.NewArticleRepository(db)

	authService := service.NewAuthService(userRepo, cfg.Tokens)
	articleService := service.NewCachedArticleService(
		service.NewArticleService(articleRepo, cfg.Logger),
		redisdb.NewListCache(rdb),
		cfg.Logger,
	)

	cookies := handler.NewCookieHelper(cfg.SecureCookies)
	authHandler := handler.NewAuthHandler(authService, cookies, cfg.Tokens.TTL())
	articleHandler := handler.NewArticleHandler(articleService)
	session := middleware.Session(handler.SessionCookie, cfg.Tokens, userRepo)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout)

	// --- Article routes; browsing is anonymous, mutations need a session ---
	e.GET("/articles", articleHandler.List)
	e.POST("/articles", articleHandler.Create, session)
	e.PUT("/articles/:id", articleHandler.Edit, session)
	e.DELETE("/articles/:id", articleHandler.Delete, session)

	// --- Observability (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
