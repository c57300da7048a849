package api

import (
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/eventhub/event-platform/docs"
	"github.com/eventhub/event-platform/internal/api/handler"
	"github.com/eventhub/event-platform/internal/api/middleware"
	"github.com/eventhub/event-platform/internal/core/service"
	"github.com/eventhub/event-platform/internal/infrastructure/db/postgres"
	redisdb "github.com/eventhub/event-platform/internal/infrastructure/db/redis"
	"github.com/eventhub/event-platform/internal/infrastructure/http/handlers"
	"github.com/eventhub/event-platform/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// rdb may be nil; the event listing then always hits the store.
func NewRouter(pool *pgxpool.Pool, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("event_platform"))

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Dependencies ---
	authRepo := postgres.NewAuthRepository(pool)
	eventRepo := postgres.NewEventRepository(pool)
	ticketRepo := postgres.NewTicketRepository(pool)

	var cache service.ListCache
	if rdb != nil {
		cache = redisdb.NewEventsCache(rdb)
	}

	authService := service.NewAuthService(authRepo, cfg.JWTSecret, cfg.JWTTTL)
	eventService := service.NewEventService(eventRepo, cache, log)
	ticketService := service.NewTicketService(ticketRepo, eventRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	eventHandler := handler.NewEventHandler(eventService)
	ticketHandler := handler.NewTicketHandler(ticketService)

	authed := middleware.Auth(cfg.JWTSecret)
	adminOnly := middleware.AdminOnly()

	// --- Public routes ---
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "Event Platform Backend is running")
	})
	e.POST("/signup", authHandler.Signup)
	e.POST("/login", authHandler.Login)
	e.GET("/events", eventHandler.List)
	e.GET("/events/:id", eventHandler.Get)

	// --- Admin routes ---
	e.POST("/events", eventHandler.Create, authed, adminOnly)
	e.PUT("/events/:id", eventHandler.Update, authed, adminOnly)
	e.DELETE("/events/:id", eventHandler.Delete, authed, adminOnly)

	// --- Authenticated routes ---
	e.POST("/events/:id/register", ticketHandler.Register, authed)
	e.GET("/tickets", ticketHandler.ListMine, authed)

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(pool, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Operational surfaces ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
