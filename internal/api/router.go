package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/stocktrack/inventory-api/internal/api/handler"
	"github.com/stocktrack/inventory-api/internal/api/middleware"
	"github.com/stocktrack/inventory-api/internal/core/auth"
	"github.com/stocktrack/inventory-api/internal/core/domain"
	"github.com/stocktrack/inventory-api/internal/core/ports"
	"github.com/stocktrack/inventory-api/internal/core/service"
	"github.com/stocktrack/inventory-api/internal/infrastructure/config"
	mongodb "github.com/stocktrack/inventory-api/internal/infrastructure/db/mongo"
	redisdb "github.com/stocktrack/inventory-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
//
// Every route is registered either as public (health, metrics, login) or
// through the policy-aware route helper, so the access table is complete by
// construction. Policy.Check still runs against the final route list and
// panics on a gap: a misconfigured route must fail at startup, not at
// request time.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, audit ports.AuditSink, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Dependencies ---
	codec := auth.NewCodec(cfg.JWT.Secret, cfg.JWT.TTL, cfg.JWT.Issuer, cfg.JWT.Audience)
	hasher := auth.NewHasher(cfg.BcryptCost)

	userRepo := mongodb.NewUserRepository(db)
	itemRepo := mongodb.NewItemRepository(db)

	authService := service.NewAuthService(userRepo, hasher, codec, log).
		WithLoginLimiter(redisdb.NewLoginLimiter(rdb, cfg.Login.Window), cfg.Login.MaxAttempts).
		WithAudit(audit)
	itemService := service.NewItemService(itemRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	itemHandler := handler.NewItemHandler(itemService, log)
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	// --- Access policy ---
	policy := middleware.NewPolicy().WithAudit(audit)
	policy.Public("/health")
	policy.Public("/health/ready")
	policy.Public("/metrics")
	policy.Public("/auth/login")

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("inventory"))
	e.Use(middleware.Auth(codec, policy.PublicPaths()...))
	e.Use(policy.Middleware())

	// --- Public routes ---
	e.POST("/auth/login", authHandler.Login)
	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Protected routes ---
	// route registers the handler and its policy entry together so neither
	// can be added without the other.
	route := func(method, path string, h echo.HandlerFunc, roles ...domain.Role) {
		policy.Allow(method, path, roles...)
		e.Add(method, path, h)
	}

	route(http.MethodPost, "/users", authHandler.Register, domain.RoleAdmin)

	route(http.MethodGet, "/items", itemHandler.List, domain.RoleAdmin, domain.RoleUser)
	route(http.MethodGet, "/items/:id", itemHandler.Get, domain.RoleAdmin, domain.RoleUser)
	route(http.MethodPost, "/items", itemHandler.Create, domain.RoleAdmin)
	route(http.MethodPut, "/items/:id", itemHandler.Update, domain.RoleAdmin)
	route(http.MethodDelete, "/items/:id", itemHandler.Delete, domain.RoleAdmin)

	if err := policy.Check(e.Routes()); err != nil {
		panic(err)
	}

	return e
}
