package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/smatech/auth-service/internal/api/handler"
	"github.com/smatech/auth-service/internal/api/middleware"
	"github.com/smatech/auth-service/internal/core/domain"
	"github.com/smatech/auth-service/internal/core/ports"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(
	authService ports.AuthService,
	tokens ports.TokenService,
	db *mongo.Database,
	rdb *redis.Client,
	log zerolog.Logger,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("auth"))

	authHandler := handler.NewAuthHandler(authService)
	requireAuth := middleware.Auth(tokens)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Public auth routes ---
	g := e.Group("/api/v1/auth")
	g.POST("/register", authHandler.Register)
	g.POST("/register-admin", authHandler.RegisterAdmin)
	g.POST("/authenticate", authHandler.Authenticate)
	g.GET("/roles", authHandler.Roles)

	// --- Protected user routes ---
	g.GET("/get-customers", authHandler.GetCustomers, requireAuth, adminOnly)
	g.GET("/get-admins", authHandler.GetAdmins, requireAuth, adminOnly)
	g.GET("/get-admin/:id", authHandler.GetAdmin, requireAuth, adminOnly)
	g.GET("/get-user/:id", authHandler.GetCustomer, requireAuth)
	g.PATCH("/update-user/:id", authHandler.UpdateUser, requireAuth)

	// --- Observability (no auth required) ---
	e.GET("/metrics", echoprometheus.NewHandler())

	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	return e
}
