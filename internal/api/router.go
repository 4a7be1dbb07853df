package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/prsunet/realestate-api/internal/api/handler"
	"github.com/prsunet/realestate-api/internal/api/middleware"
	"github.com/prsunet/realestate-api/internal/core/ports"
	"github.com/prsunet/realestate-api/internal/core/service"
	mongodb "github.com/prsunet/realestate-api/internal/infrastructure/db/mongo"
	redisdb "github.com/prsunet/realestate-api/internal/infrastructure/db/redis"
	"github.com/prsunet/realestate-api/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// rdb may be nil; the listing cache is then disabled and readiness only
// checks MongoDB.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders:     []string{echo.HeaderContentType, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))
	e.Use(echoprometheus.NewMiddleware("realestate"))
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	propertyRepo := mongodb.NewPropertyRepository(db)

	var cache ports.ListingCache
	if rdb != nil {
		cache = redisdb.NewListingCache(rdb)
	}

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, 0, log)
	propertyService := service.NewPropertyService(propertyRepo, userRepo, cache, log)

	authHandler := handler.NewAuthHandler(authService)
	propertyHandler := handler.NewPropertyHandler(propertyService)
	authMiddleware := middleware.Auth(cfg.JWTSecret)

	// --- Auth routes ---
	auth := e.Group("/api/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	// --- Property routes (reads are public, mutations require a token) ---
	properties := e.Group("/api/properties")
	properties.POST("", propertyHandler.Create, authMiddleware)
	properties.GET("", propertyHandler.List)
	properties.GET("/:id", propertyHandler.Get)
	properties.PUT("/:id", propertyHandler.Update, authMiddleware)
	properties.DELETE("/:id", propertyHandler.Delete, authMiddleware)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	return e
}
