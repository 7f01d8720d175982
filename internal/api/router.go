package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/Sgarrido33/devsecops-pos-pipeline/internal/api/handler"
	"github.com/Sgarrido33/devsecops-pos-pipeline/internal/api/middleware"
	"github.com/Sgarrido33/devsecops-pos-pipeline/internal/core/ports"
	"github.com/Sgarrido33/devsecops-pos-pipeline/internal/core/service"
	"github.com/Sgarrido33/devsecops-pos-pipeline/internal/infrastructure/http/handlers"
)

// Dependencies carries everything the router needs. It is built once in
// main and injected here; the router owns no globals.
type Dependencies struct {
	Users    ports.UserRepository
	Products ports.ProductRepository
	Sales    ports.SaleRepository
	Tokens   ports.TokenService
	// Cache is optional; nil disables the catalog read-through cache.
	Cache service.ProductCache
	// Readiness is optional; when set it is exposed on GET /health/ready.
	Readiness echo.HandlerFunc
	Logger    zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("pos"))

	// --- Services & handlers ---
	authService := service.NewAuthService(deps.Users, deps.Tokens)
	catalogService := service.NewCatalogService(deps.Products, deps.Cache, deps.Logger)
	saleService := service.NewSaleService(deps.Sales, deps.Logger)

	authHandler := handler.NewAuthHandler(authService)
	productHandler := handler.NewProductHandler(catalogService)
	saleHandler := handler.NewSaleHandler(saleService)

	// --- Public routes ---
	e.POST("/api/register", authHandler.Register)
	e.POST("/api/login", authHandler.Login)

	// --- Protected routes ---
	// The access gate wraps the whole group: no resource endpoint can be
	// registered without passing through it.
	protected := e.Group("/api", middleware.Auth(deps.Tokens, deps.Users, deps.Logger))
	protected.GET("/products", productHandler.List)
	protected.POST("/products", productHandler.Create)
	protected.DELETE("/products/:id", productHandler.Delete)
	protected.POST("/sales", saleHandler.Create)
	protected.GET("/sales", saleHandler.List)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())

	healthHandler := handlers.NewHealthHandler()
	e.GET("/health", healthHandler.Liveness)
	if deps.Readiness != nil {
		e.GET("/health/ready", deps.Readiness)
	}

	return e
}
