package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/snapshot/storefront/internal/api/handler"
	"github.com/snapshot/storefront/internal/api/metrics"
	"github.com/snapshot/storefront/internal/api/middleware"
	"github.com/snapshot/storefront/internal/core/ports"
)

// Dependencies are the services the router wires into handlers. Limiter may
// be nil, which disables rate limiting.
type Dependencies struct {
	Auth    ports.AuthService
	Admin   ports.AdminService
	Orders  ports.OrderService
	Contact ports.ContactService
	Catalog ports.CatalogService
	Health  *handler.HealthHandler
	Limiter middleware.Limiter

	Logger      zerolog.Logger
	CORSOrigins []string
	// Registry receives the HTTP and storefront metrics and backs /metrics.
	// Nil means the Prometheus default registry.
	Registry *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	// Rate limiting keys on the peer address; forwarded headers are ignored.
	e.IPExtractor = echo.ExtractIPDirect()
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestLogger(deps.Logger))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: deps.CORSOrigins,
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, handler.HeaderUserID},
	}))
	var (
		registerer prometheus.Registerer = prometheus.DefaultRegisterer
		gatherer   prometheus.Gatherer   = prometheus.DefaultGatherer
	)
	if deps.Registry != nil {
		registerer, gatherer = deps.Registry, deps.Registry
		if err := metrics.Register(deps.Registry); err != nil {
			deps.Logger.Warn().Err(err).Msg("storefront metrics not registered")
		}
	}
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "storefront",
		Registerer: registerer,
	}))

	// --- Operational endpoints ---
	health := deps.Health
	if health == nil {
		health = handler.NewHealthHandler()
	}
	e.GET("/health", health.Liveness)
	e.GET("/health/ready", health.Readiness)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	e.GET("/", handler.Root)

	api := e.Group("/api")
	if deps.Limiter != nil {
		api.Use(middleware.RateLimit(deps.Limiter, deps.Logger))
	}
	api.GET("/test", handler.Ping)

	// --- Users ---
	users := handler.NewUserHandler(deps.Auth, deps.Admin)
	u := api.Group("/users")
	u.POST("/signup", users.Signup)
	u.POST("/login", users.Login)

	admin := u.Group("/admin", middleware.RequireCaller())
	admin.GET("/users-list", users.ListUsers)
	admin.PUT("/users/:id/toggle-admin", users.ToggleAdmin)
	admin.DELETE("/users/:id", users.Delete)
	admin.GET("/export/orders", users.ExportOrders)
	admin.GET("/export/contacts", users.ExportContacts)

	u.GET("/:id", users.Get)

	// --- Orders ---
	orders := handler.NewOrderHandler(deps.Orders)
	api.POST("/orders", orders.Create)
	api.GET("/orders", orders.List)

	// --- Contact ---
	contact := handler.NewContactHandler(deps.Contact)
	api.POST("/contact", contact.Create)
	api.GET("/contact", contact.List)

	// --- Catalog ---
	catalog := handler.NewCatalogHandler(deps.Catalog)
	api.GET("/products", catalog.List)
	api.GET("/products/:id", catalog.Get)

	return e
}
