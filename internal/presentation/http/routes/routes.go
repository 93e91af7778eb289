package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/andresproyectosx24/chayotex/internal/config"
	domainRepo "github.com/andresproyectosx24/chayotex/internal/domain/repository"
	"github.com/andresproyectosx24/chayotex/internal/presentation/http/handler"
	"github.com/andresproyectosx24/chayotex/internal/presentation/http/middleware"
	"github.com/andresproyectosx24/chayotex/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth       *handler.AuthHandler
	Customer   *handler.CustomerHandler
	Supplier   *handler.SupplierHandler
	Inventory  *handler.InventoryHandler
	Sale       *handler.SaleHandler
	Settlement *handler.SettlementHandler
	Dashboard  *handler.DashboardHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		registerAuthRoutes(v1, h)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		// Per-operator rate limiter
		rateLimiter := middleware.NewUserRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/register", h.Auth.Register)
		auth.POST("/refresh", h.Auth.Refresh)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	// Profile routes
	protected.GET("/profile", h.Auth.Me)
	protected.PUT("/profile", h.Auth.UpdateProfile)
	protected.PUT("/profile/password", h.Auth.ChangePassword)

	// Dashboard
	protected.GET("/dashboard", h.Dashboard.Get)

	// Customers
	customers := protected.Group("/clientes")
	{
		customers.GET("", h.Customer.List)
		customers.POST("", h.Customer.Create)
		customers.GET("/:id", h.Customer.Get)
		customers.PUT("/:id", h.Customer.Update)
		customers.DELETE("/:id", h.Customer.Delete)
	}

	// Suppliers
	suppliers := protected.Group("/proveedores")
	{
		suppliers.GET("", h.Supplier.List)
		suppliers.POST("", h.Supplier.Create)
		suppliers.GET("/:id", h.Supplier.Get)
		suppliers.PUT("/:id", h.Supplier.Update)
		suppliers.DELETE("/:id", h.Supplier.Delete)
	}

	// Inventory
	inventory := protected.Group("/inventario")
	{
		inventory.GET("", h.Inventory.List)
		inventory.POST("", h.Inventory.Create)
		inventory.GET("/:id", h.Inventory.Get)
		inventory.PUT("/:id", h.Inventory.Update)
		inventory.DELETE("/:id", h.Inventory.Delete)
	}

	idempotency := middleware.IdempotencyRequired(middleware.IdempotencyConfig{
		Repo: deps.IdempotencyRepo,
	})

	// Sales. Creation goes through the ledger transaction and demands an
	// idempotency key so a resubmitted form never books twice.
	sales := protected.Group("/ventas")
	{
		sales.GET("", h.Sale.List)
		sales.POST("", idempotency, h.Sale.Create)
		sales.POST("/marcar-pagadas", h.Sale.MarkPaid)
		sales.GET("/:id", h.Sale.Get)
		sales.DELETE("/:id", h.Sale.Delete)
	}

	// Settlements. No update or delete routes: the documents are immutable.
	settlements := protected.Group("/liquidaciones")
	{
		settlements.GET("", h.Settlement.List)
		settlements.POST("", idempotency, h.Settlement.Create)
		settlements.GET("/:id", h.Settlement.Get)
	}
}
