package router

import (
	"github.com/gin-gonic/gin"
	"github.com/storefront/backend/internal/infrastructure/auth"
	"github.com/storefront/backend/internal/infrastructure/logger"
	"github.com/storefront/backend/internal/interfaces/http/handler"
	"github.com/storefront/backend/internal/interfaces/http/middleware"
	"go.uber.org/zap"
)

// Config holds everything the router needs to wire up the API
type Config struct {
	Logger         *zap.Logger
	JWTService     *auth.JWTService
	TokenBlacklist auth.TokenBlacklist
	CORS           middleware.CORSConfig

	Health    *handler.HealthHandler
	Auth      *handler.AuthHandler
	User      *handler.UserHandler
	Product   *handler.ProductHandler
	Cart      *handler.CartHandler
	Order     *handler.OrderHandler
	Quotation *handler.QuotationHandler
	Supplier  *handler.SupplierHandler
	Dashboard *handler.DashboardHandler
}

// New builds the gin engine with all routes and middleware registered.
//
// The API splits into three tiers: public routes (catalog browsing,
// registration, quotation submission), authenticated routes (cart,
// checkout, profile), and administrator routes (catalog management,
// quotation review, suppliers, users, dashboard).
func New(cfg Config) *gin.Engine {
	middleware.SetupValidator()

	engine := gin.New()

	engine.Use(
		middleware.RequestID(),
		logger.GinMiddleware(cfg.Logger),
		logger.Recovery(cfg.Logger),
		middleware.Secure(),
		middleware.CORSWithConfig(cfg.CORS),
	)

	engine.GET("/health", cfg.Health.Health)
	engine.GET("/ready", cfg.Health.Ready)

	api := engine.Group("/api/v1")

	// Public routes
	api.POST("/auth/register", cfg.Auth.Register)
	api.POST("/auth/login", cfg.Auth.Login)
	api.POST("/auth/refresh", cfg.Auth.Refresh)
	api.GET("/products", cfg.Product.List)
	api.GET("/products/:id", cfg.Product.Get)
	api.POST("/quotations", cfg.Quotation.Submit)

	requireAuth := middleware.JWTAuthMiddlewareWithConfig(middleware.JWTMiddlewareConfig{
		JWTService:     cfg.JWTService,
		TokenBlacklist: cfg.TokenBlacklist,
		Logger:         cfg.Logger,
	})

	// Authenticated routes
	authed := api.Group("", requireAuth)
	{
		authed.POST("/auth/logout", cfg.Auth.Logout)
		authed.GET("/auth/profile", cfg.Auth.Profile)
		authed.PUT("/auth/profile", cfg.Auth.UpdateProfile)

		authed.GET("/cart", cfg.Cart.Get)
		authed.POST("/cart/items", cfg.Cart.AddItem)
		authed.PUT("/cart/items/:id", cfg.Cart.UpdateItem)
		authed.DELETE("/cart/items/:id", cfg.Cart.RemoveItem)
		authed.PUT("/cart/sync", cfg.Cart.Sync)
		authed.DELETE("/cart", cfg.Cart.Clear)

		authed.POST("/orders", cfg.Order.Create)
		authed.GET("/orders/my", cfg.Order.MyOrders)
		authed.GET("/orders/:id", cfg.Order.Get)
	}

	// Administrator routes
	admin := api.Group("", requireAuth, middleware.RequireAdministrator())
	{
		admin.POST("/products", cfg.Product.Create)
		admin.PUT("/products/:id", cfg.Product.Update)
		admin.DELETE("/products/:id", cfg.Product.Delete)

		admin.GET("/orders", cfg.Order.ListAll)
		admin.PUT("/orders/:id/status", cfg.Order.UpdateStatus)

		admin.GET("/quotations", cfg.Quotation.List)
		admin.GET("/quotations/:id", cfg.Quotation.Get)
		admin.PUT("/quotations/:id", cfg.Quotation.Update)
		admin.POST("/quotations/:id/approve", cfg.Quotation.Approve)
		admin.POST("/quotations/:id/reject", cfg.Quotation.Reject)

		admin.GET("/suppliers/approved-quotations", cfg.Supplier.ListApprovedQuotations)
		admin.POST("/suppliers", cfg.Supplier.Create)
		admin.GET("/suppliers", cfg.Supplier.List)
		admin.GET("/suppliers/:id", cfg.Supplier.Get)
		admin.PUT("/suppliers/:id", cfg.Supplier.Update)
		admin.DELETE("/suppliers/:id", cfg.Supplier.Delete)

		admin.GET("/users", cfg.User.List)
		admin.GET("/users/:id", cfg.User.Get)

		admin.GET("/dashboard/summary", cfg.Dashboard.Summary)
	}

	return engine
}
