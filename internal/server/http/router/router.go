package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/dzinstall/storefront/internal/server/http/handlers"
	"github.com/dzinstall/storefront/internal/server/http/middleware"
)

// maxRequestBody caps request payloads on the wire and after inflation;
// product images travel inline.
const maxRequestBody = 8 << 20

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.StorefrontFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.LimitBody(maxRequestBody))
	engine.Use(middleware.DecompressRequest(maxRequestBody))
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	accountHandler := handlers.NewAccountHandler(facade)
	catalogHandler := handlers.NewCatalogHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	notificationHandler := handlers.NewNotificationHandler(facade)
	adminHandler := handlers.NewAdminHandler(facade)
	paymentHandler := handlers.NewPaymentHandler(facade)
	healthHandler := handlers.NewHealthHandler(facade)

	authRequired := middleware.AuthRequired(facade)

	api := engine.Group("/api")
	api.GET("/health", healthHandler.Health)

	api.GET("/products", catalogHandler.List)
	api.GET("/products/:id", catalogHandler.Get)
	api.POST("/products/:id/ask", catalogHandler.Ask)

	user := api.Group("/user")
	user.POST("/register", accountHandler.Register)
	user.POST("/login", accountHandler.Login)

	userAuth := user.Group("")
	userAuth.Use(authRequired)
	userAuth.POST("/logout", accountHandler.Logout)
	userAuth.GET("/me", accountHandler.Me)

	customer := api.Group("")
	customer.Use(authRequired)
	customer.GET("/orders", orderHandler.List)
	customer.POST("/orders", orderHandler.Place)
	customer.POST("/orders/:id/delivery-info", orderHandler.SubmitDeliveryInfo)
	customer.GET("/orders/:id/payments", orderHandler.Payments)
	customer.GET("/notifications", notificationHandler.Inbox)
	customer.POST("/notifications/dismiss", notificationHandler.Dismiss)

	admin := api.Group("/admin")
	admin.Use(authRequired, middleware.AdminRequired(facade))
	admin.GET("/orders", adminHandler.Orders)
	admin.GET("/orders/:id", adminHandler.Order)
	admin.POST("/orders/:id/status", adminHandler.Transition)
	admin.GET("/delivery-updates", adminHandler.DeliveryUpdates)
	admin.GET("/dashboard", adminHandler.Dashboard)
	admin.GET("/customers", adminHandler.Customers)
	admin.POST("/customers", adminHandler.CreateCustomer)
	admin.GET("/view", adminHandler.View)
	admin.PUT("/view", adminHandler.SetView)
	admin.POST("/products", catalogHandler.Create)
	admin.PUT("/products/:id", catalogHandler.Update)
	admin.DELETE("/products/:id", catalogHandler.Delete)
	admin.GET("/payments/lookup", paymentHandler.Lookup)
	admin.POST("/payments/bulk", paymentHandler.Bulk)
	admin.GET("/payments/:orderId", paymentHandler.Schedule)
	admin.POST("/payments/:orderId", paymentHandler.Toggle)

	return engine
}
