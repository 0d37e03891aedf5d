// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"marketplace/config"
	"marketplace/internal/delivery/api/middleware"
	"marketplace/internal/delivery/api/router/handler"
	"marketplace/internal/domain/entity"
	"marketplace/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler      *handler.UserHandler
	GeofenceHandler  *handler.GeofenceHandler
	InventoryHandler *handler.InventoryHandler
	SupplierHandler  *handler.SupplierHandler
	OrderHandler     *handler.OrderHandler
	PaymentHandler   *handler.PaymentHandler
	DeviceHandler    *handler.DeviceHandler
	UploadHandler    *handler.UploadHandler
	TestHandler      *handler.TestHandler
	AuthMiddleware   *middleware.AuthMiddleware
	Metrics          *metrics.Metrics
	Config           *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler      *handler.UserHandler
	geofenceHandler  *handler.GeofenceHandler
	inventoryHandler *handler.InventoryHandler
	supplierHandler  *handler.SupplierHandler
	orderHandler     *handler.OrderHandler
	paymentHandler   *handler.PaymentHandler
	deviceHandler    *handler.DeviceHandler
	uploadHandler    *handler.UploadHandler
	testHandler      *handler.TestHandler
	authMiddleware   *middleware.AuthMiddleware
	metrics          *metrics.Metrics
	config           *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:      params.UserHandler,
		geofenceHandler:  params.GeofenceHandler,
		inventoryHandler: params.InventoryHandler,
		supplierHandler:  params.SupplierHandler,
		orderHandler:     params.OrderHandler,
		paymentHandler:   params.PaymentHandler,
		deviceHandler:    params.DeviceHandler,
		uploadHandler:    params.UploadHandler,
		testHandler:      params.TestHandler,
		authMiddleware:   params.AuthMiddleware,
		metrics:          params.Metrics,
		config:           params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// Echo matches static segments before parameters, so /user/me never reaches /user/:id.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	if r.config.Metrics != nil && r.config.Metrics.Enabled {
		e.GET(r.config.Metrics.Path, echo.WrapHandler(r.metrics.Handler()))
	}

	apiV1 := e.Group("/api/v1")

	// Public routes
	apiV1.POST("/user/signup", r.userHandler.Signup)
	apiV1.POST("/user/signin", r.userHandler.Signin)
	apiV1.POST("/payment/notify", r.paymentHandler.Notify)
	apiV1.GET("/uploads/image/:kind/:filename", r.uploadHandler.ServeImage)

	auth := r.authMiddleware.Authenticate
	adminOnly := r.authMiddleware.RequireUserType(entity.UserTypeAdmin)

	userGroup := apiV1.Group("/user", auth)
	{
		userGroup.GET("/me", r.userHandler.GetMe)
		userGroup.GET("/active", r.userHandler.ListActive)
		userGroup.GET("/inactive", r.userHandler.ListInactive)
		userGroup.GET("/active-sellers", r.userHandler.ListActiveSellers)
		userGroup.GET("/active-buyers", r.userHandler.ListActiveBuyers)
		userGroup.PUT("/activate/:id", r.userHandler.UpdateStatus, adminOnly)
		userGroup.PUT("/change-password", r.userHandler.ChangePassword)
		userGroup.PUT("/profile", r.userHandler.UpdateProfile)
		userGroup.DELETE("/profile", r.userHandler.DeleteSelf)
		userGroup.DELETE("/:id", r.userHandler.DeleteByID, adminOnly)
		userGroup.GET("/:id", r.userHandler.GetByID)
		userGroup.GET("/:id/qr", r.userHandler.StoreQR)
	}

	polygonGroup := apiV1.Group("/polygon", auth)
	{
		polygonGroup.POST("", r.geofenceHandler.AddPolygon)
		polygonGroup.GET("", r.geofenceHandler.ListPolygons)
		polygonGroup.GET("/geojson", r.geofenceHandler.ExportGeoJSON)
		polygonGroup.GET("/sellers-near-by", r.geofenceHandler.SellersNearBy)
	}

	locationGroup := apiV1.Group("/available-location", auth)
	{
		locationGroup.POST("", r.geofenceHandler.SetAvailableLocations)
		locationGroup.GET("", r.geofenceHandler.ListAvailableLocations)
		locationGroup.GET("/:id", r.geofenceHandler.GetAvailableLocations)
	}

	inventoryGroup := apiV1.Group("/inventory", auth)
	{
		inventoryGroup.POST("", r.inventoryHandler.Add)
		inventoryGroup.GET("", r.inventoryHandler.ListAll)
		inventoryGroup.GET("/seller", r.inventoryHandler.ListMine)
		inventoryGroup.GET("/buyer/:sellerId", r.inventoryHandler.ListForBuyer)
		inventoryGroup.GET("/:id", r.inventoryHandler.GetByID)
		inventoryGroup.PUT("/:id", r.inventoryHandler.Update)
		inventoryGroup.DELETE("/:id", r.inventoryHandler.Delete)
	}

	supplierGroup := apiV1.Group("/supplier", auth)
	{
		supplierGroup.POST("", r.supplierHandler.Add)
		supplierGroup.GET("", r.supplierHandler.ListAll)
		supplierGroup.GET("/:id", r.supplierHandler.GetByID)
		supplierGroup.PUT("/:id", r.supplierHandler.Update)
		supplierGroup.DELETE("/:id", r.supplierHandler.Delete)
	}

	supplierProductGroup := apiV1.Group("/supplier-product", auth)
	{
		supplierProductGroup.POST("/:userId", r.supplierHandler.AddProduct)
		supplierProductGroup.GET("/supplier/:supplierId", r.supplierHandler.ListProducts)
		supplierProductGroup.PUT("/:id", r.supplierHandler.UpdateProduct)
		supplierProductGroup.DELETE("/:id", r.supplierHandler.DeleteProduct)
	}

	orderGroup := apiV1.Group("/order", auth)
	{
		orderGroup.POST("", r.orderHandler.Create)
		orderGroup.GET("/buyer", r.orderHandler.ListForBuyer)
		orderGroup.GET("/seller", r.orderHandler.ListForSeller)
		orderGroup.GET("/:id", r.orderHandler.GetByID)
		orderGroup.PUT("/update/:orderId", r.orderHandler.Update)
		orderGroup.PUT("/:id", r.orderHandler.Advance)
		orderGroup.DELETE("/:id", r.orderHandler.Delete)
	}

	paymentGroup := apiV1.Group("/payment", auth)
	{
		paymentGroup.POST("/generate-hash", r.paymentHandler.GenerateHash)
		paymentGroup.PATCH("/:orderId/payment-status", r.paymentHandler.SetPaymentStatus)
	}

	devicesGroup := apiV1.Group("/devices", auth)
	{
		devicesGroup.POST("", r.deviceHandler.RegisterDevice)
		devicesGroup.GET("", r.deviceHandler.ListDevices)
		devicesGroup.DELETE("/:id", r.deviceHandler.DeactivateDevice)
	}
}

func (r *router) RegisterTestRoutes(e *echo.Echo) {
	// Test routes - only enabled when configured
	if r.config.TestRoutes != nil && r.config.TestRoutes.Enabled {
		testGroup := e.Group("/test")
		testGroup.GET("/public", r.testHandler.TestPublicEndpoint)
		testGroup.GET("/auth", r.testHandler.TestAuthMiddleware, r.authMiddleware.Authenticate)
	}
}
