// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"revcart/internal/delivery/http/middleware"
	"revcart/internal/delivery/http/router/handler"
	"revcart/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler  *handler.AccountHandler
	ProductHandler  *handler.ProductHandler
	WishlistHandler *handler.WishlistHandler
	AddressHandler  *handler.AddressHandler
	CouponHandler   *handler.CouponHandler
	DeliveryHandler *handler.DeliveryHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler  *handler.AccountHandler
	productHandler  *handler.ProductHandler
	wishlistHandler *handler.WishlistHandler
	addressHandler  *handler.AddressHandler
	couponHandler   *handler.CouponHandler
	deliveryHandler *handler.DeliveryHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler:  params.AccountHandler,
		productHandler:  params.ProductHandler,
		wishlistHandler: params.WishlistHandler,
		addressHandler:  params.AddressHandler,
		couponHandler:   params.CouponHandler,
		deliveryHandler: params.DeliveryHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Auth routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.accountHandler.Register)
		authGroup.POST("/login", r.accountHandler.Login)
		authGroup.GET("/profile", r.accountHandler.GetProfile, r.authMiddleware.Authenticate)
	}

	// Catalog routes; browsing is public, writes are admin only
	productGroup := api.Group("/products")
	{
		productGroup.GET("", r.productHandler.ListProducts)
		productGroup.GET("/:id", r.productHandler.GetProduct)
		productGroup.POST("", r.productHandler.CreateProduct,
			r.authMiddleware.Authenticate, r.authMiddleware.RequireRole(entity.RoleAdmin.String()))
	}

	// Wishlist routes, scoped to the authenticated principal
	wishlistGroup := api.Group("/wishlist")
	wishlistGroup.Use(r.authMiddleware.Authenticate)
	{
		wishlistGroup.GET("", r.wishlistHandler.GetWishlist)
		wishlistGroup.POST("/add/:productId", r.wishlistHandler.AddProduct)
		wishlistGroup.DELETE("/remove/:productId", r.wishlistHandler.RemoveProduct)
	}

	// Address-book routes, scoped to the authenticated principal
	addressGroup := api.Group("/addresses")
	addressGroup.Use(r.authMiddleware.Authenticate)
	{
		addressGroup.GET("", r.addressHandler.ListAddresses)
		addressGroup.POST("", r.addressHandler.CreateAddress)
		addressGroup.PUT("/:id", r.addressHandler.UpdateAddress)
		addressGroup.PUT("/:id/default", r.addressHandler.SetDefault)
		addressGroup.DELETE("/:id", r.addressHandler.DeleteAddress)
	}

	// Coupon routes; validation is for any signed-in shopper, the ledger is admin only
	couponGroup := api.Group("/coupons")
	couponGroup.Use(r.authMiddleware.Authenticate)
	{
		couponGroup.POST("/validate", r.couponHandler.ValidateCoupon)

		adminOnly := r.authMiddleware.RequireRole(entity.RoleAdmin.String())
		couponGroup.GET("", r.couponHandler.ListCoupons, adminOnly)
		couponGroup.POST("", r.couponHandler.CreateCoupon, adminOnly)
		couponGroup.PUT("/:code/deactivate", r.couponHandler.DeactivateCoupon, adminOnly)
	}

	// Delivery roster, admin only
	deliveryGroup := api.Group("/delivery")
	deliveryGroup.Use(r.authMiddleware.Authenticate)
	deliveryGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin.String()))
	{
		deliveryGroup.GET("/agents", r.deliveryHandler.ListAgents)
		deliveryGroup.POST("/agents", r.deliveryHandler.RegisterAgent)
		deliveryGroup.PUT("/agents/:id/status", r.deliveryHandler.UpdateAgentStatus)
	}
}
