// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"catalog/internal/delivery/http/middleware"
	"catalog/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ProductHandler      *handler.ProductHandler
	RequestIDMiddleware *middleware.RequestIDMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	productHandler      *handler.ProductHandler
	requestIDMiddleware *middleware.RequestIDMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		productHandler:      params.ProductHandler,
		requestIDMiddleware: params.RequestIDMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Product catalog routes
	productGroup := e.Group("/api/products")
	productGroup.Use(r.requestIDMiddleware.Process)
	{
		productGroup.POST("/load", r.productHandler.LoadProducts)
		productGroup.GET("/search", r.productHandler.SearchProducts)
		productGroup.GET("/:idOrSku", r.productHandler.GetProductByIDOrSKU)
		productGroup.GET("/:idOrSku/qr", r.productHandler.GetProductQR)
	}
}
