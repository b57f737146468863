// Package router registers the service's HTTP routes.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/ticket-service/internal/handler"
	"github.com/iliyamo/ticket-service/internal/middleware"
)

// RegisterRoutes registers the unauthenticated health check.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers account registration and login under /v1/auth and
// the protected /v1/me endpoint.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	g := e.Group("/v1/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)

	e.GET("/v1/me", a.Me, middleware.JWTAuth(jwtSecret))
}

// RegisterTickets registers the public price list and the purchase
// endpoint.  Purchases need a valid access token and pass through the rate
// limiter, which runs after JWTAuth so buckets can be keyed per account.
func RegisterTickets(e *echo.Echo, p *handler.PurchaseHandler, jwtSecret string, limiter echo.MiddlewareFunc) {
	e.GET("/v1/tickets/prices", p.Prices)

	g := e.Group("/v1/tickets", middleware.JWTAuth(jwtSecret), limiter)
	g.POST("/purchase", p.Purchase)
}
