package router

import (
	"foodbridge/internal/adapter/api/handler"
	"foodbridge/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

// SetupAuthRouter initializes auth routes. Credential endpoints sit
// behind a per-IP limiter.
func SetupAuthRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	authHandler := handler.GetAuthHandler()

	authLimiter := middleware.NewAuthLimiter()

	public := e.Group("/v1/auth")
	public.Use(authLimiter.RateLimitMiddleware())

	public.POST("/register", authHandler.Register)
	public.POST("/login", authHandler.Login)
	public.POST("/refresh", authHandler.RefreshToken)
	public.POST("/forgot-password", authHandler.ForgotPassword)

	protected := e.Group("/v1/auth")
	protected.Use(authMiddleware.Authenticate)

	protected.POST("/logout", authHandler.Logout)
}
