package router

import (
	"foodbridge/internal/adapter/api/handler"
	"foodbridge/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupUserRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	userHandler := handler.GetUserHandler()

	users := e.Group("/v1/users")
	users.Use(authMiddleware.Authenticate)

	users.GET("/me", userHandler.GetProfile)
	users.PATCH("/me", userHandler.UpdateProfile)
	users.PUT("/me/password", userHandler.UpdatePassword)

	users.GET("/me/onboarding", userHandler.GetOnboardingStatus)
	users.POST("/me/onboarding", userHandler.CompleteOnboarding)

	users.GET("/me/preferences", userHandler.GetPreferences)
	users.PATCH("/me/preferences", userHandler.UpdatePreferences)

	users.GET("/me/stats", userHandler.GetDashboardStats)
}
