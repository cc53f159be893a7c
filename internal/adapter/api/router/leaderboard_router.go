package router

import (
	"foodbridge/internal/adapter/api/handler"
	"foodbridge/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupLeaderboardRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	leaderboardHandler := handler.GetLeaderboardHandler()

	leaderboard := e.Group("/v1/leaderboard")
	leaderboard.Use(authMiddleware.Authenticate)

	leaderboard.GET("", leaderboardHandler.GetLeaderboard)
}
