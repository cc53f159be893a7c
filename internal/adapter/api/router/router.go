package router

import (
	"foodbridge/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	SetupAuthRouter(e, authMiddleware)
	SetupUserRouter(e, authMiddleware)
	SetupCategoryRouter(e)
	SetupDonationRouter(e, authMiddleware)
	SetupTransactionRouter(e, authMiddleware)
	SetupLeaderboardRouter(e, authMiddleware)
	SetupHealthRouter(e)
}
