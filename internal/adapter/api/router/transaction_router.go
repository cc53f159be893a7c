package router

import (
	"foodbridge/internal/adapter/api/handler"
	"foodbridge/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupTransactionRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	transactionHandler := handler.GetTransactionHandler()

	transactions := e.Group("/v1/transactions")
	transactions.Use(authMiddleware.Authenticate)

	transactions.GET("", transactionHandler.ListTransactions)
	transactions.GET("/:id", transactionHandler.GetTransaction)
	transactions.POST("/:id/accept", transactionHandler.AcceptRequest)
	transactions.POST("/:id/reject", transactionHandler.RejectRequest)
	transactions.POST("/:id/cancel", transactionHandler.CancelRequest)
	transactions.POST("/:id/complete", transactionHandler.CompletePickup)
	transactions.POST("/:id/feedback", transactionHandler.SubmitFeedback)
	transactions.GET("/:id/impact", transactionHandler.GetImpact)
}
