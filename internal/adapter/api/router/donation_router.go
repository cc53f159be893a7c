package router

import (
	"foodbridge/internal/adapter/api/handler"
	"foodbridge/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupDonationRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	donationHandler := handler.GetDonationHandler()
	transactionHandler := handler.GetTransactionHandler()

	donations := e.Group("/v1/donations")
	donations.Use(authMiddleware.Authenticate)

	donations.GET("", donationHandler.BrowseDonations)
	donations.POST("", donationHandler.CreateDonation)
	donations.GET("/:id", donationHandler.GetDonation)
	donations.POST("/:id/request", transactionHandler.RequestPickup)

	mine := e.Group("/v1/my-donations")
	mine.Use(authMiddleware.Authenticate)

	mine.GET("", donationHandler.ListMyDonations)
	mine.PATCH("/:id", donationHandler.UpdateDonation)
	mine.POST("/:id/cancel", donationHandler.CancelDonation)
	mine.DELETE("/:id", donationHandler.DeleteDonation)
}
