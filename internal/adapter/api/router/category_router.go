package router

import (
	"foodbridge/internal/adapter/api/handler"

	"github.com/labstack/echo/v4"
)

func SetupCategoryRouter(e *echo.Echo) {
	categoryHandler := handler.GetCategoryHandler()

	e.GET("/v1/categories", categoryHandler.ListCategories)
	e.GET("/v1/categories/:id", categoryHandler.GetCategory)
}
