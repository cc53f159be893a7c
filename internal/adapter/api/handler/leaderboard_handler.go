package handler

import (
	"github.com/labstack/echo/v4"

	"foodbridge/internal/domain/entity"
	"foodbridge/internal/usecase"
	"foodbridge/pkg/response"
)

type LeaderboardHandler struct {
	leaderboardUseCase *usecase.LeaderboardUseCase
}

func NewLeaderboardHandler(leaderboardUseCase *usecase.LeaderboardUseCase) *LeaderboardHandler {
	return &LeaderboardHandler{
		leaderboardUseCase: leaderboardUseCase,
	}
}

func (h *LeaderboardHandler) GetLeaderboard(c echo.Context) error {
	userType := c.QueryParam("user_type")
	if userType == "" {
		userType = entity.UserTypeDonor
	}

	entries, err := h.leaderboardUseCase.GetLeaderboard(c.Request().Context(), userType)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, entries)
}
