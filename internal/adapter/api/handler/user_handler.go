package handler

import (
	"github.com/labstack/echo/v4"

	"foodbridge/internal/domain/entity"
	"foodbridge/internal/usecase"
	"foodbridge/pkg/response"
)

type UserHandler struct {
	userUseCase  *usecase.UserUseCase
	statsUseCase *usecase.StatsUseCase
}

func NewUserHandler(userUseCase *usecase.UserUseCase, statsUseCase *usecase.StatsUseCase) *UserHandler {
	return &UserHandler{
		userUseCase:  userUseCase,
		statsUseCase: statsUseCase,
	}
}

func (h *UserHandler) GetOnboardingStatus(c echo.Context) error {
	uid := c.Get("uid").(string)
	email, _ := c.Get("email").(string)

	status, err := h.userUseCase.GetOnboardingStatus(c.Request().Context(), uid, email)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, status)
}

type onboardingRequest struct {
	Name             string   `json:"name" validate:"required,min=2"`
	OrganizationName string   `json:"organization_name"`
	PhoneNumber      string   `json:"phone_number" validate:"required"`
	Address          string   `json:"address" validate:"required"`
	UserType         string   `json:"user_type" validate:"required,oneof=donor recipient"`
	Latitude         *float64 `json:"latitude" validate:"omitempty,latitude"`
	Longitude        *float64 `json:"longitude" validate:"omitempty,longitude"`
}

func (h *UserHandler) CompleteOnboarding(c echo.Context) error {
	var req onboardingRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	user, err := h.userUseCase.CompleteOnboarding(c.Request().Context(), uid, usecase.OnboardingInput{
		Name:             req.Name,
		OrganizationName: req.OrganizationName,
		PhoneNumber:      req.PhoneNumber,
		Address:          req.Address,
		UserType:         req.UserType,
		Latitude:         req.Latitude,
		Longitude:        req.Longitude,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

func (h *UserHandler) GetProfile(c echo.Context) error {
	uid := c.Get("uid").(string)

	user, err := h.userUseCase.GetUserProfile(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

type updateProfileRequest struct {
	Name             string   `json:"name" validate:"omitempty,min=2"`
	OrganizationName string   `json:"organization_name"`
	PhoneNumber      string   `json:"phone_number"`
	Address          string   `json:"address"`
	Latitude         *float64 `json:"latitude" validate:"omitempty,latitude"`
	Longitude        *float64 `json:"longitude" validate:"omitempty,longitude"`
}

func (h *UserHandler) UpdateProfile(c echo.Context) error {
	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	user, err := h.userUseCase.UpdateProfile(c.Request().Context(), uid, usecase.UpdateProfileInput{
		Name:             req.Name,
		OrganizationName: req.OrganizationName,
		PhoneNumber:      req.PhoneNumber,
		Address:          req.Address,
		Latitude:         req.Latitude,
		Longitude:        req.Longitude,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

func (h *UserHandler) GetPreferences(c echo.Context) error {
	uid := c.Get("uid").(string)

	prefs, err := h.userUseCase.GetPreferences(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, prefs)
}

type updatePreferencesRequest struct {
	NotificationSettings    *entity.NotificationSettings `json:"notification_settings"`
	PreferredPickupDistance *int                         `json:"preferred_pickup_distance" validate:"omitempty,gt=0"`
}

func (h *UserHandler) UpdatePreferences(c echo.Context) error {
	var req updatePreferencesRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	prefs, err := h.userUseCase.UpdatePreferences(c.Request().Context(), uid, usecase.UpdatePreferencesInput{
		NotificationSettings:    req.NotificationSettings,
		PreferredPickupDistance: req.PreferredPickupDistance,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, prefs)
}

type updatePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
}

func (h *UserHandler) UpdatePassword(c echo.Context) error {
	var req updatePasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	if err := h.userUseCase.UpdatePassword(c.Request().Context(), uid, req.CurrentPassword, req.NewPassword); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Password updated",
	})
}

func (h *UserHandler) GetDashboardStats(c echo.Context) error {
	uid := c.Get("uid").(string)

	stats, err := h.statsUseCase.GetDashboardStats(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, stats)
}
