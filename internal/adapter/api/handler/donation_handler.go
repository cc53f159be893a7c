package handler

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"foodbridge/internal/usecase"
	"foodbridge/pkg/response"
	"foodbridge/pkg/utils"
)

type DonationHandler struct {
	donationUseCase *usecase.DonationUseCase
}

func NewDonationHandler(donationUseCase *usecase.DonationUseCase) *DonationHandler {
	return &DonationHandler{
		donationUseCase: donationUseCase,
	}
}

type createDonationRequest struct {
	CategoryID          int        `json:"category_id" validate:"required,gt=0"`
	Title               string     `json:"title" validate:"required,min=3"`
	Description         string     `json:"description"`
	Quantity            float64    `json:"quantity" validate:"required,gt=0"`
	Unit                string     `json:"unit" validate:"required"`
	PreparedDate        *time.Time `json:"prepared_date"`
	IsPerishable        bool       `json:"is_perishable"`
	StorageRequirements string     `json:"storage_requirements"`
	ExpiryDate          time.Time  `json:"expiry_date" validate:"required"`
	PickupAddress       string     `json:"pickup_address" validate:"required"`
	PickupLatitude      *float64   `json:"pickup_latitude" validate:"omitempty,latitude"`
	PickupLongitude     *float64   `json:"pickup_longitude" validate:"omitempty,longitude"`
	PickupTimeStart     *time.Time `json:"pickup_time_start"`
	PickupTimeEnd       *time.Time `json:"pickup_time_end"`
	ImageURL            string     `json:"image_url" validate:"omitempty,url"`
}

func (h *DonationHandler) CreateDonation(c echo.Context) error {
	var req createDonationRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	donorID := c.Get("uid").(string)

	donation, err := h.donationUseCase.CreateDonation(c.Request().Context(), donorID, usecase.CreateDonationInput{
		CategoryID:          req.CategoryID,
		Title:               req.Title,
		Description:         req.Description,
		Quantity:            req.Quantity,
		Unit:                req.Unit,
		PreparedDate:        req.PreparedDate,
		IsPerishable:        req.IsPerishable,
		StorageRequirements: req.StorageRequirements,
		ExpiryDate:          req.ExpiryDate,
		PickupAddress:       req.PickupAddress,
		PickupLatitude:      req.PickupLatitude,
		PickupLongitude:     req.PickupLongitude,
		PickupTimeStart:     req.PickupTimeStart,
		PickupTimeEnd:       req.PickupTimeEnd,
		ImageURL:            req.ImageURL,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, donation)
}

func (h *DonationHandler) BrowseDonations(c echo.Context) error {
	recipientID := c.Get("uid").(string)

	categoryID, _ := strconv.Atoi(c.QueryParam("category_id"))
	radius, _ := strconv.ParseFloat(c.QueryParam("radius"), 64)
	page, _ := strconv.Atoi(c.QueryParam("page"))

	entries, total, totalPages, err := h.donationUseCase.BrowseDonations(c.Request().Context(), recipientID, usecase.BrowseDonationsInput{
		CategoryID: categoryID,
		RadiusKm:   radius,
		SortBy:     c.QueryParam("sort"),
		Page:       page,
	})
	if err != nil {
		return response.Error(c, err)
	}

	if page <= 0 {
		page = 1
	}

	return response.Success(c, response.PaginatedResponse{
		Items:      entries,
		Total:      total,
		Page:       page,
		PageSize:   10,
		TotalPages: totalPages,
	})
}

func (h *DonationHandler) GetDonation(c echo.Context) error {
	donation, err := h.donationUseCase.GetDonation(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, donation)
}

func (h *DonationHandler) ListMyDonations(c echo.Context) error {
	donorID := c.Get("uid").(string)
	status := c.QueryParam("status")

	pagination := utils.GetPaginationParams(c, 10)

	donations, total, err := h.donationUseCase.ListMyDonations(c.Request().Context(), donorID, status, pagination.Page, pagination.PageSize)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, donations, total, pagination.Page, pagination.PageSize)
}

type updateDonationRequest struct {
	CategoryID          int        `json:"category_id" validate:"omitempty,gt=0"`
	Title               string     `json:"title" validate:"omitempty,min=3"`
	Description         string     `json:"description"`
	Quantity            float64    `json:"quantity" validate:"omitempty,gt=0"`
	Unit                string     `json:"unit"`
	PreparedDate        *time.Time `json:"prepared_date"`
	IsPerishable        *bool      `json:"is_perishable"`
	StorageRequirements string     `json:"storage_requirements"`
	ExpiryDate          *time.Time `json:"expiry_date"`
	PickupAddress       string     `json:"pickup_address"`
	PickupLatitude      *float64   `json:"pickup_latitude" validate:"omitempty,latitude"`
	PickupLongitude     *float64   `json:"pickup_longitude" validate:"omitempty,longitude"`
	PickupTimeStart     *time.Time `json:"pickup_time_start"`
	PickupTimeEnd       *time.Time `json:"pickup_time_end"`
	ImageURL            string     `json:"image_url" validate:"omitempty,url"`
}

func (h *DonationHandler) UpdateDonation(c echo.Context) error {
	var req updateDonationRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	donorID := c.Get("uid").(string)

	donation, err := h.donationUseCase.UpdateDonation(c.Request().Context(), donorID, c.Param("id"), usecase.UpdateDonationInput{
		CategoryID:          req.CategoryID,
		Title:               req.Title,
		Description:         req.Description,
		Quantity:            req.Quantity,
		Unit:                req.Unit,
		PreparedDate:        req.PreparedDate,
		IsPerishable:        req.IsPerishable,
		StorageRequirements: req.StorageRequirements,
		ExpiryDate:          req.ExpiryDate,
		PickupAddress:       req.PickupAddress,
		PickupLatitude:      req.PickupLatitude,
		PickupLongitude:     req.PickupLongitude,
		PickupTimeStart:     req.PickupTimeStart,
		PickupTimeEnd:       req.PickupTimeEnd,
		ImageURL:            req.ImageURL,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, donation)
}

func (h *DonationHandler) CancelDonation(c echo.Context) error {
	donorID := c.Get("uid").(string)

	donation, err := h.donationUseCase.CancelDonation(c.Request().Context(), donorID, c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, donation)
}

func (h *DonationHandler) DeleteDonation(c echo.Context) error {
	donorID := c.Get("uid").(string)

	if err := h.donationUseCase.DeleteDonation(c.Request().Context(), donorID, c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Donation removed",
	})
}
