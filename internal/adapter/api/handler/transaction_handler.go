package handler

import (
	"time"

	"github.com/labstack/echo/v4"

	"foodbridge/internal/usecase"
	"foodbridge/pkg/response"
	"foodbridge/pkg/utils"
)

type TransactionHandler struct {
	transactionUseCase *usecase.TransactionUseCase
}

func NewTransactionHandler(transactionUseCase *usecase.TransactionUseCase) *TransactionHandler {
	return &TransactionHandler{
		transactionUseCase: transactionUseCase,
	}
}

type requestPickupRequest struct {
	PickupTime *time.Time `json:"pickup_time"`
	Notes      string     `json:"notes" validate:"omitempty,max=500"`
}

func (h *TransactionHandler) RequestPickup(c echo.Context) error {
	var req requestPickupRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	recipientID := c.Get("uid").(string)

	transaction, err := h.transactionUseCase.RequestPickup(c.Request().Context(), recipientID, usecase.RequestPickupInput{
		DonationID: c.Param("id"),
		PickupTime: req.PickupTime,
		Notes:      req.Notes,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, transaction)
}

func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	uid := c.Get("uid").(string)
	role := c.QueryParam("role")
	status := c.QueryParam("status")

	pagination := utils.GetPaginationParams(c, 5)

	transactions, total, err := h.transactionUseCase.ListTransactions(c.Request().Context(), uid, role, status, pagination.Page, pagination.PageSize)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, transactions, total, pagination.Page, pagination.PageSize)
}

func (h *TransactionHandler) GetTransaction(c echo.Context) error {
	uid := c.Get("uid").(string)

	transaction, err := h.transactionUseCase.GetTransaction(c.Request().Context(), uid, c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, transaction)
}

func (h *TransactionHandler) AcceptRequest(c echo.Context) error {
	uid := c.Get("uid").(string)

	transaction, err := h.transactionUseCase.AcceptRequest(c.Request().Context(), uid, c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, transaction)
}

func (h *TransactionHandler) RejectRequest(c echo.Context) error {
	uid := c.Get("uid").(string)

	transaction, err := h.transactionUseCase.RejectRequest(c.Request().Context(), uid, c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, transaction)
}

func (h *TransactionHandler) CancelRequest(c echo.Context) error {
	uid := c.Get("uid").(string)

	transaction, err := h.transactionUseCase.CancelRequest(c.Request().Context(), uid, c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, transaction)
}

func (h *TransactionHandler) CompletePickup(c echo.Context) error {
	uid := c.Get("uid").(string)

	transaction, err := h.transactionUseCase.CompletePickup(c.Request().Context(), uid, c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, transaction)
}

type feedbackRequest struct {
	Rating   int    `json:"rating" validate:"required,min=1,max=5"`
	Feedback string `json:"feedback" validate:"omitempty,max=1000"`
}

func (h *TransactionHandler) SubmitFeedback(c echo.Context) error {
	var req feedbackRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	transaction, err := h.transactionUseCase.SubmitFeedback(c.Request().Context(), uid, c.Param("id"), usecase.FeedbackInput{
		Rating:   req.Rating,
		Feedback: req.Feedback,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, transaction)
}

func (h *TransactionHandler) GetImpact(c echo.Context) error {
	uid := c.Get("uid").(string)

	metrics, err := h.transactionUseCase.GetImpact(c.Request().Context(), uid, c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, metrics)
}
