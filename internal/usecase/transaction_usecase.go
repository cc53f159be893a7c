package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"foodbridge/internal/domain/entity"
	"foodbridge/internal/domain/repository"
	"foodbridge/internal/domain/service"
	"foodbridge/internal/infrastructure/ratelimit"
	"foodbridge/pkg/errors"
	"foodbridge/pkg/logger"
	"foodbridge/pkg/utils"
)

const transactionPageSize = 5

type TransactionUseCase struct {
	transactionRepo repository.TransactionRepository
	donationRepo    repository.DonationRepository
	userRepo        repository.UserRepository
	metricsRepo     repository.MetricsRepository
	limiter         *ratelimit.RateLimiter
}

func NewTransactionUseCase(
	transactionRepo repository.TransactionRepository,
	donationRepo repository.DonationRepository,
	userRepo repository.UserRepository,
	metricsRepo repository.MetricsRepository,
	limiter *ratelimit.RateLimiter,
) *TransactionUseCase {
	return &TransactionUseCase{
		transactionRepo: transactionRepo,
		donationRepo:    donationRepo,
		userRepo:        userRepo,
		metricsRepo:     metricsRepo,
		limiter:         limiter,
	}
}

type RequestPickupInput struct {
	DonationID string
	PickupTime *time.Time
	Notes      string
}

// RequestPickup files a recipient's claim on an available listing and
// moves it to pending. One request per recipient per listing.
func (uc *TransactionUseCase) RequestPickup(ctx context.Context, recipientID string, input RequestPickupInput) (*entity.Transaction, error) {
	if allowed, _ := uc.limiter.Allow(recipientID, "request_pickup"); !allowed {
		return nil, errors.TooManyRequests("Too many pickup requests, slow down")
	}

	recipient, err := uc.userRepo.GetByID(ctx, recipientID)
	if err != nil {
		return nil, errors.NotFound("User", err)
	}
	if recipient.UserType != entity.UserTypeRecipient {
		return nil, errors.Forbidden("Only recipients can request pickups", nil)
	}

	donation, err := uc.donationRepo.GetByID(ctx, input.DonationID)
	if err != nil {
		return nil, err
	}

	if donation.DonorID == recipientID {
		return nil, errors.BadRequest("Cannot request your own donation", nil)
	}
	if donation.Status != entity.DonationStatusAvailable {
		return nil, errors.BadRequest("Donation is no longer available", nil)
	}

	existing, err := uc.transactionRepo.GetByDonationAndRecipient(ctx, input.DonationID, recipientID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.Conflict("You have already requested this donation")
	}

	transaction := &entity.Transaction{
		ID:          uuid.New().String(),
		DonationID:  donation.ID,
		DonorID:     donation.DonorID,
		RecipientID: recipientID,
		Status:      entity.TransactionStatusRequested,
		PickupTime:  input.PickupTime,
		Notes:       input.Notes,
	}

	if err := uc.transactionRepo.Create(ctx, transaction); err != nil {
		return nil, err
	}

	donation.Status = entity.DonationStatusPending
	if err := uc.donationRepo.Update(ctx, donation); err != nil {
		return nil, err
	}

	return transaction, nil
}

func (uc *TransactionUseCase) GetTransaction(ctx context.Context, userID, transactionID string) (*entity.TransactionDetail, error) {
	transaction, err := uc.transactionRepo.GetByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	if transaction.DonorID != userID && transaction.RecipientID != userID {
		return nil, errors.Forbidden("You don't have permission to view this transaction", nil)
	}

	return uc.buildDetail(ctx, transaction)
}

func (uc *TransactionUseCase) ListTransactions(ctx context.Context, userID, role, status string, page, pageSize int) ([]*entity.TransactionDetail, int64, error) {
	if role != entity.UserTypeDonor && role != entity.UserTypeRecipient {
		user, err := uc.userRepo.GetByID(ctx, userID)
		if err != nil {
			return nil, 0, errors.NotFound("User", err)
		}
		role = user.UserType
	}

	pagination := utils.NewPaginationParams(page, pageSize, transactionPageSize)

	transactions, total, err := uc.transactionRepo.ListByUserID(ctx, userID, role, status, pagination.PageSize, pagination.Offset)
	if err != nil {
		return nil, 0, err
	}

	details := make([]*entity.TransactionDetail, 0, len(transactions))
	for _, t := range transactions {
		detail, err := uc.buildDetail(ctx, t)
		if err != nil {
			logger.Warn("Skipping transaction %s: %v", t.ID, err)
			continue
		}
		details = append(details, detail)
	}

	return details, total, nil
}

// AcceptRequest confirms a pickup and claims the listing for that
// recipient.
func (uc *TransactionUseCase) AcceptRequest(ctx context.Context, donorID, transactionID string) (*entity.Transaction, error) {
	transaction, err := uc.transactionRepo.GetByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	if transaction.DonorID != donorID {
		return nil, errors.Forbidden("Only the donor can accept this request", nil)
	}
	if transaction.Status != entity.TransactionStatusRequested {
		return nil, errors.BadRequest("Only requested pickups can be accepted", nil)
	}

	transaction.Status = entity.TransactionStatusConfirmed
	if err := uc.transactionRepo.Update(ctx, transaction); err != nil {
		return nil, err
	}

	donation, err := uc.donationRepo.GetByID(ctx, transaction.DonationID)
	if err != nil {
		return nil, err
	}
	donation.Status = entity.DonationStatusClaimed
	if err := uc.donationRepo.Update(ctx, donation); err != nil {
		return nil, err
	}

	return transaction, nil
}

// RejectRequest turns a request down. The listing goes back to
// available unless another request is still waiting on it.
func (uc *TransactionUseCase) RejectRequest(ctx context.Context, donorID, transactionID string) (*entity.Transaction, error) {
	transaction, err := uc.transactionRepo.GetByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	if transaction.DonorID != donorID {
		return nil, errors.Forbidden("Only the donor can reject this request", nil)
	}
	if transaction.Status != entity.TransactionStatusRequested {
		return nil, errors.BadRequest("Only requested pickups can be rejected", nil)
	}

	transaction.Status = entity.TransactionStatusRejected
	if err := uc.transactionRepo.Update(ctx, transaction); err != nil {
		return nil, err
	}

	if err := uc.releaseDonationIfIdle(ctx, transaction.DonationID); err != nil {
		return nil, err
	}

	return transaction, nil
}

// CancelRequest is the recipient's side of backing out before the
// pickup happens.
func (uc *TransactionUseCase) CancelRequest(ctx context.Context, recipientID, transactionID string) (*entity.Transaction, error) {
	transaction, err := uc.transactionRepo.GetByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	if transaction.RecipientID != recipientID {
		return nil, errors.Forbidden("Only the recipient can cancel this request", nil)
	}
	if transaction.Status != entity.TransactionStatusRequested {
		return nil, errors.BadRequest("Only requested pickups can be cancelled", nil)
	}

	transaction.Status = entity.TransactionStatusCancelled
	if err := uc.transactionRepo.Update(ctx, transaction); err != nil {
		return nil, err
	}

	if err := uc.releaseDonationIfIdle(ctx, transaction.DonationID); err != nil {
		return nil, err
	}

	return transaction, nil
}

// CompletePickup marks the handover done and records the impact
// metrics exactly once per transaction. The recipient confirms
// receipt, not the donor.
func (uc *TransactionUseCase) CompletePickup(ctx context.Context, recipientID, transactionID string) (*entity.Transaction, error) {
	transaction, err := uc.transactionRepo.GetByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	if transaction.RecipientID != recipientID {
		return nil, errors.Forbidden("Only the recipient can complete this pickup", nil)
	}
	if transaction.Status != entity.TransactionStatusConfirmed {
		return nil, errors.BadRequest("Only confirmed pickups can be completed", nil)
	}

	now := time.Now()
	transaction.Status = entity.TransactionStatusCompleted
	transaction.ActualPickupTime = &now
	if err := uc.transactionRepo.Update(ctx, transaction); err != nil {
		return nil, err
	}

	donation, err := uc.donationRepo.GetByID(ctx, transaction.DonationID)
	if err != nil {
		return nil, err
	}
	donation.Status = entity.DonationStatusCompleted
	if err := uc.donationRepo.Update(ctx, donation); err != nil {
		return nil, err
	}

	existing, err := uc.metricsRepo.GetByTransactionID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		metrics := service.ComputeImpact(transactionID, donation, now)
		if err := uc.metricsRepo.Create(ctx, metrics); err != nil {
			return nil, err
		}
	}

	return transaction, nil
}

type FeedbackInput struct {
	Rating   int
	Feedback string
}

// SubmitFeedback stores each side's rating of the other after a
// completed pickup. The donor rates the recipient and vice versa.
func (uc *TransactionUseCase) SubmitFeedback(ctx context.Context, userID, transactionID string, input FeedbackInput) (*entity.Transaction, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, errors.BadRequest("Rating must be between 1 and 5", nil)
	}

	transaction, err := uc.transactionRepo.GetByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	if transaction.Status != entity.TransactionStatusCompleted {
		return nil, errors.BadRequest("Feedback is only accepted on completed pickups", nil)
	}

	switch userID {
	case transaction.DonorID:
		if transaction.RecipientRating != nil {
			return nil, errors.Conflict("You have already reviewed this pickup")
		}
		transaction.RecipientRating = &input.Rating
		transaction.DonorFeedback = input.Feedback
	case transaction.RecipientID:
		if transaction.DonorRating != nil {
			return nil, errors.Conflict("You have already reviewed this pickup")
		}
		transaction.DonorRating = &input.Rating
		transaction.RecipientFeedback = input.Feedback
	default:
		return nil, errors.Forbidden("You don't have permission to review this transaction", nil)
	}

	if err := uc.transactionRepo.Update(ctx, transaction); err != nil {
		return nil, err
	}

	return transaction, nil
}

// GetImpact returns the metrics for a completed pickup, computing and
// persisting them on first view if completion did not record them.
func (uc *TransactionUseCase) GetImpact(ctx context.Context, userID, transactionID string) (*entity.ImpactMetrics, error) {
	transaction, err := uc.transactionRepo.GetByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	if transaction.DonorID != userID && transaction.RecipientID != userID {
		return nil, errors.Forbidden("You don't have permission to view this transaction", nil)
	}

	metrics, err := uc.metricsRepo.GetByTransactionID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if metrics != nil {
		return metrics, nil
	}

	if transaction.Status != entity.TransactionStatusCompleted {
		return nil, errors.NotFound("Impact metrics", nil)
	}

	donation, err := uc.donationRepo.GetByID(ctx, transaction.DonationID)
	if err != nil {
		return nil, err
	}
	metrics = service.ComputeImpact(transactionID, donation, time.Now())
	if err := uc.metricsRepo.Create(ctx, metrics); err != nil {
		return nil, err
	}

	return metrics, nil
}

// releaseDonationIfIdle reverts a pending listing to available when no
// live request remains on it.
func (uc *TransactionUseCase) releaseDonationIfIdle(ctx context.Context, donationID string) error {
	donation, err := uc.donationRepo.GetByID(ctx, donationID)
	if err != nil {
		return err
	}
	if donation.Status != entity.DonationStatusPending && donation.Status != entity.DonationStatusClaimed {
		return nil
	}

	transactions, err := uc.transactionRepo.ListByDonationID(ctx, donationID)
	if err != nil {
		return err
	}
	for _, t := range transactions {
		if t.IsActive() {
			return nil
		}
	}

	donation.Status = entity.DonationStatusAvailable
	return uc.donationRepo.Update(ctx, donation)
}

func (uc *TransactionUseCase) buildDetail(ctx context.Context, transaction *entity.Transaction) (*entity.TransactionDetail, error) {
	donation, err := uc.donationRepo.GetByID(ctx, transaction.DonationID)
	if err != nil {
		return nil, err
	}

	users, err := uc.userRepo.GetByIDs(ctx, []string{transaction.DonorID, transaction.RecipientID})
	if err != nil {
		return nil, err
	}

	return &entity.TransactionDetail{
		Transaction: *transaction,
		Donation:    donation,
		Donor:       users[transaction.DonorID],
		Recipient:   users[transaction.RecipientID],
	}, nil
}
