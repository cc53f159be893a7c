package repository

import (
	"context"

	"foodbridge/internal/domain/entity"
)

type TransactionRepository interface {
	Create(ctx context.Context, transaction *entity.Transaction) error
	GetByID(ctx context.Context, id string) (*entity.Transaction, error)
	Update(ctx context.Context, transaction *entity.Transaction) error

	ListByUserID(ctx context.Context, userID, role, status string, limit, offset int) ([]*entity.Transaction, int64, error)
	ListByDonationID(ctx context.Context, donationID string) ([]*entity.Transaction, error)

	// GetByDonationAndRecipient returns the recipient's existing
	// request for a listing regardless of status, or nil.
	GetByDonationAndRecipient(ctx context.Context, donationID, recipientID string) (*entity.Transaction, error)

	CountByUserID(ctx context.Context, userID, role, status string) (int64, error)
}
