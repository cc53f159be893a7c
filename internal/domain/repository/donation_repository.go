package repository

import (
	"context"

	"foodbridge/internal/domain/entity"
)

type DonationRepository interface {
	Create(ctx context.Context, donation *entity.FoodDonation) error
	GetByID(ctx context.Context, id string) (*entity.FoodDonation, error)
	Update(ctx context.Context, donation *entity.FoodDonation) error

	// ListAvailable returns every listing in available status,
	// optionally narrowed to one category, in the requested sort
	// order (expiration_asc, expiration_desc or created_desc).
	// Distance sorting and filtering happen above the store.
	ListAvailable(ctx context.Context, categoryID int, sortBy string) ([]*entity.FoodDonation, error)

	ListByDonorID(ctx context.Context, donorID string, status string, limit, offset int) ([]*entity.FoodDonation, int64, error)
}
