package repository

import (
	"context"

	"foodbridge/internal/domain/entity"
)

type CategoryRepository interface {
	List(ctx context.Context) ([]*entity.FoodCategory, error)
	GetByID(ctx context.Context, id int) (*entity.FoodCategory, error)
}
