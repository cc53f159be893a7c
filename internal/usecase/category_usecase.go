package usecase

import (
	"context"

	"foodbridge/internal/domain/entity"
	"foodbridge/internal/domain/repository"
)

type CategoryUseCase struct {
	categoryRepo repository.CategoryRepository
}

func NewCategoryUseCase(categoryRepo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

func (uc *CategoryUseCase) ListCategories(ctx context.Context) ([]*entity.FoodCategory, error) {
	return uc.categoryRepo.List(ctx)
}

func (uc *CategoryUseCase) GetCategory(ctx context.Context, id int) (*entity.FoodCategory, error) {
	return uc.categoryRepo.GetByID(ctx, id)
}
