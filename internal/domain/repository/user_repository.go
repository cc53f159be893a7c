package repository

import (
	"context"

	"foodbridge/internal/domain/entity"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	GetByIDs(ctx context.Context, ids []string) (map[string]*entity.User, error)

	GetPreferences(ctx context.Context, userID string) (*entity.UserPreferences, error)
	SetPreferences(ctx context.Context, prefs *entity.UserPreferences) error
}
