package repository

import (
	"context"

	"foodbridge/internal/domain/entity"
)

type MetricsRepository interface {
	Create(ctx context.Context, metrics *entity.ImpactMetrics) error
	GetByTransactionID(ctx context.Context, transactionID string) (*entity.ImpactMetrics, error)
	ListByTransactionIDs(ctx context.Context, transactionIDs []string) ([]*entity.ImpactMetrics, error)
}
