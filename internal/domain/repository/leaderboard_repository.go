package repository

import (
	"context"

	"foodbridge/internal/domain/entity"
)

// LeaderboardRepository reads the pre-aggregated community ranking
// maintained by the data platform.
type LeaderboardRepository interface {
	List(ctx context.Context) ([]*entity.LeaderboardEntry, error)
}
