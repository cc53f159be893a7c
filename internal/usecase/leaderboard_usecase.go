package usecase

import (
	"context"
	"sort"

	"foodbridge/internal/domain/entity"
	"foodbridge/internal/domain/repository"
	"foodbridge/pkg/errors"
)

var medals = []string{"🥇", "🥈", "🥉"}

type LeaderboardUseCase struct {
	leaderboardRepo repository.LeaderboardRepository
}

func NewLeaderboardUseCase(leaderboardRepo repository.LeaderboardRepository) *LeaderboardUseCase {
	return &LeaderboardUseCase{
		leaderboardRepo: leaderboardRepo,
	}
}

// GetLeaderboard returns the impact ranking for one side of the
// marketplace, ordered by CO2 saved. Progress measures each entry
// against the current leader.
func (uc *LeaderboardUseCase) GetLeaderboard(ctx context.Context, userType string) ([]*entity.LeaderboardEntry, error) {
	if userType != entity.UserTypeDonor && userType != entity.UserTypeRecipient {
		return nil, errors.BadRequest("User type must be donor or recipient", nil)
	}

	entries, err := uc.leaderboardRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	ranked := make([]*entity.LeaderboardEntry, 0, len(entries))
	for _, e := range entries {
		if e.UserType != userType {
			continue
		}
		if e.OrganizationName == "" {
			e.OrganizationName = "Individual"
		}
		ranked = append(ranked, e)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].CO2SavedKg > ranked[j].CO2SavedKg
	})

	var max float64
	if len(ranked) > 0 {
		max = ranked[0].CO2SavedKg
	}

	for i, e := range ranked {
		e.Rank = i + 1
		if i < len(medals) {
			e.Medal = medals[i]
		}

		if max > 0 {
			e.Progress = e.CO2SavedKg / max * 100
			if e.Progress > 100 {
				e.Progress = 100
			}
		} else {
			e.Progress = 0
		}
	}

	return ranked, nil
}
