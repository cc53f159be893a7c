package usecase

import (
	"context"

	"foodbridge/internal/domain/entity"
	"foodbridge/internal/domain/repository"
	"foodbridge/pkg/errors"
)

// MealValueMYR converts meals received into money a recipient did not
// have to spend.
const MealValueMYR = 5.0

type StatsUseCase struct {
	donationRepo    repository.DonationRepository
	transactionRepo repository.TransactionRepository
	metricsRepo     repository.MetricsRepository
	userRepo        repository.UserRepository
}

func NewStatsUseCase(
	donationRepo repository.DonationRepository,
	transactionRepo repository.TransactionRepository,
	metricsRepo repository.MetricsRepository,
	userRepo repository.UserRepository,
) *StatsUseCase {
	return &StatsUseCase{
		donationRepo:    donationRepo,
		transactionRepo: transactionRepo,
		metricsRepo:     metricsRepo,
		userRepo:        userRepo,
	}
}

type DashboardStats struct {
	TotalDonations        int64                 `json:"total_donations,omitempty"`
	ActiveDonations       int64                 `json:"active_donations,omitempty"`
	CompletedTransactions int64                 `json:"completed_transactions"`
	Impact                *entity.ImpactSummary `json:"impact"`
	SavedMoneyMYR         float64               `json:"saved_money_myr,omitempty"`
}

// GetDashboardStats summarizes a user's activity for their home
// screen. Donors see listing counts, recipients see money saved.
func (uc *StatsUseCase) GetDashboardStats(ctx context.Context, userID string) (*DashboardStats, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, errors.NotFound("User", err)
	}

	role := user.UserType
	if role != entity.UserTypeDonor && role != entity.UserTypeRecipient {
		return nil, errors.BadRequest("Complete onboarding before requesting stats", nil)
	}

	completed, total, err := uc.transactionRepo.ListByUserID(ctx, userID, role, entity.TransactionStatusCompleted, 0, 0)
	if err != nil {
		return nil, err
	}

	transactionIDs := make([]string, 0, len(completed))
	for _, t := range completed {
		transactionIDs = append(transactionIDs, t.ID)
	}

	metrics, err := uc.metricsRepo.ListByTransactionIDs(ctx, transactionIDs)
	if err != nil {
		return nil, err
	}

	impact := &entity.ImpactSummary{}
	for _, m := range metrics {
		impact.Add(m)
	}

	stats := &DashboardStats{
		CompletedTransactions: total,
		Impact:                impact,
	}

	if role == entity.UserTypeDonor {
		_, totalDonations, err := uc.donationRepo.ListByDonorID(ctx, userID, "", 0, 0)
		if err != nil {
			return nil, err
		}
		stats.TotalDonations = totalDonations

		for _, status := range []string{entity.DonationStatusAvailable, entity.DonationStatusPending, entity.DonationStatusClaimed} {
			_, n, err := uc.donationRepo.ListByDonorID(ctx, userID, status, 0, 0)
			if err != nil {
				return nil, err
			}
			stats.ActiveDonations += n
		}
	} else {
		stats.SavedMoneyMYR = float64(impact.MealsProvided) * MealValueMYR
	}

	return stats, nil
}
