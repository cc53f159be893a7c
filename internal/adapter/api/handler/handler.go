package handler

import (
	"foodbridge/internal/usecase"
)

var (
	authHandler        *AuthHandler
	userHandler        *UserHandler
	donationHandler    *DonationHandler
	transactionHandler *TransactionHandler
	categoryHandler    *CategoryHandler
	leaderboardHandler *LeaderboardHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	userUseCase *usecase.UserUseCase,
	donationUseCase *usecase.DonationUseCase,
	transactionUseCase *usecase.TransactionUseCase,
	categoryUseCase *usecase.CategoryUseCase,
	leaderboardUseCase *usecase.LeaderboardUseCase,
	statsUseCase *usecase.StatsUseCase,
) {
	authHandler = NewAuthHandler(authUseCase)
	userHandler = NewUserHandler(userUseCase, statsUseCase)
	donationHandler = NewDonationHandler(donationUseCase)
	transactionHandler = NewTransactionHandler(transactionUseCase)
	categoryHandler = NewCategoryHandler(categoryUseCase)
	leaderboardHandler = NewLeaderboardHandler(leaderboardUseCase)
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetUserHandler() *UserHandler {
	return userHandler
}

func GetDonationHandler() *DonationHandler {
	return donationHandler
}

func GetTransactionHandler() *TransactionHandler {
	return transactionHandler
}

func GetCategoryHandler() *CategoryHandler {
	return categoryHandler
}

func GetLeaderboardHandler() *LeaderboardHandler {
	return leaderboardHandler
}
