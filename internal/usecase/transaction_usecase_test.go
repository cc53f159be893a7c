package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodbridge/internal/domain/entity"
	"foodbridge/internal/infrastructure/ratelimit"
)

func newTransactionFixture() (*TransactionUseCase, *fakeUserRepo, *fakeDonationRepo, *fakeTransactionRepo, *fakeMetricsRepo) {
	userRepo := newFakeUserRepo()
	donationRepo := newFakeDonationRepo()
	transactionRepo := newFakeTransactionRepo()
	metricsRepo := newFakeMetricsRepo()
	uc := NewTransactionUseCase(transactionRepo, donationRepo, userRepo, metricsRepo, ratelimit.NewRateLimiter())
	return uc, userRepo, donationRepo, transactionRepo, metricsRepo
}

func seedAvailableDonation(userRepo *fakeUserRepo, donationRepo *fakeDonationRepo) *entity.FoodDonation {
	seedUser(userRepo, "donor-1", entity.UserTypeDonor, nil, nil)
	seedUser(userRepo, "recipient-1", entity.UserTypeRecipient, nil, nil)
	return seedDonation(donationRepo, "donor-1", 2, entity.DonationStatusAvailable, nil, nil, time.Now())
}

func TestRequestPickup(t *testing.T) {
	uc, userRepo, donationRepo, _, _ := newTransactionFixture()
	donation := seedAvailableDonation(userRepo, donationRepo)

	transaction, err := uc.RequestPickup(context.Background(), "recipient-1", RequestPickupInput{
		DonationID: donation.ID,
		Notes:      "Can collect this evening",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.TransactionStatusRequested, transaction.Status)
	assert.Equal(t, "donor-1", transaction.DonorID)
	assert.NotEmpty(t, transaction.ID)

	stored, _ := donationRepo.GetByID(context.Background(), donation.ID)
	assert.Equal(t, entity.DonationStatusPending, stored.Status)
}

func TestRequestPickupDuplicate(t *testing.T) {
	uc, userRepo, donationRepo, _, _ := newTransactionFixture()
	donation := seedAvailableDonation(userRepo, donationRepo)

	_, err := uc.RequestPickup(context.Background(), "recipient-1", RequestPickupInput{DonationID: donation.ID})
	require.NoError(t, err)

	// Second request hits the donation in pending status.
	_, err = uc.RequestPickup(context.Background(), "recipient-1", RequestPickupInput{DonationID: donation.ID})
	assert.Error(t, err)
}

func TestRequestPickupOwnDonation(t *testing.T) {
	uc, userRepo, donationRepo, _, _ := newTransactionFixture()
	seedUser(userRepo, "donor-1", entity.UserTypeRecipient, nil, nil)
	donation := seedDonation(donationRepo, "donor-1", 1, entity.DonationStatusAvailable, nil, nil, time.Now())

	_, err := uc.RequestPickup(context.Background(), "donor-1", RequestPickupInput{DonationID: donation.ID})
	assert.Error(t, err)
}

func TestRequestPickupDonorRole(t *testing.T) {
	uc, userRepo, donationRepo, _, _ := newTransactionFixture()
	donation := seedAvailableDonation(userRepo, donationRepo)
	seedUser(userRepo, "donor-2", entity.UserTypeDonor, nil, nil)

	_, err := uc.RequestPickup(context.Background(), "donor-2", RequestPickupInput{DonationID: donation.ID})
	assert.Error(t, err)
}

func TestAcceptRequest(t *testing.T) {
	uc, userRepo, donationRepo, _, _ := newTransactionFixture()
	donation := seedAvailableDonation(userRepo, donationRepo)

	transaction, err := uc.RequestPickup(context.Background(), "recipient-1", RequestPickupInput{DonationID: donation.ID})
	require.NoError(t, err)

	accepted, err := uc.AcceptRequest(context.Background(), "donor-1", transaction.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.TransactionStatusConfirmed, accepted.Status)

	stored, _ := donationRepo.GetByID(context.Background(), donation.ID)
	assert.Equal(t, entity.DonationStatusClaimed, stored.Status)
}

func TestAcceptRequestOnlyDonor(t *testing.T) {
	uc, userRepo, donationRepo, _, _ := newTransactionFixture()
	donation := seedAvailableDonation(userRepo, donationRepo)

	transaction, _ := uc.RequestPickup(context.Background(), "recipient-1", RequestPickupInput{DonationID: donation.ID})

	_, err := uc.AcceptRequest(context.Background(), "recipient-1", transaction.ID)
	assert.Error(t, err)
}

func TestRejectRequestReleasesDonation(t *testing.T) {
	uc, userRepo, donationRepo, _, _ := newTransactionFixture()
	donation := seedAvailableDonation(userRepo, donationRepo)

	transaction, _ := uc.RequestPickup(context.Background(), "recipient-1", RequestPickupInput{DonationID: donation.ID})

	rejected, err := uc.RejectRequest(context.Background(), "donor-1", transaction.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.TransactionStatusRejected, rejected.Status)

	stored, _ := donationRepo.GetByID(context.Background(), donation.ID)
	assert.Equal(t, entity.DonationStatusAvailable, stored.Status)
}

func TestRejectRequestKeepsPendingWhenOthersWait(t *testing.T) {
	uc, userRepo, donationRepo, transactionRepo, _ := newTransactionFixture()
	donation := seedAvailableDonation(userRepo, donationRepo)
	seedUser(userRepo, "recipient-2", entity.UserTypeRecipient, nil, nil)

	first, _ := uc.RequestPickup(context.Background(), "recipient-1", RequestPickupInput{DonationID: donation.ID})

	// A second request filed while the listing was still available.
	transactionRepo.Create(context.Background(), &entity.Transaction{
		ID:          "tx-other",
		DonationID:  donation.ID,
		DonorID:     "donor-1",
		RecipientID: "recipient-2",
		Status:      entity.TransactionStatusRequested,
	})

	_, err := uc.RejectRequest(context.Background(), "donor-1", first.ID)
	require.NoError(t, err)

	stored, _ := donationRepo.GetByID(context.Background(), donation.ID)
	assert.Equal(t, entity.DonationStatusPending, stored.Status)
}

func TestCancelRequest(t *testing.T) {
	uc, userRepo, donationRepo, _, _ := newTransactionFixture()
	donation := seedAvailableDonation(userRepo, donationRepo)

	transaction, _ := uc.RequestPickup(context.Background(), "recipient-1", RequestPickupInput{DonationID: donation.ID})

	cancelled, err := uc.CancelRequest(context.Background(), "recipient-1", transaction.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.TransactionStatusCancelled, cancelled.Status)

	stored, _ := donationRepo.GetByID(context.Background(), donation.ID)
	assert.Equal(t, entity.DonationStatusAvailable, stored.Status)
}

func TestCompletePickupRecordsImpact(t *testing.T) {
	uc, userRepo, donationRepo, _, metricsRepo := newTransactionFixture()
	donation := seedAvailableDonation(userRepo, donationRepo)

	transaction, _ := uc.RequestPickup(context.Background(), "recipient-1", RequestPickupInput{DonationID: donation.ID})
	_, err := uc.AcceptRequest(context.Background(), "donor-1", transaction.ID)
	require.NoError(t, err)

	completed, err := uc.CompletePickup(context.Background(), "recipient-1", transaction.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.TransactionStatusCompleted, completed.Status)
	assert.NotNil(t, completed.ActualPickupTime)

	stored, _ := donationRepo.GetByID(context.Background(), donation.ID)
	assert.Equal(t, entity.DonationStatusCompleted, stored.Status)

	metrics, err := uc.GetImpact(context.Background(), "donor-1", transaction.ID)
	require.NoError(t, err)
	// 5kg of category 2 food.
	assert.InDelta(t, 5.0, metrics.FoodSavedKg, 1e-9)
	assert.InDelta(t, 4.0, metrics.CO2SavedKg, 1e-9)
	assert.Equal(t, 10, metrics.MealsProvided)
	assert.InDelta(t, 90.0, metrics.EstimatedValueMY, 1e-9)

	assert.Len(t, metricsRepo.metrics, 1)
}

func TestCompletePickupDoesNotDuplicateMetrics(t *testing.T) {
	uc, userRepo, donationRepo, transactionRepo, metricsRepo := newTransactionFixture()
	donation := seedAvailableDonation(userRepo, donationRepo)

	transaction, _ := uc.RequestPickup(context.Background(), "recipient-1", RequestPickupInput{DonationID: donation.ID})
	uc.AcceptRequest(context.Background(), "donor-1", transaction.ID)
	_, err := uc.CompletePickup(context.Background(), "recipient-1", transaction.ID)
	require.NoError(t, err)

	// Force the transaction back to confirmed and complete again.
	stored, _ := transactionRepo.GetByID(context.Background(), transaction.ID)
	stored.Status = entity.TransactionStatusConfirmed
	transactionRepo.Update(context.Background(), stored)

	_, err = uc.CompletePickup(context.Background(), "recipient-1", transaction.ID)
	require.NoError(t, err)

	assert.Len(t, metricsRepo.metrics, 1)
}

func TestCompletePickupOnlyRecipient(t *testing.T) {
	uc, userRepo, donationRepo, _, _ := newTransactionFixture()
	donation := seedAvailableDonation(userRepo, donationRepo)

	transaction, _ := uc.RequestPickup(context.Background(), "recipient-1", RequestPickupInput{DonationID: donation.ID})
	uc.AcceptRequest(context.Background(), "donor-1", transaction.ID)

	_, err := uc.CompletePickup(context.Background(), "donor-1", transaction.ID)
	assert.Error(t, err)
}

func TestGetImpactComputesLazily(t *testing.T) {
	uc, userRepo, donationRepo, transactionRepo, metricsRepo := newTransactionFixture()
	donation := seedAvailableDonation(userRepo, donationRepo)

	// A completed pickup whose metrics row was never written.
	transactionRepo.Create(context.Background(), &entity.Transaction{
		ID:          "tx-legacy",
		DonationID:  donation.ID,
		DonorID:     "donor-1",
		RecipientID: "recipient-1",
		Status:      entity.TransactionStatusCompleted,
	})

	metrics, err := uc.GetImpact(context.Background(), "recipient-1", "tx-legacy")
	require.NoError(t, err)
	assert.InDelta(t, 5.0, metrics.FoodSavedKg, 1e-9)
	assert.Len(t, metricsRepo.metrics, 1)

	// A second view reuses the persisted row.
	_, err = uc.GetImpact(context.Background(), "recipient-1", "tx-legacy")
	require.NoError(t, err)
	assert.Len(t, metricsRepo.metrics, 1)
}

func TestCompletePickupRequiresConfirmed(t *testing.T) {
	uc, userRepo, donationRepo, _, _ := newTransactionFixture()
	donation := seedAvailableDonation(userRepo, donationRepo)

	transaction, _ := uc.RequestPickup(context.Background(), "recipient-1", RequestPickupInput{DonationID: donation.ID})

	_, err := uc.CompletePickup(context.Background(), "recipient-1", transaction.ID)
	assert.Error(t, err)
}

func TestSubmitFeedbackBothSides(t *testing.T) {
	uc, userRepo, donationRepo, _, _ := newTransactionFixture()
	donation := seedAvailableDonation(userRepo, donationRepo)

	transaction, _ := uc.RequestPickup(context.Background(), "recipient-1", RequestPickupInput{DonationID: donation.ID})
	uc.AcceptRequest(context.Background(), "donor-1", transaction.ID)
	uc.CompletePickup(context.Background(), "recipient-1", transaction.ID)

	// Donor rates the recipient.
	updated, err := uc.SubmitFeedback(context.Background(), "donor-1", transaction.ID, FeedbackInput{Rating: 5, Feedback: "Punctual"})
	require.NoError(t, err)
	require.NotNil(t, updated.RecipientRating)
	assert.Equal(t, 5, *updated.RecipientRating)
	assert.Equal(t, "Punctual", updated.DonorFeedback)

	// Recipient rates the donor.
	updated, err = uc.SubmitFeedback(context.Background(), "recipient-1", transaction.ID, FeedbackInput{Rating: 4, Feedback: "Fresh food"})
	require.NoError(t, err)
	require.NotNil(t, updated.DonorRating)
	assert.Equal(t, 4, *updated.DonorRating)
	assert.Equal(t, "Fresh food", updated.RecipientFeedback)

	// The donor's earlier rating survives.
	require.NotNil(t, updated.RecipientRating)
	assert.Equal(t, 5, *updated.RecipientRating)
}

func TestSubmitFeedbackOnlyOnce(t *testing.T) {
	uc, userRepo, donationRepo, _, _ := newTransactionFixture()
	donation := seedAvailableDonation(userRepo, donationRepo)

	transaction, _ := uc.RequestPickup(context.Background(), "recipient-1", RequestPickupInput{DonationID: donation.ID})
	uc.AcceptRequest(context.Background(), "donor-1", transaction.ID)
	uc.CompletePickup(context.Background(), "recipient-1", transaction.ID)

	_, err := uc.SubmitFeedback(context.Background(), "donor-1", transaction.ID, FeedbackInput{Rating: 5})
	require.NoError(t, err)

	// A second attempt cannot overwrite the rating.
	_, err = uc.SubmitFeedback(context.Background(), "donor-1", transaction.ID, FeedbackInput{Rating: 1})
	assert.Error(t, err)

	stored, _ := uc.GetTransaction(context.Background(), "donor-1", transaction.ID)
	require.NotNil(t, stored.RecipientRating)
	assert.Equal(t, 5, *stored.RecipientRating)
}

func TestSubmitFeedbackBeforeCompletion(t *testing.T) {
	uc, userRepo, donationRepo, _, _ := newTransactionFixture()
	donation := seedAvailableDonation(userRepo, donationRepo)

	transaction, _ := uc.RequestPickup(context.Background(), "recipient-1", RequestPickupInput{DonationID: donation.ID})

	_, err := uc.SubmitFeedback(context.Background(), "donor-1", transaction.ID, FeedbackInput{Rating: 5})
	assert.Error(t, err)
}

func TestGetTransactionRestrictedToParticipants(t *testing.T) {
	uc, userRepo, donationRepo, _, _ := newTransactionFixture()
	donation := seedAvailableDonation(userRepo, donationRepo)
	seedUser(userRepo, "stranger-1", entity.UserTypeRecipient, nil, nil)

	transaction, _ := uc.RequestPickup(context.Background(), "recipient-1", RequestPickupInput{DonationID: donation.ID})

	_, err := uc.GetTransaction(context.Background(), "stranger-1", transaction.ID)
	assert.Error(t, err)
}

func TestListTransactionsByRole(t *testing.T) {
	uc, userRepo, donationRepo, _, _ := newTransactionFixture()
	donation := seedAvailableDonation(userRepo, donationRepo)

	_, err := uc.RequestPickup(context.Background(), "recipient-1", RequestPickupInput{DonationID: donation.ID})
	require.NoError(t, err)

	asDonor, total, err := uc.ListTransactions(context.Background(), "donor-1", entity.UserTypeDonor, "", 1, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, asDonor, 1)
	assert.NotNil(t, asDonor[0].Donation)
	assert.NotNil(t, asDonor[0].Recipient)

	asRecipient, total, err := uc.ListTransactions(context.Background(), "recipient-1", entity.UserTypeRecipient, "", 1, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, asRecipient, 1)
}
