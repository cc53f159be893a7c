package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodbridge/internal/domain/entity"
)

func newUserFixture() (*UserUseCase, *fakeUserRepo) {
	userRepo := newFakeUserRepo()
	uc := NewUserUseCase(userRepo, newFakeAuthClient())
	return uc, userRepo
}

func TestGetOnboardingStatusCreatesMissingProfile(t *testing.T) {
	uc, userRepo := newUserFixture()

	status, err := uc.GetOnboardingStatus(context.Background(), "uid-1", "new@example.com")

	require.NoError(t, err)
	assert.False(t, status.Complete)
	assert.Equal(t, "new@example.com", status.Profile.Email)

	// The profile row now exists.
	_, err = userRepo.GetByID(context.Background(), "uid-1")
	assert.NoError(t, err)
}

func TestGetOnboardingStatusIncompleteProfile(t *testing.T) {
	uc, userRepo := newUserFixture()
	userRepo.users["uid-1"] = &entity.User{ID: "uid-1", Email: "a@example.com", Name: "Amin"}

	status, err := uc.GetOnboardingStatus(context.Background(), "uid-1", "a@example.com")

	require.NoError(t, err)
	assert.False(t, status.Complete)
	assert.Equal(t, "Amin", status.Profile.Name)
}

func TestGetOnboardingStatusCompleteProfile(t *testing.T) {
	uc, userRepo := newUserFixture()
	seedUser(userRepo, "uid-1", entity.UserTypeDonor, nil, nil)

	status, err := uc.GetOnboardingStatus(context.Background(), "uid-1", "uid-1@example.com")

	require.NoError(t, err)
	assert.True(t, status.Complete)
}

func TestCompleteOnboardingDonor(t *testing.T) {
	uc, userRepo := newUserFixture()
	userRepo.users["uid-1"] = &entity.User{ID: "uid-1", Email: "a@example.com"}

	user, err := uc.CompleteOnboarding(context.Background(), "uid-1", OnboardingInput{
		Name:        "Amin",
		PhoneNumber: "+60123456789",
		Address:     "Jalan Ampang",
		UserType:    entity.UserTypeDonor,
	})

	require.NoError(t, err)
	assert.True(t, user.IsComplete())

	prefs, err := userRepo.GetPreferences(context.Background(), "uid-1")
	require.NoError(t, err)
	assert.True(t, prefs.NotificationSettings.Email)
	assert.True(t, prefs.NotificationSettings.SMS)
	assert.False(t, prefs.NotificationSettings.Push)
	// Pickup distance is a recipient setting.
	assert.Zero(t, prefs.PreferredPickupDistance)
}

func TestCompleteOnboardingRecipientGetsPickupDistance(t *testing.T) {
	uc, userRepo := newUserFixture()
	userRepo.users["uid-1"] = &entity.User{ID: "uid-1", Email: "a@example.com"}

	_, err := uc.CompleteOnboarding(context.Background(), "uid-1", OnboardingInput{
		Name:        "Siti",
		PhoneNumber: "+60198765432",
		Address:     "Jalan Pudu",
		UserType:    entity.UserTypeRecipient,
	})

	require.NoError(t, err)

	prefs, err := userRepo.GetPreferences(context.Background(), "uid-1")
	require.NoError(t, err)
	assert.Equal(t, PreferredPickupDistanceKm, prefs.PreferredPickupDistance)
}

func TestCompleteOnboardingRejectsMissingFields(t *testing.T) {
	uc, userRepo := newUserFixture()
	userRepo.users["uid-1"] = &entity.User{ID: "uid-1", Email: "a@example.com"}

	_, err := uc.CompleteOnboarding(context.Background(), "uid-1", OnboardingInput{
		Name:     "Amin",
		UserType: entity.UserTypeDonor,
	})
	assert.Error(t, err)
}

func TestCompleteOnboardingRejectsUnknownUserType(t *testing.T) {
	uc, userRepo := newUserFixture()
	userRepo.users["uid-1"] = &entity.User{ID: "uid-1", Email: "a@example.com"}

	_, err := uc.CompleteOnboarding(context.Background(), "uid-1", OnboardingInput{
		Name:        "Amin",
		PhoneNumber: "+60123456789",
		Address:     "Jalan Ampang",
		UserType:    "admin",
	})
	assert.Error(t, err)
}

func TestUpdateProfileKeepsUnsetFields(t *testing.T) {
	uc, userRepo := newUserFixture()
	seedUser(userRepo, "uid-1", entity.UserTypeDonor, nil, nil)

	user, err := uc.UpdateProfile(context.Background(), "uid-1", UpdateProfileInput{
		Address: "Jalan Baru",
	})

	require.NoError(t, err)
	assert.Equal(t, "Jalan Baru", user.Address)
	assert.Equal(t, "User uid-1", user.Name)
	assert.Equal(t, entity.UserTypeDonor, user.UserType)
}

func TestGetPreferencesDefaults(t *testing.T) {
	uc, _ := newUserFixture()

	prefs, err := uc.GetPreferences(context.Background(), "uid-1")

	require.NoError(t, err)
	assert.True(t, prefs.NotificationSettings.Email)
	assert.False(t, prefs.NotificationSettings.Push)
}

func TestUpdatePreferences(t *testing.T) {
	uc, userRepo := newUserFixture()
	seedUser(userRepo, "uid-1", entity.UserTypeRecipient, nil, nil)

	distance := 25
	prefs, err := uc.UpdatePreferences(context.Background(), "uid-1", UpdatePreferencesInput{
		NotificationSettings:    &entity.NotificationSettings{Email: false, SMS: true, Push: true},
		PreferredPickupDistance: &distance,
	})

	require.NoError(t, err)
	assert.False(t, prefs.NotificationSettings.Email)
	assert.True(t, prefs.NotificationSettings.Push)
	assert.Equal(t, 25, prefs.PreferredPickupDistance)
}

func TestUpdatePreferencesRejectsNonPositiveDistance(t *testing.T) {
	uc, userRepo := newUserFixture()
	seedUser(userRepo, "uid-1", entity.UserTypeRecipient, nil, nil)

	distance := 0
	_, err := uc.UpdatePreferences(context.Background(), "uid-1", UpdatePreferencesInput{
		PreferredPickupDistance: &distance,
	})
	assert.Error(t, err)
}
