package usecase

import (
	"context"
	"time"

	"foodbridge/internal/domain/entity"
	"foodbridge/internal/domain/repository"
	"foodbridge/pkg/errors"
)

// PreferredPickupDistanceKm is the default search radius granted to
// recipients when they finish onboarding.
const PreferredPickupDistanceKm = 10

type UserUseCase struct {
	userRepo     repository.UserRepository
	firebaseAuth FirebaseAuthClient
}

func NewUserUseCase(userRepo repository.UserRepository, firebaseAuth FirebaseAuthClient) *UserUseCase {
	return &UserUseCase{
		userRepo:     userRepo,
		firebaseAuth: firebaseAuth,
	}
}

type OnboardingInput struct {
	Name             string
	OrganizationName string
	PhoneNumber      string
	Address          string
	UserType         string
	Latitude         *float64
	Longitude        *float64
}

type OnboardingStatus struct {
	Complete bool         `json:"complete"`
	Profile  *entity.User `json:"profile"`
}

// GetOnboardingStatus reports whether the caller has a complete
// profile. A missing profile row is created on the spot so a fresh
// identity-platform account always has a place to write to.
func (uc *UserUseCase) GetOnboardingStatus(ctx context.Context, userID, email string) (*OnboardingStatus, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, "NOT_FOUND") {
			return nil, err
		}

		now := time.Now()
		user = &entity.User{
			ID:        userID,
			Email:     email,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := uc.userRepo.Create(ctx, user); err != nil {
			return nil, err
		}
	}

	return &OnboardingStatus{
		Complete: user.IsComplete(),
		Profile:  user,
	}, nil
}

// CompleteOnboarding fills in the identity fields and seeds the
// default preferences for the chosen role.
func (uc *UserUseCase) CompleteOnboarding(ctx context.Context, userID string, input OnboardingInput) (*entity.User, error) {
	if input.UserType != entity.UserTypeDonor && input.UserType != entity.UserTypeRecipient {
		return nil, errors.BadRequest("User type must be donor or recipient", nil)
	}

	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, errors.NotFound("User", err)
	}

	user.Name = input.Name
	user.OrganizationName = input.OrganizationName
	user.PhoneNumber = input.PhoneNumber
	user.Address = input.Address
	user.UserType = input.UserType
	if input.Latitude != nil && input.Longitude != nil {
		user.LocationLatitude = input.Latitude
		user.LocationLongitude = input.Longitude
	}
	user.UpdatedAt = time.Now()

	if !user.IsComplete() {
		return nil, errors.BadRequest("Name, phone number, address and user type are required", nil)
	}

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	prefs := &entity.UserPreferences{
		UserID: userID,
		NotificationSettings: entity.NotificationSettings{
			Email: true,
			SMS:   true,
			Push:  false,
		},
	}
	if input.UserType == entity.UserTypeRecipient {
		prefs.PreferredPickupDistance = PreferredPickupDistanceKm
	}

	if err := uc.userRepo.SetPreferences(ctx, prefs); err != nil {
		return nil, err
	}

	return user, nil
}

type UpdateProfileInput struct {
	Name             string
	OrganizationName string
	PhoneNumber      string
	Address          string
	Latitude         *float64
	Longitude        *float64
}

func (uc *UserUseCase) UpdateProfile(ctx context.Context, userID string, input UpdateProfileInput) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, errors.NotFound("User", err)
	}

	if input.Name != "" {
		user.Name = input.Name
	}
	if input.OrganizationName != "" {
		user.OrganizationName = input.OrganizationName
	}
	if input.PhoneNumber != "" {
		user.PhoneNumber = input.PhoneNumber
	}
	if input.Address != "" {
		user.Address = input.Address
	}
	if input.Latitude != nil && input.Longitude != nil {
		user.LocationLatitude = input.Latitude
		user.LocationLongitude = input.Longitude
	}

	user.UpdatedAt = time.Now()

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Internal("Failed to update user profile", err)
	}

	return user, nil
}

func (uc *UserUseCase) GetUserProfile(ctx context.Context, userID string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, errors.NotFound("User", err)
	}

	return user, nil
}

func (uc *UserUseCase) GetPreferences(ctx context.Context, userID string) (*entity.UserPreferences, error) {
	prefs, err := uc.userRepo.GetPreferences(ctx, userID)
	if err != nil {
		if errors.Is(err, "NOT_FOUND") {
			return &entity.UserPreferences{
				UserID: userID,
				NotificationSettings: entity.NotificationSettings{
					Email: true,
					SMS:   true,
					Push:  false,
				},
			}, nil
		}
		return nil, err
	}

	return prefs, nil
}

type UpdatePreferencesInput struct {
	NotificationSettings    *entity.NotificationSettings
	PreferredPickupDistance *int
}

func (uc *UserUseCase) UpdatePreferences(ctx context.Context, userID string, input UpdatePreferencesInput) (*entity.UserPreferences, error) {
	prefs, err := uc.GetPreferences(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.NotificationSettings != nil {
		prefs.NotificationSettings = *input.NotificationSettings
	}
	if input.PreferredPickupDistance != nil {
		if *input.PreferredPickupDistance <= 0 {
			return nil, errors.BadRequest("Preferred pickup distance must be positive", nil)
		}
		prefs.PreferredPickupDistance = *input.PreferredPickupDistance
	}

	if err := uc.userRepo.SetPreferences(ctx, prefs); err != nil {
		return nil, err
	}

	return prefs, nil
}

func (uc *UserUseCase) UpdatePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return errors.NotFound("User", err)
	}

	_, _, err = uc.firebaseAuth.SignInWithEmailPassword(ctx, user.Email, currentPassword)
	if err != nil {
		return errors.Unauthorized("Current password is incorrect", err)
	}

	if err := uc.firebaseAuth.UpdateUserPassword(ctx, userID, newPassword); err != nil {
		return errors.Internal("Failed to update password", err)
	}

	return nil
}
