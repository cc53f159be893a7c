package usecase

import (
	"context"
	"sort"
	"time"

	"foodbridge/internal/domain/entity"
	"foodbridge/internal/domain/repository"
	"foodbridge/internal/domain/service"
	"foodbridge/internal/infrastructure/ratelimit"
	"foodbridge/pkg/errors"
	"foodbridge/pkg/utils"
)

const discoveryPageSize = 10

type DonationUseCase struct {
	donationRepo    repository.DonationRepository
	transactionRepo repository.TransactionRepository
	userRepo        repository.UserRepository
	categoryRepo    repository.CategoryRepository
	limiter         *ratelimit.RateLimiter
}

func NewDonationUseCase(
	donationRepo repository.DonationRepository,
	transactionRepo repository.TransactionRepository,
	userRepo repository.UserRepository,
	categoryRepo repository.CategoryRepository,
	limiter *ratelimit.RateLimiter,
) *DonationUseCase {
	return &DonationUseCase{
		donationRepo:    donationRepo,
		transactionRepo: transactionRepo,
		userRepo:        userRepo,
		categoryRepo:    categoryRepo,
		limiter:         limiter,
	}
}

type CreateDonationInput struct {
	CategoryID          int
	Title               string
	Description         string
	Quantity            float64
	Unit                string
	PreparedDate        *time.Time
	IsPerishable        bool
	StorageRequirements string
	ExpiryDate          time.Time
	PickupAddress       string
	PickupLatitude      *float64
	PickupLongitude     *float64
	PickupTimeStart     *time.Time
	PickupTimeEnd       *time.Time
	ImageURL            string
}

func (uc *DonationUseCase) CreateDonation(ctx context.Context, donorID string, input CreateDonationInput) (*entity.FoodDonation, error) {
	if allowed, _ := uc.limiter.Allow(donorID, "create_donation"); !allowed {
		return nil, errors.TooManyRequests("Too many new donations, slow down")
	}

	donor, err := uc.userRepo.GetByID(ctx, donorID)
	if err != nil {
		return nil, errors.NotFound("User", err)
	}
	if donor.UserType != entity.UserTypeDonor {
		return nil, errors.Forbidden("Only donors can create donations", nil)
	}

	if _, err := uc.categoryRepo.GetByID(ctx, input.CategoryID); err != nil {
		return nil, errors.BadRequest("Unknown food category", err)
	}

	if input.Quantity <= 0 {
		return nil, errors.BadRequest("Quantity must be positive", nil)
	}
	if !input.ExpiryDate.After(time.Now()) {
		return nil, errors.BadRequest("Expiry date must be in the future", nil)
	}
	if input.PreparedDate != nil && input.ExpiryDate.Before(*input.PreparedDate) {
		return nil, errors.BadRequest("Expiry date cannot precede the prepared date", nil)
	}
	if input.PickupTimeStart != nil && input.PickupTimeEnd != nil && !input.PickupTimeEnd.After(*input.PickupTimeStart) {
		return nil, errors.BadRequest("Pickup window end must be after its start", nil)
	}

	donation := &entity.FoodDonation{
		DonorID:             donorID,
		CategoryID:          input.CategoryID,
		Title:               input.Title,
		Description:         input.Description,
		Quantity:            input.Quantity,
		Unit:                input.Unit,
		PreparedDate:        input.PreparedDate,
		IsPerishable:        input.IsPerishable,
		StorageRequirements: input.StorageRequirements,
		ExpiryDate:          input.ExpiryDate,
		PickupAddress:       input.PickupAddress,
		PickupLatitude:      input.PickupLatitude,
		PickupLongitude:     input.PickupLongitude,
		PickupTimeStart:     input.PickupTimeStart,
		PickupTimeEnd:       input.PickupTimeEnd,
		Status:              entity.DonationStatusAvailable,
		ImageURL:            input.ImageURL,
	}

	if err := uc.donationRepo.Create(ctx, donation); err != nil {
		return nil, err
	}

	return donation, nil
}

type BrowseDonationsInput struct {
	CategoryID int
	RadiusKm   float64
	SortBy     string
	Page       int
}

// BrowseDonations lists available food near the recipient. The store
// cannot filter by distance, so every available listing is pulled,
// decorated with the distance from the recipient's saved location,
// filtered against the radius and paged in memory.
func (uc *DonationUseCase) BrowseDonations(ctx context.Context, recipientID string, input BrowseDonationsInput) ([]*entity.DonationWithDistance, int64, int, error) {
	recipient, err := uc.userRepo.GetByID(ctx, recipientID)
	if err != nil {
		return nil, 0, 0, errors.NotFound("User", err)
	}

	lat := recipient.LocationLatitude
	lon := recipient.LocationLongitude
	if lat == nil || lon == nil {
		fallbackLat := service.FallbackLatitude
		fallbackLon := service.FallbackLongitude
		lat = &fallbackLat
		lon = &fallbackLon
	}

	// Distance ordering happens after the distances are known; the
	// store sorts the rest and serves distance_asc by soonest expiry.
	storeSort := input.SortBy
	if storeSort == "distance_asc" {
		storeSort = "expiration_asc"
	}

	donations, err := uc.donationRepo.ListAvailable(ctx, input.CategoryID, storeSort)
	if err != nil {
		return nil, 0, 0, err
	}

	donorIDs := make([]string, 0, len(donations))
	for _, d := range donations {
		donorIDs = append(donorIDs, d.DonorID)
	}
	donors, err := uc.userRepo.GetByIDs(ctx, donorIDs)
	if err != nil {
		return nil, 0, 0, err
	}

	entries := make([]*entity.DonationWithDistance, 0, len(donations))
	for _, d := range donations {
		// Recipients never see their own listings.
		if d.DonorID == recipientID {
			continue
		}

		distance := service.DistanceTo(lat, lon, d.PickupLatitude, d.PickupLongitude)
		// A radius of 1000km or more means "no limit".
		if input.RadiusKm > 0 && input.RadiusKm < 1000 && distance > input.RadiusKm {
			continue
		}

		entry := &entity.DonationWithDistance{
			FoodDonation: *d,
			Donor:        donors[d.DonorID],
			DistanceKm:   &distance,
		}
		entries = append(entries, entry)
	}

	if input.SortBy == "distance_asc" {
		sort.SliceStable(entries, func(i, j int) bool {
			return *entries[i].DistanceKm < *entries[j].DistanceKm
		})
	}

	total := int64(len(entries))
	totalPages := utils.TotalPages(total, discoveryPageSize)

	page := input.Page
	if page <= 0 {
		page = 1
	}
	start := (page - 1) * discoveryPageSize
	if start >= len(entries) {
		return []*entity.DonationWithDistance{}, total, totalPages, nil
	}
	end := start + discoveryPageSize
	if end > len(entries) {
		end = len(entries)
	}

	return entries[start:end], total, totalPages, nil
}

func (uc *DonationUseCase) GetDonation(ctx context.Context, id string) (*entity.DonationWithDistance, error) {
	donation, err := uc.donationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	donor, err := uc.userRepo.GetByID(ctx, donation.DonorID)
	if err != nil {
		return nil, err
	}

	return &entity.DonationWithDistance{
		FoodDonation: *donation,
		Donor:        donor,
	}, nil
}

// ListMyDonations pages through a donor's own listings, each carrying
// the pickup requests still waiting on the donor's decision.
func (uc *DonationUseCase) ListMyDonations(ctx context.Context, donorID, status string, page, pageSize int) ([]*entity.DonationWithRequests, int64, error) {
	pagination := utils.NewPaginationParams(page, pageSize, discoveryPageSize)

	donations, total, err := uc.donationRepo.ListByDonorID(ctx, donorID, status, pagination.PageSize, pagination.Offset)
	if err != nil {
		return nil, 0, err
	}

	entries := make([]*entity.DonationWithRequests, 0, len(donations))
	for _, d := range donations {
		entry := &entity.DonationWithRequests{
			FoodDonation:    *d,
			PendingRequests: []*entity.PickupRequest{},
		}

		transactions, err := uc.transactionRepo.ListByDonationID(ctx, d.ID)
		if err != nil {
			return nil, 0, err
		}

		recipientIDs := make([]string, 0, len(transactions))
		for _, t := range transactions {
			if t.Status == entity.TransactionStatusRequested {
				recipientIDs = append(recipientIDs, t.RecipientID)
			}
		}
		recipients, err := uc.userRepo.GetByIDs(ctx, recipientIDs)
		if err != nil {
			return nil, 0, err
		}

		for _, t := range transactions {
			if t.Status != entity.TransactionStatusRequested {
				continue
			}
			entry.PendingRequests = append(entry.PendingRequests, &entity.PickupRequest{
				Transaction: *t,
				Recipient:   recipients[t.RecipientID],
			})
		}

		entries = append(entries, entry)
	}

	return entries, total, nil
}

type UpdateDonationInput struct {
	CategoryID          int
	Title               string
	Description         string
	Quantity            float64
	Unit                string
	PreparedDate        *time.Time
	IsPerishable        *bool
	StorageRequirements string
	ExpiryDate          *time.Time
	PickupAddress       string
	PickupLatitude      *float64
	PickupLongitude     *float64
	PickupTimeStart     *time.Time
	PickupTimeEnd       *time.Time
	ImageURL            string
}

func (uc *DonationUseCase) UpdateDonation(ctx context.Context, donorID, donationID string, input UpdateDonationInput) (*entity.FoodDonation, error) {
	donation, err := uc.donationRepo.GetByID(ctx, donationID)
	if err != nil {
		return nil, err
	}

	if donation.DonorID != donorID {
		return nil, errors.Forbidden("You don't own this donation", nil)
	}
	if !donation.IsActive() {
		return nil, errors.BadRequest("Only active donations can be edited", nil)
	}

	if input.CategoryID > 0 {
		if _, err := uc.categoryRepo.GetByID(ctx, input.CategoryID); err != nil {
			return nil, errors.BadRequest("Unknown food category", err)
		}
		donation.CategoryID = input.CategoryID
	}
	if input.Title != "" {
		donation.Title = input.Title
	}
	if input.Description != "" {
		donation.Description = input.Description
	}
	if input.Quantity > 0 {
		donation.Quantity = input.Quantity
	}
	if input.Unit != "" {
		donation.Unit = input.Unit
	}
	if input.PreparedDate != nil {
		donation.PreparedDate = input.PreparedDate
	}
	if input.IsPerishable != nil {
		donation.IsPerishable = *input.IsPerishable
	}
	if input.StorageRequirements != "" {
		donation.StorageRequirements = input.StorageRequirements
	}
	if input.ExpiryDate != nil {
		if !input.ExpiryDate.After(time.Now()) {
			return nil, errors.BadRequest("Expiry date must be in the future", nil)
		}
		donation.ExpiryDate = *input.ExpiryDate
	}
	if input.PickupAddress != "" {
		donation.PickupAddress = input.PickupAddress
	}
	if input.PickupLatitude != nil && input.PickupLongitude != nil {
		donation.PickupLatitude = input.PickupLatitude
		donation.PickupLongitude = input.PickupLongitude
	}
	if input.PickupTimeStart != nil {
		donation.PickupTimeStart = input.PickupTimeStart
	}
	if input.PickupTimeEnd != nil {
		donation.PickupTimeEnd = input.PickupTimeEnd
	}
	if input.ImageURL != "" {
		donation.ImageURL = input.ImageURL
	}

	// The merged record must still hold together, whichever side of
	// the window or date pair the update touched.
	if donation.PreparedDate != nil && donation.ExpiryDate.Before(*donation.PreparedDate) {
		return nil, errors.BadRequest("Expiry date cannot precede the prepared date", nil)
	}
	if donation.PickupTimeStart != nil && donation.PickupTimeEnd != nil && !donation.PickupTimeEnd.After(*donation.PickupTimeStart) {
		return nil, errors.BadRequest("Pickup window end must be after its start", nil)
	}

	if err := uc.donationRepo.Update(ctx, donation); err != nil {
		return nil, err
	}

	return donation, nil
}

// CancelDonation pulls an unclaimed listing off the board.
func (uc *DonationUseCase) CancelDonation(ctx context.Context, donorID, donationID string) (*entity.FoodDonation, error) {
	donation, err := uc.donationRepo.GetByID(ctx, donationID)
	if err != nil {
		return nil, err
	}

	if donation.DonorID != donorID {
		return nil, errors.Forbidden("You don't own this donation", nil)
	}
	if donation.Status != entity.DonationStatusAvailable && donation.Status != entity.DonationStatusPending {
		return nil, errors.BadRequest("Only available or pending donations can be cancelled", nil)
	}

	donation.Status = entity.DonationStatusExpired

	if err := uc.donationRepo.Update(ctx, donation); err != nil {
		return nil, err
	}

	return donation, nil
}

// DeleteDonation tombstones a listing instead of removing the row, so
// completed transactions keep a valid reference. Only available
// listings can be deleted; anything further along either has a pickup
// in flight or is part of transaction history.
func (uc *DonationUseCase) DeleteDonation(ctx context.Context, donorID, donationID string) error {
	donation, err := uc.donationRepo.GetByID(ctx, donationID)
	if err != nil {
		return err
	}

	if donation.DonorID != donorID {
		return errors.Forbidden("You don't own this donation", nil)
	}
	if donation.Status != entity.DonationStatusAvailable {
		return errors.BadRequest("Only available donations can be deleted", nil)
	}

	transactions, err := uc.transactionRepo.ListByDonationID(ctx, donationID)
	if err != nil {
		return err
	}
	for _, t := range transactions {
		if t.IsActive() {
			return errors.Conflict("Donation has an active pickup request")
		}
	}

	donation.Status = entity.DonationStatusExpired
	donation.Title = "[DELETED] " + time.Now().Format("2006-01-02")
	donation.Description = "This donation has been removed by the donor."

	return uc.donationRepo.Update(ctx, donation)
}
