package entity

import (
	"time"
)

const (
	DonationStatusAvailable = "available"
	DonationStatusPending   = "pending"
	DonationStatusClaimed   = "claimed"
	DonationStatusCompleted = "completed"
	DonationStatusExpired   = "expired"
)

type FoodDonation struct {
	ID          string `json:"id" firestore:"id"`
	DonorID     string `json:"donor_id" firestore:"donorId"`
	CategoryID  int    `json:"category_id" firestore:"categoryId"`
	Title       string `json:"title" firestore:"title"`
	Description string `json:"description,omitempty" firestore:"description,omitempty"`

	Quantity float64 `json:"quantity" firestore:"quantity"`
	Unit     string  `json:"unit" firestore:"unit"`

	PreparedDate        *time.Time `json:"prepared_date,omitempty" firestore:"preparedDate,omitempty"`
	IsPerishable        bool       `json:"is_perishable" firestore:"isPerishable"`
	StorageRequirements string     `json:"storage_requirements,omitempty" firestore:"storageRequirements,omitempty"`

	ExpiryDate    time.Time `json:"expiry_date" firestore:"expiryDate"`
	PickupAddress string    `json:"pickup_address" firestore:"pickupAddress"`

	PickupLatitude  *float64 `json:"pickup_latitude,omitempty" firestore:"pickupLatitude,omitempty"`
	PickupLongitude *float64 `json:"pickup_longitude,omitempty" firestore:"pickupLongitude,omitempty"`

	PickupTimeStart *time.Time `json:"pickup_time_start,omitempty" firestore:"pickupTimeStart,omitempty"`
	PickupTimeEnd   *time.Time `json:"pickup_time_end,omitempty" firestore:"pickupTimeEnd,omitempty"`

	Status string `json:"status" firestore:"status"`

	ImageURL string `json:"image_url,omitempty" firestore:"imageURL,omitempty"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

// IsActive reports whether the listing still holds inventory that a
// recipient could claim.
func (d *FoodDonation) IsActive() bool {
	return d.Status == DonationStatusAvailable || d.Status == DonationStatusPending
}

// DonationWithDistance decorates a listing with the distance from the
// browsing recipient, in kilometers.
type DonationWithDistance struct {
	FoodDonation
	Donor      *User    `json:"donor,omitempty" firestore:"-"`
	DistanceKm *float64 `json:"distance_km,omitempty" firestore:"-"`
}

// DonationWithRequests is the donor's management view of a listing,
// carrying any pickup requests still waiting on a decision.
type DonationWithRequests struct {
	FoodDonation
	PendingRequests []*PickupRequest `json:"pending_requests" firestore:"-"`
}

// PickupRequest pairs a waiting transaction with the recipient who
// filed it.
type PickupRequest struct {
	Transaction
	Recipient *User `json:"recipient,omitempty" firestore:"-"`
}
