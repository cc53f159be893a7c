package entity

import (
	"time"
)

const (
	TransactionStatusRequested = "requested"
	TransactionStatusConfirmed = "confirmed"
	TransactionStatusCompleted = "completed"
	TransactionStatusRejected  = "rejected"
	TransactionStatusCancelled = "canceled"
)

type Transaction struct {
	ID          string `json:"id" firestore:"id"`
	DonationID  string `json:"donation_id" firestore:"donationId"`
	DonorID     string `json:"donor_id" firestore:"donorId"`
	RecipientID string `json:"recipient_id" firestore:"recipientId"`
	Status      string `json:"status" firestore:"status"`

	PickupTime       *time.Time `json:"pickup_time,omitempty" firestore:"pickupTime,omitempty"`
	ActualPickupTime *time.Time `json:"actual_pickup_time,omitempty" firestore:"actualPickupTime,omitempty"`

	Notes string `json:"notes,omitempty" firestore:"notes,omitempty"`

	DonorRating       *int   `json:"donor_rating,omitempty" firestore:"donorRating,omitempty"`
	RecipientRating   *int   `json:"recipient_rating,omitempty" firestore:"recipientRating,omitempty"`
	DonorFeedback     string `json:"donor_feedback,omitempty" firestore:"donorFeedback,omitempty"`
	RecipientFeedback string `json:"recipient_feedback,omitempty" firestore:"recipientFeedback,omitempty"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

// IsActive reports whether the pickup is still in flight. Active
// transactions block tombstoning of the underlying listing.
func (t *Transaction) IsActive() bool {
	return t.Status == TransactionStatusRequested || t.Status == TransactionStatusConfirmed
}

// TransactionDetail joins the related listing and counterpart profiles
// for list and detail responses.
type TransactionDetail struct {
	Transaction
	Donation  *FoodDonation `json:"donation,omitempty" firestore:"-"`
	Donor     *User         `json:"donor,omitempty" firestore:"-"`
	Recipient *User         `json:"recipient,omitempty" firestore:"-"`
}
