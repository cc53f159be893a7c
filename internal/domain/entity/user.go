package entity

import (
	"time"
)

const (
	UserTypeDonor     = "donor"
	UserTypeRecipient = "recipient"
)

type User struct {
	ID               string `json:"id" firestore:"id"`
	Email            string `json:"email" firestore:"email"`
	Name             string `json:"name" firestore:"name"`
	OrganizationName string `json:"organization_name,omitempty" firestore:"organizationName,omitempty"`
	PhoneNumber      string `json:"phone_number" firestore:"phoneNumber"`
	Address          string `json:"address" firestore:"address"`
	UserType         string `json:"user_type" firestore:"userType"`

	LocationLatitude  *float64 `json:"location_latitude,omitempty" firestore:"locationLatitude,omitempty"`
	LocationLongitude *float64 `json:"location_longitude,omitempty" firestore:"locationLongitude,omitempty"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

// IsComplete reports whether the profile clears the onboarding gate.
// All four identity fields must be filled in before the account can
// participate in the marketplace.
func (u *User) IsComplete() bool {
	return u.Name != "" && u.PhoneNumber != "" && u.Address != "" && u.UserType != ""
}

type NotificationSettings struct {
	Email bool `json:"email" firestore:"email"`
	SMS   bool `json:"sms" firestore:"sms"`
	Push  bool `json:"push" firestore:"push"`
}

type UserPreferences struct {
	UserID                  string               `json:"user_id" firestore:"userId"`
	NotificationSettings    NotificationSettings `json:"notification_settings" firestore:"notificationSettings"`
	PreferredPickupDistance int                  `json:"preferred_pickup_distance,omitempty" firestore:"preferredPickupDistance,omitempty"`
	UpdatedAt               time.Time            `json:"updated_at" firestore:"updatedAt"`
}
