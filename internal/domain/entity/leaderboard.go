package entity

// LeaderboardEntry is one row of the community impact ranking,
// aggregated from completed transactions and their metrics.
type LeaderboardEntry struct {
	UserID           string  `json:"user_id" firestore:"userId"`
	Name             string  `json:"name" firestore:"name"`
	OrganizationName string  `json:"organization_name,omitempty" firestore:"organizationName,omitempty"`
	UserType         string  `json:"user_type" firestore:"userType"`
	CO2SavedKg       float64 `json:"co2_saved_kg" firestore:"co2SavedKg"`
	TransactionCount int     `json:"transaction_count" firestore:"transactionCount"`

	Rank     int     `json:"rank"`
	Medal    string  `json:"medal,omitempty"`
	Progress float64 `json:"progress"`
}
