package entity

import (
	"time"
)

// ImpactMetrics records the environmental and social impact of one
// completed pickup. A transaction carries at most one metrics row.
type ImpactMetrics struct {
	ID            string `json:"id" firestore:"id"`
	TransactionID string `json:"transaction_id" firestore:"transactionId"`

	FoodSavedKg      float64 `json:"food_saved_kg" firestore:"foodSavedKg"`
	CO2SavedKg       float64 `json:"co2_saved_kg" firestore:"co2SavedKg"`
	MealsProvided    int     `json:"meals_provided" firestore:"mealsProvided"`
	EstimatedValueMY float64 `json:"estimated_value_myr" firestore:"estimatedValueMYR"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}

// ImpactSummary aggregates metrics across a set of transactions.
type ImpactSummary struct {
	FoodSavedKg      float64 `json:"food_saved_kg"`
	CO2SavedKg       float64 `json:"co2_saved_kg"`
	MealsProvided    int     `json:"meals_provided"`
	EstimatedValueMY float64 `json:"estimated_value_myr"`
}

func (s *ImpactSummary) Add(m *ImpactMetrics) {
	s.FoodSavedKg += m.FoodSavedKg
	s.CO2SavedKg += m.CO2SavedKg
	s.MealsProvided += m.MealsProvided
	s.EstimatedValueMY += m.EstimatedValueMY
}
