package service

import (
	"math"
	"strings"
	"time"

	"foodbridge/internal/domain/entity"

	"github.com/google/uuid"
)

// Unit to kilogram conversion factors. Unknown units count as 1:1.
var unitToKg = map[string]float64{
	"kg":       1.0,
	"items":    0.3,
	"portions": 0.3,
	"servings": 0.3,
	"liters":   1.0,
	"packages": 0.5,
}

// CO2 avoided per kilogram of food rescued, by category.
var co2PerKg = map[int]float64{
	1:  2.2,
	2:  0.8,
	3:  0.5,
	4:  0.4,
	5:  1.8,
	6:  1.1,
	7:  0.7,
	8:  6.5,
	9:  5.4,
	10: 2.2,
}

const defaultCO2PerKg = 1.5

// Meals provided per kilogram, by category.
var mealsPerKg = map[int]float64{
	1:  1.5,
	2:  2.0,
	3:  1.5,
	4:  1.8,
	5:  3.5,
	6:  2.5,
	7:  3.0,
	8:  2.5,
	9:  2.0,
	10: 2.2,
}

const defaultMealsPerKg = 2.0

// Estimated retail value in MYR per kilogram, by category.
var valuePerKg = map[int]float64{
	1:  25.50,
	2:  18.00,
	3:  30.00,
	4:  25.00,
	5:  40.00,
	6:  15.00,
	7:  12.00,
	8:  55.00,
	9:  65.00,
	10: 35.00,
}

const defaultValuePerKg = 20.00

// ToKilograms converts a listed quantity to kilograms. Units are
// matched case-insensitively; a non-positive quantity weighs nothing.
func ToKilograms(quantity float64, unit string) float64 {
	if quantity <= 0 {
		return 0
	}
	factor, ok := unitToKg[strings.ToLower(unit)]
	if !ok {
		factor = 1.0
	}
	return quantity * factor
}

func CO2Saved(kg float64, categoryID int) float64 {
	factor, ok := co2PerKg[categoryID]
	if !ok {
		factor = defaultCO2PerKg
	}
	return kg * factor
}

func MealsProvided(kg float64, categoryID int) int {
	factor, ok := mealsPerKg[categoryID]
	if !ok {
		factor = defaultMealsPerKg
	}
	return int(math.Round(kg * factor))
}

func EstimatedValue(kg float64, categoryID int) float64 {
	factor, ok := valuePerKg[categoryID]
	if !ok {
		factor = defaultValuePerKg
	}
	return kg * factor
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ComputeImpact derives the metrics row for a completed pickup from
// its listing. Weight, CO2 and value are rounded to two decimals.
func ComputeImpact(transactionID string, donation *entity.FoodDonation, now time.Time) *entity.ImpactMetrics {
	kg := ToKilograms(donation.Quantity, donation.Unit)
	return &entity.ImpactMetrics{
		ID:               uuid.New().String(),
		TransactionID:    transactionID,
		FoodSavedKg:      round2(kg),
		CO2SavedKg:       round2(CO2Saved(kg, donation.CategoryID)),
		MealsProvided:    MealsProvided(kg, donation.CategoryID),
		EstimatedValueMY: round2(EstimatedValue(kg, donation.CategoryID)),
		CreatedAt:        now,
	}
}
