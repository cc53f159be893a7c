package entity

// FoodCategory is a fixed lookup row. The catalog is seeded once and
// read-only at runtime.
type FoodCategory struct {
	ID          int    `json:"id" firestore:"id"`
	Name        string `json:"name" firestore:"name"`
	Description string `json:"description,omitempty" firestore:"description,omitempty"`
	Icon        string `json:"icon,omitempty" firestore:"icon,omitempty"`
}
