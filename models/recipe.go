package models

import "strings"

// Recipe is seeded once at startup and never mutated afterwards.
// The two diet flags are independent: vegan does not imply vegetarian.
type Recipe struct {
	RecipeID     string `bson:"recipeid" json:"recipeid"`
	Name         string `bson:"name" json:"name"`
	Ingredients  string `bson:"ingredients" json:"ingredients"`
	Quantity     string `bson:"quantity" json:"quantity"`
	Description  string `bson:"description" json:"description"`
	Type         string `bson:"type" json:"type"`
	IsVegan      bool   `bson:"isVegan" json:"isVegan"`
	IsVegetarian bool   `bson:"isVegetarian" json:"isVegetarian"`
	HealthScore  int    `bson:"healthScore" json:"healthScore"`
	EaseScore    int    `bson:"easeScore" json:"easeScore"`
	CostScore    int    `bson:"costScore" json:"costScore"`
	EcoScore     int    `bson:"ecoScore" json:"ecoScore"`
	Allergens    string `bson:"allergens" json:"allergens"`
	Image        string `bson:"image" json:"image"`
	CreatedAt    int64  `bson:"createdAt" json:"createdAt"`
}

// Favorite is one (user, recipe) pair. A unique compound index on
// (userid, recipeid) makes inserts idempotent at the store.
type Favorite struct {
	UserID    string `bson:"userid" json:"userid"`
	RecipeID  string `bson:"recipeid" json:"recipeid"`
	CreatedAt int64  `bson:"createdAt" json:"createdAt"`
}

// ImagePath derives the picture filename from the recipe name.
func ImagePath(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "_") + ".jpg"
}
