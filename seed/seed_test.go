package seed

import (
	"os"
	"path/filepath"
	"testing"

	"miam/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recipes.json")
	data := `[
		{"name": "Tomato Soup", "ingredients": "tomatoes", "quantity": "4", "description": "soup", "type": "starter", "is_vegan": true, "health_score": 5},
		{"name": "Chocolate Mousse", "ingredients": "chocolate, eggs", "quantity": "200g", "description": "mousse", "type": "dessert", "is_vegetarian": true, "allergens": "eggs"}
	]`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	records, err := Load(path)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Tomato Soup", records[0].Name)
	assert.True(t, records[0].IsVegan)
	assert.False(t, records[0].IsVegetarian)
	assert.Equal(t, "eggs", records[1].Allergens)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestNormalizeDefaults(t *testing.T) {
	recipe := Normalize(Record{Name: "Plain Rice", Ingredients: "rice", Quantity: "200g", Description: "rice"})

	assert.NotEmpty(t, recipe.RecipeID)
	assert.Equal(t, "main", recipe.Type)
	// Missing scores take the midpoint of the closed [1,5] range.
	assert.Equal(t, 3, recipe.HealthScore)
	assert.Equal(t, 3, recipe.EaseScore)
	assert.Equal(t, 3, recipe.CostScore)
	assert.Equal(t, 3, recipe.EcoScore)
	assert.Equal(t, "plain_rice.jpg", recipe.Image)
}

func TestNormalizeClampsScores(t *testing.T) {
	recipe := Normalize(Record{Name: "X", HealthScore: 9, EaseScore: -2, CostScore: 1, EcoScore: 5})
	assert.Equal(t, 5, recipe.HealthScore)
	assert.Equal(t, 1, recipe.EaseScore)
	assert.Equal(t, 1, recipe.CostScore)
	assert.Equal(t, 5, recipe.EcoScore)
}

func TestImagePathDerivation(t *testing.T) {
	assert.Equal(t, "beef_bourguignon.jpg", models.ImagePath("Beef Bourguignon"))
	assert.Equal(t, "fruit_salad.jpg", models.ImagePath("Fruit Salad"))
	assert.Equal(t, "soup.jpg", models.ImagePath("Soup"))
}
