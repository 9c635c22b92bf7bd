package seed

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"time"

	"miam/db"
	"miam/models"
	"miam/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Record mirrors one entry of the seed file. Only name, ingredients,
// quantity and description are required; everything else has defaults.
type Record struct {
	Name         string `json:"name"`
	Ingredients  string `json:"ingredients"`
	Quantity     string `json:"quantity"`
	Description  string `json:"description"`
	Type         string `json:"type"`
	IsVegan      bool   `json:"is_vegan"`
	IsVegetarian bool   `json:"is_vegetarian"`
	HealthScore  int    `json:"health_score"`
	EaseScore    int    `json:"ease_score"`
	CostScore    int    `json:"cost_score"`
	EcoScore     int    `json:"eco_score"`
	Allergens    string `json:"allergens"`
}

func Load(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// Normalize fills a catalog recipe from a seed record: missing scores take
// the midpoint 3, out-of-range scores are clamped into [1,5], missing type
// defaults to "main", and the image path is derived from the name.
func Normalize(rec Record) models.Recipe {
	if rec.Type == "" {
		rec.Type = "main"
	}
	return models.Recipe{
		RecipeID:     uuid.NewString(),
		Name:         rec.Name,
		Ingredients:  rec.Ingredients,
		Quantity:     rec.Quantity,
		Description:  rec.Description,
		Type:         rec.Type,
		IsVegan:      rec.IsVegan,
		IsVegetarian: rec.IsVegetarian,
		HealthScore:  normalizeScore(rec.HealthScore),
		EaseScore:    normalizeScore(rec.EaseScore),
		CostScore:    normalizeScore(rec.CostScore),
		EcoScore:     normalizeScore(rec.EcoScore),
		Allergens:    rec.Allergens,
		Image:        models.ImagePath(rec.Name),
		CreatedAt:    time.Now().Unix(),
	}
}

func normalizeScore(v int) int {
	switch {
	case v == 0:
		return 3
	case v < 1:
		return 1
	case v > 5:
		return 5
	}
	return v
}

// Run seeds the recipe catalog from path. Each record is inserted only if
// no recipe with that exact name exists; the $setOnInsert upsert makes that
// decision atomic at the store. Existing records are never touched.
func Run(ctx context.Context, path, imageDir string) error {
	records, err := Load(path)
	if err != nil {
		return err
	}

	seeded := 0
	for _, rec := range records {
		if rec.Name == "" {
			continue
		}
		recipe := Normalize(rec)

		res, err := db.RecipeCollection.UpdateOne(ctx,
			bson.M{"name": recipe.Name},
			bson.M{"$setOnInsert": recipe},
			options.Update().SetUpsert(true),
		)
		if err != nil {
			return err
		}
		if res.UpsertedCount == 0 {
			continue
		}
		seeded++

		if err := utils.GenerateThumbnail(imageDir, recipe.Image); err != nil {
			log.Printf("thumbnail for %s: %v", recipe.Name, err)
		}
	}

	log.Printf("Seeded %d new recipes from %s", seeded, path)
	return nil
}
