package recipes

import (
	"context"
	"errors"
	"net/http"

	"miam/db"
	"miam/models"
	"miam/render"
	"miam/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// GetRecipes handles GET /: the filtered catalog listing.
func GetRecipes(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	criteria := ParseCriteria(r.URL.Query())

	cursor, err := db.RecipeCollection.Find(r.Context(), criteria.BuildQuery())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	defer cursor.Close(r.Context())

	var recipes []models.Recipe
	if err = cursor.All(r.Context(), &recipes); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if len(recipes) == 0 {
		recipes = []models.Recipe{}
	}

	render.View(w, "home", utils.M{
		"recipes":  recipes,
		"username": utils.GetUsernameFromContext(r.Context()),
		"flash":    render.TakeFlash(w, r),
	})
}

// GetRecipe handles GET /recipe/:id.
func GetRecipe(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	recipe, err := ByID(r.Context(), ps.ByName("id"))
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			render.Fail(w, r, models.ErrNotFound, "/")
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	render.View(w, "recipe", utils.M{
		"recipe":   recipe,
		"username": utils.GetUsernameFromContext(r.Context()),
		"flash":    render.TakeFlash(w, r),
	})
}

// ByID looks a single recipe up, ErrNotFound when absent.
func ByID(ctx context.Context, id string) (*models.Recipe, error) {
	var recipe models.Recipe
	err := db.RecipeCollection.FindOne(ctx, bson.M{"recipeid": id}).Decode(&recipe)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}
