package favorites

import (
	"context"
	"net/http"
	"time"

	"miam/db"
	"miam/models"
	"miam/mq"
	"miam/render"
	"miam/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// FavoriteStore manages the (user, recipe) association set. Add and Remove
// report whether they changed anything; the duplicate and absent cases are
// no-ops with distinct outcome messages, not errors.
type FavoriteStore interface {
	Add(ctx context.Context, userID, recipeID string) (bool, error)
	Remove(ctx context.Context, userID, recipeID string) (bool, error)
	List(ctx context.Context, userID string) ([]string, error)
}

// RecipeChecker answers whether a recipe exists before it can be favorited.
type RecipeChecker interface {
	Exists(ctx context.Context, recipeID string) (bool, error)
}

var (
	Store   FavoriteStore = &mongoFavoriteStore{}
	Recipes RecipeChecker = &mongoRecipeChecker{}
)

type mongoFavoriteStore struct{}

// Add relies on the unique (userid, recipeid) index: a duplicate insert is
// rejected atomically by the store and surfaces as the no-op outcome.
func (s *mongoFavoriteStore) Add(ctx context.Context, userID, recipeID string) (bool, error) {
	_, err := db.FavoritesCollection.InsertOne(ctx, models.Favorite{
		UserID:    userID,
		RecipeID:  recipeID,
		CreatedAt: time.Now().Unix(),
	})
	if mongo.IsDuplicateKeyError(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *mongoFavoriteStore) Remove(ctx context.Context, userID, recipeID string) (bool, error) {
	res, err := db.FavoritesCollection.DeleteOne(ctx, bson.M{"userid": userID, "recipeid": recipeID})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

func (s *mongoFavoriteStore) List(ctx context.Context, userID string) ([]string, error) {
	cursor, err := db.FavoritesCollection.Find(ctx, bson.M{"userid": userID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var favs []models.Favorite
	if err := cursor.All(ctx, &favs); err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(favs))
	for _, f := range favs {
		ids = append(ids, f.RecipeID)
	}
	return ids, nil
}

type mongoRecipeChecker struct{}

func (c *mongoRecipeChecker) Exists(ctx context.Context, recipeID string) (bool, error) {
	n, err := db.RecipeCollection.CountDocuments(ctx, bson.M{"recipeid": recipeID})
	return n > 0, err
}

// AddToFavorites handles POST /add_to_favorites/:id.
func AddToFavorites(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := utils.GetUserIDFromContext(r.Context())
	recipeID := ps.ByName("id")

	ok, err := Recipes.Exists(r.Context(), recipeID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !ok {
		render.Fail(w, r, models.ErrNotFound, "/")
		return
	}

	added, err := Store.Add(r.Context(), userID, recipeID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	msg := "Added to favorites"
	if !added {
		msg = "Already in favorites"
	} else {
		mq.Emit("favorite-added", mq.Index{EntityType: "favorite", Method: "POST", EntityId: userID, ItemId: recipeID, ItemType: "recipe"})
	}
	render.Redirect(w, r, "/recipe/"+recipeID, msg)
}

// RemoveFromFavorites handles POST /remove_from_favorites/:id.
func RemoveFromFavorites(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := utils.GetUserIDFromContext(r.Context())
	recipeID := ps.ByName("id")

	removed, err := Store.Remove(r.Context(), userID, recipeID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	msg := "Removed from favorites"
	if !removed {
		msg = "Not in favorites"
	} else {
		mq.Emit("favorite-removed", mq.Index{EntityType: "favorite", Method: "DELETE", EntityId: userID, ItemId: recipeID, ItemType: "recipe"})
	}
	render.Redirect(w, r, "/favorites", msg)
}

// ListFavorites handles GET /favorites.
func ListFavorites(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromContext(r.Context())

	ids, err := Store.List(r.Context(), userID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	recipes := []models.Recipe{}
	if len(ids) > 0 {
		cursor, err := db.RecipeCollection.Find(r.Context(), bson.M{"recipeid": bson.M{"$in": ids}})
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		defer cursor.Close(r.Context())
		if err := cursor.All(r.Context(), &recipes); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	}

	render.View(w, "favorites", utils.M{
		"recipes":  recipes,
		"username": utils.GetUsernameFromContext(r.Context()),
		"flash":    render.TakeFlash(w, r),
	})
}
