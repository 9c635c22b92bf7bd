package db

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	UserCollection      *mongo.Collection
	RecipeCollection    *mongo.Collection
	FavoritesCollection *mongo.Collection

	Client *mongo.Client
)

// Connect opens the client and binds the collections.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	opts := options.Client().ApplyURI(uri).SetServerAPIOptions(serverAPI)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, err
	}

	if err := client.Database("admin").RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err(); err != nil {
		return nil, err
	}

	Client = client
	mdb := client.Database("miamdb")
	FavoritesCollection = mdb.Collection("favorites")
	RecipeCollection = mdb.Collection("recipes")
	UserCollection = mdb.Collection("users")

	return client, nil
}

// EnsureIndexes installs the unique constraints the handlers rely on.
// Duplicate usernames, duplicate recipe names and duplicate favorite pairs
// are rejected by the store itself, never by a check-then-act in app code.
func EnsureIndexes(ctx context.Context) error {
	unique := options.Index().SetUnique(true)

	_, err := UserCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: unique,
	})
	if err != nil {
		return err
	}

	_, err = RecipeCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: unique,
	})
	if err != nil {
		return err
	}

	_, err = FavoritesCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "userid", Value: 1}, {Key: "recipeid", Value: 1}},
		Options: unique,
	})
	return err
}
