package auth

import (
	"context"
	"errors"

	"miam/db"
	"miam/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// UserStore is the user directory. The mongo implementation leans on the
// unique username index, so Create is atomic insert-if-absent.
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	ByUsername(ctx context.Context, username string) (*models.User, error)
	UpdatePassword(ctx context.Context, username, passwordHash string) error
}

var Store UserStore = &mongoUserStore{}

type mongoUserStore struct{}

func (s *mongoUserStore) Create(ctx context.Context, user *models.User) error {
	_, err := db.UserCollection.InsertOne(ctx, user)
	if mongo.IsDuplicateKeyError(err) {
		return models.ErrConflict
	}
	return err
}

func (s *mongoUserStore) ByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := db.UserCollection.FindOne(ctx, bson.M{"username": username}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *mongoUserStore) UpdatePassword(ctx context.Context, username, passwordHash string) error {
	res, err := db.UserCollection.UpdateOne(ctx,
		bson.M{"username": username},
		bson.M{"$set": bson.M{"passwordHash": passwordHash}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}
