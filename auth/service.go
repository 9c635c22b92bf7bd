package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"time"

	"miam/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// bcrypt is deliberately slow; tests drop the cost to the minimum.
var hashCost = bcrypt.DefaultCost

func registerUser(ctx context.Context, store UserStore, username, password, a1, a2, a3 string) (*models.User, error) {
	if !ValidatePassword(password) {
		return nil, models.ErrInvalidPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), hashCost)
	if err != nil {
		return nil, err
	}
	user := &models.User{
		UserID:       uuid.NewString(),
		Username:     username,
		PasswordHash: string(hash),
		Answer1:      a1,
		Answer2:      a2,
		Answer3:      a3,
		CreatedAt:    time.Now().Unix(),
	}
	if err := store.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func authenticateUser(ctx context.Context, store UserStore, username, password string) (*models.User, error) {
	user, err := store.ByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, models.ErrInvalidCredentials
	}
	return user, nil
}

// verifyRecovery checks the three answers verbatim, case-sensitive, all
// required. One mismatch fails the whole check.
func verifyRecovery(ctx context.Context, store UserStore, username, a1, a2, a3 string) error {
	user, err := store.ByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return models.ErrInvalidCredentials
		}
		return err
	}
	ok := answerMatch(user.Answer1, a1) &&
		answerMatch(user.Answer2, a2) &&
		answerMatch(user.Answer3, a3)
	if !ok {
		return models.ErrInvalidCredentials
	}
	return nil
}

func answerMatch(stored, candidate string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(candidate)) == 1
}

func resetPassword(ctx context.Context, store UserStore, username, newPassword string) error {
	if !ValidatePassword(newPassword) {
		return models.ErrInvalidPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), hashCost)
	if err != nil {
		return err
	}
	return store.UpdatePassword(ctx, username, string(hash))
}
