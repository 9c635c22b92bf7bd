package auth

import (
	"context"
	"testing"

	"miam/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func init() {
	// Keep the suite fast; production cost stays at the bcrypt default.
	hashCost = bcrypt.MinCost
}

type memUserStore struct {
	users map[string]*models.User
}

func newMemUserStore() *memUserStore {
	return &memUserStore{users: make(map[string]*models.User)}
}

func (s *memUserStore) Create(_ context.Context, user *models.User) error {
	if _, ok := s.users[user.Username]; ok {
		return models.ErrConflict
	}
	s.users[user.Username] = user
	return nil
}

func (s *memUserStore) ByUsername(_ context.Context, username string) (*models.User, error) {
	user, ok := s.users[username]
	if !ok {
		return nil, models.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func (s *memUserStore) UpdatePassword(_ context.Context, username, passwordHash string) error {
	user, ok := s.users[username]
	if !ok {
		return models.ErrNotFound
	}
	user.PasswordHash = passwordHash
	return nil
}

func TestRegisterUser(t *testing.T) {
	ctx := context.Background()
	store := newMemUserStore()

	user, err := registerUser(ctx, store, "alice", "Abcdef1!", "blue", "Paris", "Rex")
	require.NoError(t, err)
	assert.NotEmpty(t, user.UserID)
	assert.Equal(t, "alice", user.Username)

	// The stored digest must never equal the plaintext.
	assert.NotEqual(t, "Abcdef1!", user.PasswordHash)

	// And it must round-trip through authenticate.
	got, err := authenticateUser(ctx, store, "alice", "Abcdef1!")
	require.NoError(t, err)
	assert.Equal(t, user.UserID, got.UserID)
}

func TestRegisterUserDuplicate(t *testing.T) {
	ctx := context.Background()
	store := newMemUserStore()

	_, err := registerUser(ctx, store, "alice", "Abcdef1!", "a", "b", "c")
	require.NoError(t, err)

	_, err = registerUser(ctx, store, "alice", "Ghijkl2@", "x", "y", "z")
	assert.ErrorIs(t, err, models.ErrConflict)
}

func TestRegisterUserWeakPassword(t *testing.T) {
	store := newMemUserStore()
	_, err := registerUser(context.Background(), store, "alice", "abcdefgh", "a", "b", "c")
	assert.ErrorIs(t, err, models.ErrInvalidPassword)
	assert.Empty(t, store.users)
}

func TestAuthenticateUser(t *testing.T) {
	ctx := context.Background()
	store := newMemUserStore()
	_, err := registerUser(ctx, store, "alice", "Abcdef1!", "a", "b", "c")
	require.NoError(t, err)

	_, err = authenticateUser(ctx, store, "alice", "wrong-pass")
	assert.ErrorIs(t, err, models.ErrInvalidCredentials)

	// Unknown users fail the same way as bad passwords.
	_, err = authenticateUser(ctx, store, "nobody", "Abcdef1!")
	assert.ErrorIs(t, err, models.ErrInvalidCredentials)

	// Lookup is exact, no case folding.
	_, err = authenticateUser(ctx, store, "Alice", "Abcdef1!")
	assert.ErrorIs(t, err, models.ErrInvalidCredentials)
}

func TestVerifyRecovery(t *testing.T) {
	ctx := context.Background()
	store := newMemUserStore()
	_, err := registerUser(ctx, store, "alice", "Abcdef1!", "blue", "Paris", "Rex")
	require.NoError(t, err)

	assert.NoError(t, verifyRecovery(ctx, store, "alice", "blue", "Paris", "Rex"))

	// One wrong answer among three fails.
	assert.ErrorIs(t, verifyRecovery(ctx, store, "alice", "blue", "Paris", "Fido"),
		models.ErrInvalidCredentials)

	// Answers are case-sensitive, compared verbatim.
	assert.ErrorIs(t, verifyRecovery(ctx, store, "alice", "blue", "paris", "Rex"),
		models.ErrInvalidCredentials)

	assert.ErrorIs(t, verifyRecovery(ctx, store, "nobody", "blue", "Paris", "Rex"),
		models.ErrInvalidCredentials)
}

func TestResetPassword(t *testing.T) {
	ctx := context.Background()
	store := newMemUserStore()
	_, err := registerUser(ctx, store, "alice", "Abcdef1!", "a", "b", "c")
	require.NoError(t, err)

	assert.ErrorIs(t, resetPassword(ctx, store, "alice", "weak"), models.ErrInvalidPassword)

	require.NoError(t, resetPassword(ctx, store, "alice", "Newpass2@"))

	_, err = authenticateUser(ctx, store, "alice", "Newpass2@")
	assert.NoError(t, err)

	// The old password no longer verifies.
	_, err = authenticateUser(ctx, store, "alice", "Abcdef1!")
	assert.ErrorIs(t, err, models.ErrInvalidCredentials)
}
