package sessions

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"miam/models"

	"github.com/redis/go-redis/v9"
)

// Store persists session records between requests. Absent records mean the
// client is anonymous.
type Store interface {
	Save(ctx context.Context, s models.Session, ttl time.Duration) error
	Get(ctx context.Context, id string) (*models.Session, error)
	Delete(ctx context.Context, id string) error
}

const keyPrefix = "session:"

type RedisStore struct {
	conn *redis.Client
}

func NewRedisStore(conn *redis.Client) *RedisStore {
	return &RedisStore{conn: conn}
}

func (s *RedisStore) Save(ctx context.Context, sess models.Session, ttl time.Duration) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return s.conn.Set(ctx, keyPrefix+sess.ID, data, ttl).Err()
}

func (s *RedisStore) Get(ctx context.Context, id string) (*models.Session, error) {
	data, err := s.conn.Get(ctx, keyPrefix+id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	var sess models.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	return s.conn.Del(ctx, keyPrefix+id).Err()
}
