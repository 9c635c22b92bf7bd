package rdx

import (
	"context"

	"github.com/redis/go-redis/v9"
)

var Conn *redis.Client

// Init connects the shared Redis client used for session state.
func Init(ctx context.Context, addr, password string) error {
	Conn = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})
	return Conn.Ping(ctx).Err()
}
