package session

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
	"github.com/sprintify/sprintify-server/internal/logger"
)

// ErrNoSession is returned by Get when no identity has been stored.
var ErrNoSession = errors.New("no session identity stored")

// identityKey is the single slot holding the current session identity.
// Last writer wins. There is no TTL: the identity persists until Clear.
const identityKey = "sprintify:session:user_email"

// Store persists the current session identity (the normalized email of the
// authenticated user) in Redis.
type Store struct {
	client *redis.Client
}

// NewStore creates a session store backed by the given Redis client.
func NewStore(client *redis.Client) *Store {
	return &Store{client: client}
}

// Set overwrites the stored identity.
func (s *Store) Set(ctx context.Context, identity string) error {
	err := s.client.Set(ctx, identityKey, identity, 0).Err()

	logger.Log.Infow(
		"key", identityKey,
		"identity", identity,
		"error", err,
	)

	return err
}

// Get returns the stored identity, or ErrNoSession if the slot is empty.
func (s *Store) Get(ctx context.Context) (string, error) {
	val, err := s.client.Get(ctx, identityKey).Result()
	if err != nil {
		logger.Log.Infow(
			"key", identityKey,
			"error", err,
		)
		if err == redis.Nil {
			return "", ErrNoSession
		}
		return "", err
	}

	return val, nil
}

// Clear removes the stored identity. Clearing an empty slot is not an error.
func (s *Store) Clear(ctx context.Context) error {
	err := s.client.Del(ctx, identityKey).Err()

	logger.Log.Infow(
		"key", identityKey,
		"result", "cleared",
		"error", err,
	)

	return err
}
