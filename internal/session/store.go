package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ErrNotFound means the token does not map to a live session.
var ErrNotFound = errors.New("session not found")

// Store maps opaque session tokens to user ids in Redis. Tokens carry no
// claims; the user row is looked up on every request.
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

func NewStore(client *redis.Client, ttl time.Duration) *Store {
	return &Store{client: client, ttl: ttl}
}

func key(token string) string {
	return fmt.Sprintf("session:%s", token)
}

// Create establishes a session for the user and returns the opaque token.
func (s *Store) Create(ctx context.Context, userID uuid.UUID) (string, error) {
	token := uuid.NewString()
	if err := s.client.Set(ctx, key(token), userID.String(), s.ttl).Err(); err != nil {
		return "", err
	}
	return token, nil
}

// Resolve returns the user id behind a token and refreshes its TTL.
func (s *Store) Resolve(ctx context.Context, token string) (uuid.UUID, error) {
	val, err := s.client.GetEx(ctx, key(token), s.ttl).Result()
	if errors.Is(err, redis.Nil) {
		return uuid.Nil, ErrNotFound
	}
	if err != nil {
		return uuid.Nil, err
	}

	userID, err := uuid.Parse(val)
	if err != nil {
		return uuid.Nil, ErrNotFound
	}
	return userID, nil
}

// Destroy removes the session. Unknown tokens are not an error.
func (s *Store) Destroy(ctx context.Context, token string) error {
	return s.client.Del(ctx, key(token)).Err()
}

// TTL exposes the configured session lifetime (cookie max age).
func (s *Store) TTL() time.Duration {
	return s.ttl
}
