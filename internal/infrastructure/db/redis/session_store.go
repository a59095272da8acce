package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// SessionStore records active sessions backed by Redis.
// Key format: session:<user_id>
type SessionStore struct {
	client *redis.Client
}

// NewSessionStore creates a SessionStore wrapping the given Redis client.
func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

// Put records the session token for a user (expires with the token TTL).
func (s *SessionStore) Put(ctx context.Context, userID, token string, ttl time.Duration) error {
	return s.client.Set(ctx, s.key(userID), token, ttl).Err()
}

// Delete removes the session record, the explicit teardown half of the
// session lifecycle.
func (s *SessionStore) Delete(ctx context.Context, userID string) error {
	return s.client.Del(ctx, s.key(userID)).Err()
}

func (s *SessionStore) key(userID string) string {
	return fmt.Sprintf("session:%s", userID)
}
