package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "sess:"

// SessionStore adapts the redis client to fiber's session Storage
// interface. Expiry is delegated to redis TTLs.
type SessionStore struct {
	client *Client
}

func NewSessionStore(client *Client) *SessionStore {
	return &SessionStore{client: client}
}

func (s *SessionStore) Get(key string) ([]byte, error) {
	data, err := s.client.GetBytes(context.Background(), sessionKeyPrefix+key)
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	return data, err
}

func (s *SessionStore) Set(key string, val []byte, exp time.Duration) error {
	return s.client.Set(context.Background(), sessionKeyPrefix+key, val, exp)
}

func (s *SessionStore) Delete(key string) error {
	return s.client.Del(context.Background(), sessionKeyPrefix+key)
}

func (s *SessionStore) Reset() error {
	_, err := s.client.ScanAndDelete(context.Background(), sessionKeyPrefix+"*")
	return err
}

func (s *SessionStore) Close() error {
	return nil // the shared client is closed by the container
}
