// adapters/redis/redis.go
package redis

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/mahabubulhasibshawon/foodadmin/internal/ports"
)

type Client struct {
	client *redis.Client
}

func NewClient(addr, username, password string, db int) *Client {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: username,
		Password: password,
		DB:       db,
	})
	return &Client{client: client}
}

func (c *Client) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *Client) Close() error {
	return c.client.Close()
}

// TokenStore keeps the session token as a plain string without expiry.
type TokenStore struct {
	client *redis.Client
	key    string
}

func NewTokenStore(c *Client, key string) *TokenStore {
	return &TokenStore{client: c.client, key: key}
}

var _ ports.TokenStorePort = (*TokenStore)(nil)

func (s *TokenStore) Load(ctx context.Context) (string, error) {
	token, err := s.client.Get(ctx, s.key).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	return token, err
}

func (s *TokenStore) Save(ctx context.Context, token string) error {
	return s.client.Set(ctx, s.key, token, 0).Err()
}

func (s *TokenStore) Clear(ctx context.Context) error {
	return s.client.Del(ctx, s.key).Err()
}
