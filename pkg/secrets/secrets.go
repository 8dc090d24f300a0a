package secrets

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store is the application's secret source. Keys such as the JWT signing key
// live in an external Redis instance managed by ops; nothing is hardcoded in
// the binary and nothing is seeded at startup.
type Store struct {
	client *redis.Client
}

const keyPrefix = "scanhive:secrets:"

var ErrNotFound = errors.New("secret not found")

func New(addr string) (*Store, error) {
	client := redis.NewClient(&redis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
		ReadTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("can't connect to secret store: %w", err)
	}

	return &Store{client: client}, nil
}

// NewWithClient is used by tests to back the store with miniredis.
func NewWithClient(client *redis.Client) *Store {
	return &Store{client: client}
}

func (s *Store) Get(ctx context.Context, name string) (string, error) {
	val, err := s.client.Get(ctx, keyPrefix+name).Result()
	if err == redis.Nil {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

func (s *Store) Set(ctx context.Context, name, value string) error {
	return s.client.Set(ctx, keyPrefix+name, value, 0).Err()
}

func (s *Store) List(ctx context.Context) ([]string, error) {
	keys, err := s.client.Keys(ctx, keyPrefix+"*").Result()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(keys))
	for _, key := range keys {
		names = append(names, key[len(keyPrefix):])
	}
	return names, nil
}

func (s *Store) Close() error {
	return s.client.Close()
}
