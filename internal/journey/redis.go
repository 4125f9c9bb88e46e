package journey

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps the journey document as a single JSON value in
// Redis, for setups where the journey should survive the machine the
// CLI runs on. Keys are namespaced under the configured prefix:
// "{prefix}:state" and "{prefix}:state:backup".
type RedisStore struct {
	client redis.UniversalClient
	prefix string
}

// NewRedisStore returns a store using client. prefix defaults to
// "gemflow" when empty.
func NewRedisStore(client redis.UniversalClient, prefix string) *RedisStore {
	if prefix == "" {
		prefix = "gemflow"
	}
	return &RedisStore{client: client, prefix: prefix}
}

func (rs *RedisStore) stateKey() string {
	return fmt.Sprintf("%s:state", rs.prefix)
}

func (rs *RedisStore) backupKey() string {
	return fmt.Sprintf("%s:state:backup", rs.prefix)
}

// Load reads the journey document. A missing key yields a fresh
// document.
func (rs *RedisStore) Load(ctx context.Context) (*State, error) {
	data, err := rs.client.Get(ctx, rs.stateKey()).Result()
	if errors.Is(err, redis.Nil) {
		return NewState(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("journey: reading %s: %w", rs.stateKey(), err)
	}
	st := NewState()
	if err := json.Unmarshal([]byte(data), st); err != nil {
		return nil, fmt.Errorf("journey: decoding %s: %w", rs.stateKey(), err)
	}
	normalize(st)
	return st, nil
}

// Save writes the journey document under the state key with no expiry.
func (rs *RedisStore) Save(ctx context.Context, st *State) error {
	st.LastUpdated = time.Now().UTC()
	data, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("journey: encoding state: %w", err)
	}
	if err := rs.client.Set(ctx, rs.stateKey(), data, 0).Err(); err != nil {
		return fmt.Errorf("journey: writing %s: %w", rs.stateKey(), err)
	}
	return nil
}

// Backup copies the state key to the backup key. Nothing to back up is
// not an error.
func (rs *RedisStore) Backup(ctx context.Context) error {
	data, err := rs.client.Get(ctx, rs.stateKey()).Result()
	if errors.Is(err, redis.Nil) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("journey: reading %s for backup: %w", rs.stateKey(), err)
	}
	if err := rs.client.Set(ctx, rs.backupKey(), data, 0).Err(); err != nil {
		return fmt.Errorf("journey: writing backup %s: %w", rs.backupKey(), err)
	}
	return nil
}
