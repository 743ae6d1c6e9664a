package store

import (
    "context"
    "log"

    "github.com/redis/go-redis/v9"
)

const changeChannelPrefix = "quickcourt:changed:"

// RedisStore persists collections in Redis and broadcasts every write
// on a per-key pub/sub channel. This is the process-level analog of the
// browser storage event: a subscriber in another process observes the
// write almost immediately instead of waiting for its polling tick.
type RedisStore struct {
    rdb *redis.Client
}

// NewRedisStore wraps an established Redis client. The caller is
// responsible for having pinged the client; pass only non-nil clients.
func NewRedisStore(rdb *redis.Client) *RedisStore {
    return &RedisStore{rdb: rdb}
}

// Get returns the raw value stored under key, or ErrNotFound.
func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
    val, err := s.rdb.Get(ctx, key).Bytes()
    if err == redis.Nil {
        return nil, ErrNotFound
    }
    if err != nil {
        return nil, err
    }
    return val, nil
}

// Set writes the value and publishes it on the key's change channel.
// Publish failures are logged and ignored: the write itself succeeded
// and pollers will pick the value up on their next tick.
func (s *RedisStore) Set(ctx context.Context, key string, value []byte) error {
    if err := s.rdb.Set(ctx, key, value, 0).Err(); err != nil {
        return err
    }
    if err := s.rdb.Publish(ctx, changeChannelPrefix+key, value).Err(); err != nil {
        log.Printf("store: publish change for %s failed: %v", key, err)
    }
    return nil
}

// Remove deletes the key and publishes an empty payload so watchers
// learn the value is gone.
func (s *RedisStore) Remove(ctx context.Context, key string) error {
    if err := s.rdb.Del(ctx, key).Err(); err != nil {
        return err
    }
    if err := s.rdb.Publish(ctx, changeChannelPrefix+key, "").Err(); err != nil {
        log.Printf("store: publish removal for %s failed: %v", key, err)
    }
    return nil
}

// Watch subscribes to the key's change channel and forwards payloads
// until ctx is cancelled.
func (s *RedisStore) Watch(ctx context.Context, key string) <-chan []byte {
    out := make(chan []byte, 1)
    sub := s.rdb.Subscribe(ctx, changeChannelPrefix+key)
    go func() {
        defer close(out)
        defer func() { _ = sub.Close() }()
        ch := sub.Channel()
        for {
            select {
            case <-ctx.Done():
                return
            case msg, ok := <-ch:
                if !ok {
                    return
                }
                select {
                case out <- []byte(msg.Payload):
                case <-ctx.Done():
                    return
                }
            }
        }
    }()
    return out
}
