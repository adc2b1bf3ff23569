package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"finance-toolkit/domain"
)

const sessionKeyPrefix = "finance-toolkit:session:"

type RedisOptions struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
	Timeout  time.Duration
}

// RedisSessionRepository stores sessions as JSON under a prefixed key with
// an expiry that is refreshed on every write.
type RedisSessionRepository struct {
	client  *redis.Client
	ttl     time.Duration
	timeout time.Duration
}

func NewRedisSessionRepository(opts RedisOptions) *RedisSessionRepository {
	rdb := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	return &RedisSessionRepository{
		client:  rdb,
		ttl:     opts.TTL,
		timeout: timeout,
	}
}

// Ping checks connectivity, used at startup to decide whether to fall back
// to the in-memory repository.
func (r *RedisSessionRepository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RedisSessionRepository) Close() error {
	return r.client.Close()
}

// Get treats a missing key as a miss; connection, timeout and decode
// failures are returned as errors.
func (r *RedisSessionRepository) Get(id string) (domain.Session, bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	val, err := r.client.Get(ctx, sessionKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.Session{}, false, nil
	}
	if err != nil {
		return domain.Session{}, false, fmt.Errorf("load session: %w", err)
	}
	var s domain.Session
	if err := json.Unmarshal(val, &s); err != nil {
		return domain.Session{}, false, fmt.Errorf("decode session: %w", err)
	}
	return s, true, nil
}

func (r *RedisSessionRepository) Set(id string, session domain.Session) error {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	val, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := r.client.Set(ctx, sessionKey(id), val, r.ttl).Err(); err != nil {
		return fmt.Errorf("store session: %w", err)
	}
	return nil
}

func sessionKey(id string) string {
	return sessionKeyPrefix + id
}
