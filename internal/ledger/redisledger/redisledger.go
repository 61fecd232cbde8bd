// Package redisledger implements ledger.Store on Redis. Optimistic
// transactions map onto WATCH/MULTI/EXEC: ledger.Watch uses client.Watch,
// Tx.Commit runs the buffered writes through TxPipelined, and an EXEC abort
// (redis.TxFailedErr) surfaces as ledger.ErrConflict.
package redisledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/openbid/auctiond/internal/config"
	"github.com/openbid/auctiond/internal/ledger"
)

func init() {
	ledger.Register("redis", func(ctx context.Context, cfg config.LedgerConfig) (ledger.Store, error) {
		return Connect(ctx, cfg.Redis)
	})
}

// Store implements ledger.Store over a Redis client.
type Store struct {
	client *redis.Client
}

// Connect opens and verifies a Redis connection.
func Connect(ctx context.Context, cfg config.RedisConfig) (*Store, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		return nil, fmt.Errorf("pinging redis: %w", err)
	}

	return &Store{client: client}, nil
}

// NewFromClient wraps an existing client, e.g. one pointed at a test container.
func NewFromClient(client *redis.Client) *Store {
	return &Store{client: client}
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	v, err := s.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ledger.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("redis get %s: %w", key, err)
	}
	return v, nil
}

func (s *Store) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (s *Store) LPrepend(ctx context.Context, key, value string) error {
	if err := s.client.LPush(ctx, key, value).Err(); err != nil {
		return fmt.Errorf("redis lpush %s: %w", key, err)
	}
	return nil
}

func (s *Store) LRange(ctx context.Context, key string, start, stop int64) ([]string, error) {
	vs, err := s.client.LRange(ctx, key, start, stop).Result()
	if err != nil {
		return nil, fmt.Errorf("redis lrange %s: %w", key, err)
	}
	return vs, nil
}

func (s *Store) Watch(ctx context.Context, fn func(tx ledger.Tx) error, keys ...string) error {
	err := s.client.Watch(ctx, func(rtx *redis.Tx) error {
		return fn(&tx{rtx: rtx})
	}, keys...)
	if errors.Is(err, redis.TxFailedErr) {
		return ledger.ErrConflict
	}
	return err
}

// tx adapts *redis.Tx to ledger.Tx. Reads run on the connection holding the
// WATCH; Commit submits the buffered writes as one MULTI/EXEC.
type tx struct {
	rtx *redis.Tx
}

func (t *tx) Get(ctx context.Context, key string) (string, error) {
	v, err := t.rtx.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ledger.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("redis tx get %s: %w", key, err)
	}
	return v, nil
}

func (t *tx) LRange(ctx context.Context, key string, start, stop int64) ([]string, error) {
	vs, err := t.rtx.LRange(ctx, key, start, stop).Result()
	if err != nil {
		return nil, fmt.Errorf("redis tx lrange %s: %w", key, err)
	}
	return vs, nil
}

func (t *tx) Commit(ctx context.Context, build func(w ledger.Writes)) error {
	_, err := t.rtx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		build(&writes{ctx: ctx, pipe: pipe})
		return nil
	})
	if errors.Is(err, redis.TxFailedErr) {
		return ledger.ErrConflict
	}
	return err
}

type writes struct {
	ctx  context.Context
	pipe redis.Pipeliner
}

func (w *writes) Set(key, value string) {
	w.pipe.Set(w.ctx, key, value, 0)
}

func (w *writes) LPrepend(key, value string) {
	w.pipe.LPush(w.ctx, key, value)
}

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *Store) Close() error {
	return s.client.Close()
}
