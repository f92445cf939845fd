// Package redis provides a run journal backed by Redis, for deployments
// where operators inspect runs from outside the engine process. Records are
// still session-scoped: resetting state clears them.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	backend "github.com/redis/go-redis/v9"

	"github.com/gantrykit/gantry/pkg/domain"
	"github.com/gantrykit/gantry/pkg/ports"
)

// Journal implements ports.RunJournal using Redis. Runs are stored as JSON
// under per-run keys; an ordering list preserves execution order.
type Journal struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

var _ ports.RunJournal = (*Journal)(nil)

type Option func(*Journal)

// WithTTL sets the expiration for run records. Zero means no expiration.
func WithTTL(ttl time.Duration) Option {
	return func(j *Journal) {
		j.ttl = ttl
	}
}

// WithPrefix sets the key prefix for run records.
func WithPrefix(prefix string) Option {
	return func(j *Journal) {
		j.prefix = prefix
	}
}

// New creates a journal with its own client.
func New(address, password string, db int, opts ...Option) *Journal {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a journal from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Journal {
	j := &Journal{
		client: client,
		prefix: "gantry:run:",
		ttl:    0,
	}

	for _, opt := range opts {
		opt(j)
	}

	return j
}

func (j *Journal) key(id string) string {
	return j.prefix + id
}

func (j *Journal) orderKey() string {
	return j.prefix + "order"
}

// Append implements ports.RunJournal.
func (j *Journal) Append(ctx context.Context, run *domain.Run) error {
	data, err := json.Marshal(run)
	if err != nil {
		return fmt.Errorf("failed to marshal run: %w", err)
	}

	pipe := j.client.Pipeline()
	pipe.Set(ctx, j.key(run.ID), data, j.ttl)
	pipe.RPush(ctx, j.orderKey(), run.ID)
	if j.ttl > 0 {
		pipe.Expire(ctx, j.orderKey(), j.ttl)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to append run to redis: %w", err)
	}
	return nil
}

// Get implements ports.RunJournal.
func (j *Journal) Get(ctx context.Context, id string) (*domain.Run, error) {
	val, err := j.client.Get(ctx, j.key(id)).Result()
	if err != nil {
		if err == backend.Nil {
			return nil, domain.ErrRunNotFound
		}
		return nil, fmt.Errorf("failed to get run from redis: %w", err)
	}

	var run domain.Run
	if err := json.Unmarshal([]byte(val), &run); err != nil {
		return nil, fmt.Errorf("failed to unmarshal run: %w", err)
	}

	return &run, nil
}

// List implements ports.RunJournal. Runs whose record expired are skipped.
func (j *Journal) List(ctx context.Context) ([]*domain.Run, error) {
	ids, err := j.client.LRange(ctx, j.orderKey(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}

	runs := make([]*domain.Run, 0, len(ids))
	for _, id := range ids {
		run, err := j.Get(ctx, id)
		if err != nil {
			if err == domain.ErrRunNotFound {
				continue
			}
			return nil, err
		}
		runs = append(runs, run)
	}

	return runs, nil
}

// Clear implements ports.RunJournal.
func (j *Journal) Clear(ctx context.Context) error {
	ids, err := j.client.LRange(ctx, j.orderKey(), 0, -1).Result()
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}

	pipe := j.client.Pipeline()
	for _, id := range ids {
		pipe.Del(ctx, j.key(id))
	}
	pipe.Del(ctx, j.orderKey())

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to clear journal: %w", err)
	}
	return nil
}

// Close closes the redis client.
func (j *Journal) Close() error {
	return j.client.Close()
}
