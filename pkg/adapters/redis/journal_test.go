package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gantrykit/gantry/pkg/adapters/redis"
	"github.com/gantrykit/gantry/pkg/domain"
	"github.com/gantrykit/gantry/pkg/ports"
)

func newTestJournal(t *testing.T, opts ...redis.Option) (*redis.Journal, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := backend.NewClient(&backend.Options{Addr: mr.Addr()})
	j := redis.NewFromClient(client, opts...)
	t.Cleanup(func() { j.Close() })

	return j, mr
}

func TestJournal_Contract(t *testing.T) {
	ports.RunJournalContract(t, func(t *testing.T) ports.RunJournal {
		j, _ := newTestJournal(t)
		return j
	})
}

func TestJournal_KeyPrefix(t *testing.T) {
	j, mr := newTestJournal(t, redis.WithPrefix("bridge:audit:"))

	run := domain.NewRun(nil)
	require.NoError(t, j.Append(context.Background(), run))

	assert.True(t, mr.Exists("bridge:audit:"+run.ID))
	assert.True(t, mr.Exists("bridge:audit:order"))
}

func TestJournal_TTLExpiry(t *testing.T) {
	j, mr := newTestJournal(t, redis.WithTTL(time.Minute))
	ctx := context.Background()

	run := domain.NewRun(nil)
	require.NoError(t, j.Append(ctx, run))

	// Expired records disappear from Get and are skipped by List.
	mr.FastForward(2 * time.Minute)

	_, err := j.Get(ctx, run.ID)
	assert.ErrorIs(t, err, domain.ErrRunNotFound)

	runs, err := j.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, runs)
}
