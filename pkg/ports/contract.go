package ports

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gantrykit/gantry/pkg/domain"
)

// RunJournalContract exercises the behavior every RunJournal implementation
// must share. Adapter test files call it with a factory producing a fresh,
// empty journal.
func RunJournalContract(t *testing.T, factory func(t *testing.T) RunJournal) {
	t.Helper()
	ctx := context.Background()

	t.Run("empty journal lists nothing", func(t *testing.T) {
		j := factory(t)
		runs, err := j.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, runs)
	})

	t.Run("append then get", func(t *testing.T) {
		j := factory(t)
		run := domain.NewRun([]domain.InstructionCall{
			{Instruction: "press-button", Parameters: map[string]any{"target": "wnd[0]/tbar[0]/btn[11]"}},
		})
		run.Output = []domain.Output{{}}
		run.Evidence = [][]domain.Evidence{{}}
		require.NoError(t, j.Append(ctx, run))

		got, err := j.Get(ctx, run.ID)
		require.NoError(t, err)
		assert.Equal(t, run.ID, got.ID)
		require.Len(t, got.Calls, 1)
		assert.Equal(t, "press-button", got.Calls[0].Instruction)
	})

	t.Run("get unknown id", func(t *testing.T) {
		j := factory(t)
		_, err := j.Get(ctx, "00000000-0000-0000-0000-000000000000")
		assert.ErrorIs(t, err, domain.ErrRunNotFound)
	})

	t.Run("list preserves execution order", func(t *testing.T) {
		j := factory(t)
		first := domain.NewRun(nil)
		second := domain.NewRun(nil)
		third := domain.NewRun(nil)
		for _, run := range []*domain.Run{first, second, third} {
			require.NoError(t, j.Append(ctx, run))
		}

		runs, err := j.List(ctx)
		require.NoError(t, err)
		require.Len(t, runs, 3)
		assert.Equal(t, first.ID, runs[0].ID)
		assert.Equal(t, second.ID, runs[1].ID)
		assert.Equal(t, third.ID, runs[2].ID)
	})

	t.Run("failed runs keep their error", func(t *testing.T) {
		j := factory(t)
		run := domain.NewRun([]domain.InstructionCall{{Instruction: "connect"}})
		run.Error = domain.NewError(domain.ErrEngineProcessing, "the application is unreachable")
		require.NoError(t, j.Append(ctx, run))

		got, err := j.Get(ctx, run.ID)
		require.NoError(t, err)
		require.NotNil(t, got.Error)
		assert.Equal(t, domain.ErrEngineProcessing, got.Error.Kind)
	})

	t.Run("clear empties the journal", func(t *testing.T) {
		j := factory(t)
		run := domain.NewRun(nil)
		require.NoError(t, j.Append(ctx, run))
		require.NoError(t, j.Clear(ctx))

		runs, err := j.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, runs)

		_, err = j.Get(ctx, run.ID)
		assert.ErrorIs(t, err, domain.ErrRunNotFound)
	})

	t.Run("clear on empty journal is a no-op", func(t *testing.T) {
		j := factory(t)
		require.NoError(t, j.Clear(ctx))
		require.NoError(t, j.Clear(ctx))
	})
}
