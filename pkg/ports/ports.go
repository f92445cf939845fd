// Package ports defines the driven-side interfaces the engine depends on.
// Adapters implement them; the contract suite in this package verifies any
// implementation behaves identically.
package ports

import (
	"context"

	"github.com/gantrykit/gantry/pkg/domain"
)

// RunJournal records executed batches for audit inspection. The journal is
// scoped to the live session: resetting state clears it. Implementations
// must be safe for concurrent use.
type RunJournal interface {
	// Append stores the record of one finished batch.
	Append(ctx context.Context, run *domain.Run) error
	// Get returns the run with the given ID, or domain.ErrRunNotFound.
	Get(ctx context.Context, id string) (*domain.Run, error)
	// List returns all recorded runs ordered by execution time, oldest first.
	List(ctx context.Context) ([]*domain.Run, error)
	// Clear discards every recorded run.
	Clear(ctx context.Context) error
}
