package domain

import (
	"time"

	"github.com/google/uuid"
)

// Run is the journal record of one executed batch. It exists for audit
// inspection during the lifetime of the session that produced it; resetting
// the session clears the journal.
type Run struct {
	// ID uniquely identifies this batch execution.
	ID string `json:"id"`
	// StartedAt is when the engine began executing the batch.
	StartedAt time.Time `json:"started_at"`
	// Calls is the submitted batch, in order.
	Calls []InstructionCall `json:"calls"`
	// Output holds per-call outputs, index-aligned with Calls. Nil when the
	// batch failed.
	Output []Output `json:"output,omitempty"`
	// Evidence holds per-call evidence, index-aligned with Calls. Nil when
	// the batch failed.
	Evidence [][]Evidence `json:"evidence,omitempty"`
	// Error is the failure that aborted the batch, if any.
	Error *Error `json:"error,omitempty"`
}

// NewRun creates a journal record for a batch about to execute.
func NewRun(calls []InstructionCall) *Run {
	return &Run{
		ID:        uuid.NewString(),
		StartedAt: time.Now().UTC(),
		Calls:     calls,
	}
}
