// Package memory provides an in-process run journal. It is the default
// backend; records live exactly as long as the process.
package memory

import (
	"context"
	"sync"

	"github.com/gantrykit/gantry/pkg/domain"
	"github.com/gantrykit/gantry/pkg/ports"
)

// Journal is an in-memory ports.RunJournal.
type Journal struct {
	mu   sync.RWMutex
	runs []*domain.Run
	byID map[string]*domain.Run
}

var _ ports.RunJournal = (*Journal)(nil)

// NewJournal creates an empty journal.
func NewJournal() *Journal {
	return &Journal{byID: make(map[string]*domain.Run)}
}

// Append implements ports.RunJournal.
func (j *Journal) Append(_ context.Context, run *domain.Run) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.runs = append(j.runs, run)
	j.byID[run.ID] = run
	return nil
}

// Get implements ports.RunJournal.
func (j *Journal) Get(_ context.Context, id string) (*domain.Run, error) {
	j.mu.RLock()
	defer j.mu.RUnlock()

	run, ok := j.byID[id]
	if !ok {
		return nil, domain.ErrRunNotFound
	}
	return run, nil
}

// List implements ports.RunJournal.
func (j *Journal) List(_ context.Context) ([]*domain.Run, error) {
	j.mu.RLock()
	defer j.mu.RUnlock()

	out := make([]*domain.Run, len(j.runs))
	copy(out, j.runs)
	return out, nil
}

// Clear implements ports.RunJournal.
func (j *Journal) Clear(_ context.Context) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.runs = nil
	j.byID = make(map[string]*domain.Run)
	return nil
}
