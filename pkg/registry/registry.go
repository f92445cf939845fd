// Package registry holds the immutable instruction catalog: descriptors
// paired with their leaf handlers, exposed in stable registration order.
package registry

import (
	"context"
	"fmt"
	"sync"

	"github.com/gantrykit/gantry/pkg/capability"
	"github.com/gantrykit/gantry/pkg/domain"
	"github.com/gantrykit/gantry/pkg/session"
)

// Invocation carries the per-call execution context into a handler: the
// shared session for address resolution and the evidence accumulator for
// this call.
type Invocation struct {
	// Session is the engine's shared session. Connected before the handler
	// runs when the instruction requires it.
	Session *session.Session
	// Params holds the validated call parameters.
	Params map[string]any

	evidence []domain.Evidence
}

// Component resolves an address parameter to a capability-tagged component.
func (inv *Invocation) Component(address string) (capability.Component, error) {
	return inv.Session.Resolve(address)
}

// AddEvidence attaches an audit artifact to this call.
func (inv *Invocation) AddEvidence(ev domain.Evidence) {
	inv.evidence = append(inv.evidence, ev)
}

// Evidence returns the artifacts attached so far, in order.
func (inv *Invocation) Evidence() []domain.Evidence {
	return inv.evidence
}

// Handler is the leaf implementation of one instruction. Returned outputs
// are filtered against the descriptor's output schema; any error aborts the
// running batch.
type Handler func(ctx context.Context, inv *Invocation) (domain.Output, error)

type entry struct {
	desc    domain.Instruction
	handler Handler
}

// Registry manages the instruction catalog. Registration happens during
// wiring; the catalog is read-only afterwards.
type Registry struct {
	mu      sync.RWMutex
	order   []string
	entries map[string]entry
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		entries: make(map[string]entry),
	}
}

// Register adds an instruction to the catalog. Instruction IDs are unique
// and stable; registering a duplicate is a wiring defect.
func (r *Registry) Register(desc domain.Instruction, h Handler) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if desc.ID == "" {
		return fmt.Errorf("instruction descriptor has no id")
	}
	if _, exists := r.entries[desc.ID]; exists {
		return fmt.Errorf("instruction already registered: %s", desc.ID)
	}

	r.entries[desc.ID] = entry{desc: desc, handler: h}
	r.order = append(r.order, desc.ID)
	return nil
}

// MustRegister registers an instruction and panics on a wiring defect.
func (r *Registry) MustRegister(desc domain.Instruction, h Handler) {
	if err := r.Register(desc, h); err != nil {
		panic(err)
	}
}

// Lookup returns the descriptor and handler for an instruction ID.
func (r *Registry) Lookup(id string) (domain.Instruction, Handler, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[id]
	return e.desc, e.handler, ok
}

// Instructions returns the catalog in registration order.
func (r *Registry) Instructions() []domain.Instruction {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Instruction, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.entries[id].desc)
	}
	return out
}
