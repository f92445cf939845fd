/*
Package engine executes instruction batches against a single shared session.

The engine serializes batches: one mutex is held from the first call of a
batch to the last, so callers never observe interleaved execution. Within a
batch, calls run strictly in order and the first failure aborts the rest.
The response is all-or-nothing: every call's outputs and evidence, or one
typed error with everything accumulated so far discarded.
*/
package engine

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/gantrykit/gantry/internal/logging"
	"github.com/gantrykit/gantry/pkg/adapters/memory"
	"github.com/gantrykit/gantry/pkg/domain"
	"github.com/gantrykit/gantry/pkg/observability"
	"github.com/gantrykit/gantry/pkg/ports"
	"github.com/gantrykit/gantry/pkg/protocol"
	"github.com/gantrykit/gantry/pkg/registry"
	"github.com/gantrykit/gantry/pkg/schema"
	"github.com/gantrykit/gantry/pkg/session"
)

// DefaultFriendlyName identifies the engine in catalog responses unless
// configured otherwise.
const DefaultFriendlyName = "SAP GUI Bridge"

// Engine is the dispatch core. Create one per process with New.
type Engine struct {
	mu sync.Mutex

	session  *session.Session
	registry *registry.Registry
	journal  ports.RunJournal
	logger   *slog.Logger
	metrics  *observability.Metrics
	name     string
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithJournal sets the run journal backend.
func WithJournal(journal ports.RunJournal) Option {
	return func(e *Engine) {
		e.journal = journal
	}
}

// WithMetrics sets the metrics instrument set.
func WithMetrics(m *observability.Metrics) Option {
	return func(e *Engine) {
		e.metrics = m
	}
}

// WithFriendlyName sets the display name reported in catalog responses.
func WithFriendlyName(name string) Option {
	return func(e *Engine) {
		e.name = name
	}
}

// New creates an engine over the given session and instruction catalog.
// Defaults: an in-memory journal, a no-op metrics set, and a discard logger.
func New(sess *session.Session, reg *registry.Registry, opts ...Option) *Engine {
	e := &Engine{
		session:  sess,
		registry: reg,
		journal:  memory.NewJournal(),
		logger:   logging.NewNop(),
		metrics:  observability.NewNop(),
		name:     DefaultFriendlyName,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// FriendlyName returns the configured display name.
func (e *Engine) FriendlyName() string {
	return e.name
}

// Catalog returns the instruction catalog. It never touches the external
// application; the catalog is answerable while disconnected.
func (e *Engine) Catalog() []domain.Instruction {
	return e.registry.Instructions()
}

// Journal exposes the run journal for audit surfaces.
func (e *Engine) Journal() ports.RunJournal {
	return e.journal
}

// Run executes a batch. On success it returns outputs and evidence
// index-aligned with calls; on failure it returns a single typed error and
// no partial results. The batch holds the engine lock for its whole
// duration.
func (e *Engine) Run(ctx context.Context, calls []domain.InstructionCall) ([]domain.Output, [][]domain.Evidence, *domain.Error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	record := domain.NewRun(calls)
	e.logger.Debug("executing batch", "run_id", record.ID, "calls", len(calls))

	outputs := make([]domain.Output, 0, len(calls))
	evidence := make([][]domain.Evidence, 0, len(calls))

	for i, call := range calls {
		out, ev, derr := e.runCall(ctx, call)
		if derr != nil {
			e.logger.Error("batch aborted",
				"run_id", record.ID,
				"position", i,
				"instruction", call.Instruction,
				"error", derr)
			e.metrics.Failures.WithLabelValues(string(derr.Kind)).Inc()

			record.Error = derr
			e.appendRecord(ctx, record)
			return nil, nil, derr
		}
		outputs = append(outputs, out)
		evidence = append(evidence, ev)
	}

	record.Output = outputs
	record.Evidence = evidence
	e.appendRecord(ctx, record)

	return outputs, evidence, nil
}

func (e *Engine) runCall(ctx context.Context, call domain.InstructionCall) (domain.Output, []domain.Evidence, *domain.Error) {
	desc, handler, ok := e.registry.Lookup(call.Instruction)
	if !ok {
		return nil, nil, domain.NewError(domain.ErrInvalidInstruction,
			"unknown instruction: %s", call.Instruction)
	}

	if err := desc.Validate(call); err != nil {
		return nil, nil, validationError(desc, err)
	}

	// The session attaches on first use and stays attached for subsequent
	// calls and batches.
	if err := e.session.Connect(ctx); err != nil {
		return nil, nil, domain.AsError(err)
	}

	inv := &registry.Invocation{
		Session: e.session,
		Params:  call.Parameters,
	}

	start := time.Now()
	out, err := handler(ctx, inv)
	e.metrics.InstructionDuration.WithLabelValues(desc.ID).Observe(time.Since(start).Seconds())
	if err != nil {
		return nil, nil, domain.AsError(err)
	}

	return schema.Conform(desc.Outputs, out), inv.Evidence(), nil
}

// validationError maps a schema violation onto the protocol error taxonomy.
func validationError(desc domain.Instruction, err error) *domain.Error {
	verr, ok := err.(*schema.ValidationError)
	if !ok {
		return domain.AsError(err)
	}

	switch verr.Class {
	case schema.ViolationMissing:
		return domain.NewError(domain.ErrMissingParameter,
			"instruction %s is missing parameter %q", desc.ID, verr.Key)
	case schema.ViolationWrongType:
		return domain.NewError(domain.ErrInvalidParameterType,
			"instruction %s parameter %q: %s", desc.ID, verr.Key, verr.Reason)
	case schema.ViolationUnexpected:
		return domain.NewError(domain.ErrUnexpectedParameter,
			"instruction %s does not accept parameter %q", desc.ID, verr.Key)
	default:
		return domain.AsError(err)
	}
}

func (e *Engine) appendRecord(ctx context.Context, record *domain.Run) {
	if err := e.journal.Append(ctx, record); err != nil {
		// Journaling is best effort; a broken backend never fails a batch.
		e.logger.Warn("failed to journal run", "run_id", record.ID, "error", err)
	}
}

// Reset discards the session and the run journal. Safe to call at any time,
// including before the first connect.
func (e *Engine) Reset(ctx context.Context) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.session.Reset()
	if err := e.journal.Clear(ctx); err != nil {
		e.logger.Warn("failed to clear run journal", "error", err)
	}
	e.logger.Info("state reset")
}

// Dispatch routes one decoded request to the engine and builds the reply.
// The returned flag reports a shutdown request; the transport owns process
// exit, and no reply is sent for it.
func (e *Engine) Dispatch(ctx context.Context, req protocol.Request) (protocol.Response, bool) {
	e.metrics.Requests.WithLabelValues(string(req.Type)).Inc()

	switch req.Type {
	case protocol.RequestResetState:
		e.Reset(ctx)
		return protocol.StateReset(), false

	case protocol.RequestInstructions:
		return protocol.Catalog(e.name, e.Catalog()), false

	case protocol.RequestRunInstructions:
		outputs, evidence, derr := e.Run(ctx, req.Instructions)
		if derr != nil {
			return protocol.Error(derr), false
		}
		return protocol.ExecutionOutput(outputs, evidence), false

	case protocol.RequestShutDown:
		e.logger.Info("shutdown requested")
		return protocol.Response{}, true

	default:
		// DecodeRequest rejects unknown types; this covers hand-built requests.
		return protocol.Error(domain.NewError(domain.ErrFailedToParseIPCJson,
			"unknown request type %q", req.Type)), false
	}
}
