/*
Package gantry is an IPC bridge engine for scripted UI automation: callers
submit JSON-framed batches of instructions, the engine executes them in
order against a single shared application session and answers with every
call's outputs and evidence, or one typed error.

The root package is the high-level entry point. It wires the full
instruction catalog over a driver and returns a ready engine; transports
(stdio REPL, HTTP, MCP) live under pkg/adapters and cmd/gantry.
*/
package gantry

import (
	"log/slog"

	"github.com/gantrykit/gantry/pkg/driver"
	"github.com/gantrykit/gantry/pkg/engine"
	"github.com/gantrykit/gantry/pkg/instructions"
	"github.com/gantrykit/gantry/pkg/session"
)

// Version is the release version stamped into transports and banners.
const Version = "0.1.0"

// New wires the full instruction catalog over the given driver.
func New(d driver.Driver, opts ...engine.Option) *engine.Engine {
	return engine.New(session.New(d), instructions.Catalog(), opts...)
}

// NewWithLogger is New with a structured logger threaded through both the
// session and the engine.
func NewWithLogger(d driver.Driver, logger *slog.Logger, opts ...engine.Option) *engine.Engine {
	sess := session.New(d, session.WithLogger(logger))
	opts = append(opts, engine.WithLogger(logger))
	return engine.New(sess, instructions.Catalog(), opts...)
}
