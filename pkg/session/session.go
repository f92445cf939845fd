package session

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gantrykit/gantry/internal/logging"
	"github.com/gantrykit/gantry/pkg/capability"
	"github.com/gantrykit/gantry/pkg/driver"
)

// ConnectError reports a failed handshake with the external application.
// Structural mismatches in the object graph are precondition violations, not
// transient faults, and are not retried within a batch; a later batch may
// attempt a fresh connect.
type ConnectError struct {
	Reason string
	Err    error
}

func (e *ConnectError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("connect failed: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("connect failed: %s", e.Reason)
}

func (e *ConnectError) Unwrap() error { return e.Err }

// NotFoundError reports an address the driver could not locate.
type NotFoundError struct {
	Address string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no component at address %q", e.Address)
}

// Session holds zero-or-one live driver attachment and zero-or-one root
// context object.
type Session struct {
	driver driver.Driver
	logger *slog.Logger

	root    driver.Root
	context driver.Object
}

// Option configures a Session.
type Option func(*Session)

// WithLogger configures a logger for connection lifecycle events.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// New creates a disconnected Session over the given driver.
func New(d driver.Driver, opts ...Option) *Session {
	s := &Session{
		driver: d,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Connected reports whether the handshake has completed.
func (s *Session) Connected() bool {
	return s.context != nil
}

// Connect performs the external handshake. It is a no-op when already
// connected. A failure leaves the Session disconnected but usable: the next
// Connect retries from scratch.
func (s *Session) Connect(ctx context.Context) error {
	if s.Connected() {
		return nil
	}

	root, err := s.driver.Open(ctx)
	if err != nil {
		return &ConnectError{Reason: "couldn't attach to application", Err: err}
	}

	sessionObj, err := walkToSession(root)
	if err != nil {
		// Best-effort release of the dangling attachment.
		_ = root.Close()
		return err
	}

	s.root = root
	s.context = sessionObj
	s.logger.Debug("session connected")
	return nil
}

// walkToSession validates the expected object graph shape: the first child
// of the application root must be a connection, and its first child must be
// the session context.
func walkToSession(root driver.Root) (driver.Object, error) {
	conns, err := root.Children()
	if err != nil {
		return nil, &ConnectError{Reason: "couldn't enumerate application children", Err: err}
	}
	if len(conns) == 0 {
		return nil, &ConnectError{Reason: "application has no open connection"}
	}
	conn := conns[0]
	if kind := capability.ParseKind(conn.Kind()); kind != capability.KindConnection {
		return nil, &ConnectError{
			Reason: fmt.Sprintf("expected a %s as first child, got %s", capability.KindConnection, conn.Kind()),
		}
	}

	sessions, err := conn.Children()
	if err != nil {
		return nil, &ConnectError{Reason: "couldn't enumerate connection children", Err: err}
	}
	if len(sessions) == 0 {
		return nil, &ConnectError{Reason: "connection has no session"}
	}
	sess := sessions[0]
	if kind := capability.ParseKind(sess.Kind()); kind != capability.KindSession {
		return nil, &ConnectError{
			Reason: fmt.Sprintf("expected a %s as first child, got %s", capability.KindSession, sess.Kind()),
		}
	}

	return sess, nil
}

// Resolve delegates address lookup to the driver and tags the result with
// its kind. Resolution has no side effects of its own.
func (s *Session) Resolve(address string) (capability.Component, error) {
	if !s.Connected() {
		return capability.Component{}, &ConnectError{Reason: "session not connected"}
	}

	obj, err := s.context.Find(address)
	if err != nil {
		return capability.Component{}, &NotFoundError{Address: address}
	}
	return capability.Wrap(obj), nil
}

// Transactor is the session-level transaction entry point a driver's
// session object may implement.
type Transactor interface {
	StartTransaction(code string) error
}

// StartTransaction starts a named transaction on the session context.
func (s *Session) StartTransaction(code string) error {
	if !s.Connected() {
		return &ConnectError{Reason: "session not connected"}
	}
	tr, ok := s.context.(Transactor)
	if !ok {
		return fmt.Errorf("driver session does not support transactions")
	}
	return tr.StartTransaction(code)
}

// Reset discards the attachment and root context wholesale. It is
// idempotent; resetting a disconnected Session is a no-op.
func (s *Session) Reset() {
	if s.root != nil {
		// Releasing the external attachment is best-effort.
		if err := s.root.Close(); err != nil {
			s.logger.Warn("failed to release driver attachment", "err", err)
		}
	}
	s.root = nil
	s.context = nil
}
