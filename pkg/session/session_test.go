package session_test

import (
	"context"
	"errors"
	"testing"

	"github.com/gantrykit/gantry/internal/drivertest"
	"github.com/gantrykit/gantry/pkg/capability"
	"github.com/gantrykit/gantry/pkg/session"
)

func TestConnect_LazyAndIdempotent(t *testing.T) {
	drv := drivertest.New(nil)
	s := session.New(drv)

	if s.Connected() {
		t.Fatal("fresh session should be disconnected")
	}

	if err := s.Connect(context.Background()); err != nil {
		t.Fatalf("Connect() error = %v", err)
	}
	if !s.Connected() {
		t.Fatal("session should be connected after handshake")
	}

	// Second connect must not touch the driver again.
	if err := s.Connect(context.Background()); err != nil {
		t.Fatalf("second Connect() error = %v", err)
	}
	if drv.OpenCount != 1 {
		t.Errorf("OpenCount = %d, want 1", drv.OpenCount)
	}
}

func TestConnect_DriverUnreachable(t *testing.T) {
	drv := drivertest.New(nil)
	drv.OpenErr = errors.New("no such process")
	s := session.New(drv)

	err := s.Connect(context.Background())
	var cerr *session.ConnectError
	if !errors.As(err, &cerr) {
		t.Fatalf("error should be *ConnectError, got %v", err)
	}

	// A failed connect does not poison the session.
	drv.OpenErr = nil
	if err := s.Connect(context.Background()); err != nil {
		t.Fatalf("retry after failure should succeed, got %v", err)
	}
}

func TestConnect_UnexpectedGraphShape(t *testing.T) {
	cases := []struct {
		name string
		mod  func(*drivertest.Driver)
	}{
		{"first child not a connection", func(d *drivertest.Driver) { d.TopKind = "Toolbar" }},
		{"connection child not a session", func(d *drivertest.Driver) { d.SessionKind = "GridView" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			drv := drivertest.New(nil)
			tc.mod(drv)
			s := session.New(drv)

			err := s.Connect(context.Background())
			var cerr *session.ConnectError
			if !errors.As(err, &cerr) {
				t.Fatalf("error should be *ConnectError, got %v", err)
			}
			if s.Connected() {
				t.Error("session should stay disconnected on a shape violation")
			}
			// The dangling attachment is released.
			if drv.CloseCount != 1 {
				t.Errorf("CloseCount = %d, want 1", drv.CloseCount)
			}
		})
	}
}

func TestResolve(t *testing.T) {
	sess := drivertest.NewNode("Session", "ses[0]")
	sess.Add(drivertest.NewNode("Button", "wnd[0]/tbar[0]/btn[11]"))

	s := session.New(drivertest.New(sess))
	if err := s.Connect(context.Background()); err != nil {
		t.Fatalf("Connect() error = %v", err)
	}

	comp, err := s.Resolve("wnd[0]/tbar[0]/btn[11]")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if comp.Kind != capability.KindButton {
		t.Errorf("resolved Kind = %s, want Button", comp.Kind)
	}

	_, err = s.Resolve("wnd[0]/usr/missing")
	var nf *session.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("error should be *NotFoundError, got %v", err)
	}
	if nf.Address != "wnd[0]/usr/missing" {
		t.Errorf("NotFoundError.Address = %q", nf.Address)
	}
}

func TestResolve_Disconnected(t *testing.T) {
	s := session.New(drivertest.New(nil))

	_, err := s.Resolve("wnd[0]")
	var cerr *session.ConnectError
	if !errors.As(err, &cerr) {
		t.Fatalf("resolving on a disconnected session should fail with ConnectError, got %v", err)
	}
}

func TestReset_Idempotent(t *testing.T) {
	drv := drivertest.New(nil)
	s := session.New(drv)

	// Reset on a fresh session is a no-op.
	s.Reset()
	if drv.CloseCount != 0 {
		t.Errorf("CloseCount = %d, want 0", drv.CloseCount)
	}

	if err := s.Connect(context.Background()); err != nil {
		t.Fatalf("Connect() error = %v", err)
	}

	s.Reset()
	s.Reset()
	if s.Connected() {
		t.Error("session should be disconnected after reset")
	}
	if drv.CloseCount != 1 {
		t.Errorf("CloseCount = %d, want 1", drv.CloseCount)
	}

	// Reconnect works after reset.
	if err := s.Connect(context.Background()); err != nil {
		t.Fatalf("reconnect after reset failed: %v", err)
	}
	if drv.OpenCount != 2 {
		t.Errorf("OpenCount = %d, want 2", drv.OpenCount)
	}
}
