package instructions

import (
	"context"
	"fmt"
	"os"

	"github.com/gantrykit/gantry/pkg/capability"
	"github.com/gantrykit/gantry/pkg/domain"
	"github.com/gantrykit/gantry/pkg/registry"
	"github.com/gantrykit/gantry/pkg/schema"
)

func registerSession(reg *registry.Registry) {
	reg.MustRegister(
		domain.NewInstruction("connect", "Connect to Open Instance",
			"Attach to the running application instance. Does nothing if already attached."),
		connect)

	reg.MustRegister(
		domain.NewInstruction("run-transaction", "Run Transaction",
			"Start the transaction with the given code in the current session.").
			WithParameter("tcode", "Transaction Code", schema.String()),
		runTransaction)

	reg.MustRegister(
		domain.NewInstruction("screenshot", "Screenshot as Evidence",
			"Capture a window as a screenshot and attach it as evidence.").
			WithParameter("target", "Target Window", schema.String()).
			WithParameter("label", "Evidence Label", schema.String()),
		screenshot)
}

// connect relies on the engine's lazy attach; by the time any handler runs
// the session is live, so there is nothing left to do.
func connect(ctx context.Context, inv *registry.Invocation) (domain.Output, error) {
	return nil, nil
}

func runTransaction(ctx context.Context, inv *registry.Invocation) (domain.Output, error) {
	var args struct {
		Code string `param:"tcode"`
	}
	if err := decodeArgs(inv.Params, &args); err != nil {
		return nil, err
	}

	if err := inv.Session.StartTransaction(args.Code); err != nil {
		return nil, err
	}

	inv.AddEvidence(domain.TextEvidence("Transaction",
		fmt.Sprintf("Ran transaction '%s'.", args.Code)))
	return nil, nil
}

func screenshot(ctx context.Context, inv *registry.Invocation) (domain.Output, error) {
	var args struct {
		Target string `param:"target"`
		Label  string `param:"label"`
	}
	if err := decodeArgs(inv.Params, &args); err != nil {
		return nil, err
	}

	comp, err := inv.Component(args.Target)
	if err != nil {
		return nil, err
	}
	win, err := capability.AsWindow(comp)
	if err != nil {
		return nil, err
	}

	f, err := os.CreateTemp("", "gantry-screenshot-*.png")
	if err != nil {
		return nil, fmt.Errorf("failed to allocate screenshot file: %w", err)
	}
	path := f.Name()
	f.Close()
	// The capture file is an implementation detail; removal is best effort.
	defer os.Remove(path)

	written, err := win.Screenshot(path)
	if err != nil {
		return nil, fmt.Errorf("failed to capture screenshot: %w", err)
	}

	png, err := os.ReadFile(written)
	if err != nil {
		return nil, fmt.Errorf("failed to read screenshot: %w", err)
	}

	inv.AddEvidence(domain.ImageEvidence(args.Label, png))
	return nil, nil
}
