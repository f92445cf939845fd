package instructions

import (
	"context"
	"errors"

	"github.com/gantrykit/gantry/pkg/capability"
	"github.com/gantrykit/gantry/pkg/domain"
	"github.com/gantrykit/gantry/pkg/registry"
	"github.com/gantrykit/gantry/pkg/schema"
	"github.com/gantrykit/gantry/pkg/session"
)

func registerElement(reg *registry.Registry) {
	reg.MustRegister(
		domain.NewInstruction("element-exists", "Does Element Exist",
			"Check whether a component exists at the given address.").
			WithParameter("target", "Target", schema.String()).
			WithOutput("exists", "Exists", schema.Boolean()),
		elementExists)

	reg.MustRegister(
		domain.NewInstruction("component-type", "Get Component Type",
			"Read the type name of the component at the given address.").
			WithParameter("target", "Target", schema.String()).
			WithOutput("type", "Component Type", schema.String()),
		componentType)

	reg.MustRegister(
		domain.NewInstruction("highlight-element", "Highlight Element",
			"Draw an on-screen marker around the component at the given address.").
			WithParameter("target", "Target", schema.String()),
		highlightElement)
}

func elementExists(ctx context.Context, inv *registry.Invocation) (domain.Output, error) {
	var args struct {
		Target string `param:"target"`
	}
	if err := decodeArgs(inv.Params, &args); err != nil {
		return nil, err
	}

	_, err := inv.Component(args.Target)
	var nf *session.NotFoundError
	if errors.As(err, &nf) {
		return domain.Output{"exists": false}, nil
	}
	if err != nil {
		return nil, err
	}
	return domain.Output{"exists": true}, nil
}

func componentType(ctx context.Context, inv *registry.Invocation) (domain.Output, error) {
	var args struct {
		Target string `param:"target"`
	}
	if err := decodeArgs(inv.Params, &args); err != nil {
		return nil, err
	}

	comp, err := inv.Component(args.Target)
	if err != nil {
		return nil, err
	}
	return domain.Output{"type": comp.Object.Kind()}, nil
}

func highlightElement(ctx context.Context, inv *registry.Invocation) (domain.Output, error) {
	var args struct {
		Target string `param:"target"`
	}
	if err := decodeArgs(inv.Params, &args); err != nil {
		return nil, err
	}

	comp, err := inv.Component(args.Target)
	if err != nil {
		return nil, err
	}
	hl, err := capability.AsHighlighter(comp)
	if err != nil {
		return nil, err
	}
	return nil, hl.Visualize(true)
}
