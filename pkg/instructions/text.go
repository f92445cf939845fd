package instructions

import (
	"context"

	"github.com/gantrykit/gantry/pkg/capability"
	"github.com/gantrykit/gantry/pkg/domain"
	"github.com/gantrykit/gantry/pkg/registry"
	"github.com/gantrykit/gantry/pkg/schema"
)

func registerText(reg *registry.Registry) {
	reg.MustRegister(
		domain.NewInstruction("set-text", "Set Text Value",
			"Write a value into the text component at the given address.").
			WithParameter("target", "Target", schema.String()).
			WithParameter("value", "Value", schema.String()),
		setText)

	reg.MustRegister(
		domain.NewInstruction("get-text", "Get Text Value",
			"Read the value of the text component at the given address.").
			WithParameter("target", "Target", schema.String()).
			WithOutput("value", "Value", schema.String()),
		getText)
}

func setText(ctx context.Context, inv *registry.Invocation) (domain.Output, error) {
	var args struct {
		Target string `param:"target"`
		Value  string `param:"value"`
	}
	if err := decodeArgs(inv.Params, &args); err != nil {
		return nil, err
	}

	comp, err := inv.Component(args.Target)
	if err != nil {
		return nil, err
	}
	text, err := capability.AsText(comp)
	if err != nil {
		return nil, err
	}
	return nil, text.SetText(args.Value)
}

func getText(ctx context.Context, inv *registry.Invocation) (domain.Output, error) {
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
	text, err := capability.AsText(comp)
	if err != nil {
		return nil, err
	}
	value, err := text.Text()
	if err != nil {
		return nil, err
	}
	return domain.Output{"value": value}, nil
}
