package engine_test

import (
	"context"
	"errors"
	"testing"

	"github.com/gantrykit/gantry/internal/drivertest"
	"github.com/gantrykit/gantry/pkg/capability"
	"github.com/gantrykit/gantry/pkg/domain"
	"github.com/gantrykit/gantry/pkg/engine"
	"github.com/gantrykit/gantry/pkg/protocol"
	"github.com/gantrykit/gantry/pkg/registry"
	"github.com/gantrykit/gantry/pkg/schema"
	"github.com/gantrykit/gantry/pkg/session"
)

// newFixture builds an engine over a scripted session holding one text
// field, with a small catalog that exercises the dispatch paths.
func newFixture(t *testing.T) (*engine.Engine, *drivertest.Driver, *drivertest.Node) {
	t.Helper()

	field := drivertest.NewNode("TextField", "wnd[0]/usr/txtFld")
	sess := drivertest.NewNode("Session", "ses[0]")
	sess.Add(field)
	drv := drivertest.New(sess)

	reg := registry.New()
	reg.MustRegister(
		domain.NewInstruction("set-text", "Set Text", "Write a value into a text component.").
			WithParameter("target", "Target", schema.String()).
			WithParameter("value", "Value", schema.String()),
		func(ctx context.Context, inv *registry.Invocation) (domain.Output, error) {
			comp, err := inv.Component(inv.Params["target"].(string))
			if err != nil {
				return nil, err
			}
			text, err := capability.AsText(comp)
			if err != nil {
				return nil, err
			}
			return nil, text.SetText(inv.Params["value"].(string))
		})
	reg.MustRegister(
		domain.NewInstruction("get-text", "Get Text", "Read the value of a text component.").
			WithParameter("target", "Target", schema.String()).
			WithOutput("value", "Value", schema.String()),
		func(ctx context.Context, inv *registry.Invocation) (domain.Output, error) {
			comp, err := inv.Component(inv.Params["target"].(string))
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
			inv.AddEvidence(domain.TextEvidence("Read", "Read the field."))
			return domain.Output{"value": value, "undeclared": true}, nil
		})
	reg.MustRegister(
		domain.NewInstruction("explode", "Explode", "Always fails."),
		func(ctx context.Context, inv *registry.Invocation) (domain.Output, error) {
			return nil, errors.New("boom")
		})

	e := engine.New(session.New(drv), reg)
	return e, drv, field
}

func TestCatalog_NoConnection(t *testing.T) {
	e, drv, _ := newFixture(t)

	catalog := e.Catalog()
	if len(catalog) != 3 {
		t.Fatalf("catalog length = %d, want 3", len(catalog))
	}
	if catalog[0].ID != "set-text" || catalog[1].ID != "get-text" {
		t.Errorf("catalog order = %s, %s", catalog[0].ID, catalog[1].ID)
	}
	if drv.OpenCount != 0 {
		t.Errorf("catalog request should not attach, OpenCount = %d", drv.OpenCount)
	}
}

func TestRun_SequentialDataFlow(t *testing.T) {
	e, _, field := newFixture(t)

	outputs, evidence, derr := e.Run(context.Background(), []domain.InstructionCall{
		{Instruction: "set-text", Parameters: map[string]any{"target": "wnd[0]/usr/txtFld", "value": "MARA"}},
		{Instruction: "get-text", Parameters: map[string]any{"target": "wnd[0]/usr/txtFld"}},
	})
	if derr != nil {
		t.Fatalf("Run() error = %v", derr)
	}
	if len(outputs) != 2 || len(evidence) != 2 {
		t.Fatalf("outputs = %d, evidence = %d, want 2 each", len(outputs), len(evidence))
	}

	// The second call observes the first call's write.
	if got := outputs[1]["value"]; got != "MARA" {
		t.Errorf("get-text value = %v, want MARA", got)
	}
	// Outputs are filtered to the declared schema.
	if _, ok := outputs[1]["undeclared"]; ok {
		t.Error("undeclared output field should be dropped")
	}
	if field.TextValue != "MARA" {
		t.Errorf("field value = %q", field.TextValue)
	}
	if len(evidence[1]) != 1 || evidence[1][0].Label != "Read" {
		t.Errorf("evidence[1] = %v", evidence[1])
	}
}

func TestRun_FailFast(t *testing.T) {
	e, _, field := newFixture(t)

	outputs, evidence, derr := e.Run(context.Background(), []domain.InstructionCall{
		{Instruction: "set-text", Parameters: map[string]any{"target": "wnd[0]/usr/txtFld", "value": "first"}},
		{Instruction: "explode", Parameters: map[string]any{}},
		{Instruction: "set-text", Parameters: map[string]any{"target": "wnd[0]/usr/txtFld", "value": "never"}},
	})

	if derr == nil {
		t.Fatal("Run() should fail")
	}
	if derr.Kind != domain.ErrEngineProcessing {
		t.Errorf("Kind = %q, want EngineProcessingError", derr.Kind)
	}
	if outputs != nil || evidence != nil {
		t.Error("failed batch must not return partial results")
	}
	// Calls before the failure did run; calls after it did not.
	if field.TextValue != "first" {
		t.Errorf("field value = %q, want first", field.TextValue)
	}
}

func TestRun_ErrorTaxonomy(t *testing.T) {
	cases := []struct {
		name string
		call domain.InstructionCall
		want domain.ErrorKind
	}{
		{
			"unknown instruction",
			domain.InstructionCall{Instruction: "warp"},
			domain.ErrInvalidInstruction,
		},
		{
			"missing parameter",
			domain.InstructionCall{Instruction: "set-text", Parameters: map[string]any{"target": "wnd[0]"}},
			domain.ErrMissingParameter,
		},
		{
			"wrong parameter type",
			domain.InstructionCall{Instruction: "set-text", Parameters: map[string]any{"target": "wnd[0]", "value": 7.0}},
			domain.ErrInvalidParameterType,
		},
		{
			"unexpected parameter",
			domain.InstructionCall{Instruction: "explode", Parameters: map[string]any{"surprise": true}},
			domain.ErrUnexpectedParameter,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e, drv, _ := newFixture(t)
			_, _, derr := e.Run(context.Background(), []domain.InstructionCall{tc.call})
			if derr == nil {
				t.Fatal("Run() should fail")
			}
			if derr.Kind != tc.want {
				t.Errorf("Kind = %q, want %q", derr.Kind, tc.want)
			}
			// Validation failures are caught before the session attaches.
			if drv.OpenCount != 0 {
				t.Errorf("OpenCount = %d, want 0", drv.OpenCount)
			}
		})
	}
}

func TestRun_ConnectFailure(t *testing.T) {
	e, drv, _ := newFixture(t)
	drv.OpenErr = errors.New("application not running")

	_, _, derr := e.Run(context.Background(), []domain.InstructionCall{
		{Instruction: "explode", Parameters: map[string]any{}},
	})
	if derr == nil {
		t.Fatal("Run() should fail")
	}
	if derr.Kind != domain.ErrEngineProcessing {
		t.Errorf("Kind = %q, want EngineProcessingError", derr.Kind)
	}
}

func TestRun_LazyConnectAcrossBatches(t *testing.T) {
	e, drv, _ := newFixture(t)
	ctx := context.Background()

	batch := []domain.InstructionCall{
		{Instruction: "get-text", Parameters: map[string]any{"target": "wnd[0]/usr/txtFld"}},
	}
	for i := 0; i < 3; i++ {
		if _, _, derr := e.Run(ctx, batch); derr != nil {
			t.Fatalf("batch %d error = %v", i, derr)
		}
	}
	if drv.OpenCount != 1 {
		t.Errorf("OpenCount = %d, want 1", drv.OpenCount)
	}
}

func TestRun_Journal(t *testing.T) {
	e, _, _ := newFixture(t)
	ctx := context.Background()

	if _, _, derr := e.Run(ctx, []domain.InstructionCall{
		{Instruction: "set-text", Parameters: map[string]any{"target": "wnd[0]/usr/txtFld", "value": "x"}},
	}); derr != nil {
		t.Fatalf("Run() error = %v", derr)
	}
	e.Run(ctx, []domain.InstructionCall{{Instruction: "explode", Parameters: map[string]any{}}})

	runs, err := e.Journal().List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("journal length = %d, want 2", len(runs))
	}
	if runs[0].Error != nil {
		t.Error("first run should be recorded as a success")
	}
	if runs[1].Error == nil {
		t.Error("second run should carry its error")
	}
}

func TestReset(t *testing.T) {
	e, drv, _ := newFixture(t)
	ctx := context.Background()

	if _, _, derr := e.Run(ctx, []domain.InstructionCall{
		{Instruction: "get-text", Parameters: map[string]any{"target": "wnd[0]/usr/txtFld"}},
	}); derr != nil {
		t.Fatalf("Run() error = %v", derr)
	}

	e.Reset(ctx)
	e.Reset(ctx) // idempotent

	if drv.CloseCount != 1 {
		t.Errorf("CloseCount = %d, want 1", drv.CloseCount)
	}
	runs, err := e.Journal().List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("journal should be empty after reset, got %d runs", len(runs))
	}

	// The engine reattaches on the next batch.
	if _, _, derr := e.Run(ctx, []domain.InstructionCall{
		{Instruction: "get-text", Parameters: map[string]any{"target": "wnd[0]/usr/txtFld"}},
	}); derr != nil {
		t.Fatalf("Run() after reset error = %v", derr)
	}
	if drv.OpenCount != 2 {
		t.Errorf("OpenCount = %d, want 2", drv.OpenCount)
	}
}

func TestDispatch(t *testing.T) {
	e, _, _ := newFixture(t)
	ctx := context.Background()

	resp, shutdown := e.Dispatch(ctx, protocol.Request{Type: protocol.RequestResetState})
	if shutdown || resp.Type != protocol.ResponseStateReset {
		t.Errorf("reset_state -> %q, shutdown=%v", resp.Type, shutdown)
	}

	resp, _ = e.Dispatch(ctx, protocol.Request{Type: protocol.RequestInstructions})
	if resp.Type != protocol.ResponseInstructions || resp.FriendlyName != engine.DefaultFriendlyName {
		t.Errorf("instructions -> %q (%q)", resp.Type, resp.FriendlyName)
	}
	if len(resp.Instructions) != 3 {
		t.Errorf("instructions count = %d", len(resp.Instructions))
	}

	resp, _ = e.Dispatch(ctx, protocol.Request{
		Type: protocol.RequestRunInstructions,
		Instructions: []domain.InstructionCall{
			{Instruction: "warp"},
		},
	})
	if resp.Type != protocol.ResponseError || resp.Kind != domain.ErrInvalidInstruction {
		t.Errorf("bad batch -> %q/%q", resp.Type, resp.Kind)
	}

	resp, _ = e.Dispatch(ctx, protocol.Request{Type: protocol.RequestRunInstructions})
	if resp.Type != protocol.ResponseExecutionOutput || len(resp.Output) != 0 {
		t.Errorf("empty batch -> %q with %d outputs", resp.Type, len(resp.Output))
	}

	_, shutdown = e.Dispatch(ctx, protocol.Request{Type: protocol.RequestShutDown})
	if !shutdown {
		t.Error("shut_down should request shutdown")
	}
}
