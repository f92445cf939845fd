package instructions

import (
	"context"

	"github.com/gantrykit/gantry/pkg/capability"
	"github.com/gantrykit/gantry/pkg/domain"
	"github.com/gantrykit/gantry/pkg/registry"
	"github.com/gantrykit/gantry/pkg/schema"
)

// mainWindow is where keypresses land; the first main window always carries
// this address.
const mainWindow = "wnd[0]"

func registerControls(reg *registry.Registry) {
	reg.MustRegister(
		domain.NewInstruction("send-key", "Send Key",
			"Send a virtual keypress to the main window.").
			WithParameter("key", "Key Number", schema.Integer()),
		sendKey)

	reg.MustRegister(
		domain.NewInstruction("press-button", "Press UI Button",
			"Press the button at the given address.").
			WithParameter("target", "Target", schema.String()),
		pressButton)

	reg.MustRegister(
		domain.NewInstruction("set-checkbox", "Set Checkbox Value",
			"Check or uncheck the checkbox at the given address.").
			WithParameter("target", "Target", schema.String()).
			WithParameter("checked", "Checked", schema.Boolean()),
		setCheckbox)

	reg.MustRegister(
		domain.NewInstruction("combo-select", "Select Combo Box Entry",
			"Select an entry of the combo box at the given address by key.").
			WithParameter("target", "Target", schema.String()).
			WithParameter("key", "Entry Key", schema.String()),
		comboSelect)

	reg.MustRegister(
		domain.NewInstruction("shell-context-menu-select", "Select Context Menu Item",
			"Select an item from the context menu of the component at the given address.").
			WithParameter("target", "Target", schema.String()).
			WithParameter("item", "Function Code", schema.String()),
		shellContextMenuSelect)

	reg.MustRegister(
		domain.NewInstruction("statusbar-state", "Get Status Bar State",
			"Read the message type and text shown by the status bar at the given address.").
			WithParameter("target", "Target", schema.String()).
			WithOutput("status", "Message Type", schema.String()).
			WithOutput("text", "Message Text", schema.String()),
		statusbarState)

	reg.MustRegister(
		domain.NewInstruction("tab-select", "Select Tab",
			"Bring the tab page at the given address into selection.").
			WithParameter("target", "Target", schema.String()),
		tabSelect)
}

func sendKey(ctx context.Context, inv *registry.Invocation) (domain.Output, error) {
	var args struct {
		Key int `param:"key"`
	}
	if err := decodeArgs(inv.Params, &args); err != nil {
		return nil, err
	}

	comp, err := inv.Component(mainWindow)
	if err != nil {
		return nil, err
	}
	win, err := capability.AsWindow(comp)
	if err != nil {
		return nil, err
	}
	return nil, win.SendVKey(args.Key)
}

func pressButton(ctx context.Context, inv *registry.Invocation) (domain.Output, error) {
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
	btn, err := capability.AsPressable(comp)
	if err != nil {
		return nil, err
	}
	return nil, btn.Press()
}

func setCheckbox(ctx context.Context, inv *registry.Invocation) (domain.Output, error) {
	var args struct {
		Target  string `param:"target"`
		Checked bool   `param:"checked"`
	}
	if err := decodeArgs(inv.Params, &args); err != nil {
		return nil, err
	}

	comp, err := inv.Component(args.Target)
	if err != nil {
		return nil, err
	}
	box, err := capability.AsCheckControl(comp)
	if err != nil {
		return nil, err
	}
	return nil, box.SetSelected(args.Checked)
}

func comboSelect(ctx context.Context, inv *registry.Invocation) (domain.Output, error) {
	var args struct {
		Target string `param:"target"`
		Key    string `param:"key"`
	}
	if err := decodeArgs(inv.Params, &args); err != nil {
		return nil, err
	}

	comp, err := inv.Component(args.Target)
	if err != nil {
		return nil, err
	}
	combo, err := capability.AsKeyedSelect(comp)
	if err != nil {
		return nil, err
	}
	return nil, combo.SetKey(args.Key)
}

func shellContextMenuSelect(ctx context.Context, inv *registry.Invocation) (domain.Output, error) {
	var args struct {
		Target string `param:"target"`
		Item   string `param:"item"`
	}
	if err := decodeArgs(inv.Params, &args); err != nil {
		return nil, err
	}

	comp, err := inv.Component(args.Target)
	if err != nil {
		return nil, err
	}
	host, err := capability.AsContextMenuHost(comp)
	if err != nil {
		return nil, err
	}
	return nil, host.SelectContextMenuItem(args.Item)
}

func statusbarState(ctx context.Context, inv *registry.Invocation) (domain.Output, error) {
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
	bar, err := capability.AsStatusReporter(comp)
	if err != nil {
		return nil, err
	}
	status, err := bar.MessageType()
	if err != nil {
		return nil, err
	}
	text, err := capability.AsText(comp)
	if err != nil {
		return nil, err
	}
	message, err := text.Text()
	if err != nil {
		return nil, err
	}
	return domain.Output{"status": status, "text": message}, nil
}

func tabSelect(ctx context.Context, inv *registry.Invocation) (domain.Output, error) {
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
	tab, err := capability.AsSelector(comp)
	if err != nil {
		return nil, err
	}
	return nil, tab.Select()
}
