package instructions_test

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/gantrykit/gantry/internal/drivertest"
	"github.com/gantrykit/gantry/pkg/capability"
	"github.com/gantrykit/gantry/pkg/domain"
	"github.com/gantrykit/gantry/pkg/instructions"
	"github.com/gantrykit/gantry/pkg/registry"
	"github.com/gantrykit/gantry/pkg/session"
)

// fixture wires the catalog to a scripted session populated with one node
// of every kind the instructions touch.
type fixture struct {
	reg  *registry.Registry
	sess *session.Session

	window    *drivertest.Node
	field     *drivertest.Node
	button    *drivertest.Node
	checkbox  *drivertest.Node
	combo     *drivertest.Node
	grid      *drivertest.Node
	table     *drivertest.Node
	statusbar *drivertest.Node
	tab       *drivertest.Node
	shell     *drivertest.Node
	root      *drivertest.Node
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		reg:       instructions.Catalog(),
		window:    drivertest.NewNode("MainWindow", "wnd[0]"),
		field:     drivertest.NewNode("TextField", "wnd[0]/usr/txtFld"),
		button:    drivertest.NewNode("Button", "wnd[0]/tbar[0]/btn[11]"),
		checkbox:  drivertest.NewNode("CheckBox", "wnd[0]/usr/chkFlag"),
		combo:     drivertest.NewNode("ComboBox", "wnd[0]/usr/cmbMode"),
		grid:      drivertest.NewNode("GridView", "wnd[0]/usr/cntlGrid/shellcont/shell"),
		table:     drivertest.NewNode("TableControl", "wnd[0]/usr/tblItems"),
		statusbar: drivertest.NewNode("Statusbar", "wnd[0]/sbar"),
		tab:       drivertest.NewNode("Tab", "wnd[0]/usr/tabsMain/tabpDetail"),
		shell:     drivertest.NewNode("Shell", "wnd[0]/usr/cntlTree/shellcont/shell"),
	}

	f.root = drivertest.NewNode("Session", "ses[0]")
	for _, n := range []*drivertest.Node{
		f.window, f.field, f.button, f.checkbox, f.combo,
		f.grid, f.table, f.statusbar, f.tab, f.shell,
	} {
		f.root.Add(n)
	}

	f.sess = session.New(drivertest.New(f.root))
	if err := f.sess.Connect(context.Background()); err != nil {
		t.Fatalf("Connect() error = %v", err)
	}
	return f
}

// run invokes an instruction handler directly with pre-validated params.
func (f *fixture) run(t *testing.T, id string, params map[string]any) (domain.Output, []domain.Evidence, error) {
	t.Helper()

	_, handler, ok := f.reg.Lookup(id)
	if !ok {
		t.Fatalf("instruction %s not in catalog", id)
	}
	inv := &registry.Invocation{Session: f.sess, Params: params}
	out, err := handler(context.Background(), inv)
	return out, inv.Evidence(), err
}

func (f *fixture) mustRun(t *testing.T, id string, params map[string]any) (domain.Output, []domain.Evidence) {
	t.Helper()

	out, ev, err := f.run(t, id, params)
	if err != nil {
		t.Fatalf("%s error = %v", id, err)
	}
	return out, ev
}

func TestCatalog_Complete(t *testing.T) {
	want := []string{
		"connect", "run-transaction", "screenshot",
		"element-exists", "component-type", "highlight-element",
		"set-text", "get-text",
		"send-key", "press-button", "set-checkbox", "combo-select",
		"shell-context-menu-select", "statusbar-state", "tab-select",
		"grid-row-count", "grid-cell-value", "grid-click-cell",
		"grid-double-click-cell", "grid-select-column", "grid-deselect-column",
		"grid-context-menu",
		"table-row-count", "table-select-row", "table-cell-id",
	}

	catalog := instructions.Catalog().Instructions()
	if len(catalog) != len(want) {
		t.Fatalf("catalog has %d instructions, want %d", len(catalog), len(want))
	}
	for i, id := range want {
		if catalog[i].ID != id {
			t.Errorf("catalog[%d] = %s, want %s", i, catalog[i].ID, id)
		}
		if !catalog[i].Flags.Has(domain.FlagAutomatic) {
			t.Errorf("%s should be flagged automatic", id)
		}
	}
}

func TestConnect_NoOp(t *testing.T) {
	f := newFixture(t)
	out, ev := f.mustRun(t, "connect", map[string]any{})
	if len(out) != 0 || len(ev) != 0 {
		t.Errorf("connect produced out=%v ev=%v", out, ev)
	}
}

func TestRunTransaction(t *testing.T) {
	f := newFixture(t)
	_, ev := f.mustRun(t, "run-transaction", map[string]any{"tcode": "SE38"})

	if got := f.root.Transactions; len(got) != 1 || got[0] != "SE38" {
		t.Errorf("Transactions = %v", got)
	}
	if len(ev) != 1 || ev[0].Content.Data != "Ran transaction 'SE38'." {
		t.Errorf("evidence = %v", ev)
	}
	if ev[0].Content.Kind != domain.ContentText {
		t.Errorf("evidence kind = %s", ev[0].Content.Kind)
	}
}

func TestScreenshot(t *testing.T) {
	f := newFixture(t)
	f.window.PNG = []byte{0x89, 'P', 'N', 'G'}

	_, ev := f.mustRun(t, "screenshot", map[string]any{
		"target": "wnd[0]", "label": "After login",
	})

	if len(ev) != 1 {
		t.Fatalf("evidence count = %d", len(ev))
	}
	if ev[0].Label != "After login" || ev[0].Content.Kind != domain.ContentImagePNG {
		t.Errorf("evidence = %+v", ev[0])
	}
	png, err := base64.StdEncoding.DecodeString(ev[0].Content.Data)
	if err != nil || string(png) != string(f.window.PNG) {
		t.Errorf("decoded payload = %v, %v", png, err)
	}
}

func TestElementExists(t *testing.T) {
	f := newFixture(t)

	out, _ := f.mustRun(t, "element-exists", map[string]any{"target": "wnd[0]/usr/txtFld"})
	if out["exists"] != true {
		t.Errorf("exists = %v, want true", out["exists"])
	}

	out, _ = f.mustRun(t, "element-exists", map[string]any{"target": "wnd[0]/usr/missing"})
	if out["exists"] != false {
		t.Errorf("exists = %v, want false", out["exists"])
	}
}

func TestComponentType(t *testing.T) {
	f := newFixture(t)
	out, _ := f.mustRun(t, "component-type", map[string]any{"target": "wnd[0]/usr/cntlGrid/shellcont/shell"})
	if out["type"] != "GridView" {
		t.Errorf("type = %v", out["type"])
	}
}

func TestHighlightElement(t *testing.T) {
	f := newFixture(t)
	f.mustRun(t, "highlight-element", map[string]any{"target": "wnd[0]/usr/txtFld"})
	if !f.field.Highlighted {
		t.Error("field should be highlighted")
	}
}

func TestSetAndGetText(t *testing.T) {
	f := newFixture(t)

	f.mustRun(t, "set-text", map[string]any{"target": "wnd[0]/usr/txtFld", "value": "MARA"})
	if f.field.TextValue != "MARA" {
		t.Errorf("field value = %q", f.field.TextValue)
	}

	out, _ := f.mustRun(t, "get-text", map[string]any{"target": "wnd[0]/usr/txtFld"})
	if out["value"] != "MARA" {
		t.Errorf("value = %v", out["value"])
	}
}

func TestSendKey(t *testing.T) {
	f := newFixture(t)
	// JSON numbers arrive as float64; the handler converts.
	f.mustRun(t, "send-key", map[string]any{"key": 8.0})
	if len(f.window.VKeys) != 1 || f.window.VKeys[0] != 8 {
		t.Errorf("VKeys = %v", f.window.VKeys)
	}
}

func TestPressButton(t *testing.T) {
	f := newFixture(t)
	f.mustRun(t, "press-button", map[string]any{"target": "wnd[0]/tbar[0]/btn[11]"})
	if f.button.Clicks != 1 {
		t.Errorf("Clicks = %d", f.button.Clicks)
	}
}

func TestSetCheckbox(t *testing.T) {
	f := newFixture(t)
	f.mustRun(t, "set-checkbox", map[string]any{"target": "wnd[0]/usr/chkFlag", "checked": true})
	if !f.checkbox.Checked {
		t.Error("checkbox should be checked")
	}
}

func TestComboSelect(t *testing.T) {
	f := newFixture(t)
	f.mustRun(t, "combo-select", map[string]any{"target": "wnd[0]/usr/cmbMode", "key": "02"})
	if f.combo.Key != "02" {
		t.Errorf("Key = %q", f.combo.Key)
	}
}

func TestShellContextMenuSelect(t *testing.T) {
	f := newFixture(t)
	f.mustRun(t, "shell-context-menu-select", map[string]any{
		"target": "wnd[0]/usr/cntlTree/shellcont/shell", "item": "&EXPAND",
	})
	if f.shell.MenuItem != "&EXPAND" {
		t.Errorf("MenuItem = %q", f.shell.MenuItem)
	}
}

func TestStatusbarState(t *testing.T) {
	f := newFixture(t)
	f.statusbar.Status = "E"
	f.statusbar.TextValue = "Order does not exist"

	out, _ := f.mustRun(t, "statusbar-state", map[string]any{"target": "wnd[0]/sbar"})
	if out["status"] != "E" || out["text"] != "Order does not exist" {
		t.Errorf("out = %v", out)
	}
}

func TestTabSelect(t *testing.T) {
	f := newFixture(t)
	f.mustRun(t, "tab-select", map[string]any{"target": "wnd[0]/usr/tabsMain/tabpDetail"})
	if f.tab.Selections != 1 {
		t.Errorf("Selections = %d", f.tab.Selections)
	}
}

func TestGrid(t *testing.T) {
	f := newFixture(t)
	f.grid.Rows = 17
	f.grid.Cells["3/MATNR"] = "100-100"

	out, _ := f.mustRun(t, "grid-row-count", map[string]any{"target": f.grid.NodeID})
	if out["rows"] != 17 {
		t.Errorf("rows = %v", out["rows"])
	}

	out, _ = f.mustRun(t, "grid-cell-value", map[string]any{
		"target": f.grid.NodeID, "row": 3.0, "column": "MATNR",
	})
	if out["value"] != "100-100" {
		t.Errorf("value = %v", out["value"])
	}

	f.mustRun(t, "grid-click-cell", map[string]any{"target": f.grid.NodeID, "row": 2.0, "column": "MATNR"})
	if f.grid.CurrentCell != "2/MATNR" || f.grid.Clicks != 1 {
		t.Errorf("CurrentCell = %q, Clicks = %d", f.grid.CurrentCell, f.grid.Clicks)
	}

	f.mustRun(t, "grid-double-click-cell", map[string]any{"target": f.grid.NodeID, "row": 5.0, "column": "WERKS"})
	if f.grid.CurrentCell != "5/WERKS" || f.grid.DoubleClicks != 1 {
		t.Errorf("CurrentCell = %q, DoubleClicks = %d", f.grid.CurrentCell, f.grid.DoubleClicks)
	}

	f.mustRun(t, "grid-select-column", map[string]any{"target": f.grid.NodeID, "column": "MATNR"})
	f.mustRun(t, "grid-deselect-column", map[string]any{"target": f.grid.NodeID, "column": "MATNR"})
	if len(f.grid.SelectedCols) != 0 {
		t.Errorf("SelectedCols = %v", f.grid.SelectedCols)
	}

	f.mustRun(t, "grid-context-menu", map[string]any{"target": f.grid.NodeID})
	if f.grid.MenuOpens != 1 {
		t.Errorf("MenuOpens = %d", f.grid.MenuOpens)
	}
}

func TestTable(t *testing.T) {
	f := newFixture(t)
	f.table.Rows = 4

	out, _ := f.mustRun(t, "table-row-count", map[string]any{"target": f.table.NodeID})
	if out["rows"] != 4 {
		t.Errorf("rows = %v", out["rows"])
	}

	f.mustRun(t, "table-select-row", map[string]any{"target": f.table.NodeID, "row": 2.0})
	if f.table.CurrentCell != "2" {
		t.Errorf("selected row marker = %q", f.table.CurrentCell)
	}

	out, _ = f.mustRun(t, "table-cell-id", map[string]any{"target": f.table.NodeID, "row": 1.0, "column": 3.0})
	if out["id"] != f.table.NodeID+"/cell[1,3]" {
		t.Errorf("id = %v", out["id"])
	}
}

func TestCapabilityMismatch(t *testing.T) {
	f := newFixture(t)

	_, _, err := f.run(t, "press-button", map[string]any{"target": "wnd[0]/usr/txtFld"})
	var unsupported *capability.UnsupportedError
	if !errors.As(err, &unsupported) {
		t.Fatalf("error = %v, want UnsupportedError", err)
	}
	if unsupported.Kind != capability.KindTextField {
		t.Errorf("Kind = %s", unsupported.Kind)
	}
}

func TestDriverFailurePropagates(t *testing.T) {
	f := newFixture(t)
	f.field.Errs["SetText"] = errors.New("component is read only")

	_, _, err := f.run(t, "set-text", map[string]any{"target": "wnd[0]/usr/txtFld", "value": "x"})
	if err == nil {
		t.Fatal("set-text should fail")
	}
}
