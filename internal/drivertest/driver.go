// Package drivertest provides a scripted in-memory driver for exercising the
// engine without a live external application.
package drivertest

import (
	"context"
	"fmt"
	"os"

	"github.com/gantrykit/gantry/pkg/driver"
)

// Driver is a scripted driver. The zero value fails every Open; use New to
// build one around a session node.
type Driver struct {
	// Session is the session-kind object addresses resolve against.
	Session *Node
	// OpenErr, when set, fails every Open call.
	OpenErr error
	// TopKind and SessionKind override the handshake kinds, for shape tests.
	TopKind     string
	SessionKind string

	// OpenCount counts Open calls, including failed ones.
	OpenCount int
	// CloseCount counts Close calls on roots handed out by this driver.
	CloseCount int
}

// New creates a driver whose handshake succeeds and resolves addresses
// against the given session node.
func New(session *Node) *Driver {
	return &Driver{Session: session}
}

// Open implements driver.Driver.
func (d *Driver) Open(ctx context.Context) (driver.Root, error) {
	d.OpenCount++
	if d.OpenErr != nil {
		return nil, d.OpenErr
	}

	topKind := d.TopKind
	if topKind == "" {
		topKind = "Connection"
	}

	sess := d.Session
	if sess == nil {
		sess = NewNode("Session", "ses[0]")
	}
	if d.SessionKind != "" {
		sess.NodeKind = d.SessionKind
	}

	conn := NewNode(topKind, "con[0]")
	conn.Kids = []*Node{sess}

	return &root{driver: d, kids: []driver.Object{conn}}, nil
}

type root struct {
	driver *Driver
	kids   []driver.Object
}

func (r *root) Children() ([]driver.Object, error) { return r.kids, nil }

func (r *root) Close() error {
	r.driver.CloseCount++
	return nil
}

// Node is a scripted remote object. It implements driver.Object and every
// capability view; per-operation failures are injected through Errs.
type Node struct {
	NodeKind string
	NodeID   string
	Kids     []*Node
	// Objects maps addresses to resolvable nodes (used on session nodes).
	Objects map[string]*Node
	// Errs injects a failure for the named operation (e.g. "SetText").
	Errs map[string]error

	// Scripted state observed by tests.
	TextValue    string
	Checked      bool
	Key          string
	Rows         int
	Cells        map[string]string // "row/column" -> value
	CurrentCell  string
	Clicks       int
	DoubleClicks int
	SelectedCols []string
	MenuOpens    int
	MenuItem     string
	VKeys        []int
	PNG          []byte
	Highlighted  bool
	Status       string
	Selections   int
	Transactions []string
}

// NewNode creates a scripted node of the given kind and address.
func NewNode(kind, id string) *Node {
	return &Node{
		NodeKind: kind,
		NodeID:   id,
		Objects:  make(map[string]*Node),
		Errs:     make(map[string]error),
		Cells:    make(map[string]string),
	}
}

// Add registers a node under its own address for Find resolution.
func (n *Node) Add(child *Node) *Node {
	n.Objects[child.NodeID] = child
	return n
}

func (n *Node) fail(op string) error { return n.Errs[op] }

// --- driver.Object ---

func (n *Node) Kind() string { return n.NodeKind }

func (n *Node) ID() (string, error) {
	if err := n.fail("ID"); err != nil {
		return "", err
	}
	return n.NodeID, nil
}

func (n *Node) Children() ([]driver.Object, error) {
	if err := n.fail("Children"); err != nil {
		return nil, err
	}
	kids := make([]driver.Object, len(n.Kids))
	for i, k := range n.Kids {
		kids[i] = k
	}
	return kids, nil
}

func (n *Node) Find(address string) (driver.Object, error) {
	if err := n.fail("Find"); err != nil {
		return nil, err
	}
	obj, ok := n.Objects[address]
	if !ok {
		return nil, fmt.Errorf("no object at %s", address)
	}
	return obj, nil
}

// StartTransaction mimics the session-level transaction entry point.
func (n *Node) StartTransaction(code string) error {
	if err := n.fail("StartTransaction"); err != nil {
		return err
	}
	n.Transactions = append(n.Transactions, code)
	return nil
}

// --- capability views ---

func (n *Node) Text() (string, error) {
	if err := n.fail("Text"); err != nil {
		return "", err
	}
	return n.TextValue, nil
}

func (n *Node) SetText(value string) error {
	if err := n.fail("SetText"); err != nil {
		return err
	}
	n.TextValue = value
	return nil
}

func (n *Node) Press() error {
	if err := n.fail("Press"); err != nil {
		return err
	}
	n.Clicks++
	return nil
}

func (n *Node) Selected() (bool, error) {
	if err := n.fail("Selected"); err != nil {
		return false, err
	}
	return n.Checked, nil
}

func (n *Node) SetSelected(checked bool) error {
	if err := n.fail("SetSelected"); err != nil {
		return err
	}
	n.Checked = checked
	return nil
}

func (n *Node) SetKey(key string) error {
	if err := n.fail("SetKey"); err != nil {
		return err
	}
	n.Key = key
	return nil
}

func (n *Node) RowCount() (int, error) {
	if err := n.fail("RowCount"); err != nil {
		return 0, err
	}
	return n.Rows, nil
}

func (n *Node) CellValue(row int, column string) (string, error) {
	if err := n.fail("CellValue"); err != nil {
		return "", err
	}
	return n.Cells[fmt.Sprintf("%d/%s", row, column)], nil
}

func (n *Node) SetCurrentCell(row int, column string) error {
	if err := n.fail("SetCurrentCell"); err != nil {
		return err
	}
	n.CurrentCell = fmt.Sprintf("%d/%s", row, column)
	return nil
}

func (n *Node) ClickCurrentCell() error {
	if err := n.fail("ClickCurrentCell"); err != nil {
		return err
	}
	n.Clicks++
	return nil
}

func (n *Node) DoubleClickCurrentCell() error {
	if err := n.fail("DoubleClickCurrentCell"); err != nil {
		return err
	}
	n.DoubleClicks++
	return nil
}

func (n *Node) SelectColumn(column string) error {
	if err := n.fail("SelectColumn"); err != nil {
		return err
	}
	n.SelectedCols = append(n.SelectedCols, column)
	return nil
}

func (n *Node) DeselectColumn(column string) error {
	if err := n.fail("DeselectColumn"); err != nil {
		return err
	}
	for i, c := range n.SelectedCols {
		if c == column {
			n.SelectedCols = append(n.SelectedCols[:i], n.SelectedCols[i+1:]...)
			break
		}
	}
	return nil
}

func (n *Node) ContextMenu() error {
	if err := n.fail("ContextMenu"); err != nil {
		return err
	}
	n.MenuOpens++
	return nil
}

func (n *Node) SelectRow(row int) error {
	if err := n.fail("SelectRow"); err != nil {
		return err
	}
	n.CurrentCell = fmt.Sprintf("%d", row)
	return nil
}

func (n *Node) CellID(row, column int) (string, error) {
	if err := n.fail("CellID"); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/cell[%d,%d]", n.NodeID, row, column), nil
}

func (n *Node) SendVKey(key int) error {
	if err := n.fail("SendVKey"); err != nil {
		return err
	}
	n.VKeys = append(n.VKeys, key)
	return nil
}

func (n *Node) Screenshot(path string) (string, error) {
	if err := n.fail("Screenshot"); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, n.PNG, 0o644); err != nil {
		return "", err
	}
	return path, nil
}

func (n *Node) Visualize(on bool) error {
	if err := n.fail("Visualize"); err != nil {
		return err
	}
	n.Highlighted = on
	return nil
}

func (n *Node) SelectContextMenuItem(functionCode string) error {
	if err := n.fail("SelectContextMenuItem"); err != nil {
		return err
	}
	n.MenuItem = functionCode
	return nil
}

func (n *Node) MessageType() (string, error) {
	if err := n.fail("MessageType"); err != nil {
		return "", err
	}
	return n.Status, nil
}

func (n *Node) Select() error {
	if err := n.fail("Select"); err != nil {
		return err
	}
	n.Selections++
	return nil
}
