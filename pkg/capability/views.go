package capability

// View interfaces are the narrowed surfaces leaf operations call through.
// Driver objects implement the views matching their reported kind.

// TextValued reads and writes a component's text value. The exact behaviour
// differs by kind (field content, label caption, button text).
type TextValued interface {
	Text() (string, error)
	SetText(value string) error
}

// Pressable presses a component.
type Pressable interface {
	Press() error
}

// CheckControl drives a boolean checked state.
type CheckControl interface {
	Selected() (bool, error)
	SetSelected(checked bool) error
}

// KeyedSelect drives a key-based selection (combo boxes).
type KeyedSelect interface {
	SetKey(key string) error
}

// Grid drives a grid view with addressable cells and columns.
type Grid interface {
	RowCount() (int, error)
	CellValue(row int, column string) (string, error)
	SetCurrentCell(row int, column string) error
	ClickCurrentCell() error
	DoubleClickCurrentCell() error
	SelectColumn(column string) error
	DeselectColumn(column string) error
	ContextMenu() error
}

// Table drives a table control with selectable rows.
type Table interface {
	RowCount() (int, error)
	SelectRow(row int) error
	CellID(row, column int) (string, error)
}

// Window drives a top-level window.
type Window interface {
	// SendVKey sends a virtual keypress to the window.
	SendVKey(key int) error
	// Screenshot captures the window to the given file path, returning the
	// path actually written.
	Screenshot(path string) (string, error)
}

// Highlighter draws an on-screen marker around a component.
type Highlighter interface {
	Visualize(on bool) error
}

// Identified exposes the component's resolved address.
type Identified interface {
	ID() (string, error)
}

// ContextMenuHost selects items from a component's context menu.
type ContextMenuHost interface {
	SelectContextMenuItem(functionCode string) error
}

// StatusReporter reads the state of a status bar.
type StatusReporter interface {
	// MessageType returns the status class, e.g. "S" (success), "W"
	// (warning), "E" (error), "A" (abort), "I" (information) or "" when no
	// status is shown.
	MessageType() (string, error)
}

// Selector brings a component into selection (tab pages, menu entries).
type Selector interface {
	Select() error
}
