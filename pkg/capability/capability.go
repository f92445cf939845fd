package capability

import "strings"

// Capability is a named operation-interface a component kind may support.
// Values form a bit set so a kind's full capability set is one table entry.
type Capability uint32

const (
	// Text marks components whose text value can be read and written.
	Text Capability = 1 << iota
	// Clickable marks components that can be pressed.
	Clickable
	// Checkable marks components with a boolean checked state.
	Checkable
	// KeyedSelectable marks components whose selection is driven by a key.
	KeyedSelectable
	// GridLike marks grid views with addressable cells and columns.
	GridLike
	// TableLike marks table controls with selectable rows.
	TableLike
	// Windowed marks top-level windows (virtual keys, screenshots).
	Windowed
	// Visualizable marks components that can be highlighted on screen.
	Visualizable
	// Identifiable marks components that expose their address.
	Identifiable
	// MenuHost marks components with a context menu.
	MenuHost
	// StatusReporting marks status bars.
	StatusReporting
	// Selectable marks components that can be brought into selection (tabs).
	Selectable
)

var capabilityNames = []struct {
	bit  Capability
	name string
}{
	{Text, "Text"},
	{Clickable, "Clickable"},
	{Checkable, "Checkable"},
	{KeyedSelectable, "KeyedSelectable"},
	{GridLike, "GridLike"},
	{TableLike, "TableLike"},
	{Windowed, "Windowed"},
	{Visualizable, "Visualizable"},
	{Identifiable, "Identifiable"},
	{MenuHost, "MenuHost"},
	{StatusReporting, "StatusReporting"},
	{Selectable, "Selectable"},
}

// String returns the capability name, or a "|"-joined name for bit sets.
func (c Capability) String() string {
	var parts []string
	for _, entry := range capabilityNames {
		if c&entry.bit != 0 {
			parts = append(parts, entry.name)
		}
	}
	if len(parts) == 0 {
		return "None"
	}
	return strings.Join(parts, "|")
}
