package capability

import (
	"fmt"

	"github.com/gantrykit/gantry/pkg/driver"
)

// Component is a resolved, kind-tagged handle to a remote object. The kind
// is fixed at resolution time.
type Component struct {
	Kind   Kind
	Object driver.Object
}

// Wrap tags a driver object with its parsed kind.
func Wrap(obj driver.Object) Component {
	return Component{Kind: ParseKind(obj.Kind()), Object: obj}
}

// Supports reports whether the component's kind declares the capability.
func (c Component) Supports(cap Capability) bool {
	return c.Kind.Supports(cap)
}

// UnsupportedError reports a capability resolution failure. It names both
// the requested capability and the component's actual kind so callers can
// diagnose which address pointed at the wrong kind of object.
type UnsupportedError struct {
	Capability Capability
	Kind       Kind
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("component kind %s does not support %s", e.Kind, e.Capability)
}

// view narrows a component to the view interface V after checking the kind
// table. A kind that declares a capability whose view the driver object does
// not implement is a driver defect, reported distinctly.
func view[V any](c Component, cap Capability) (V, error) {
	var zero V
	if !c.Supports(cap) {
		return zero, &UnsupportedError{Capability: cap, Kind: c.Kind}
	}
	v, ok := c.Object.(V)
	if !ok {
		return zero, fmt.Errorf("driver object for kind %s does not implement %s", c.Kind, cap)
	}
	return v, nil
}

// AsText narrows to the text value view.
func AsText(c Component) (TextValued, error) { return view[TextValued](c, Text) }

// AsPressable narrows to the press view.
func AsPressable(c Component) (Pressable, error) { return view[Pressable](c, Clickable) }

// AsCheckControl narrows to the checkbox view.
func AsCheckControl(c Component) (CheckControl, error) { return view[CheckControl](c, Checkable) }

// AsKeyedSelect narrows to the keyed selection view.
func AsKeyedSelect(c Component) (KeyedSelect, error) { return view[KeyedSelect](c, KeyedSelectable) }

// AsGrid narrows to the grid view.
func AsGrid(c Component) (Grid, error) { return view[Grid](c, GridLike) }

// AsTable narrows to the table view.
func AsTable(c Component) (Table, error) { return view[Table](c, TableLike) }

// AsWindow narrows to the window view.
func AsWindow(c Component) (Window, error) { return view[Window](c, Windowed) }

// AsHighlighter narrows to the highlight view.
func AsHighlighter(c Component) (Highlighter, error) { return view[Highlighter](c, Visualizable) }

// AsIdentified narrows to the identity view.
func AsIdentified(c Component) (Identified, error) { return view[Identified](c, Identifiable) }

// AsContextMenuHost narrows to the context menu view.
func AsContextMenuHost(c Component) (ContextMenuHost, error) {
	return view[ContextMenuHost](c, MenuHost)
}

// AsStatusReporter narrows to the status bar view.
func AsStatusReporter(c Component) (StatusReporter, error) {
	return view[StatusReporter](c, StatusReporting)
}

// AsSelector narrows to the selection view.
func AsSelector(c Component) (Selector, error) { return view[Selector](c, Selectable) }
