package capability

// Kind identifies one of the closed set of remote component kinds the driver
// may report. Unknown raw kinds map to KindUnknown, which supports no
// capability.
type Kind string

const (
	KindUnknown Kind = "Unknown"

	// Structural kinds encountered during the connect handshake.
	KindApplication Kind = "Application"
	KindConnection  Kind = "Connection"
	KindSession     Kind = "Session"

	// Windows.
	KindMainWindow  Kind = "MainWindow"
	KindModalWindow Kind = "ModalWindow"

	// Input fields.
	KindTextField     Kind = "TextField"
	KindCommandField  Kind = "CommandField"
	KindPasswordField Kind = "PasswordField"
	KindOkCodeField   Kind = "OkCodeField"
	KindTextEdit      Kind = "TextEdit"
	KindInputField    Kind = "InputField"

	// Simple controls.
	KindButton      Kind = "Button"
	KindCheckBox    Kind = "CheckBox"
	KindRadioButton Kind = "RadioButton"
	KindComboBox    Kind = "ComboBox"
	KindComboBoxCtl Kind = "ComboBoxControl"
	KindLabel       Kind = "Label"
	KindTab         Kind = "Tab"
	KindTabStrip    Kind = "TabStrip"

	// Status and chrome.
	KindStatusbar  Kind = "Statusbar"
	KindStatusPane Kind = "StatusPane"
	KindTitlebar   Kind = "Titlebar"
	KindToolbar    Kind = "Toolbar"
	KindMenubar    Kind = "Menubar"
	KindMenu       Kind = "Menu"
	KindMenuItem   Kind = "MenuItem"

	// Data controls.
	KindGridView     Kind = "GridView"
	KindTableControl Kind = "TableControl"
	KindTree         Kind = "Tree"

	// Shells and embedded controls.
	KindShell          Kind = "Shell"
	KindContainerShell Kind = "ContainerShell"
	KindDialogShell    Kind = "DialogShell"
	KindDockShell      Kind = "DockShell"
	KindHTMLViewer     Kind = "HTMLViewer"
	KindTextEditCtl    Kind = "TextEditControl"
	KindCustomControl  Kind = "CustomControl"
	KindOfficeViewer   Kind = "OfficeViewer"
	KindViewer2D       Kind = "Viewer2D"
	KindViewer3D       Kind = "Viewer3D"
	KindPicture        Kind = "Picture"
	KindCalendar       Kind = "Calendar"
	KindMap            Kind = "Map"
	KindChart          Kind = "Chart"
	KindBarChart       Kind = "BarChart"
	KindNetChart       Kind = "NetChart"
	KindStockChart     Kind = "StockChart"
	KindGraphViewer    Kind = "GraphViewer"
	KindColorSelector  Kind = "ColorSelector"
	KindStage          Kind = "Stage"

	// Containers.
	KindBox               Kind = "Box"
	KindScrollContainer   Kind = "ScrollContainer"
	KindSimpleContainer   Kind = "SimpleContainer"
	KindSplit             Kind = "Split"
	KindSplitterContainer Kind = "SplitterContainer"
	KindUserArea          Kind = "UserArea"
	KindViewSwitch        Kind = "ViewSwitch"
)

// ident is shorthand for the baseline every known visual kind shares.
const ident = Identifiable

// shell is the capability baseline of shell-hosted controls.
const shell = ident | Visualizable | MenuHost

// kindCapabilities is the single declaration point of capability membership.
// Adding a kind means adding one entry here; adding a capability means
// listing the kinds that support it here, once.
var kindCapabilities = map[Kind]Capability{
	KindApplication: ident,
	KindConnection:  ident,
	KindSession:     ident,

	KindMainWindow:  ident | Visualizable | Windowed,
	KindModalWindow: ident | Visualizable | Windowed,

	KindTextField:     ident | Visualizable | Text,
	KindCommandField:  ident | Visualizable | Text,
	KindPasswordField: ident | Visualizable | Text,
	KindOkCodeField:   ident | Visualizable | Text,
	KindTextEdit:      ident | Visualizable | Text,
	KindInputField:    ident | Visualizable | Text,

	KindButton:      ident | Visualizable | Clickable | Text,
	KindCheckBox:    ident | Visualizable | Checkable | Text,
	KindRadioButton: ident | Visualizable | Checkable | Text,
	KindComboBox:    ident | Visualizable | KeyedSelectable | Text,
	KindComboBoxCtl: shell | KeyedSelectable,
	KindLabel:       ident | Visualizable | Text,
	KindTab:         ident | Visualizable | Selectable | Text,
	KindTabStrip:    ident | Visualizable,

	KindStatusbar:  ident | Visualizable | StatusReporting | Text,
	KindStatusPane: ident | Visualizable | Text,
	KindTitlebar:   ident | Visualizable | Text,
	KindToolbar:    ident | Visualizable,
	KindMenubar:    ident | Visualizable,
	KindMenu:       ident | Visualizable | Selectable,
	KindMenuItem:   ident | Visualizable | Selectable,

	KindGridView:     shell | GridLike,
	KindTableControl: ident | Visualizable | TableLike,
	KindTree:         shell,

	KindShell:          shell,
	KindContainerShell: shell,
	KindDialogShell:    ident | Visualizable,
	KindDockShell:      shell,
	KindHTMLViewer:     shell,
	KindTextEditCtl:    shell | Text,
	KindCustomControl:  ident | Visualizable,
	KindOfficeViewer:   shell,
	KindViewer2D:       shell,
	KindViewer3D:       shell,
	KindPicture:        shell,
	KindCalendar:       shell,
	KindMap:            shell,
	KindChart:          shell,
	KindBarChart:       shell,
	KindNetChart:       shell,
	KindStockChart:     shell,
	KindGraphViewer:    shell,
	KindColorSelector:  shell,
	KindStage:          shell,

	KindBox:               ident | Visualizable,
	KindScrollContainer:   ident | Visualizable,
	KindSimpleContainer:   ident | Visualizable,
	KindSplit:             shell,
	KindSplitterContainer: shell,
	KindUserArea:          ident | Visualizable,
	KindViewSwitch:        ident | Visualizable,
}

// ParseKind maps a raw kind name reported by the driver to a Kind.
func ParseKind(raw string) Kind {
	k := Kind(raw)
	if _, ok := kindCapabilities[k]; ok {
		return k
	}
	return KindUnknown
}

// Capabilities returns the capability set of a kind. KindUnknown (and any
// kind missing from the table) supports nothing.
func (k Kind) Capabilities() Capability {
	return kindCapabilities[k]
}

// Supports reports whether the kind declares every capability in caps.
func (k Kind) Supports(caps Capability) bool {
	return kindCapabilities[k]&caps == caps
}
