// Package demo provides a simulated application driver: a deterministic
// in-process screen a binary can attach to without the real application.
// It backs the --demo CLI mode and end-to-end exercises of the protocol.
package demo

import (
	"github.com/gantrykit/gantry/internal/drivertest"
	"github.com/gantrykit/gantry/pkg/driver"
)

// New builds a driver over a simulated order entry screen: a main window
// with a toolbar button, input fields, a checkbox, a grid and a status bar.
func New() driver.Driver {
	window := drivertest.NewNode("MainWindow", "wnd[0]")
	window.PNG = placeholderPNG

	okcode := drivertest.NewNode("OkCodeField", "wnd[0]/tbar[0]/okcd")
	save := drivertest.NewNode("Button", "wnd[0]/tbar[0]/btn[11]")
	material := drivertest.NewNode("TextField", "wnd[0]/usr/ctxtRM08M-EBELN")
	material.TextValue = "4500000001"
	flag := drivertest.NewNode("CheckBox", "wnd[0]/usr/chkHeaderOnly")
	mode := drivertest.NewNode("ComboBox", "wnd[0]/usr/cmbDisplayMode")
	statusbar := drivertest.NewNode("Statusbar", "wnd[0]/sbar")
	statusbar.Status = "S"
	statusbar.TextValue = "Document saved"
	tab := drivertest.NewNode("Tab", "wnd[0]/usr/tabsITEMS/tabpDETAIL")
	table := drivertest.NewNode("TableControl", "wnd[0]/usr/tblSAPLMEGUITC_1211")
	table.Rows = 3

	grid := drivertest.NewNode("GridView", "wnd[0]/usr/cntlGRID1/shellcont/shell")
	grid.Rows = 5
	grid.Cells["0/MATNR"] = "100-100"
	grid.Cells["0/MAKTX"] = "Casing"
	grid.Cells["1/MATNR"] = "100-200"
	grid.Cells["1/MAKTX"] = "Rotor"

	sess := drivertest.NewNode("Session", "ses[0]")
	for _, n := range []*drivertest.Node{
		window, okcode, save, material, flag, mode, statusbar, tab, table, grid,
	} {
		sess.Add(n)
	}

	return drivertest.New(sess)
}

// placeholderPNG is a 1x1 transparent PNG for screenshot evidence.
var placeholderPNG = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a,
	0x00, 0x00, 0x00, 0x0d, 0x49, 0x48, 0x44, 0x52,
	0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0x15, 0xc4,
	0x89, 0x00, 0x00, 0x00, 0x0d, 0x49, 0x44, 0x41,
	0x54, 0x78, 0x9c, 0x62, 0x00, 0x01, 0x00, 0x00,
	0x05, 0x00, 0x01, 0x0d, 0x0a, 0x2d, 0xb4, 0x00,
	0x00, 0x00, 0x00, 0x49, 0x45, 0x4e, 0x44, 0xae,
	0x42, 0x60, 0x82,
}
