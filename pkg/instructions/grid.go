package instructions

import (
	"context"

	"github.com/gantrykit/gantry/pkg/capability"
	"github.com/gantrykit/gantry/pkg/domain"
	"github.com/gantrykit/gantry/pkg/registry"
	"github.com/gantrykit/gantry/pkg/schema"
)

func registerGrid(reg *registry.Registry) {
	reg.MustRegister(
		domain.NewInstruction("grid-row-count", "Grid: Get Row Count",
			"Count the rows of the grid at the given address.").
			WithParameter("target", "Target", schema.String()).
			WithOutput("rows", "Row Count", schema.Integer()),
		gridRowCount)

	reg.MustRegister(
		domain.NewInstruction("grid-cell-value", "Grid: Get Cell Value",
			"Read the value of a grid cell by row and column name.").
			WithParameter("target", "Target", schema.String()).
			WithParameter("row", "Row", schema.Integer()).
			WithParameter("column", "Column Name", schema.String()).
			WithOutput("value", "Cell Value", schema.String()),
		gridCellValue)

	reg.MustRegister(
		domain.NewInstruction("grid-click-cell", "Grid: Click Cell",
			"Make a cell current and click it.").
			WithParameter("target", "Target", schema.String()).
			WithParameter("row", "Row", schema.Integer()).
			WithParameter("column", "Column Name", schema.String()),
		gridClickCell)

	reg.MustRegister(
		domain.NewInstruction("grid-double-click-cell", "Grid: Double Click Cell",
			"Make a cell current and double click it.").
			WithParameter("target", "Target", schema.String()).
			WithParameter("row", "Row", schema.Integer()).
			WithParameter("column", "Column Name", schema.String()),
		gridDoubleClickCell)

	reg.MustRegister(
		domain.NewInstruction("grid-select-column", "Grid: Select Column",
			"Add a column to the grid selection.").
			WithParameter("target", "Target", schema.String()).
			WithParameter("column", "Column Name", schema.String()),
		gridSelectColumn)

	reg.MustRegister(
		domain.NewInstruction("grid-deselect-column", "Grid: Deselect Column",
			"Remove a column from the grid selection.").
			WithParameter("target", "Target", schema.String()).
			WithParameter("column", "Column Name", schema.String()),
		gridDeselectColumn)

	reg.MustRegister(
		domain.NewInstruction("grid-context-menu", "Grid: Open Context Menu",
			"Open the context menu of the grid at the given address.").
			WithParameter("target", "Target", schema.String()),
		gridContextMenu)
}

func resolveGrid(inv *registry.Invocation, target string) (capability.Grid, error) {
	comp, err := inv.Component(target)
	if err != nil {
		return nil, err
	}
	return capability.AsGrid(comp)
}

func gridRowCount(ctx context.Context, inv *registry.Invocation) (domain.Output, error) {
	var args struct {
		Target string `param:"target"`
	}
	if err := decodeArgs(inv.Params, &args); err != nil {
		return nil, err
	}

	grid, err := resolveGrid(inv, args.Target)
	if err != nil {
		return nil, err
	}
	rows, err := grid.RowCount()
	if err != nil {
		return nil, err
	}
	return domain.Output{"rows": rows}, nil
}

func gridCellValue(ctx context.Context, inv *registry.Invocation) (domain.Output, error) {
	var args struct {
		Target string `param:"target"`
		Row    int    `param:"row"`
		Column string `param:"column"`
	}
	if err := decodeArgs(inv.Params, &args); err != nil {
		return nil, err
	}

	grid, err := resolveGrid(inv, args.Target)
	if err != nil {
		return nil, err
	}
	value, err := grid.CellValue(args.Row, args.Column)
	if err != nil {
		return nil, err
	}
	return domain.Output{"value": value}, nil
}

func gridClickCell(ctx context.Context, inv *registry.Invocation) (domain.Output, error) {
	var args struct {
		Target string `param:"target"`
		Row    int    `param:"row"`
		Column string `param:"column"`
	}
	if err := decodeArgs(inv.Params, &args); err != nil {
		return nil, err
	}

	grid, err := resolveGrid(inv, args.Target)
	if err != nil {
		return nil, err
	}
	if err := grid.SetCurrentCell(args.Row, args.Column); err != nil {
		return nil, err
	}
	return nil, grid.ClickCurrentCell()
}

func gridDoubleClickCell(ctx context.Context, inv *registry.Invocation) (domain.Output, error) {
	var args struct {
		Target string `param:"target"`
		Row    int    `param:"row"`
		Column string `param:"column"`
	}
	if err := decodeArgs(inv.Params, &args); err != nil {
		return nil, err
	}

	grid, err := resolveGrid(inv, args.Target)
	if err != nil {
		return nil, err
	}
	if err := grid.SetCurrentCell(args.Row, args.Column); err != nil {
		return nil, err
	}
	return nil, grid.DoubleClickCurrentCell()
}

func gridSelectColumn(ctx context.Context, inv *registry.Invocation) (domain.Output, error) {
	var args struct {
		Target string `param:"target"`
		Column string `param:"column"`
	}
	if err := decodeArgs(inv.Params, &args); err != nil {
		return nil, err
	}

	grid, err := resolveGrid(inv, args.Target)
	if err != nil {
		return nil, err
	}
	return nil, grid.SelectColumn(args.Column)
}

func gridDeselectColumn(ctx context.Context, inv *registry.Invocation) (domain.Output, error) {
	var args struct {
		Target string `param:"target"`
		Column string `param:"column"`
	}
	if err := decodeArgs(inv.Params, &args); err != nil {
		return nil, err
	}

	grid, err := resolveGrid(inv, args.Target)
	if err != nil {
		return nil, err
	}
	return nil, grid.DeselectColumn(args.Column)
}

func gridContextMenu(ctx context.Context, inv *registry.Invocation) (domain.Output, error) {
	var args struct {
		Target string `param:"target"`
	}
	if err := decodeArgs(inv.Params, &args); err != nil {
		return nil, err
	}

	grid, err := resolveGrid(inv, args.Target)
	if err != nil {
		return nil, err
	}
	return nil, grid.ContextMenu()
}
