package instructions

import (
	"context"

	"github.com/gantrykit/gantry/pkg/capability"
	"github.com/gantrykit/gantry/pkg/domain"
	"github.com/gantrykit/gantry/pkg/registry"
	"github.com/gantrykit/gantry/pkg/schema"
)

func registerTable(reg *registry.Registry) {
	reg.MustRegister(
		domain.NewInstruction("table-row-count", "Table: Get Row Count",
			"Count the rows of the table control at the given address.").
			WithParameter("target", "Target", schema.String()).
			WithOutput("rows", "Row Count", schema.Integer()),
		tableRowCount)

	reg.MustRegister(
		domain.NewInstruction("table-select-row", "Table: Select Row",
			"Select a row of the table control at the given address.").
			WithParameter("target", "Target", schema.String()).
			WithParameter("row", "Row", schema.Integer()),
		tableSelectRow)

	reg.MustRegister(
		domain.NewInstruction("table-cell-id", "Table: Get Cell Address",
			"Compute the address of a table cell by row and column index.").
			WithParameter("target", "Target", schema.String()).
			WithParameter("row", "Row", schema.Integer()).
			WithParameter("column", "Column", schema.Integer()).
			WithOutput("id", "Cell Address", schema.String()),
		tableCellID)
}

func resolveTable(inv *registry.Invocation, target string) (capability.Table, error) {
	comp, err := inv.Component(target)
	if err != nil {
		return nil, err
	}
	return capability.AsTable(comp)
}

func tableRowCount(ctx context.Context, inv *registry.Invocation) (domain.Output, error) {
	var args struct {
		Target string `param:"target"`
	}
	if err := decodeArgs(inv.Params, &args); err != nil {
		return nil, err
	}

	table, err := resolveTable(inv, args.Target)
	if err != nil {
		return nil, err
	}
	rows, err := table.RowCount()
	if err != nil {
		return nil, err
	}
	return domain.Output{"rows": rows}, nil
}

func tableSelectRow(ctx context.Context, inv *registry.Invocation) (domain.Output, error) {
	var args struct {
		Target string `param:"target"`
		Row    int    `param:"row"`
	}
	if err := decodeArgs(inv.Params, &args); err != nil {
		return nil, err
	}

	table, err := resolveTable(inv, args.Target)
	if err != nil {
		return nil, err
	}
	return nil, table.SelectRow(args.Row)
}

func tableCellID(ctx context.Context, inv *registry.Invocation) (domain.Output, error) {
	var args struct {
		Target string `param:"target"`
		Row    int    `param:"row"`
		Column int    `param:"column"`
	}
	if err := decodeArgs(inv.Params, &args); err != nil {
		return nil, err
	}

	table, err := resolveTable(inv, args.Target)
	if err != nil {
		return nil, err
	}
	id, err := table.CellID(args.Row, args.Column)
	if err != nil {
		return nil, err
	}
	return domain.Output{"id": id}, nil
}
