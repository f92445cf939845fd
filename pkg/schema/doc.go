// Package schema provides the typed parameter system for instruction
// descriptors.
//
// It defines a small closed set of primitive kinds (string, integer, decimal,
// boolean), ordered field lists for parameter and output schemas, and
// validation of caller-supplied values against a schema. Validation reports
// the first violation found and distinguishes missing fields, type
// mismatches and unexpected fields, because the protocol surfaces each class
// as a different error kind.
//
// Basic usage:
//
//	fields := schema.Fields{
//		{ID: "target", Name: "Target", Kind: schema.String()},
//		{ID: "row", Name: "Row", Kind: schema.Integer()},
//	}
//
//	err := schema.Validate(fields, map[string]any{
//		"target": "wnd[0]/usr/txtRF02D-AGKON",
//		"row":    3,
//	})
//
// Values are expected to come from JSON decoding, so integer validation
// accepts whole float64 values.
//
// This package has zero dependencies beyond the Go standard library.
package schema
