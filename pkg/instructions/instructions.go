/*
Package instructions defines the engine's instruction catalog: the leaf
operations callers can batch through the protocol, from session control down
to individual grid cells.

Each instruction pairs a descriptor (ID, display name, parameter and output
schemas) with a handler that narrows its target component to the capability
view it needs. Handlers never branch on component kinds; the capability
table owns that decision.
*/
package instructions

import (
	"fmt"

	"github.com/mitchellh/mapstructure"

	"github.com/gantrykit/gantry/pkg/registry"
)

// Register adds the full catalog to reg in its canonical order.
func Register(reg *registry.Registry) {
	registerSession(reg)
	registerElement(reg)
	registerText(reg)
	registerControls(reg)
	registerGrid(reg)
	registerTable(reg)
}

// Catalog builds a registry holding the full catalog.
func Catalog() *registry.Registry {
	reg := registry.New()
	Register(reg)
	return reg
}

// decodeArgs maps validated call parameters onto an argument struct. Weak
// typing bridges JSON numbers (always float64) onto integer fields.
func decodeArgs(params map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
		TagName:          "param",
	})
	if err != nil {
		return fmt.Errorf("failed to build parameter decoder: %w", err)
	}
	if err := dec.Decode(params); err != nil {
		return fmt.Errorf("failed to decode parameters: %w", err)
	}
	return nil
}
