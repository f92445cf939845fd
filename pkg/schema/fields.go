package schema

import (
	"encoding/json"
	"fmt"
)

// Field describes one typed parameter or output of an instruction.
type Field struct {
	ID   string
	Name string
	Kind Kind
}

// fieldWire is the JSON shape of a Field.
type fieldWire struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Kind string `json:"kind"`
}

// MarshalJSON encodes the field with its kind's wire name.
func (f Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(fieldWire{ID: f.ID, Name: f.Name, Kind: f.Kind.Name()})
}

// UnmarshalJSON decodes the field, resolving the kind by wire name.
func (f *Field) UnmarshalJSON(data []byte) error {
	var w fieldWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	kind, err := ParseKind(w.Kind)
	if err != nil {
		return fmt.Errorf("field %q: %w", w.ID, err)
	}
	f.ID = w.ID
	f.Name = w.Name
	f.Kind = kind
	return nil
}

// Fields is an ordered schema: declaration order is preserved in catalogs and
// in validation error precedence.
type Fields []Field

// Lookup returns the field with the given ID.
func (fs Fields) Lookup(id string) (Field, bool) {
	for _, f := range fs {
		if f.ID == id {
			return f, true
		}
	}
	return Field{}, false
}
