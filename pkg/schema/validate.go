package schema

import "sort"

// Validate checks data against the ordered schema and returns the first
// violation found as a *ValidationError, or nil.
//
// Precedence follows declaration order: missing and mistyped declared fields
// are reported before unexpected fields, and unexpected fields are checked in
// sorted key order so failures are deterministic.
func Validate(fields Fields, data map[string]any) error {
	for _, f := range fields {
		value, exists := data[f.ID]
		if !exists {
			return &ValidationError{
				Key:    f.ID,
				Class:  ViolationMissing,
				Reason: "required parameter not supplied",
			}
		}
		if err := f.Kind.Validate(value); err != nil {
			return &ValidationError{
				Key:    f.ID,
				Class:  ViolationWrongType,
				Reason: err.Error(),
				Value:  value,
			}
		}
	}

	if len(data) > len(fields) {
		extras := make([]string, 0, len(data))
		for key := range data {
			if _, ok := fields.Lookup(key); !ok {
				extras = append(extras, key)
			}
		}
		sort.Strings(extras)
		if len(extras) > 0 {
			return &ValidationError{
				Key:    extras[0],
				Class:  ViolationUnexpected,
				Reason: "parameter not declared by instruction",
				Value:  data[extras[0]],
			}
		}
	}

	return nil
}

// Conform filters outputs produced by a handler down to the declared output
// schema, guaranteeing the response only carries declared fields. Values are
// passed through unvalidated; handlers own output types.
func Conform(outputs Fields, produced map[string]any) map[string]any {
	result := make(map[string]any, len(outputs))
	for _, f := range outputs {
		if v, ok := produced[f.ID]; ok {
			result[f.ID] = v
		}
	}
	return result
}
