package schema

import "fmt"

// Kind defines the contract for parameter value validation.
type Kind interface {
	// Name returns the wire name of the kind (e.g. "string", "integer").
	Name() string
	// Validate checks whether a value conforms to this kind.
	Validate(value any) error
}

// --- Built-in Kind Implementations ---

type stringKind struct{}

func (stringKind) Name() string { return "string" }

func (stringKind) Validate(value any) error {
	if _, ok := value.(string); !ok {
		return fmt.Errorf("expected string, got %T", value)
	}
	return nil
}

type integerKind struct{}

func (integerKind) Name() string { return "integer" }

func (integerKind) Validate(value any) error {
	switch v := value.(type) {
	case int, int8, int16, int32, int64:
		return nil
	case float64:
		// JSON unmarshaling produces float64; accept whole numbers.
		if v == float64(int64(v)) {
			return nil
		}
		return fmt.Errorf("expected integer, got fractional number")
	default:
		return fmt.Errorf("expected integer, got %T", value)
	}
}

type decimalKind struct{}

func (decimalKind) Name() string { return "decimal" }

func (decimalKind) Validate(value any) error {
	switch value.(type) {
	case float32, float64, int, int8, int16, int32, int64:
		return nil
	default:
		return fmt.Errorf("expected decimal, got %T", value)
	}
}

type booleanKind struct{}

func (booleanKind) Name() string { return "boolean" }

func (booleanKind) Validate(value any) error {
	if _, ok := value.(bool); !ok {
		return fmt.Errorf("expected boolean, got %T", value)
	}
	return nil
}

// --- Factory Functions ---

// String creates a string kind.
func String() Kind { return stringKind{} }

// Integer creates an integer kind.
func Integer() Kind { return integerKind{} }

// Decimal creates a decimal kind.
func Decimal() Kind { return decimalKind{} }

// Boolean creates a boolean kind.
func Boolean() Kind { return booleanKind{} }

// ParseKind converts a wire name to a Kind.
func ParseKind(name string) (Kind, error) {
	switch name {
	case "string":
		return String(), nil
	case "integer":
		return Integer(), nil
	case "decimal":
		return Decimal(), nil
	case "boolean":
		return Boolean(), nil
	default:
		return nil, fmt.Errorf("unsupported kind: %s", name)
	}
}
