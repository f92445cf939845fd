package domain

import "github.com/gantrykit/gantry/pkg/schema"

// InstructionFlags is a bit set describing execution characteristics of an
// instruction.
type InstructionFlags uint32

const (
	// FlagNone marks an instruction with no special characteristics.
	FlagNone InstructionFlags = 0
	// FlagAutomatic marks an instruction as safe to run without an
	// interactive operator.
	FlagAutomatic InstructionFlags = 1 << iota
)

// Has reports whether all bits of other are set.
func (f InstructionFlags) Has(other InstructionFlags) bool {
	return f&other == other
}

// Instruction describes one operation in the engine catalog.
// Descriptors are immutable after registration.
type Instruction struct {
	// ID is the unique, stable identifier callers use to invoke the instruction.
	ID string `json:"id"`
	// Name is the human-readable display name.
	Name string `json:"name"`
	// Description explains what the instruction does.
	Description string `json:"description"`
	// Parameters is the ordered parameter schema.
	Parameters schema.Fields `json:"parameters"`
	// Outputs is the ordered output schema. Empty for instructions that
	// produce no values.
	Outputs schema.Fields `json:"outputs,omitempty"`
	// Flags carries execution characteristics (e.g. automatic-safe).
	Flags InstructionFlags `json:"flags"`
}

// NewInstruction creates a descriptor with the Automatic flag set, matching
// the common case of unattended execution.
func NewInstruction(id, name, description string) Instruction {
	return Instruction{
		ID:          id,
		Name:        name,
		Description: description,
		Flags:       FlagAutomatic,
	}
}

// WithParameter appends a parameter field and returns the descriptor.
func (i Instruction) WithParameter(id, name string, kind schema.Kind) Instruction {
	i.Parameters = append(i.Parameters, schema.Field{ID: id, Name: name, Kind: kind})
	return i
}

// WithOutput appends an output field and returns the descriptor.
func (i Instruction) WithOutput(id, name string, kind schema.Kind) Instruction {
	i.Outputs = append(i.Outputs, schema.Field{ID: id, Name: name, Kind: kind})
	return i
}

// Validate checks the supplied call parameters against this descriptor.
// It returns a *schema.ValidationError describing the first violation found.
func (i Instruction) Validate(call InstructionCall) error {
	return schema.Validate(i.Parameters, call.Parameters)
}

// InstructionCall is one requested execution as received in a batch.
type InstructionCall struct {
	// Instruction is the descriptor ID to execute.
	Instruction string `json:"instruction"`
	// Parameters maps parameter field IDs to values.
	Parameters map[string]any `json:"parameters"`
}

// Output maps output field IDs to the values an executed call produced.
type Output map[string]any
