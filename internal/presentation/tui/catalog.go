package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/gantrykit/gantry/pkg/domain"
	"github.com/gantrykit/gantry/pkg/schema"
)

// NewRenderer returns a function that renders markdown for the terminal.
func NewRenderer() func(string) (string, error) {
	r, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
	)

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}

// CatalogMarkdown formats the instruction catalog as a markdown document.
func CatalogMarkdown(friendlyName string, catalog []domain.Instruction) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n%d instructions available.\n\n", friendlyName, len(catalog))

	for _, instr := range catalog {
		fmt.Fprintf(&b, "## %s\n\n`%s`: %s\n\n", instr.Name, instr.ID, instr.Description)

		if len(instr.Parameters) > 0 {
			b.WriteString("**Parameters**\n\n")
			writeFields(&b, instr.Parameters)
		}
		if len(instr.Outputs) > 0 {
			b.WriteString("**Outputs**\n\n")
			writeFields(&b, instr.Outputs)
		}
	}

	return b.String()
}

func writeFields(b *strings.Builder, fields schema.Fields) {
	for _, f := range fields {
		fmt.Fprintf(b, "- `%s` (%s): %s\n", f.ID, f.Kind.Name(), f.Name)
	}
	b.WriteString("\n")
}
