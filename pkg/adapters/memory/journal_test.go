package memory_test

import (
	"testing"

	"github.com/gantrykit/gantry/pkg/adapters/memory"
	"github.com/gantrykit/gantry/pkg/ports"
)

func TestJournal_Contract(t *testing.T) {
	ports.RunJournalContract(t, func(t *testing.T) ports.RunJournal {
		return memory.NewJournal()
	})
}
