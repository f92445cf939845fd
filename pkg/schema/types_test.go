package schema

import (
	"encoding/json"
	"testing"
)

func TestParseKind(t *testing.T) {
	for _, name := range []string{"string", "integer", "decimal", "boolean"} {
		kind, err := ParseKind(name)
		if err != nil {
			t.Fatalf("ParseKind(%q) error = %v", name, err)
		}
		if kind.Name() != name {
			t.Errorf("ParseKind(%q).Name() = %q", name, kind.Name())
		}
	}

	if _, err := ParseKind("complex"); err == nil {
		t.Error("ParseKind should reject unknown kinds")
	}
}

func TestField_JSONRoundTrip(t *testing.T) {
	f := Field{ID: "tcode", Name: "Transaction Code", Kind: String()}

	data, err := json.Marshal(f)
	if err != nil {
		t.Fatalf("Marshal error = %v", err)
	}

	var back Field
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal error = %v", err)
	}

	if back.ID != f.ID || back.Name != f.Name || back.Kind.Name() != "string" {
		t.Errorf("round trip mismatch: %+v", back)
	}
}

func TestFields_Lookup(t *testing.T) {
	fs := Fields{
		{ID: "a", Name: "A", Kind: String()},
		{ID: "b", Name: "B", Kind: Integer()},
	}

	if _, ok := fs.Lookup("b"); !ok {
		t.Error("Lookup(b) should find the field")
	}
	if _, ok := fs.Lookup("c"); ok {
		t.Error("Lookup(c) should not find a field")
	}
}
