package schema

import "testing"

func TestValidate_Success(t *testing.T) {
	fields := Fields{
		{ID: "target", Name: "Target", Kind: String()},
		{ID: "row", Name: "Row", Kind: Integer()},
		{ID: "scale", Name: "Scale", Kind: Decimal()},
		{ID: "double", Name: "Double click", Kind: Boolean()},
	}

	data := map[string]any{
		"target": "wnd[0]/usr/tblData",
		"row":    3,
		"scale":  1.5,
		"double": true,
	}

	if err := Validate(fields, data); err != nil {
		t.Errorf("Validate() error = %v, want nil", err)
	}
}

func TestValidate_JSONNumbers(t *testing.T) {
	fields := Fields{
		{ID: "row", Name: "Row", Kind: Integer()},
	}

	// JSON decoding yields float64 for every number.
	if err := Validate(fields, map[string]any{"row": float64(7)}); err != nil {
		t.Errorf("whole float64 should validate as integer, got %v", err)
	}

	err := Validate(fields, map[string]any{"row": 7.5})
	if err == nil {
		t.Fatal("fractional float64 should not validate as integer")
	}
	assertClass(t, err, ViolationWrongType)
}

func TestValidate_MissingField(t *testing.T) {
	fields := Fields{
		{ID: "target", Name: "Target", Kind: String()},
		{ID: "value", Name: "Value", Kind: String()},
	}

	err := Validate(fields, map[string]any{"target": "wnd[0]"})
	if err == nil {
		t.Fatal("Validate() should return error for missing field")
	}

	verr := assertClass(t, err, ViolationMissing)
	if verr.Key != "value" {
		t.Errorf("error Key = %q, want value", verr.Key)
	}
}

func TestValidate_TypeMismatch(t *testing.T) {
	fields := Fields{
		{ID: "row", Name: "Row", Kind: Integer()},
	}

	err := Validate(fields, map[string]any{"row": "not a number"})
	if err == nil {
		t.Fatal("Validate() should return error for type mismatch")
	}

	verr := assertClass(t, err, ViolationWrongType)
	if verr.Key != "row" {
		t.Errorf("error Key = %q, want row", verr.Key)
	}
}

func TestValidate_UnexpectedField(t *testing.T) {
	fields := Fields{
		{ID: "target", Name: "Target", Kind: String()},
	}

	err := Validate(fields, map[string]any{
		"target": "wnd[0]",
		"zz":     1,
		"aa":     2,
	})
	if err == nil {
		t.Fatal("Validate() should return error for unexpected field")
	}

	verr := assertClass(t, err, ViolationUnexpected)
	// Deterministic: sorted key order.
	if verr.Key != "aa" {
		t.Errorf("error Key = %q, want aa", verr.Key)
	}
}

func TestValidate_DeclarationOrderPrecedence(t *testing.T) {
	fields := Fields{
		{ID: "first", Name: "First", Kind: String()},
		{ID: "second", Name: "Second", Kind: String()},
	}

	// Both are missing; the first declared field wins.
	err := Validate(fields, map[string]any{})
	verr := assertClass(t, err, ViolationMissing)
	if verr.Key != "first" {
		t.Errorf("error Key = %q, want first", verr.Key)
	}
}

func TestValidate_EmptySchema(t *testing.T) {
	if err := Validate(nil, map[string]any{}); err != nil {
		t.Errorf("empty schema with empty data should validate, got %v", err)
	}

	err := Validate(nil, map[string]any{"stray": 1})
	if err == nil {
		t.Fatal("empty schema should reject any supplied parameter")
	}
	assertClass(t, err, ViolationUnexpected)
}

func TestConform_FiltersUndeclaredOutputs(t *testing.T) {
	outputs := Fields{
		{ID: "value", Name: "Value", Kind: String()},
	}

	got := Conform(outputs, map[string]any{
		"value":    "hello",
		"internal": 42,
	})

	if got["value"] != "hello" {
		t.Errorf("Conform() value = %v, want hello", got["value"])
	}
	if _, ok := got["internal"]; ok {
		t.Error("Conform() should drop undeclared outputs")
	}
}

func assertClass(t *testing.T, err error, class ViolationClass) *ValidationError {
	t.Helper()
	verr, ok := err.(*ValidationError)
	if !ok {
		t.Fatalf("error should be *ValidationError, got %T", err)
	}
	if verr.Class != class {
		t.Fatalf("error Class = %d, want %d", verr.Class, class)
	}
	return verr
}
