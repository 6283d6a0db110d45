package validator

import "testing"

func TestCheck_RecordsFirstError(t *testing.T) {
	v := New()
	v.Check(false, "field", "first")
	v.Check(false, "field", "second")

	if v.Valid() {
		t.Fatal("expected validator to be invalid")
	}
	if got := v.Errors["field"]; got != "first" {
		t.Fatalf("expected first message to win, got %q", got)
	}
}

func TestValid_NoErrors(t *testing.T) {
	v := New()
	v.Check(true, "field", "never recorded")
	if !v.Valid() {
		t.Fatalf("expected valid, got errors: %v", v.Errors)
	}
}

func TestIn(t *testing.T) {
	if !In("tr", "tr", "en", "ar") {
		t.Fatal("expected tr to be in list")
	}
	if In("de", "tr", "en", "ar") {
		t.Fatal("did not expect de to be in list")
	}
}
