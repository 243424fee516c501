package deal

import "testing"

func TestModeString(t *testing.T) {
	if got := RehabRequired.String(); got != "rehab" {
		t.Fatalf("RehabRequired.String() = %q, want %q", got, "rehab")
	}
	if got := NoRehab.String(); got != "no-rehab" {
		t.Fatalf("NoRehab.String() = %q, want %q", got, "no-rehab")
	}
}

func TestModeFromString(t *testing.T) {
	tests := []struct {
		in   string
		want Mode
	}{
		{"rehab", RehabRequired},
		{"no-rehab", NoRehab},
		{"", RehabRequired},
		{"bogus", RehabRequired},
	}
	for _, tt := range tests {
		if got := ModeFromString(tt.in); got != tt.want {
			t.Errorf("ModeFromString(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSetFieldGetRoundTrip(t *testing.T) {
	fields := []Field{FieldARV, FieldRehab, FieldPurchase, FieldNoRehabValue}

	var s Scenario
	for i, f := range fields {
		want := float64(1000 * (i + 1))
		s.SetField(f, amt(want))
		got := s.Get(f)
		if got == nil || *got != want {
			t.Fatalf("Get(%s) = %v, want %v", f, deref(got), want)
		}
	}

	// Clearing one field must not touch the others.
	s.SetField(FieldRehab, nil)
	if s.Get(FieldRehab) != nil {
		t.Fatalf("Get(rehab) = %v after unset, want nil", deref(s.Get(FieldRehab)))
	}
	if s.Get(FieldARV) == nil || s.Get(FieldPurchase) == nil {
		t.Fatal("unsetting rehab cleared an unrelated field")
	}
}

func TestSetFieldUnknownIgnored(t *testing.T) {
	var s Scenario
	s.SetField(Field("square_footage"), amt(1500))
	if s != (Scenario{}) {
		t.Fatalf("unknown field mutated scenario: %+v", s)
	}
	if got := s.Get(Field("square_footage")); got != nil {
		t.Fatalf("Get(unknown) = %v, want nil", deref(got))
	}
}

func TestLoadExampleValues(t *testing.T) {
	s := Scenario{Mode: NoRehab}
	s.LoadExample()

	tests := []struct {
		field Field
		want  float64
	}{
		{FieldARV, ExampleARV},
		{FieldRehab, ExampleRehab},
		{FieldPurchase, ExamplePurchase},
		{FieldNoRehabValue, ExampleNoRehabValue},
	}
	for _, tt := range tests {
		got := s.Get(tt.field)
		if got == nil || *got != tt.want {
			t.Errorf("Get(%s) = %v, want %v", tt.field, deref(got), tt.want)
		}
	}
	if s.Mode != NoRehab {
		t.Fatalf("LoadExample changed mode to %v", s.Mode)
	}
}

func TestClearKeepsMode(t *testing.T) {
	s := Scenario{Mode: NoRehab}
	s.LoadExample()
	s.Clear()

	if s.ARV != nil || s.Rehab != nil || s.Purchase != nil || s.NoRehabValue != nil {
		t.Fatalf("Clear left values set: %+v", s)
	}
	if s.Mode != NoRehab {
		t.Fatalf("Clear changed mode to %v", s.Mode)
	}
}
