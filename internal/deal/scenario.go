// Package deal implements the fix-and-flip deal math: scenario inputs,
// derived loan values, and the fundability classification.
package deal

// Mode selects which scenario variant is active.
type Mode int

const (
	// RehabRequired is the purchase + rehab scenario (the default).
	RehabRequired Mode = iota
	// NoRehab is the as-is refinance scenario.
	NoRehab
)

// String returns the mode's wire/display name.
func (m Mode) String() string {
	if m == NoRehab {
		return "no-rehab"
	}
	return "rehab"
}

// ModeFromString parses a mode name, defaulting to RehabRequired.
func ModeFromString(s string) Mode {
	if s == "no-rehab" {
		return NoRehab
	}
	return RehabRequired
}

// Field names a single monetary input on a Scenario.
type Field string

const (
	FieldARV          Field = "arv"
	FieldRehab        Field = "rehab"
	FieldPurchase     Field = "purchase"
	FieldNoRehabValue Field = "no_rehab_value"
)

// Example scenario values loaded by LoadExample.
const (
	ExampleARV          = 200000
	ExampleNoRehabValue = 100000
	ExampleRehab        = 10000
	ExamplePurchase     = 80000
)

// Scenario holds the raw user inputs for one deal. Amounts are nil until the
// user supplies a value; both modes' fields persist across mode switches.
type Scenario struct {
	Mode         Mode
	ARV          *float64
	Rehab        *float64
	Purchase     *float64
	NoRehabValue *float64
}

// SetMode switches the active scenario variant. The inactive mode's fields
// are kept as-is.
func (s *Scenario) SetMode(m Mode) {
	s.Mode = m
}

// SetField sets one monetary input. A nil value marks the field unset
// (e.g. the user cleared the input). Unknown field names are ignored.
// No bounds are enforced here; the classifier guards handle small amounts.
func (s *Scenario) SetField(f Field, v *float64) {
	switch f {
	case FieldARV:
		s.ARV = v
	case FieldRehab:
		s.Rehab = v
	case FieldPurchase:
		s.Purchase = v
	case FieldNoRehabValue:
		s.NoRehabValue = v
	}
}

// Get returns the current value of a monetary input, or nil if unset.
func (s Scenario) Get(f Field) *float64 {
	switch f {
	case FieldARV:
		return s.ARV
	case FieldRehab:
		return s.Rehab
	case FieldPurchase:
		return s.Purchase
	case FieldNoRehabValue:
		return s.NoRehabValue
	}
	return nil
}

// LoadExample overwrites all four amounts with the fixed demo values.
// Mode is untouched.
func (s *Scenario) LoadExample() {
	s.ARV = amount(ExampleARV)
	s.NoRehabValue = amount(ExampleNoRehabValue)
	s.Rehab = amount(ExampleRehab)
	s.Purchase = amount(ExamplePurchase)
}

// Clear resets all four amounts to unset. Mode is untouched.
func (s *Scenario) Clear() {
	s.ARV = nil
	s.Rehab = nil
	s.Purchase = nil
	s.NoRehabValue = nil
}

func amount(v float64) *float64 {
	return &v
}
