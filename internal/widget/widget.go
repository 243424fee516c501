// Package widget owns the live calculator state for one embedded instance.
// Every mutation synchronously recomputes the derived values and the
// fundability outcome before returning, so readers never observe a scenario
// paired with stale results. Instances are independent; there is no shared
// state, so multiple widgets can coexist.
package widget

import "flipcalc/internal/deal"

// Widget is one calculator instance. Not safe for concurrent use; a widget
// has a single logical owner (the embedding surface) that serializes events.
type Widget struct {
	scenario deal.Scenario
	derived  deal.DerivedValues
	outcome  deal.Outcome
}

// New creates a widget in RehabRequired mode with all amounts unset.
func New() *Widget {
	w := &Widget{}
	w.recompute()
	return w
}

// NewFromScenario creates a widget pre-populated with the given scenario.
func NewFromScenario(s deal.Scenario) *Widget {
	w := &Widget{scenario: s}
	w.recompute()
	return w
}

func (w *Widget) recompute() {
	w.derived = deal.Derive(w.scenario)
	w.outcome = deal.Classify(w.scenario, w.derived)
}

// SetMode switches the scenario variant. The inactive mode's amounts persist.
func (w *Widget) SetMode(m deal.Mode) {
	w.scenario.SetMode(m)
	w.recompute()
}

// SetField sets one monetary input (nil = unset).
func (w *Widget) SetField(f deal.Field, v *float64) {
	w.scenario.SetField(f, v)
	w.recompute()
}

// LoadExample fills all amounts with the demo scenario.
func (w *Widget) LoadExample() {
	w.scenario.LoadExample()
	w.recompute()
}

// Clear unsets all amounts.
func (w *Widget) Clear() {
	w.scenario.Clear()
	w.recompute()
}

// Scenario returns a copy of the current inputs.
func (w *Widget) Scenario() deal.Scenario {
	return w.scenario
}

// Mode returns the active scenario variant.
func (w *Widget) Mode() deal.Mode {
	return w.scenario.Mode
}

// Derived returns the derived values for the current inputs.
func (w *Widget) Derived() deal.DerivedValues {
	return w.derived
}

// Outcome returns the fundability outcome for the current inputs.
func (w *Widget) Outcome() deal.Outcome {
	return w.outcome
}
