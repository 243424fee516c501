package deal

import (
	"math"
	"testing"
)

func amt(v float64) *float64 { return &v }

func TestDeriveExampleValues(t *testing.T) {
	var s Scenario
	s.LoadExample()

	d := Derive(s)

	if d.AsIsValue == nil || *d.AsIsValue != 130000 {
		t.Fatalf("AsIsValue = %v, want 130000", deref(d.AsIsValue))
	}
	if d.PurchaseDraw == nil || *d.PurchaseDraw != 104000 {
		t.Fatalf("PurchaseDraw = %v, want 104000", deref(d.PurchaseDraw))
	}
	if d.TotalLoan == nil || *d.TotalLoan != 114000 {
		t.Fatalf("TotalLoan = %v, want 114000", deref(d.TotalLoan))
	}
	if d.Downpayment == nil || *d.Downpayment != -24000 {
		t.Fatalf("Downpayment = %v, want -24000", deref(d.Downpayment))
	}
	if d.Depth == nil || math.Abs(*d.Depth-100*80000.0/130000.0) > 1e-12 {
		t.Fatalf("Depth = %v, want ~61.54", deref(d.Depth))
	}
	if d.NoRehabLoan == nil || *d.NoRehabLoan != 70000 {
		t.Fatalf("NoRehabLoan = %v, want 70000", deref(d.NoRehabLoan))
	}
}

func TestDeriveUnsetInputsPropagate(t *testing.T) {
	cases := []struct {
		name string
		s    Scenario
	}{
		{"empty", Scenario{}},
		{"arv only", Scenario{ARV: amt(200000)}},
		{"rehab only", Scenario{Rehab: amt(10000)}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := Derive(tc.s)
			if d.AsIsValue != nil || d.PurchaseDraw != nil || d.TotalLoan != nil {
				t.Fatal("loan values derived from incomplete inputs")
			}
			if d.Depth != nil || d.Downpayment != nil {
				t.Fatal("purchase-dependent values derived from incomplete inputs")
			}
		})
	}
}

func TestDeriveDepthUnsetWithoutPurchase(t *testing.T) {
	s := Scenario{ARV: amt(200000), Rehab: amt(10000)}
	d := Derive(s)

	if d.AsIsValue == nil || *d.AsIsValue != 130000 {
		t.Fatalf("AsIsValue = %v, want 130000", deref(d.AsIsValue))
	}
	if d.Depth != nil {
		t.Fatalf("Depth = %v, want unset without purchase", *d.Depth)
	}
	if d.Downpayment != nil {
		t.Fatalf("Downpayment = %v, want unset without purchase", *d.Downpayment)
	}
}

func TestDeriveZeroOrNegativeAsIsValue(t *testing.T) {
	// 0.7*100000 - 70000 = 0: depth must be unset, not Inf or NaN.
	s := Scenario{ARV: amt(100000), Rehab: amt(70000), Purchase: amt(50000)}
	d := Derive(s)
	if d.Depth != nil {
		t.Fatalf("Depth = %v, want unset for zero as-is value", *d.Depth)
	}

	// Negative as-is value: same policy.
	s.Rehab = amt(90000)
	d = Derive(s)
	if d.AsIsValue == nil || *d.AsIsValue != -20000 {
		t.Fatalf("AsIsValue = %v, want -20000", deref(d.AsIsValue))
	}
	if d.Depth != nil {
		t.Fatalf("Depth = %v, want unset for negative as-is value", *d.Depth)
	}
}

func TestDeriveNoRehabLoan(t *testing.T) {
	s := Scenario{NoRehabValue: amt(100000)}
	d := Derive(s)
	if d.NoRehabLoan == nil || *d.NoRehabLoan != 70000 {
		t.Fatalf("NoRehabLoan = %v, want 70000", deref(d.NoRehabLoan))
	}
}

func deref(p *float64) interface{} {
	if p == nil {
		return "<unset>"
	}
	return *p
}
