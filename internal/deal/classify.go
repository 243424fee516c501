package deal

// Category is the fundability bucket for a scenario.
type Category int

const (
	// NoOutcomeYet means the inputs are incomplete or below the minimum
	// loan guards; nothing should be shown.
	NoOutcomeYet Category = iota
	// FullyFundable means depth <= 80%.
	FullyFundable
	// FundableWithDownpayment means 80% < depth <= 100%.
	FundableWithDownpayment
	// NotFundable means depth > 100%.
	NotFundable
	// NoRehabFunded is the single positive outcome of the no-rehab mode.
	NoRehabFunded
)

// String returns the category's wire/display name.
func (c Category) String() string {
	switch c {
	case FullyFundable:
		return "fully_fundable"
	case FundableWithDownpayment:
		return "downpayment_needed"
	case NotFundable:
		return "not_fundable"
	case NoRehabFunded:
		return "no_rehab_funded"
	}
	return "none"
}

// Outcome is the classification result plus the derived values relevant to
// rendering that category's panel. Fields outside the category's carry set
// are nil.
type Outcome struct {
	Category Category

	AsIsValue    *float64
	PurchaseDraw *float64
	Rehab        *float64
	TotalLoan    *float64
	Downpayment  *float64
	Depth        *float64
	NoRehabLoan  *float64
}

// Classify maps derived values and the active mode to an outcome. It is a
// total pure function; incomplete inputs classify as NoOutcomeYet.
func Classify(s Scenario, d DerivedValues) Outcome {
	if s.Mode == NoRehab {
		return classifyNoRehab(d)
	}
	return classifyRehab(s, d)
}

func classifyRehab(s Scenario, d DerivedValues) Outcome {
	// Guards, most restrictive variant: the loan and the purchase must both
	// clear the minimum, and a rehab-required deal needs actual rehab.
	if d.TotalLoan == nil || *d.TotalLoan <= MinLoanAmount {
		return Outcome{}
	}
	if s.Rehab == nil || *s.Rehab <= 0 {
		return Outcome{}
	}
	if s.Purchase == nil || *s.Purchase <= MinLoanAmount {
		return Outcome{}
	}
	if d.Depth == nil {
		return Outcome{}
	}

	depth := *d.Depth
	switch {
	case depth <= DepthFullyFundable:
		return Outcome{
			Category:     FullyFundable,
			AsIsValue:    d.AsIsValue,
			PurchaseDraw: d.PurchaseDraw,
			Rehab:        s.Rehab,
			TotalLoan:    d.TotalLoan,
			Depth:        d.Depth,
		}
	case depth <= DepthDownpayment:
		return Outcome{
			Category:     FundableWithDownpayment,
			AsIsValue:    d.AsIsValue,
			PurchaseDraw: d.PurchaseDraw,
			Rehab:        s.Rehab,
			TotalLoan:    d.TotalLoan,
			Downpayment:  d.Downpayment,
			Depth:        d.Depth,
		}
	default:
		return Outcome{
			Category:  NotFundable,
			AsIsValue: d.AsIsValue,
			Depth:     d.Depth,
		}
	}
}

func classifyNoRehab(d DerivedValues) Outcome {
	if d.NoRehabLoan == nil || *d.NoRehabLoan <= MinLoanAmount {
		return Outcome{}
	}
	return Outcome{
		Category:    NoRehabFunded,
		NoRehabLoan: d.NoRehabLoan,
	}
}
