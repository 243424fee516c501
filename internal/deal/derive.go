package deal

// Loan sizing coefficients and depth boundaries. These are fixed policy,
// not configuration.
const (
	// ARVHaircut sizes the as-is value from ARV.
	ARVHaircut = 0.7
	// DrawRatio sizes the purchase draw from the as-is value.
	DrawRatio = 0.8
	// NoRehabRatio sizes the no-rehab loan from the stated value.
	NoRehabRatio = 0.7

	// DepthFullyFundable is the inclusive upper bound (in percent) for a
	// fully fundable deal.
	DepthFullyFundable = 80.0
	// DepthDownpayment is the inclusive upper bound (in percent) for a deal
	// fundable with a downpayment.
	DepthDownpayment = 100.0

	// MinLoanAmount is the smallest loan worth showing an outcome for.
	MinLoanAmount = 10000.0
)

// DerivedValues are the loan quantities computed from a Scenario. Each field
// is nil whenever an input it depends on is unset, or (for Depth) the
// denominator is not strictly positive. Values are full precision; rounding
// belongs to the presentation layer.
type DerivedValues struct {
	AsIsValue    *float64 // 0.7*arv - rehab
	PurchaseDraw *float64 // 0.8*asIsValue
	TotalLoan    *float64 // purchaseDraw + rehab
	Downpayment  *float64 // purchase - purchaseDraw; negative means none needed
	Depth        *float64 // 100*purchase/asIsValue, percent
	NoRehabLoan  *float64 // 0.7*noRehabValue
}

// Derive computes all derived values for the scenario. It never fails: any
// incomplete or degenerate input simply leaves the dependent values nil.
func Derive(s Scenario) DerivedValues {
	var d DerivedValues

	if s.ARV != nil && s.Rehab != nil {
		asIs := ARVHaircut*(*s.ARV) - *s.Rehab
		draw := DrawRatio * asIs
		total := draw + *s.Rehab
		d.AsIsValue = &asIs
		d.PurchaseDraw = &draw
		d.TotalLoan = &total

		if s.Purchase != nil {
			down := *s.Purchase - draw
			d.Downpayment = &down
			// Zero or negative as-is value cannot anchor a ratio; leave
			// depth unset rather than producing Inf/NaN.
			if asIs > 0 {
				depth := 100 * *s.Purchase / asIs
				d.Depth = &depth
			}
		}
	}

	if s.NoRehabValue != nil {
		loan := NoRehabRatio * *s.NoRehabValue
		d.NoRehabLoan = &loan
	}

	return d
}
