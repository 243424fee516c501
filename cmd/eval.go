package cmd

import (
	"fmt"

	"flipcalc/internal/cli"
	"flipcalc/internal/deal"

	"github.com/spf13/cobra"
)

var (
	flagARV      float64
	flagRehab    float64
	flagPurchase float64
	flagValue    float64
	flagNoRehab  bool
	flagExample  bool
)

func init() {
	rootCmd.Flags().Float64Var(&flagARV, "arv", 0, "After repair value")
	rootCmd.Flags().Float64Var(&flagRehab, "rehab", 0, "Rehab cost")
	rootCmd.Flags().Float64Var(&flagPurchase, "purchase", 0, "Purchase price")
	rootCmd.Flags().Float64Var(&flagValue, "value", 0, "Property value (no-rehab mode)")
	rootCmd.Flags().BoolVar(&flagNoRehab, "no-rehab", false, "Evaluate the no-rehab scenario")
	rootCmd.Flags().BoolVar(&flagExample, "example", false, "Evaluate the built-in example scenario")
}

// evalScenario builds the scenario from command-line flags. Only flags the
// user actually passed count as set inputs.
func evalScenario(cmd *cobra.Command) deal.Scenario {
	var s deal.Scenario

	if flagExample {
		s.LoadExample()
	}
	if flagNoRehab {
		s.Mode = deal.NoRehab
	}

	set := func(name string, field deal.Field, v float64) {
		if cmd.Flags().Changed(name) {
			s.SetField(field, &v)
		}
	}
	set("arv", deal.FieldARV, flagARV)
	set("rehab", deal.FieldRehab, flagRehab)
	set("purchase", deal.FieldPurchase, flagPurchase)
	set("value", deal.FieldNoRehabValue, flagValue)

	return s
}

func anyEvalFlag(cmd *cobra.Command) bool {
	for _, name := range []string{"arv", "rehab", "purchase", "value", "example"} {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}

func runEval(cmd *cobra.Command, _ []string) error {
	// Bare invocation opens the interactive panel.
	if !anyEvalFlag(cmd) {
		return runTUI(cmd, nil)
	}

	s := evalScenario(cmd)
	d := deal.Derive(s)
	o := deal.Classify(s, d)

	fmt.Println()
	fmt.Println(cli.RenderTitle("LOAN FUNDABILITY"))
	fmt.Println()

	rows := [][]string{
		{"Mode", s.Mode.String()},
	}
	addMoney := func(label string, v *float64) {
		rows = append(rows, []string{label, cli.FormatOptMoney(v)})
	}

	if s.Mode == deal.NoRehab {
		addMoney("Property value", s.NoRehabValue)
		addMoney("Loan amount", d.NoRehabLoan)
	} else {
		addMoney("After repair value", s.ARV)
		addMoney("Rehab cost", s.Rehab)
		addMoney("Purchase price", s.Purchase)
		addMoney("As-is value", d.AsIsValue)
		addMoney("Purchase draw", d.PurchaseDraw)
		addMoney("Total loan", d.TotalLoan)
		rows = append(rows, []string{"Depth", cli.FormatOptPercent(d.Depth)})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Scenario",
		Headers: []string{"Input", "Amount"},
		Rows:    rows,
	}))
	fmt.Println()
	fmt.Print(cli.RenderOutcome(o))
	fmt.Println()

	return nil
}
