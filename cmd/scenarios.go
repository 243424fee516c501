package cmd

import (
	"fmt"

	"flipcalc/internal/cli"
	"flipcalc/internal/config"
	"flipcalc/internal/deal"
	"flipcalc/internal/store"

	"github.com/spf13/cobra"
)

var scenariosCmd = &cobra.Command{
	Use:   "scenarios",
	Short: "List saved scenarios",
	RunE:  runScenariosList,
}

var scenariosShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one saved scenario and its current evaluation",
	Args:  cobra.ExactArgs(1),
	RunE:  runScenariosShow,
}

var scenariosDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a saved scenario",
	Args:  cobra.ExactArgs(1),
	RunE:  runScenariosDelete,
}

func init() {
	scenariosCmd.AddCommand(scenariosShowCmd)
	scenariosCmd.AddCommand(scenariosDeleteCmd)
	rootCmd.AddCommand(scenariosCmd)
}

func openStore() (*store.Store, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return store.Open(config.StorePath(cfg))
}

func runScenariosList(_ *cobra.Command, _ []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	saved, err := st.List()
	if err != nil {
		return err
	}
	if len(saved) == 0 {
		fmt.Println("\n  No saved scenarios. Save one from the interactive panel with `s`.")
		return nil
	}

	rows := make([][]string, 0, len(saved))
	for _, sv := range saved {
		rows = append(rows, []string{
			sv.ID[:8],
			sv.Name,
			sv.Scenario.Mode.String(),
			cli.CategoryLabel(sv.Category),
			sv.CreatedAt.Local().Format("2006-01-02 15:04"),
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Saved Scenarios",
		Headers: []string{"ID", "Name", "Mode", "Outcome", "Saved"},
		Rows:    rows,
	}))
	fmt.Println("\n  Use the full id with show/delete; the list shows the first 8 characters.")
	return nil
}

// resolveID expands a short id prefix to the full stored id.
func resolveID(st *store.Store, prefix string) (string, error) {
	saved, err := st.List()
	if err != nil {
		return "", err
	}
	match := ""
	for _, sv := range saved {
		if sv.ID == prefix {
			return sv.ID, nil
		}
		if len(prefix) >= 4 && len(sv.ID) >= len(prefix) && sv.ID[:len(prefix)] == prefix {
			if match != "" {
				return "", fmt.Errorf("id prefix %q is ambiguous", prefix)
			}
			match = sv.ID
		}
	}
	if match == "" {
		return "", fmt.Errorf("no scenario with id %q", prefix)
	}
	return match, nil
}

func runScenariosShow(_ *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	id, err := resolveID(st, args[0])
	if err != nil {
		return err
	}
	sv, err := st.Get(id)
	if err != nil {
		return err
	}

	s := sv.Scenario
	d := deal.Derive(s)
	o := deal.Classify(s, d)

	fmt.Println()
	fmt.Println(cli.RenderTitle(sv.Name))
	fmt.Println()

	rows := [][]string{
		{"Mode", s.Mode.String()},
		{"After repair value", cli.FormatOptMoney(s.ARV)},
		{"Rehab cost", cli.FormatOptMoney(s.Rehab)},
		{"Purchase price", cli.FormatOptMoney(s.Purchase)},
		{"Property value", cli.FormatOptMoney(s.NoRehabValue)},
		{"Saved", sv.CreatedAt.Local().Format("2006-01-02 15:04")},
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

func runScenariosDelete(_ *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	id, err := resolveID(st, args[0])
	if err != nil {
		return err
	}
	if err := st.Delete(id); err != nil {
		return err
	}
	fmt.Printf("  Deleted %s\n", id)
	return nil
}
