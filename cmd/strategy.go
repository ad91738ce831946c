package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"lifeos/internal/model"
	"lifeos/internal/store"
)

var (
	strategyLong        string
	strategyMid         string
	strategyYear        string
	strategyExperiments string
)

var strategyCmd = &cobra.Command{
	Use:   "strategy",
	Short: "Manage your strategy notes",
}

var strategyShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the stored strategy",
	Args:  cobra.NoArgs,
	RunE:  runStrategyShow,
}

var strategySetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update strategy fields",
	Long:  `Update strategy fields. Only the flags you pass are overwritten.`,
	Args:  cobra.NoArgs,
	RunE:  runStrategySet,
}

func init() {
	f := strategySetCmd.Flags()
	f.StringVar(&strategyLong, "long", "", "Long-term direction (10+ years)")
	f.StringVar(&strategyMid, "mid", "", "Mid-term goals (3–5 years)")
	f.StringVar(&strategyYear, "year", "", "Goals for this year")
	f.StringVar(&strategyExperiments, "experiments", "", "Experiments to try")

	strategyCmd.AddCommand(strategyShowCmd)
	strategyCmd.AddCommand(strategySetCmd)
}

func runStrategyShow(cmd *cobra.Command, args []string) error {
	st := openStore()

	var s model.Strategy
	found, err := st.GetJSON(store.KeyStrategy, &s)
	if err != nil {
		logger.Warn("discarding malformed strategy")
		found = false
	}
	if !found {
		fmt.Println("No strategy saved yet. Use 'lifeos strategy set'.")
		return nil
	}

	printField("Long-term", s.Long)
	printField("Mid-term", s.Mid)
	printField("This year", s.Year)
	printField("Experiments", s.Experiments)
	return nil
}

func runStrategySet(cmd *cobra.Command, args []string) error {
	st := openStore()

	var s model.Strategy
	if _, err := st.GetJSON(store.KeyStrategy, &s); err != nil {
		s = model.Strategy{}
	}

	f := cmd.Flags()
	if f.Changed("long") {
		s.Long = strategyLong
	}
	if f.Changed("mid") {
		s.Mid = strategyMid
	}
	if f.Changed("year") {
		s.Year = strategyYear
	}
	if f.Changed("experiments") {
		s.Experiments = strategyExperiments
	}

	if err := st.PutJSON(store.KeyStrategy, s); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	fmt.Println("Strategy saved.")
	return nil
}
