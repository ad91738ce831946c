package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"lifeos/internal/model"
	"lifeos/internal/principle"
	"lifeos/internal/routine"
	"lifeos/internal/store"
	"lifeos/internal/timetable"
)

var exportCollection string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export stored records as JSON to stdout",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportCollection, "collection", "all",
		"Collection to export: all, profile, strategy, principles, routines, timetable")
}

func runExport(cmd *cobra.Command, args []string) error {
	st := openStore()

	var p model.Profile
	if _, err := st.GetJSON(store.KeyProfile, &p); err != nil {
		p = model.Profile{}
	}
	var s model.Strategy
	if _, err := st.GetJSON(store.KeyStrategy, &s); err != nil {
		s = model.Strategy{}
	}

	collections := map[string]any{
		"profile":    p,
		"strategy":   s,
		"principles": orEmpty(principle.Load(st, logger)),
		"routines":   orEmptyRoutines(routine.Load(st, logger)),
		"timetable":  timetable.Sort(timetable.Load(st, logger)),
	}

	var out any = collections
	if exportCollection != "all" {
		c, ok := collections[exportCollection]
		if !ok {
			fmt.Fprintf(os.Stderr, "Unknown collection %q.\n", exportCollection)
			os.Exit(1)
		}
		out = c
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		fmt.Fprintln(os.Stderr, "error encoding JSON:", err)
		os.Exit(2)
	}
	fmt.Println(string(data))
	return nil
}

func orEmpty(c principle.Collection) principle.Collection {
	if c == nil {
		return principle.Collection{}
	}
	return c
}

func orEmptyRoutines(c routine.Collection) routine.Collection {
	if c == nil {
		return routine.Collection{}
	}
	return c
}
