package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"lifeos/internal/timetable"
)

var (
	ttAddTime     string
	ttAddActivity string
	ttRmYes       bool
)

var timetableCmd = &cobra.Command{
	Use:   "timetable",
	Short: "Manage the daily timetable",
	Long: `Manage the daily timetable. An empty store is seeded with a
built-in template day on first read. "edit" starts an edit session; the
next "add" then updates that entry instead of inserting a new one.`,
}

var timetableListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the timetable sorted by time",
	Args:  cobra.NoArgs,
	RunE:  runTimetableList,
}

var timetableAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an entry, or apply the active edit session",
	Args:  cobra.NoArgs,
	RunE:  runTimetableAdd,
}

var timetableEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Start editing an entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runTimetableEdit,
}

var timetableCancelCmd = &cobra.Command{
	Use:   "cancel",
	Short: "Cancel the active edit session",
	Args:  cobra.NoArgs,
	RunE:  runTimetableCancel,
}

var timetableRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete an entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runTimetableRm,
}

func init() {
	timetableAddCmd.Flags().StringVar(&ttAddTime, "time", "", "Time of day, HH:MM (hour may be a single digit)")
	timetableAddCmd.Flags().StringVar(&ttAddActivity, "activity", "", "Activity description")
	timetableRmCmd.Flags().BoolVarP(&ttRmYes, "yes", "y", false, "Skip the confirmation prompt")

	timetableCmd.AddCommand(timetableListCmd)
	timetableCmd.AddCommand(timetableAddCmd)
	timetableCmd.AddCommand(timetableEditCmd)
	timetableCmd.AddCommand(timetableCancelCmd)
	timetableCmd.AddCommand(timetableRmCmd)
}

func runTimetableList(cmd *cobra.Command, args []string) error {
	st := openStore()
	entries := timetable.Load(st, logger)
	sess := timetable.LoadSession(st, logger)

	for _, e := range timetable.Sort(entries) {
		marker := ""
		if sess.Target() == e.ID {
			marker = "  (editing)"
		}
		fmt.Printf("%s  %-32s %s%s\n", e.Time, e.Activity, e.ID, marker)
	}
	return nil
}

func runTimetableAdd(cmd *cobra.Command, args []string) error {
	st := openStore()
	entries := timetable.Load(st, logger)
	sess := timetable.LoadSession(st, logger)

	var err error
	if sess.Editing() {
		id := sess.Target()
		entries, err = timetable.Update(entries, id, ttAddTime, ttAddActivity)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		sess.Clear()
		if err := timetable.SaveSession(st, sess); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		if err := timetable.Save(st, entries); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		fmt.Printf("Updated entry %s.\n", id)
		return nil
	}

	entries, err = timetable.Insert(entries, ttAddTime, ttAddActivity)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := timetable.Save(st, entries); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	added := entries[len(entries)-1]
	fmt.Printf("Added %s  %s (%s)\n", added.Time, added.Activity, added.ID)
	return nil
}

func runTimetableEdit(cmd *cobra.Command, args []string) error {
	id := args[0]
	st := openStore()
	entries := timetable.Load(st, logger)

	entry := timetable.Find(entries, id)
	if entry == nil {
		fmt.Fprintf(os.Stderr, "No timetable entry with id %q.\n", id)
		os.Exit(1)
	}

	sess := timetable.LoadSession(st, logger)
	sess.StartEdit(id)
	if err := timetable.SaveSession(st, sess); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	fmt.Printf("Editing %s: %s  %s\n", entry.ID, entry.Time, entry.Activity)
	fmt.Println("The next 'timetable add --time ... --activity ...' updates this entry.")
	return nil
}

func runTimetableCancel(cmd *cobra.Command, args []string) error {
	st := openStore()
	sess := timetable.LoadSession(st, logger)
	if !sess.Editing() {
		fmt.Println("No active edit session.")
		return nil
	}
	id := sess.Target()
	sess.Clear()
	if err := timetable.SaveSession(st, sess); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	fmt.Printf("Cancelled editing %s.\n", id)
	return nil
}

func runTimetableRm(cmd *cobra.Command, args []string) error {
	id := args[0]
	st := openStore()
	entries := timetable.Load(st, logger)

	entry := timetable.Find(entries, id)
	if entry == nil {
		fmt.Fprintf(os.Stderr, "No timetable entry with id %q.\n", id)
		os.Exit(1)
	}
	if !ttRmYes && !confirm(fmt.Sprintf("Delete %s  %s (%s)?", entry.Time, entry.Activity, id)) {
		fmt.Println("Aborted.")
		return nil
	}

	entries = timetable.Remove(entries, id)

	// Deleting the entry under edit ends the session, so a later add can
	// never update a nonexistent id.
	sess := timetable.LoadSession(st, logger)
	sess.EntryDeleted(id)
	if err := timetable.SaveSession(st, sess); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if err := timetable.Save(st, entries); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	fmt.Printf("Deleted entry %s.\n", id)
	return nil
}
