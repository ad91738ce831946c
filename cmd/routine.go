package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"lifeos/internal/routine"
)

var (
	rtName   string
	rtType   string
	rtNote   string
	rtFilter string
	rtRmYes  bool
	rtNot    bool
)

var routineCmd = &cobra.Command{
	Use:   "routine",
	Short: "Manage recurring routines",
}

var routineAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a routine",
	Args:  cobra.NoArgs,
	RunE:  runRoutineAdd,
}

var routineListCmd = &cobra.Command{
	Use:   "list",
	Short: "List routines, newest first",
	Args:  cobra.NoArgs,
	RunE:  runRoutineList,
}

var routineEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a routine",
	Long:  `Edit a routine. Fields without a flag keep their current value.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runRoutineEdit,
}

var routineDoneCmd = &cobra.Command{
	Use:   "done <id>",
	Short: "Mark a routine as done today",
	Args:  cobra.ExactArgs(1),
	RunE:  runRoutineDone,
}

var routineRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a routine",
	Args:  cobra.ExactArgs(1),
	RunE:  runRoutineRm,
}

func init() {
	for _, c := range []*cobra.Command{routineAddCmd, routineEditCmd} {
		c.Flags().StringVar(&rtName, "name", "", "Routine name")
		c.Flags().StringVar(&rtType, "type", "", "Routine type (e.g. Daily, Weekly)")
		c.Flags().StringVar(&rtNote, "note", "", "Optional note")
	}
	routineListCmd.Flags().StringVar(&rtFilter, "type", "all", "Only show routines of this type")
	routineDoneCmd.Flags().BoolVar(&rtNot, "not", false, "Clear the done flag instead")
	routineRmCmd.Flags().BoolVarP(&rtRmYes, "yes", "y", false, "Skip the confirmation prompt")

	routineCmd.AddCommand(routineAddCmd)
	routineCmd.AddCommand(routineListCmd)
	routineCmd.AddCommand(routineEditCmd)
	routineCmd.AddCommand(routineDoneCmd)
	routineCmd.AddCommand(routineRmCmd)
}

func runRoutineAdd(cmd *cobra.Command, args []string) error {
	st := openStore()
	routines := routine.Load(st, logger)

	routineType := rtType
	if routineType == "" {
		routineType = loadConfig().Routine.DefaultType
	}

	routines, err := routine.Add(routines, rtName, routineType, rtNote)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := routine.Save(st, routines); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	fmt.Printf("Added routine %q (%s)\n", routines[0].Name, routines[0].ID)
	return nil
}

func runRoutineList(cmd *cobra.Command, args []string) error {
	st := openStore()
	routines := routine.Filter(routine.Load(st, logger), rtFilter)

	if len(routines) == 0 {
		fmt.Println("No routines found.")
		return nil
	}
	for _, r := range routines {
		mark := " "
		if r.Done {
			mark = "x"
		}
		fmt.Printf("[%s] %s  (%s)  %s\n", mark, r.Name, r.Type, r.ID)
		if r.Note != "" {
			fmt.Printf("    %s\n", r.Note)
		}
	}
	return nil
}

func runRoutineEdit(cmd *cobra.Command, args []string) error {
	id := args[0]
	st := openStore()
	routines := routine.Load(st, logger)

	r := routine.Find(routines, id)
	if r == nil {
		fmt.Fprintf(os.Stderr, "No routine with id %q.\n", id)
		os.Exit(1)
	}

	f := cmd.Flags()
	name, routineType, note := r.Name, r.Type, r.Note
	if f.Changed("name") {
		name = rtName
	}
	if f.Changed("type") {
		routineType = rtType
	}
	if f.Changed("note") {
		note = rtNote
	}

	routines, err := routine.Update(routines, id, name, routineType, note)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := routine.Save(st, routines); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	fmt.Printf("Updated routine %s.\n", id)
	return nil
}

func runRoutineDone(cmd *cobra.Command, args []string) error {
	id := args[0]
	st := openStore()
	routines := routine.Load(st, logger)

	if routine.Find(routines, id) == nil {
		fmt.Fprintf(os.Stderr, "No routine with id %q.\n", id)
		os.Exit(1)
	}

	routines = routine.SetDone(routines, id, !rtNot)
	if err := routine.Save(st, routines); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if rtNot {
		fmt.Printf("Routine %s marked as not done.\n", id)
	} else {
		fmt.Printf("Routine %s marked as done.\n", id)
	}
	return nil
}

func runRoutineRm(cmd *cobra.Command, args []string) error {
	id := args[0]
	st := openStore()
	routines := routine.Load(st, logger)

	r := routine.Find(routines, id)
	if r == nil {
		fmt.Fprintf(os.Stderr, "No routine with id %q.\n", id)
		os.Exit(1)
	}
	if !rtRmYes && !confirm(fmt.Sprintf("Delete routine %q?", r.Name)) {
		fmt.Println("Aborted.")
		return nil
	}

	routines = routine.Remove(routines, id)
	if err := routine.Save(st, routines); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	fmt.Printf("Deleted routine %s.\n", id)
	return nil
}
