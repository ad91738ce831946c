package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"lifeos/internal/principle"
)

var (
	prTitle    string
	prCategory string
	prBody     string
	prTags     string
	prFilter   string
	prRmYes    bool
)

var principleCmd = &cobra.Command{
	Use:   "principle",
	Short: "Manage principle cards",
}

var principleAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a principle card",
	Args:  cobra.NoArgs,
	RunE:  runPrincipleAdd,
}

var principleListCmd = &cobra.Command{
	Use:   "list",
	Short: "List principle cards, newest first",
	Args:  cobra.NoArgs,
	RunE:  runPrincipleList,
}

var principleEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a principle card",
	Long:  `Edit a principle card. Fields without a flag keep their current value.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runPrincipleEdit,
}

var principleRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a principle card",
	Args:  cobra.ExactArgs(1),
	RunE:  runPrincipleRm,
}

func init() {
	for _, c := range []*cobra.Command{principleAddCmd, principleEditCmd} {
		c.Flags().StringVar(&prTitle, "title", "", "Card title")
		c.Flags().StringVar(&prCategory, "category", "", "Card category")
		c.Flags().StringVar(&prBody, "body", "", "Card body text")
		c.Flags().StringVar(&prTags, "tags", "", "Free-form tags")
	}
	principleListCmd.Flags().StringVar(&prFilter, "category", "all", "Only show cards in this category")
	principleRmCmd.Flags().BoolVarP(&prRmYes, "yes", "y", false, "Skip the confirmation prompt")

	principleCmd.AddCommand(principleAddCmd)
	principleCmd.AddCommand(principleListCmd)
	principleCmd.AddCommand(principleEditCmd)
	principleCmd.AddCommand(principleRmCmd)
}

func runPrincipleAdd(cmd *cobra.Command, args []string) error {
	st := openStore()
	cards := principle.Load(st, logger)

	category := prCategory
	if category == "" {
		category = loadConfig().Principle.DefaultCategory
	}

	cards, err := principle.Add(cards, prTitle, category, prBody, prTags)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := principle.Save(st, cards); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	fmt.Printf("Added card %q (%s)\n", cards[0].Title, cards[0].ID)
	return nil
}

func runPrincipleList(cmd *cobra.Command, args []string) error {
	st := openStore()
	cards := principle.Filter(principle.Load(st, logger), prFilter)

	if len(cards) == 0 {
		fmt.Println("No principle cards found.")
		return nil
	}
	for _, p := range cards {
		fmt.Printf("%s  [%s]  %s\n", p.ID, p.Category, p.Title)
		fmt.Printf("    %s\n", p.Body)
		if p.Tags != "" {
			fmt.Printf("    tags: %s\n", p.Tags)
		}
	}
	return nil
}

func runPrincipleEdit(cmd *cobra.Command, args []string) error {
	id := args[0]
	st := openStore()
	cards := principle.Load(st, logger)

	card := principle.Find(cards, id)
	if card == nil {
		fmt.Fprintf(os.Stderr, "No principle card with id %q.\n", id)
		os.Exit(1)
	}

	// Fields without a flag keep their stored value.
	f := cmd.Flags()
	title, category, body, tags := card.Title, card.Category, card.Body, card.Tags
	if f.Changed("title") {
		title = prTitle
	}
	if f.Changed("category") {
		category = prCategory
	}
	if f.Changed("body") {
		body = prBody
	}
	if f.Changed("tags") {
		tags = prTags
	}

	cards, err := principle.Update(cards, id, title, category, body, tags)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := principle.Save(st, cards); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	fmt.Printf("Updated card %s.\n", id)
	return nil
}

func runPrincipleRm(cmd *cobra.Command, args []string) error {
	id := args[0]
	st := openStore()
	cards := principle.Load(st, logger)

	card := principle.Find(cards, id)
	if card == nil {
		fmt.Fprintf(os.Stderr, "No principle card with id %q.\n", id)
		os.Exit(1)
	}
	if !prRmYes && !confirm(fmt.Sprintf("Delete card %q?", card.Title)) {
		fmt.Println("Aborted.")
		return nil
	}

	cards = principle.Remove(cards, id)
	if err := principle.Save(st, cards); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	fmt.Printf("Deleted card %s.\n", id)
	return nil
}
