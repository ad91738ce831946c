package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"lifeos/internal/model"
	"lifeos/internal/store"
)

var (
	profileName      string
	profileCareer    string
	profileValues    string
	profileStrengths string
	profileHobbies   string
	profileLifestyle string
	profileTags      string
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage your profile",
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the stored profile",
	Args:  cobra.NoArgs,
	RunE:  runProfileShow,
}

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update profile fields",
	Long:  `Update profile fields. Only the flags you pass are overwritten.`,
	Args:  cobra.NoArgs,
	RunE:  runProfileSet,
}

func init() {
	f := profileSetCmd.Flags()
	f.StringVar(&profileName, "name", "", "Your name")
	f.StringVar(&profileCareer, "career", "", "Career summary")
	f.StringVar(&profileValues, "values", "", "What you value")
	f.StringVar(&profileStrengths, "strengths", "", "Your strengths")
	f.StringVar(&profileHobbies, "hobbies", "", "Hobbies")
	f.StringVar(&profileLifestyle, "lifestyle", "", "Lifestyle notes")
	f.StringVar(&profileTags, "tags", "", "Free-form tags")

	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileSetCmd)
}

func runProfileShow(cmd *cobra.Command, args []string) error {
	st := openStore()

	var p model.Profile
	found, err := st.GetJSON(store.KeyProfile, &p)
	if err != nil {
		logger.Warn("discarding malformed profile")
		found = false
	}
	if !found {
		fmt.Println("No profile saved yet. Use 'lifeos profile set'.")
		return nil
	}

	printField("Name", p.Name)
	printField("Career", p.Career)
	printField("Values", p.Values)
	printField("Strengths", p.Strengths)
	printField("Hobbies", p.Hobbies)
	printField("Lifestyle", p.Lifestyle)
	printField("Tags", p.Tags)
	return nil
}

func runProfileSet(cmd *cobra.Command, args []string) error {
	st := openStore()

	var p model.Profile
	if _, err := st.GetJSON(store.KeyProfile, &p); err != nil {
		// Corrupt data was backed up; start from an empty profile.
		p = model.Profile{}
	}

	f := cmd.Flags()
	if f.Changed("name") {
		p.Name = profileName
	}
	if f.Changed("career") {
		p.Career = profileCareer
	}
	if f.Changed("values") {
		p.Values = profileValues
	}
	if f.Changed("strengths") {
		p.Strengths = profileStrengths
	}
	if f.Changed("hobbies") {
		p.Hobbies = profileHobbies
	}
	if f.Changed("lifestyle") {
		p.Lifestyle = profileLifestyle
	}
	if f.Changed("tags") {
		p.Tags = profileTags
	}

	if err := st.PutJSON(store.KeyProfile, p); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	fmt.Println("Profile saved.")
	return nil
}

// printField prints a labelled value, skipping empty fields.
func printField(label, value string) {
	if value == "" {
		return
	}
	fmt.Printf("%-12s%s\n", label+":", value)
}
