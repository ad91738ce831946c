package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"lifeos/internal/config"
	"lifeos/internal/store"
)

var (
	verbose bool
	dataDir string

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "lifeos",
	Short: "Life OS – a personal life-management tracker",
	Long: `lifeos is a single-binary, file-based life-management tracker.
It keeps your profile, strategy notes, principle cards, routines and a
daily timetable as human-readable JSON files in ~/.lifeos/.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.ErrorLevel)
		if verbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = cfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log swallowed errors and debug detail")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "Data directory (default ~/.lifeos, or data_dir from config.json)")

	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(strategyCmd)
	rootCmd.AddCommand(principleCmd)
	rootCmd.AddCommand(routineCmd)
	rootCmd.AddCommand(timetableCmd)
	rootCmd.AddCommand(exportCmd)
}

// openStore resolves the data directory (flag, then config, then the
// default) and opens the record store.
func openStore() *store.Store {
	dir := dataDir
	if dir == "" {
		cfg, err := config.Load()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Warning:", err)
		}
		dir = cfg.DataDir
	}
	if dir == "" {
		d, err := store.DefaultDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		dir = d
	}
	return store.New(dir, logger)
}

// loadConfig returns the config, degrading to defaults with a warning on
// read or parse failure.
func loadConfig() config.Config {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Warning:", err)
	}
	return cfg
}

// confirm prints the prompt and reads a y/N answer from stdin.
func confirm(prompt string) bool {
	fmt.Printf("%s [y/N] ", prompt)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
