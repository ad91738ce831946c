package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"lifeos/internal/store"
)

// Config is the root configuration for lifeos, stored in
// ~/.lifeos/config.json. The file supports single-line // comments for
// documentation purposes.
type Config struct {
	// DataDir overrides the default data directory (~/.lifeos).
	DataDir   string          `json:"data_dir"`
	Principle PrincipleConfig `json:"principle"`
	Routine   RoutineConfig   `json:"routine"`
}

// PrincipleConfig holds principle-card defaults.
type PrincipleConfig struct {
	// DefaultCategory is assigned to cards added without --category.
	DefaultCategory string `json:"default_category"`
}

// RoutineConfig holds routine defaults.
type RoutineConfig struct {
	// DefaultType is assigned to routines added without --type.
	DefaultType string `json:"default_type"`
}

// DefaultCategory is the principle category used when none is configured.
const DefaultCategory = "Inner OS"

// defaultConfig returns a Config pre-filled with sensible defaults.
func defaultConfig() Config {
	return Config{
		Principle: PrincipleConfig{DefaultCategory: DefaultCategory},
		Routine:   RoutineConfig{DefaultType: "Daily"},
	}
}

// configTemplate is the annotated config written on first run.
// Lines whose trimmed content starts with // are stripped before JSON
// parsing, allowing human-readable documentation inside the file.
const configTemplate = `// lifeos configuration – ~/.lifeos/config.json
//
// All settings are optional; the built-in defaults shown below work out
// of the box. Edit this file to customise lifeos behaviour.
{
  // Data directory for all stored records. Empty = ~/.lifeos
  "data_dir": "",

  "principle": {
    // Category assigned to principle cards added without --category.
    "default_category": "Inner OS"
  },

  "routine": {
    // Type assigned to routines added without --type.
    "default_type": "Daily"
  }
}
`

// configFilePath returns the path to ~/.lifeos/config.json.
func configFilePath() (string, error) {
	dir, err := store.DefaultDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// stripLineComments removes lines whose leading non-whitespace content
// starts with //. Only full-line comments are handled; inline comments
// are not stripped.
func stripLineComments(data []byte) []byte {
	var out []byte
	for _, line := range bytes.Split(data, []byte("\n")) {
		if bytes.HasPrefix(bytes.TrimLeft(line, " \t"), []byte("//")) {
			continue
		}
		out = append(out, line...)
		out = append(out, '\n')
	}
	return out
}

// Load reads ~/.lifeos/config.json, creating it with annotated defaults
// on first run. Lines starting with // are treated as comments and
// stripped before JSON parsing.
func Load() (Config, error) {
	path, err := configFilePath()
	if err != nil {
		return defaultConfig(), err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		// First run: write the annotated template so users can discover options.
		if writeErr := writeDefault(path); writeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not create config file %s: %v\n", path, writeErr)
		}
		return defaultConfig(), nil
	}
	if err != nil {
		return defaultConfig(), fmt.Errorf("reading config file %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return defaultConfig(), fmt.Errorf("parsing config file %s: %w\nTip: delete the file to regenerate defaults", path, err)
	}
	return cfg, nil
}

// Parse decodes a commented-JSON config document, backfilling zero-value
// fields with built-in defaults so callers always get a usable Config
// even if the user only partially fills in the file.
func Parse(data []byte) (Config, error) {
	cleaned := stripLineComments(data)
	var cfg Config
	if err := json.Unmarshal(cleaned, &cfg); err != nil {
		return defaultConfig(), err
	}

	if cfg.Principle.DefaultCategory == "" {
		cfg.Principle.DefaultCategory = DefaultCategory
	}
	if cfg.Routine.DefaultType == "" {
		cfg.Routine.DefaultType = "Daily"
	}
	return cfg, nil
}

// writeDefault creates the config directory and writes the annotated
// default config template.
func writeDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(configTemplate), 0o600); err != nil {
		return fmt.Errorf("writing default config: %w", err)
	}
	return nil
}
