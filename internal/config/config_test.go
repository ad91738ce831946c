package config_test

import (
	"testing"

	"lifeos/internal/config"
)

func TestParseStripsComments(t *testing.T) {
	data := []byte(`// annotated config
{
  // data directory
  "data_dir": "/tmp/lifeos-test",
  "principle": {
    "default_category": "Work"
  }
}
`)

	cfg, err := config.Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.DataDir != "/tmp/lifeos-test" {
		t.Errorf("DataDir = %q", cfg.DataDir)
	}
	if cfg.Principle.DefaultCategory != "Work" {
		t.Errorf("DefaultCategory = %q", cfg.Principle.DefaultCategory)
	}
}

func TestParseBackfillsDefaults(t *testing.T) {
	cfg, err := config.Parse([]byte(`{}`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Principle.DefaultCategory != config.DefaultCategory {
		t.Errorf("DefaultCategory = %q, want %q", cfg.Principle.DefaultCategory, config.DefaultCategory)
	}
	if cfg.Routine.DefaultType != "Daily" {
		t.Errorf("DefaultType = %q, want Daily", cfg.Routine.DefaultType)
	}
}

func TestParseMalformed(t *testing.T) {
	if _, err := config.Parse([]byte("{bad")); err == nil {
		t.Error("Parse accepted malformed JSON")
	}
}
