package cli

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/labelplot/labelplot/pkg/pipeline"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfigFile(t *testing.T) {
	path := writeConfigFile(t, `
width = 1600
style = "dark"
formats = ["svg", "png"]
`)

	cfg, err := loadConfigFile(path)
	if err != nil {
		t.Fatalf("loadConfigFile: %v", err)
	}
	if cfg.Width != 1600 {
		t.Errorf("Width = %v, want 1600", cfg.Width)
	}
	if cfg.Style != "dark" {
		t.Errorf("Style = %q, want dark", cfg.Style)
	}
	if !reflect.DeepEqual(cfg.Formats, []string{"svg", "png"}) {
		t.Errorf("Formats = %v", cfg.Formats)
	}
}

func TestLoadConfigFileMissing(t *testing.T) {
	cfg, err := loadConfigFile(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("missing config should not error: %v", err)
	}
	if !reflect.DeepEqual(cfg, fileConfig{}) {
		t.Errorf("missing config should be zero, got %+v", cfg)
	}
}

func TestLoadConfigFileMalformed(t *testing.T) {
	path := writeConfigFile(t, "width = [not toml")
	if _, err := loadConfigFile(path); err == nil {
		t.Fatal("expected error for malformed config")
	}
}

func TestConfigApply(t *testing.T) {
	cfg := fileConfig{Width: 1600, Height: 900, Style: "dark", Scale: 3}

	t.Run("fills zero fields", func(t *testing.T) {
		opts := pipeline.Options{}
		cfg.apply(&opts)
		if opts.Width != 1600 || opts.Height != 900 {
			t.Errorf("dimensions = %v x %v", opts.Width, opts.Height)
		}
		if opts.Style != "dark" {
			t.Errorf("Style = %q", opts.Style)
		}
		if opts.Scale != 3 {
			t.Errorf("Scale = %v", opts.Scale)
		}
	})

	t.Run("flags win", func(t *testing.T) {
		opts := pipeline.Options{Width: 800, Style: "default"}
		cfg.apply(&opts)
		if opts.Width != 800 {
			t.Errorf("Width = %v, want 800 (flag value)", opts.Width)
		}
		if opts.Style != "default" {
			t.Errorf("Style = %q, want default (flag value)", opts.Style)
		}
	})
}
