package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"sensoff/pkg/source"
	"sensoff/pkg/transect"
)

func TestLoad(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "sensoff.yaml")

	tests := []struct {
		name          string
		setup         func(t *testing.T)
		validate      func(t *testing.T, cfg *Config)
		checkFile     func(t *testing.T)
		expectedError bool
	}{
		{
			name:  "NewFile_Defaults",
			setup: func(t *testing.T) {}, // No file
			validate: func(t *testing.T, cfg *Config) {
				if cfg.Offset.Inline != 0 || cfg.Offset.Lateral != 0 {
					t.Errorf("expected zero default offsets, got %+v", cfg.Offset)
				}
				if cfg.Input.HeadRows != source.AutoHeader {
					t.Errorf("expected auto header default, got %d", cfg.Input.HeadRows)
				}
				if mode, err := cfg.EdgeMode(); err != nil || mode != transect.EdgeNaN {
					t.Errorf("expected EdgeNaN default, got %v (err %v)", mode, err)
				}
			},
			checkFile: func(t *testing.T) {
				content, err := os.ReadFile(configPath)
				if err != nil {
					t.Fatalf("failed to read config file: %v", err)
				}
				if !strings.Contains(string(content), "edge: nan") {
					t.Error("config file missing default edge mode")
				}
			},
		},
		{
			name: "ExistingFile_Override",
			setup: func(t *testing.T) {
				data := "offset:\n  inline: 1.5\n  lateral: -0.5\noutput:\n  edge: leg\ninput:\n  xcol: 3\n"
				if err := os.WriteFile(configPath, []byte(data), 0o644); err != nil {
					t.Fatalf("failed to setup test file: %v", err)
				}
			},
			validate: func(t *testing.T, cfg *Config) {
				if cfg.Offset.Inline != 1.5 || cfg.Offset.Lateral != -0.5 {
					t.Errorf("expected offsets (1.5, -0.5), got %+v", cfg.Offset)
				}
				if mode, _ := cfg.EdgeMode(); mode != transect.EdgeLeg {
					t.Errorf("expected EdgeLeg, got %v", mode)
				}
				if cfg.Input.XCol != 3 {
					t.Errorf("expected xcol 3, got %d", cfg.Input.XCol)
				}
				// Untouched keys keep their defaults.
				if cfg.Input.YCol != 2 {
					t.Errorf("expected default ycol 2, got %d", cfg.Input.YCol)
				}
			},
		},
		{
			name: "ExistingFile_BadEdgeMode",
			setup: func(t *testing.T) {
				if err := os.WriteFile(configPath, []byte("output:\n  edge: sideways\n"), 0o644); err != nil {
					t.Fatalf("failed to setup test file: %v", err)
				}
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Remove(configPath)
			tt.setup(t)

			cfg, err := Load(configPath)
			if tt.expectedError {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Load() error: %v", err)
			}
			if tt.validate != nil {
				tt.validate(t, cfg)
			}
			if tt.checkFile != nil {
				tt.checkFile(t)
			}
		})
	}
}

func TestDelimiterRunes(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.InputDelimiter() != ',' {
		t.Errorf("expected comma input delimiter, got %q", cfg.InputDelimiter())
	}

	cfg.Input.Delimiter = "\t"
	cfg.Output.Delimiter = ""
	if cfg.InputDelimiter() != '\t' {
		t.Errorf("expected tab, got %q", cfg.InputDelimiter())
	}
	if cfg.OutputDelimiter() != ',' {
		t.Errorf("empty delimiter should fall back to comma, got %q", cfg.OutputDelimiter())
	}
}
