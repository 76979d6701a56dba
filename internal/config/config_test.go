package config

import (
	"errors"
	"reflect"
	"testing"
)

// validConfig returns a Config that passes Validate.
func validConfig() *Config {
	cfg := NewConfig()
	cfg.InputDir = "/data"
	cfg.OutMap = "map.txt"
	return cfg
}

// TestNewConfig verifies the defaults.
func TestNewConfig(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()
	if cfg.Pattern != DefaultPattern {
		t.Errorf("expected default pattern, got %q", cfg.Pattern)
	}
	if cfg.DefaultGroup != DefaultGroupPolicy {
		t.Errorf("expected default policy, got %q", cfg.DefaultGroup)
	}
	if cfg.DBDir == "" {
		t.Error("expected a default database directory")
	}
}

// TestPatternList verifies splitting of the comma-separated pattern.
func TestPatternList(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		pattern string
		want    []string
	}{
		{"default list", DefaultPattern, []string{"*.nex", "*.nexus", "*.fasta", "*.fa", "*.fas"}},
		{"single pattern", "*.nex", []string{"*.nex"}},
		{"whitespace trimmed", " *.nex , *.fasta ", []string{"*.nex", "*.fasta"}},
		{"empty entries dropped", "*.nex,,*.fasta,", []string{"*.nex", "*.fasta"}},
		{"empty string", "", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := &Config{Pattern: tt.pattern}
			if got := cfg.PatternList(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

// TestValidate verifies the sentinel errors for each invalid field.
func TestValidate(t *testing.T) {
	t.Parallel()

	t.Run("valid config passes", func(t *testing.T) {
		t.Parallel()
		if err := validConfig().Validate(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("missing input dir", func(t *testing.T) {
		t.Parallel()
		cfg := validConfig()
		cfg.InputDir = ""
		if err := cfg.Validate(); !errors.Is(err, ErrNoInputDir) {
			t.Errorf("expected ErrNoInputDir, got %v", err)
		}
	})

	t.Run("missing output map", func(t *testing.T) {
		t.Parallel()
		cfg := validConfig()
		cfg.OutMap = ""
		if err := cfg.Validate(); !errors.Is(err, ErrNoOutMap) {
			t.Errorf("expected ErrNoOutMap, got %v", err)
		}
	})

	t.Run("empty pattern", func(t *testing.T) {
		t.Parallel()
		cfg := validConfig()
		cfg.Pattern = " , "
		if err := cfg.Validate(); !errors.Is(err, ErrEmptyPattern) {
			t.Errorf("expected ErrEmptyPattern, got %v", err)
		}
	})

	t.Run("invalid default group", func(t *testing.T) {
		t.Parallel()
		cfg := validConfig()
		cfg.DefaultGroup = "genus"
		if err := cfg.Validate(); !errors.Is(err, ErrInvalidDefaultGroup) {
			t.Errorf("expected ErrInvalidDefaultGroup, got %v", err)
		}
	})

	t.Run("all policies accepted", func(t *testing.T) {
		t.Parallel()
		for _, policy := range []string{"species", "NA", "none"} {
			cfg := validConfig()
			cfg.DefaultGroup = policy
			if err := cfg.Validate(); err != nil {
				t.Errorf("policy %q: unexpected error: %v", policy, err)
			}
		}
	})
}
