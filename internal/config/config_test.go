package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/marcus/signup/internal/output"
	"github.com/marcus/signup/pkg/signup"
)

func TestLoad(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		cfg, err := Load(t.TempDir())
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if cfg.Title != "" || cfg.Tiers != nil || cfg.LockScroll != nil {
			t.Errorf("expected empty config, got %+v", cfg)
		}
	})

	t.Run("existing file", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.MkdirAll(filepath.Join(dir, ".signup"), 0755); err != nil {
			t.Fatalf("setup: mkdir failed: %v", err)
		}
		data := `{"tiers":["junior","senior"],"initial_focus_delay_ms":0,"lock_scroll":false,"title":"Join us"}`
		if err := os.WriteFile(Path(dir), []byte(data), 0644); err != nil {
			t.Fatalf("setup: write failed: %v", err)
		}

		cfg, err := Load(dir)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if len(cfg.Tiers) != 2 || cfg.Tiers[1] != "senior" {
			t.Errorf("Tiers: got %v", cfg.Tiers)
		}
		if cfg.InitialFocusDelayMS == nil || *cfg.InitialFocusDelayMS != 0 {
			t.Errorf("InitialFocusDelayMS: got %v, want explicit 0", cfg.InitialFocusDelayMS)
		}
		if cfg.LockScroll == nil || *cfg.LockScroll {
			t.Errorf("LockScroll: got %v, want explicit false", cfg.LockScroll)
		}
	})

	t.Run("malformed file", func(t *testing.T) {
		dir := t.TempDir()
		os.MkdirAll(filepath.Join(dir, ".signup"), 0755)
		os.WriteFile(Path(dir), []byte("{not json"), 0644)
		if _, err := Load(dir); err == nil {
			t.Error("expected parse error")
		}
	})
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	delay := 250
	in := &Config{Tiers: []string{"a", "b"}, InitialFocusDelayMS: &delay, OutputFormat: "yaml"}
	if err := Save(dir, in); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	entries, _ := os.ReadDir(filepath.Join(dir, ".signup"))
	if len(entries) != 1 {
		t.Errorf("expected only config.json after save, got %d entries", len(entries))
	}

	out, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if *out.InitialFocusDelayMS != 250 || out.OutputFormat != "yaml" || len(out.Tiers) != 2 {
		t.Errorf("round trip mismatch: %+v", out)
	}
}

func TestSignupOptions(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		opts := (&Config{}).SignupOptions()
		def := signup.DefaultOptions()
		if opts.InitialFocusDelay != def.InitialFocusDelay || !opts.LockScroll {
			t.Errorf("expected defaults, got %+v", opts)
		}
		if len(opts.Tiers) != len(signup.DefaultTiers) {
			t.Errorf("Tiers: got %v", opts.Tiers)
		}
	})

	t.Run("overrides", func(t *testing.T) {
		zero := 0
		off := false
		cfg := &Config{
			Tiers:               []string{"x"},
			InitialFocusDelayMS: &zero,
			DismissKeys:         []string{"esc", "q"},
			LockScroll:          &off,
			Title:               "T",
		}
		opts := cfg.SignupOptions()
		if opts.InitialFocusDelay != 0*time.Millisecond {
			t.Errorf("InitialFocusDelay: got %v", opts.InitialFocusDelay)
		}
		if opts.LockScroll {
			t.Error("LockScroll should be off")
		}
		if len(opts.DismissKeys) != 2 || opts.Title != "T" || opts.Tiers[0] != "x" {
			t.Errorf("overrides not applied: %+v", opts)
		}
	})
}

func TestSetGet(t *testing.T) {
	tests := []struct {
		key, value, want string
		wantErr          bool
	}{
		{"tiers", "a, b ,,c", "a,b,c", false},
		{"initial_focus_delay_ms", "0", "0", false},
		{"initial_focus_delay_ms", "-5", "", true},
		{"initial_focus_delay_ms", "soon", "", true},
		{"dismiss_keys", "esc", "esc", false},
		{"lock_scroll", "false", "false", false},
		{"lock_scroll", "maybe", "", true},
		{"output_format", "JSON", "json", false},
		{"output_format", "xml", "", true},
		{"title", "Apply now", "Apply now", false},
		{"colour", "red", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			cfg := &Config{}
			err := cfg.Set(tt.key, tt.value)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Set: %v", err)
			}
			got, err := cfg.Get(tt.key)
			if err != nil {
				t.Fatalf("Get: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUnknownKey(t *testing.T) {
	_, err := (&Config{}).Get("nope")
	if !errors.Is(err, ErrUnknownKey) {
		t.Errorf("expected ErrUnknownKey, got %v", err)
	}
}

func TestSetValue(t *testing.T) {
	dir := t.TempDir()
	if err := SetValue(dir, "output_format", "yaml"); err != nil {
		t.Fatalf("SetValue: %v", err)
	}
	cfg, _ := Load(dir)
	if cfg.Format() != output.FormatYAML {
		t.Errorf("Format: got %q", cfg.Format())
	}
	if (&Config{}).Format() != output.FormatText {
		t.Error("empty format should default to text")
	}
}
