package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/marcus/signup/internal/output"
	"github.com/marcus/signup/pkg/signup"
)

const configFile = ".signup/config.json"

// Keys accepted by Set and Get, in display order.
var Keys = []string{
	"tiers",
	"initial_focus_delay_ms",
	"dismiss_keys",
	"lock_scroll",
	"output_format",
	"title",
	"description",
}

// ErrUnknownKey is returned for a key not in Keys.
var ErrUnknownKey = errors.New("unknown config key")

// Config is the on-disk configuration. Unset fields fall back to the
// dialog defaults.
type Config struct {
	Tiers               []string `json:"tiers,omitempty"`
	InitialFocusDelayMS *int     `json:"initial_focus_delay_ms,omitempty"`
	DismissKeys         []string `json:"dismiss_keys,omitempty"`
	LockScroll          *bool    `json:"lock_scroll,omitempty"`
	OutputFormat        string   `json:"output_format,omitempty"`
	Title               string   `json:"title,omitempty"`
	Description         string   `json:"description,omitempty"`
}

// Path returns the config file location under baseDir.
func Path(baseDir string) string {
	return filepath.Join(baseDir, configFile)
}

// Load reads the config from disk. A missing file yields an empty config.
func Load(baseDir string) (*Config, error) {
	data, err := os.ReadFile(Path(baseDir))
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", configFile, err)
	}
	return &cfg, nil
}

// Save writes the config to disk using a temp file and rename.
func Save(baseDir string, cfg *Config) error {
	target := Path(baseDir)
	dir := filepath.Dir(target)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "config-*.json.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, target)
}

// SignupOptions applies the config on top of the dialog defaults.
func (c *Config) SignupOptions() signup.Options {
	opts := signup.DefaultOptions()
	if len(c.Tiers) > 0 {
		opts.Tiers = slices.Clone(c.Tiers)
	}
	if c.InitialFocusDelayMS != nil {
		opts.InitialFocusDelay = time.Duration(*c.InitialFocusDelayMS) * time.Millisecond
	}
	if len(c.DismissKeys) > 0 {
		opts.DismissKeys = slices.Clone(c.DismissKeys)
	}
	if c.LockScroll != nil {
		opts.LockScroll = *c.LockScroll
	}
	if c.Title != "" {
		opts.Title = c.Title
	}
	if c.Description != "" {
		opts.Description = c.Description
	}
	return opts
}

// Format returns the configured output format, defaulting to text.
func (c *Config) Format() output.Format {
	f, err := output.ParseFormat(c.OutputFormat)
	if err != nil {
		return output.FormatText
	}
	return f
}

// Set parses value and stores it under key.
func (c *Config) Set(key, value string) error {
	switch key {
	case "tiers":
		c.Tiers = splitList(value)
	case "initial_focus_delay_ms":
		ms, err := strconv.Atoi(value)
		if err != nil || ms < 0 {
			return fmt.Errorf("%s: want a non-negative integer, got %q", key, value)
		}
		c.InitialFocusDelayMS = &ms
	case "dismiss_keys":
		c.DismissKeys = splitList(value)
	case "lock_scroll":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%s: want true or false, got %q", key, value)
		}
		c.LockScroll = &b
	case "output_format":
		f, err := output.ParseFormat(value)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		c.OutputFormat = string(f)
	case "title":
		c.Title = value
	case "description":
		c.Description = value
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return nil
}

// Get returns the stored value of key, or "" when unset.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "tiers":
		return strings.Join(c.Tiers, ","), nil
	case "initial_focus_delay_ms":
		if c.InitialFocusDelayMS == nil {
			return "", nil
		}
		return strconv.Itoa(*c.InitialFocusDelayMS), nil
	case "dismiss_keys":
		return strings.Join(c.DismissKeys, ","), nil
	case "lock_scroll":
		if c.LockScroll == nil {
			return "", nil
		}
		return strconv.FormatBool(*c.LockScroll), nil
	case "output_format":
		return c.OutputFormat, nil
	case "title":
		return c.Title, nil
	case "description":
		return c.Description, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
}

// SetValue loads the config under baseDir, sets key and saves it.
func SetValue(baseDir, key, value string) error {
	cfg, err := Load(baseDir)
	if err != nil {
		return err
	}
	if err := cfg.Set(key, value); err != nil {
		return err
	}
	return Save(baseDir, cfg)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
