package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/marcus/signup/internal/config"
	"github.com/marcus/signup/internal/output"
	"github.com/marcus/signup/pkg/page"
	"github.com/marcus/signup/pkg/signup"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"
)

var (
	// ErrNoTerminal is returned when the dialog cannot take over the terminal.
	ErrNoTerminal = errors.New("signup needs an interactive terminal; use 'signup validate' for scripted checks")
	// ErrCancelled is returned by --require when no form was committed.
	ErrCancelled = errors.New("signup cancelled")
)

// flagKeys maps flags that shadow a config key to that key.
var flagKeys = map[string]string{
	"format":       "output_format",
	"tiers":        "tiers",
	"focus-delay":  "initial_focus_delay_ms",
	"dismiss-keys": "dismiss_keys",
	"lock-scroll":  "lock_scroll",
	"title":        "title",
	"description":  "description",
}

func addRunFlags(fs *pflag.FlagSet) {
	fs.String("format", "", "output format for the committed form: text, json or yaml")
	fs.String("tiers", "", "comma-separated experience tiers offered in the dialog")
	fs.Int("focus-delay", 0, "milliseconds before the first field takes focus")
	fs.String("dismiss-keys", "", "comma-separated keys that close the dialog")
	fs.Bool("lock-scroll", true, "lock page scrolling while the dialog is open")
	fs.String("title", "", "dialog title")
	fs.String("description", "", "dialog description (markdown)")

	fs.Bool("open", false, "open the dialog on start")
	fs.Bool("confirm", false, "ask for confirmation after the form is submitted")
	fs.Bool("require", false, "exit non-zero when the dialog is cancelled")
	fs.String("page", "", "markdown file shown behind the dialog")
	fs.String("log-file", "", "write logs to this file")
	fs.String("log-format", "text", "log format: text or json")
	fs.Bool("debug", false, "log at debug level")
}

// applyFlagOverrides stores every explicitly set config flag in cfg.
func applyFlagOverrides(cfg *config.Config, fs *pflag.FlagSet) error {
	var errs []error
	fs.Visit(func(f *pflag.Flag) {
		key, ok := flagKeys[f.Name]
		if !ok {
			return
		}
		if err := cfg.Set(key, f.Value.String()); err != nil {
			errs = append(errs, fmt.Errorf("--%s: %w", f.Name, err))
		}
	})
	return errors.Join(errs...)
}

// loadConfig reads the config under the base dir and applies fs on top.
func loadConfig(fs *pflag.FlagSet) (*config.Config, error) {
	cfg, err := config.Load(getBaseDir())
	if err != nil {
		return nil, err
	}
	if err := applyFlagOverrides(cfg, fs); err != nil {
		return nil, err
	}
	return cfg, nil
}

type runSettings struct {
	open      bool
	confirm   bool
	require   bool
	pageFile  string
	logFile   string
	logFormat string
	debug     bool
}

func readRunSettings(fs *pflag.FlagSet) runSettings {
	var s runSettings
	s.open, _ = fs.GetBool("open")
	s.confirm, _ = fs.GetBool("confirm")
	s.require, _ = fs.GetBool("require")
	s.pageFile, _ = fs.GetString("page")
	s.logFile, _ = fs.GetString("log-file")
	s.logFormat, _ = fs.GetString("log-format")
	s.debug, _ = fs.GetBool("debug")
	return s
}

// openLogger builds the process logger. Without a path logs are dropped,
// since the dialog owns the terminal.
func openLogger(path, format string, debug bool) (*slog.Logger, func() error, error) {
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() error { return nil }, nil
	}

	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	hopts := &slog.HandlerOptions{Level: level}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	var h slog.Handler
	switch strings.ToLower(format) {
	case "", "text":
		h = slog.NewTextHandler(f, hopts)
	case "json":
		h = slog.NewJSONHandler(f, hopts)
	default:
		f.Close()
		return nil, nil, fmt.Errorf("unknown log format %q (want text or json)", format)
	}
	return slog.New(h), f.Close, nil
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func runSignup(cmd *cobra.Command, _ []string) error {
	fs := cmd.Flags()
	cfg, err := loadConfig(fs)
	if err != nil {
		return report(err)
	}
	settings := readRunSettings(fs)

	logger, closeLog, err := openLogger(settings.logFile, settings.logFormat, settings.debug)
	if err != nil {
		return report(err)
	}
	defer closeLog()
	slog.SetDefault(logger)

	// The dialog draws on stderr so stdout stays clean for the result.
	if !isTerminal(os.Stdin) || !isTerminal(os.Stderr) {
		return report(ErrNoTerminal)
	}

	var pageText string
	if settings.pageFile != "" {
		b, err := os.ReadFile(settings.pageFile)
		if err != nil {
			return report(fmt.Errorf("read page: %w", err))
		}
		pageText = string(b)
	}

	m, err := page.New(page.Options{
		Signup:        cfg.SignupOptions(),
		PageMarkdown:  pageText,
		OpenOnStart:   settings.open,
		QuitOnOutcome: true,
		Logger:        logger,
	})
	if err != nil {
		return report(err)
	}

	final, err := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithOutput(os.Stderr),
		tea.WithContext(cmd.Context()),
	).Run()
	if err != nil {
		return report(fmt.Errorf("run dialog: %w", err))
	}

	var data *signup.FormState
	if pm, ok := final.(page.Model); ok {
		data, _ = pm.Result()
	}

	if data != nil && settings.confirm {
		ok, err := confirmSubmission(data)
		if err != nil {
			return report(err)
		}
		if !ok {
			logger.Info("submission discarded at confirmation")
			data = nil
		}
	}

	if data == nil {
		if settings.require {
			return report(ErrCancelled)
		}
		output.Warning("cancelled, nothing submitted")
		return nil
	}

	if err := output.WriteForm(cmd.OutOrStdout(), data, cfg.Format()); err != nil {
		return report(err)
	}
	return nil
}

// confirmSubmission shows the committed form and asks whether to keep it.
// Aborting the prompt counts as a refusal.
func confirmSubmission(data *signup.FormState) (bool, error) {
	var summary strings.Builder
	if err := output.WriteForm(&summary, data, output.FormatText); err != nil {
		return false, err
	}

	keep := true
	err := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title("Submit this application?").
			Description(strings.TrimRight(summary.String(), "\n")).
			Affirmative("Submit").
			Negative("Discard").
			Value(&keep),
	)).WithOutput(os.Stderr).Run()
	if errors.Is(err, huh.ErrUserAborted) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("confirm: %w", err)
	}
	return keep, nil
}
