package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/marcus/signup/internal/output"
	"github.com/spf13/cobra"
)

var (
	version string
	baseDir string
	dirFlag string
)

// SetVersion sets the version string
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

var rootCmd = &cobra.Command{
	Use:   "signup",
	Short: "Terminal signup form in a modal dialog",
	Long: `signup - A landing page with an application form that opens in a modal dialog.

The dialog traps focus, closes on Escape or a click outside it, and validates
each field before it commits. The committed form is printed to stdout.`,
	Args:          cobra.NoArgs,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runSignup,
}

// reportedError wraps an error the command already printed.
type reportedError struct {
	err error
}

func (e reportedError) Error() string { return e.err.Error() }
func (e reportedError) Unwrap() error { return e.err }

// report prints err the way every command does and marks it printed.
func report(err error) error {
	output.Error("%v", err)
	return reportedError{err: err}
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		var rep reportedError
		if !errors.As(err, &rep) {
			output.Error("%v", err)
			if name := firstNonFlagArg(os.Args[1:]); name != "" && strings.HasPrefix(err.Error(), "unknown command") {
				output.Warning("%q is not a signup command; run 'signup --help'", name)
			}
		}
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initBaseDir)
	rootCmd.PersistentFlags().StringVar(&dirFlag, "dir", "", "directory holding .signup/config.json (default: working directory)")
	addRunFlags(rootCmd.Flags())

	rootCmd.AddCommand(newValidateCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newTreeCmd())
	rootCmd.AddCommand(versionCmd)
}

func initBaseDir() {
	if dirFlag != "" {
		baseDir = dirFlag
		return
	}
	var err error
	baseDir, err = os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot determine working directory: %v\n", err)
		os.Exit(1)
	}
}

// getBaseDir returns the directory the config is read from
func getBaseDir() string {
	return baseDir
}

// firstNonFlagArg returns the first argument that does not start with "-".
func firstNonFlagArg(args []string) string {
	for _, a := range args {
		if !strings.HasPrefix(a, "-") {
			return a
		}
	}
	return ""
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		v := version
		if v == "" {
			v = "dev"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "signup %s\n", v)
	},
}
