package cmd

import (
	"fmt"

	"github.com/marcus/signup/internal/config"
	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change the dialog configuration",
	}

	setCmd := &cobra.Command{
		Use:       "set <key> <value>",
		Short:     "Store a config value",
		Args:      cobra.ExactArgs(2),
		ValidArgs: config.Keys,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.SetValue(getBaseDir(), args[0], args[1]); err != nil {
				return report(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "SET %s\n", args[0])
			return nil
		},
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print every config key and its stored value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(getBaseDir())
			if err != nil {
				return report(err)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "# %s\n", config.Path(getBaseDir()))
			for _, key := range config.Keys {
				v, err := cfg.Get(key)
				if err != nil {
					return report(err)
				}
				if v == "" {
					v = "(default)"
				}
				fmt.Fprintf(out, "%-24s %s\n", key, v)
			}
			return nil
		},
	}

	cmd.AddCommand(setCmd, showCmd)
	return cmd
}
