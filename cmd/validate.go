package cmd

import (
	"errors"

	"github.com/marcus/signup/internal/output"
	"github.com/marcus/signup/internal/validate"
	"github.com/marcus/signup/pkg/signup"
	"github.com/spf13/cobra"
)

func newValidateCmd() *cobra.Command {
	var (
		data  signup.FormState
		quiet bool
	)

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check form values without opening the dialog",
		Long: `Run the dialog's field validators on values given as flags.

Prints one line per field and exits non-zero when any field fails.`,
		Example: `  signup validate --name Kim --email kim@example.com --tier 0-3년
  signup validate --email nope --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd.Flags())
			if err != nil {
				return report(err)
			}
			opts := cfg.SignupOptions()

			verr := signup.ValidationError(data, opts.Tiers)
			if quiet {
				var ve *validate.ValidationError
				if errors.As(verr, &ve) {
					for _, fe := range ve.Errors {
						output.Error("%s", output.FieldErrorMessage(fe, opts.Messages))
					}
				}
			} else {
				reports := output.Report(data, opts.Tiers, opts.Messages)
				if err := output.WriteReport(cmd.OutOrStdout(), reports, cfg.Format()); err != nil {
					return report(err)
				}
			}

			if verr != nil {
				return reportedError{err: verr}
			}
			return nil
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&data.Name, "name", "", "name or nickname")
	fs.StringVar(&data.Email, "email", "", "email address")
	fs.StringVar(&data.ExperienceTier, "tier", "", "experience tier")
	fs.StringVar(&data.GithubLink, "github", "", "GitHub profile link")
	fs.String("tiers", "", "comma-separated allowed experience tiers")
	fs.String("format", "", "report format: text, json or yaml")
	fs.BoolVarP(&quiet, "quiet", "q", false, "print only failing fields, to stderr")

	return cmd
}
