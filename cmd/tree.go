package cmd

import (
	"fmt"

	"github.com/marcus/signup/internal/output"
	"github.com/marcus/signup/pkg/page"
	"github.com/spf13/cobra"
)

func newTreeCmd() *cobra.Command {
	var (
		depth  int
		kinds  bool
		labels bool
	)

	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Print the element tree of an open dialog",
		Long: `Open the dialog off-screen and print the page's element tree.

Focusable elements are marked ○, the focused element ●, disabled ones ✗.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd.Flags())
			if err != nil {
				return report(err)
			}
			m, err := page.New(page.Options{Signup: cfg.SignupOptions()})
			if err != nil {
				return report(err)
			}
			if _, err := m.Controller().Open(); err != nil {
				return report(err)
			}

			s := m.Surface()
			s.FireAll()
			root := output.FromSurface(s.Root(), s.ActiveElement())
			fmt.Fprintln(cmd.OutOrStdout(), output.RenderTree(root, output.TreeRenderOptions{
				MaxDepth:   depth,
				ShowKind:   kinds,
				ShowFocus:  true,
				ShowLabels: labels,
			}))
			return nil
		},
	}

	cmd.Flags().IntVar(&depth, "depth", 0, "maximum depth to print (0 = unlimited)")
	cmd.Flags().BoolVar(&kinds, "kind", true, "prefix each element with its kind")
	cmd.Flags().BoolVar(&labels, "labels", true, "show element labels")
	return cmd
}
