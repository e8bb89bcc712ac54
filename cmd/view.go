package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/glossa/internal/domain"
	m "github.com/mouse-blink/glossa/internal/model"
)

var viewReportsFlag string

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "View previously saved run reports",
		Long:  "View run reports saved with --report from a reports directory.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			dir := cfg.Reports
			if cmd.Flags().Changed("reports") {
				dir = viewReportsFlag
			}

			return workflow.View(domain.ViewArgs{Reports: m.Path(dir)})
		},
	}
	cmd.Flags().StringVarP(&viewReportsFlag, "reports", "r", "", "reports directory (defaults to the configured one)")

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
