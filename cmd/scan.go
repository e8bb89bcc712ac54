package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/glossa/internal/domain"
)

// scanCmd represents the scan command.
var scanCmd = newScanCmd()

const scanLongDescription = `Scan lists every string literal in the given documents together with the
decision glossa would take for it. Nothing is written.

Without --lang only the name and content heuristics are applied. With a
language the literals are also translated, so eligible literals with no
dictionary words are reported as "skip: no match".`

func newScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan SRC...",
		Short: "Show which literals would be translated",
		Long:  scanLongDescription,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.Scan(domain.ScanArgs{SourceArgs: sourceArgs(args)})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(scanCmd)
}
