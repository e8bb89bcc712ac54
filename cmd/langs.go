package cmd

import (
	"github.com/spf13/cobra"
)

// langsCmd represents the langs command.
var langsCmd = newLangsCmd()

func newLangsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "langs",
		Short: "List built-in dictionaries",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return workflow.Languages()
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(langsCmd)
}
