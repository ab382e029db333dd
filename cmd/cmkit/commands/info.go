package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <source-file>",
		Short: "Show the compile command recorded for a source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.CompileInfo(cmd.Context(), cmd.OutOrStdout(), args[0])
		},
	}
}
