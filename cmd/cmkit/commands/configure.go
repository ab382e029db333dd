package commands

import (
	"github.com/cmkit/cmkit/internal/app"
	"github.com/spf13/cobra"
)

func (c *CLI) newConfigureCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "configure [-- cmake-args...]",
		Short: "Run the configure step",
		Long: "Run CMake's configure step for the project, with the active kit's " +
			"arguments applied. Arguments after -- are passed through to CMake.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clean, _ := cmd.Flags().GetBool("clean")

			return c.app.Configure(cmd.Context(), app.ConfigureOptions{
				Args:   args,
				Clean:  clean,
				Output: cmd.OutOrStdout(),
			})
		},
	}
	cmd.Flags().BoolP("clean", "c", false, "Delete the cache and intermediate files before configuring")
	return cmd
}
