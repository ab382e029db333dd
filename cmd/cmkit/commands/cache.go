package commands

import (
	"github.com/cmkit/cmkit/internal/app"
	"github.com/spf13/cobra"
)

func (c *CLI) newCacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Show the loaded CMake cache entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			all, _ := cmd.Flags().GetBool("all")
			asJSON, _ := cmd.Flags().GetBool("json")

			return c.app.Cache(cmd.Context(), cmd.OutOrStdout(), app.CacheOptions{
				All:  all,
				JSON: asJSON,
			})
		},
	}
	cmd.Flags().BoolP("all", "a", false, "Include advanced and internal entries")
	cmd.Flags().Bool("json", false, "Emit entries as JSON")
	return cmd
}
