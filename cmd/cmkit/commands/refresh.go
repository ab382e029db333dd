package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newRefreshCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Reload the cache and compilation database from disk",
		Long: "Reload cmkit's view of the binary directory without running CMake. " +
			"Useful after a build step that reran a stale configure.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Refresh(cmd.Context())
		},
	}
}
