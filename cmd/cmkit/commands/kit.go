package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newKitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kit",
		Short: "Manage toolchain kits",
	}
	cmd.AddCommand(c.newKitListCmd())
	cmd.AddCommand(c.newKitSetCmd())
	return cmd
}

func (c *CLI) newKitListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the kits defined for this project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.KitList(cmd.Context(), cmd.OutOrStdout())
		},
	}
}

func (c *CLI) newKitSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <name>",
		Short: "Select the active kit",
		Long: "Select the active kit and mark the project stale. The next " +
			"configure runs with the kit's compilers and settings.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clean, _ := cmd.Flags().GetBool("clean")
			return c.app.KitSet(cmd.Context(), args[0], clean)
		},
	}
	cmd.Flags().BoolP("clean", "c", false, "Delete the binary directory before switching kits")
	return cmd
}
