package app

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/restomap/cmd/restomap/cmd"
)

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	rootCmd.AddCommand(cmd.NewReconcileCommand(a))
	rootCmd.AddCommand(cmd.NewSummaryCommand(a))
	rootCmd.AddCommand(cmd.NewValidateCommand(a))
	rootCmd.AddCommand(a.NewVersionCommand())
}

// NewVersionCommand creates the version command.
func (a *App) NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(c *cobra.Command, _ []string) {
			c.Printf("restomap %s\n", a.version)
			if a.config.Verbose {
				c.Printf("  commit:   %s\n", a.commit)
				c.Printf("  built:    %s\n", a.date)
				c.Printf("  built by: %s\n", a.builtBy)
			}
		},
	}
}
