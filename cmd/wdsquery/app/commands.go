package app

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/agentstation/wdsquery/cmd/wdsquery/cmd/clean"
	"github.com/agentstation/wdsquery/cmd/wdsquery/cmd/components"
	"github.com/agentstation/wdsquery/cmd/wdsquery/cmd/decode"
	"github.com/agentstation/wdsquery/cmd/wdsquery/cmd/query"
	"github.com/agentstation/wdsquery/cmd/wdsquery/cmd/system"
	"github.com/agentstation/wdsquery/internal/cmd/completion"
)

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	// WDS commands
	rootCmd.AddCommand(components.NewComponentsCommand(a))
	rootCmd.AddCommand(components.NewIDsCommand(a))
	rootCmd.AddCommand(system.NewCommand(a))
	rootCmd.AddCommand(clean.NewCommand(a))

	// Simbad commands
	rootCmd.AddCommand(query.NewCommand(a))
	rootCmd.AddCommand(decode.NewCommand(a))

	// Utility commands
	rootCmd.AddCommand(a.NewVersionCommand())
	rootCmd.AddCommand(completion.NewCommand())
}

// NewVersionCommand creates the version command.
func (a *App) NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Show version information for the wdsquery CLI.`,
		Run: func(cmd *cobra.Command, _ []string) {
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "wdsquery version %s\n", a.version)
			fmt.Fprintf(w, "commit: %s\n", a.commit)
			fmt.Fprintf(w, "built: %s\n", a.date)
			fmt.Fprintf(w, "built by: %s\n", a.builtBy)
			fmt.Fprintf(w, "go version: %s\n", runtime.Version())
			fmt.Fprintf(w, "platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}
