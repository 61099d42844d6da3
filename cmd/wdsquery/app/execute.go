package app

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/agentstation/wdsquery/internal/cmd/globals"
	"github.com/agentstation/wdsquery/internal/cmd/output"
	"github.com/agentstation/wdsquery/pkg/constants"
	"github.com/agentstation/wdsquery/pkg/logging"
)

// Execute runs the wdsquery CLI application with the given arguments.
// This is the main entry point called from main.go.
func (a *App) Execute(ctx context.Context, args []string) error {
	rootCmd := a.createRootCommand()
	rootCmd.SetArgs(args)

	ctx, cancel := context.WithTimeout(ctx, constants.CommandTimeout)
	defer cancel()
	return rootCmd.ExecuteContext(ctx)
}

// createRootCommand creates the root cobra command with all subcommands.
func (a *App) createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "wdsquery",
		Short:   "Cross-reference the WDS double star catalog with Simbad",
		Version: a.version,
		Long: `wdsquery selects the physically associated components of a
Washington Double Star system, reconstructs the Simbad identifiers of those
components and extracts positions, photometry and cross identifications from
the Simbad identifier service.

Responses from Simbad are cached on disk so repeated runs do not query the
service again.`,
		PersistentPreRunE: a.setupCommand,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	rootCmd.AddGroup(&cobra.Group{
		ID:    "wds",
		Title: "WDS Commands:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "simbad",
		Title: "Simbad Commands:",
	})

	globals.AddFlags(rootCmd)
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.config.ConfigFile, "config", "", "config file (default is $HOME/.wdsquery.yaml)")
	flags.StringVar(&a.config.LogLevel, "log-level", "", "log level: trace, debug, info, warn, error (overrides -v/-q)")
	flags.StringVar(&a.config.WDSFile, "wds", "", "WDS catalog file (.dat/.txt fixed width, .csv, .yaml, .json)")
	flags.StringVar(&a.config.CacheDir, "cache-dir", "", "directory for cached Simbad responses (default Simbad)")
	flags.StringVar(&a.config.AliasesFile, "aliases", "", "CSV of star names and the Simbad names to use instead")
	flags.BoolVar(&a.config.NoCache, "no-cache", false, "ignore cached Simbad responses")

	rootCmd.SetVersionTemplate("wdsquery {{.Version}}\n")

	a.registerCommands(rootCmd)

	return rootCmd
}

// setupCommand is called before any command runs.
func (a *App) setupCommand(cmd *cobra.Command, _ []string) error {
	if a.config.ConfigFile != "" {
		if err := a.config.ReadConfigFile(a.config.ConfigFile); err != nil {
			return err
		}
	}

	a.config.ApplyFlags(globals.Parse(cmd), a.config.LogLevel)
	if _, err := output.ParseFormat(a.config.Format); err != nil {
		return err
	}

	// Reinitialize logger with updated config
	logger := NewLogger(a.config)
	a.logger = &logger
	logging.SetDefault(logger)

	return nil
}

// ExitOnError is a helper that prints an error and exits with status 1.
// This is meant to be used in main.go for top-level error handling.
func ExitOnError(err error) {
	if err != nil {
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		os.Exit(1)
	}
}
