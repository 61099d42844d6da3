// Package system provides the command that runs the whole WDS to Simbad
// chain for one system.
package system

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/wdsquery/internal/appcontext"
	"github.com/agentstation/wdsquery/internal/cmd/globals"
	"github.com/agentstation/wdsquery/internal/cmd/output"
	"github.com/agentstation/wdsquery/internal/cmd/table"
	"github.com/agentstation/wdsquery/pkg/wds"
)

// NewCommand creates the system command.
func NewCommand(app appcontext.Interface) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "system <wds-id>",
		GroupID: "wds",
		Short:   "Fetch Simbad records for the selected components of a WDS system",
		Long: `System selects the components of a WDS system, reconstructs their Simbad
identifiers and fetches and parses the Simbad record of each one.

Identifiers Simbad does not know are reported at the end. Responses are cached
in the cache directory; use --no-cache to query Simbad again.`,
		Example: `  wdsquery system 14396-6050 --wds wdsweb_summ2.txt
  wdsquery system 14396-6050 --filter abc -o yaml`,
		Args: cobra.ExactArgs(1),
	}
	globals.AddFilterFlags(cmd)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		id, err := wds.ParseSystemID(args[0])
		if err != nil {
			return err
		}
		policy, opts, err := globals.ResolveFilter(cmd, app.Settings())
		if err != nil {
			return err
		}
		client, err := app.ClientWithOptions(opts...)
		if err != nil {
			return err
		}

		logger := app.Logger()
		client.OnLookup(func(_, ident string) {
			logger.Info().Str("ident", ident).Msg("Processing")
		})

		result, err := client.System(cmd.Context(), id, policy)
		if err != nil {
			return err
		}
		reportFailed(app, result.Failed)

		format := output.Format(app.OutputFormat())
		if !format.IsTable() {
			return output.WriteAny(cmd.OutOrStdout(), format, result)
		}
		wide := format == output.FormatWide
		w := cmd.OutOrStdout()
		if err := output.Write(w, format, table.ComponentsToTableData(result.Table, wide), nil); err != nil {
			return err
		}
		return output.Write(w, format, table.RecordsToTableData(result.Records, wide), nil)
	}
	return cmd
}

func reportFailed(app appcontext.Interface, failed []string) {
	if len(failed) == 0 {
		return
	}
	app.Logger().Warn().
		Strs("failed", failed).
		Msgf("Queries failed for %d identifier(s)", len(failed))
}
