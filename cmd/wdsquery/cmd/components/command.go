// Package components provides the commands that select the components of a
// WDS system and reconstruct their Simbad identifiers.
package components

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/wdsquery/internal/appcontext"
	"github.com/agentstation/wdsquery/internal/cmd/globals"
	"github.com/agentstation/wdsquery/internal/cmd/output"
	"github.com/agentstation/wdsquery/internal/cmd/table"
	"github.com/agentstation/wdsquery/pkg/wds"
)

// Result is the machine-readable output of the components command.
type Result struct {
	System     wds.SystemID    `json:"system" yaml:"system"`
	Policy     string          `json:"policy" yaml:"policy"`
	Components []wds.Component `json:"components" yaml:"components"`
	IDs        []string        `json:"ids" yaml:"ids"`
}

// NewComponentsCommand creates the components command.
func NewComponentsCommand(app appcontext.Interface) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "components <wds-id>",
		Aliases: []string{"comp"},
		GroupID: "wds",
		Short:   "List the selected components of a WDS system",
		Long: `Components looks up a WDS system, sorts its components by label and
applies a selection policy:

  negative  drop sub-components (Aa,Ab), components flagged S, U, X or Y and
            companions more than --max-mag-diff fainter than the primary
  positive  keep only components flagged C, O, T, V or Z
  abc       keep components labelled AB, Aa, AC or BC`,
		Example: `  wdsquery components 14396-6050 --wds wdsweb_summ2.txt
  wdsquery components 14396-6050 --filter positive -o json`,
		Args: cobra.ExactArgs(1),
	}
	globals.AddFilterFlags(cmd)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		result, err := selectComponents(cmd, app, args[0])
		if err != nil {
			return err
		}

		format := output.Format(app.OutputFormat())
		tbl := &wds.Table{System: result.System, Components: result.Components}
		return output.Write(cmd.OutOrStdout(), format,
			table.ComponentsToTableData(tbl, format == output.FormatWide), result)
	}
	return cmd
}

// NewIDsCommand creates the ids command.
func NewIDsCommand(app appcontext.Interface) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "ids <wds-id>",
		GroupID: "wds",
		Short:   "Print the Simbad identifiers of the selected components",
		Long: `Ids selects the components of a WDS system like the components command
and prints the canonical Simbad identifiers built from their labels, for
example J14396-6050A and J14396-6050B.`,
		Example: `  wdsquery ids 14396-6050 --wds wdsweb_summ2.txt
  wdsquery ids 00057+4549 --filter abc -o json`,
		Args: cobra.ExactArgs(1),
	}
	globals.AddFilterFlags(cmd)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		result, err := selectComponents(cmd, app, args[0])
		if err != nil {
			return err
		}
		return output.Write(cmd.OutOrStdout(), output.Format(app.OutputFormat()),
			table.IDsToTableData(result.IDs), result.IDs)
	}
	return cmd
}

func selectComponents(cmd *cobra.Command, app appcontext.Interface, arg string) (*Result, error) {
	id, err := wds.ParseSystemID(arg)
	if err != nil {
		return nil, err
	}
	policy, opts, err := globals.ResolveFilter(cmd, app.Settings())
	if err != nil {
		return nil, err
	}
	client, err := app.ClientWithOptions(opts...)
	if err != nil {
		return nil, err
	}

	tbl, ids, err := client.Components(id, policy)
	if err != nil {
		return nil, err
	}
	app.Logger().Debug().
		Str("wds_id", id.String()).
		Stringer("policy", policy).
		Int("components", tbl.Len()).
		Strs("ids", ids).
		Msg("Selected components")

	return &Result{System: id, Policy: policy.String(), Components: tbl.Components, IDs: ids}, nil
}
