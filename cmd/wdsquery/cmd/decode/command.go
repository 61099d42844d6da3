// Package decode provides the command that extracts WDS system ids from
// Simbad WDS identifiers.
package decode

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/wdsquery/internal/appcontext"
	"github.com/agentstation/wdsquery/internal/cmd/output"
	"github.com/agentstation/wdsquery/internal/cmd/table"
	"github.com/agentstation/wdsquery/pkg/value"
	"github.com/agentstation/wdsquery/pkg/wds"
)

// Decoded pairs an identifier with its system id.
type Decoded struct {
	Input string      `json:"input" yaml:"input"`
	WDS   value.Value `json:"wds" yaml:"wds"`
}

// NewCommand creates the decode command.
func NewCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:     "decode <simbad-wds-id>...",
		GroupID: "simbad",
		Short:   "Extract the WDS system id from Simbad WDS identifiers",
		Long: `Decode drops the leading J and any component suffix from a Simbad WDS
identifier, leaving the ten character WDS system id. Identifiers shorter than
eleven characters have no system id.`,
		Example: `  wdsquery decode J14396-6050A J00057+4549AB`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			decoded := make([]value.Value, len(args))
			result := make([]Decoded, len(args))
			for i, arg := range args {
				decoded[i] = wds.DecodeSimbadID(value.Text(arg))
				result[i] = Decoded{Input: arg, WDS: decoded[i]}
			}
			return output.Write(cmd.OutOrStdout(), output.Format(app.OutputFormat()),
				table.DecodedToTableData(args, decoded), result)
		},
	}
}
