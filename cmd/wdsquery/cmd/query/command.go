// Package query provides the command that looks up free-form star names in
// Simbad.
package query

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/wdsquery/internal/appcontext"
	"github.com/agentstation/wdsquery/internal/cmd/output"
	"github.com/agentstation/wdsquery/internal/cmd/table"
	"github.com/agentstation/wdsquery/internal/starlist"
	"github.com/agentstation/wdsquery/pkg/errors"
)

// Flags holds the query command flags.
type Flags struct {
	Inputs []string
	Column string
}

// NewCommand creates the query command.
func NewCommand(app appcontext.Interface) *cobra.Command {
	flags := &Flags{}
	cmd := &cobra.Command{
		Use:     "query [star...]",
		GroupID: "simbad",
		Short:   "Look up stars by name in Simbad",
		Long: `Query fetches and parses the Simbad record of each star. Names come from
the arguments and from the name column of --input files, which may be CSV,
plain text or HTML tables and may use glob patterns such as lists/**/*.html.

Names are cleaned before lookup: parenthesised text and line breaks are
removed and Greek letters are spelled out. Names listed in the alias file are
replaced by their Simbad equivalent.`,
		Example: `  wdsquery query "alf Cen" "gam And"
  wdsquery query --input doubles.html --col Star
  wdsquery query --input 'lists/**/*.csv' -o json`,
	}
	cmd.Flags().StringSliceVarP(&flags.Inputs, "input", "i", nil,
		"star list files or glob patterns (.csv, .txt, .html)")
	cmd.Flags().StringVar(&flags.Column, "col", "",
		"name column of the input files (default from config, else Star)")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		stars, err := collectNames(app, flags, args)
		if err != nil {
			return err
		}

		client, err := app.Client()
		if err != nil {
			return err
		}
		logger := app.Logger()
		logger.Info().Int("stars", len(stars)).Msg("About to process stars")
		client.OnLookup(func(name, ident string) {
			ev := logger.Info().Str("name", name)
			if ident != name {
				ev = ev.Str("ident", ident)
			}
			ev.Msg("Processing")
		})

		result, err := client.Query(cmd.Context(), stars)
		if err != nil {
			return err
		}
		if len(result.Failed) > 0 {
			logger.Warn().
				Strs("failed", result.Failed).
				Msgf("Queries failed for %d object name(s); check them at http://simbad.u-strasbg.fr/simbad/sim-fid", len(result.Failed))
		}

		format := output.Format(app.OutputFormat())
		return output.Write(cmd.OutOrStdout(), format,
			table.RecordsToTableData(result.Records, format == output.FormatWide), result)
	}
	return cmd
}

// collectNames gathers star names from args and input files.
func collectNames(app appcontext.Interface, flags *Flags, args []string) ([]string, error) {
	stars := append([]string(nil), args...)

	if len(flags.Inputs) > 0 {
		files, err := starlist.Expand(flags.Inputs)
		if err != nil {
			return nil, err
		}
		column := flags.Column
		if column == "" {
			column = app.Settings().NameColumn
		}
		for _, file := range files {
			names, err := starlist.Read(file, column)
			if err != nil {
				return nil, err
			}
			app.Logger().Debug().Str("file", file).Int("stars", len(names)).Msg("Read star list")
			stars = append(stars, names...)
		}
	}

	if len(stars) == 0 {
		return nil, errors.NewValidationError("star", nil, "no star names given; pass names or --input")
	}
	return stars, nil
}
