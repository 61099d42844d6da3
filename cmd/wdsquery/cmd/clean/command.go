// Package clean provides the command that repairs the WDS fixed-width text
// file.
package clean

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/agentstation/wdsquery/internal/appcontext"
	"github.com/agentstation/wdsquery/internal/cmd/output"
	"github.com/agentstation/wdsquery/pkg/constants"
	"github.com/agentstation/wdsquery/pkg/errors"
	"github.com/agentstation/wdsquery/pkg/wds"
)

// NewCommand creates the clean command.
func NewCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:     "clean <input> <output>",
		GroupID: "wds",
		Short:   "Repair truncated records in the WDS fixed-width file",
		Long: `Clean copies the WDS summary file, padding records that lost their last
characters: a 129 character record gets a trailing 0 and a 126 character
record gets 0.00. Records of any other length are reported and dropped.`,
		Example: `  wdsquery clean wdsweb_summ2.txt wds_clean.txt`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := Run(args[0], args[1])
			if err != nil {
				return err
			}
			for _, bad := range stats.Rejected {
				app.Logger().Warn().
					Int("line", bad.Line).
					Int("length", bad.Length).
					Msg("Dropped record with unexpected length")
			}
			return output.WriteAny(cmd.OutOrStdout(), output.Format(app.OutputFormat()), stats)
		},
	}
}

// Run cleans in into out. The output is written to a temporary file and
// moved into place once complete.
func Run(in, out string) (wds.CleanStats, error) {
	var stats wds.CleanStats
	if filepath.Clean(in) == filepath.Clean(out) {
		return stats, errors.NewValidationError("output", out, "must differ from the input file")
	}

	src, err := os.Open(in)
	if err != nil {
		return stats, errors.WrapIO("open", in, err)
	}
	defer func() { _ = src.Close() }()

	dir := filepath.Dir(out)
	if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
		return stats, errors.WrapIO("create", dir, err)
	}
	tmp, err := os.CreateTemp(dir, ".wds_clean_*")
	if err != nil {
		return stats, errors.WrapIO("create", "temp file", err)
	}
	tmpPath := tmp.Name()

	stats, err = wds.Clean(src, tmp)
	if closeErr := tmp.Close(); err == nil && closeErr != nil {
		err = errors.WrapIO("close", out, closeErr)
	}
	if err == nil {
		err = os.Chmod(tmpPath, constants.FilePermissions)
	}
	if err != nil {
		_ = os.Remove(tmpPath)
		return stats, err
	}

	if err := os.Rename(tmpPath, out); err != nil {
		_ = os.Remove(tmpPath)
		return stats, errors.WrapIO("move", out, err)
	}
	return stats, nil
}
