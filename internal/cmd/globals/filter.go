package globals

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/wdsquery"
	"github.com/agentstation/wdsquery/internal/config"
	"github.com/agentstation/wdsquery/pkg/filter"
)

// FilterFlags holds the component selection flags.
type FilterFlags struct {
	Policy     string
	MaxMagDiff float64
}

// AddFilterFlags adds component selection flags to a command.
func AddFilterFlags(cmd *cobra.Command) *FilterFlags {
	flags := &FilterFlags{}

	cmd.Flags().StringVarP(&flags.Policy, "filter", "f", "",
		"Component filter: abc, positive, negative (default from config, else negative)")
	cmd.Flags().Float64Var(&flags.MaxMagDiff, "max-mag-diff", 0,
		"Largest magnitude difference kept by the negative filter (default from config, else 3.0)")

	return flags
}

// ResolveFilter returns the selection policy and client options for cmd.
// Flags set on the command line win over configuration settings.
func ResolveFilter(cmd *cobra.Command, settings config.Settings) (filter.Policy, []wdsquery.Option, error) {
	name := settings.Filter
	if cmd.Flags().Changed("filter") {
		name = mustGetString(cmd, "filter")
	}
	policy, err := filter.ParsePolicy(name)
	if err != nil {
		return policy, nil, err
	}

	diff := settings.MaxMagDiff
	if cmd.Flags().Changed("max-mag-diff") {
		diff = mustGetFloat64(cmd, "max-mag-diff")
	}
	return policy, []wdsquery.Option{wdsquery.WithMaxMagDiff(diff)}, nil
}

// mustGetString retrieves a string flag value or panics if the flag doesn't exist.
func mustGetString(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}

// mustGetFloat64 retrieves a float flag value or panics if the flag doesn't exist.
func mustGetFloat64(cmd *cobra.Command, name string) float64 {
	val, err := cmd.Flags().GetFloat64(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}
