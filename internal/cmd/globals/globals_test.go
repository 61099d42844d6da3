package globals

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/wdsquery/internal/config"
	"github.com/agentstation/wdsquery/pkg/errors"
	"github.com/agentstation/wdsquery/pkg/filter"
)

func TestResolveFilter(t *testing.T) {
	settings := config.Settings{Filter: "positive", MaxMagDiff: 3}

	tests := []struct {
		name    string
		args    []string
		want    filter.Policy
		wantErr bool
	}{
		{"from settings", nil, filter.PolicyPositive, false},
		{"flag wins", []string{"--filter", "abc"}, filter.PolicyABC, false},
		{"short flag", []string{"-f", "NEGATIVE", "--max-mag-diff", "5"}, filter.PolicyNegative, false},
		{"unknown", []string{"--filter", "abs"}, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &cobra.Command{Use: "components"}
			AddFilterFlags(cmd)
			require.NoError(t, cmd.ParseFlags(tt.args))

			policy, opts, err := ResolveFilter(cmd, settings)
			if tt.wantErr {
				assert.True(t, errors.IsUnknownPolicy(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, policy)
			assert.Len(t, opts, 1)
		})
	}
}

func TestParseGlobalFlags(t *testing.T) {
	root := &cobra.Command{Use: "wdsquery"}
	AddFlags(root)
	child := &cobra.Command{Use: "ids"}
	root.AddCommand(child)

	require.NoError(t, root.PersistentFlags().Parse([]string{"-o", "json", "-v"}))
	flags := Parse(child)
	assert.Equal(t, "json", flags.Output)
	assert.True(t, flags.Verbose)
	assert.False(t, flags.Quiet)
}

func TestFormatFlagAlias(t *testing.T) {
	root := &cobra.Command{Use: "wdsquery"}
	AddFlags(root)

	require.NoError(t, root.PersistentFlags().Parse([]string{"--format", "yaml"}))
	assert.Equal(t, "yaml", Parse(root).Output)
}
