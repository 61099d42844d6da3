package completion

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewCommand creates the completion command with its install and uninstall
// subcommands.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion <bash|zsh|fish|powershell>",
		Short: "Generate shell completion scripts",
		Long: `Completion prints a completion script for the given shell. Use the
install subcommand to write it where the shell will find it.`,
		Example: `  source <(wdsquery completion bash)
  wdsquery completion install zsh`,
		Args:                  cobra.ExactArgs(1),
		ValidArgs:             []string{ShellBash, ShellZsh, ShellFish, ShellPowerShell},
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return Generate(cmd.Root(), args[0], cmd.OutOrStdout())
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:       "install <bash|zsh|fish>",
		Short:     "Install the completion script for a shell",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{ShellBash, ShellZsh, ShellFish},
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := Install(cmd.Root(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s completions installed to %s\n", args[0], path)
			fmt.Fprintln(cmd.OutOrStdout(), "Start a new shell session to enable them.")
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:       "uninstall <bash|zsh|fish>",
		Short:     "Remove an installed completion script",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{ShellBash, ShellZsh, ShellFish},
		RunE: func(cmd *cobra.Command, args []string) error {
			removed, err := Uninstall(args[0])
			if err != nil {
				return err
			}
			if removed {
				fmt.Fprintf(cmd.OutOrStdout(), "%s completions removed\n", args[0])
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "no %s completions installed\n", args[0])
			}
			return nil
		},
	})

	return cmd
}
