// Package completion generates and installs shell completion scripts for
// the wdsquery CLI.
package completion

import (
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/agentstation/wdsquery/pkg/constants"
	"github.com/agentstation/wdsquery/pkg/errors"
)

// Supported shells.
const (
	ShellBash       = "bash"
	ShellZsh        = "zsh"
	ShellFish       = "fish"
	ShellPowerShell = "powershell"
)

const binary = "wdsquery"

// location describes where a shell looks for completion files, relative to
// a Homebrew prefix and to the user's home directory.
type location struct {
	brewDir []string
	homeDir []string
	file    string
}

var locations = map[string]location{
	ShellBash: {
		brewDir: []string{"etc", "bash_completion.d"},
		homeDir: []string{".bash_completion.d"},
		file:    binary,
	},
	ShellZsh: {
		brewDir: []string{"share", "zsh", "site-functions"},
		homeDir: []string{".zsh", "completions"},
		file:    "_" + binary,
	},
	ShellFish: {
		brewDir: []string{"share", "fish", "vendor_completions.d"},
		homeDir: []string{".config", "fish", "completions"},
		file:    binary + ".fish",
	},
}

// Generate writes the completion script for shell to w.
func Generate(root *cobra.Command, shell string, w io.Writer) error {
	switch shell {
	case ShellBash:
		return root.GenBashCompletionV2(w, true)
	case ShellZsh:
		return root.GenZshCompletion(w)
	case ShellFish:
		return root.GenFishCompletion(w, true)
	case ShellPowerShell:
		return root.GenPowerShellCompletionWithDesc(w)
	default:
		return unsupported(shell)
	}
}

// Path returns the file Install writes for shell. A Homebrew prefix is
// preferred, then the user's home directory.
func Path(shell string) (string, error) {
	loc, ok := locations[shell]
	if !ok {
		return "", unsupported(shell)
	}

	prefix := os.Getenv("HOMEBREW_PREFIX")
	if prefix == "" {
		for _, p := range []string{"/opt/homebrew", "/usr/local"} {
			if _, err := os.Stat(filepath.Join(p, "bin", "brew")); err == nil {
				prefix = p
				break
			}
		}
	}
	if prefix != "" {
		return filepath.Join(append(append([]string{prefix}, loc.brewDir...), loc.file)...), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.WrapIO("resolve", "home directory", err)
	}
	return filepath.Join(append(append([]string{home}, loc.homeDir...), loc.file)...), nil
}

// Install writes the completion script for shell to its Path and returns
// that path.
func Install(root *cobra.Command, shell string) (string, error) {
	path, err := Path(shell)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(path), constants.DirPermissions); err != nil {
		return "", errors.WrapIO("create", filepath.Dir(path), err)
	}

	file, err := os.Create(path) // #nosec G304 - path is built by Path
	if err != nil {
		return "", errors.WrapIO("create", path, err)
	}
	if err := Generate(root, shell, file); err != nil {
		_ = file.Close()
		return "", err
	}
	if err := file.Close(); err != nil {
		return "", errors.WrapIO("close", path, err)
	}
	return path, nil
}

// Uninstall removes the file Install writes. It reports whether a file was
// removed.
func Uninstall(shell string) (bool, error) {
	path, err := Path(shell)
	if err != nil {
		return false, err
	}
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false, nil
	}
	if err := os.Remove(path); err != nil {
		return false, errors.WrapIO("remove", path, err)
	}
	return true, nil
}

func unsupported(shell string) error {
	return errors.NewValidationError("shell", shell, "unsupported shell; use bash, zsh, fish or powershell")
}
