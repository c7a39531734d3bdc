package cmd

import (
	"fmt"
	"strings"

	clierrors "github.com/momorph/pathkit/internal/errors"
	"github.com/spf13/cobra"
)

var completionShells = []string{"bash", "zsh", "fish", "powershell"}

// completionCmd represents the completion command
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long:  "Generate the autocompletion script for pathkit for the specified shell.",
	Example: `  # Bash (Linux)
  pathkit completion bash > /etc/bash_completion.d/pathkit

  # Bash (macOS with Homebrew)
  pathkit completion bash > $(brew --prefix)/etc/bash_completion.d/pathkit

  # Zsh (macOS with Homebrew)
  pathkit completion zsh > $(brew --prefix)/share/zsh/site-functions/_pathkit

  # Fish
  pathkit completion fish > ~/.config/fish/completions/pathkit.fish

  # PowerShell
  pathkit completion powershell >> $PROFILE`,
	DisableFlagsInUseLine: true,
	ValidArgs:             completionShells,
	RunE:                  runCompletion,
}

var completionBashCmd = &cobra.Command{
	Use:   "bash",
	Short: "Generate the autocompletion script for bash",
	Example: `  # Load in current session
  source <(pathkit completion bash)

  # Linux - load permanently
  sudo pathkit completion bash > /etc/bash_completion.d/pathkit

  # macOS (Homebrew) - load permanently
  pathkit completion bash > $(brew --prefix)/etc/bash_completion.d/pathkit`,
	DisableFlagsInUseLine: true,
	Args:                  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return rootCmd.GenBashCompletionV2(cmd.OutOrStdout(), true)
	},
}

var completionZshCmd = &cobra.Command{
	Use:   "zsh",
	Short: "Generate the autocompletion script for zsh",
	Example: `  # Load in current session
  source <(pathkit completion zsh)

  # Linux - load permanently
  pathkit completion zsh > "${fpath[1]}/_pathkit"

  # macOS (Homebrew) - load permanently
  pathkit completion zsh > $(brew --prefix)/share/zsh/site-functions/_pathkit`,
	DisableFlagsInUseLine: true,
	Args:                  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return rootCmd.GenZshCompletion(cmd.OutOrStdout())
	},
}

var completionFishCmd = &cobra.Command{
	Use:   "fish",
	Short: "Generate the autocompletion script for fish",
	Example: `  # Load in current session
  pathkit completion fish | source

  # Load permanently
  pathkit completion fish > ~/.config/fish/completions/pathkit.fish`,
	DisableFlagsInUseLine: true,
	Args:                  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return rootCmd.GenFishCompletion(cmd.OutOrStdout(), true)
	},
}

var completionPowershellCmd = &cobra.Command{
	Use:   "powershell",
	Short: "Generate the autocompletion script for powershell",
	Example: `  # Load in current session
  pathkit completion powershell | Out-String | Invoke-Expression

  # Load permanently (add to your PowerShell profile)
  pathkit completion powershell >> $PROFILE`,
	DisableFlagsInUseLine: true,
	Args:                  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return rootCmd.GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
	},
}

func init() {
	completionCmd.AddCommand(completionBashCmd)
	completionCmd.AddCommand(completionZshCmd)
	completionCmd.AddCommand(completionFishCmd)
	completionCmd.AddCommand(completionPowershellCmd)
	rootCmd.AddCommand(completionCmd)
}

// runCompletion only runs when no supported shell subcommand matched
func runCompletion(cmd *cobra.Command, args []string) error {
	shells := strings.Join(completionShells, ", ")
	if len(args) == 0 {
		fmt.Fprintf(cmd.ErrOrStderr(), "Specify a shell: %s\n\n%s", shells, cmd.UsageString())
		return clierrors.NewUsageError("missing shell name")
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Unsupported shell %q, expected one of: %s\n", args[0], shells)
	return clierrors.NewUsageError(fmt.Sprintf("unsupported shell %q", args[0]))
}
