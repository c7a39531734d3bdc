package cmd

import (
	"strings"

	clierrors "github.com/momorph/pathkit/internal/errors"
	"github.com/momorph/pathkit/internal/logger"
	"github.com/momorph/pathkit/pathfmt"
	"github.com/spf13/cobra"
)

var escapeJoin bool

var escapeCmd = &cobra.Command{
	Use:   "escape [string...]",
	Short: "Quote strings as literal PowerShell tokens",
	Long: `Render each string as a PowerShell literal that can be pasted into a command line.

Strings without a single quote are wrapped in single quotes. Strings containing a
single quote are wrapped in double quotes, and $, " and the backtick are escaped.
Square brackets are always escaped with a backtick.

Strings are read from the arguments, or one per line from standard input.`,
	Example: `  pathkit escape 'c:\users\name\Foo]\Console.sln'   # 'c:\users\name\Foo` + "`" + `]\Console.sln'
  pathkit escape "Gun 'n Roses"                      # "Gun 'n Roses"
  pathkit escape --join a b 'c d'                    # 'a' 'b' 'c d'`,
	RunE: runEscape,
}

func init() {
	escapeCmd.Flags().BoolVarP(&escapeJoin, "join", "j", false, "Print all literals on one line separated by spaces")
	rootCmd.AddCommand(escapeCmd)
}

func runEscape(cmd *cobra.Command, args []string) error {
	inputs, err := readInputs(cmd, args)
	if err != nil {
		return clierrors.NewError(err, "Failed to read input")
	}
	if inputs == nil {
		return clierrors.NewUsageError("No string given")
	}

	literals := make([]string, len(inputs))
	for i, s := range inputs {
		literals[i] = pathfmt.EscapePSPath(s)
	}
	logger.Debug("Escaped %d strings", len(literals))

	if escapeJoin {
		printLines(cmd.OutOrStdout(), []string{strings.Join(literals, " ")})
		return nil
	}
	printLines(cmd.OutOrStdout(), literals)
	return nil
}
