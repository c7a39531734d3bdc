package cmd

import (
	"github.com/momorph/pathkit/internal/logger"
	"github.com/momorph/pathkit/pathfmt"
	"github.com/spf13/cobra"
)

var lineCmd = &cobra.Command{
	Use:   "line <command> [args...]",
	Short: "Build a PowerShell command line with quoted arguments",
	Long: `Print a PowerShell command line: the command is written as given and every
following argument is quoted with the same rules as 'pathkit escape'.
Arguments after the command are never parsed as pathkit flags.`,
	Example: `  pathkit line Set-Location 'c:\src\Foo [1]'
  pathkit line Import-Module "c:\it's\init.ps1"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runLine,
}

func init() {
	lineCmd.Flags().SetInterspersed(false)
	rootCmd.AddCommand(lineCmd)
}

func runLine(cmd *cobra.Command, args []string) error {
	line := pathfmt.JoinPSCommand(args[0], args[1:]...)
	logger.Debug("Built command line for %s with %d arguments", args[0], len(args)-1)
	printLines(cmd.OutOrStdout(), []string{line})
	return nil
}
