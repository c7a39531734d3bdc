package cmd

import (
	"fmt"

	clierrors "github.com/momorph/pathkit/internal/errors"
	"github.com/momorph/pathkit/internal/logger"
	"github.com/momorph/pathkit/internal/ui"
	"github.com/momorph/pathkit/pathfmt"
	"github.com/spf13/cobra"
)

var (
	truncateWidth        int
	truncateSeparator    string
	truncateShowOriginal bool
)

var truncateCmd = &cobra.Command{
	Use:   "truncate [path...]",
	Short: "Shorten paths to a display width",
	Long: `Shorten each path to at most --width characters, keeping the root and the
last folder: c:\user\documents\projects becomes c:\...\projects\ at width 20.
When the last folder alone is too long it is cut in the middle so the result is
exactly --width characters.

Paths are read from the arguments, or one per line from standard input.`,
	Example: `  pathkit truncate --width 20 'c:\user\documents\projects'
  pathkit truncate -w 30 -s / /home/me/src/github.com/momorph/pathkit
  git ls-files | pathkit truncate -w 40 -s / --show-original`,
	RunE: runTruncate,
}

func init() {
	truncateCmd.Flags().IntVarP(&truncateWidth, "width", "w", 0, "Maximum display width (default from config, at least 6)")
	truncateCmd.Flags().StringVarP(&truncateSeparator, "separator", "s", "", `Path separator character (default from config, "\")`)
	truncateCmd.Flags().BoolVar(&truncateShowOriginal, "show-original", false, "Print the original path next to the shortened one")
	rootCmd.AddCommand(truncateCmd)
}

func runTruncate(cmd *cobra.Command, args []string) error {
	loaded, err := loadedConfig()
	if err != nil {
		return err
	}
	settings := *loaded
	if cmd.Flags().Changed("width") {
		settings.DefaultWidth = truncateWidth
	}
	if cmd.Flags().Changed("separator") {
		settings.Separator = truncateSeparator
	}

	sep, err := settings.SeparatorRune()
	if err != nil {
		return clierrors.NewArgumentError(err, "Invalid --separator")
	}
	tr, err := pathfmt.NewTruncator(settings.DefaultWidth, pathfmt.WithSeparator(sep))
	if err != nil {
		var argErr *pathfmt.ArgumentError
		if clierrors.As(err, &argErr) && argErr.Param == "separator" {
			return clierrors.NewArgumentError(err, "Invalid --separator")
		}
		return clierrors.NewArgumentError(err, fmt.Sprintf("Width must be at least %d", pathfmt.MinWidth))
	}

	paths, err := readInputs(cmd, args)
	if err != nil {
		return clierrors.NewError(err, "Failed to read paths")
	}

	shortened, err := tr.TruncateAll(paths)
	if clierrors.Is(err, pathfmt.ErrInvalidArgument) {
		return clierrors.NewArgumentError(err, "No path given")
	}
	if err != nil {
		return clierrors.NewError(err, "Failed to truncate paths")
	}
	logger.Debug("Truncated %d paths to width %d", len(paths), tr.MaxWidth)

	if !truncateShowOriginal {
		printLines(cmd.OutOrStdout(), shortened)
		return nil
	}

	lines := make([]string, len(paths))
	for i, p := range paths {
		lines[i] = fmt.Sprintf("%s  %s %s", shortened[i], ui.Dim("←"), ui.Dim(p))
	}
	printLines(cmd.OutOrStdout(), lines)
	return nil
}
