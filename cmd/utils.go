package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	clierrors "github.com/momorph/pathkit/internal/errors"
	"github.com/spf13/cobra"
)

// readInputs returns args if any were given, otherwise one value per line of piped stdin.
// It returns nil when there is no input at all.
func readInputs(cmd *cobra.Command, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok {
		// Interactive terminal, nothing piped
		if info, err := f.Stat(); err == nil && info.Mode()&os.ModeCharDevice != 0 {
			return nil, nil
		}
	}

	var lines []string
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		lines = append(lines, strings.TrimRight(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, clierrors.Wrap(err, "failed to read stdin")
	}
	return lines, nil
}

// printLines writes one value per line unless quiet mode is on
func printLines(w io.Writer, lines []string) {
	if quietMode {
		return
	}
	for _, line := range lines {
		fmt.Fprintln(w, line)
	}
}
