/*
Copyright © 2025 Sun Asterisk Inc.

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/momorph/pathkit/internal/config"
	clierrors "github.com/momorph/pathkit/internal/errors"
	"github.com/momorph/pathkit/internal/logger"
	"github.com/momorph/pathkit/internal/ui"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	debugMode bool
	quietMode bool
	noColor   bool
	// Global context for graceful shutdown
	globalCtx context.Context
	// Configuration loaded before any command runs
	cfg *config.UserConfig
	// Set when the configuration could not be loaded; cfg then holds defaults
	cfgErr error
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "pathkit",
	Short: "Path display and PowerShell quoting tools",
	Long: `pathkit shortens filesystem paths to a display width and renders strings
as literal PowerShell tokens that are safe to paste into a command line.`,
	Example: `  pathkit truncate --width 20 'c:\user\documents\projects'   # c:\...\projects\
  pathkit escape "Gun 'n Roses"                               # "Gun 'n Roses"
  pathkit line Set-Location 'c:\src\Foo [1]'                 # Set-Location 'c:\src\Foo ` + "`[1`]'",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, cfgErr = config.Load()
		if cfgErr != nil {
			// Commands that don't depend on settings still run; see loadedConfig
			cfgErr = clierrors.NewConfigError(cfgErr, "Failed to load configuration")
			cfg = config.DefaultConfig()
		}

		ui.SetColorEnabled(!noColor && cfg.ColorOutput && ui.DetectColor())

		// Initialize logger before any command runs
		if err := logger.Init(cfg.LogLevel, debugMode); err != nil {
			return err
		}
		if cfgErr != nil {
			logger.Warn("Using default settings: %v", cfgErr)
		}
		return nil
	},
	SilenceErrors: true,
	SilenceUsage:  true,
	// Enable command suggestions for typos
	SuggestionsMinimumDistance: 2,
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&quietMode, "quiet", "q", false, "Suppress non-error output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	// Initialize custom help formatting
	InitHelp()
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.ExecuteContext(GetContext())
	if err != nil {
		logger.Error("Command failed", err)
		logger.Close()
		fmt.Fprintln(os.Stderr, ui.Warn("✗ ")+clierrors.FormatError(err, debugMode))
		os.Exit(int(clierrors.GetExitCode(err)))
	}
	logger.Close()
}

// SetContext sets the global context for graceful shutdown support
func SetContext(ctx context.Context) {
	globalCtx = ctx
}

// GetContext returns the global context, or background context if not set
func GetContext() context.Context {
	if globalCtx != nil {
		return globalCtx
	}
	return context.Background()
}

// currentConfig returns the loaded configuration, or defaults outside a command run
// or when loading failed
func currentConfig() *config.UserConfig {
	if cfg != nil {
		return cfg
	}
	return config.DefaultConfig()
}

// loadedConfig is currentConfig for commands whose output depends on the settings:
// a broken config file or environment override is reported instead of ignored.
func loadedConfig() (*config.UserConfig, error) {
	if cfgErr != nil {
		return nil, cfgErr
	}
	return currentConfig(), nil
}
