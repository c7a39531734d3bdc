package cmd

import (
	"fmt"

	"github.com/momorph/pathkit/internal/config"
	clierrors "github.com/momorph/pathkit/internal/errors"
	"github.com/momorph/pathkit/internal/logger"
	"github.com/momorph/pathkit/internal/ui"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change pathkit settings",
	Example: `  pathkit config show
  pathkit config set default_width 40
  pathkit config set separator /
  pathkit config path`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current settings",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting and save it",
	Long: fmt.Sprintf(`Change a setting and save it to the config file.

Valid keys: %v`, config.Keys()),
	Args: cobra.ExactArgs(2),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) == 0 {
			return config.Keys(), cobra.ShellCompDirectiveNoFileComp
		}
		return nil, cobra.ShellCompDirectiveNoFileComp
	},
	RunE: runConfigSet,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), config.GetConfigFile())
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	c := currentConfig()
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "%s %s\n", ui.Key("Config file:"), ui.Dim(ui.DisplayPath(config.GetConfigFile(), c.DefaultWidth)))
	values := c.Values()
	for _, key := range append(config.Keys(), "config_version") {
		fmt.Fprintf(out, "  %-16s %s\n", key, values[key])
	}

	if cfgErr != nil {
		fmt.Fprintf(out, "\n%s %v\n", ui.Warn("⚠ Showing defaults:"), cfgErr)
	} else if err := c.Validate(); err != nil {
		fmt.Fprintf(out, "\n%s %v\n", ui.Warn("⚠ Invalid setting:"), err)
	}
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]

	// Only file-backed values are saved; environment overrides stay one-off
	c, err := config.LoadFile()
	if err != nil {
		logger.Warn("Replacing unreadable config file: %v", err)
		fmt.Fprintf(cmd.ErrOrStderr(), "%s %v\n", ui.Warn("⚠ Starting from defaults:"), err)
		c = config.DefaultConfig()
	}
	if err := c.Set(key, value); err != nil {
		return clierrors.NewArgumentError(err, fmt.Sprintf("Cannot set %s", key))
	}
	if err := c.Save(); err != nil {
		return clierrors.NewConfigError(err, "Failed to save configuration").WithStackTrace()
	}
	logger.Info("Config %s set to %q", key, value)

	if !quietMode {
		fmt.Fprintln(cmd.OutOrStdout(), ui.Success(fmt.Sprintf("✓ %s = %s", key, value)))
	}
	return nil
}
