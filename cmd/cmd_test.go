package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/adrg/xdg"
	"github.com/momorph/pathkit/internal/config"
	clierrors "github.com/momorph/pathkit/internal/errors"
	"github.com/momorph/pathkit/internal/logger"
	"github.com/momorph/pathkit/pathfmt"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupHome points the config and log directories at a temp dir
func setupHome(t *testing.T) {
	t.Helper()
	t.Cleanup(xdg.Reload)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("PATHKIT_WIDTH", "")
	t.Setenv("PATHKIT_SEPARATOR", "")
	t.Setenv("NO_COLOR", "1")
	xdg.Reload()
	t.Cleanup(logger.Close)
}

func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	cfg = nil
	cfgErr = nil

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

func TestTruncateCommand(t *testing.T) {
	setupHome(t)

	out, err := run(t, "", "truncate", "--width", "20", `c:\user\documents\projects`)
	require.NoError(t, err)
	assert.Equal(t, "c:\\...\\projects\\\n", out)

	out, err = run(t, "", "truncate", "-w", "10", `c:\thisisaverylongname`, "abc")
	require.NoError(t, err)
	assert.Equal(t, "c:\\...ame\\\nabc\n", out)
}

func TestTruncateCommandReadsStdin(t *testing.T) {
	setupHome(t)

	out, err := run(t, "/home/user/projects/pathkit\r\nshort\n", "truncate", "-w", "14", "-s", "/")
	require.NoError(t, err)
	assert.Equal(t, "/.../pathkit/\nshort\n", out)
}

func TestTruncateCommandShowOriginal(t *testing.T) {
	setupHome(t)

	out, err := run(t, "", "truncate", "-w", "20", "--show-original", `c:\user\documents\projects`)
	require.NoError(t, err)
	assert.Equal(t, "c:\\...\\projects\\  ← c:\\user\\documents\\projects\n", out)
}

func TestTruncateCommandErrors(t *testing.T) {
	setupHome(t)

	for _, width := range []string{"5", "0", "-4"} {
		_, err := run(t, "", "truncate", "--width="+width, "abcdefgh")
		require.Error(t, err)
		assert.True(t, errors.Is(err, pathfmt.ErrOutOfRange), "width %s", width)
		assert.Equal(t, clierrors.ExitUsageError, clierrors.GetExitCode(err))
	}

	_, err := run(t, "", "truncate", "-w", "10")
	require.Error(t, err)
	assert.True(t, errors.Is(err, pathfmt.ErrInvalidArgument))
	assert.Equal(t, clierrors.ExitUsageError, clierrors.GetExitCode(err))

	_, err = run(t, "", "truncate", "-s", "ab", "x")
	assert.Equal(t, clierrors.ExitUsageError, clierrors.GetExitCode(err))

	_, err = run(t, "", "truncate", "-s", ".", "x")
	require.Error(t, err)
	assert.True(t, errors.Is(err, pathfmt.ErrInvalidArgument))
	assert.Equal(t, clierrors.ExitUsageError, clierrors.GetExitCode(err))
	assert.ErrorContains(t, err, "Invalid --separator")
}

func TestTruncateCommandUsesConfig(t *testing.T) {
	setupHome(t)

	_, err := run(t, "", "config", "set", "default_width", "20")
	require.NoError(t, err)

	out, err := run(t, "", "truncate", `c:\user\documents\projects`)
	require.NoError(t, err)
	assert.Equal(t, "c:\\...\\projects\\\n", out)

	t.Setenv("PATHKIT_WIDTH", "10")
	out, err = run(t, "", "truncate", `c:\thisisaverylongname`)
	require.NoError(t, err)
	assert.Equal(t, "c:\\...ame\\\n", out)
}

func TestEscapeCommand(t *testing.T) {
	setupHome(t)

	out, err := run(t, "", "escape", "Gun 'n Roses", "Hello [ Kitty ]", "")
	require.NoError(t, err)
	assert.Equal(t, "\"Gun 'n Roses\"\n'Hello `[ Kitty `]'\n''\n", out)

	out, err = run(t, "", "escape", "--join", "a", "c d")
	require.NoError(t, err)
	assert.Equal(t, "'a' 'c d'\n", out)

	out, err = run(t, "a$$b\n'a$$'b\n", "escape")
	require.NoError(t, err)
	assert.Equal(t, "'a$$b'\n\"'a`$`$'b\"\n", out)

	out, err = run(t, "", "escape", "-q", "abc")
	require.NoError(t, err)
	assert.Empty(t, out)

	_, err = run(t, "", "escape")
	assert.Equal(t, clierrors.ExitUsageError, clierrors.GetExitCode(err))
}

func TestLineCommand(t *testing.T) {
	setupHome(t)

	out, err := run(t, "", "line", "Set-Location", `c:\Foo [x]`, "-Force")
	require.NoError(t, err)
	assert.Equal(t, "Set-Location 'c:\\Foo `[x`]' '-Force'\n", out)

	_, err = run(t, "", "line")
	assert.Error(t, err)
}

func TestConfigCommands(t *testing.T) {
	setupHome(t)

	out, err := run(t, "", "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Config file:")
	assert.Regexp(t, `default_width\s+60`, out)

	out, err = run(t, "", "config", "set", "separator", "/")
	require.NoError(t, err)
	assert.Equal(t, "✓ separator = /\n", out)

	out, err = run(t, "", "config", "show")
	require.NoError(t, err)
	assert.Regexp(t, `separator\s+/`, out)

	out, err = run(t, "", "config", "path")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), "config.json"))

	_, err = run(t, "", "config", "set", "api_endpoint", "x")
	assert.Equal(t, clierrors.ExitUsageError, clierrors.GetExitCode(err))

	_, err = run(t, "", "config", "set", "default_width", "3")
	assert.Equal(t, clierrors.ExitUsageError, clierrors.GetExitCode(err))
}

func TestInvalidEnvironmentConfig(t *testing.T) {
	setupHome(t)
	t.Setenv("PATHKIT_WIDTH", "wide")

	_, err := run(t, "", "truncate", `c:\user\documents\projects`)
	require.Error(t, err)
	assert.Equal(t, clierrors.ExitConfigError, clierrors.GetExitCode(err))

	out, err := run(t, "", "escape", "x")
	require.NoError(t, err)
	assert.Equal(t, "'x'\n", out)
}

// readSavedConfig decodes the config file as written on disk
func readSavedConfig(t *testing.T) map[string]interface{} {
	t.Helper()
	data, err := os.ReadFile(config.GetConfigFile())
	require.NoError(t, err)
	var saved map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &saved))
	return saved
}

func TestConfigSetKeepsEnvironmentOverridesOutOfFile(t *testing.T) {
	setupHome(t)
	t.Setenv("PATHKIT_WIDTH", "10")
	t.Setenv("PATHKIT_SEPARATOR", "/")

	_, err := run(t, "", "config", "set", "log_level", "debug")
	require.NoError(t, err)

	saved := readSavedConfig(t)
	assert.Equal(t, "debug", saved["log_level"])
	assert.EqualValues(t, 60, saved["default_width"])
	assert.Equal(t, `\`, saved["separator"])

	out, err := run(t, "", "config", "show")
	require.NoError(t, err)
	assert.Regexp(t, `default_width\s+10`, out)
}

func TestCorruptConfigFile(t *testing.T) {
	setupHome(t)
	require.NoError(t, config.EnsureConfigDir())
	require.NoError(t, os.WriteFile(config.GetConfigFile(), []byte("{bad"), 0600))

	out, err := run(t, "", "escape", "x")
	require.NoError(t, err)
	assert.Equal(t, "'x'\n", out)

	out, err = run(t, "", "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Showing defaults")
	assert.Regexp(t, `default_width\s+60`, out)

	out, err = run(t, "", "config", "path")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), "config.json"))

	_, err = run(t, "", "truncate", "-w", "20", `c:\user\documents\projects`)
	require.Error(t, err)
	assert.Equal(t, clierrors.ExitConfigError, clierrors.GetExitCode(err))

	out, err = run(t, "", "config", "set", "default_width", "40")
	require.NoError(t, err)
	assert.Contains(t, out, "Starting from defaults")
	assert.Contains(t, out, "✓ default_width = 40")
	assert.EqualValues(t, 40, readSavedConfig(t)["default_width"])

	out, err = run(t, "", "truncate", `c:\user\documents\projects`)
	require.NoError(t, err)
	assert.Equal(t, "c:\\user\\documents\\projects\n", out)
}

func TestVersionCommand(t *testing.T) {
	setupHome(t)

	out, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "pathkit\n")
	assert.Contains(t, out, "Version:")
}

func TestHelpAndCompletion(t *testing.T) {
	setupHome(t)

	out, err := run(t, "", "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "truncate")
	assert.Contains(t, out, "escape")
	assert.Contains(t, out, "--no-color")

	out, err = run(t, "", "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "pathkit")
}

func TestCompletionRequiresKnownShell(t *testing.T) {
	setupHome(t)

	out, err := run(t, "", "completion")
	require.Error(t, err)
	assert.Equal(t, clierrors.ExitUsageError, clierrors.GetExitCode(err))
	assert.Contains(t, out, "Specify a shell: bash, zsh, fish, powershell")
	assert.Contains(t, out, "Usage:")

	out, err = run(t, "", "completion", "tcsh")
	require.Error(t, err)
	assert.Equal(t, clierrors.ExitUsageError, clierrors.GetExitCode(err))
	assert.Contains(t, out, `Unsupported shell "tcsh"`)
}
