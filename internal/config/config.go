package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"
	"unicode/utf8"

	clierrors "github.com/momorph/pathkit/internal/errors"
	"github.com/momorph/pathkit/pathfmt"
)

const (
	// DefaultWidth is the display width used when none is configured
	DefaultWidth = 60
	// CurrentVersion is the config file format version
	CurrentVersion = "1.0"
)

// UserConfig represents CLI configuration
type UserConfig struct {
	DefaultWidth  int    `json:"default_width"`
	Separator     string `json:"separator"`
	LogLevel      string `json:"log_level"`
	ColorOutput   bool   `json:"color_output"`
	ConfigVersion string `json:"config_version"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *UserConfig {
	return &UserConfig{
		DefaultWidth:  DefaultWidth,
		Separator:     string(pathfmt.DefaultSeparator),
		LogLevel:      "info",
		ColorOutput:   true,
		ConfigVersion: CurrentVersion,
	}
}

// Load returns the effective configuration: the config file, or defaults if it is
// missing, with PATHKIT_WIDTH and PATHKIT_SEPARATOR applied on top.
func Load() (*UserConfig, error) {
	config, err := LoadFile()
	if err != nil {
		return nil, err
	}
	if err := config.ApplyEnv(); err != nil {
		return nil, err
	}
	return config, nil
}

// LoadFile loads only the values stored on disk, or defaults if the file doesn't exist.
// Use it when the result is going to be saved back.
func LoadFile() (*UserConfig, error) {
	config := DefaultConfig()

	configFile := GetConfigFile()
	data, err := os.ReadFile(configFile)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, clierrors.Wrapf(err, "failed to read %s", configFile)
	default:
		if err := json.Unmarshal(data, config); err != nil {
			return nil, clierrors.Wrapf(err, "failed to parse %s", configFile)
		}
	}
	return config, nil
}

// ApplyEnv overrides values from PATHKIT_WIDTH and PATHKIT_SEPARATOR
func (c *UserConfig) ApplyEnv() error {
	if width := os.Getenv("PATHKIT_WIDTH"); width != "" {
		v, err := strconv.Atoi(width)
		if err != nil {
			return clierrors.Wrapf(err, "invalid PATHKIT_WIDTH %q", width)
		}
		c.DefaultWidth = v
	}
	if sep := os.Getenv("PATHKIT_SEPARATOR"); sep != "" {
		c.Separator = sep
	}
	return nil
}

// Save saves the configuration to disk with atomic write
func (c *UserConfig) Save() error {
	if err := EnsureConfigDir(); err != nil {
		return err
	}

	configFile := GetConfigFile()

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	// Write to temporary file first (atomic write pattern)
	tempFile := configFile + ".tmp"
	if err := os.WriteFile(tempFile, data, 0600); err != nil {
		return err
	}

	if err := os.Rename(tempFile, configFile); err != nil {
		os.Remove(tempFile)
		return err
	}

	return nil
}

// Validate validates the configuration
func (c *UserConfig) Validate() error {
	if c.DefaultWidth < pathfmt.MinWidth {
		return fmt.Errorf("default_width must be at least %d, got %d", pathfmt.MinWidth, c.DefaultWidth)
	}

	if _, err := c.Truncator(); err != nil {
		return err
	}

	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[c.LogLevel] {
		return fmt.Errorf("log_level must be one of debug, info, warn, error, got %q", c.LogLevel)
	}

	return nil
}

// SeparatorRune returns the configured separator as a single character
func (c *UserConfig) SeparatorRune() (rune, error) {
	if utf8.RuneCountInString(c.Separator) != 1 {
		return 0, fmt.Errorf("separator must be a single character, got %q", c.Separator)
	}
	r, _ := utf8.DecodeRuneInString(c.Separator)
	return r, nil
}

// Truncator builds a path truncator from the configured width and separator
func (c *UserConfig) Truncator() (*pathfmt.Truncator, error) {
	sep, err := c.SeparatorRune()
	if err != nil {
		return nil, err
	}
	return pathfmt.NewTruncator(c.DefaultWidth, pathfmt.WithSeparator(sep))
}

// Set updates a single setting by its JSON key
func (c *UserConfig) Set(key, value string) error {
	switch key {
	case "default_width":
		v, err := strconv.Atoi(value)
		if err != nil {
			return clierrors.Wrap(err, "default_width must be an integer")
		}
		c.DefaultWidth = v
	case "separator":
		c.Separator = value
	case "log_level":
		c.LogLevel = value
	case "color_output":
		v, err := strconv.ParseBool(value)
		if err != nil {
			return clierrors.Wrap(err, "color_output must be true or false")
		}
		c.ColorOutput = v
	default:
		return fmt.Errorf("unknown config key %q (valid keys: %v)", key, Keys())
	}
	return c.Validate()
}

// Values returns the settings as key/value strings
func (c *UserConfig) Values() map[string]string {
	return map[string]string{
		"default_width":  strconv.Itoa(c.DefaultWidth),
		"separator":      c.Separator,
		"log_level":      c.LogLevel,
		"color_output":   strconv.FormatBool(c.ColorOutput),
		"config_version": c.ConfigVersion,
	}
}

// Keys returns the settable keys in sorted order
func Keys() []string {
	keys := []string{"default_width", "separator", "log_level", "color_output"}
	sort.Strings(keys)
	return keys
}
