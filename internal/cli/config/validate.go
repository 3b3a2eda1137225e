package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/leapstack-labs/numguess/internal/cli/output"
)

// ErrInvalidConfig marks configuration errors so the CLI can report them with
// their own exit code.
var ErrInvalidConfig = errors.New("invalid configuration")

var validLogFormats = []string{"text", "json"}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if !slices.Contains(validLogFormats, c.LogFormat) {
		return fmt.Errorf("%w: log_format must be one of %s, got %q",
			ErrInvalidConfig, strings.Join(validLogFormats, ", "), c.LogFormat)
	}
	if !output.ColorMode(c.Color).Valid() {
		return fmt.Errorf("%w: color must be one of %s, %s, %s, got %q",
			ErrInvalidConfig, output.ColorAuto, output.ColorAlways, output.ColorNever, c.Color)
	}
	return nil
}
