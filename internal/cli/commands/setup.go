// Package commands implements the numguess subcommands.
package commands

import (
	"log/slog"

	"github.com/leapstack-labs/numguess/internal/cli/config"
	"github.com/leapstack-labs/numguess/internal/cli/output"
	"github.com/spf13/cobra"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// NewCommandContext collects the config and logger stored by the root command
// and builds a renderer on the command's output stream.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cfg := config.FromContext(cmd.Context())
	logger := config.GetLogger(cmd.Context())
	r := output.NewRenderer(cmd.OutOrStdout(), output.ColorMode(cfg.Color))

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Renderer: r,
	}
}
