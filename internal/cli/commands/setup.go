package commands

import (
	"log/slog"

	"github.com/leapstack-labs/pinelint/internal/cli/config"
	"github.com/leapstack-labs/pinelint/internal/cli/output"
	"github.com/spf13/cobra"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// NewCommandContext creates a CommandContext for cmd. A non-empty format
// overrides the configured output mode.
func NewCommandContext(cmd *cobra.Command, format string) *CommandContext {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())

	mode := output.Mode(cfg.OutputFormat)
	if format != "" {
		mode = output.Mode(format)
	}
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Renderer: r,
	}
}

// getConfig returns the current configuration, or defaults when no
// configuration has been loaded (commands run directly in tests).
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}
	return config.Default()
}
