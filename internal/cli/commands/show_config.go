package commands

import (
	"fmt"

	"github.com/leapstack-labs/numguess/internal/cli/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// NewConfigCommand creates the config command.
func NewConfigCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Print the configuration numguess would use, after merging defaults, the config
file, NUMGUESS_* environment variables and flags. The output is valid YAML and
can be saved as numguess.yaml.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.FromContext(cmd.Context())

			data, err := yaml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("failed to encode config: %w", err)
			}

			w := cmd.OutOrStdout()
			if cfg.File != "" {
				_, _ = fmt.Fprintf(w, "# loaded from %s\n", cfg.File)
			}
			_, err = w.Write(data)
			return err
		},
	}
}
