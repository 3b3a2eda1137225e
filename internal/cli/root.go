// Package cli provides the command-line interface for numguess.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/leapstack-labs/numguess/internal/cli/commands"
	"github.com/leapstack-labs/numguess/internal/cli/config"
	"github.com/leapstack-labs/numguess/internal/prompt"
	"github.com/spf13/cobra"
)

var cfgFile string

// Version is set at build time.
var Version = "0.1.0"

// Exit codes returned by the numguess binary.
const (
	// ExitSuccess indicates the secret was guessed.
	ExitSuccess = 0

	// ExitFailure indicates input ended or failed before a correct guess.
	ExitFailure = 1

	// ExitUsage indicates bad flags, arguments or configuration.
	ExitUsage = 2

	// ExitInterrupted indicates the player pressed Ctrl-C.
	ExitInterrupted = 130
)

// ErrUsage marks command-line parsing errors.
var ErrUsage = errors.New("usage error")

// NewRootCmd creates and returns the root command. Running it without a
// subcommand plays one game.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "numguess",
		Short: "numguess - guess the secret number",
		Long: `numguess picks a secret number between 1 and 100 and asks you to guess it.

After each guess you are told whether it was too small or too big. The game
ends when you find the number. Input that is not a whole number is ignored.`,
		Version: Version,
		Args:    cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip config loading for help and completion commands
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := config.Load(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}

			logger := newLogger(cmd.ErrOrStderr(), cfg)
			if cfg.File != "" {
				logger.Debug("config.loaded", "path", cfg.File)
			}

			ctx := config.WithConfig(cmd.Context(), cfg)
			ctx = config.WithLogger(ctx, logger)
			cmd.SetContext(ctx)
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return commands.RunPlay(cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(`{{.Name}} {{.Version}}
`)
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	})

	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./numguess.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose logging on stderr")
	rootCmd.PersistentFlags().String("log-format", "", "Log format (text|json)")
	rootCmd.PersistentFlags().String("color", "", "Colour output (auto|always|never)")
	rootCmd.PersistentFlags().Bool("hint", false, "Say so when input is not a number")
	rootCmd.PersistentFlags().Bool("summary", false, "Print a table of guesses after winning")
	rootCmd.PersistentFlags().String("history-file", "", "Readline history file for interactive play")
	rootCmd.PersistentFlags().Uint64("seed", 0, "Seed for the secret number (0 picks a random one)")

	_ = rootCmd.RegisterFlagCompletionFunc("color", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"auto", "always", "never"}, cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.RegisterFlagCompletionFunc("log-format", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"text", "json"}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(commands.NewPlayCommand())
	rootCmd.AddCommand(commands.NewVersionCommand(Version))
	rootCmd.AddCommand(commands.NewConfigCommand())
	rootCmd.AddCommand(NewCompletionCommand())

	rootCmd.Args = usageArgs(rootCmd.Args)
	for _, c := range rootCmd.Commands() {
		if c.Args != nil {
			c.Args = usageArgs(c.Args)
		}
	}

	return rootCmd
}

// usageArgs marks positional argument errors as usage errors.
func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return fmt.Errorf("%w: %w", ErrUsage, err)
		}
		return nil
	}
}

// Execute runs the root command with the process's standard streams.
func Execute() error {
	return run(NewRootCmd(), os.Stderr)
}

func run(rootCmd *cobra.Command, stderr io.Writer) error {
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

// ExitCode maps an error returned by Execute to a process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, prompt.ErrInterrupted):
		return ExitInterrupted
	case errors.Is(err, config.ErrInvalidConfig), errors.Is(err, ErrUsage):
		return ExitUsage
	default:
		return ExitFailure
	}
}

// NewCompletionCommand creates the completion command.
func NewCompletionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for numguess.

To load completions:

Bash:
  $ source <(numguess completion bash)

Zsh:
  $ numguess completion zsh > "${fpath[1]}/_numguess"

Fish:
  $ numguess completion fish | source

PowerShell:
  PS> numguess completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(w)
			case "zsh":
				return cmd.Root().GenZshCompletion(w)
			case "fish":
				return cmd.Root().GenFishCompletion(w, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(w)
			}
			return nil
		},
	}
	return cmd
}
