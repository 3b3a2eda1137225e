package commands

import (
	"math/rand/v2"
	"os"

	"github.com/google/uuid"
	"github.com/leapstack-labs/numguess/internal/game"
	"github.com/leapstack-labs/numguess/internal/prompt"
	"github.com/spf13/cobra"
)

// terminalPrompt is shown by readline after the prompt line.
const terminalPrompt = "> "

// NewPlayCommand creates the play command.
func NewPlayCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Play one round of the guessing game",
		Long: `Pick a secret number between 1 and 100 and read guesses from standard input,
one per line, until the secret is found.

Lines that are not whole numbers are ignored. The game exits with status 0 on a
correct guess and with a non-zero status if input ends first.`,
		Example: `  # Interactive
  numguess play

  # Scripted
  printf '50\n25\n37\n' | numguess play --seed 42`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return RunPlay(cmd)
		},
	}
}

// RunPlay plays a single game on the command's input and output streams.
func RunPlay(cmd *cobra.Command) error {
	cc := NewCommandContext(cmd)

	in, err := openInput(cmd, cc.Cfg.HistoryFile)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	logger := cc.Logger.With("session_id", uuid.NewString())

	session := game.New(newSource(cc.Cfg.Seed), in, cc.Renderer,
		game.WithLogger(logger),
		game.WithHint(cc.Cfg.Hint),
	)

	res, err := session.Run()
	if err != nil {
		return err
	}

	if cc.Cfg.Summary {
		cc.Renderer.Summary(res)
	}
	return nil
}

// openInput picks readline for an interactive stdin and a plain line reader
// for everything else (pipes, files, test buffers).
func openInput(cmd *cobra.Command, historyFile string) (prompt.Reader, error) {
	r := cmd.InOrStdin()
	if f, ok := r.(*os.File); ok && f == os.Stdin && prompt.IsTerminal(f) {
		return prompt.NewTerminalReader(prompt.TerminalConfig{
			Prompt:      terminalPrompt,
			HistoryFile: historyFile,
			Stdout:      cmd.OutOrStdout(),
			Stderr:      cmd.ErrOrStderr(),
		})
	}
	return prompt.NewStreamReader(r), nil
}

// randSource draws from the math/rand/v2 global generator.
type randSource struct{}

func (randSource) IntN(n int) int { return rand.IntN(n) }

// newSource returns a deterministic source for a non-zero seed.
func newSource(seed uint64) game.Source {
	if seed == 0 {
		return randSource{}
	}
	return rand.New(rand.NewPCG(seed, seed))
}
