package game

import (
	"fmt"
	"log/slog"
)

// LineReader is the input channel. ReadLine returns one line without its
// terminator, or io.EOF once the stream is exhausted.
type LineReader interface {
	ReadLine() (string, error)
}

// Feedback is the output channel.
type Feedback interface {
	Intro()
	Prompt()
	Invalid(raw string)
	Guessed(guess int)
	Outcome(o Outcome)
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger used for session events.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithHint makes the session tell the player when a line is not a number
// instead of silently prompting again.
func WithHint(enabled bool) Option {
	return func(s *Session) {
		s.hint = enabled
	}
}

// Session is a single game. The secret is fixed when the session is created.
type Session struct {
	secret int
	in     LineReader
	out    Feedback
	logger *slog.Logger
	hint   bool
}

// New draws a secret from src and returns a session ready to Run.
func New(src Source, in LineReader, out Feedback, opts ...Option) *Session {
	s := &Session{
		secret: NewSecret(src),
		in:     in,
		out:    out,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Secret returns the number the player has to guess.
func (s *Session) Secret() int {
	return s.secret
}

// Run plays until the player guesses the secret or the input fails.
// The returned Result is non-nil in both cases and holds the attempts made so far.
func (s *Session) Run() (*Result, error) {
	res := &Result{Secret: s.secret}

	s.logger.Debug("game.start", "secret", s.secret)
	s.out.Intro()

	for {
		s.out.Prompt()

		line, err := s.in.ReadLine()
		if err != nil {
			s.logger.Info("game.input_failed",
				"error", err,
				"attempts", len(res.Attempts),
				"rejected", res.Rejected,
			)
			return res, fmt.Errorf("%w: %w", ErrInput, err)
		}

		guess, err := ParseGuess(line)
		if err != nil {
			res.Rejected++
			s.logger.Debug("game.rejected_input", "input", line)
			if s.hint {
				s.out.Invalid(line)
			}
			continue
		}

		s.out.Guessed(guess)

		outcome := Compare(guess, s.secret)
		res.Attempts = append(res.Attempts, Attempt{Guess: guess, Outcome: outcome})
		s.logger.Debug("game.guess", "guess", guess, "outcome", outcome.String())
		s.out.Outcome(outcome)

		if outcome == Equal {
			s.logger.Info("game.won",
				"attempts", len(res.Attempts),
				"rejected", res.Rejected,
			)
			return res, nil
		}
	}
}
