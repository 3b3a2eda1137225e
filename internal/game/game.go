// Package game implements the number-guessing loop.
//
// A Session draws one secret in [MinSecret, MaxSecret], then reads lines from a
// LineReader until a line parses to the secret. Lines that do not parse as an
// integer are discarded and the player is prompted again. A failed read ends
// the session with an error wrapping ErrInput.
package game

import (
	"cmp"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Secret bounds, both inclusive.
const (
	MinSecret = 1
	MaxSecret = 100
)

var (
	// ErrNotANumber is returned by ParseGuess for input that is not an integer.
	ErrNotANumber = errors.New("not a number")

	// ErrInput wraps any failure of the input channel, including end of input.
	ErrInput = errors.New("failed to read line")
)

// Outcome is the result of comparing a guess to the secret.
type Outcome int

// Outcome values match the sign returned by cmp.Compare.
const (
	Less    Outcome = -1
	Equal   Outcome = 0
	Greater Outcome = 1
)

func (o Outcome) String() string {
	switch o {
	case Less:
		return "too small"
	case Greater:
		return "too big"
	case Equal:
		return "correct"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Source supplies random integers in [0, n). *rand.Rand from math/rand/v2
// satisfies it.
type Source interface {
	IntN(n int) int
}

// NewSecret draws a secret uniformly from [MinSecret, MaxSecret].
func NewSecret(src Source) int {
	return MinSecret + src.IntN(MaxSecret-MinSecret+1)
}

// ParseGuess trims surrounding whitespace from raw and parses the rest as a
// base-10 integer. Values that overflow int are rejected like any other
// malformed input.
func ParseGuess(raw string) (int, error) {
	text := strings.TrimSpace(raw)
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotANumber, text)
	}
	return n, nil
}

// Compare reports how guess relates to secret.
func Compare(guess, secret int) Outcome {
	return Outcome(cmp.Compare(guess, secret))
}

// Attempt is one accepted guess and how it compared.
type Attempt struct {
	Guess   int
	Outcome Outcome
}

// Result describes a finished session.
type Result struct {
	Secret   int
	Attempts []Attempt
	Rejected int
}

// Won reports whether the last attempt matched the secret.
func (r *Result) Won() bool {
	if r == nil || len(r.Attempts) == 0 {
		return false
	}
	return r.Attempts[len(r.Attempts)-1].Outcome == Equal
}
