package game

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/leapstack-labs/numguess/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedSource makes NewSecret return the wrapped value.
type fixedSource int

func (f fixedSource) IntN(int) int {
	return int(f) - MinSecret
}

// countingSource records how often it is asked for a number.
type countingSource struct {
	calls int
	value int
}

func (c *countingSource) IntN(int) int {
	c.calls++
	return c.value - MinSecret
}

type lineReader struct {
	lines []string
	err   error
	reads int
}

func (r *lineReader) ReadLine() (string, error) {
	r.reads++
	if len(r.lines) == 0 {
		if r.err != nil {
			return "", r.err
		}
		return "", io.EOF
	}
	line := r.lines[0]
	r.lines = r.lines[1:]
	return line, nil
}

// recorder captures Feedback calls as short event strings.
type recorder struct {
	events []string
}

func (r *recorder) Intro()             { r.events = append(r.events, "intro") }
func (r *recorder) Prompt()            { r.events = append(r.events, "prompt") }
func (r *recorder) Invalid(raw string) { r.events = append(r.events, "invalid:"+raw) }
func (r *recorder) Guessed(guess int)  { r.events = append(r.events, fmt.Sprintf("guessed:%d", guess)) }
func (r *recorder) Outcome(o Outcome)  { r.events = append(r.events, o.String()) }

// feedback returns only outcome events.
func (r *recorder) feedback() []string {
	var out []string
	for _, e := range r.events {
		switch e {
		case "too small", "too big", "correct":
			out = append(out, e)
		}
	}
	return out
}

func (r *recorder) count(event string) int {
	n := 0
	for _, e := range r.events {
		if e == event {
			n++
		}
	}
	return n
}

func TestSessionRun_Scenario(t *testing.T) {
	in := &lineReader{lines: []string{"10", "90", "50"}}
	out := &recorder{}

	s := New(fixedSource(50), in, out, WithLogger(testutil.NewTestLogger(t)))
	res, err := s.Run()

	require.NoError(t, err)
	assert.Equal(t, []string{"too small", "too big", "correct"}, out.feedback())
	assert.Equal(t, []string{
		"intro",
		"prompt", "guessed:10", "too small",
		"prompt", "guessed:90", "too big",
		"prompt", "guessed:50", "correct",
	}, out.events)

	require.NotNil(t, res)
	assert.True(t, res.Won())
	assert.Equal(t, 50, res.Secret)
	assert.Equal(t, []Attempt{
		{Guess: 10, Outcome: Less},
		{Guess: 90, Outcome: Greater},
		{Guess: 50, Outcome: Equal},
	}, res.Attempts)
	assert.Zero(t, res.Rejected)
}

func TestSessionRun_SilentRetryOnGarbage(t *testing.T) {
	in := &lineReader{lines: []string{"xyz", "50"}}
	out := &recorder{}

	res, err := New(fixedSource(50), in, out).Run()

	require.NoError(t, err)
	assert.Equal(t, []string{"correct"}, out.feedback())
	assert.Equal(t, []string{"intro", "prompt", "prompt", "guessed:50", "correct"}, out.events)
	assert.Equal(t, 1, res.Rejected)
}

func TestSessionRun_UnparseableInputNeverGivesFeedback(t *testing.T) {
	for _, raw := range []string{"abc", "", "12.5", " ", "5x", "1e3"} {
		t.Run(fmt.Sprintf("%q", raw), func(t *testing.T) {
			in := &lineReader{lines: []string{raw}}
			out := &recorder{}

			res, err := New(fixedSource(50), in, out).Run()

			// The line is dropped, the loop prompts again and then hits EOF.
			require.ErrorIs(t, err, ErrInput)
			assert.Empty(t, out.feedback())
			assert.Equal(t, 2, out.count("prompt"))
			assert.Equal(t, 1, res.Rejected)
			assert.Empty(t, res.Attempts)
		})
	}
}

func TestSessionRun_OversizedLineIsRetried(t *testing.T) {
	in := &lineReader{lines: []string{strings.Repeat("9", 100_000), "50"}}
	out := &recorder{}

	res, err := New(fixedSource(50), in, out).Run()

	require.NoError(t, err)
	assert.Equal(t, []string{"intro", "prompt", "prompt", "guessed:50", "correct"}, out.events)
	assert.Equal(t, 1, res.Rejected)
}

func TestSessionRun_HintOnGarbage(t *testing.T) {
	in := &lineReader{lines: []string{"abc", "50"}}
	out := &recorder{}

	_, err := New(fixedSource(50), in, out, WithHint(true)).Run()

	require.NoError(t, err)
	assert.Equal(t, []string{"intro", "prompt", "invalid:abc", "prompt", "guessed:50", "correct"}, out.events)
}

func TestSessionRun_EmptyInput(t *testing.T) {
	in := &lineReader{}
	out := &recorder{}

	res, err := New(fixedSource(50), in, out).Run()

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInput)
	assert.ErrorIs(t, err, io.EOF)
	assert.Empty(t, out.feedback())
	assert.Equal(t, []string{"intro", "prompt"}, out.events)
	require.NotNil(t, res)
	assert.False(t, res.Won())
}

func TestSessionRun_ReadErrorIsFatal(t *testing.T) {
	boom := errors.New("device gone")
	in := &lineReader{lines: []string{"10"}, err: boom}
	out := &recorder{}

	res, err := New(fixedSource(50), in, out).Run()

	require.ErrorIs(t, err, ErrInput)
	assert.ErrorIs(t, err, boom)
	// One successful read, one failed read, no retry.
	assert.Equal(t, 2, in.reads)
	assert.Equal(t, []string{"too small"}, out.feedback())
	assert.Len(t, res.Attempts, 1)
}

func TestSessionRun_TooSmallAndTooBigContinue(t *testing.T) {
	const secret = 37
	var lines []string
	for g := MinSecret; g <= MaxSecret; g++ {
		if g != secret {
			lines = append(lines, fmt.Sprint(g))
		}
	}
	lines = append(lines, "-20", "500", fmt.Sprint(secret))

	in := &lineReader{lines: lines}
	out := &recorder{}

	res, err := New(fixedSource(secret), in, out).Run()

	require.NoError(t, err)
	require.Len(t, res.Attempts, len(lines))
	for _, a := range res.Attempts[:len(res.Attempts)-1] {
		switch {
		case a.Guess < secret:
			assert.Equal(t, Less, a.Outcome, "guess %d", a.Guess)
		case a.Guess > secret:
			assert.Equal(t, Greater, a.Outcome, "guess %d", a.Guess)
		}
	}
	// Terminates on the matching guess, not before.
	assert.Equal(t, 1, out.count("correct"))
	assert.Equal(t, "correct", out.events[len(out.events)-1])
	assert.Equal(t, len(lines), in.reads)
}

func TestSessionRun_SecretDrawnOnce(t *testing.T) {
	src := &countingSource{value: 64}
	in := &lineReader{lines: []string{"1", "2", "x", "99", "64"}}

	s := New(src, in, &recorder{})
	before := s.Secret()
	res, err := s.Run()

	require.NoError(t, err)
	assert.Equal(t, 1, src.calls)
	assert.Equal(t, before, s.Secret())
	assert.Equal(t, before, res.Secret)
}

func TestSessionRun_LogsEvents(t *testing.T) {
	logger, logs := testutil.NewCaptureLogger()
	in := &lineReader{lines: []string{"oops", "20", "50"}}

	_, err := New(fixedSource(50), in, &recorder{}, WithLogger(logger)).Run()
	require.NoError(t, err)

	assert.Equal(t, []string{
		"game.start",
		"game.rejected_input",
		"game.guess",
		"game.guess",
		"game.won",
	}, logs.Messages(t))

	won := logs.Find(t, "game.won")
	require.NotNil(t, won)
	assert.EqualValues(t, 2, won["attempts"])
	assert.EqualValues(t, 1, won["rejected"])
}

func TestSessionRun_LogsInputFailure(t *testing.T) {
	logger, logs := testutil.NewCaptureLogger()

	_, err := New(fixedSource(50), &lineReader{}, &recorder{}, WithLogger(logger)).Run()
	require.Error(t, err)

	rec := logs.Find(t, "game.input_failed")
	require.NotNil(t, rec)
	assert.Equal(t, "EOF", rec["error"])
}

func TestWithLoggerIgnoresNil(t *testing.T) {
	s := New(fixedSource(50), &lineReader{}, &recorder{}, WithLogger(nil))
	assert.NotNil(t, s.logger)
}
