// Package output renders the game's prompts and feedback.
package output

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/leapstack-labs/numguess/internal/game"
	"github.com/muesli/termenv"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ColorMode selects when feedback is coloured.
type ColorMode string

// Colour modes accepted by the color setting.
const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// Valid reports whether m is a known mode.
func (m ColorMode) Valid() bool {
	switch m {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	}
	return false
}

// Fixed player-facing text.
const (
	MsgIntro    = "Guess the number"
	MsgPrompt   = "Please input your guess."
	MsgInvalid  = "Please type a number!"
	MsgGuessed  = "You guessed: %d"
	MsgTooSmall = "Too small!"
	MsgTooBig   = "Too big!"
	MsgWin      = "You win!"
)

// Styles holds the lipgloss styles used for feedback lines.
type Styles struct {
	Plain    lipgloss.Style
	Title    lipgloss.Style
	Muted    lipgloss.Style
	TooSmall lipgloss.Style
	TooBig   lipgloss.Style
	Win      lipgloss.Style
	Warning  lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) *Styles {
	return &Styles{
		Plain:    r.NewStyle(),
		Title:    r.NewStyle().Bold(true),
		Muted:    r.NewStyle().Faint(true),
		TooSmall: r.NewStyle().Foreground(lipgloss.Color("39")),
		TooBig:   r.NewStyle().Foreground(lipgloss.Color("208")),
		Win:      r.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		Warning:  r.NewStyle().Foreground(lipgloss.Color("214")),
	}
}

// Renderer writes game output to w. It implements game.Feedback.
type Renderer struct {
	w      io.Writer
	p      *message.Printer // summary counts only
	styles *Styles
}

var _ game.Feedback = (*Renderer)(nil)

// NewRenderer creates a renderer for w. In auto mode colour follows the
// writer's terminal capabilities and is disabled when NO_COLOR is set.
func NewRenderer(w io.Writer, mode ColorMode) *Renderer {
	lr := lipgloss.NewRenderer(w)
	switch mode {
	case ColorAlways:
		lr.SetColorProfile(termenv.ANSI256)
	case ColorNever:
		lr.SetColorProfile(termenv.Ascii)
	default:
		if termenv.EnvNoColor() {
			lr.SetColorProfile(termenv.Ascii)
		}
	}

	return &Renderer{
		w:      w,
		p:      message.NewPrinter(language.English),
		styles: newStyles(lr),
	}
}

// line writes one styled line. Numbers are printed as typed, without
// grouping, so an echoed guess matches the player's input.
func (r *Renderer) line(style lipgloss.Style, format string, args ...any) {
	_, _ = fmt.Fprintln(r.w, style.Render(fmt.Sprintf(format, args...)))
}

// Intro prints the banner shown once per game.
func (r *Renderer) Intro() {
	r.line(r.styles.Title, MsgIntro)
}

// Prompt asks for the next guess.
func (r *Renderer) Prompt() {
	r.line(r.styles.Plain, MsgPrompt)
}

// Invalid tells the player the line was not a number.
func (r *Renderer) Invalid(string) {
	r.line(r.styles.Warning, MsgInvalid)
}

// Guessed echoes an accepted guess.
func (r *Renderer) Guessed(guess int) {
	r.line(r.styles.Muted, MsgGuessed, guess)
}

// Outcome prints the comparison result.
func (r *Renderer) Outcome(o game.Outcome) {
	switch o {
	case game.Less:
		r.line(r.styles.TooSmall, MsgTooSmall)
	case game.Greater:
		r.line(r.styles.TooBig, MsgTooBig)
	case game.Equal:
		r.line(r.styles.Win, MsgWin)
	}
}
