// Package prompt provides line readers for the game's input channel.
//
// StreamReader serves pipes, files and tests. TerminalReader wraps readline
// for interactive use with line editing and optional history.
package prompt

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"golang.org/x/term"
)

// ErrInterrupted is returned when the player presses Ctrl-C at the prompt.
var ErrInterrupted = errors.New("interrupted")

// Reader reads one line at a time. ReadLine returns io.EOF once input is
// exhausted; an empty line is returned as "" with a nil error.
type Reader interface {
	ReadLine() (string, error)
	Close() error
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// StreamReader reads newline-terminated lines of any length from an io.Reader.
type StreamReader struct {
	br *bufio.Reader
}

// NewStreamReader returns a StreamReader over r.
func NewStreamReader(r io.Reader) *StreamReader {
	return &StreamReader{br: bufio.NewReader(r)}
}

// ReadLine returns the next line without its "\n" or "\r\n" terminator. A
// last line with no trailing newline is still returned.
func (s *StreamReader) ReadLine() (string, error) {
	line, err := s.br.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSuffix(line, "\r"), nil
		}
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}

// Close is a no-op; the underlying reader is owned by the caller.
func (s *StreamReader) Close() error {
	return nil
}

// TerminalConfig configures a TerminalReader.
type TerminalConfig struct {
	Prompt      string
	HistoryFile string
	Stdin       io.ReadCloser
	Stdout      io.Writer
	Stderr      io.Writer
}

// TerminalReader reads lines from an interactive terminal.
type TerminalReader struct {
	rl *readline.Instance
}

// NewTerminalReader sets up readline. Nil streams default to the process's
// standard streams.
func NewTerminalReader(cfg TerminalConfig) (*TerminalReader, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          cfg.Prompt,
		HistoryFile:     cfg.HistoryFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "",
		Stdin:           cfg.Stdin,
		Stdout:          cfg.Stdout,
		Stderr:          cfg.Stderr,
	})
	if err != nil {
		return nil, err
	}
	return &TerminalReader{rl: rl}, nil
}

// ReadLine blocks until the player submits a line.
func (t *TerminalReader) ReadLine() (string, error) {
	line, err := t.rl.Readline()
	switch {
	case errors.Is(err, readline.ErrInterrupt):
		return "", ErrInterrupted
	case err != nil:
		return "", err
	}
	return line, nil
}

// Close restores the terminal.
func (t *TerminalReader) Close() error {
	return t.rl.Close()
}
