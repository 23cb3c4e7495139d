// Package console abstracts terminal input and output so interactive flows
// can be driven by tests and non-interactive runs.
package console

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// IO is the terminal surface used by interactive pipeline phases.
type IO interface {
	// Prompt prints a prompt and returns the next line of input, trimmed.
	Prompt(prompt string) (string, error)
	// Print writes a line of output.
	Print(format string, args ...interface{})
}

// Terminal is the standard IO implementation over a reader/writer pair.
type Terminal struct {
	reader *bufio.Reader
	writer io.Writer
}

// New creates a Terminal over arbitrary streams.
func New(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{
		reader: bufio.NewReader(in),
		writer: out,
	}
}

// NewStdio creates a Terminal over stdin/stdout.
func NewStdio() *Terminal {
	return New(os.Stdin, os.Stdout)
}

func (t *Terminal) Prompt(prompt string) (string, error) {
	fmt.Fprint(t.writer, prompt)
	line, err := t.reader.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (t *Terminal) Print(format string, args ...interface{}) {
	fmt.Fprintf(t.writer, format+"\n", args...)
}

// Scripted replays predefined answers, for tests and non-interactive mode.
type Scripted struct {
	Answers []string
	Output  []string
	next    int
}

// NewScripted creates an IO that answers prompts from the given list and
// records everything printed.
func NewScripted(answers ...string) *Scripted {
	return &Scripted{Answers: answers}
}

func (s *Scripted) Prompt(prompt string) (string, error) {
	s.Output = append(s.Output, prompt)
	if s.next >= len(s.Answers) {
		return "", io.EOF
	}
	answer := s.Answers[s.next]
	s.next++
	return answer, nil
}

func (s *Scripted) Print(format string, args ...interface{}) {
	s.Output = append(s.Output, fmt.Sprintf(format, args...))
}
