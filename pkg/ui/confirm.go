// Package ui provides the console prompt and the pterm-based preview and
// summary rendering around the core engine.
package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/reap-cli/reap/pkg/errors"
)

// ConsoleConfirmer implements types.Confirmer by asking a yes/no question
// on the terminal. An empty answer means no.
type ConsoleConfirmer struct {
	in  *bufio.Reader
	out io.Writer
}

// NewConsoleConfirmer creates a confirmer reading answers from in and
// writing prompts to out. Pass os.Stdin / os.Stdout for real use.
func NewConsoleConfirmer(in io.Reader, out io.Writer) *ConsoleConfirmer {
	return &ConsoleConfirmer{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// NewStdinConfirmer creates a confirmer wired to the process terminal
func NewStdinConfirmer() *ConsoleConfirmer {
	return NewConsoleConfirmer(os.Stdin, os.Stdout)
}

// Confirm blocks until the operator answers. Only "y" and "yes"
// (case-insensitive) count as yes.
func (c *ConsoleConfirmer) Confirm(prompt string) (bool, error) {
	fmt.Fprintf(c.out, "%s [y/N]: ", prompt)

	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		return false, errors.Wrap(err, errors.ErrInputRead, "failed to read user input")
	}

	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}
