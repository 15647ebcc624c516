// Package prompt implements the interactive operator steps of a run: the
// live-mode acknowledgement and the per-channel title override.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Tokens accepted at the live-mode gate.
const (
	AcceptToken = "accept"
	ExitToken   = "exit"
)

// Terminal reads operator answers line by line from in and writes prompts to out.
type Terminal struct {
	in  *bufio.Reader
	out io.Writer
}

// NewTerminal returns a Terminal reading answers from in and writing prompts to out.
func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{in: bufio.NewReader(in), out: out}
}

// Confirm loops until the operator types the accept or exit token.
// End of input counts as exit.
func (t *Terminal) Confirm(ctx context.Context) (bool, error) {
	for {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		fmt.Fprintf(t.out, "Enter '%s' to continue or type '%s' to quit: ", AcceptToken, ExitToken)
		line, err := t.readLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(t.out)
				return false, nil
			}
			return false, err
		}

		switch line {
		case AcceptToken:
			return true, nil
		case ExitToken:
			return false, nil
		}
		fmt.Fprintln(t.out, "Incorrect command: "+line)
	}
}

// PromptOverride shows the computed title and returns whatever the operator
// typed. An empty answer (or end of input) means "keep the default".
func (t *Terminal) PromptOverride(ctx context.Context, computed string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	fmt.Fprintln(t.out, color.New(color.FgHiBlue).Sprint("Configure new channel title"))
	fmt.Fprint(t.out, "Press ENTER to confirm default title ("+color.New(color.FgHiGreen).Sprint(computed)+"):")
	line, err := t.readLine()
	if err != nil {
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(t.out)
			return line, nil
		}
		return "", err
	}
	return line, nil
}

// readLine returns one line without its trailing newline. A final line with
// no newline is returned together with io.EOF.
func (t *Terminal) readLine() (string, error) {
	line, err := t.in.ReadString('\n')
	line = strings.TrimRight(line, "\r\n")
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return line, nil
		}
		return line, err
	}
	return line, nil
}
