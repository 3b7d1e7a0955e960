// Package prompt reads a password from the user without echoing it.
//
// When the input is a terminal the password is read with echo disabled.
// Otherwise, for example when a password is piped in, a single line is read
// from the input as-is.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// DefaultMessage is the prompt shown before reading a password.
const DefaultMessage = "Enter the password to check: "

// Prompter reads passwords from an input and writes prompts to an output.
type Prompter struct {
	in  io.Reader
	out io.Writer
}

// New creates a Prompter. The prompt is written to out, which should be
// stderr so that reports on stdout stay clean.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: in, out: out}
}

// IsInteractive reports whether the input is a terminal.
func (p *Prompter) IsInteractive() bool {
	_, ok := p.terminalFd()
	return ok
}

// terminalFd returns the file descriptor of the input when it is a terminal.
func (p *Prompter) terminalFd() (int, bool) {
	f, ok := p.in.(*os.File)
	if !ok {
		return 0, false
	}
	fd := int(f.Fd()) //nolint:gosec // file descriptors fit in int
	return fd, term.IsTerminal(fd)
}

// ReadPassword shows message and reads one password. An empty string with
// a nil error means the user entered nothing.
func (p *Prompter) ReadPassword(message string) (string, error) {
	if _, err := fmt.Fprint(p.out, message); err != nil {
		return "", err
	}

	if fd, ok := p.terminalFd(); ok {
		b, err := term.ReadPassword(fd)
		// The terminal swallowed the user's newline.
		fmt.Fprintln(p.out) //nolint:errcheck // best effort
		if err != nil {
			return "", fmt.Errorf("failed to read password: %w", err)
		}
		return string(b), nil
	}

	line, err := bufio.NewReader(p.in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
