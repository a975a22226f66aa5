package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Prompter reads line-oriented answers from the user.
// Secrets are read without echo when input is a terminal.
type Prompter struct {
	reader   *bufio.Reader
	out      io.Writer
	fd       int
	terminal bool
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	prompter := &Prompter{reader: bufio.NewReader(in), out: out}

	if file, ok := in.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		prompter.fd = int(file.Fd())
		prompter.terminal = true
	}

	return prompter
}

// Line prints prompt and returns the next input line without its line ending.
// A final line without a newline is returned as is; afterwards io.EOF is reported.
func (p *Prompter) Line(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)

	line, err := p.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}

	return strings.TrimRight(line, "\r\n"), nil
}

// Secret prints prompt and reads a password.
func (p *Prompter) Secret(prompt string) (string, error) {
	if !p.terminal {
		return p.Line(prompt)
	}

	fmt.Fprint(p.out, prompt)
	secret, err := term.ReadPassword(p.fd)
	fmt.Fprintln(p.out)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	return string(secret), nil
}
