package tui

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

type TUI struct {
	input  *bufio.Scanner
	output io.Writer
}

func New() *TUI {
	return &TUI{
		input:  bufio.NewScanner(os.Stdin),
		output: os.Stdout,
	}
}

func (t *TUI) SetInput(input io.Reader) {
	t.input = bufio.NewScanner(input)
}

func (t *TUI) SetOutput(output io.Writer) {
	t.output = output
}

// ReadStatement prompts for and reads one statement. It returns false when
// there is no more input or the user asked to leave.
func (t *TUI) ReadStatement(prompt string) (string, bool) {
	fmt.Fprint(t.output, prompt)
	if !t.input.Scan() {
		if err := t.input.Err(); err != nil {
			slog.Error("failed to read user input", "error", err)
		}
		return "", false
	}

	line := strings.TrimSpace(t.input.Text())
	if line == "exit" || line == "quit" {
		return "", false
	}
	return line, true
}

// PrintResult shows the evaluated truth value of a statement.
func (t *TUI) PrintResult(result bool) {
	fmt.Fprintln(t.output, result)
}

// PrintError shows why a statement could not be evaluated.
func (t *TUI) PrintError(err error) {
	fmt.Fprintln(t.output, "error:", err)
}

// AskYesNo keeps asking the question until the user answers it. An empty
// answer counts as no.
func (t *TUI) AskYesNo(question string, a ...any) bool {
	for {
		fmt.Fprintf(t.output, question, a...)
		if !t.input.Scan() {
			if err := t.input.Err(); err != nil {
				slog.Error("failed to read user input", "error", err)
			}
			return false
		}

		switch strings.ToLower(strings.TrimSpace(t.input.Text())) {
		case "y", "yes", "1", "true":
			return true
		case "n", "no", "0", "false", "":
			return false
		}
	}
}
