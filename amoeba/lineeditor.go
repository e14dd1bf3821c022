// =============================================================================
// lineeditor.go - Line Input with Dual-Mode Operation
// =============================================================================
//
// Line mode input for the demo console. The editor detects whether stdin is
// an interactive terminal and picks the input method accordingly:
//
//   - Interactive mode: ergochat/readline, giving Emacs keybindings and a
//     history file while a line is being typed.
//   - Non-interactive mode: bufio.Scanner, printing the prompt manually to
//     stdout. Used for piped input and inside Emacs.
//
// Either way the interpreter only ever sees the finished line. Editing and
// history live here, in the input collaborator, and not in the engine.
//
// =============================================================================

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ergochat/readline"
	"golang.org/x/term"
)

const (
	// historyFileName is the name of the history file in the user's home
	// directory.
	historyFileName = ".amoeba_history"

	// historySize is the maximum number of history entries to retain.
	historySize = 500
)

// LineEditor reads one line at a time from stdin.
//
// GO CONCEPT: Struct Fields with Mixed Visibility
// ------------------------------------------------
// All fields are lowercase (unexported), so only this package can touch
// them. The exported methods GetLine, Close and IsInteractive are the API.
// Exactly one of rl and scanner is set, depending on the mode.
//
// Compare with Python: a leading underscore (`self._rl`) marks a field as
// private by convention only; Go enforces it at compile time.
type LineEditor struct {
	// interactive is true when stdin is a TTY and we are not inside Emacs.
	interactive bool

	// rl is the readline instance used in interactive mode.
	rl *readline.Instance

	// scanner reads lines from stdin in non-interactive mode.
	scanner *bufio.Scanner
}

// NewLineEditor creates a LineEditor with automatic mode detection.
//
// INSIDE_EMACS forces non-interactive mode because Emacs provides its own
// line editing. If readline cannot be initialized, the editor falls back to
// non-interactive mode with a warning.
func NewLineEditor() *LineEditor {
	isInteractive := term.IsTerminal(int(os.Stdin.Fd())) &&
		os.Getenv("INSIDE_EMACS") == ""

	if !isInteractive {
		return newScannerEditor(os.Stdin)
	}

	rl, err := readline.NewFromConfig(&readline.Config{
		HistoryFile:            historyPath(),
		HistoryLimit:           historySize,
		DisableAutoSaveHistory: true,
		Prompt:                 "",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: readline init failed (%v), using basic input\n", err)
		return newScannerEditor(os.Stdin)
	}

	return &LineEditor{
		interactive: true,
		rl:          rl,
	}
}

// newScannerEditor creates a non-interactive editor reading from r.
func newScannerEditor(r io.Reader) *LineEditor {
	return &LineEditor{
		interactive: false,
		scanner:     bufio.NewScanner(r),
	}
}

// historyPath returns the absolute path of the history file.
func historyPath() string {
	return filepath.Join(homeDir(), historyFileName)
}

// homeDir returns the user's home directory, or "." if it is unknown.
func homeDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	return "."
}

// GetLine shows prompt and reads one line of input, without the trailing
// newline. It returns io.EOF when input ends (Ctrl-D, Ctrl-C, or a closed
// pipe).
func (le *LineEditor) GetLine(prompt string) (string, error) {
	if le.interactive {
		return le.getInteractiveLine(prompt)
	}
	return le.getNonInteractiveLine(prompt)
}

func (le *LineEditor) getInteractiveLine(prompt string) (string, error) {
	le.rl.SetPrompt(prompt)

	line, err := le.rl.Readline()
	if err != nil {
		if errors.Is(err, readline.ErrInterrupt) {
			return "", io.EOF
		}
		return "", err
	}

	if trimmed := strings.TrimSpace(line); trimmed != "" {
		le.rl.SaveToHistory(trimmed)
	}

	return line, nil
}

func (le *LineEditor) getNonInteractiveLine(prompt string) (string, error) {
	fmt.Print(prompt)

	if !le.scanner.Scan() {
		if err := le.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}

	return le.scanner.Text(), nil
}

// Close releases the readline instance and restores the terminal. It is
// safe to call more than once.
func (le *LineEditor) Close() {
	if le.rl != nil {
		le.rl.Close()
		le.rl = nil
	}
}

// IsInteractive reports whether the editor is using readline.
func (le *LineEditor) IsInteractive() bool {
	return le.interactive
}
