// =============================================================================
// repl.go - Session Loops
// =============================================================================
//
// This file connects an input source to the interpreter. There are two
// shapes of input:
//
//   - Line sources (LineEditor) hand over a complete line at a time, which
//     is fed with Interpreter.FeedLine.
//   - Character sources (raw terminal, tcell screen) hand over one character
//     at a time, which is fed with Interpreter.FeedChar. The interpreter does
//     not echo, so the loop echoes every character it keeps.
//
// =============================================================================

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"unicode"
	"unicode/utf8"

	"github.com/esynr3z/amoeba-cli/amoebacli"
)

// charSource supplies input one character at a time. ReadChar returns
// '\n' for Enter and io.EOF when the user ends the session.
type charSource interface {
	ReadChar() (rune, error)
	Close() error
}

// newInterpreter builds an interpreter for the session options.
func newInterpreter(reg *amoebacli.Registry, args arguments, prompt string, out, errOut io.Writer) (*amoebacli.Interpreter, error) {
	return amoebacli.New(reg, amoebacli.Config{
		Greeting:    greeting(),
		Prompt:      prompt,
		LineCap:     args.lineCap,
		ResponseCap: args.responseCap,
		Output:      out,
		ErrOutput:   errOut,
	})
}

// execOnce runs args.exec as a single line and returns the process exit
// code: 0 on success, 1 when the command failed.
func execOnce(reg *amoebacli.Registry, args arguments, stdout, stderr io.Writer) int {
	interp, err := newInterpreter(reg, args, "", stdout, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	text, err := interp.Exec(args.exec)
	if err != nil {
		kind, ok := amoebacli.KindOf(err)
		if !ok {
			kind = amoebacli.CmdFailure
		}
		fmt.Fprintln(stderr, kind.Error())
		return 1
	}
	fmt.Fprintln(stdout, text)
	return 0
}

// runSession starts the input source selected by args and runs it until the
// user ends the session. setCleanup receives the function that restores the
// terminal, so that signal handling and the exit command can call it.
func runSession(reg *amoebacli.Registry, args arguments, setCleanup func(func())) error {
	switch args.mode {
	case modeChar:
		rt, err := openRawTerminal(os.Stdin)
		if err != nil {
			return fmt.Errorf("raw terminal: %w", err)
		}
		setCleanup(func() { rt.Close() })
		out := newCRLFWriter(os.Stdout)
		interp, err := newInterpreter(reg, args, args.prompt, out, out)
		if err != nil {
			return err
		}
		return runCharSession(interp, rt, out)

	case modeScreen:
		st, err := openScreenTerminal()
		if err != nil {
			return fmt.Errorf("screen: %w", err)
		}
		setCleanup(func() { st.Close() })
		interp, err := newInterpreter(reg, args, args.prompt, st, st)
		if err != nil {
			return err
		}
		return runCharSession(interp, st, st)

	default:
		editor := NewLineEditor()
		setCleanup(editor.Close)
		// The line editor draws the prompt itself, so the interpreter is
		// given an empty one.
		interp, err := newInterpreter(reg, args, "", os.Stdout, os.Stderr)
		if err != nil {
			return err
		}
		return runLineSession(interp, editor, args.prompt, os.Stdout)
	}
}

// lineSource is the part of LineEditor the line loop needs.
type lineSource interface {
	GetLine(prompt string) (string, error)
}

// runLineSession feeds whole lines until the source reports io.EOF.
func runLineSession(interp *amoebacli.Interpreter, src lineSource, prompt string, out io.Writer) error {
	if err := interp.Start(); err != nil {
		return err
	}
	for {
		line, err := src.GetLine(prompt)
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(out)
			return nil
		}
		if err != nil {
			return err
		}
		if err := interp.FeedLine(line); err != nil {
			return err
		}
	}
}

// runCharSession feeds characters until the source reports io.EOF.
//
// Control characters other than '\n' are ignored: the engine has no line
// editing. A printable character is echoed only if the interpreter kept it,
// so the screen always shows exactly the buffered line.
func runCharSession(interp *amoebacli.Interpreter, src charSource, echo io.Writer) error {
	if err := interp.Start(); err != nil {
		return err
	}
	var enc [utf8.UTFMax]byte
	for {
		ch, err := src.ReadChar()
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(echo)
			return nil
		}
		if err != nil {
			return err
		}

		switch {
		case ch == amoebacli.LineTerminator:
			if _, err := io.WriteString(echo, "\n"); err != nil {
				return err
			}
			if err := interp.FeedChar(ch); err != nil {
				return err
			}

		case unicode.IsControl(ch):
			continue

		default:
			before := interp.LineLen()
			if err := interp.FeedChar(ch); err != nil {
				return err
			}
			if interp.LineLen() == before {
				continue
			}
			n := utf8.EncodeRune(enc[:], ch)
			if _, err := echo.Write(enc[:n]); err != nil {
				return err
			}
		}
	}
}
