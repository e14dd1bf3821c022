// =============================================================================
// rawterm.go - Character Input from a Raw Terminal
// =============================================================================
//
// In character mode the terminal is switched to raw mode with golang.org/x/term
// so that every key press reaches the program immediately, the way bytes
// arrive from a UART. Raw mode also turns off the terminal's own echo and
// its "\n" to "\r\n" translation, so output goes through crlfWriter.
//
// =============================================================================

package main

import (
	"bufio"
	"bytes"
	"io"
	"os"

	"golang.org/x/term"
)

// Control bytes with special meaning in character mode.
const (
	keyCtrlC = 0x03
	keyCtrlD = 0x04
	keyCR    = '\r'
)

// rawTerminal reads characters from a terminal in raw mode.
type rawTerminal struct {
	fd     int
	state  *term.State
	reader *bufio.Reader
}

// openRawTerminal puts f into raw mode. Close restores the previous mode.
func openRawTerminal(f *os.File) (*rawTerminal, error) {
	fd := int(f.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	return &rawTerminal{
		fd:     fd,
		state:  state,
		reader: bufio.NewReader(f),
	}, nil
}

// ReadChar returns the next character. Enter is reported as '\n'; Ctrl-C
// and Ctrl-D end the session with io.EOF.
func (t *rawTerminal) ReadChar() (rune, error) {
	return readTerminalChar(t.reader)
}

// readTerminalChar decodes one key press from a raw byte stream.
func readTerminalChar(r io.RuneReader) (rune, error) {
	ch, _, err := r.ReadRune()
	if err != nil {
		return 0, err
	}
	switch ch {
	case keyCtrlC, keyCtrlD:
		return 0, io.EOF
	case keyCR:
		return '\n', nil
	default:
		return ch, nil
	}
}

// Close restores the terminal mode saved by openRawTerminal. It is safe to
// call more than once.
func (t *rawTerminal) Close() error {
	if t.state == nil {
		return nil
	}
	err := term.Restore(t.fd, t.state)
	t.state = nil
	return err
}

// crlfWriter expands "\n" to "\r\n" for terminals in raw mode.
type crlfWriter struct {
	w io.Writer
}

func newCRLFWriter(w io.Writer) *crlfWriter {
	return &crlfWriter{w: w}
}

// Write implements io.Writer. The returned count refers to p, not to the
// expanded bytes.
func (c *crlfWriter) Write(p []byte) (int, error) {
	if bytes.IndexByte(p, '\n') < 0 {
		return c.w.Write(p)
	}
	expanded := bytes.ReplaceAll(p, []byte("\n"), []byte("\r\n"))
	if _, err := c.w.Write(expanded); err != nil {
		return 0, err
	}
	return len(p), nil
}
