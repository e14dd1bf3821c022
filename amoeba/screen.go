// =============================================================================
// screen.go - Full-Screen Character Input (tcell)
// =============================================================================
//
// Screen mode takes over the terminal with gdamore/tcell and polls key events
// one at a time, like a curses getch() loop. The same value also serves as
// the interpreter's output: text written to it is appended to a scrollback
// and the bottom of the scrollback is drawn on the screen.
//
// =============================================================================

package main

import (
	"io"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// maxScrollback is the number of lines kept for redrawing.
const maxScrollback = 500

// screenTerminal is a charSource and io.Writer backed by a tcell.Screen.
//
// screen is set once by newScreenTerminal and never changes, so Close may
// run on the signal goroutine while ReadChar is blocked in PollEvent.
type screenTerminal struct {
	screen tcell.Screen
	style  tcell.Style

	closeOnce sync.Once
	closed    atomic.Bool

	// lines is the scrollback; the last entry is the line being written.
	lines []string
}

// openScreenTerminal initializes the real terminal screen.
func openScreenTerminal() (*screenTerminal, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return newScreenTerminal(s)
}

// newScreenTerminal initializes s and wraps it. Tests pass a simulation
// screen here.
func newScreenTerminal(s tcell.Screen) (*screenTerminal, error) {
	if err := s.Init(); err != nil {
		return nil, err
	}
	st := &screenTerminal{
		screen: s,
		style:  tcell.StyleDefault,
		lines:  []string{""},
	}
	st.draw()
	return st, nil
}

// ReadChar waits for the next key press. Enter is reported as '\n'; Ctrl-C,
// Ctrl-D and Escape end the session with io.EOF. Other special keys are
// skipped.
func (st *screenTerminal) ReadChar() (rune, error) {
	for {
		switch ev := st.screen.PollEvent().(type) {
		case nil:
			// The screen was finalized.
			return 0, io.EOF
		case *tcell.EventResize:
			if st.closed.Load() {
				return 0, io.EOF
			}
			st.screen.Sync()
			st.draw()
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEnter:
				return '\n', nil
			case tcell.KeyCtrlC, tcell.KeyCtrlD, tcell.KeyEscape:
				return 0, io.EOF
			case tcell.KeyRune:
				return ev.Rune(), nil
			}
		}
	}
}

// Write appends p to the scrollback and redraws. After Close the text is
// still kept but nothing is drawn.
func (st *screenTerminal) Write(p []byte) (int, error) {
	st.appendText(string(p))
	if !st.closed.Load() {
		st.draw()
	}
	return len(p), nil
}

// appendText splits text on newlines into the scrollback.
func (st *screenTerminal) appendText(text string) {
	parts := strings.Split(text, "\n")
	last := len(st.lines) - 1
	st.lines[last] += parts[0]
	st.lines = append(st.lines, parts[1:]...)
	if extra := len(st.lines) - maxScrollback; extra > 0 {
		st.lines = append(st.lines[:0], st.lines[extra:]...)
	}
}

// draw renders the bottom of the scrollback and places the cursor after the
// last character written.
func (st *screenTerminal) draw() {
	st.screen.Clear()
	width, height := st.screen.Size()

	first := max(len(st.lines)-height, 0)
	cursorX, cursorY := 0, 0
	for y, line := range st.lines[first:] {
		cursorX, cursorY = st.drawLine(line, y, width), y
	}

	st.screen.ShowCursor(cursorX, cursorY)
	st.screen.Show()
}

// drawLine draws one line grapheme by grapheme, clipped to width, and
// returns the column after the last cell drawn.
func (st *screenTerminal) drawLine(line string, y, width int) int {
	x := 0
	g := uniseg.NewGraphemes(line)
	for g.Next() {
		w := g.Width()
		if x+w > width {
			break
		}
		runes := g.Runes()
		st.screen.SetContent(x, y, runes[0], runes[1:], st.style)
		x += w
	}
	return x
}

// Close restores the terminal. It is safe to call more than once.
func (st *screenTerminal) Close() error {
	st.closeOnce.Do(func() {
		st.closed.Store(true)
		st.screen.Fini()
	})
	return nil
}
