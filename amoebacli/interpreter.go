package amoebacli

import (
	"io"
)

// Default buffer sizes used when Config leaves them at zero.
const (
	DefaultLineCap     = 256
	DefaultResponseCap = 1024
)

// LineTerminator ends a line in FeedChar input.
const LineTerminator = '\n'

// Config configures an Interpreter.
type Config struct {
	// Greeting is written once by Start, before the first prompt.
	Greeting string

	// Prompt is written by Start and after every dispatched line.
	Prompt string

	// LineCap is the capacity of the line being typed, in bytes.
	LineCap int

	// ResponseCap is the capacity of the buffer callbacks render into.
	ResponseCap int

	// Output receives greetings, prompts and command results. Required.
	Output io.Writer

	// ErrOutput receives error lines. Defaults to Output.
	ErrOutput io.Writer

	// ErrorText maps an error kind to the line shown to the user.
	// Defaults to ErrorKind.Error.
	ErrorText func(ErrorKind) string
}

// Interpreter accumulates input one character at a time and runs each
// completed line against a registry. All buffers are allocated by New and
// reused for the life of the interpreter.
//
// An Interpreter is not safe for concurrent use.
type Interpreter struct {
	reg       *Registry
	line      *StrBuf
	resp      *StrBuf
	greeting  string
	prompt    string
	out       io.Writer
	errOut    io.Writer
	errorText func(ErrorKind) string
}

// New creates an interpreter for reg.
//
// It fails with ErrNoRegistry when reg is nil, ErrNoOutput when cfg.Output
// is nil, and ErrResponseTooSmall when the help summary for reg would not
// fit in the response buffer.
func New(reg *Registry, cfg Config) (*Interpreter, error) {
	if reg == nil {
		return nil, ErrNoRegistry
	}
	if cfg.Output == nil {
		return nil, ErrNoOutput
	}
	if cfg.LineCap <= 0 {
		cfg.LineCap = DefaultLineCap
	}
	if cfg.ResponseCap <= 0 {
		cfg.ResponseCap = DefaultResponseCap
	}
	if cfg.ErrOutput == nil {
		cfg.ErrOutput = cfg.Output
	}
	if cfg.ErrorText == nil {
		cfg.ErrorText = ErrorKind.Error
	}
	if reg.SummarySize() > cfg.ResponseCap {
		return nil, ErrResponseTooSmall
	}

	return &Interpreter{
		reg:       reg,
		line:      NewStrBuf(cfg.LineCap),
		resp:      NewStrBuf(cfg.ResponseCap),
		greeting:  cfg.Greeting,
		prompt:    cfg.Prompt,
		out:       cfg.Output,
		errOut:    cfg.ErrOutput,
		errorText: cfg.ErrorText,
	}, nil
}

// Start writes the greeting and the first prompt.
func (in *Interpreter) Start() error {
	if _, err := io.WriteString(in.out, in.greeting); err != nil {
		return err
	}
	_, err := io.WriteString(in.out, in.prompt)
	return err
}

// FeedChar consumes one character of input.
//
// LineTerminator runs the buffered line, writes its outcome and the prompt,
// then empties the line. Any other character is appended to the line; once
// the line is full further characters are dropped.
//
// The returned error reports a failed write to an output. Command errors are
// rendered, never returned.
func (in *Interpreter) FeedChar(ch rune) error {
	if ch != LineTerminator {
		// A full line silently drops the character.
		_ = in.line.AppendRune(ch)
		return nil
	}

	err := in.run(in.line.String())
	in.line.Clear()
	return err
}

// FeedLine feeds every character of line followed by LineTerminator.
func (in *Interpreter) FeedLine(line string) error {
	for _, ch := range line {
		if err := in.FeedChar(ch); err != nil {
			return err
		}
	}
	return in.FeedChar(LineTerminator)
}

// Exec runs a complete line and returns the rendered result. The partial
// line held for FeedChar is not touched.
func (in *Interpreter) Exec(line string) (string, error) {
	in.resp.Clear()
	if err := in.reg.Dispatch(line, in.resp); err != nil {
		return "", err
	}
	return in.resp.String(), nil
}

// Line returns the characters buffered since the last terminator.
func (in *Interpreter) Line() string {
	return in.line.String()
}

// LineLen returns the number of bytes buffered since the last terminator.
// Comparing it before and after FeedChar tells whether a character was kept.
func (in *Interpreter) LineLen() int {
	return in.line.Len()
}

// Registry returns the command table the interpreter dispatches to.
func (in *Interpreter) Registry() *Registry {
	return in.reg
}

func (in *Interpreter) run(line string) error {
	in.resp.Clear()
	if err := in.reg.Dispatch(line, in.resp); err != nil {
		if werr := in.renderError(err); werr != nil {
			return werr
		}
	} else if werr := in.renderResult(); werr != nil {
		return werr
	}
	_, err := io.WriteString(in.out, in.prompt)
	return err
}

func (in *Interpreter) renderResult() error {
	if in.resp.Len() == 0 {
		_, err := io.WriteString(in.out, "\n")
		return err
	}
	for line := range in.resp.Lines() {
		if _, err := io.WriteString(in.out, line); err != nil {
			return err
		}
		if _, err := io.WriteString(in.out, "\n"); err != nil {
			return err
		}
	}
	return nil
}

func (in *Interpreter) renderError(err error) error {
	kind, ok := KindOf(err)
	if !ok {
		kind = CmdFailure
	}
	if _, werr := io.WriteString(in.errOut, in.errorText(kind)); werr != nil {
		return werr
	}
	_, werr := io.WriteString(in.errOut, "\n")
	return werr
}
