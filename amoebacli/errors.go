package amoebacli

import (
	"errors"
	"fmt"
)

// ErrorKind is the closed set of errors the interpreter reports while
// handling a line. It implements error, so a callback can return a kind
// directly:
//
//	return amoebacli.NotEnoughArgs
type ErrorKind int

const (
	// EmptyCmd indicates the input line contained no tokens.
	EmptyCmd ErrorKind = iota
	// CmdNotFound indicates the named command is not in the registry.
	CmdNotFound
	// NotEnoughArgs indicates a callback required a token that was not given.
	NotEnoughArgs
	// InvalidArgType indicates a token failed to parse as the requested type.
	InvalidArgType
	// BufferOverflow indicates a bounded buffer operation would exceed capacity.
	BufferOverflow
	// CmdFailure indicates the command logic declined for a domain reason.
	CmdFailure
)

// Error implements the error interface. The text is fixed per kind.
func (k ErrorKind) Error() string {
	switch k {
	case EmptyCmd:
		return "empty command!"
	case CmdNotFound:
		return "command was not found!"
	case NotEnoughArgs:
		return "not enough arguments for the command!"
	case InvalidArgType:
		return "invalid argument type!"
	case BufferOverflow:
		return "string buffer overflow!"
	case CmdFailure:
		return "command execution failed!"
	default:
		return fmt.Sprintf("unknown error kind %d", int(k))
	}
}

// String returns the kind's identifier, e.g. "CmdNotFound".
func (k ErrorKind) String() string {
	switch k {
	case EmptyCmd:
		return "EmptyCmd"
	case CmdNotFound:
		return "CmdNotFound"
	case NotEnoughArgs:
		return "NotEnoughArgs"
	case InvalidArgType:
		return "InvalidArgType"
	case BufferOverflow:
		return "BufferOverflow"
	case CmdFailure:
		return "CmdFailure"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// KindOf reports the ErrorKind carried by err, looking through wrapped
// errors. ok is false when err is nil or carries no kind.
func KindOf(err error) (kind ErrorKind, ok bool) {
	if err == nil {
		return 0, false
	}
	if errors.As(err, &kind) {
		return kind, true
	}
	return 0, false
}

// Sentinel errors for configuration problems. These are reported when a
// registry or interpreter is built, never while a line is handled.
var (
	// ErrEmptyName indicates a command was registered without a name.
	ErrEmptyName = errors.New("command name is empty")

	// ErrInvalidName indicates a command name contains whitespace and could
	// never be produced by the tokenizer.
	ErrInvalidName = errors.New("command name contains whitespace")

	// ErrReservedName indicates a command tried to use the name "help".
	ErrReservedName = errors.New("command name is reserved")

	// ErrDuplicateName indicates two commands share a name.
	ErrDuplicateName = errors.New("duplicate command name")

	// ErrNilCallback indicates a command has no callback.
	ErrNilCallback = errors.New("command has no callback")

	// ErrNoRegistry indicates an interpreter was configured without a
	// command registry.
	ErrNoRegistry = errors.New("no command registry configured")

	// ErrNoOutput indicates an interpreter was configured without an output.
	ErrNoOutput = errors.New("no output writer configured")

	// ErrResponseTooSmall indicates the response buffer cannot hold the
	// help summary for the registry.
	ErrResponseTooSmall = errors.New("response buffer too small for help summary")
)

// RegistryError reports which command failed registry validation.
type RegistryError struct {
	Name string
	Err  error
}

// Error implements the error interface.
func (e *RegistryError) Error() string {
	return fmt.Sprintf("invalid command %q: %v", e.Name, e.Err)
}

// Unwrap returns the underlying sentinel for errors.Is support.
func (e *RegistryError) Unwrap() error {
	return e.Err
}
