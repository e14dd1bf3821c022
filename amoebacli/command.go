package amoebacli

import (
	"slices"
	"strings"
	"unicode"
)

// HelpCommand is the reserved name of the built-in help command.
const HelpCommand = "help"

// Callback runs a command. It reads its arguments from args and renders its
// result into out, a bounded buffer owned by the interpreter. A returned
// error is reported to the user in place of the result.
type Callback func(args *Args, out *StrBuf) error

// Command describes one entry of the command table.
type Command struct {
	Name        string   // Token that selects the command
	Description string   // One-line summary shown by "help"
	Help        string   // Detailed text shown by "help <name>"
	Callback    Callback // Invoked with the tokens after the name
}

// Registry is an ordered, fixed table of commands. It is built once and
// never modified afterwards.
type Registry struct {
	cmds []Command
}

// NewRegistry builds a registry from cmds, in order. The slice is copied.
//
// Each command must have a callback and a non-empty name that contains no
// whitespace, is unique in the table, and is not the reserved name "help".
// Violations are reported as a *RegistryError.
func NewRegistry(cmds ...Command) (*Registry, error) {
	for i, cmd := range cmds {
		if err := validateCommand(cmd); err != nil {
			return nil, &RegistryError{Name: cmd.Name, Err: err}
		}
		for _, prev := range cmds[:i] {
			if prev.Name == cmd.Name {
				return nil, &RegistryError{Name: cmd.Name, Err: ErrDuplicateName}
			}
		}
	}
	return &Registry{cmds: slices.Clone(cmds)}, nil
}

func validateCommand(cmd Command) error {
	switch {
	case cmd.Name == "":
		return ErrEmptyName
	case strings.IndexFunc(cmd.Name, unicode.IsSpace) >= 0:
		return ErrInvalidName
	case cmd.Name == HelpCommand:
		return ErrReservedName
	case cmd.Callback == nil:
		return ErrNilCallback
	}
	return nil
}

// Find returns the first command whose name equals name exactly.
func (r *Registry) Find(name string) (Command, bool) {
	for _, cmd := range r.cmds {
		if cmd.Name == name {
			return cmd, true
		}
	}
	return Command{}, false
}

// Commands returns a copy of the table in registry order.
func (r *Registry) Commands() []Command {
	return slices.Clone(r.cmds)
}

// Len returns the number of registered commands.
func (r *Registry) Len() int {
	return len(r.cmds)
}
