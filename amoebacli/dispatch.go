package amoebacli

import (
	"github.com/rivo/uniseg"
)

// Help summary layout.
const (
	// HelpHeader opens the command listing.
	HelpHeader = "Available commands:\n"

	// HelpTrailer closes the command listing.
	HelpTrailer = "Use 'help <command> to get more details."

	// helpNameWidth is the column width the command name is padded to.
	helpNameWidth = 10
)

// Dispatch tokenizes line, selects a command by its first token and runs it,
// appending the rendered result to out.
//
// An empty or whitespace-only line fails with EmptyCmd and an unknown name
// with CmdNotFound. The first token "help" renders help instead of calling a
// command. Errors returned by a callback are passed through unchanged.
func (r *Registry) Dispatch(line string, out *StrBuf) error {
	args := NewArgs(line)
	name, ok := args.Next()
	if !ok {
		return EmptyCmd
	}
	if name == HelpCommand {
		return r.help(args, out)
	}
	cmd, found := r.Find(name)
	if !found {
		return CmdNotFound
	}
	return cmd.Callback(args, out)
}

func (r *Registry) help(args *Args, out *StrBuf) error {
	name, ok := args.Next()
	if !ok {
		return r.WriteSummary(out)
	}
	cmd, found := r.Find(name)
	if !found {
		return CmdNotFound
	}
	return out.Append(cmd.Help)
}

// WriteSummary appends the listing of every command's name and description,
// followed by the help trailer. If the listing does not fit, out is restored
// to its previous contents and BufferOverflow is returned.
func (r *Registry) WriteSummary(out *StrBuf) error {
	mark := out.Len()
	if err := r.writeSummary(out); err != nil {
		out.Truncate(mark)
		return err
	}
	return nil
}

func (r *Registry) writeSummary(out *StrBuf) error {
	if err := out.Append(HelpHeader); err != nil {
		return err
	}
	for _, cmd := range r.cmds {
		if err := out.Append("  "); err != nil {
			return err
		}
		if err := out.Append(cmd.Name); err != nil {
			return err
		}
		for pad := helpNameWidth - uniseg.StringWidth(cmd.Name); pad > 0; pad-- {
			if err := out.AppendByte(' '); err != nil {
				return err
			}
		}
		if err := out.AppendByte(' '); err != nil {
			return err
		}
		if err := out.Append(cmd.Description); err != nil {
			return err
		}
		if err := out.AppendByte('\n'); err != nil {
			return err
		}
	}
	return out.Append(HelpTrailer)
}

// SummarySize returns the number of bytes WriteSummary needs.
func (r *Registry) SummarySize() int {
	n := len(HelpHeader) + len(HelpTrailer)
	for _, cmd := range r.cmds {
		n += 2 + len(cmd.Name) + max(helpNameWidth-uniseg.StringWidth(cmd.Name), 0) +
			1 + len(cmd.Description) + 1
	}
	return n
}
