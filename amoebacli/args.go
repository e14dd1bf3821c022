package amoebacli

import (
	"iter"
	"strings"
	"unicode"
)

// Args is the forward-only token stream handed to a command callback.
// Tokens are maximal runs of non-whitespace characters and are produced
// lazily, one per call to Next. There is no rewinding; build a new Args
// with NewArgs to tokenize the same text again.
type Args struct {
	rest string
}

// NewArgs returns a token stream over text.
func NewArgs(text string) *Args {
	return &Args{rest: text}
}

// Next returns the next token. ok is false once the stream is exhausted.
// The two results compose directly with the parsing helpers:
//
//	n, err := amoebacli.ParseInt[uint8](args.Next())
func (a *Args) Next() (token string, ok bool) {
	s := strings.TrimLeftFunc(a.rest, unicode.IsSpace)
	if s == "" {
		a.rest = ""
		return "", false
	}
	end := strings.IndexFunc(s, unicode.IsSpace)
	if end < 0 {
		a.rest = ""
		return s, true
	}
	a.rest = s[end:]
	return s[:end], true
}

// Rest returns the untokenized remainder without consuming it.
func (a *Args) Rest() string {
	return strings.TrimSpace(a.rest)
}

// All yields the remaining tokens, consuming the stream.
func (a *Args) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		for {
			tok, ok := a.Next()
			if !ok || !yield(tok) {
				return
			}
		}
	}
}
