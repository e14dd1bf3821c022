package amoebacli

import (
	"iter"
	"unicode/utf8"
)

// StrBuf is a fixed-capacity text buffer. Its storage is allocated once and
// never grows; every mutation either fits and succeeds or is rejected with
// BufferOverflow and leaves the contents untouched.
//
// Capacity is counted in bytes of UTF-8.
type StrBuf struct {
	data []byte
	n    int
}

// NewStrBuf creates an empty buffer that can hold capacity bytes.
func NewStrBuf(capacity int) *StrBuf {
	if capacity < 0 {
		capacity = 0
	}
	return &StrBuf{data: make([]byte, capacity)}
}

// StrBufFrom creates a buffer of the given capacity holding text.
// It fails with BufferOverflow when text does not fit.
func StrBufFrom(capacity int, text string) (*StrBuf, error) {
	b := NewStrBuf(capacity)
	if err := b.Append(text); err != nil {
		return nil, err
	}
	return b, nil
}

// Append adds text to the end of the buffer.
func (b *StrBuf) Append(text string) error {
	if len(text) > b.Available() {
		return BufferOverflow
	}
	b.n += copy(b.data[b.n:], text)
	return nil
}

// AppendByte adds a single byte.
func (b *StrBuf) AppendByte(c byte) error {
	if b.Available() < 1 {
		return BufferOverflow
	}
	b.data[b.n] = c
	b.n++
	return nil
}

// AppendRune adds the UTF-8 encoding of r. A rune is stored whole or not
// at all.
func (b *StrBuf) AppendRune(r rune) error {
	if r < utf8.RuneSelf {
		return b.AppendByte(byte(r))
	}
	if utf8.RuneLen(r) > b.Available() {
		return BufferOverflow
	}
	b.n += utf8.EncodeRune(b.data[b.n:], r)
	return nil
}

// Write implements io.Writer so that fmt.Fprintf can render into the
// buffer. A write that does not fit is rejected whole.
func (b *StrBuf) Write(p []byte) (int, error) {
	if len(p) > b.Available() {
		return 0, BufferOverflow
	}
	b.n += copy(b.data[b.n:], p)
	return len(p), nil
}

// WriteString implements io.StringWriter.
func (b *StrBuf) WriteString(s string) (int, error) {
	if err := b.Append(s); err != nil {
		return 0, err
	}
	return len(s), nil
}

// Clear empties the buffer. Storage is kept for reuse.
func (b *StrBuf) Clear() {
	b.n = 0
}

// Truncate discards everything after the first n bytes. It is a no-op when
// n is not smaller than the current length.
func (b *StrBuf) Truncate(n int) {
	if n < 0 {
		n = 0
	}
	if n < b.n {
		b.n = n
	}
}

// Len returns the number of bytes held.
func (b *StrBuf) Len() int { return b.n }

// Cap returns the fixed capacity in bytes.
func (b *StrBuf) Cap() int { return len(b.data) }

// Available returns how many more bytes fit.
func (b *StrBuf) Available() int { return len(b.data) - b.n }

// Bytes returns the contents. The slice aliases the buffer and is only
// valid until the next mutation.
func (b *StrBuf) Bytes() []byte { return b.data[:b.n] }

// String returns a copy of the contents.
func (b *StrBuf) String() string { return string(b.data[:b.n]) }

// Lines yields the contents split on '\n', with a trailing '\r' removed from
// each line. A final terminator does not produce an empty trailing line.
// Each call to the returned sequence starts over from the first line.
func (b *StrBuf) Lines() iter.Seq[string] {
	return func(yield func(string) bool) {
		rest := b.data[:b.n]
		for len(rest) > 0 {
			var line []byte
			line, rest = cutLine(rest)
			if !yield(string(line)) {
				return
			}
		}
	}
}

func cutLine(p []byte) (line, rest []byte) {
	for i, c := range p {
		if c == '\n' {
			line, rest = p[:i], p[i+1:]
			if n := len(line); n > 0 && line[n-1] == '\r' {
				line = line[:n-1]
			}
			return line, rest
		}
	}
	return p, nil
}
