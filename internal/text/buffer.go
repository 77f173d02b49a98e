// Package text provides the small string-backed edit buffer that history
// commands operate on. Offsets are byte offsets; helpers are provided for
// stepping over UTF-8 rune boundaries.
package text

import (
	"strings"
	"unicode/utf8"
)

// Buffer holds editable text addressed by byte offset.
type Buffer struct {
	content string
}

// NewBuffer creates a buffer with the given initial text.
func NewBuffer(s string) *Buffer {
	return &Buffer{content: s}
}

// Len returns the buffer length in bytes.
func (b *Buffer) Len() int { return len(b.content) }

// Text returns the full buffer contents.
func (b *Buffer) Text() string { return b.content }

// Lines returns the buffer split on newlines for rendering.
func (b *Buffer) Lines() []string {
	return strings.Split(b.content, "\n")
}

// TextRange returns the text in [start, end).
func (b *Buffer) TextRange(start, end int) (string, error) {
	if err := b.checkRange(start, end); err != nil {
		return "", err
	}
	return b.content[start:end], nil
}

// Insert inserts s at the given offset.
func (b *Buffer) Insert(at int, s string) error {
	if at < 0 || at > len(b.content) {
		return ErrOffsetOutOfRange
	}
	b.content = b.content[:at] + s + b.content[at:]
	return nil
}

// Delete removes the text in [start, end).
func (b *Buffer) Delete(start, end int) error {
	if err := b.checkRange(start, end); err != nil {
		return err
	}
	b.content = b.content[:start] + b.content[end:]
	return nil
}

// Replace substitutes the text in [start, end) with s and returns the end
// offset of the inserted text.
func (b *Buffer) Replace(start, end int, s string) (int, error) {
	if err := b.checkRange(start, end); err != nil {
		return 0, err
	}
	b.content = b.content[:start] + s + b.content[end:]
	return start + len(s), nil
}

// PrevRuneStart returns the offset of the rune boundary before at, or 0 at
// the start of the buffer.
func (b *Buffer) PrevRuneStart(at int) int {
	if at <= 0 {
		return 0
	}
	if at > len(b.content) {
		at = len(b.content)
	}
	_, size := utf8.DecodeLastRuneInString(b.content[:at])
	return at - size
}

// NextRuneEnd returns the offset just past the rune starting at at, or the
// buffer length at the end.
func (b *Buffer) NextRuneEnd(at int) int {
	if at >= len(b.content) {
		return len(b.content)
	}
	if at < 0 {
		at = 0
	}
	_, size := utf8.DecodeRuneInString(b.content[at:])
	return at + size
}

func (b *Buffer) checkRange(start, end int) error {
	if start < 0 || end > len(b.content) {
		return ErrOffsetOutOfRange
	}
	if end < start {
		return ErrRangeInvalid
	}
	return nil
}
