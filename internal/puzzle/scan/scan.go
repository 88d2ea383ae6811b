// Package scan is a small left-to-right cursor for writing recursive-descent
// parsers over a single string. Every consuming method either advances past
// what it matched or leaves the cursor untouched and returns an *Error that
// names the offset and the offending fragment.
package scan

import (
	"fmt"
	"strconv"
	"strings"
)

const fragmentLen = 16

// Error describes the first unexpected token.
type Error struct {
	Offset   int
	Expected string
	Found    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("at offset %d: expected %s, found %s", e.Offset, e.Expected, e.Found)
}

type Cursor struct {
	src string
	pos int
}

func New(src string) *Cursor {
	return &Cursor{src: src}
}

// Mark returns the current position for a later Reset.
func (c *Cursor) Mark() int { return c.pos }

// Reset rewinds to a position obtained from Mark.
func (c *Cursor) Reset(pos int) { c.pos = pos }

func (c *Cursor) Done() bool { return c.pos >= len(c.src) }

func (c *Cursor) Rest() string { return c.src[c.pos:] }

func (c *Cursor) Peek() (byte, bool) {
	if c.Done() {
		return 0, false
	}
	return c.src[c.pos], true
}

// Tag consumes lit exactly.
func (c *Cursor) Tag(lit string) error {
	if !strings.HasPrefix(c.Rest(), lit) {
		return c.fail(strconv.Quote(lit))
	}
	c.pos += len(lit)
	return nil
}

// TryTag consumes lit when present and reports whether it did.
func (c *Cursor) TryTag(lit string) bool {
	return c.Tag(lit) == nil
}

// Spaces skips zero or more blanks (space or tab).
func (c *Cursor) Spaces() {
	for !c.Done() && isBlank(c.src[c.pos]) {
		c.pos++
	}
}

// Spaces1 skips one or more blanks.
func (c *Cursor) Spaces1() error {
	if b, ok := c.Peek(); !ok || !isBlank(b) {
		return c.fail("whitespace")
	}
	c.Spaces()
	return nil
}

// Int consumes one or more decimal digits.
func (c *Cursor) Int() (int, error) {
	digits := c.span(isDigit)
	if digits == "" {
		return 0, c.fail("digit")
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		c.pos -= len(digits)
		return 0, c.fail("integer in range")
	}
	return n, nil
}

// SignedInt consumes an optional '-' followed by digits.
func (c *Cursor) SignedInt() (int, error) {
	start := c.pos
	neg := c.TryTag("-")
	n, err := c.Int()
	if err != nil {
		c.pos = start
		return 0, err
	}
	if neg {
		n = -n
	}
	return n, nil
}

// Alpha consumes one or more ASCII letters.
func (c *Cursor) Alpha() (string, error) {
	w := c.span(isAlpha)
	if w == "" {
		return "", c.fail("letter")
	}
	return w, nil
}

// Alnum consumes one or more ASCII letters or digits.
func (c *Cursor) Alnum() (string, error) {
	w := c.span(func(b byte) bool { return isAlpha(b) || isDigit(b) })
	if w == "" {
		return "", c.fail("letter or digit")
	}
	return w, nil
}

// OneOf consumes a single byte from set.
func (c *Cursor) OneOf(set string) (byte, error) {
	b, ok := c.Peek()
	if !ok || strings.IndexByte(set, b) < 0 {
		return 0, c.fail("one of " + strconv.Quote(set))
	}
	c.pos++
	return b, nil
}

// Run consumes one or more bytes from set.
func (c *Cursor) Run(set string) (string, error) {
	w := c.span(func(b byte) bool { return strings.IndexByte(set, b) >= 0 })
	if w == "" {
		return "", c.fail("one of " + strconv.Quote(set))
	}
	return w, nil
}

// Newline consumes "\n" or "\r\n".
func (c *Cursor) Newline() error {
	if c.TryTag("\n") || c.TryTag("\r\n") {
		return nil
	}
	return c.fail("newline")
}

// End fails unless every byte has been consumed.
func (c *Cursor) End() error {
	if !c.Done() {
		return c.fail("end of input")
	}
	return nil
}

func (c *Cursor) span(pred func(byte) bool) string {
	start := c.pos
	for !c.Done() && pred(c.src[c.pos]) {
		c.pos++
	}
	return c.src[start:c.pos]
}

func (c *Cursor) fail(expected string) error {
	return &Error{Offset: c.pos, Expected: expected, Found: c.fragment()}
}

func (c *Cursor) fragment() string {
	rest := c.Rest()
	if rest == "" {
		return "end of input"
	}
	if len(rest) > fragmentLen {
		return strconv.Quote(rest[:fragmentLen]) + "…"
	}
	return strconv.Quote(rest)
}

func isBlank(b byte) bool { return b == ' ' || b == '\t' }
func isDigit(b byte) bool { return b >= '0' && b <= '9' }
func isAlpha(b byte) bool { return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') }
