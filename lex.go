package calc

import (
	"unicode/utf8"
)

// eof is the cursor character at the end of the input.
const eof = -1

// cursor is the scanning state for a single evaluation.
type cursor struct {
	src string
	// pos is the byte offset of ch in src.
	pos int
	// ch is the byte at pos, or eof.
	ch int
}

func newCursor(src string) *cursor {
	c := &cursor{src: src, pos: -1}
	c.next()
	return c
}

// next advances the cursor by one byte.
func (c *cursor) next() {
	c.pos++
	if c.pos < len(c.src) {
		c.ch = int(c.src[c.pos])
		return
	}
	c.pos = len(c.src)
	c.ch = eof
}

// skip advances past spaces. Only U+0020 counts; tabs and newlines are
// ordinary characters to the parser.
func (c *cursor) skip() {
	for c.ch == ' ' {
		c.next()
	}
}

// eat skips spaces and then consumes want if it is the current character.
func (c *cursor) eat(want byte) bool {
	c.skip()
	if c.ch == int(want) {
		c.next()
		return true
	}
	return false
}

// done reports whether the cursor has consumed the whole input.
func (c *cursor) done() bool {
	return c.pos >= len(c.src)
}

// scanNum scans the longest run of digits and dots. It does not check that
// the run is a valid number.
func (c *cursor) scanNum() string {
	start := c.pos
	for isNumByte(c.ch) {
		c.next()
	}
	return c.src[start:c.pos]
}

// scanIdent scans the longest run of lowercase ASCII letters.
func (c *cursor) scanIdent() string {
	start := c.pos
	for isIdentByte(c.ch) {
		c.next()
	}
	return c.src[start:c.pos]
}

// current returns the full rune at the cursor, or the empty string at the end
// of the input.
func (c *cursor) current() string {
	if c.done() {
		return ""
	}
	_, sz := utf8.DecodeRuneInString(c.src[c.pos:])
	return c.src[c.pos : c.pos+sz]
}

// col returns the 1-based rune column of the cursor. At the end of input, this
// is one past the last rune.
func (c *cursor) col() int {
	return c.colAt(c.pos)
}

// colAt returns the 1-based rune column of the byte offset pos.
func (c *cursor) colAt(pos int) int {
	if pos > len(c.src) {
		pos = len(c.src)
	}
	return utf8.RuneCountInString(c.src[:pos]) + 1
}

func isNumByte(ch int) bool {
	return '0' <= ch && ch <= '9' || ch == '.'
}

func isIdentByte(ch int) bool {
	return 'a' <= ch && ch <= 'z'
}
