package syntax

import "unicode/utf8"

// source is a character reader with position tracking over an
// already-loaded buffer. It performs no I/O and never modifies buf.
type source struct {
	// Input
	buf []byte // entire source, owned by the caller

	// Position tracking
	filename string // source file name
	line     uint32 // current line number (1-based)
	col      uint32 // current column number (1-based, in characters)

	// Current state
	ch   rune // current character, -1 for EOF
	offs int  // byte offset of ch in buf
	next int  // byte offset just past ch
}

// newSource creates a source positioned on the first character of buf.
func newSource(filename string, buf []byte) source {
	s := source{
		buf:      buf,
		filename: filename,
		line:     1,
		col:      0,  // incremented to 1 by the first nextch()
		ch:       -1, // sentinel: before the first character
	}
	s.nextch()
	return s
}

// nextch advances to the next character and updates the position.
// Sets s.ch to -1 at EOF; further calls leave the reader at EOF.
//
// (line, col) always refers to the position of s.ch after nextch returns.
func (s *source) nextch() {
	if s.ch < 0 && s.next > 0 {
		return // already at EOF
	}

	if s.ch == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}

	s.offs = s.next
	if s.offs >= len(s.buf) {
		s.ch = -1
		s.next = len(s.buf) + 1 // mark EOF as reached
		s.offs = len(s.buf)
		return
	}

	// Invalid encodings come back as utf8.RuneError and are rejected
	// by the scanner as unknown characters.
	r, width := utf8.DecodeRune(s.buf[s.offs:])
	s.ch = r
	s.next = s.offs + width
}

// peek returns the character after s.ch without consuming anything,
// or -1 if there is none.
func (s *source) peek() rune {
	if s.ch < 0 || s.next >= len(s.buf) {
		return -1
	}
	r, _ := utf8.DecodeRune(s.buf[s.next:])
	return r
}

// pos returns the position of the current character.
func (s *source) pos() Pos {
	return NewPos(s.filename, s.line, s.col)
}

// segment returns the source text from byte offset start up to,
// but not including, the current character.
func (s *source) segment(start int) string {
	return string(s.buf[start:s.offs])
}

// Character classification helpers

// isLetter reports whether r is a letter (a-z, A-Z, or _).
func isLetter(r rune) bool {
	return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' || r == '_'
}

// isDigit reports whether r is a decimal digit (0-9).
func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// isIdentChar reports whether r may appear in an identifier.
func isIdentChar(r rune) bool {
	return isLetter(r) || isDigit(r)
}

// isBlank reports whether r is a blank that separates tokens on a line.
// Newline is not blank: it ends a logical line.
func isBlank(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r'
}

// isOperatorStart reports whether r can start an operator or delimiter.
func isOperatorStart(r rune) bool {
	switch r {
	case '+', '-', '*', '/', '=', '!', '<', '>', ':',
		'(', ')', '[', ']', ',':
		return true
	}
	return false
}

// endsNumber reports whether r may directly follow a numeric literal.
func endsNumber(r rune) bool {
	return r < 0 || r == '\n' || r == '#' || isBlank(r) || isOperatorStart(r)
}
