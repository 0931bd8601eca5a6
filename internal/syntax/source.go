package syntax

import (
	"io"
	"unicode/utf8"
)

// source feeds the scanner one rune at a time while tracking the
// line:col of the rune it currently exposes. Tali programs are small,
// so the whole input is read up front; there is no buffered refill.
type source struct {
	buf  []byte // complete input
	ch   rune   // rune at the cursor, -1 once input is exhausted
	offs int    // byte offset of the rune after ch

	filename string
	line     uint32
	col      uint32

	errh func(line, col uint32, msg string)
}

// newSource reads all of src and positions the cursor on its first
// rune. A nil errh discards lexical diagnostics.
func newSource(filename string, src io.Reader, errh func(line, col uint32, msg string)) *source {
	s := &source{
		filename: filename,
		line:     1,
		ch:       -1,
		errh:     errh,
	}

	var err error
	s.buf, err = io.ReadAll(src)
	if err != nil {
		s.error("error reading source: " + err.Error())
		return s
	}

	s.nextch()
	return s
}

// nextch moves the cursor one rune forward. line and col always
// describe s.ch; a newline bumps the line before the next rune is
// decoded, so the first rune of every line lands on col 1.
func (s *source) nextch() {
	if s.ch == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}

	if s.offs >= len(s.buf) {
		s.ch = -1
		return
	}

	r, width := utf8.DecodeRune(s.buf[s.offs:])
	if r == utf8.RuneError && width == 1 {
		s.error("invalid UTF-8 encoding")
	}

	s.ch = r
	s.offs += width
}

// pos returns the position of the cursor rune.
func (s *source) pos() Pos {
	return NewPos(s.filename, s.line, s.col)
}

func (s *source) error(msg string) {
	if s.errh != nil {
		s.errh(s.line, s.col, msg)
	}
}

// ----------------------------------------------------------------------------
// Character classes

// Tali identifiers are ASCII: letters, digits, and underscore, starting
// with a letter or underscore.
func isLetter(r rune) bool {
	return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' || r == '_'
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// Newlines are plain whitespace: statements end at ';', not at line
// breaks.
func isWhitespace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r' || r == '\n'
}

// isOperatorStart reports whether r begins an operator or delimiter.
func isOperatorStart(r rune) bool {
	switch r {
	case '+', '-', '*', '/', '%', '^', '&', '|', '<', '>', '=', '!', ':',
		'(', ')', ',', ';':
		return true
	}
	return false
}
