package syntax

import (
	"fmt"
	"io"
	"strings"
)

// Scanner performs lexical analysis on Tali source code.
type Scanner struct {
	source // embedded character reader

	// Current token info
	tok    Token  // token type
	lit    string // token literal (identifier name, number spelling)
	tokPos Pos    // token start position

	// Literal accumulation
	litBuf strings.Builder
}

// NewScanner creates a new Scanner for the given source.
// The errh function is called for each lexical error; if nil, errors are silently ignored.
func NewScanner(filename string, src io.Reader, errh func(line, col uint32, msg string)) *Scanner {
	return &Scanner{source: *newSource(filename, src, errh)}
}

// Next advances to the next token.
func (s *Scanner) Next() {
redo:
	s.skipWhitespace()

	s.tokPos = s.pos()

	switch {
	case s.ch < 0:
		s.tok = _EOF
		s.lit = ""

	case isLetter(s.ch):
		s.scanIdent()

	case isDigit(s.ch):
		s.scanNumber()

	case isOperatorStart(s.ch):
		if s.scanOperator() {
			// scanOperator returned true, meaning we skipped a comment
			goto redo
		}

	default:
		s.error(fmt.Sprintf("unexpected character %q", s.ch))
		s.nextch()
		goto redo
	}
}

// Token returns the current token type.
func (s *Scanner) Token() Token {
	return s.tok
}

// Literal returns the current token's literal value.
func (s *Scanner) Literal() string {
	return s.lit
}

// Pos returns the current token's start position.
func (s *Scanner) Pos() Pos {
	return s.tokPos
}

// skipWhitespace skips space, tab, carriage return, and newline.
func (s *Scanner) skipWhitespace() {
	for isWhitespace(s.ch) {
		s.nextch()
	}
}

// startLit begins accumulating a literal.
func (s *Scanner) startLit() {
	s.litBuf.Reset()
	s.litBuf.WriteRune(s.ch)
}

// continueLit adds the current character to the literal being accumulated.
func (s *Scanner) continueLit() {
	s.litBuf.WriteRune(s.ch)
}

// stopLit ends literal accumulation and returns the accumulated string.
func (s *Scanner) stopLit() string {
	return s.litBuf.String()
}

// scanIdent scans an identifier or keyword.
func (s *Scanner) scanIdent() {
	s.startLit()
	s.nextch()

	for isLetter(s.ch) || isDigit(s.ch) {
		s.continueLit()
		s.nextch()
	}

	s.lit = s.stopLit()
	s.tok = LookupKeyword(s.lit)
}

// scanNumber scans a decimal number literal. Leading zeros are allowed;
// the parser keeps the original spelling.
func (s *Scanner) scanNumber() {
	s.startLit()
	s.nextch()

	for isDigit(s.ch) {
		s.continueLit()
		s.nextch()
	}

	s.lit = s.stopLit()
	s.tok = _Number
}

// scanOperator scans an operator or delimiter.
// Returns true if a comment was skipped (caller should rescan).
func (s *Scanner) scanOperator() bool {
	ch := s.ch
	s.nextch()

	switch ch {
	case '+':
		switch s.ch {
		case '+':
			s.nextch()
			s.tok = _Inc
			s.lit = "++"
		case '=':
			s.nextch()
			s.tok = _PlusAssign
			s.lit = "+="
		default:
			s.tok = _Add
			s.lit = "+"
		}
	case '-':
		switch s.ch {
		case '-':
			s.nextch()
			s.tok = _Dec
			s.lit = "--"
		case '=':
			s.nextch()
			s.tok = _MinusAssign
			s.lit = "-="
		default:
			s.tok = _Sub
			s.lit = "-"
		}
	case '*':
		if s.ch == '=' {
			s.nextch()
			s.tok = _StarAssign
			s.lit = "*="
		} else {
			s.tok = _Mul
			s.lit = "*"
		}
	case '/':
		switch s.ch {
		case '/':
			s.skipLineComment()
			return true
		case '=':
			s.nextch()
			s.tok = _SlashAssign
			s.lit = "/="
		default:
			s.tok = _Div
			s.lit = "/"
		}
	case '%':
		s.tok = _Rem
		s.lit = "%"
	case '^':
		s.tok = _Pow
		s.lit = "^"
	case '&':
		if s.ch == '&' {
			s.nextch()
			s.tok = _AndAnd
			s.lit = "&&"
		} else {
			s.error("unexpected character '&'")
			s.tok = _Error
			s.lit = "&"
		}
	case '|':
		if s.ch == '|' {
			s.nextch()
			s.tok = _OrOr
			s.lit = "||"
		} else {
			s.error("unexpected character '|'")
			s.tok = _Error
			s.lit = "|"
		}
	case '<':
		if s.ch == '=' {
			s.nextch()
			s.tok = _Leq
			s.lit = "<="
		} else {
			s.tok = _Lss
			s.lit = "<"
		}
	case '>':
		if s.ch == '=' {
			s.nextch()
			s.tok = _Geq
			s.lit = ">="
		} else {
			s.tok = _Gtr
			s.lit = ">"
		}
	case '=':
		if s.ch == '=' {
			s.nextch()
			s.tok = _Eql
			s.lit = "=="
		} else {
			s.tok = _Assign
			s.lit = "="
		}
	case '!':
		if s.ch == '=' {
			s.nextch()
			s.tok = _Neq
			s.lit = "!="
		} else {
			s.error("unexpected character '!'")
			s.tok = _Error
			s.lit = "!"
		}
	case ':':
		s.tok = _Colon
		s.lit = ":"
	case '(':
		s.tok = _Lparen
		s.lit = "("
	case ')':
		s.tok = _Rparen
		s.lit = ")"
	case ',':
		s.tok = _Comma
		s.lit = ","
	case ';':
		s.tok = _Semi
		s.lit = ";"
	}

	return false
}

// skipLineComment skips a line comment (from // to end of line).
func (s *Scanner) skipLineComment() {
	// Already consumed the second /
	s.nextch()
	for s.ch != '\n' && s.ch >= 0 {
		s.nextch()
	}
}
