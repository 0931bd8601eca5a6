package syntax

import "io"

// tokenInfo is one classified, positioned token.
type tokenInfo struct {
	tok Token
	lit string
	pos Pos
}

// TokenStream is a cursor over a finite, fully scanned token sequence.
// It is the token source the parser consumes: current token, advance,
// kind tests, and an Eof sentinel that doubles as the panic-mode
// recovery target. The cursor never moves backwards except through the
// mark/reset pair used for trial parses.
type TokenStream struct {
	toks []tokenInfo
	i    int
}

// ScanAll scans the entire source and returns a TokenStream over it.
// Lexical errors are delivered to errh; error tokens are not included
// in the stream.
func ScanAll(filename string, src io.Reader, errh func(line, col uint32, msg string)) *TokenStream {
	s := NewScanner(filename, src, errh)
	ts := &TokenStream{}
	for {
		s.Next()
		if s.Token() == _Error {
			continue
		}
		ts.toks = append(ts.toks, tokenInfo{tok: s.Token(), lit: s.Literal(), pos: s.Pos()})
		if s.Token() == _EOF {
			return ts
		}
	}
}

// NewTokenStream builds a stream from pre-classified tokens. The last
// entry must be the Eof sentinel; one is appended if missing.
func NewTokenStream(toks []tokenInfo) *TokenStream {
	if n := len(toks); n == 0 || toks[n-1].tok != _EOF {
		var pos Pos
		if n > 0 {
			pos = toks[n-1].pos
		}
		toks = append(toks, tokenInfo{tok: _EOF, pos: pos})
	}
	return &TokenStream{toks: toks}
}

// Current returns the kind of the current token.
func (t *TokenStream) Current() Token {
	return t.toks[t.i].tok
}

// Literal returns the text of the current token.
func (t *TokenStream) Literal() string {
	return t.toks[t.i].lit
}

// Pos returns the position of the current token.
func (t *TokenStream) Pos() Pos {
	return t.toks[t.i].pos
}

// Advance moves the cursor to the next token. Advancing past the Eof
// sentinel has no effect.
func (t *TokenStream) Advance() {
	if t.i < len(t.toks)-1 {
		t.i++
	}
}

// Is reports whether the current token is of kind k.
func (t *TokenStream) Is(k Token) bool {
	return t.Current() == k
}

// IsOneOf reports whether the current token is one of the given kinds.
func (t *TokenStream) IsOneOf(kinds ...Token) bool {
	cur := t.Current()
	for _, k := range kinds {
		if cur == k {
			return true
		}
	}
	return false
}

// mark returns a snapshot of the cursor position for a trial parse.
func (t *TokenStream) mark() int {
	return t.i
}

// reset restores the cursor to a snapshot taken with mark.
func (t *TokenStream) reset(m int) {
	t.i = m
}
