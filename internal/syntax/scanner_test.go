package syntax

import (
	"strings"
	"testing"
)

// scan tokenizes src and returns all tokens up to and including EOF.
func scan(t *testing.T, src string) ([]Token, []string) {
	t.Helper()
	s := NewScanner("test", strings.NewReader(src), func(line, col uint32, msg string) {
		t.Errorf("unexpected lexical error at %d:%d: %s", line, col, msg)
	})
	var toks []Token
	var lits []string
	for {
		s.Next()
		toks = append(toks, s.Token())
		lits = append(lits, s.Literal())
		if s.Token() == _EOF {
			return toks, lits
		}
	}
}

func TestScanTokens(t *testing.T) {
	tests := []struct {
		src  string
		want []Token
	}{
		{"", []Token{_EOF}},
		{"x", []Token{_Ident, _EOF}},
		{"42", []Token{_Number, _EOF}},
		{"007", []Token{_Number, _EOF}},
		{"int x = 5;", []Token{_Int, _Ident, _Assign, _Number, _Semi, _EOF}},
		{"x += 1;", []Token{_Ident, _PlusAssign, _Number, _Semi, _EOF}},
		{"x -= y *= /=", []Token{_Ident, _MinusAssign, _Ident, _StarAssign, _SlashAssign, _EOF}},
		{"a++ b--", []Token{_Ident, _Inc, _Ident, _Dec, _EOF}},
		{"+ - * / % ^", []Token{_Add, _Sub, _Mul, _Div, _Rem, _Pow, _EOF}},
		{"== != < <= > >=", []Token{_Eql, _Neq, _Lss, _Leq, _Gtr, _Geq, _EOF}},
		{"&& ||", []Token{_AndAnd, _OrOr, _EOF}},
		{"( ) , ; :", []Token{_Lparen, _Rparen, _Comma, _Semi, _Colon, _EOF}},
		{"if elif else while for print begin end",
			[]Token{_If, _Elif, _Else, _While, _For, _Print, _Begin, _End, _EOF}},
		{"true false bool", []Token{_True, _False, _Bool, _EOF}},
		{"iffy truex", []Token{_Ident, _Ident, _EOF}},
		{"x=y", []Token{_Ident, _Assign, _Ident, _EOF}},
		{"x==y", []Token{_Ident, _Eql, _Ident, _EOF}},
		{"a\n\tb\r\n c", []Token{_Ident, _Ident, _Ident, _EOF}},
		{"x // comment\ny", []Token{_Ident, _Ident, _EOF}},
		{"// only a comment", []Token{_EOF}},
		{"a//b\n//c\nd", []Token{_Ident, _Ident, _EOF}},
	}
	for _, tt := range tests {
		toks, _ := scan(t, tt.src)
		if len(toks) != len(tt.want) {
			t.Errorf("scan(%q) = %v, want %v", tt.src, toks, tt.want)
			continue
		}
		for i := range toks {
			if toks[i] != tt.want[i] {
				t.Errorf("scan(%q)[%d] = %s, want %s", tt.src, i, toks[i], tt.want[i])
			}
		}
	}
}

func TestScanLiterals(t *testing.T) {
	toks, lits := scan(t, "count = 042 + x_1;")
	want := []struct {
		tok Token
		lit string
	}{
		{_Ident, "count"},
		{_Assign, "="},
		{_Number, "042"},
		{_Add, "+"},
		{_Ident, "x_1"},
		{_Semi, ";"},
		{_EOF, ""},
	}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(want))
	}
	for i, w := range want {
		if toks[i] != w.tok || lits[i] != w.lit {
			t.Errorf("token %d = %s %q, want %s %q", i, toks[i], lits[i], w.tok, w.lit)
		}
	}
}

func TestScanPositions(t *testing.T) {
	src := "int x;\n  y = 1;"
	s := NewScanner("test", strings.NewReader(src), nil)
	want := []struct {
		tok       Token
		line, col uint32
	}{
		{_Int, 1, 1},
		{_Ident, 1, 5},
		{_Semi, 1, 6},
		{_Ident, 2, 3},
		{_Assign, 2, 5},
		{_Number, 2, 7},
		{_Semi, 2, 8},
		{_EOF, 2, 9},
	}
	for _, w := range want {
		s.Next()
		if s.Token() != w.tok {
			t.Fatalf("got token %s, want %s", s.Token(), w.tok)
		}
		pos := s.Pos()
		if pos.Line() != w.line || pos.Col() != w.col {
			t.Errorf("%s at %d:%d, want %d:%d", w.tok, pos.Line(), pos.Col(), w.line, w.col)
		}
	}
}

func TestScanErrors(t *testing.T) {
	tests := []struct {
		src      string
		wantToks []Token // error tokens included
		wantErrs int
	}{
		{"a & b", []Token{_Ident, _Error, _Ident, _EOF}, 1},
		{"a | b", []Token{_Ident, _Error, _Ident, _EOF}, 1},
		{"!x", []Token{_Error, _Ident, _EOF}, 1},
		{"a ? b", []Token{_Ident, _Ident, _EOF}, 1}, // unknown char skipped
		{"a != b", []Token{_Ident, _Neq, _Ident, _EOF}, 0},
	}
	for _, tt := range tests {
		errs := 0
		s := NewScanner("test", strings.NewReader(tt.src), func(line, col uint32, msg string) {
			errs++
		})
		var toks []Token
		for {
			s.Next()
			toks = append(toks, s.Token())
			if s.Token() == _EOF {
				break
			}
		}
		if len(toks) != len(tt.wantToks) {
			t.Errorf("scan(%q) = %v, want %v", tt.src, toks, tt.wantToks)
			continue
		}
		for i := range toks {
			if toks[i] != tt.wantToks[i] {
				t.Errorf("scan(%q)[%d] = %s, want %s", tt.src, i, toks[i], tt.wantToks[i])
			}
		}
		if errs != tt.wantErrs {
			t.Errorf("scan(%q) reported %d errors, want %d", tt.src, errs, tt.wantErrs)
		}
	}
}
