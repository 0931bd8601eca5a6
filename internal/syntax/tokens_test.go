package syntax

import (
	"strings"
	"testing"
)

func TestScanAll(t *testing.T) {
	ts := ScanAll("test", strings.NewReader("x = 1;"), nil)
	want := []Token{_Ident, _Assign, _Number, _Semi, _EOF}
	for _, w := range want {
		if ts.Current() != w {
			t.Fatalf("got %s, want %s", ts.Current(), w)
		}
		ts.Advance()
	}
	// Advancing past the sentinel stays put.
	ts.Advance()
	if !ts.Is(_EOF) {
		t.Errorf("after advancing past EOF, current = %s", ts.Current())
	}
}

func TestScanAllSkipsErrorTokens(t *testing.T) {
	errs := 0
	ts := ScanAll("test", strings.NewReader("a & b"), func(line, col uint32, msg string) {
		errs++
	})
	want := []Token{_Ident, _Ident, _EOF}
	for _, w := range want {
		if ts.Current() != w {
			t.Fatalf("got %s, want %s", ts.Current(), w)
		}
		ts.Advance()
	}
	if errs != 1 {
		t.Errorf("got %d lexical errors, want 1", errs)
	}
}

func TestNewTokenStreamSentinel(t *testing.T) {
	ts := NewTokenStream(nil)
	if !ts.Is(_EOF) {
		t.Errorf("empty stream current = %s, want EOF", ts.Current())
	}

	ts = NewTokenStream([]tokenInfo{{tok: _Ident, lit: "x"}})
	if !ts.Is(_Ident) {
		t.Fatalf("current = %s, want IDENT", ts.Current())
	}
	ts.Advance()
	if !ts.Is(_EOF) {
		t.Errorf("missing EOF sentinel, current = %s", ts.Current())
	}
}

func TestTokenStreamMarkReset(t *testing.T) {
	ts := ScanAll("test", strings.NewReader("x = y && z;"), nil)

	ts.Advance() // =
	m := ts.mark()
	if !ts.Is(_Assign) {
		t.Fatalf("current = %s, want =", ts.Current())
	}
	ts.Advance()
	ts.Advance()
	if !ts.Is(_AndAnd) {
		t.Fatalf("current = %s, want &&", ts.Current())
	}

	ts.reset(m)
	if !ts.Is(_Assign) || ts.Literal() != "=" {
		t.Errorf("after reset, current = %s %q, want = \"=\"", ts.Current(), ts.Literal())
	}
}

func TestTokenStreamIsOneOf(t *testing.T) {
	ts := ScanAll("test", strings.NewReader("+"), nil)
	if !ts.IsOneOf(_Mul, _Add, _Sub) {
		t.Error("IsOneOf(_Mul, _Add, _Sub) = false for +")
	}
	if ts.IsOneOf(_Mul, _Div) {
		t.Error("IsOneOf(_Mul, _Div) = true for +")
	}
}
