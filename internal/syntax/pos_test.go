package syntax

import "testing"

func TestPosString(t *testing.T) {
	tests := []struct {
		pos  Pos
		want string
	}{
		{NewPos("main.tali", 3, 14), "main.tali:3:14"},
		{NewPos("", 3, 14), "3:14"},
		{Pos{}, "0:0"},
	}
	for _, tt := range tests {
		if got := tt.pos.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestPosAccessors(t *testing.T) {
	p := NewPos("main.tali", 3, 14)
	if p.Filename() != "main.tali" || p.Line() != 3 || p.Col() != 14 {
		t.Errorf("got %s:%d:%d, want main.tali:3:14", p.Filename(), p.Line(), p.Col())
	}
	if !p.IsValid() {
		t.Error("IsValid() = false for a real position")
	}
	if (Pos{}).IsValid() {
		t.Error("IsValid() = true for the zero position")
	}
}
