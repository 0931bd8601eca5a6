package syntax

import "fmt"

// Pos is a location in Tali source: file name plus 1-based line and
// column. The column counts bytes within the line, not runes. The zero
// Pos is invalid and prints as "0:0".
type Pos struct {
	filename  string
	line, col uint32
}

// NewPos returns the position filename:line:col.
func NewPos(filename string, line, col uint32) Pos {
	return Pos{filename, line, col}
}

func (p Pos) Filename() string { return p.filename }
func (p Pos) Line() uint32     { return p.line }
func (p Pos) Col() uint32      { return p.col }

// IsValid reports whether p denotes a real source location.
func (p Pos) IsValid() bool { return p.line > 0 }

// String formats p as "filename:line:col". The filename is omitted when
// it is empty, as for token streams built in memory.
func (p Pos) String() string {
	if p.filename == "" {
		return fmt.Sprintf("%d:%d", p.line, p.col)
	}
	return fmt.Sprintf("%s:%d:%d", p.filename, p.line, p.col)
}
