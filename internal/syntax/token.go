// Package syntax implements lexical and syntactic analysis for the Tali language.
package syntax

import "fmt"

// Token represents the type of a lexical token.
type Token uint

const (
	// Special tokens
	_EOF   Token = iota // end of input
	_Error              // lexical error

	// Literals
	_Ident  // identifier: x, count
	_Number // number literal: 42, 007

	// Assignment operators
	_Assign      // =
	_PlusAssign  // +=
	_MinusAssign // -=
	_StarAssign  // *=
	_SlashAssign // /=

	// Logical operators
	_OrOr   // ||
	_AndAnd // &&

	// Comparison operators
	_Eql // ==
	_Neq // !=
	_Lss // <
	_Leq // <=
	_Gtr // >
	_Geq // >=

	// Arithmetic operators
	_Add // +
	_Sub // -
	_Mul // *
	_Div // /
	_Rem // %
	_Pow // ^

	// Step operators
	_Inc // ++
	_Dec // --

	// Delimiters
	_Lparen // (
	_Rparen // )
	_Comma  // ,
	_Semi   // ;
	_Colon  // :

	// Keywords
	_Int
	_Bool
	_True
	_False
	_If
	_Elif
	_Else
	_While
	_For
	_Print
	_Begin
	_End

	tokenCount
)

// tokenNames maps tokens to their string representation.
var tokenNames = [...]string{
	_EOF:   "EOF",
	_Error: "ERROR",

	_Ident:  "IDENT",
	_Number: "NUMBER",

	_Assign:      "=",
	_PlusAssign:  "+=",
	_MinusAssign: "-=",
	_StarAssign:  "*=",
	_SlashAssign: "/=",

	_OrOr:   "||",
	_AndAnd: "&&",

	_Eql: "==",
	_Neq: "!=",
	_Lss: "<",
	_Leq: "<=",
	_Gtr: ">",
	_Geq: ">=",

	_Add: "+",
	_Sub: "-",
	_Mul: "*",
	_Div: "/",
	_Rem: "%",
	_Pow: "^",

	_Inc: "++",
	_Dec: "--",

	_Lparen: "(",
	_Rparen: ")",
	_Comma:  ",",
	_Semi:   ";",
	_Colon:  ":",

	_Int:   "int",
	_Bool:  "bool",
	_True:  "true",
	_False: "false",
	_If:    "if",
	_Elif:  "elif",
	_Else:  "else",
	_While: "while",
	_For:   "for",
	_Print: "print",
	_Begin: "begin",
	_End:   "end",
}

// String returns the string representation of the token.
func (t Token) String() string {
	if t < tokenCount {
		return tokenNames[t]
	}
	return fmt.Sprintf("token(%d)", t)
}

// IsKeyword reports whether t is a keyword token.
func (t Token) IsKeyword() bool {
	return t >= _Int && t <= _End
}

// IsAssignOp reports whether t is one of the assignment operators.
func (t Token) IsAssignOp() bool {
	return t >= _Assign && t <= _SlashAssign
}

// IsRelOp reports whether t is a relational comparison operator.
func (t Token) IsRelOp() bool {
	return t >= _Eql && t <= _Geq
}

// IsEOF reports whether t is the end-of-input sentinel.
func (t Token) IsEOF() bool {
	return t == _EOF
}

// keywords maps keyword strings to their token type.
var keywords = map[string]Token{
	"int":   _Int,
	"bool":  _Bool,
	"true":  _True,
	"false": _False,
	"if":    _If,
	"elif":  _Elif,
	"else":  _Else,
	"while": _While,
	"for":   _For,
	"print": _Print,
	"begin": _Begin,
	"end":   _End,
}

// LookupKeyword returns the token for the given identifier string.
// If the identifier is a keyword, returns the keyword token.
// Otherwise, returns _Ident.
func LookupKeyword(ident string) Token {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return _Ident
}
