package syntax

import "fmt"

// ErrorHandler receives each diagnostic the scanner or parser emits.
type ErrorHandler func(pos Pos, msg string)

// UnexpectedTokenError reports that a rule required a specific token
// kind and saw another.
type UnexpectedTokenError struct {
	Pos      Pos
	Expected Token
	Actual   Token
}

func (e *UnexpectedTokenError) Error() string {
	return fmt.Sprintf("%s: expected %s, found %s", e.Pos, e.Expected, e.Actual)
}

// MalformedExpressionError reports that no alternative of an expression
// rule matched. Context names the rule that gave up.
type MalformedExpressionError struct {
	Pos     Pos
	Context string
}

func (e *MalformedExpressionError) Error() string {
	return fmt.Sprintf("%s: malformed %s", e.Pos, e.Context)
}

// InitializerCountMismatchError reports a declaration whose initializer
// list does not pair up with its declared names.
type InitializerCountMismatchError struct {
	Pos      Pos
	Declared int
	Inits    int
}

func (e *InitializerCountMismatchError) Error() string {
	return fmt.Sprintf("%s: %d initializers for %d declared names", e.Pos, e.Inits, e.Declared)
}

// UnterminatedBlockError reports a begin block whose terminator was
// never found before end of input.
type UnterminatedBlockError struct {
	Pos      Pos
	Expected Token
}

func (e *UnterminatedBlockError) Error() string {
	return fmt.Sprintf("%s: unterminated block, expected %s", e.Pos, e.Expected)
}
