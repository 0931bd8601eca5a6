package syntax

import (
	"fmt"
	"io"
)

// Parser performs syntax analysis on Tali source code.
//
// Parsing is one left-to-right pass over a finite token stream. Every
// rule returns nil when it fails, after reporting its diagnostic once;
// callers forward nil upward without reporting again, and the top-level
// statement loop treats it as fatal: remaining tokens are discarded and
// Parse returns nil (panic-mode recovery to the Eof sentinel).
type Parser struct {
	toks *TokenStream
	errh ErrorHandler

	// Error handling
	first  error // first error encountered
	errcnt int
	quiet  int // >0 during a trial parse: diagnostics suppressed
}

// NewParser creates a Parser that scans the given source itself.
func NewParser(filename string, src io.Reader, errh ErrorHandler) *Parser {
	scanErrh := func(line, col uint32, msg string) {
		if errh != nil {
			errh(NewPos(filename, line, col), msg)
		}
	}
	return NewTokenParser(ScanAll(filename, src, scanErrh), errh)
}

// NewTokenParser creates a Parser over an already scanned token stream.
func NewTokenParser(toks *TokenStream, errh ErrorHandler) *Parser {
	return &Parser{toks: toks, errh: errh}
}

// ----------------------------------------------------------------------------
// Token navigation

func (p *Parser) tok() Token  { return p.toks.Current() }
func (p *Parser) lit() string { return p.toks.Literal() }
func (p *Parser) pos() Pos    { return p.toks.Pos() }

func (p *Parser) advance() { p.toks.Advance() }

// expect reports whether the current token is of kind k, emitting an
// UnexpectedToken diagnostic if it is not. It never advances; matching
// the source cursor against the grammar and moving it are kept separate.
func (p *Parser) expect(k Token) bool {
	if p.toks.Is(k) {
		return true
	}
	p.unexpected(k)
	return false
}

// ----------------------------------------------------------------------------
// Error handling

// report records a diagnostic unless a trial parse is in progress.
func (p *Parser) report(pos Pos, msg string, err error) {
	if p.quiet > 0 {
		return
	}
	if p.first == nil {
		p.first = err
	}
	p.errcnt++
	if p.errh != nil {
		p.errh(pos, msg)
	}
}

func (p *Parser) unexpected(expected Token) {
	pos, actual := p.pos(), p.tok()
	p.report(pos, fmt.Sprintf("expected %s, found %s", expected, actual),
		&UnexpectedTokenError{Pos: pos, Expected: expected, Actual: actual})
}

func (p *Parser) malformed(context string) {
	pos := p.pos()
	p.report(pos, "malformed "+context,
		&MalformedExpressionError{Pos: pos, Context: context})
}

func (p *Parser) unterminated(pos Pos, expected Token) {
	p.report(pos, fmt.Sprintf("unterminated block, expected %s", expected),
		&UnterminatedBlockError{Pos: pos, Expected: expected})
}

// Errors returns the number of diagnostics emitted during parsing.
func (p *Parser) Errors() int {
	return p.errcnt
}

// FirstError returns the first error encountered, or nil if none.
func (p *Parser) FirstError() error {
	return p.first
}

// abort discards all remaining tokens up to the Eof sentinel.
func (p *Parser) abort() {
	for !p.toks.Is(_EOF) {
		p.advance()
	}
}

// ----------------------------------------------------------------------------
// Parsing entry point

// Parse parses a complete program and returns the root node, or nil if
// a syntax error was encountered. On failure at least one diagnostic has
// been delivered to the error handler and all input has been consumed.
func (p *Parser) Parse() *Program {
	prog := &Program{}
	prog.pos = p.pos()

	for !p.toks.Is(_EOF) {
		s, consumedTerm := p.parseStatement()
		if s == nil {
			p.abort()
			return nil
		}
		prog.Stmts = append(prog.Stmts, s)

		// Every statement leaves the cursor on its terminator for the
		// loop to step over, except an if statement without an else,
		// which consumes its own trailing end.
		if !consumedTerm {
			p.advance()
		}
	}
	return prog
}

// ----------------------------------------------------------------------------
// Statements

// parseStatement dispatches on the current token. The second result
// reports whether the statement already consumed its own terminator.
func (p *Parser) parseStatement() (Stmt, bool) {
	switch p.tok() {
	case _Int:
		d := p.parseDeclaration(IntDecl)
		if d == nil {
			return nil, false
		}
		return d, false

	case _Bool:
		d := p.parseDeclaration(BoolDecl)
		if d == nil {
			return nil, false
		}
		return d, false

	case _Ident:
		s := p.parseIdentStatement()
		if s == nil {
			return nil, false
		}
		return s, false

	case _If:
		return p.parseIf()

	case _While:
		w := p.parseWhile()
		if w == nil {
			return nil, false
		}
		return w, false

	case _For:
		f := p.parseFor()
		if f == nil {
			return nil, false
		}
		return f, false

	case _Print:
		s := p.parsePrint()
		if s == nil {
			return nil, false
		}
		return s, false

	default:
		p.malformed("statement")
		return nil, false
	}
}

// parseIdentStatement parses a statement beginning with an identifier:
// either a standalone step statement (x++;) or an assignment. The step
// form is a trial parse; if it fails, or is not immediately followed by
// the statement terminator, the cursor backtracks to an assignment.
func (p *Parser) parseIdentStatement() Stmt {
	mark := p.toks.mark()
	if u := p.parseStepTrial(); u != nil && p.toks.Is(_Semi) {
		return u
	}
	p.toks.reset(mark)

	a := p.parseAssign()
	if a == nil {
		return nil
	}
	if !p.expect(_Semi) {
		return nil
	}
	return a
}

// parseStepTrial attempts ident ('++'|'--'). It emits no diagnostics;
// the caller restores the cursor when it returns nil.
func (p *Parser) parseStepTrial() *UnaryOp {
	if !p.toks.Is(_Ident) {
		return nil
	}
	pos, name := p.pos(), p.lit()
	p.advance()

	var op StepOp
	switch p.tok() {
	case _Inc:
		op = Increment
	case _Dec:
		op = Decrement
	default:
		return nil
	}
	p.advance()

	u := &UnaryOp{Op: op, Ident: name}
	u.pos = pos
	return u
}

// parseDeclaration parses
//
//	('int'|'bool') name {',' name} ['=' init {',' init}] ';'
//
// leaving the cursor on the semicolon. Initializers are arithmetic
// expressions for int and logic expressions for bool; when present,
// their count must equal the declared-name count.
func (p *Parser) parseDeclaration(kind DeclKind) *Declaration {
	declPos := p.pos()
	p.advance() // int or bool keyword

	if !p.expect(_Ident) {
		return nil
	}
	names := []string{p.lit()}
	p.advance()

	for p.toks.Is(_Comma) {
		p.advance()
		if !p.expect(_Ident) {
			return nil
		}
		names = append(names, p.lit())
		p.advance()
	}

	var inits []Node
	if p.toks.Is(_Assign) {
		p.advance()
		for {
			var init Node
			if kind == IntDecl {
				e := p.parseExpr()
				if e == nil {
					return nil
				}
				init = e
			} else {
				l := p.parseLogic()
				if l == nil {
					return nil
				}
				init = l
			}
			inits = append(inits, init)
			if !p.toks.Is(_Comma) {
				break
			}
			p.advance()
		}
		if len(inits) != len(names) {
			p.report(declPos,
				fmt.Sprintf("%d initializers for %d declared names", len(inits), len(names)),
				&InitializerCountMismatchError{Pos: declPos, Declared: len(names), Inits: len(inits)})
			return nil
		}
	}

	if !p.expect(_Semi) {
		return nil
	}

	d := &Declaration{Kind: kind, Names: names, Inits: inits}
	d.pos = declPos
	return d
}

// parseAssign parses target op rhs, leaving the cursor on the token
// after the right-hand side. For plain '=' the right-hand side is
// disambiguated by trial: a logic parse is attempted first and kept only
// if it also reaches the terminator; otherwise the cursor is restored
// and an arithmetic expression is parsed. Compound operators always take
// an arithmetic right-hand side.
func (p *Parser) parseAssign() *Assignment {
	f := p.parseFinal()
	if f == nil {
		return nil
	}
	target, ok := f.(*Final)
	if !ok || target.Kind != Ident {
		p.malformed("assignment target")
		return nil
	}

	a := &Assignment{Left: target}
	a.pos = target.Pos()

	switch p.tok() {
	case _Assign:
		a.Op = Assign
		p.advance()

		mark := p.toks.mark()
		p.quiet++
		l := p.parseLogic()
		p.quiet--
		if l != nil && p.toks.IsOneOf(_Semi, _Colon) {
			a.RightLogic = l
			return a
		}
		p.toks.reset(mark)

		e := p.parseExpr()
		if e == nil {
			return nil
		}
		a.Right = e
		return a

	case _PlusAssign:
		a.Op = PlusAssign
	case _MinusAssign:
		a.Op = MinusAssign
	case _StarAssign:
		a.Op = StarAssign
	case _SlashAssign:
		a.Op = SlashAssign
	default:
		p.unexpected(_Assign)
		return nil
	}
	p.advance()

	e := p.parseExpr()
	if e == nil {
		return nil
	}
	a.Right = e
	return a
}

// ----------------------------------------------------------------------------
// Arithmetic expressions
//
// Expr   := Term {('+'|'-') Term}
// Term   := Factor {('*'|'/'|'%') Factor}
// Factor := Final {'^' Factor}          (right-recursive: ^ is right-associative)

func (p *Parser) parseExpr() Expr {
	x := p.parseTerm()
	if x == nil {
		return nil
	}
	for p.toks.IsOneOf(_Add, _Sub) {
		op := Add
		if p.toks.Is(_Sub) {
			op = Sub
		}
		p.advance()
		y := p.parseTerm()
		if y == nil {
			return nil
		}
		b := &BinaryOp{Op: op, X: x, Y: y}
		b.pos = x.Pos()
		x = b
	}
	return x
}

func (p *Parser) parseTerm() Expr {
	x := p.parseFactor()
	if x == nil {
		return nil
	}
	for p.toks.IsOneOf(_Mul, _Div, _Rem) {
		var op ArithOp
		switch p.tok() {
		case _Mul:
			op = Mul
		case _Div:
			op = Div
		case _Rem:
			op = Mod
		}
		p.advance()
		y := p.parseFactor()
		if y == nil {
			return nil
		}
		b := &BinaryOp{Op: op, X: x, Y: y}
		b.pos = x.Pos()
		x = b
	}
	return x
}

func (p *Parser) parseFactor() Expr {
	x := p.parseFinal()
	if x == nil {
		return nil
	}
	for p.toks.Is(_Pow) {
		p.advance()
		y := p.parseFactor()
		if y == nil {
			return nil
		}
		b := &BinaryOp{Op: Pow, X: x, Y: y}
		b.pos = x.Pos()
		x = b
	}
	return x
}

// parseFinal parses the atom of arithmetic expressions: a number, an
// identifier (folding a trailing ++/-- into a UnaryOp), a signed number,
// a negated parenthesized expression, or a parenthesized expression.
func (p *Parser) parseFinal() Expr {
	pos := p.pos()

	switch p.tok() {
	case _Number:
		f := &Final{Kind: Number, Value: p.lit()}
		f.pos = pos
		p.advance()
		return f

	case _Ident:
		name := p.lit()
		p.advance()
		switch p.tok() {
		case _Inc:
			p.advance()
			u := &UnaryOp{Op: Increment, Ident: name}
			u.pos = pos
			return u
		case _Dec:
			p.advance()
			u := &UnaryOp{Op: Decrement, Ident: name}
			u.pos = pos
			return u
		}
		f := &Final{Kind: Ident, Value: name}
		f.pos = pos
		return f

	case _Add:
		p.advance()
		if p.toks.Is(_Number) {
			sn := &SignedNumber{Sign: Plus, Value: p.lit()}
			sn.pos = pos
			p.advance()
			return sn
		}
		if p.toks.Is(_Lparen) {
			// Unary plus over a parenthesized expression is an identity.
			p.advance()
			x := p.parseExpr()
			if x == nil {
				return nil
			}
			if !p.expect(_Rparen) {
				return nil
			}
			p.advance()
			return x
		}
		p.malformed("expression")
		return nil

	case _Sub:
		p.advance()
		if p.toks.Is(_Number) {
			sn := &SignedNumber{Sign: Minus, Value: p.lit()}
			sn.pos = pos
			p.advance()
			return sn
		}
		if p.toks.Is(_Lparen) {
			p.advance()
			x := p.parseExpr()
			if x == nil {
				return nil
			}
			if !p.expect(_Rparen) {
				return nil
			}
			p.advance()
			n := &NegExpr{X: x}
			n.pos = pos
			return n
		}
		p.malformed("expression")
		return nil

	case _Lparen:
		p.advance()
		x := p.parseExpr()
		if x == nil {
			return nil
		}
		if !p.expect(_Rparen) {
			return nil
		}
		p.advance()
		return x

	default:
		p.malformed("expression")
		return nil
	}
}

// ----------------------------------------------------------------------------
// Boolean expressions
//
// Logic      := Comparison {('&&'|'||') Comparison}   (flat precedence)
// Comparison := '(' Logic ')'
//             | 'true' | 'false' | ident              (bare boolean value)
//             | Expr relop Expr

func (p *Parser) parseLogic() Logic {
	x := p.parseComparison()
	if x == nil {
		return nil
	}
	for p.toks.IsOneOf(_AndAnd, _OrOr) {
		op := And
		if p.toks.Is(_OrOr) {
			op = Or
		}
		p.advance()
		y := p.parseComparison()
		if y == nil {
			return nil
		}
		l := &LogicalExpr{Op: op, Left: x, Right: y}
		l.pos = x.Pos()
		x = l
	}
	return x
}

func (p *Parser) parseComparison() Logic {
	pos := p.pos()

	switch p.tok() {
	case _Lparen:
		p.advance()
		l := p.parseLogic()
		if l == nil {
			return nil
		}
		if !p.expect(_Rparen) {
			return nil
		}
		p.advance()
		return l

	case _True:
		c := &Comparison{Op: LitTrue, Value: p.lit()}
		c.pos = pos
		p.advance()
		return c

	case _False:
		c := &Comparison{Op: LitFalse, Value: p.lit()}
		c.pos = pos
		p.advance()
		return c

	case _Ident:
		// A bare identifier is a boolean value only when it is not the
		// start of an arithmetic comparison operand (bounded lookahead).
		mark := p.toks.mark()
		name := p.lit()
		p.advance()
		if !p.tok().IsRelOp() && !p.toks.IsOneOf(_Add, _Sub, _Mul, _Div, _Rem, _Pow, _Inc, _Dec) {
			c := &Comparison{Op: IdentRef, Value: name}
			c.pos = pos
			return c
		}
		p.toks.reset(mark)
	}

	left := p.parseExpr()
	if left == nil {
		return nil
	}

	var op CmpOp
	switch p.tok() {
	case _Eql:
		op = Eq
	case _Neq:
		op = Neq
	case _Gtr:
		op = Gt
	case _Lss:
		op = Lt
	case _Geq:
		op = Gte
	case _Leq:
		op = Lte
	default:
		p.malformed("comparison")
		return nil
	}
	p.advance()

	right := p.parseExpr()
	if right == nil {
		return nil
	}

	c := &Comparison{Op: op, Left: left, Right: right}
	c.pos = left.Pos()
	return c
}

// ----------------------------------------------------------------------------
// Control flow

// parseAssignBlock parses {Assignment ';'} up to the closing end,
// leaving the cursor on the end token. The block may be empty.
func (p *Parser) parseAssignBlock(blockPos Pos) ([]*Assignment, bool) {
	var body []*Assignment
	for !p.toks.Is(_End) {
		if p.toks.Is(_EOF) {
			p.unterminated(blockPos, _End)
			return nil, false
		}
		a := p.parseAssign()
		if a == nil {
			return nil, false
		}
		body = append(body, a)
		if !p.expect(_Semi) {
			return nil, false
		}
		p.advance()
	}
	return body, true
}

// blockHeader consumes ':' 'begin' and returns the position of begin.
func (p *Parser) blockHeader() (Pos, bool) {
	if !p.expect(_Colon) {
		return Pos{}, false
	}
	p.advance()
	blockPos := p.pos()
	if !p.expect(_Begin) {
		return Pos{}, false
	}
	p.advance()
	return blockPos, true
}

// parseIf parses
//
//	'if' Logic ':' 'begin' {Assignment ';'} 'end'
//	{'elif' Logic ':' 'begin' {Assignment ';'} 'end'}
//	['else' ':' 'begin' {Assignment ';'} 'end']
//
// The second result reports whether the statement consumed its own
// trailing end: without an else clause, the elif scan has already
// stepped past the final end; with one, the cursor is left on the end
// of the else block for the statement loop to consume.
func (p *Parser) parseIf() (Stmt, bool) {
	ifPos := p.pos()
	p.advance() // if

	cond := p.parseLogic()
	if cond == nil {
		return nil, false
	}

	blockPos, ok := p.blockHeader()
	if !ok {
		return nil, false
	}
	then, ok := p.parseAssignBlock(blockPos)
	if !ok {
		return nil, false
	}
	p.advance() // end

	s := &IfStmt{Cond: cond, Then: then}
	s.pos = ifPos

	for p.toks.Is(_Elif) {
		elifPos := p.pos()
		p.advance()

		elifCond := p.parseLogic()
		if elifCond == nil {
			return nil, false
		}
		blockPos, ok := p.blockHeader()
		if !ok {
			return nil, false
		}
		body, ok := p.parseAssignBlock(blockPos)
		if !ok {
			return nil, false
		}
		p.advance() // end

		e := &ElifClause{Cond: elifCond, Body: body}
		e.pos = elifPos
		s.Elifs = append(s.Elifs, e)
	}

	if !p.toks.Is(_Else) {
		return s, true
	}
	p.advance() // else

	blockPos, ok = p.blockHeader()
	if !ok {
		return nil, false
	}
	s.Else, ok = p.parseAssignBlock(blockPos)
	if !ok {
		return nil, false
	}
	if s.Else == nil {
		// An empty else body is still an else clause.
		s.Else = []*Assignment{}
	}
	// Cursor stays on the else block's end; the statement loop advances.
	return s, false
}

// parseWhile parses 'while' Logic ':' 'begin' {Assignment ';'} 'end',
// leaving the cursor on the end token.
func (p *Parser) parseWhile() *WhileStmt {
	whilePos := p.pos()
	p.advance() // while

	cond := p.parseLogic()
	if cond == nil {
		return nil
	}

	blockPos, ok := p.blockHeader()
	if !ok {
		return nil
	}
	body, ok := p.parseAssignBlock(blockPos)
	if !ok {
		return nil
	}

	s := &WhileStmt{Cond: cond, Body: body}
	s.pos = whilePos
	return s
}

// parseFor parses
//
//	'for' Assignment ';' Logic ';' (step | Assignment) ':' 'begin' {Assignment ';'} 'end'
//
// where step is ident ('++'|'--'). The cursor is left on the end token.
func (p *Parser) parseFor() *ForStmt {
	forPos := p.pos()
	p.advance() // for

	init := p.parseAssign()
	if init == nil {
		return nil
	}
	if !p.expect(_Semi) {
		return nil
	}
	p.advance()

	cond := p.parseLogic()
	if cond == nil {
		return nil
	}
	if !p.expect(_Semi) {
		return nil
	}
	p.advance()

	var step Stmt
	mark := p.toks.mark()
	if u := p.parseStepTrial(); u != nil {
		step = u
	} else {
		p.toks.reset(mark)
		a := p.parseAssign()
		if a == nil {
			return nil
		}
		step = a
	}

	blockPos, ok := p.blockHeader()
	if !ok {
		return nil
	}
	body, ok := p.parseAssignBlock(blockPos)
	if !ok {
		return nil
	}

	s := &ForStmt{Init: init, Cond: cond, Step: step, Body: body}
	s.pos = forPos
	return s
}

// parsePrint parses 'print' Expr {',' Expr} ';', leaving the cursor on
// the semicolon. The expression list is never empty.
func (p *Parser) parsePrint() *PrintStmt {
	printPos := p.pos()
	p.advance() // print

	e := p.parseExpr()
	if e == nil {
		return nil
	}
	args := []Expr{e}

	for p.toks.Is(_Comma) {
		p.advance()
		e := p.parseExpr()
		if e == nil {
			return nil
		}
		args = append(args, e)
	}

	if !p.expect(_Semi) {
		return nil
	}

	s := &PrintStmt{Args: args}
	s.pos = printPos
	return s
}
