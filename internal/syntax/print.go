package syntax

import (
	"fmt"
	"io"
	"strings"
)

// ----------------------------------------------------------------------------
// Tree dump

// Fprint writes an indented textual dump of the tree rooted at n to w.
// The dump shows structure and operators but no positions, so two parses
// of equivalent source produce identical dumps.
func Fprint(w io.Writer, n Node) error {
	if n == nil {
		return nil
	}
	d := &dumper{w: w}
	n.Accept(d)
	return d.err
}

// String returns the tree dump of n as a string.
func String(n Node) string {
	var sb strings.Builder
	Fprint(&sb, n)
	return sb.String()
}

// dumper writes one line per node, indented by depth. It drives the
// recursion itself; the first write error is kept and later writes are
// dropped.
type dumper struct {
	w      io.Writer
	indent int
	err    error
}

func (d *dumper) printf(format string, args ...interface{}) {
	if d.err != nil {
		return
	}
	_, d.err = fmt.Fprintf(d.w, "%*s"+format+"\n", append([]interface{}{d.indent * 2, ""}, args...)...)
}

// dump prints a child node one level deeper.
func (d *dumper) dump(n Node) {
	d.indent++
	n.Accept(d)
	d.indent--
}

func (d *dumper) VisitProgram(n *Program) {
	d.printf("Program")
	for _, s := range n.Stmts {
		d.dump(s)
	}
}

func (d *dumper) VisitDeclaration(n *Declaration) {
	d.printf("Declaration %s %s", n.Kind, strings.Join(n.Names, ", "))
	for _, init := range n.Inits {
		d.dump(init)
	}
}

func (d *dumper) VisitFinal(n *Final) {
	d.printf("Final %s %q", n.Kind, n.Value)
}

func (d *dumper) VisitSignedNumber(n *SignedNumber) {
	d.printf("SignedNumber %s%s", n.Sign, n.Value)
}

func (d *dumper) VisitNegExpr(n *NegExpr) {
	d.printf("NegExpr")
	d.dump(n.X)
}

func (d *dumper) VisitUnaryOp(n *UnaryOp) {
	d.printf("UnaryOp %s%s", n.Ident, n.Op)
}

func (d *dumper) VisitBinaryOp(n *BinaryOp) {
	d.printf("BinaryOp %s", n.Op)
	d.dump(n.X)
	d.dump(n.Y)
}

func (d *dumper) VisitAssignment(n *Assignment) {
	d.printf("Assignment %s %s", n.Left.Value, n.Op)
	if n.Right != nil {
		d.dump(n.Right)
	}
	if n.RightLogic != nil {
		d.dump(n.RightLogic)
	}
}

func (d *dumper) VisitComparison(n *Comparison) {
	if n.Op.IsValueForm() {
		d.printf("Comparison %s %q", n.Op, n.Value)
		return
	}
	d.printf("Comparison %s", n.Op)
	d.dump(n.Left)
	d.dump(n.Right)
}

func (d *dumper) VisitLogicalExpr(n *LogicalExpr) {
	d.printf("LogicalExpr %s", n.Op)
	d.dump(n.Left)
	d.dump(n.Right)
}

func (d *dumper) VisitElifClause(n *ElifClause) {
	d.printf("Elif")
	d.dump(n.Cond)
	for _, a := range n.Body {
		d.dump(a)
	}
}

func (d *dumper) VisitIfStmt(n *IfStmt) {
	d.printf("If")
	d.dump(n.Cond)
	d.indent++
	d.printf("Then")
	for _, a := range n.Then {
		d.dump(a)
	}
	d.indent--
	for _, e := range n.Elifs {
		d.dump(e)
	}
	if n.Else != nil {
		d.indent++
		d.printf("Else")
		for _, a := range n.Else {
			d.dump(a)
		}
		d.indent--
	}
}

func (d *dumper) VisitWhileStmt(n *WhileStmt) {
	d.printf("While")
	d.dump(n.Cond)
	for _, a := range n.Body {
		d.dump(a)
	}
}

func (d *dumper) VisitForStmt(n *ForStmt) {
	d.printf("For")
	d.dump(n.Init)
	d.dump(n.Cond)
	d.dump(n.Step)
	for _, a := range n.Body {
		d.dump(a)
	}
}

func (d *dumper) VisitPrintStmt(n *PrintStmt) {
	d.printf("Print")
	for _, e := range n.Args {
		d.dump(e)
	}
}

// ----------------------------------------------------------------------------
// Source regeneration

// FprintSource writes n back out as Tali source. Binary operations are
// fully parenthesized, so the output reparses to a structurally
// identical tree regardless of the original spelling.
func FprintSource(w io.Writer, n Node) error {
	if n == nil {
		return nil
	}
	p := &sourcePrinter{w: w}
	p.node(n)
	return p.err
}

// SourceString returns the regenerated source of n as a string.
func SourceString(n Node) string {
	var sb strings.Builder
	FprintSource(&sb, n)
	return sb.String()
}

type sourcePrinter struct {
	w      io.Writer
	indent int
	err    error
}

func (p *sourcePrinter) print(args ...interface{}) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprint(p.w, args...)
}

func (p *sourcePrinter) line(s string) {
	p.print(strings.Repeat("    ", p.indent), s, "\n")
}

func (p *sourcePrinter) node(n Node) {
	switch n := n.(type) {
	case *Program:
		for _, s := range n.Stmts {
			p.stmt(s)
		}
	default:
		if s, ok := n.(Stmt); ok {
			p.stmt(s)
			return
		}
		p.line(valueString(n))
	}
}

func (p *sourcePrinter) stmt(s Stmt) {
	switch s := s.(type) {
	case *Declaration:
		var sb strings.Builder
		sb.WriteString(s.Kind.String())
		sb.WriteString(" ")
		sb.WriteString(strings.Join(s.Names, ", "))
		if len(s.Inits) > 0 {
			sb.WriteString(" = ")
			for i, init := range s.Inits {
				if i > 0 {
					sb.WriteString(", ")
				}
				sb.WriteString(valueString(init))
			}
		}
		sb.WriteString(";")
		p.line(sb.String())

	case *Assignment:
		p.line(assignString(s) + ";")

	case *UnaryOp:
		p.line(s.Ident + s.Op.String() + ";")

	case *IfStmt:
		p.line("if " + logicString(s.Cond) + ": begin")
		p.body(s.Then)
		p.line("end")
		for _, e := range s.Elifs {
			p.line("elif " + logicString(e.Cond) + ": begin")
			p.body(e.Body)
			p.line("end")
		}
		if s.Else != nil {
			p.line("else: begin")
			p.body(s.Else)
			p.line("end")
		}

	case *WhileStmt:
		p.line("while " + logicString(s.Cond) + ": begin")
		p.body(s.Body)
		p.line("end")

	case *ForStmt:
		var step string
		switch st := s.Step.(type) {
		case *UnaryOp:
			step = st.Ident + st.Op.String()
		case *Assignment:
			step = assignString(st)
		}
		p.line("for " + assignString(s.Init) + "; " + logicString(s.Cond) + "; " + step + ": begin")
		p.body(s.Body)
		p.line("end")

	case *PrintStmt:
		args := make([]string, len(s.Args))
		for i, e := range s.Args {
			args[i] = exprString(e)
		}
		p.line("print " + strings.Join(args, ", ") + ";")
	}
}

func (p *sourcePrinter) body(stmts []*Assignment) {
	p.indent++
	for _, a := range stmts {
		p.line(assignString(a) + ";")
	}
	p.indent--
}

func assignString(a *Assignment) string {
	rhs := ""
	if a.Right != nil {
		rhs = exprString(a.Right)
	} else {
		rhs = logicString(a.RightLogic)
	}
	return a.Left.Value + " " + a.Op.String() + " " + rhs
}

// valueString renders an initializer, which is either an arithmetic or
// a logic expression.
func valueString(n Node) string {
	if e, ok := n.(Expr); ok {
		return exprString(e)
	}
	if l, ok := n.(Logic); ok {
		return logicString(l)
	}
	return ""
}

func exprString(e Expr) string {
	switch e := e.(type) {
	case *Final:
		return e.Value
	case *SignedNumber:
		return e.Sign.String() + e.Value
	case *NegExpr:
		return "-(" + exprString(e.X) + ")"
	case *UnaryOp:
		return e.Ident + e.Op.String()
	case *BinaryOp:
		return "(" + exprString(e.X) + " " + e.Op.String() + " " + exprString(e.Y) + ")"
	}
	return ""
}

func logicString(l Logic) string {
	switch l := l.(type) {
	case *Comparison:
		if l.Op.IsValueForm() {
			return l.Value
		}
		return exprString(l.Left) + " " + l.Op.String() + " " + exprString(l.Right)
	case *LogicalExpr:
		return "(" + logicString(l.Left) + " " + l.Op.String() + " " + logicString(l.Right) + ")"
	}
	return ""
}
