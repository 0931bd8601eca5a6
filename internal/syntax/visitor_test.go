package syntax

import "testing"

var _ Visitor = BaseVisitor{}

// recorder records the name of every handler Accept dispatches to.
type recorder struct {
	got []string
}

func (r *recorder) record(name string) { r.got = append(r.got, name) }

func (r *recorder) VisitProgram(*Program)           { r.record("Program") }
func (r *recorder) VisitDeclaration(*Declaration)   { r.record("Declaration") }
func (r *recorder) VisitFinal(*Final)               { r.record("Final") }
func (r *recorder) VisitSignedNumber(*SignedNumber) { r.record("SignedNumber") }
func (r *recorder) VisitNegExpr(*NegExpr)           { r.record("NegExpr") }
func (r *recorder) VisitUnaryOp(*UnaryOp)           { r.record("UnaryOp") }
func (r *recorder) VisitBinaryOp(*BinaryOp)         { r.record("BinaryOp") }
func (r *recorder) VisitAssignment(*Assignment)     { r.record("Assignment") }
func (r *recorder) VisitComparison(*Comparison)     { r.record("Comparison") }
func (r *recorder) VisitLogicalExpr(*LogicalExpr)   { r.record("LogicalExpr") }
func (r *recorder) VisitElifClause(*ElifClause)     { r.record("ElifClause") }
func (r *recorder) VisitIfStmt(*IfStmt)             { r.record("IfStmt") }
func (r *recorder) VisitWhileStmt(*WhileStmt)       { r.record("WhileStmt") }
func (r *recorder) VisitForStmt(*ForStmt)           { r.record("ForStmt") }
func (r *recorder) VisitPrintStmt(*PrintStmt)       { r.record("PrintStmt") }

func TestAcceptDispatch(t *testing.T) {
	nodes := []struct {
		node Node
		want string
	}{
		{&Program{}, "Program"},
		{&Declaration{}, "Declaration"},
		{&Final{}, "Final"},
		{&SignedNumber{}, "SignedNumber"},
		{&NegExpr{}, "NegExpr"},
		{&UnaryOp{}, "UnaryOp"},
		{&BinaryOp{}, "BinaryOp"},
		{&Assignment{}, "Assignment"},
		{&Comparison{}, "Comparison"},
		{&LogicalExpr{}, "LogicalExpr"},
		{&ElifClause{}, "ElifClause"},
		{&IfStmt{}, "IfStmt"},
		{&WhileStmt{}, "WhileStmt"},
		{&ForStmt{}, "ForStmt"},
		{&PrintStmt{}, "PrintStmt"},
	}
	for _, tt := range nodes {
		r := &recorder{}
		tt.node.Accept(r)
		if len(r.got) != 1 || r.got[0] != tt.want {
			t.Errorf("%T.Accept dispatched to %v, want [%s]", tt.node, r.got, tt.want)
		}
	}
}

// countingVisitor overrides a single handler and relies on BaseVisitor
// for the rest.
type countingVisitor struct {
	BaseVisitor
	binaryOps int
}

func (v *countingVisitor) VisitBinaryOp(n *BinaryOp) { v.binaryOps++ }

func TestBaseVisitorOverride(t *testing.T) {
	prog := parse(t, "x = 1 + 2 * 3;")
	v := &countingVisitor{}
	Walk(prog, func(n Node) bool {
		n.Accept(v)
		return true
	})
	if v.binaryOps != 2 {
		t.Errorf("counted %d binary operations, want 2", v.binaryOps)
	}
}

func TestAcceptDoesNotRecurse(t *testing.T) {
	prog := parse(t, "x = 1 + 2;")
	v := &countingVisitor{}
	prog.Accept(v)
	if v.binaryOps != 0 {
		t.Errorf("Accept on the root reached %d binary operations, want 0", v.binaryOps)
	}
}
