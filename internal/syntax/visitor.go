package syntax

// Visitor is the traversal contract consumed by downstream passes.
// A parse always produces nodes drawn from the closed variant set below,
// so every consumer must handle all of them; embed BaseVisitor to get
// no-op defaults and override only the variants of interest.
//
// Dispatch is double: node.Accept(v) selects the handler from the node's
// concrete variant without the node knowing the consumer's type. Visitors
// drive recursion themselves; Accept does not visit children.
type Visitor interface {
	VisitProgram(*Program)
	VisitDeclaration(*Declaration)
	VisitFinal(*Final)
	VisitSignedNumber(*SignedNumber)
	VisitNegExpr(*NegExpr)
	VisitUnaryOp(*UnaryOp)
	VisitBinaryOp(*BinaryOp)
	VisitAssignment(*Assignment)
	VisitComparison(*Comparison)
	VisitLogicalExpr(*LogicalExpr)
	VisitElifClause(*ElifClause)
	VisitIfStmt(*IfStmt)
	VisitWhileStmt(*WhileStmt)
	VisitForStmt(*ForStmt)
	VisitPrintStmt(*PrintStmt)
}

// BaseVisitor provides no-op implementations of every Visitor method.
type BaseVisitor struct{}

func (BaseVisitor) VisitProgram(*Program)           {}
func (BaseVisitor) VisitDeclaration(*Declaration)   {}
func (BaseVisitor) VisitFinal(*Final)               {}
func (BaseVisitor) VisitSignedNumber(*SignedNumber) {}
func (BaseVisitor) VisitNegExpr(*NegExpr)           {}
func (BaseVisitor) VisitUnaryOp(*UnaryOp)           {}
func (BaseVisitor) VisitBinaryOp(*BinaryOp)         {}
func (BaseVisitor) VisitAssignment(*Assignment)     {}
func (BaseVisitor) VisitComparison(*Comparison)     {}
func (BaseVisitor) VisitLogicalExpr(*LogicalExpr)   {}
func (BaseVisitor) VisitElifClause(*ElifClause)     {}
func (BaseVisitor) VisitIfStmt(*IfStmt)             {}
func (BaseVisitor) VisitWhileStmt(*WhileStmt)       {}
func (BaseVisitor) VisitForStmt(*ForStmt)           {}
func (BaseVisitor) VisitPrintStmt(*PrintStmt)       {}

// Accept implementations: one per concrete variant.

func (n *Program) Accept(v Visitor)      { v.VisitProgram(n) }
func (n *Declaration) Accept(v Visitor)  { v.VisitDeclaration(n) }
func (n *Final) Accept(v Visitor)        { v.VisitFinal(n) }
func (n *SignedNumber) Accept(v Visitor) { v.VisitSignedNumber(n) }
func (n *NegExpr) Accept(v Visitor)      { v.VisitNegExpr(n) }
func (n *UnaryOp) Accept(v Visitor)      { v.VisitUnaryOp(n) }
func (n *BinaryOp) Accept(v Visitor)     { v.VisitBinaryOp(n) }
func (n *Assignment) Accept(v Visitor)   { v.VisitAssignment(n) }
func (n *Comparison) Accept(v Visitor)   { v.VisitComparison(n) }
func (n *LogicalExpr) Accept(v Visitor)  { v.VisitLogicalExpr(n) }
func (n *ElifClause) Accept(v Visitor)   { v.VisitElifClause(n) }
func (n *IfStmt) Accept(v Visitor)       { v.VisitIfStmt(n) }
func (n *WhileStmt) Accept(v Visitor)    { v.VisitWhileStmt(n) }
func (n *ForStmt) Accept(v Visitor)      { v.VisitForStmt(n) }
func (n *PrintStmt) Accept(v Visitor)    { v.VisitPrintStmt(n) }
