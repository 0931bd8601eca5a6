package syntax

import "fmt"

// ----------------------------------------------------------------------------
// Interfaces
//
// There are 3 main classes of nodes: arithmetic expressions (Expr), boolean
// expressions (Logic), and statements (Stmt). All nodes implement the Node
// interface. A node owns its children exclusively; the tree is never mutated
// after the parser builds it.

// Node is the interface implemented by all AST nodes.
type Node interface {
	Pos() Pos        // position of first token belonging to the node
	Accept(Visitor)  // double dispatch to the variant-specific handler
	aNode()          // marker method to restrict implementations to this package
}

// Expr is the interface for all arithmetic expression nodes.
type Expr interface {
	Node
	aExpr()
}

// Logic is the interface for all boolean expression nodes
// (comparisons and their && / || combinations).
type Logic interface {
	Node
	aLogic()
}

// Stmt is the interface for all statement nodes.
type Stmt interface {
	Node
	aStmt()
}

// ----------------------------------------------------------------------------
// Base node types

// node is the base struct embedded in all AST nodes.
type node struct {
	pos Pos
}

func (n *node) Pos() Pos { return n.pos }
func (n *node) aNode()   {}

// expr is embedded in all arithmetic expression nodes.
type expr struct{ node }

func (*expr) aExpr() {}

// logic is embedded in all boolean expression nodes.
type logic struct{ node }

func (*logic) aLogic() {}

// stmt is embedded in all statement nodes.
type stmt struct{ node }

func (*stmt) aStmt() {}

// ----------------------------------------------------------------------------
// Program

// Program is the root node: the ordered sequence of top-level statements.
// The sequence may be empty; order is source order.
type Program struct {
	node
	Stmts []Stmt
}

// ----------------------------------------------------------------------------
// Declarations

// DeclKind is the declared type of a Declaration.
type DeclKind uint8

const (
	IntDecl  DeclKind = iota // int a, b = 1, 2;
	BoolDecl                 // bool p, q = true, p && q;
)

func (k DeclKind) String() string {
	if k == BoolDecl {
		return "bool"
	}
	return "int"
}

// Declaration declares one or more variables of a single kind, with
// optional initializers. When initializers are present there is exactly
// one per declared name, pairwise in order: Inits[i] initializes
// Names[i]. For int declarations each initializer is an Expr; for bool
// declarations each is a Logic.
type Declaration struct {
	stmt
	Kind  DeclKind
	Names []string
	Inits []Node // each element is Expr (int) or Logic (bool)
}

// ----------------------------------------------------------------------------
// Arithmetic expressions

// FinalKind is the kind of a Final leaf.
type FinalKind uint8

const (
	Ident  FinalKind = iota // identifier
	Number                  // number literal

	// True and False complete the leaf kind set but have no producer:
	// the parser surfaces boolean literals as Comparison value forms,
	// never as Final leaves.
	True  // literal true
	False // literal false
)

var finalKindNames = [...]string{
	Ident:  "ident",
	Number: "number",
	True:   "true",
	False:  "false",
}

func (k FinalKind) String() string {
	if int(k) < len(finalKindNames) {
		return finalKindNames[k]
	}
	return fmt.Sprintf("FinalKind(%d)", k)
}

// Final is a leaf expression: an identifier, a number literal, or one of
// the boolean literals. Value holds the literal/identifier spelling.
type Final struct {
	expr
	Kind  FinalKind
	Value string
}

// Sign is the sign of a SignedNumber.
type Sign uint8

const (
	Plus  Sign = iota // +
	Minus             // -
)

func (s Sign) String() string {
	if s == Minus {
		return "-"
	}
	return "+"
}

// SignedNumber is a number literal with an explicit leading sign.
// It wraps only a literal number, never an arbitrary expression.
type SignedNumber struct {
	expr
	Sign  Sign
	Value string
}

// NegExpr is a parenthesized expression following a unary minus: -(x + 1).
type NegExpr struct {
	expr
	X Expr
}

// StepOp is the operator of a UnaryOp.
type StepOp uint8

const (
	Increment StepOp = iota // ++
	Decrement               // --
)

func (op StepOp) String() string {
	if op == Decrement {
		return "--"
	}
	return "++"
}

// UnaryOp is an increment or decrement of an identifier: x++ or x--.
// It appears both as an expression and as a standalone statement.
type UnaryOp struct {
	expr
	Op    StepOp
	Ident string
}

func (*UnaryOp) aStmt() {}

// ArithOp is the operator of a BinaryOp.
type ArithOp uint8

const (
	Add ArithOp = iota // +
	Sub                // -
	Mul                // *
	Div                // /
	Mod                // %
	Pow                // ^
)

var arithOpNames = [...]string{
	Add: "+",
	Sub: "-",
	Mul: "*",
	Div: "/",
	Mod: "%",
	Pow: "^",
}

func (op ArithOp) String() string {
	if int(op) < len(arithOpNames) {
		return arithOpNames[op]
	}
	return fmt.Sprintf("ArithOp(%d)", op)
}

// BinaryOp is a binary arithmetic operation. Both operands are non-nil.
// Pow is right-associative; all other operators are left-associative.
type BinaryOp struct {
	expr
	Op ArithOp
	X  Expr
	Y  Expr
}

// ----------------------------------------------------------------------------
// Boolean expressions

// CmpOp is the operator of a Comparison.
type CmpOp uint8

const (
	Eq  CmpOp = iota // ==
	Neq              // !=
	Gt               // >
	Lt               // <
	Gte              // >=
	Lte              // <=

	// Operand-less forms: the comparison is a bare boolean value and
	// Value holds its spelling.
	LitTrue  // literal true
	LitFalse // literal false
	IdentRef // identifier used as a boolean value
)

var cmpOpNames = [...]string{
	Eq:       "==",
	Neq:      "!=",
	Gt:       ">",
	Lt:       "<",
	Gte:      ">=",
	Lte:      "<=",
	LitTrue:  "true",
	LitFalse: "false",
	IdentRef: "ident",
}

func (op CmpOp) String() string {
	if int(op) < len(cmpOpNames) {
		return cmpOpNames[op]
	}
	return fmt.Sprintf("CmpOp(%d)", op)
}

// IsValueForm reports whether op is one of the operand-less forms
// (LitTrue, LitFalse, IdentRef).
func (op CmpOp) IsValueForm() bool {
	return op >= LitTrue
}

// Comparison is the atom of boolean expressions: either a relational
// comparison of two arithmetic expressions (Left and Right non-nil,
// Value empty), or a bare boolean value (Left and Right nil, Value set).
type Comparison struct {
	logic
	Op    CmpOp
	Left  Expr
	Right Expr
	Value string
}

// LogicOp is the operator of a LogicalExpr.
type LogicOp uint8

const (
	And LogicOp = iota // &&
	Or                 // ||
)

func (op LogicOp) String() string {
	if op == Or {
		return "||"
	}
	return "&&"
}

// LogicalExpr combines two boolean expressions with && or ||.
// Operands are themselves Comparison or LogicalExpr nodes.
type LogicalExpr struct {
	logic
	Op    LogicOp
	Left  Logic
	Right Logic
}

// ----------------------------------------------------------------------------
// Statements

// Assignment assigns to an identifier target. Exactly one of Right and
// RightLogic is non-nil: plain = may carry either an arithmetic or a
// logic right-hand side (the parser disambiguates by trial parse), the
// compound operators always carry an arithmetic one.
type Assignment struct {
	stmt
	Left       *Final // identifier target
	Op         AssignOp
	Right      Expr  // arithmetic right-hand side, or nil
	RightLogic Logic // logic right-hand side, or nil
}

// AssignOp is the operator of an Assignment.
type AssignOp uint8

const (
	Assign      AssignOp = iota // =
	PlusAssign                  // +=
	MinusAssign                 // -=
	StarAssign                  // *=
	SlashAssign                 // /=
)

var assignOpNames = [...]string{
	Assign:      "=",
	PlusAssign:  "+=",
	MinusAssign: "-=",
	StarAssign:  "*=",
	SlashAssign: "/=",
}

func (op AssignOp) String() string {
	if int(op) < len(assignOpNames) {
		return assignOpNames[op]
	}
	return fmt.Sprintf("AssignOp(%d)", op)
}

// ElifClause is one elif arm of an IfStmt: a condition and its body.
type ElifClause struct {
	node
	Cond Logic
	Body []*Assignment
}

// IfStmt is an if statement with optional elif clauses and else body.
// Elifs preserves source order. Else is nil when no else clause is
// present; an empty else clause is a non-nil empty slice.
type IfStmt struct {
	stmt
	Cond  Logic
	Then  []*Assignment
	Elifs []*ElifClause
	Else  []*Assignment
}

// WhileStmt is a while loop: condition and assignment body.
type WhileStmt struct {
	stmt
	Cond Logic
	Body []*Assignment
}

// ForStmt is a for loop with an init/condition/step header.
// Step is either an *Assignment or a *UnaryOp.
type ForStmt struct {
	stmt
	Init *Assignment
	Cond Logic
	Step Stmt
	Body []*Assignment
}

// PrintStmt prints a non-empty, comma-separated list of expressions.
type PrintStmt struct {
	stmt
	Args []Expr
}
