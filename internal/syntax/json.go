package syntax

import (
	"encoding/json"
	"io"
)

// FprintJSON writes the JSON encoding of the tree rooted at n to w.
// Every object carries a "node" discriminator and the position of its
// first token; children appear under structural field names.
func FprintJSON(w io.Writer, n Node) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(encodeNode(n))
}

// encodeNode converts a node to its JSON object form via dispatch
// through the visitor.
func encodeNode(n Node) interface{} {
	if n == nil {
		return nil
	}
	e := &jsonEncoder{}
	n.Accept(e)
	return e.obj
}

func encodeStmts(stmts []*Assignment) []interface{} {
	out := make([]interface{}, len(stmts))
	for i, a := range stmts {
		out[i] = encodeNode(a)
	}
	return out
}

// jsonEncoder builds one object per visited node. Each handler fills
// obj for its own node and recurses through encodeNode for children.
type jsonEncoder struct {
	obj map[string]interface{}
}

func (e *jsonEncoder) object(n Node, kind string) map[string]interface{} {
	e.obj = map[string]interface{}{
		"node": kind,
		"pos":  n.Pos().String(),
	}
	return e.obj
}

func (e *jsonEncoder) VisitProgram(n *Program) {
	obj := e.object(n, "Program")
	stmts := make([]interface{}, len(n.Stmts))
	for i, s := range n.Stmts {
		stmts[i] = encodeNode(s)
	}
	obj["stmts"] = stmts
}

func (e *jsonEncoder) VisitDeclaration(n *Declaration) {
	obj := e.object(n, "Declaration")
	obj["kind"] = n.Kind.String()
	obj["names"] = n.Names
	if len(n.Inits) > 0 {
		inits := make([]interface{}, len(n.Inits))
		for i, init := range n.Inits {
			inits[i] = encodeNode(init)
		}
		obj["inits"] = inits
	}
}

func (e *jsonEncoder) VisitFinal(n *Final) {
	obj := e.object(n, "Final")
	obj["kind"] = n.Kind.String()
	obj["value"] = n.Value
}

func (e *jsonEncoder) VisitSignedNumber(n *SignedNumber) {
	obj := e.object(n, "SignedNumber")
	obj["sign"] = n.Sign.String()
	obj["value"] = n.Value
}

func (e *jsonEncoder) VisitNegExpr(n *NegExpr) {
	obj := e.object(n, "NegExpr")
	obj["x"] = encodeNode(n.X)
}

func (e *jsonEncoder) VisitUnaryOp(n *UnaryOp) {
	obj := e.object(n, "UnaryOp")
	obj["op"] = n.Op.String()
	obj["ident"] = n.Ident
}

func (e *jsonEncoder) VisitBinaryOp(n *BinaryOp) {
	obj := e.object(n, "BinaryOp")
	obj["op"] = n.Op.String()
	obj["x"] = encodeNode(n.X)
	obj["y"] = encodeNode(n.Y)
}

func (e *jsonEncoder) VisitAssignment(n *Assignment) {
	obj := e.object(n, "Assignment")
	obj["target"] = n.Left.Value
	obj["op"] = n.Op.String()
	if n.Right != nil {
		obj["right"] = encodeNode(n.Right)
	}
	if n.RightLogic != nil {
		obj["rightLogic"] = encodeNode(n.RightLogic)
	}
}

func (e *jsonEncoder) VisitComparison(n *Comparison) {
	obj := e.object(n, "Comparison")
	obj["op"] = n.Op.String()
	if n.Op.IsValueForm() {
		obj["value"] = n.Value
		return
	}
	obj["left"] = encodeNode(n.Left)
	obj["right"] = encodeNode(n.Right)
}

func (e *jsonEncoder) VisitLogicalExpr(n *LogicalExpr) {
	obj := e.object(n, "LogicalExpr")
	obj["op"] = n.Op.String()
	obj["left"] = encodeNode(n.Left)
	obj["right"] = encodeNode(n.Right)
}

func (e *jsonEncoder) VisitElifClause(n *ElifClause) {
	obj := e.object(n, "ElifClause")
	obj["cond"] = encodeNode(n.Cond)
	obj["body"] = encodeStmts(n.Body)
}

func (e *jsonEncoder) VisitIfStmt(n *IfStmt) {
	obj := e.object(n, "IfStmt")
	obj["cond"] = encodeNode(n.Cond)
	obj["then"] = encodeStmts(n.Then)
	if len(n.Elifs) > 0 {
		elifs := make([]interface{}, len(n.Elifs))
		for i, c := range n.Elifs {
			elifs[i] = encodeNode(c)
		}
		obj["elifs"] = elifs
	}
	if n.Else != nil {
		obj["else"] = encodeStmts(n.Else)
	}
}

func (e *jsonEncoder) VisitWhileStmt(n *WhileStmt) {
	obj := e.object(n, "WhileStmt")
	obj["cond"] = encodeNode(n.Cond)
	obj["body"] = encodeStmts(n.Body)
}

func (e *jsonEncoder) VisitForStmt(n *ForStmt) {
	obj := e.object(n, "ForStmt")
	obj["init"] = encodeNode(n.Init)
	obj["cond"] = encodeNode(n.Cond)
	obj["step"] = encodeNode(n.Step)
	obj["body"] = encodeStmts(n.Body)
}

func (e *jsonEncoder) VisitPrintStmt(n *PrintStmt) {
	obj := e.object(n, "PrintStmt")
	args := make([]interface{}, len(n.Args))
	for i, a := range n.Args {
		args[i] = encodeNode(a)
	}
	obj["args"] = args
}
