package syntax

// WalkFunc is called for each node during Walk.
// If it returns false, the children of the node are not visited.
type WalkFunc func(node Node) bool

// Walk traverses an AST in depth-first order.
// If f returns false, children are not visited.
func Walk(node Node, f WalkFunc) {
	if node == nil || !f(node) {
		return
	}

	switch n := node.(type) {
	case *Program:
		for _, s := range n.Stmts {
			Walk(s, f)
		}

	case *Declaration:
		for _, init := range n.Inits {
			Walk(init, f)
		}

	case *NegExpr:
		Walk(n.X, f)

	case *BinaryOp:
		Walk(n.X, f)
		Walk(n.Y, f)

	case *Assignment:
		Walk(n.Left, f)
		if n.Right != nil {
			Walk(n.Right, f)
		}
		if n.RightLogic != nil {
			Walk(n.RightLogic, f)
		}

	case *Comparison:
		if n.Left != nil {
			Walk(n.Left, f)
		}
		if n.Right != nil {
			Walk(n.Right, f)
		}

	case *LogicalExpr:
		Walk(n.Left, f)
		Walk(n.Right, f)

	case *ElifClause:
		Walk(n.Cond, f)
		for _, a := range n.Body {
			Walk(a, f)
		}

	case *IfStmt:
		Walk(n.Cond, f)
		for _, a := range n.Then {
			Walk(a, f)
		}
		for _, e := range n.Elifs {
			Walk(e, f)
		}
		for _, a := range n.Else {
			Walk(a, f)
		}

	case *WhileStmt:
		Walk(n.Cond, f)
		for _, a := range n.Body {
			Walk(a, f)
		}

	case *ForStmt:
		Walk(n.Init, f)
		Walk(n.Cond, f)
		Walk(n.Step, f)
		for _, a := range n.Body {
			Walk(a, f)
		}

	case *PrintStmt:
		for _, e := range n.Args {
			Walk(e, f)
		}

	// Leaf nodes: Final, SignedNumber, UnaryOp
	// No children to visit
	}
}

// Inspect traverses an AST and calls f for each node.
// Convenience wrapper around Walk.
func Inspect(node Node, f func(Node) bool) {
	Walk(node, WalkFunc(f))
}
