// Package ast defines the expression and statement node types produced by
// the parser. Nodes are plain structs behind narrow marker interfaces;
// resolver and interpreter dispatch on them with a type switch rather than
// a Visitor double dispatch, since the node set is closed and never
// extended by outside packages.
package ast

// Expr is implemented by every expression node.
type Expr interface {
	exprNode()
}

// Stmt is implemented by every statement node.
type Stmt interface {
	stmtNode()
}
