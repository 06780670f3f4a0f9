// Package mir defines the typed mid-level IR produced by the resolver:
// statements and expressions annotated with resolved types and entity
// references in place of names.  Every entity reachable from a MIR tree is in
// a terminal resolution state.
package mir

import (
	"sable/ast"
	"sable/report"
	"sable/sem"
	"sable/types"
)

// Stmt represents a typed statement.
type Stmt struct {
	// The statement's kind.
	Kind StmtKind

	// The span over which the statement occurs.
	span *report.TextSpan

	// The statement's resolved type.  Item and assignment statements have
	// unit type; an expression statement has the type of its expression.
	ty types.Type
}

// NewStmt creates a new typed statement.
func NewStmt(kind StmtKind, span *report.TextSpan, ty types.Type) *Stmt {
	return &Stmt{Kind: kind, span: span, ty: ty}
}

func (s *Stmt) Span() *report.TextSpan { return s.span }
func (s *Stmt) Type() types.Type       { return s.ty }

// -----------------------------------------------------------------------------

// StmtKind is the closed set of typed statement kinds.
type StmtKind interface {
	stmtKind()
}

// ExprStmt is an expression in statement position.
type ExprStmt struct {
	// The typed inner expression.
	Expr Expr
}

func (es *ExprStmt) stmtKind() {}

// ItemStmt is a declaration in statement position.  It carries the resolved
// entity of the declared item.
type ItemStmt struct {
	// The declared entity.
	Entity *sem.Entity
}

func (is *ItemStmt) stmtKind() {}

// AssignStmt is an assignment statement.
type AssignStmt struct {
	// The assignment operator.
	Op ast.AssignOp

	// The resolved entity being assigned to.
	Lvalue *sem.Entity

	// The typed right-hand side.
	RHS Expr
}

func (as *AssignStmt) stmtKind() {}
