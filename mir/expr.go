package mir

import (
	"sable/ast"
	"sable/report"
	"sable/sem"
	"sable/types"
)

// Expr represents a typed expression.  The mutability flag is the lvalue
// metadata the typer's assignment checking depends on: it reports whether the
// expression denotes a location that may be assigned through.
type Expr interface {
	// Type returns the expression's resolved type.
	Type() types.Type

	// Span returns the expression's source span.
	Span() *report.TextSpan

	// Mutable returns whether the expression denotes a mutable location.
	Mutable() bool
}

// ExprBase is a utility base struct for all typed expressions.
type ExprBase struct {
	span    *report.TextSpan
	ty      types.Type
	mutable bool
}

// NewExprBase creates a new expression base.
func NewExprBase(span *report.TextSpan, ty types.Type, mutable bool) ExprBase {
	return ExprBase{span: span, ty: ty, mutable: mutable}
}

func (eb ExprBase) Span() *report.TextSpan { return eb.span }
func (eb ExprBase) Type() types.Type       { return eb.ty }
func (eb ExprBase) Mutable() bool          { return eb.mutable }

// -----------------------------------------------------------------------------

// Literal represents a literal value.
type Literal struct {
	ExprBase

	// The literal's source text.
	Value string
}

// EntityRef represents a reference to a resolved entity.
type EntityRef struct {
	ExprBase

	// The referenced entity.
	Entity *sem.Entity
}

// FieldAccess represents reading a field out of a structure value.
type FieldAccess struct {
	ExprBase

	// The structure value whose field is accessed.
	Root Expr

	// The entity of the accessed field.
	Field *sem.Entity

	// The field's storage index within the structure.
	Index int
}

// Call represents a function call.
type Call struct {
	ExprBase

	// The called expression.
	Fn Expr

	// The typed arguments in order.
	Args []Expr
}

// BinaryOp represents a binary operator application.
type BinaryOp struct {
	ExprBase

	// The applied operator.
	Op ast.BinaryOp

	// The operands.
	LHS, RHS Expr
}

// StructLit represents a structure literal.
type StructLit struct {
	ExprBase

	// The entity of the structure type.
	Struct *sem.Entity

	// The typed field initializers in storage-index order.
	FieldInits []Expr
}

// Block represents a block of statements optionally yielding the value of a
// trailing expression.
type Block struct {
	ExprBase

	// The block's typed statements in order.
	Stmts []*Stmt

	// The optional trailing expression.  Nil for a unit-valued block.
	Tail Expr
}
