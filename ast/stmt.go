package ast

// Stmt is the interface for all statement nodes.
type Stmt interface {
	Node

	stmt()
}

// -----------------------------------------------------------------------------

// ExprStmt represents an expression used in statement position: its value, if
// any, is discarded.
type ExprStmt struct {
	NodeBase

	// The inner expression.
	Expr Expr
}

func (es *ExprStmt) KindName() string { return "expression statement" }
func (es *ExprStmt) stmt()            {}

// ItemStmt represents a declaration used in statement position.
type ItemStmt struct {
	NodeBase

	// The declared item.
	Item Item
}

func (is *ItemStmt) KindName() string { return "item statement" }
func (is *ItemStmt) stmt()            {}

// AssignStmt represents an assignment statement.
type AssignStmt struct {
	NodeBase

	// The assignment operator.
	Op AssignOp

	// The expression being assigned to.
	Lvalue Expr

	// The expression being assigned.
	RHS Expr
}

func (as *AssignStmt) KindName() string { return "assignment" }
func (as *AssignStmt) stmt()            {}

// EmptyStmt represents an empty statement.  The front end prunes these before
// analysis: one reaching the resolver is an internal error.
type EmptyStmt struct {
	NodeBase
}

func (es *EmptyStmt) KindName() string { return "empty statement" }
func (es *EmptyStmt) stmt()            {}

// -----------------------------------------------------------------------------

// AssignOp represents an assignment operator.
type AssignOp int

// Enumeration of the different assignment operators.  Only plain assignment is
// currently implemented by the typer; the compound operators are pass-through
// tokens from the front end.
const (
	AssignEq    AssignOp = iota // =
	AssignPlus                  // +=
	AssignMinus                 // -=
	AssignStar                  // *=
	AssignSlash                 // /=
)

func (op AssignOp) String() string {
	switch op {
	case AssignEq:
		return "="
	case AssignPlus:
		return "+="
	case AssignMinus:
		return "-="
	case AssignStar:
		return "*="
	default:
		return "/="
	}
}
