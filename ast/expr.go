package ast

// Expr is the interface for all expression nodes.
type Expr interface {
	Node

	expr()
}

// -----------------------------------------------------------------------------

// Identifier represents a reference to a named entity.
type Identifier struct {
	NodeBase

	// The referenced name.
	Name string
}

func (id *Identifier) KindName() string { return "identifier" }
func (id *Identifier) expr()            {}

// SelfLit represents the implicit receiver `self` inside a method body.
type SelfLit struct {
	NodeBase
}

func (sl *SelfLit) KindName() string { return "self" }
func (sl *SelfLit) expr()            {}

// Literal represents a literal value.
type Literal struct {
	NodeBase

	// The kind of the literal.  Must be one of the enumerated literal kinds.
	Kind LitKind

	// The literal's source text.
	Value string
}

func (lit *Literal) KindName() string { return "literal" }
func (lit *Literal) expr()            {}

// LitKind enumerates the different kinds of literals.
type LitKind int

const (
	LitInt LitKind = iota
	LitFloat
	LitBool
	LitString
	LitUnit
)

// -----------------------------------------------------------------------------

// FieldAccess represents a member access: `root.member`.  The member may be a
// field of a structure value or an associated function accessed through the
// structure's name.
type FieldAccess struct {
	NodeBase

	// The expression whose member is accessed.
	Root Expr

	// The name of the accessed member.
	FieldName string
}

func (fa *FieldAccess) KindName() string { return "member access" }
func (fa *FieldAccess) expr()            {}

// Call represents a function call.
type Call struct {
	NodeBase

	// The expression being called.
	Fn Expr

	// The call's arguments in order.
	Args []Expr
}

func (c *Call) KindName() string { return "call" }
func (c *Call) expr()            {}

// Binary represents a binary operator application.
type Binary struct {
	NodeBase

	// The applied operator.
	Op BinaryOp

	// The operands.
	LHS, RHS Expr
}

func (b *Binary) KindName() string { return "binary operation" }
func (b *Binary) expr()            {}

// StructLit represents a structure literal: `Name{field: value, ...}`.
type StructLit struct {
	NodeBase

	// The name of the structure type.
	TypeName string

	// The field initializers.
	Inits []*FieldInit
}

func (sl *StructLit) KindName() string { return "structure literal" }
func (sl *StructLit) expr()            {}

// FieldInit represents a single field initializer in a structure literal.
type FieldInit struct {
	NodeBase

	// The name of the initialized field.
	FieldName string

	// The initializer value.
	Value Expr
}

func (fi *FieldInit) KindName() string { return "field initializer" }

// BlockExpr represents a block of statements optionally yielding the value of
// a trailing expression.  A block with no tail expression has unit type.
type BlockExpr struct {
	NodeBase

	// The block's statements in order.
	Stmts []Stmt

	// The optional trailing expression.
	Tail Expr
}

func (be *BlockExpr) KindName() string { return "block" }
func (be *BlockExpr) expr()            {}

// -----------------------------------------------------------------------------

// BinaryOp represents a binary operator.
type BinaryOp int

// Enumeration of the different binary operators.
const (
	OpAdd BinaryOp = iota // +
	OpSub                 // -
	OpMul                 // *
	OpDiv                 // /
	OpEq                  // ==
	OpNEq                 // !=
	OpLt                  // <
	OpGt                  // >
	OpAnd                 // &&
	OpOr                  // ||
)

func (op BinaryOp) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpEq:
		return "=="
	case OpNEq:
		return "!="
	case OpLt:
		return "<"
	case OpGt:
		return ">"
	case OpAnd:
		return "&&"
	default:
		return "||"
	}
}
