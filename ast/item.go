package ast

// Item is the interface for all declaration nodes: structures, functions, and
// variables.  Items are the units of resolution -- each one becomes an entity.
type Item interface {
	Node

	// Name returns the declared name of the item.
	Name() string

	// Visibility returns the declared visibility of the item.
	Visibility() Visibility
}

// -----------------------------------------------------------------------------

// StructDef represents a structure definition.
type StructDef struct {
	NodeBase

	// The declared name of the structure.
	StructName string

	// The declared visibility of the structure.
	Vis Visibility

	// The structure's fields in declaration order.
	Fields []*FieldDecl

	// The structure's associated functions in declaration order.
	Methods []*FuncDef
}

func (sd *StructDef) Name() string           { return sd.StructName }
func (sd *StructDef) Visibility() Visibility { return sd.Vis }
func (sd *StructDef) KindName() string       { return "structure definition" }

// FieldDecl represents a single field declaration within a structure.
type FieldDecl struct {
	NodeBase

	// The declared name of the field.
	FieldName string

	// The declared visibility of the field.
	Vis Visibility

	// The field's type label.
	Spec TypeExpr

	// The field's optional default initializer.
	Default Expr
}

func (fd *FieldDecl) KindName() string { return "field declaration" }

// -----------------------------------------------------------------------------

// FuncDef represents a function definition.  The same node is used for free
// functions and for associated functions declared inside a structure.
type FuncDef struct {
	NodeBase

	// The declared name of the function.
	FuncName string

	// The declared visibility of the function.
	Vis Visibility

	// Whether the function takes an implicit `self` receiver.  This is only
	// meaningful for associated functions.
	TakesSelf bool

	// Whether the `self` receiver is mutable.
	SelfMutable bool

	// The function's parameters in declaration order.
	Params []*ParamDecl

	// The function's return type label.  A nil return spec means the function
	// returns unit.
	ReturnSpec TypeExpr

	// The function's body.  A nil body marks an external declaration.
	Body Expr
}

func (fd *FuncDef) Name() string           { return fd.FuncName }
func (fd *FuncDef) Visibility() Visibility { return fd.Vis }
func (fd *FuncDef) KindName() string       { return "function definition" }

// ParamDecl represents a single parameter declaration.
type ParamDecl struct {
	NodeBase

	// The declared name of the parameter.
	ParamName string

	// The parameter's type label.
	Spec TypeExpr

	// The parameter's optional default value.
	Default Expr
}

func (pd *ParamDecl) KindName() string { return "parameter declaration" }

// -----------------------------------------------------------------------------

// VarDecl represents a variable declaration.
type VarDecl struct {
	NodeBase

	// The declared name of the variable.
	VarName string

	// The declared visibility of the variable.
	Vis Visibility

	// Whether the variable can be assigned to after declaration.
	Mutable bool

	// The variable's optional type label.  If this is nil, the variable's
	// type is inferred from its initializer.
	Spec TypeExpr

	// The variable's optional initializer.
	Init Expr
}

func (vd *VarDecl) Name() string           { return vd.VarName }
func (vd *VarDecl) Visibility() Visibility { return vd.Vis }
func (vd *VarDecl) KindName() string       { return "variable declaration" }
