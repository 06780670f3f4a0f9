package sem

import (
	"sable/ast"
	"sable/types"
)

// EntityInfo is the closed set of entity kinds: the resolution states plus
// the terminal declaration kinds with their semantic content.
type EntityInfo interface {
	// KindName returns a human-readable label for the kind.
	KindName() string

	entityInfo()
}

// -----------------------------------------------------------------------------

// Unresolved marks an entity whose declaration has been scanned but not yet
// processed.  It holds the raw syntax item the declaration came from.
type Unresolved struct {
	// The unprocessed declaration.
	Item ast.Item
}

func (u *Unresolved) KindName() string { return "unresolved" }
func (u *Unresolved) entityInfo()      {}

// Resolving marks an entity whose resolution is in progress.  Re-entering an
// entity in this state is the sole circular-definition detection mechanism.
type Resolving struct{}

func (r *Resolving) KindName() string { return "resolving" }
func (r *Resolving) entityInfo()      {}

// Poisoned marks an entity whose resolution failed.  It is terminal: the
// error has already been reported and must not be reported again.
type Poisoned struct{}

func (p *Poisoned) KindName() string { return "poisoned" }
func (p *Poisoned) entityInfo()      {}

// -----------------------------------------------------------------------------

// Primitive marks a built-in type entity, resolved by construction.
type Primitive struct{}

func (p *Primitive) KindName() string { return "primitive" }
func (p *Primitive) entityInfo()      {}

// Structure is the resolved content of a structure declaration.
type Structure struct {
	// The structure's field entities.
	Fields *Scope

	// The structure's associated function entities.
	Methods *Scope
}

func (s *Structure) KindName() string { return "structure" }
func (s *Structure) entityInfo()      {}

// Function is the resolved content of a free function declaration.
type Function struct {
	// The function's parameter entities.
	Params *Scope

	// The scope of the function's body, if it has one.
	BodyScope *Scope

	// The function's resolved body, if it has one.
	Body TypedExpr
}

func (f *Function) KindName() string { return "function" }
func (f *Function) entityInfo()      {}

// AssociatedFunction is the resolved content of a function declared inside a
// structure.
type AssociatedFunction struct {
	// The entity of the owning structure.
	Owner *Entity

	// The function's parameter entities.
	Params *Scope

	// The scope of the function's body, if it has one.
	BodyScope *Scope

	// The function's resolved body, if it has one.
	Body TypedExpr

	// Whether the function takes an implicit `self` receiver.
	TakesSelf bool

	// The function's declaration order within the owning structure.  This
	// ordering is load-bearing for vtable and layout purposes.
	Index int
}

func (af *AssociatedFunction) KindName() string { return "associated function" }
func (af *AssociatedFunction) entityInfo()      {}

// Variable is the resolved content of a variable declaration.
type Variable struct {
	// The declared type of the variable, if one was given.
	Spec types.Type

	// Whether the variable can be assigned to after declaration.
	Mutable bool

	// Whether the variable is declared at module level.
	Global bool

	// The variable's resolved initializer, if it has one.
	Default TypedExpr
}

func (v *Variable) KindName() string { return "variable" }
func (v *Variable) entityInfo()      {}

// Local describes a position-indexed local binding: a parameter or a field.
type Local struct {
	// The binding's storage slot.  Slots within a given parameter or field
	// list are unique and contiguous from 0 in declaration order.
	Index int

	// The declared type of the binding, if one was given.
	Spec types.Type

	// The binding's resolved default value, if it has one.
	Default TypedExpr
}

// Param is the resolved content of a function parameter.
type Param struct {
	Local
}

func (p *Param) KindName() string { return "param" }
func (p *Param) entityInfo()      {}

// Field is the resolved content of a structure field.
type Field struct {
	Local
}

func (f *Field) KindName() string { return "field" }
func (f *Field) entityInfo()      {}

// SelfParam is the implicit receiver binding inside a method body.
type SelfParam struct {
	// Whether the receiver can be mutated through this binding.
	Mutable bool
}

func (sp *SelfParam) KindName() string { return "self" }
func (sp *SelfParam) entityInfo()      {}
