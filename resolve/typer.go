// Package resolve implements the resolution and type-checking pipeline: it
// turns raw syntax items and statements into resolved entities and typed MIR.
// Resolution is lazy and cycle-safe: an entity is resolved the first time
// anything needs it, recursively triggering resolution of the entities it
// depends on, with the resolving state acting as the circular-definition
// sentinel.
package resolve

import (
	"sable/ast"
	"sable/sem"
	"sable/types"
)

// exprResultUsed is the typer state bit indicating that the value of the
// expression currently being resolved is consumed by its context.  It is
// cleared in statement position and exists purely to suppress unused-value
// diagnostics in deeper expression resolution; it never changes typing.
const exprResultUsed = 1 << iota

// primitives lists the built-in type entities seeded into the universe scope.
var primitives = []struct {
	name string
	ty   types.PrimitiveType
}{
	{"unit", types.PrimUnit},
	{"bool", types.PrimBool},
	{"i64", types.PrimI64},
	{"f64", types.PrimF64},
	{"string", types.PrimString},
}

// Typer is responsible for resolving the declarations of a single module and
// type checking its statements and expressions.  It drives the entity
// lifecycle and produces the typed MIR consumed by later passes.
type Typer struct {
	// The shared type-interning service.
	typeMap *types.TypeMap

	// The name of the module being resolved.
	moduleName string

	// The namespace path of the module being resolved.
	modulePath sem.Path

	// The namespace path of the construct currently being resolved.  This is
	// what resolved entities record as their enclosing path.
	path sem.Path

	// The root scope holding the primitive type entities.
	universe *sem.Scope

	// The module's top-level scope.
	moduleScope *sem.Scope

	// The innermost scope at the current point of resolution.
	scope *sem.Scope

	// The typer's state bit flags.
	state int

	// structEntities maps structure types back to their defining entities so
	// member access can reach field and method scopes from a value's type.
	structEntities map[*types.StructType]*sem.Entity
}

// NewTyper creates a typer for the named module.  The universe scope is
// seeded with the primitive type entities; the module scope nests inside it.
func NewTyper(typeMap *types.TypeMap, moduleName string) *Typer {
	universe := sem.NewScope(nil)
	for _, prim := range primitives {
		universe.Define(sem.NewEntity(
			ast.VisPublic,
			prim.name,
			prim.ty,
			&sem.Primitive{},
			sem.EmptyPath(),
		))
	}

	moduleScope := sem.NewScope(universe)

	modulePath := sem.EmptyPath()
	modulePath.PushNamespace(moduleName)

	return &Typer{
		typeMap:        typeMap,
		moduleName:     moduleName,
		modulePath:     modulePath,
		path:           modulePath.Clone(),
		universe:       universe,
		moduleScope:    moduleScope,
		scope:          moduleScope,
		state:          exprResultUsed,
		structEntities: make(map[*types.StructType]*sem.Entity),
	}
}

// ModuleScope returns the module's top-level scope.
func (t *Typer) ModuleScope() *sem.Scope {
	return t.moduleScope
}

// TypeMap returns the typer's shared type map.
func (t *Typer) TypeMap() *types.TypeMap {
	return t.typeMap
}

// -----------------------------------------------------------------------------

// lookup finds the entity bound to the given name, walking outward from the
// innermost scope: enclosing blocks first, then function parameters (and
// `self`), then the module scope, then the universe.
func (t *Typer) lookup(name string) (*sem.Entity, bool) {
	return t.scope.Lookup(name)
}

// pushScope enters a new scope nested in the current one.
func (t *Typer) pushScope() *sem.Scope {
	t.scope = sem.NewScope(t.scope)
	return t.scope
}

// popScope exits the current scope.
func (t *Typer) popScope() {
	t.scope = t.scope.Parent()
}
