// Package sem defines the semantic entity model: declarations as resolvable,
// identified graph nodes, and the lexically nested scopes that bind names to
// them.  Entities are shared: the scope that declares an entity, every
// expression that references it, and the structure that contains it all hold
// the same *Entity.  Mutation is confined to the single-threaded resolution
// driver; only identity allocation is safe to perform concurrently.
package sem

import (
	"sync/atomic"

	"sable/ast"
	"sable/report"
	"sable/types"
)

// EntityID is a process-wide unique identifier for an entity.  IDs are
// allocated monotonically and never reused, so they double as a stable
// creation-order key for later passes.
type EntityID uint64

// idCounter is the global entity ID counter.  Entity creation sites are
// numerous and decoupled, and multiple compilation units may allocate from
// shared state, so allocation is atomic even though resolution itself is
// single-threaded.
var idCounter uint64

// NextEntityID allocates a fresh entity ID.
func NextEntityID() EntityID {
	return EntityID(atomic.AddUint64(&idCounter, 1))
}

// -----------------------------------------------------------------------------

// TypedExpr is the contract this package requires of resolved expressions: a
// resolved type and a source span.  The typed IR's expression nodes satisfy
// it; depending on only this interface keeps the entity model independent of
// the IR package that references entities back.
type TypedExpr interface {
	// Type returns the expression's resolved type.
	Type() types.Type

	// Span returns the expression's source span.
	Span() *report.TextSpan
}

// -----------------------------------------------------------------------------

// Entity represents a single resolvable declaration: a type, function,
// variable, field, or parameter.  Every entity carries a unique identity, a
// resolution state (its kind), a slot for its resolved type, and the
// namespace path it was resolved under.
type Entity struct {
	// The entity's unique ID.  Immutable after creation.
	id EntityID

	// The declared visibility of the entity.
	visibility ast.Visibility

	// The declared name of the entity.
	name string

	// The entity's resolved type.  This is never nil: before resolution it
	// holds the shared invalid sentinel which fails all compatibility checks.
	ty types.Type

	// The entity's kind: both its resolution state and, once resolved, its
	// semantic content.
	kind EntityInfo

	// The namespace path enclosing the entity.  Empty until resolution
	// completes.
	path Path
}

// NewUnresolved creates a fresh entity in the unresolved state holding the
// raw item it was declared by.
func NewUnresolved(visibility ast.Visibility, name string, item ast.Item, invalid types.Type) *Entity {
	return &Entity{
		id:         NextEntityID(),
		visibility: visibility,
		name:       name,
		ty:         invalid,
		kind:       &Unresolved{Item: item},
		path:       EmptyPath(),
	}
}

// NewResolving creates a fresh entity directly in the resolving state.
func NewResolving(visibility ast.Visibility, name string, invalid types.Type) *Entity {
	return &Entity{
		id:         NextEntityID(),
		visibility: visibility,
		name:       name,
		ty:         invalid,
		kind:       &Resolving{},
		path:       EmptyPath(),
	}
}

// NewEntity creates an entity directly in a terminal state.  This is used for
// declarations that are resolved by construction, such as primitives, fields,
// and parameters.
func NewEntity(visibility ast.Visibility, name string, ty types.Type, kind EntityInfo, path Path) *Entity {
	return &Entity{
		id:         NextEntityID(),
		visibility: visibility,
		name:       name,
		ty:         ty,
		kind:       kind,
		path:       path,
	}
}

// -----------------------------------------------------------------------------

func (e *Entity) ID() EntityID               { return e.id }
func (e *Entity) Name() string               { return e.name }
func (e *Entity) Visibility() ast.Visibility { return e.visibility }
func (e *Entity) Type() types.Type           { return e.ty }
func (e *Entity) Kind() EntityInfo           { return e.kind }
func (e *Entity) Path() Path                 { return e.path }

// SetVisibility overrides the entity's visibility.
func (e *Entity) SetVisibility(visibility ast.Visibility) {
	e.visibility = visibility
}

// FullName returns the fully-qualified path of the entity: its enclosing path
// with its own name appended as an object segment.  This is only a valid
// reference once the entity is resolved.
func (e *Entity) FullName() Path {
	path := e.path.Clone()
	path.PushObject(e.name)
	return path
}

// -----------------------------------------------------------------------------

// Resolve transitions the entity into a terminal state, installing its
// resolved type, kind, and enclosing path.
func (e *Entity) Resolve(ty types.Type, kind EntityInfo, path Path) {
	e.ty = ty
	e.kind = kind
	e.path = path
}

// ToResolving marks the entity as currently being resolved.  Re-entering an
// entity in this state is the circular-definition signal.
func (e *Entity) ToResolving() {
	e.kind = &Resolving{}
}

// Poison moves the entity into the poisoned terminal state after its
// resolution fails.  A poisoned entity never resolves again, which guarantees
// each failing declaration is reported exactly once no matter how many
// dependents touch it afterward.
func (e *Entity) Poison() {
	e.kind = &Poisoned{}
}

// -----------------------------------------------------------------------------

// KindName returns a human-readable label for the entity's kind.
func (e *Entity) KindName() string {
	return e.kind.KindName()
}

// AsStruct returns the entity's structure info.  The entity must be a
// structure: calling this on any other kind is an internal compiler error.
func (e *Entity) AsStruct() *Structure {
	if s, ok := e.kind.(*Structure); ok {
		return s
	}

	report.ReportICE("attempted to access %s entity `%s` as a structure", e.KindName(), e.name)
	return nil
}

// AsFunction returns the entity's function info.  The entity must be a free
// function.
func (e *Entity) AsFunction() *Function {
	if f, ok := e.kind.(*Function); ok {
		return f
	}

	report.ReportICE("attempted to access %s entity `%s` as a function", e.KindName(), e.name)
	return nil
}

// AsAssociatedFunction returns the entity's associated function info.  The
// entity must be an associated function.
func (e *Entity) AsAssociatedFunction() *AssociatedFunction {
	if af, ok := e.kind.(*AssociatedFunction); ok {
		return af
	}

	report.ReportICE("attempted to access %s entity `%s` as an associated function", e.KindName(), e.name)
	return nil
}

// AsVariable returns the entity's variable info.  The entity must be a
// variable.
func (e *Entity) AsVariable() *Variable {
	if v, ok := e.kind.(*Variable); ok {
		return v
	}

	report.ReportICE("attempted to access %s entity `%s` as a variable", e.KindName(), e.name)
	return nil
}

// AsLocal returns the entity's local info.  The entity must be a parameter or
// a field.
func (e *Entity) AsLocal() *Local {
	switch k := e.kind.(type) {
	case *Param:
		return &k.Local
	case *Field:
		return &k.Local
	}

	report.ReportICE("attempted to access %s entity `%s` as a parameter or field", e.KindName(), e.name)
	return nil
}

// -----------------------------------------------------------------------------

// IsType returns whether the entity denotes a type.
func (e *Entity) IsType() bool {
	switch e.kind.(type) {
	case *Primitive, *Structure:
		return true
	default:
		return false
	}
}

// IsStruct returns whether the entity denotes a structure type.
func (e *Entity) IsStruct() bool {
	_, ok := e.kind.(*Structure)
	return ok
}

// IsFunction returns whether the entity denotes a free or associated
// function.
func (e *Entity) IsFunction() bool {
	switch e.kind.(type) {
	case *Function, *AssociatedFunction:
		return true
	default:
		return false
	}
}

// IsField returns whether the entity denotes a structure field.
func (e *Entity) IsField() bool {
	_, ok := e.kind.(*Field)
	return ok
}

// IsInstance returns whether the entity denotes an addressable value of an
// instance: a variable, a field, or the `self` receiver.
func (e *Entity) IsInstance() bool {
	switch e.kind.(type) {
	case *Variable, *Field, *SelfParam:
		return true
	default:
		return false
	}
}

// IsSelf returns whether the entity is a `self` receiver binding.
func (e *Entity) IsSelf() bool {
	_, ok := e.kind.(*SelfParam)
	return ok
}

// IsResolved returns whether the entity is in a terminal state.
func (e *Entity) IsResolved() bool {
	switch e.kind.(type) {
	case *Unresolved, *Resolving:
		return false
	default:
		return true
	}
}

// IsResolving returns whether the entity is currently being resolved.
func (e *Entity) IsResolving() bool {
	_, ok := e.kind.(*Resolving)
	return ok
}

// IsUnresolved returns whether the entity has not started resolving.
func (e *Entity) IsUnresolved() bool {
	_, ok := e.kind.(*Unresolved)
	return ok
}

// IsPoisoned returns whether the entity's resolution failed.
func (e *Entity) IsPoisoned() bool {
	_, ok := e.kind.(*Poisoned)
	return ok
}
