package sem

// Scope is a name-to-entity binding table with lexical nesting.  Lookup walks
// outward through parent scopes until a binding is found or the chain is
// exhausted; the scope pushed most recently therefore shadows all enclosing
// scopes.  Scopes are owned by their declaring construct (module, structure,
// function) and outlive the resolution of their contents.  Lookup never
// mutates a scope's bindings: only resolution of the looked-up entity may
// mutate the entity itself.
type Scope struct {
	// The enclosing scope.  Nil for a root scope.
	parent *Scope

	// The scope's bindings by name.
	bindings map[string]*Entity

	// The bound names in definition order.  Iteration over a scope must be
	// deterministic because field and method order is load-bearing.
	names []string
}

// NewScope creates a new scope nested inside the given parent.  The parent
// may be nil for a root scope.
func NewScope(parent *Scope) *Scope {
	return &Scope{
		parent:   parent,
		bindings: make(map[string]*Entity),
	}
}

// Parent returns the enclosing scope.
func (s *Scope) Parent() *Scope {
	return s.parent
}

// Define binds the entity's name in this scope.  It returns false if the name
// is already bound in this scope; enclosing scopes are not consulted, so
// shadowing an outer binding is allowed.
func (s *Scope) Define(e *Entity) bool {
	if _, ok := s.bindings[e.Name()]; ok {
		return false
	}

	s.bindings[e.Name()] = e
	s.names = append(s.names, e.Name())
	return true
}

// Lookup finds the entity bound to the given name, walking outward through
// parent scopes until found or exhausted.
func (s *Scope) Lookup(name string) (*Entity, bool) {
	for scope := s; scope != nil; scope = scope.parent {
		if e, ok := scope.bindings[name]; ok {
			return e, true
		}
	}

	return nil, false
}

// LookupLocal finds the entity bound to the given name in this scope only.
func (s *Scope) LookupLocal(name string) (*Entity, bool) {
	e, ok := s.bindings[name]
	return e, ok
}

// Names returns the names bound in this scope in definition order.
func (s *Scope) Names() []string {
	return s.names
}

// Entities returns the entities bound in this scope in definition order.
func (s *Scope) Entities() []*Entity {
	entities := make([]*Entity, len(s.names))
	for i, name := range s.names {
		entities[i] = s.bindings[name]
	}

	return entities
}

// Len returns the number of bindings in this scope.
func (s *Scope) Len() int {
	return len(s.names)
}
