package types

// TypeMap is the shared type-interning service for a compilation.  It hands
// out the distinguished unit and invalid values and tracks named structure
// types so that every reference to a named type shares a single instance.
type TypeMap struct {
	// named maps fully-qualified structure names to their single instance.
	named map[string]*StructType
}

// NewTypeMap creates a new, empty type map.
func NewTypeMap() *TypeMap {
	return &TypeMap{named: make(map[string]*StructType)}
}

// Invalid returns the distinguished invalid sentinel type.
func (tm *TypeMap) Invalid() Type { return InvalidType{} }

// Unit returns the unit type.
func (tm *TypeMap) Unit() Type { return PrimUnit }

// Bool returns the boolean type.
func (tm *TypeMap) Bool() Type { return PrimBool }

// Int returns the 64-bit integer type.
func (tm *TypeMap) Int() Type { return PrimI64 }

// Float returns the 64-bit floating-point type.
func (tm *TypeMap) Float() Type { return PrimF64 }

// String returns the string type.
func (tm *TypeMap) String() Type { return PrimString }

// DefineStruct records a named structure type.  The resolver calls this once
// per structure declaration; redefinition checking happens at the scope level
// before the type is ever constructed.
func (tm *TypeMap) DefineStruct(st *StructType) {
	tm.named[st.Name] = st
}

// LookupStruct returns the structure type with the given fully-qualified name.
func (tm *TypeMap) LookupStruct(name string) (*StructType, bool) {
	st, ok := tm.named[name]
	return st, ok
}
