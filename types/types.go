// Package types defines the data types of the Sable language as they are seen
// by the resolver: opaque values supporting equality and compatibility
// queries.  The distinguished invalid type is the sentinel assigned to every
// entity before resolution; it fails every compatibility check so that
// downstream readers of an unresolved or poisoned entity never observe a
// usable type.
package types

import (
	"strings"

	"sable/util"
)

// Type represents a Sable data type.
type Type interface {
	// equals returns whether this type is equal to the other type.  It should
	// only be called through Equiv which handles the invalid sentinel.
	equals(other Type) bool

	// Repr returns the representative string for this type.
	Repr() string
}

// -----------------------------------------------------------------------------

// PrimitiveType represents a primitive type.  This must be one of the
// enumerated primitive type values below.
type PrimitiveType int

// Enumeration of the different primitive types.
const (
	PrimUnit = PrimitiveType(iota)
	PrimBool
	PrimI64
	PrimF64
	PrimString
)

func (pt PrimitiveType) equals(other Type) bool {
	if opt, ok := other.(PrimitiveType); ok {
		return pt == opt
	}

	return false
}

func (pt PrimitiveType) Repr() string {
	switch pt {
	case PrimUnit:
		return "unit"
	case PrimBool:
		return "bool"
	case PrimI64:
		return "i64"
	case PrimF64:
		return "f64"
	default:
		return "string"
	}
}

// -----------------------------------------------------------------------------

// InvalidType is the distinguished sentinel assigned to entities before their
// types are resolved.  It is never equal to any type, itself included.
type InvalidType struct{}

func (it InvalidType) equals(other Type) bool { return false }

func (it InvalidType) Repr() string { return "<invalid>" }

// -----------------------------------------------------------------------------

// StructType represents a user-defined structure type.  Structure types are
// nominal: two structure types are equal only if they are the same instance.
type StructType struct {
	// The structure's fully-qualified name.
	Name string

	// The field names in declaration order.
	FieldNames []string

	// The field types in declaration order.  FieldTypes[i] is the type of the
	// field named FieldNames[i]: the shared index is the field's storage slot.
	FieldTypes []Type
}

func (st *StructType) equals(other Type) bool {
	if ost, ok := other.(*StructType); ok {
		return st == ost
	}

	return false
}

func (st *StructType) Repr() string { return st.Name }

// FieldIndex returns the storage index of the named field or -1 if the
// structure has no such field.
func (st *StructType) FieldIndex(name string) int {
	for i, fname := range st.FieldNames {
		if fname == name {
			return i
		}
	}

	return -1
}

// -----------------------------------------------------------------------------

// FuncType represents a function type.
type FuncType struct {
	// The parameter types in order.
	ParamTypes []Type

	// The return type.
	ReturnType Type
}

func (ft *FuncType) equals(other Type) bool {
	if oft, ok := other.(*FuncType); ok {
		if len(ft.ParamTypes) != len(oft.ParamTypes) {
			return false
		}

		for i, pt := range ft.ParamTypes {
			if !Equiv(pt, oft.ParamTypes[i]) {
				return false
			}
		}

		return Equiv(ft.ReturnType, oft.ReturnType)
	}

	return false
}

func (ft *FuncType) Repr() string {
	params := util.Map(ft.ParamTypes, func(pt Type) string { return pt.Repr() })

	return "(" + strings.Join(params, ", ") + ") -> " + ft.ReturnType.Repr()
}
