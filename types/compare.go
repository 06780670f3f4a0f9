package types

// Equiv returns whether two types are equivalent for purposes of type
// checking.  The invalid sentinel is never equivalent to anything, including
// itself: an unresolved type always fails compatibility checks.
func Equiv(a, b Type) bool {
	if IsInvalid(a) || IsInvalid(b) {
		return false
	}

	return a.equals(b)
}

// IsUnit returns whether the given type is the unit type.
func IsUnit(t Type) bool {
	if pt, ok := t.(PrimitiveType); ok {
		return pt == PrimUnit
	}

	return false
}

// IsInvalid returns whether the given type is the invalid sentinel.
func IsInvalid(t Type) bool {
	_, ok := t.(InvalidType)
	return ok
}

// IsNumeric returns whether the given type is a numeric primitive.
func IsNumeric(t Type) bool {
	if pt, ok := t.(PrimitiveType); ok {
		return pt == PrimI64 || pt == PrimF64
	}

	return false
}

// IsBool returns whether the given type is the boolean primitive.
func IsBool(t Type) bool {
	if pt, ok := t.(PrimitiveType); ok {
		return pt == PrimBool
	}

	return false
}
