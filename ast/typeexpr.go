package ast

// TypeExpr is the interface for all type label nodes.
type TypeExpr interface {
	Node

	typeExpr()
}

// NamedTypeExpr represents a type label referring to a named type: either a
// primitive or a user-defined structure.  Resolving the label triggers
// resolution of the named entity.
type NamedTypeExpr struct {
	NodeBase

	// The referenced type name.
	TypeName string
}

func (nte *NamedTypeExpr) KindName() string { return "type label" }
func (nte *NamedTypeExpr) typeExpr()        {}
