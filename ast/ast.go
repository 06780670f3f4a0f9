// Package ast defines the untyped syntax tree consumed by the resolver.  The
// nodes in this package are produced by the front end and carry no semantic
// information: names are unresolved strings and no types have been assigned.
package ast

import "sable/report"

// Node is the abstract interface for all AST nodes.
type Node interface {
	// Span returns the text span of the node.
	Span() *report.TextSpan

	// KindName returns a human-readable label for the node kind, used in
	// diagnostics and debug output.
	KindName() string
}

// NodeBase is a utility base struct for all AST nodes.
type NodeBase struct {
	// The span over which the node occurs.
	span *report.TextSpan
}

// NewNodeBase creates a new node base with the given span.
func NewNodeBase(span *report.TextSpan) NodeBase {
	return NodeBase{span: span}
}

// NewNodeBaseOver creates a new node base spanning over two spans.
func NewNodeBaseOver(start, end *report.TextSpan) NodeBase {
	return NodeBase{span: report.NewSpanOver(start, end)}
}

func (nb NodeBase) Span() *report.TextSpan {
	return nb.span
}

// -----------------------------------------------------------------------------

// Visibility indicates whether a declaration is externally visible.
type Visibility int

const (
	VisPrivate Visibility = iota
	VisPublic
)
