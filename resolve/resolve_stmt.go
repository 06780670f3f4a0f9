package resolve

import (
	"sable/ast"
	"sable/mir"
	"sable/report"
	"sable/sem"
)

// ResolveStmt resolves a statement in a nested (non-top-level) context.
func (t *Typer) ResolveStmt(stmt ast.Stmt) (*mir.Stmt, error) {
	return t.resolveStmt(stmt, false)
}

// resolveStmt resolves a single statement.  The topLevel flag selects the
// forward-reference-tolerant path for item statements: module-level items may
// reference later declarations, nested items may not.
func (t *Typer) resolveStmt(stmt ast.Stmt, topLevel bool) (*mir.Stmt, error) {
	switch s := stmt.(type) {
	case *ast.ExprStmt:
		// The statement's value, if any, is discarded.
		oldState := t.state
		t.state &^= exprResultUsed
		expr, err := t.resolveExpr(s.Expr, nil)
		t.state = oldState

		if err != nil {
			return nil, err
		}

		return mir.NewStmt(&mir.ExprStmt{Expr: expr}, expr.Span(), expr.Type()), nil

	case *ast.ItemStmt:
		var entity *sem.Entity
		var err error
		if topLevel {
			entity, err = t.resolveTopLevelItem(s.Item)
		} else {
			entity, err = t.resolveLocalItem(s.Item)
		}

		if err != nil {
			return nil, err
		}

		// A declaration has no value.
		return mir.NewStmt(&mir.ItemStmt{Entity: entity}, s.Span(), t.typeMap.Unit()), nil

	case *ast.AssignStmt:
		return t.resolveAssign(s)

	case *ast.EmptyStmt:
		report.ReportICE("empty statement reached the typer")
		return nil, nil
	}

	report.ReportICE("cannot resolve unknown statement `%s`", stmt.KindName())
	return nil, nil
}

// resolveAssign resolves an assignment statement.  The target's mutability is
// checked before the right-hand side is resolved: an immutable target fails
// even when the right-hand side is itself erroneous.
func (t *Typer) resolveAssign(s *ast.AssignStmt) (*mir.Stmt, error) {
	entity, lvalue, err := t.resolveExprToEntity(s.Lvalue)
	if err != nil {
		return nil, err
	}

	if !lvalue.Mutable() {
		return nil, report.Raise(
			report.ErrImmutableTarget,
			s.Lvalue.Span(),
			"cannot assign to immutable value `%s`",
			entity.Name(),
		)
	}

	switch s.Op {
	case ast.AssignEq:
		rhs, err := t.resolveOperand(s.RHS, lvalue.Type())
		if err != nil {
			return nil, err
		}

		assign := &mir.AssignStmt{Op: s.Op, Lvalue: entity, RHS: rhs}
		return mir.NewStmt(assign, s.Span(), t.typeMap.Unit()), nil
	default:
		return nil, report.Raise(
			report.ErrUnsupportedConstruct,
			s.Span(),
			"assignment operator `%s` is not implemented yet",
			s.Op,
		)
	}
}
