package resolve

import (
	"errors"

	"sable/ast"
	"sable/mir"
	"sable/report"
	"sable/sem"
)

// errPoisoned is returned when a dependency's resolution has already failed
// and been reported.  Callers must not report it again: poisoning exists
// precisely so each failing declaration produces one diagnostic no matter how
// many dependents touch it.
var errPoisoned = errors.New("declaration already failed to resolve")

// ResolveModule resolves a module's top-level statements in two passes.  The
// first pass declares an unresolved entity for every top-level item so that
// declarations may reference each other in any order, including mutually.
// The second pass resolves each statement in order; a failure in one
// statement is recorded and resolution continues with its siblings, so all of
// a module's first-pass errors surface in a single run.
func (t *Typer) ResolveModule(stmts []ast.Stmt) ([]*mir.Stmt, []error) {
	var errs []error

	for _, stmt := range stmts {
		is, ok := stmt.(*ast.ItemStmt)
		if !ok {
			continue
		}

		entity := sem.NewUnresolved(
			is.Item.Visibility(),
			is.Item.Name(),
			is.Item,
			t.typeMap.Invalid(),
		)

		if !t.moduleScope.Define(entity) {
			errs = append(errs, report.Raise(
				report.ErrDefinition,
				is.Item.Span(),
				"multiple definitions of `%s` at module level",
				is.Item.Name(),
			))
		}
	}

	var typed []*mir.Stmt
	for _, stmt := range stmts {
		ts, err := t.resolveStmt(stmt, true)
		if err != nil {
			if !errors.Is(err, errPoisoned) {
				errs = append(errs, err)
			}

			continue
		}

		typed = append(typed, ts)
	}

	return typed, errs
}

// -----------------------------------------------------------------------------

// resolveTopLevelItem resolves an item in the forward-reference-tolerant
// top-level path: the item's entity already exists from the declaration scan
// and may have been resolved earlier by a dependent.
func (t *Typer) resolveTopLevelItem(item ast.Item) (*sem.Entity, error) {
	entity, ok := t.moduleScope.LookupLocal(item.Name())
	if !ok {
		// An item that skipped the declaration scan: declare it now.
		entity = sem.NewUnresolved(item.Visibility(), item.Name(), item, t.typeMap.Invalid())
		t.moduleScope.Define(entity)
	}

	if err := t.resolveEntity(entity); err != nil {
		return nil, spanned(err, item.Span())
	}

	return entity, nil
}

// resolveLocalItem resolves an item declared in statement position inside a
// block.  Nested declarations are resolved immediately: later statements in
// the same block may not forward-reference them.
func (t *Typer) resolveLocalItem(item ast.Item) (*sem.Entity, error) {
	entity := sem.NewUnresolved(item.Visibility(), item.Name(), item, t.typeMap.Invalid())

	if !t.scope.Define(entity) {
		return nil, report.Raise(
			report.ErrDefinition,
			item.Span(),
			"multiple symbols named `%s` defined in immediate local scope",
			item.Name(),
		)
	}

	if err := t.resolveEntity(entity); err != nil {
		return nil, spanned(err, item.Span())
	}

	return entity, nil
}

// spanned attaches a span to a compile error that does not yet have one.
func spanned(err error, span *report.TextSpan) error {
	if ce, ok := err.(*report.CompileError); ok {
		return ce.WithSpan(span)
	}

	return err
}
