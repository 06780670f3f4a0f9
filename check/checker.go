// Package check implements the analysis driver: it owns the high-level state
// of a single check run and wires module configuration, diagnostic reporting,
// and the resolution pipeline together.
package check

import (
	"sable/ast"
	"sable/mir"
	"sable/mods"
	"sable/report"
	"sable/resolve"
	"sable/types"
)

// Checker is the data structure responsible for maintaining all high-level
// state of a single analysis run.
type Checker struct {
	// mod is the module configuration of the project being checked
	mod *mods.SableModule

	// typeMap is the run's shared type-interning service
	typeMap *types.TypeMap

	// typer is the resolution driver for the module being checked
	typer *resolve.Typer
}

// NewChecker creates a new checker for a given module configuration.
func NewChecker(mod *mods.SableModule) *Checker {
	typeMap := types.NewTypeMap()

	return &Checker{
		mod:     mod,
		typeMap: typeMap,
		typer:   resolve.NewTyper(typeMap, mod.Name),
	}
}

// Typer returns the checker's resolution driver.
func (c *Checker) Typer() *resolve.Typer {
	return c.typer
}

// Check runs resolution and type checking over a module's top-level
// statements.  All resolution errors are reported through the global reporter;
// the returned flag indicates whether the module checked cleanly.
func (c *Checker) Check(stmts []ast.Stmt) ([]*mir.Stmt, bool) {
	typed, errs := c.typer.ResolveModule(stmts)

	for _, err := range errs {
		report.ReportError(c.mod.Name, err)
	}

	return typed, report.ShouldProceed()
}
