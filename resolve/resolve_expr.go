package resolve

import (
	"sable/ast"
	"sable/mir"
	"sable/report"
	"sable/sem"
	"sable/types"
)

// resolveExpr resolves an expression, optionally against an expected type.
// When an expected type is given the expression's resolved type must be
// equivalent to it: the expected type is the inference target for contexts
// like assignment right-hand sides and call arguments.
func (t *Typer) resolveExpr(expr ast.Expr, expected types.Type) (mir.Expr, error) {
	switch v := expr.(type) {
	case *ast.Literal:
		return t.resolveLiteral(v, expected)
	case *ast.Identifier:
		return t.resolveIdentifier(v, expected)
	case *ast.SelfLit:
		return t.resolveSelf(v, expected)
	case *ast.FieldAccess:
		return t.resolveFieldAccess(v, expected)
	case *ast.Call:
		return t.resolveCall(v, expected)
	case *ast.Binary:
		return t.resolveBinary(v, expected)
	case *ast.StructLit:
		return t.resolveStructLit(v, expected)
	case *ast.BlockExpr:
		return t.resolveBlock(v, expected)
	}

	report.ReportICE("cannot resolve unknown expression `%s`", expr.KindName())
	return nil, nil
}

// resolveOperand resolves a subexpression whose value is consumed by its
// parent, suppressing unused-value diagnostics below it.
func (t *Typer) resolveOperand(expr ast.Expr, expected types.Type) (mir.Expr, error) {
	oldState := t.state
	t.state |= exprResultUsed
	res, err := t.resolveExpr(expr, expected)
	t.state = oldState

	return res, err
}

// checkExpected verifies a resolved type against an expected type, if any.
func (t *Typer) checkExpected(ty, expected types.Type, span *report.TextSpan) error {
	if expected != nil && !types.Equiv(ty, expected) {
		return report.Raise(
			report.ErrTypeMismatch,
			span,
			"type mismatch: expected `%s` but got `%s`",
			expected.Repr(),
			ty.Repr(),
		)
	}

	return nil
}

// warnUnused reports an unused-value warning if the expression being resolved
// is in statement position.
func (t *Typer) warnUnused(span *report.TextSpan, what string) {
	if t.state&exprResultUsed == 0 {
		report.ReportWarning(t.moduleName, span, "result of %s is unused", what)
	}
}

// -----------------------------------------------------------------------------

func (t *Typer) resolveLiteral(lit *ast.Literal, expected types.Type) (mir.Expr, error) {
	var ty types.Type
	switch lit.Kind {
	case ast.LitInt:
		ty = t.typeMap.Int()
	case ast.LitFloat:
		ty = t.typeMap.Float()
	case ast.LitBool:
		ty = t.typeMap.Bool()
	case ast.LitString:
		ty = t.typeMap.String()
	default:
		ty = t.typeMap.Unit()
	}

	if err := t.checkExpected(ty, expected, lit.Span()); err != nil {
		return nil, err
	}

	t.warnUnused(lit.Span(), "literal")

	return &mir.Literal{ExprBase: mir.NewExprBase(lit.Span(), ty, false), Value: lit.Value}, nil
}

func (t *Typer) resolveIdentifier(id *ast.Identifier, expected types.Type) (mir.Expr, error) {
	entity, ok := t.lookup(id.Name)
	if !ok {
		return nil, report.Raise(
			report.ErrUndefinedSymbol,
			id.Span(),
			"undefined symbol: `%s`",
			id.Name,
		)
	}

	if err := t.resolveEntity(entity); err != nil {
		return nil, spanned(err, id.Span())
	}

	if entity.IsType() {
		return nil, report.Raise(
			report.ErrDefinition,
			id.Span(),
			"`%s` cannot be used as a value",
			id.Name,
		)
	}

	if err := t.checkExpected(entity.Type(), expected, id.Span()); err != nil {
		return nil, err
	}

	t.warnUnused(id.Span(), "expression")

	return &mir.EntityRef{
		ExprBase: mir.NewExprBase(id.Span(), entity.Type(), entityMutable(entity)),
		Entity:   entity,
	}, nil
}

func (t *Typer) resolveSelf(sl *ast.SelfLit, expected types.Type) (mir.Expr, error) {
	entity, ok := t.lookup("self")
	if !ok || !entity.IsSelf() {
		return nil, report.Raise(
			report.ErrUndefinedSymbol,
			sl.Span(),
			"cannot use `self` outside of a method",
		)
	}

	if err := t.checkExpected(entity.Type(), expected, sl.Span()); err != nil {
		return nil, err
	}

	return &mir.EntityRef{
		ExprBase: mir.NewExprBase(sl.Span(), entity.Type(), entityMutable(entity)),
		Entity:   entity,
	}, nil
}

// entityMutable returns the mutability of a value reference to the entity.
func entityMutable(e *sem.Entity) bool {
	switch kind := e.Kind().(type) {
	case *sem.Variable:
		return kind.Mutable
	case *sem.SelfParam:
		return kind.Mutable
	default:
		return false
	}
}

// -----------------------------------------------------------------------------

func (t *Typer) resolveFieldAccess(fa *ast.FieldAccess, expected types.Type) (mir.Expr, error) {
	// A member access rooted at a type name reaches the type's associated
	// functions rather than a value's fields.
	if id, ok := fa.Root.(*ast.Identifier); ok {
		if entity, found := t.lookup(id.Name); found {
			if err := t.resolveEntity(entity); err != nil {
				return nil, spanned(err, id.Span())
			}

			if entity.IsType() {
				return t.resolveStaticAccess(entity, fa, expected)
			}
		}
	}

	root, err := t.resolveOperand(fa.Root, nil)
	if err != nil {
		return nil, err
	}

	structTy, ok := root.Type().(*types.StructType)
	if !ok {
		return nil, report.Raise(
			report.ErrTypeMismatch,
			fa.Root.Span(),
			"type `%s` has no members",
			root.Type().Repr(),
		)
	}

	structInfo := t.structEntities[structTy].AsStruct()
	fieldEntity, ok := structInfo.Fields.LookupLocal(fa.FieldName)
	if !ok {
		if _, isMethod := structInfo.Methods.LookupLocal(fa.FieldName); isMethod {
			return nil, report.Raise(
				report.ErrUnsupportedConstruct,
				fa.Span(),
				"calling `%s` through a value is not implemented yet",
				fa.FieldName,
			)
		}

		return nil, report.Raise(
			report.ErrUndefinedSymbol,
			fa.Span(),
			"type `%s` has no field `%s`",
			structTy.Repr(),
			fa.FieldName,
		)
	}

	if err := t.checkExpected(fieldEntity.Type(), expected, fa.Span()); err != nil {
		return nil, err
	}

	t.warnUnused(fa.Span(), "member access")

	// A field is assignable exactly when the value it is read out of is.
	return &mir.FieldAccess{
		ExprBase: mir.NewExprBase(fa.Span(), fieldEntity.Type(), root.Mutable()),
		Root:     root,
		Field:    fieldEntity,
		Index:    fieldEntity.AsLocal().Index,
	}, nil
}

// resolveStaticAccess resolves a member access on a type name: an associated
// function that does not take a receiver.
func (t *Typer) resolveStaticAccess(entity *sem.Entity, fa *ast.FieldAccess, expected types.Type) (mir.Expr, error) {
	if !entity.IsStruct() {
		return nil, report.Raise(
			report.ErrUndefinedSymbol,
			fa.Span(),
			"type `%s` has no member `%s`",
			entity.Name(),
			fa.FieldName,
		)
	}

	method, ok := entity.AsStruct().Methods.LookupLocal(fa.FieldName)
	if !ok {
		return nil, report.Raise(
			report.ErrUndefinedSymbol,
			fa.Span(),
			"`%s` has no associated function `%s`",
			entity.Name(),
			fa.FieldName,
		)
	}

	if method.AsAssociatedFunction().TakesSelf {
		return nil, report.Raise(
			report.ErrDefinition,
			fa.Span(),
			"associated function `%s` requires a `self` receiver",
			method.Name(),
		)
	}

	if err := t.checkExpected(method.Type(), expected, fa.Span()); err != nil {
		return nil, err
	}

	return &mir.EntityRef{
		ExprBase: mir.NewExprBase(fa.Span(), method.Type(), false),
		Entity:   method,
	}, nil
}

// -----------------------------------------------------------------------------

func (t *Typer) resolveCall(call *ast.Call, expected types.Type) (mir.Expr, error) {
	fn, err := t.resolveOperand(call.Fn, nil)
	if err != nil {
		return nil, err
	}

	fnTy, ok := fn.Type().(*types.FuncType)
	if !ok {
		return nil, report.Raise(
			report.ErrTypeMismatch,
			call.Fn.Span(),
			"type `%s` is not callable",
			fn.Type().Repr(),
		)
	}

	if len(call.Args) != len(fnTy.ParamTypes) {
		return nil, report.Raise(
			report.ErrTypeMismatch,
			call.Span(),
			"expected %d arguments but got %d",
			len(fnTy.ParamTypes),
			len(call.Args),
		)
	}

	args := make([]mir.Expr, len(call.Args))
	for i, arg := range call.Args {
		if args[i], err = t.resolveOperand(arg, fnTy.ParamTypes[i]); err != nil {
			return nil, err
		}
	}

	if err := t.checkExpected(fnTy.ReturnType, expected, call.Span()); err != nil {
		return nil, err
	}

	return &mir.Call{
		ExprBase: mir.NewExprBase(call.Span(), fnTy.ReturnType, false),
		Fn:       fn,
		Args:     args,
	}, nil
}

func (t *Typer) resolveBinary(b *ast.Binary, expected types.Type) (mir.Expr, error) {
	lhs, err := t.resolveOperand(b.LHS, nil)
	if err != nil {
		return nil, err
	}

	rhs, err := t.resolveOperand(b.RHS, nil)
	if err != nil {
		return nil, err
	}

	resultTy, err := t.checkBinaryOp(b.Op, lhs, rhs, b.Span())
	if err != nil {
		return nil, err
	}

	if err := t.checkExpected(resultTy, expected, b.Span()); err != nil {
		return nil, err
	}

	t.warnUnused(b.Span(), "binary operation")

	return &mir.BinaryOp{
		ExprBase: mir.NewExprBase(b.Span(), resultTy, false),
		Op:       b.Op,
		LHS:      lhs,
		RHS:      rhs,
	}, nil
}

// checkBinaryOp checks a binary operator application and returns the result
// type.
func (t *Typer) checkBinaryOp(op ast.BinaryOp, lhs, rhs mir.Expr, span *report.TextSpan) (types.Type, error) {
	lty, rty := lhs.Type(), rhs.Type()

	mismatch := func() error {
		return report.Raise(
			report.ErrTypeMismatch,
			span,
			"operator `%s` cannot be applied to `%s` and `%s`",
			op,
			lty.Repr(),
			rty.Repr(),
		)
	}

	switch op {
	case ast.OpAdd:
		// Addition doubles as string concatenation.
		if types.Equiv(lty, rty) && (types.IsNumeric(lty) || types.Equiv(lty, t.typeMap.String())) {
			return lty, nil
		}
	case ast.OpSub, ast.OpMul, ast.OpDiv:
		if types.Equiv(lty, rty) && types.IsNumeric(lty) {
			return lty, nil
		}
	case ast.OpEq, ast.OpNEq:
		if types.Equiv(lty, rty) {
			return t.typeMap.Bool(), nil
		}
	case ast.OpLt, ast.OpGt:
		if types.Equiv(lty, rty) && types.IsNumeric(lty) {
			return t.typeMap.Bool(), nil
		}
	case ast.OpAnd, ast.OpOr:
		if types.IsBool(lty) && types.IsBool(rty) {
			return t.typeMap.Bool(), nil
		}
	}

	return nil, mismatch()
}

// -----------------------------------------------------------------------------

func (t *Typer) resolveStructLit(sl *ast.StructLit, expected types.Type) (mir.Expr, error) {
	entity, ok := t.lookup(sl.TypeName)
	if !ok {
		return nil, report.Raise(
			report.ErrUndefinedSymbol,
			sl.Span(),
			"undefined symbol: `%s`",
			sl.TypeName,
		)
	}

	if err := t.resolveEntity(entity); err != nil {
		return nil, spanned(err, sl.Span())
	}

	if !entity.IsStruct() {
		return nil, report.Raise(
			report.ErrDefinition,
			sl.Span(),
			"`%s` is not a structure type",
			sl.TypeName,
		)
	}

	structTy := entity.Type().(*types.StructType)
	fields := entity.AsStruct().Fields

	inits := make([]mir.Expr, len(structTy.FieldNames))
	for _, init := range sl.Inits {
		fieldEntity, ok := fields.LookupLocal(init.FieldName)
		if !ok {
			return nil, report.Raise(
				report.ErrUndefinedSymbol,
				init.Span(),
				"type `%s` has no field `%s`",
				structTy.Repr(),
				init.FieldName,
			)
		}

		index := fieldEntity.AsLocal().Index
		if inits[index] != nil {
			return nil, report.Raise(
				report.ErrDefinition,
				init.Span(),
				"field `%s` initialized multiple times",
				init.FieldName,
			)
		}

		value, err := t.resolveOperand(init.Value, fieldEntity.Type())
		if err != nil {
			return nil, err
		}

		inits[index] = value
	}

	// Uninitialized fields fall back to their declared defaults.
	for i, init := range inits {
		if init != nil {
			continue
		}

		fieldEntity, _ := fields.LookupLocal(structTy.FieldNames[i])
		if def, ok := fieldEntity.AsLocal().Default.(mir.Expr); ok && def != nil {
			inits[i] = def
			continue
		}

		return nil, report.Raise(
			report.ErrDefinition,
			sl.Span(),
			"missing initializer for field `%s`",
			structTy.FieldNames[i],
		)
	}

	if err := t.checkExpected(structTy, expected, sl.Span()); err != nil {
		return nil, err
	}

	return &mir.StructLit{
		ExprBase:   mir.NewExprBase(sl.Span(), structTy, false),
		Struct:     entity,
		FieldInits: inits,
	}, nil
}

// -----------------------------------------------------------------------------

func (t *Typer) resolveBlock(be *ast.BlockExpr, expected types.Type) (mir.Expr, error) {
	t.pushScope()
	defer t.popScope()

	stmts := make([]*mir.Stmt, len(be.Stmts))
	for i, stmt := range be.Stmts {
		ts, err := t.resolveStmt(stmt, false)
		if err != nil {
			return nil, err
		}

		stmts[i] = ts
	}

	var tail mir.Expr
	ty := t.typeMap.Unit()

	if be.Tail != nil {
		var err error
		if tail, err = t.resolveOperand(be.Tail, expected); err != nil {
			return nil, err
		}

		ty = tail.Type()
	} else if err := t.checkExpected(ty, expected, be.Span()); err != nil {
		return nil, err
	}

	return &mir.Block{
		ExprBase: mir.NewExprBase(be.Span(), ty, false),
		Stmts:    stmts,
		Tail:     tail,
	}, nil
}

// -----------------------------------------------------------------------------

// resolveExprToEntity resolves an lvalue expression to both its underlying
// entity and its typed-expression form.
func (t *Typer) resolveExprToEntity(expr ast.Expr) (*sem.Entity, mir.Expr, error) {
	switch expr.(type) {
	case *ast.Identifier, *ast.SelfLit, *ast.FieldAccess:
	default:
		return nil, nil, report.Raise(
			report.ErrDefinition,
			expr.Span(),
			"%s cannot be assigned to",
			expr.KindName(),
		)
	}

	lvalue, err := t.resolveOperand(expr, nil)
	if err != nil {
		return nil, nil, err
	}

	switch v := lvalue.(type) {
	case *mir.EntityRef:
		return v.Entity, lvalue, nil
	case *mir.FieldAccess:
		return v.Field, lvalue, nil
	}

	report.ReportICE("lvalue resolved to a non-addressable expression")
	return nil, nil, nil
}
