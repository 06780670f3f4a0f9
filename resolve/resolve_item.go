package resolve

import (
	"sable/ast"
	"sable/mir"
	"sable/report"
	"sable/sem"
	"sable/types"
)

// resolveEntity produces the entity's resolved form exactly once, regardless
// of how many dependents request it.
//
// A terminal entity is returned unchanged.  A resolving entity has been
// re-entered along its own dependency chain: that is the circular-definition
// signal and resolution fails before any further recursion.  An unresolved
// entity is marked resolving, its raw item is detached and processed (which
// may recursively resolve other entities), and on success the terminal kind,
// type, and path are installed in one step.  On failure the entity is
// poisoned and the error propagates to the caller.
func (t *Typer) resolveEntity(e *sem.Entity) error {
	switch kind := e.Kind().(type) {
	case *sem.Unresolved:
		item := kind.Item
		e.ToResolving()

		if err := t.resolveItemFor(e, item); err != nil {
			e.Poison()
			return err
		}

		return nil
	case *sem.Resolving:
		return report.Raise(
			report.ErrCircularDefinition,
			nil,
			"circular definition: `%s` depends on itself",
			e.Name(),
		)
	case *sem.Poisoned:
		return errPoisoned
	default:
		// Already terminal: resolution is idempotent.
		return nil
	}
}

// resolveItemFor runs kind-specific resolution of the raw item for the given
// entity.  Each branch ends by installing the entity's terminal state.
func (t *Typer) resolveItemFor(e *sem.Entity, item ast.Item) error {
	switch it := item.(type) {
	case *ast.StructDef:
		return t.resolveStructDef(e, it)
	case *ast.FuncDef:
		return t.resolveFuncDef(e, it)
	case *ast.VarDecl:
		return t.resolveVarDecl(e, it)
	}

	report.ReportICE("cannot resolve unknown item `%s`", item.KindName())
	return nil
}

// -----------------------------------------------------------------------------

// resolveStructDef resolves a structure declaration: its fields first, in
// declaration order, then its associated functions.  The structure's entity
// becomes terminal as soon as its fields are known so that method bodies can
// refer to the structure by name without tripping the cycle check.
func (t *Typer) resolveStructDef(e *sem.Entity, sd *ast.StructDef) error {
	fields := sem.NewScope(nil)

	memberPath := t.path.Clone()
	memberPath.PushNamespace(sd.StructName)

	fieldNames := make([]string, len(sd.Fields))
	fieldTypes := make([]types.Type, len(sd.Fields))

	for i, fd := range sd.Fields {
		fieldTy, err := t.resolveTypeExpr(fd.Spec)
		if err != nil {
			return err
		}

		var def mir.Expr
		if fd.Default != nil {
			if def, err = t.resolveOperand(fd.Default, fieldTy); err != nil {
				return err
			}
		}

		fieldEntity := sem.NewEntity(
			fd.Vis,
			fd.FieldName,
			fieldTy,
			&sem.Field{Local: sem.Local{Index: i, Spec: fieldTy, Default: def}},
			memberPath.Clone(),
		)

		if !fields.Define(fieldEntity) {
			return report.Raise(
				report.ErrDefinition,
				fd.Span(),
				"multiple fields named `%s` defined for `%s`",
				fd.FieldName,
				sd.StructName,
			)
		}

		fieldNames[i] = fd.FieldName
		fieldTypes[i] = fieldTy
	}

	fullPath := t.path.Clone()
	fullPath.PushObject(sd.StructName)

	structTy := &types.StructType{
		Name:       fullPath.String(),
		FieldNames: fieldNames,
		FieldTypes: fieldTypes,
	}
	t.typeMap.DefineStruct(structTy)
	t.structEntities[structTy] = e

	e.Resolve(structTy, &sem.Structure{Fields: fields, Methods: sem.NewScope(nil)}, t.path.Clone())

	structInfo := e.AsStruct()
	for i, md := range sd.Methods {
		if err := t.resolveMethod(e, structInfo, md, i); err != nil {
			return err
		}
	}

	return nil
}

// resolveMethod resolves a single associated function of a structure.  The
// index records its declaration order within the owning structure, which is
// load-bearing for vtable and layout purposes.
func (t *Typer) resolveMethod(owner *sem.Entity, structInfo *sem.Structure, md *ast.FuncDef, index int) error {
	memberPath := t.path.Clone()
	memberPath.PushNamespace(owner.Name())

	params := sem.NewScope(t.moduleScope)

	if md.TakesSelf {
		params.Define(sem.NewEntity(
			ast.VisPrivate,
			"self",
			owner.Type(),
			&sem.SelfParam{Mutable: md.SelfMutable},
			memberPath.Clone(),
		))
	}

	paramTypes, retTy, err := t.resolveSignature(md, params, memberPath)
	if err != nil {
		return err
	}

	methodEntity := sem.NewResolving(md.Vis, md.FuncName, t.typeMap.Invalid())

	afInfo := &sem.AssociatedFunction{
		Owner:     owner,
		Params:    params,
		TakesSelf: md.TakesSelf,
		Index:     index,
	}
	methodEntity.Resolve(&types.FuncType{ParamTypes: paramTypes, ReturnType: retTy}, afInfo, memberPath.Clone())

	if !structInfo.Methods.Define(methodEntity) {
		return report.Raise(
			report.ErrDefinition,
			md.Span(),
			"multiple associated functions named `%s` defined for `%s`",
			md.FuncName,
			owner.Name(),
		)
	}

	if md.Body != nil {
		innerPath := memberPath.Clone()
		innerPath.PushNamespace(md.FuncName)

		body, bodyScope, err := t.resolveFuncBody(md.Body, params, innerPath, retTy)
		if err != nil {
			return err
		}

		afInfo.Body = body
		afInfo.BodyScope = bodyScope
	}

	return nil
}

// -----------------------------------------------------------------------------

// resolveFuncDef resolves a free function declaration.  The entity becomes
// terminal as soon as the signature is known and before the body is typed:
// this is what lets two top-level functions call each other without tripping
// the cycle check.
func (t *Typer) resolveFuncDef(e *sem.Entity, fd *ast.FuncDef) error {
	params := sem.NewScope(t.moduleScope)

	innerPath := t.path.Clone()
	innerPath.PushNamespace(fd.FuncName)

	paramTypes, retTy, err := t.resolveSignature(fd, params, innerPath)
	if err != nil {
		return err
	}

	fnInfo := &sem.Function{Params: params}
	e.Resolve(&types.FuncType{ParamTypes: paramTypes, ReturnType: retTy}, fnInfo, t.path.Clone())

	if fd.Body != nil {
		body, bodyScope, err := t.resolveFuncBody(fd.Body, params, innerPath, retTy)
		if err != nil {
			return err
		}

		fnInfo.Body = body
		fnInfo.BodyScope = bodyScope
	}

	return nil
}

// resolveSignature resolves a function's declared parameters and return type,
// defining the parameter entities in the given scope with contiguous indices
// in declaration order.
func (t *Typer) resolveSignature(fd *ast.FuncDef, params *sem.Scope, innerPath sem.Path) ([]types.Type, types.Type, error) {
	paramTypes := make([]types.Type, len(fd.Params))

	for i, pd := range fd.Params {
		paramTy, err := t.resolveTypeExpr(pd.Spec)
		if err != nil {
			return nil, nil, err
		}

		var def mir.Expr
		if pd.Default != nil {
			if def, err = t.resolveOperand(pd.Default, paramTy); err != nil {
				return nil, nil, err
			}
		}

		paramEntity := sem.NewEntity(
			ast.VisPrivate,
			pd.ParamName,
			paramTy,
			&sem.Param{Local: sem.Local{Index: i, Spec: paramTy, Default: def}},
			innerPath.Clone(),
		)

		if !params.Define(paramEntity) {
			return nil, nil, report.Raise(
				report.ErrDefinition,
				pd.Span(),
				"multiple parameters named `%s`",
				pd.ParamName,
			)
		}

		paramTypes[i] = paramTy
	}

	retTy := t.typeMap.Unit()
	if fd.ReturnSpec != nil {
		var err error
		if retTy, err = t.resolveTypeExpr(fd.ReturnSpec); err != nil {
			return nil, nil, err
		}
	}

	return paramTypes, retTy, nil
}

// resolveFuncBody types a function body against the declared return type.
// The body scope nests inside the parameter scope, which nests inside the
// module scope: function bodies do not capture enclosing locals.
func (t *Typer) resolveFuncBody(body ast.Expr, params *sem.Scope, innerPath sem.Path, retTy types.Type) (mir.Expr, *sem.Scope, error) {
	savedScope, savedPath, savedState := t.scope, t.path, t.state

	bodyScope := sem.NewScope(params)
	t.scope = bodyScope
	t.path = innerPath
	t.state = exprResultUsed

	defer func() {
		t.scope, t.path, t.state = savedScope, savedPath, savedState
	}()

	typedBody, err := t.resolveExpr(body, retTy)
	if err != nil {
		return nil, nil, err
	}

	return typedBody, bodyScope, nil
}

// -----------------------------------------------------------------------------

// resolveVarDecl resolves a variable declaration.  The variable's type is its
// declared type label if it has one and is otherwise inferred from its
// initializer; the initializer, if present, is typed against the declared
// label.
func (t *Typer) resolveVarDecl(e *sem.Entity, vd *ast.VarDecl) error {
	var spec types.Type
	if vd.Spec != nil {
		var err error
		if spec, err = t.resolveTypeExpr(vd.Spec); err != nil {
			return err
		}
	}

	var def mir.Expr
	if vd.Init != nil {
		var err error
		if def, err = t.resolveOperand(vd.Init, spec); err != nil {
			return err
		}
	}

	var ty types.Type
	switch {
	case spec != nil:
		ty = spec
	case def != nil:
		ty = def.Type()
	default:
		return report.Raise(
			report.ErrDefinition,
			vd.Span(),
			"unable to infer type of `%s`: no type label or initializer",
			vd.VarName,
		)
	}

	varInfo := &sem.Variable{
		Spec:    spec,
		Mutable: vd.Mutable,
		Global:  t.scope == t.moduleScope,
		Default: def,
	}

	e.Resolve(ty, varInfo, t.path.Clone())
	return nil
}

// -----------------------------------------------------------------------------

// resolveTypeExpr resolves a type label to its type, triggering resolution of
// the named entity.
func (t *Typer) resolveTypeExpr(te ast.TypeExpr) (types.Type, error) {
	nte, ok := te.(*ast.NamedTypeExpr)
	if !ok {
		report.ReportICE("cannot resolve unknown type label `%s`", te.KindName())
		return nil, nil
	}

	entity, found := t.lookup(nte.TypeName)
	if !found {
		return nil, report.Raise(
			report.ErrUndefinedSymbol,
			nte.Span(),
			"undefined symbol: `%s`",
			nte.TypeName,
		)
	}

	if err := t.resolveEntity(entity); err != nil {
		return nil, spanned(err, nte.Span())
	}

	if !entity.IsType() {
		return nil, report.Raise(
			report.ErrDefinition,
			nte.Span(),
			"`%s` cannot be used as a type",
			nte.TypeName,
		)
	}

	return entity.Type(), nil
}
