package resolve_test

import (
	"os"
	"testing"

	"sable/ast"
	"sable/mir"
	"sable/report"
	"sable/resolve"
	"sable/sem"
	"sable/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	// The tests below assert on returned errors, not on display output.
	report.InitReporter(report.LogLevelSilent)
	os.Exit(m.Run())
}

// -----------------------------------------------------------------------------

func newTestTyper() *resolve.Typer {
	return resolve.NewTyper(types.NewTypeMap(), "test")
}

func itemStmt(item ast.Item) ast.Stmt {
	return &ast.ItemStmt{Item: item}
}

func ident(name string) *ast.Identifier {
	return &ast.Identifier{Name: name}
}

func named(name string) *ast.NamedTypeExpr {
	return &ast.NamedTypeExpr{TypeName: name}
}

func intLit(text string) *ast.Literal {
	return &ast.Literal{Kind: ast.LitInt, Value: text}
}

func boolLit(text string) *ast.Literal {
	return &ast.Literal{Kind: ast.LitBool, Value: text}
}

func letDecl(name string, mutable bool, spec ast.TypeExpr, init ast.Expr) *ast.VarDecl {
	return &ast.VarDecl{VarName: name, Mutable: mutable, Spec: spec, Init: init}
}

func field(name string, spec ast.TypeExpr) *ast.FieldDecl {
	return &ast.FieldDecl{FieldName: name, Spec: spec}
}

// requireKind asserts that the error is a compile error of the given kind.
func requireKind(t *testing.T, err error, kind int) *report.CompileError {
	t.Helper()

	ce, ok := err.(*report.CompileError)
	require.True(t, ok, "expected a compile error, got %v", err)
	require.Equal(t, kind, ce.Kind, "unexpected error kind for: %s", ce.Message)
	return ce
}

// mustLookup fetches a resolved module-level entity by name.
func mustLookup(t *testing.T, typer *resolve.Typer, name string) *sem.Entity {
	t.Helper()

	e, ok := typer.ModuleScope().LookupLocal(name)
	require.True(t, ok, "no module-level entity named `%s`", name)
	return e
}

// -----------------------------------------------------------------------------

func TestVariableDeclResolves(t *testing.T) {
	typer := newTestTyper()

	typed, errs := typer.ResolveModule([]ast.Stmt{
		itemStmt(letDecl("x", false, named("i64"), intLit("5"))),
	})
	require.Empty(t, errs)
	require.Len(t, typed, 1)

	assert.True(t, types.IsUnit(typed[0].Type()), "an item statement has unit type")

	x := mustLookup(t, typer, "x")
	assert.True(t, x.IsResolved())
	assert.True(t, types.Equiv(x.Type(), types.PrimI64))
	assert.True(t, x.AsVariable().Global)
	assert.False(t, x.AsVariable().Mutable)
	assert.Equal(t, "test.x", x.FullName().String())
}

func TestVariableTypeInference(t *testing.T) {
	typer := newTestTyper()

	_, errs := typer.ResolveModule([]ast.Stmt{
		itemStmt(letDecl("x", false, nil, intLit("5"))),
	})
	require.Empty(t, errs)

	assert.True(t, types.Equiv(mustLookup(t, typer, "x").Type(), types.PrimI64))
}

func TestVariableInferenceFailure(t *testing.T) {
	typer := newTestTyper()

	_, errs := typer.ResolveModule([]ast.Stmt{
		itemStmt(letDecl("x", false, nil, nil)),
	})
	require.Len(t, errs, 1)
	requireKind(t, errs[0], report.ErrDefinition)

	assert.True(t, mustLookup(t, typer, "x").IsPoisoned())
}

func TestVariableTypeMismatch(t *testing.T) {
	typer := newTestTyper()

	_, errs := typer.ResolveModule([]ast.Stmt{
		itemStmt(letDecl("x", false, named("bool"), intLit("5"))),
	})
	require.Len(t, errs, 1)
	requireKind(t, errs[0], report.ErrTypeMismatch)
}

// -----------------------------------------------------------------------------

func TestForwardReference(t *testing.T) {
	typer := newTestTyper()

	// `p` references `Point` before its declaration appears.
	_, errs := typer.ResolveModule([]ast.Stmt{
		itemStmt(letDecl("p", false, named("Point"), nil)),
		itemStmt(&ast.StructDef{
			StructName: "Point",
			Fields:     []*ast.FieldDecl{field("x", named("i64"))},
		}),
	})
	require.Empty(t, errs)

	p := mustLookup(t, typer, "p")
	point := mustLookup(t, typer, "Point")

	assert.True(t, point.IsResolved())
	assert.Same(t, point.Type(), p.Type(), "the variable's type is the single interned structure type")
}

func TestMutualFunctionsResolve(t *testing.T) {
	typer := newTestTyper()

	// f calls g and g calls f: signatures must be installed before bodies.
	_, errs := typer.ResolveModule([]ast.Stmt{
		itemStmt(&ast.FuncDef{
			FuncName:   "f",
			ReturnSpec: named("i64"),
			Body:       &ast.Call{Fn: ident("g")},
		}),
		itemStmt(&ast.FuncDef{
			FuncName:   "g",
			ReturnSpec: named("i64"),
			Body:       &ast.Call{Fn: ident("f")},
		}),
	})
	require.Empty(t, errs)

	f := mustLookup(t, typer, "f")
	g := mustLookup(t, typer, "g")
	assert.True(t, f.IsResolved())
	assert.True(t, g.IsResolved())
	assert.NotNil(t, f.AsFunction().Body)
	assert.NotNil(t, g.AsFunction().Body)
}

func TestStructCycleReportsCircularDefinition(t *testing.T) {
	typer := newTestTyper()

	// A's field is a B and B's field is an A: resolution must fail with a
	// single circular-definition error instead of recursing forever.
	_, errs := typer.ResolveModule([]ast.Stmt{
		itemStmt(&ast.StructDef{
			StructName: "A",
			Fields:     []*ast.FieldDecl{field("b", named("B"))},
		}),
		itemStmt(&ast.StructDef{
			StructName: "B",
			Fields:     []*ast.FieldDecl{field("a", named("A"))},
		}),
	})
	require.Len(t, errs, 1)
	requireKind(t, errs[0], report.ErrCircularDefinition)

	assert.True(t, mustLookup(t, typer, "A").IsPoisoned())
	assert.True(t, mustLookup(t, typer, "B").IsPoisoned())
}

func TestSelfReferentialVariableReportsCircularDefinition(t *testing.T) {
	typer := newTestTyper()

	_, errs := typer.ResolveModule([]ast.Stmt{
		itemStmt(letDecl("a", false, nil, ident("a"))),
	})
	require.Len(t, errs, 1)
	requireKind(t, errs[0], report.ErrCircularDefinition)
}

func TestResolutionIsIdempotent(t *testing.T) {
	typer := newTestTyper()

	// Both variables trigger resolution of S; the second trigger must be a
	// no-op returning the same resolved state.
	_, errs := typer.ResolveModule([]ast.Stmt{
		itemStmt(&ast.StructDef{
			StructName: "S",
			Fields:     []*ast.FieldDecl{field("x", named("i64"))},
		}),
		itemStmt(letDecl("a", false, named("S"), nil)),
		itemStmt(letDecl("b", false, named("S"), nil)),
	})
	require.Empty(t, errs)

	a := mustLookup(t, typer, "a")
	b := mustLookup(t, typer, "b")
	assert.Same(t, a.Type(), b.Type())
}

// -----------------------------------------------------------------------------

func TestFieldIndicesContiguous(t *testing.T) {
	typer := newTestTyper()

	_, errs := typer.ResolveModule([]ast.Stmt{
		itemStmt(&ast.StructDef{
			StructName: "Vec",
			Fields: []*ast.FieldDecl{
				field("x", named("f64")),
				field("y", named("f64")),
				field("z", named("f64")),
			},
		}),
	})
	require.Empty(t, errs)

	vec := mustLookup(t, typer, "Vec")
	fields := vec.AsStruct().Fields.Entities()
	require.Len(t, fields, 3)

	for i, fe := range fields {
		assert.Equal(t, i, fe.AsLocal().Index)
		assert.True(t, fe.IsField())
	}

	st := vec.Type().(*types.StructType)
	assert.Equal(t, []string{"x", "y", "z"}, st.FieldNames)
	assert.Equal(t, 1, st.FieldIndex("y"))
}

func TestMethodDeclarationIndex(t *testing.T) {
	typer := newTestTyper()

	method := func(name string) *ast.FuncDef {
		return &ast.FuncDef{FuncName: name, ReturnSpec: named("i64"), Body: intLit("0")}
	}

	_, errs := typer.ResolveModule([]ast.Stmt{
		itemStmt(&ast.StructDef{
			StructName: "S",
			Fields:     []*ast.FieldDecl{field("x", named("i64"))},
			Methods:    []*ast.FuncDef{method("first"), method("second"), method("third")},
		}),
	})
	require.Empty(t, errs)

	methods := mustLookup(t, typer, "S").AsStruct().Methods
	third, ok := methods.LookupLocal("third")
	require.True(t, ok)
	assert.Equal(t, 2, third.AsAssociatedFunction().Index)
}

func TestMethodBodyUsesSelf(t *testing.T) {
	typer := newTestTyper()

	_, errs := typer.ResolveModule([]ast.Stmt{
		itemStmt(&ast.StructDef{
			StructName: "Point",
			Fields:     []*ast.FieldDecl{field("x", named("i64"))},
			Methods: []*ast.FuncDef{{
				FuncName:   "getX",
				TakesSelf:  true,
				ReturnSpec: named("i64"),
				Body:       &ast.FieldAccess{Root: &ast.SelfLit{}, FieldName: "x"},
			}},
		}),
	})
	require.Empty(t, errs)

	getX, ok := mustLookup(t, typer, "Point").AsStruct().Methods.LookupLocal("getX")
	require.True(t, ok)
	assert.True(t, getX.AsAssociatedFunction().TakesSelf)
	assert.NotNil(t, getX.AsAssociatedFunction().Body)
}

func TestStaticAssociatedFunctionCall(t *testing.T) {
	typer := newTestTyper()

	_, errs := typer.ResolveModule([]ast.Stmt{
		itemStmt(&ast.StructDef{
			StructName: "S",
			Fields:     []*ast.FieldDecl{field("x", named("i64"))},
			Methods: []*ast.FuncDef{{
				FuncName:   "origin",
				ReturnSpec: named("i64"),
				Body:       intLit("0"),
			}},
		}),
		itemStmt(letDecl("v", false, nil, &ast.Call{
			Fn: &ast.FieldAccess{Root: ident("S"), FieldName: "origin"},
		})),
	})
	require.Empty(t, errs)

	assert.True(t, types.Equiv(mustLookup(t, typer, "v").Type(), types.PrimI64))
}

func TestInstanceMethodCallThroughValueUnsupported(t *testing.T) {
	typer := newTestTyper()

	_, errs := typer.ResolveModule([]ast.Stmt{
		itemStmt(&ast.StructDef{
			StructName: "P",
			Fields:     []*ast.FieldDecl{field("x", named("i64"))},
			Methods: []*ast.FuncDef{{
				FuncName:   "getX",
				TakesSelf:  true,
				ReturnSpec: named("i64"),
				Body:       &ast.FieldAccess{Root: &ast.SelfLit{}, FieldName: "x"},
			}},
		}),
		itemStmt(letDecl("p", false, nil, &ast.StructLit{
			TypeName: "P",
			Inits:    []*ast.FieldInit{{FieldName: "x", Value: intLit("1")}},
		})),
		&ast.ExprStmt{Expr: &ast.Call{
			Fn: &ast.FieldAccess{Root: ident("p"), FieldName: "getX"},
		}},
	})
	require.Len(t, errs, 1)
	requireKind(t, errs[0], report.ErrUnsupportedConstruct)
}

// -----------------------------------------------------------------------------

func TestImmutableAssignCheckedBeforeRHS(t *testing.T) {
	typer := newTestTyper()

	// The right-hand side names an undefined symbol: the mutability error must
	// still win because the target is checked first.
	_, errs := typer.ResolveModule([]ast.Stmt{
		itemStmt(letDecl("x", false, named("i64"), intLit("5"))),
		&ast.AssignStmt{Op: ast.AssignEq, Lvalue: ident("x"), RHS: ident("nope")},
	})
	require.Len(t, errs, 1)
	requireKind(t, errs[0], report.ErrImmutableTarget)
}

func TestAssignToMutableVariable(t *testing.T) {
	typer := newTestTyper()

	typed, errs := typer.ResolveModule([]ast.Stmt{
		itemStmt(letDecl("x", true, named("i64"), intLit("5"))),
		&ast.AssignStmt{Op: ast.AssignEq, Lvalue: ident("x"), RHS: intLit("7")},
	})
	require.Empty(t, errs)
	require.Len(t, typed, 2)

	assert.True(t, types.IsUnit(typed[1].Type()), "an assignment statement has unit type")

	assign, ok := typed[1].Kind.(*mir.AssignStmt)
	require.True(t, ok)
	assert.Equal(t, "x", assign.Lvalue.Name())
}

func TestAssignTypeMismatch(t *testing.T) {
	typer := newTestTyper()

	_, errs := typer.ResolveModule([]ast.Stmt{
		itemStmt(letDecl("x", true, named("i64"), intLit("5"))),
		&ast.AssignStmt{Op: ast.AssignEq, Lvalue: ident("x"), RHS: boolLit("true")},
	})
	require.Len(t, errs, 1)
	requireKind(t, errs[0], report.ErrTypeMismatch)
}

func TestCompoundAssignUnsupported(t *testing.T) {
	typer := newTestTyper()

	_, errs := typer.ResolveModule([]ast.Stmt{
		itemStmt(letDecl("x", true, named("i64"), intLit("5"))),
		&ast.AssignStmt{Op: ast.AssignPlus, Lvalue: ident("x"), RHS: intLit("1")},
	})
	require.Len(t, errs, 1)
	requireKind(t, errs[0], report.ErrUnsupportedConstruct)
}

func TestUnknownFieldVsImmutableField(t *testing.T) {
	pointDef := func() ast.Stmt {
		return itemStmt(&ast.StructDef{
			StructName: "P",
			Fields:     []*ast.FieldDecl{field("x", named("i64"))},
		})
	}
	pointVal := func() ast.Stmt {
		return itemStmt(letDecl("p", false, nil, &ast.StructLit{
			TypeName: "P",
			Inits:    []*ast.FieldInit{{FieldName: "x", Value: intLit("1")}},
		}))
	}

	t.Run("UnknownField", func(t *testing.T) {
		typer := newTestTyper()

		_, errs := typer.ResolveModule([]ast.Stmt{
			pointDef(), pointVal(),
			&ast.AssignStmt{
				Op:     ast.AssignEq,
				Lvalue: &ast.FieldAccess{Root: ident("p"), FieldName: "y"},
				RHS:    intLit("2"),
			},
		})
		require.Len(t, errs, 1)
		requireKind(t, errs[0], report.ErrUndefinedSymbol)
	})

	t.Run("ImmutableField", func(t *testing.T) {
		typer := newTestTyper()

		_, errs := typer.ResolveModule([]ast.Stmt{
			pointDef(), pointVal(),
			&ast.AssignStmt{
				Op:     ast.AssignEq,
				Lvalue: &ast.FieldAccess{Root: ident("p"), FieldName: "x"},
				RHS:    intLit("2"),
			},
		})
		require.Len(t, errs, 1)
		requireKind(t, errs[0], report.ErrImmutableTarget)
	})
}

// -----------------------------------------------------------------------------

func TestDuplicateTopLevelDefinition(t *testing.T) {
	typer := newTestTyper()

	_, errs := typer.ResolveModule([]ast.Stmt{
		itemStmt(letDecl("x", false, named("i64"), intLit("1"))),
		itemStmt(letDecl("x", false, named("bool"), boolLit("true"))),
	})
	require.Len(t, errs, 1)
	requireKind(t, errs[0], report.ErrDefinition)
}

func TestMultiErrorCollection(t *testing.T) {
	typer := newTestTyper()

	// Two independently broken declarations and one sound one: both errors
	// must surface in a single run and the sound declaration must resolve.
	_, errs := typer.ResolveModule([]ast.Stmt{
		itemStmt(letDecl("a", false, named("NoSuchType"), nil)),
		itemStmt(letDecl("b", false, named("i64"), boolLit("true"))),
		itemStmt(letDecl("c", false, named("i64"), intLit("3"))),
	})
	require.Len(t, errs, 2)
	requireKind(t, errs[0], report.ErrUndefinedSymbol)
	requireKind(t, errs[1], report.ErrTypeMismatch)

	assert.True(t, mustLookup(t, typer, "c").IsResolved())
	assert.False(t, mustLookup(t, typer, "c").IsPoisoned())
}

func TestPoisonedDependencyReportedOnce(t *testing.T) {
	typer := newTestTyper()

	// `Bad` fails once; both dependents see the poisoned state and must not
	// produce further reports.
	_, errs := typer.ResolveModule([]ast.Stmt{
		itemStmt(&ast.StructDef{
			StructName: "Bad",
			Fields:     []*ast.FieldDecl{field("x", named("NoSuchType"))},
		}),
		itemStmt(letDecl("a", false, named("Bad"), nil)),
		itemStmt(letDecl("b", false, named("Bad"), nil)),
	})
	require.Len(t, errs, 1)
	requireKind(t, errs[0], report.ErrUndefinedSymbol)
}

// -----------------------------------------------------------------------------

func TestCallArity(t *testing.T) {
	typer := newTestTyper()

	_, errs := typer.ResolveModule([]ast.Stmt{
		itemStmt(&ast.FuncDef{
			FuncName: "f",
			Params:   []*ast.ParamDecl{{ParamName: "x", Spec: named("i64")}},
		}),
		&ast.ExprStmt{Expr: &ast.Call{Fn: ident("f")}},
	})
	require.Len(t, errs, 1)
	requireKind(t, errs[0], report.ErrTypeMismatch)
}

func TestCallArgumentTypes(t *testing.T) {
	typer := newTestTyper()

	_, errs := typer.ResolveModule([]ast.Stmt{
		itemStmt(&ast.FuncDef{
			FuncName: "f",
			Params:   []*ast.ParamDecl{{ParamName: "x", Spec: named("i64")}},
		}),
		&ast.ExprStmt{Expr: &ast.Call{Fn: ident("f"), Args: []ast.Expr{boolLit("true")}}},
	})
	require.Len(t, errs, 1)
	requireKind(t, errs[0], report.ErrTypeMismatch)
}

func TestBinaryOperators(t *testing.T) {
	typer := newTestTyper()

	_, errs := typer.ResolveModule([]ast.Stmt{
		itemStmt(letDecl("sum", false, named("i64"), &ast.Binary{Op: ast.OpAdd, LHS: intLit("1"), RHS: intLit("2")})),
		itemStmt(letDecl("cmp", false, named("bool"), &ast.Binary{Op: ast.OpLt, LHS: intLit("1"), RHS: intLit("2")})),
		itemStmt(letDecl("both", false, named("bool"), &ast.Binary{Op: ast.OpAnd, LHS: boolLit("true"), RHS: boolLit("false")})),
	})
	require.Empty(t, errs)
}

func TestBinaryOperatorMismatch(t *testing.T) {
	typer := newTestTyper()

	_, errs := typer.ResolveModule([]ast.Stmt{
		itemStmt(letDecl("x", false, nil, &ast.Binary{Op: ast.OpAdd, LHS: intLit("1"), RHS: boolLit("true")})),
	})
	require.Len(t, errs, 1)
	requireKind(t, errs[0], report.ErrTypeMismatch)
}

func TestLetThenAssignInFunctionBody(t *testing.T) {
	typer := newTestTyper()

	// fn f() -> i64 { let x = 5; x = 7; x }
	_, errs := typer.ResolveModule([]ast.Stmt{
		itemStmt(&ast.FuncDef{
			FuncName:   "f",
			ReturnSpec: named("i64"),
			Body: &ast.BlockExpr{
				Stmts: []ast.Stmt{
					itemStmt(letDecl("x", true, nil, intLit("5"))),
					&ast.AssignStmt{Op: ast.AssignEq, Lvalue: ident("x"), RHS: intLit("7")},
				},
				Tail: ident("x"),
			},
		}),
	})
	require.Empty(t, errs)

	f := mustLookup(t, typer, "f")
	require.NotNil(t, f.AsFunction().Body)
	assert.True(t, types.Equiv(f.AsFunction().Body.Type(), types.PrimI64))
}

func TestBlockWithoutTailIsUnit(t *testing.T) {
	typer := newTestTyper()

	_, errs := typer.ResolveModule([]ast.Stmt{
		itemStmt(&ast.FuncDef{
			FuncName: "f",
			Body: &ast.BlockExpr{
				Stmts: []ast.Stmt{
					itemStmt(letDecl("x", false, nil, intLit("5"))),
				},
			},
		}),
	})
	require.Empty(t, errs)

	f := mustLookup(t, typer, "f")
	assert.True(t, types.IsUnit(f.AsFunction().Body.Type()))
}

func TestStructLiteralMissingField(t *testing.T) {
	typer := newTestTyper()

	_, errs := typer.ResolveModule([]ast.Stmt{
		itemStmt(&ast.StructDef{
			StructName: "P",
			Fields: []*ast.FieldDecl{
				field("x", named("i64")),
				field("y", named("i64")),
			},
		}),
		itemStmt(letDecl("p", false, nil, &ast.StructLit{
			TypeName: "P",
			Inits:    []*ast.FieldInit{{FieldName: "x", Value: intLit("1")}},
		})),
	})
	require.Len(t, errs, 1)
	requireKind(t, errs[0], report.ErrDefinition)
}

func TestStructLiteralFieldDefaults(t *testing.T) {
	typer := newTestTyper()

	_, errs := typer.ResolveModule([]ast.Stmt{
		itemStmt(&ast.StructDef{
			StructName: "P",
			Fields: []*ast.FieldDecl{
				field("x", named("i64")),
				{FieldName: "y", Spec: named("i64"), Default: intLit("0")},
			},
		}),
		itemStmt(letDecl("p", false, nil, &ast.StructLit{
			TypeName: "P",
			Inits:    []*ast.FieldInit{{FieldName: "x", Value: intLit("1")}},
		})),
	})
	require.Empty(t, errs)
}

func TestParameterShadowsModuleBinding(t *testing.T) {
	typer := newTestTyper()

	// The parameter `x: bool` shadows the module-level `x: i64`.
	_, errs := typer.ResolveModule([]ast.Stmt{
		itemStmt(letDecl("x", false, named("i64"), intLit("5"))),
		itemStmt(&ast.FuncDef{
			FuncName:   "f",
			Params:     []*ast.ParamDecl{{ParamName: "x", Spec: named("bool")}},
			ReturnSpec: named("bool"),
			Body:       ident("x"),
		}),
	})
	require.Empty(t, errs)
}
