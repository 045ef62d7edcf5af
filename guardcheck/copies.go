package guardcheck

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/ast/inspector"
)

func checkCopiesIn(info *types.Info, insp *inspector.Inspector, rep *reporter) {
	nodeFilter := []ast.Node{
		(*ast.AssignStmt)(nil),
		(*ast.ValueSpec)(nil),
		(*ast.CallExpr)(nil),
		(*ast.ReturnStmt)(nil),
		(*ast.FuncType)(nil),
		(*ast.RangeStmt)(nil),
	}

	insp.Preorder(nodeFilter, func(n ast.Node) {
		switch n := n.(type) {
		case *ast.AssignStmt:
			checkCopy(info, rep, n.Rhs...)
		case *ast.ValueSpec:
			checkCopy(info, rep, n.Values...)
		case *ast.CallExpr:
			if tv, ok := info.Types[n.Fun]; ok && tv.IsType() {
				return // conversion
			}
			checkCopy(info, rep, n.Args...)
		case *ast.ReturnStmt:
			checkCopy(info, rep, n.Results...)
		case *ast.FuncType:
			checkParams(info, rep, n.Params)
		case *ast.RangeStmt:
			checkRangeValue(info, rep, n)
		}
	})
}

// checkCopy reports expressions that copy an existing guarded value.
func checkCopy(info *types.Info, rep *reporter, exprs ...ast.Expr) {
	for _, e := range exprs {
		switch ast.Unparen(e).(type) {
		case *ast.CompositeLit, *ast.CallExpr:
			continue // a new value, not a copy
		}

		tv, ok := info.Types[e]
		if !ok || !tv.IsValue() {
			continue
		}
		if name, ok := guardedName(tv.Type); ok {
			rep.reportf(e.Pos(), "%s copies guarded.%s by value, use Move", types.ExprString(e), name)
		}
	}
}

func checkParams(info *types.Info, rep *reporter, params *ast.FieldList) {
	if params == nil {
		return
	}
	for _, field := range params.List {
		name, ok := guardedName(info.TypeOf(field.Type))
		if !ok {
			continue
		}
		if len(field.Names) == 0 {
			rep.reportf(field.Pos(), "parameter passes guarded.%s by value, use a pointer", name)
			continue
		}
		for _, id := range field.Names {
			rep.reportf(id.Pos(), "parameter %s passes guarded.%s by value, use a pointer", id.Name, name)
		}
	}
}

// checkRangeValue reports a range loop that copies each guarded element into
// its value variable.
func checkRangeValue(info *types.Info, rep *reporter, r *ast.RangeStmt) {
	if r.Value == nil || isBlank(r.Value) {
		return
	}
	if name, ok := guardedName(info.TypeOf(r.Value)); ok {
		rep.reportf(r.Value.Pos(), "%s copies guarded.%s by value, use Move", types.ExprString(r.Value), name)
	}
}
