package guardcheck

import (
	"go/ast"
	"go/types"
)

// lockingCall reports whether call returns a guard holding a lock, and how
// to name the call in a diagnostic.
func lockingCall(info *types.Info, call *ast.CallExpr) (string, bool) {
	fn, recv, ok := guardedCallee(info, call)
	if !ok {
		return "", false
	}

	switch {
	case recv == "" && fn.Name() == "Index":
		return "guarded.Index", true
	case recv == "Ptr" && fn.Name() == "Access",
		(recv == "Guard" || recv == "IndexGuard") && fn.Name() == "Move":
		x, ok := receiver(call)
		if !ok {
			return "", false
		}
		return types.ExprString(x) + "." + fn.Name(), true
	}
	return "", false
}

// checkBound reports a guard-returning call whose result cannot be released
// later. stack ends with call.
func checkBound(info *types.Info, rep *reporter, call *ast.CallExpr, stack []ast.Node) {
	name, ok := lockingCall(info, call)
	if !ok || len(stack) < 2 {
		return
	}
	if bound(call, stack[:len(stack)-1]) {
		return
	}
	rep.reportf(call.Pos(), "result of %s is not bound, the lock is never released", name)
}

// bound reports whether the value of call reaches a place it can be released
// from. ancestors are the enclosing nodes, innermost last.
func bound(call ast.Expr, ancestors []ast.Node) bool {
	parent := ancestors[len(ancestors)-1]

	switch p := parent.(type) {
	case *ast.ParenExpr:
		return bound(p, ancestors[:len(ancestors)-1])
	case *ast.AssignStmt:
		for i, rhs := range p.Rhs {
			if rhs == call && i < len(p.Lhs) {
				return !isBlank(p.Lhs[i])
			}
		}
		return true
	case *ast.ValueSpec:
		for i, v := range p.Values {
			if v == call && i < len(p.Names) {
				return p.Names[i].Name != "_"
			}
		}
		return true
	case *ast.CallExpr:
		// Passed on as an argument.
		return p.Fun != call
	case *ast.ReturnStmt, *ast.CompositeLit, *ast.KeyValueExpr, *ast.SendStmt:
		return true
	case *ast.SelectorExpr:
		// defer p.Access().Release() holds the lock until return.
		return p.Sel.Name == "Release" && deferred(p, ancestors[:len(ancestors)-1])
	}
	return false
}

func deferred(sel *ast.SelectorExpr, ancestors []ast.Node) bool {
	if len(ancestors) < 2 {
		return false
	}
	call, ok := ancestors[len(ancestors)-1].(*ast.CallExpr)
	if !ok || call.Fun != sel {
		return false
	}
	_, ok = ancestors[len(ancestors)-2].(*ast.DeferStmt)
	return ok
}

func isBlank(e ast.Expr) bool {
	id, ok := e.(*ast.Ident)
	return ok && id.Name == "_"
}
