package guardcheck

import (
	"go/ast"
	"go/types"
)

// lockState holds the guarded pointers known to be locked, keyed by the
// printed receiver expression.
type lockState map[string]bool

// with returns a copy of s that also has key locked. An empty key only copies.
func (s lockState) with(key string) lockState {
	c := make(lockState, len(s)+1)
	for k, v := range s {
		c[k] = v
	}
	if key != "" {
		c[key] = true
	}
	return c
}

// lockWalker follows Lock and Unlock calls in source order and reports Get
// calls made while the pointer is not locked. Branches are not told apart.
type lockWalker struct {
	info *types.Info
	rep  *reporter
}

func (w *lockWalker) walk(body ast.Node, state lockState) {
	// Locks whose Unlock is deferred in this body. They are still held when
	// deferred literals registered after that Unlock run.
	held := lockState{}

	ast.Inspect(body, func(n ast.Node) bool {
		switch n := n.(type) {
		case *ast.FuncLit:
			// A literal sees the locks held where it is defined. Locks taken
			// inside it stay inside.
			w.walk(n.Body, state.with(""))
			return false
		case *ast.GoStmt:
			// The new goroutine holds none of the caller's locks.
			if lit, ok := ast.Unparen(n.Call.Fun).(*ast.FuncLit); ok {
				w.walkArgs(n.Call, state)
				w.walk(lit.Body, lockState{})
				return false
			}
		case *ast.DeferStmt:
			// Deferred Lock and Unlock run on return.
			if fn, recv, ok := guardedCallee(w.info, n.Call); ok && recv == "Ptr" {
				switch fn.Name() {
				case "Unlock":
					if x, ok := receiver(n.Call); ok && state[types.ExprString(x)] {
						held[types.ExprString(x)] = true
					}
					return false
				case "Lock":
					return false
				}
			}
			// A deferred literal runs on return, after any later Unlock.
			if lit, ok := ast.Unparen(n.Call.Fun).(*ast.FuncLit); ok {
				w.walkArgs(n.Call, state)
				w.walk(lit.Body, held.with(""))
				return false
			}
		case *ast.CallExpr:
			return w.call(n, state)
		}
		return true
	})
}

// walkArgs walks the arguments of call, which are evaluated immediately.
func (w *lockWalker) walkArgs(call *ast.CallExpr, state lockState) {
	for _, arg := range call.Args {
		w.walk(arg, state)
	}
}

func (w *lockWalker) call(call *ast.CallExpr, state lockState) bool {
	fn, recv, ok := guardedCallee(w.info, call)
	if !ok {
		return true
	}

	if recv == "" {
		// Call(p, f) runs f under p's lock.
		if fn.Name() == "Call" && len(call.Args) == 2 {
			w.walk(call.Args[0], state)
			w.walkLocked(call.Args[1], state, types.ExprString(call.Args[0]))
			return false
		}
		return true
	}
	if recv != "Ptr" {
		return true
	}

	x, ok := receiver(call)
	if !ok {
		return true
	}
	key := types.ExprString(x)

	switch fn.Name() {
	case "Lock":
		state[key] = true
	case "Unlock":
		delete(state, key)
	case "Get":
		if !state[key] {
			w.rep.reportf(call.Pos(), "unprotected access to %s.Get, use %s.Lock()", key, key)
		}
	case "Do":
		for _, arg := range call.Args {
			w.walkLocked(arg, state, key)
		}
		return false
	}
	return true
}

// walkLocked walks n with key locked if n is a function literal.
func (w *lockWalker) walkLocked(n ast.Expr, state lockState, key string) {
	if lit, ok := ast.Unparen(n).(*ast.FuncLit); ok {
		w.walk(lit.Body, state.with(key))
		return
	}
	w.walk(n, state)
}
