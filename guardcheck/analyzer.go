// Package guardcheck defines an analyzer that checks guarded.Ptr values are
// used within their locking contract.
package guardcheck

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
	"golang.org/x/tools/go/types/typeutil"
)

const guardedPkgPath = "github.com/mneverov/guardedptr/guarded"

const doc = `check the locking contract of guarded pointers

The guardcheck analyzer reports:
  - Get calls on a guarded.Ptr that is not locked in the enclosing function,
  - Access, Index and guard Move results that are never bound to a name, so
    the lock they hold is never released,
  - copies of guarded.Ptr, guarded.Guard and guarded.IndexGuard values.

A report is suppressed by a "//guardcheck:ignore <reason>" comment on the
same line or on the line above.`

var Analyzer = &analysis.Analyzer{
	Name:     "guardcheck",
	Doc:      doc,
	Run:      run,
	Requires: []*analysis.Analyzer{inspect.Analyzer},
}

var (
	checkGet    bool
	checkBind   bool
	checkCopies bool
)

func init() {
	Analyzer.Flags.BoolVar(&checkGet, "get", true, "report Get calls on guarded pointers that are not locked")
	Analyzer.Flags.BoolVar(&checkBind, "bind", true, "report guards that are never bound to a name")
	Analyzer.Flags.BoolVar(&checkCopies, "copies", true, "report guarded values copied by value")
}

func run(pass *analysis.Pass) (interface{}, error) {
	insp := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	rep := newReporter(pass)

	if checkGet {
		insp.Preorder([]ast.Node{(*ast.FuncDecl)(nil)}, func(n ast.Node) {
			fn := n.(*ast.FuncDecl)
			if fn.Body == nil {
				return
			}
			w := &lockWalker{info: pass.TypesInfo, rep: rep}
			w.walk(fn.Body, lockState{})
		})
	}

	if checkBind {
		insp.WithStack([]ast.Node{(*ast.CallExpr)(nil)}, func(n ast.Node, push bool, stack []ast.Node) bool {
			if push {
				checkBound(pass.TypesInfo, rep, n.(*ast.CallExpr), stack)
			}
			return true
		})
	}

	if checkCopies {
		checkCopiesIn(pass.TypesInfo, insp, rep)
	}

	return nil, nil
}

// guardedName returns the name of the guarded type t is an instance of.
func guardedName(t types.Type) (string, bool) {
	named, ok := types.Unalias(t).(*types.Named)
	if !ok {
		return "", false
	}
	obj := named.Obj()
	if obj.Pkg() == nil || obj.Pkg().Path() != guardedPkgPath {
		return "", false
	}
	switch obj.Name() {
	case "Ptr", "Guard", "IndexGuard":
		return obj.Name(), true
	}
	return "", false
}

func deref(t types.Type) types.Type {
	if p, ok := types.Unalias(t).(*types.Pointer); ok {
		return p.Elem()
	}
	return t
}

// guardedCallee returns the guarded package function or method called by
// call. recv is the receiver type name, empty for package-level functions.
func guardedCallee(info *types.Info, call *ast.CallExpr) (fn *types.Func, recv string, ok bool) {
	fn, _ = typeutil.Callee(info, call).(*types.Func)
	if fn == nil || fn.Pkg() == nil || fn.Pkg().Path() != guardedPkgPath {
		return nil, "", false
	}

	r := fn.Type().(*types.Signature).Recv()
	if r == nil {
		return fn, "", true
	}
	recv, ok = guardedName(deref(r.Type()))
	return fn, recv, ok
}

// receiver returns the receiver expression of a method call.
func receiver(call *ast.CallExpr) (ast.Expr, bool) {
	sel, ok := ast.Unparen(call.Fun).(*ast.SelectorExpr)
	if !ok {
		return nil, false
	}
	return sel.X, true
}
