// Package viewretain reports strview.String values kept beyond the call that
// received them. A view borrows memory owned by its caller and is only valid
// while that call runs.
package viewretain

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

const doc = `report strview.String values retained beyond a call

A strview.String must not be stored in a struct field, a package-level
variable or a map, and must not be sent on a channel.`

const (
	viewPkg  = "omibyte.io/quill/strview"
	viewName = "String"
)

var Analyzer = &analysis.Analyzer{
	Name:     "viewretain",
	Doc:      doc,
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

func run(pass *analysis.Pass) (any, error) {
	// The view's own package is allowed to hold one.
	if pass.Pkg.Path() == viewPkg {
		return nil, nil
	}

	ins := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	nodeFilter := []ast.Node{
		(*ast.StructType)(nil),
		(*ast.ValueSpec)(nil),
		(*ast.AssignStmt)(nil),
		(*ast.SendStmt)(nil),
	}
	ins.Preorder(nodeFilter, func(n ast.Node) {
		switch n := n.(type) {
		case *ast.StructType:
			for _, field := range n.Fields.List {
				if isView(pass.TypesInfo.TypeOf(field.Type)) {
					pass.Reportf(field.Pos(), "struct field of type strview.String retains a borrowed view")
				}
			}
		case *ast.ValueSpec:
			for _, name := range n.Names {
				v, ok := pass.TypesInfo.Defs[name].(*types.Var)
				if ok && isPackageLevel(v) && isView(v.Type()) {
					pass.Reportf(name.Pos(), "package-level variable %s retains a borrowed view", name.Name)
				}
			}
		case *ast.AssignStmt:
			if len(n.Lhs) != len(n.Rhs) {
				return
			}
			for i, rhs := range n.Rhs {
				if !isView(pass.TypesInfo.TypeOf(rhs)) {
					continue
				}
				if where, ok := retainingLocation(pass, n.Lhs[i]); ok {
					pass.Reportf(rhs.Pos(), "strview.String stored in %s outlives the call", where)
				}
			}
		case *ast.SendStmt:
			if isView(pass.TypesInfo.TypeOf(n.Value)) {
				pass.Reportf(n.Value.Pos(), "strview.String sent on a channel outlives the call")
			}
		}
	})
	return nil, nil
}

// retainingLocation reports whether assigning to lhs keeps the value past the
// current call, and names the location.
func retainingLocation(pass *analysis.Pass, lhs ast.Expr) (string, bool) {
	switch lhs := lhs.(type) {
	case *ast.Ident:
		v, ok := pass.TypesInfo.Uses[lhs].(*types.Var)
		if ok && isPackageLevel(v) && !isView(v.Type()) {
			// Declarations of view-typed variables are already reported.
			return "package-level variable " + lhs.Name, true
		}
	case *ast.SelectorExpr:
		if sel, ok := pass.TypesInfo.Selections[lhs]; ok && sel.Kind() == types.FieldVal {
			return "field " + lhs.Sel.Name, true
		}
		// Qualified package-level variable of another package.
		if v, ok := pass.TypesInfo.Uses[lhs.Sel].(*types.Var); ok && !v.IsField() {
			return "package-level variable " + lhs.Sel.Name, true
		}
	case *ast.IndexExpr:
		if _, ok := pass.TypesInfo.TypeOf(lhs.X).Underlying().(*types.Map); ok {
			return "a map", true
		}
	}
	return "", false
}

func isPackageLevel(v *types.Var) bool {
	return v.Pkg() != nil && v.Parent() == v.Pkg().Scope()
}

func isView(t types.Type) bool {
	if t == nil {
		return false
	}
	if ptr, ok := t.(*types.Pointer); ok {
		t = ptr.Elem()
	}
	named, ok := t.(*types.Named)
	if !ok {
		return false
	}
	obj := named.Obj()
	return obj.Pkg() != nil && obj.Pkg().Path() == viewPkg && obj.Name() == viewName
}
