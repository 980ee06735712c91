// Package failflow reports code that follows a call which never returns,
// such as the runtime's rtio.Panic. Nothing after such a call executes, so
// statements placed there are dead and usually a mistake.
package failflow

import (
	"fmt"
	"go/ast"
	"go/types"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/buildssa"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/astutil"
	"golang.org/x/tools/go/ast/inspector"
	"golang.org/x/tools/go/ssa"
	"golang.org/x/tools/go/types/typeutil"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

const doc = `report statements that follow a call which never returns

A function never returns if every path through it ends in a call to another
function that never returns, or in a panic. The seeds are the runtime's fatal
primitives (rtio.Panic, (*rtio.Console).Abort) and os.Exit, log.Fatal* and
runtime.Goexit. Results are exported as facts so callers in other packages
are checked too.`

var Analyzer = &analysis.Analyzer{
	Name:      "failflow",
	Doc:       doc,
	Requires:  []*analysis.Analyzer{buildssa.Analyzer, inspect.Analyzer},
	FactTypes: []analysis.Fact{new(noReturn)},
	Run:       run,
}

// noReturn marks a function that never returns normally.
type noReturn struct{}

func (*noReturn) AFact() {}

func (*noReturn) String() string { return "noReturn" }

var seeds = map[string]bool{
	"omibyte.io/quill/rtio.Panic":             true,
	"(*omibyte.io/quill/rtio.Console).Abort": true,
	"os.Exit":                                 true,
	"log.Fatal":                               true,
	"log.Fatalf":                              true,
	"log.Fatalln":                             true,
	"runtime.Goexit":                          true,
}

func run(pass *analysis.Pass) (any, error) {
	srcFuncs := pass.ResultOf[buildssa.Analyzer].(*buildssa.SSA).SrcFuncs
	local := solve(pass, srcFuncs)

	for fn := range local {
		if obj, ok := fn.Object().(*types.Func); ok && obj.Pkg() == pass.Pkg {
			pass.ExportObjectFact(obj, new(noReturn))
		}
	}

	localObjs := map[*types.Func]bool{}
	for fn := range local {
		if obj, ok := fn.Object().(*types.Func); ok {
			localObjs[obj] = true
		}
	}

	isNoReturn := func(call *ast.CallExpr) (*types.Func, bool) {
		callee := typeutil.StaticCallee(pass.TypesInfo, call)
		if callee == nil {
			return nil, false
		}
		return callee, localObjs[callee] || isImportedNoReturn(pass, callee)
	}

	ins := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	nodeFilter := []ast.Node{
		(*ast.BlockStmt)(nil),
		(*ast.CaseClause)(nil),
		(*ast.CommClause)(nil),
	}
	ins.Preorder(nodeFilter, func(n ast.Node) {
		// Tests call fatal primitives on purpose to check they do not return.
		if strings.HasSuffix(pass.Fset.File(n.Pos()).Name(), "_test.go") {
			return
		}

		var list []ast.Stmt
		switch n := n.(type) {
		case *ast.BlockStmt:
			list = n.List
		case *ast.CaseClause:
			list = n.Body
		case *ast.CommClause:
			list = n.Body
		}
		checkList(pass, list, isNoReturn)
	})
	return nil, nil
}

func checkList(pass *analysis.Pass, list []ast.Stmt, isNoReturn func(*ast.CallExpr) (*types.Func, bool)) {
	for i := 0; i+1 < len(list); i++ {
		expr, ok := list[i].(*ast.ExprStmt)
		if !ok {
			continue
		}
		call, ok := astutil.Unparen(expr.X).(*ast.CallExpr)
		if !ok {
			continue
		}
		callee, ok := isNoReturn(call)
		if !ok {
			continue
		}

		next := list[i+1]
		switch next.(type) {
		case *ast.EmptyStmt, *ast.LabeledStmt:
			// Labels can be reached by goto.
			continue
		}
		pass.Report(analysis.Diagnostic{
			Pos:     next.Pos(),
			End:     next.End(),
			Message: fmt.Sprintf("unreachable code: %s never returns", callee.Name()),
		})
		return
	}
}

func isImportedNoReturn(pass *analysis.Pass, fn *types.Func) bool {
	if seeds[fn.FullName()] {
		return true
	}
	if fn.Pkg() == nil || fn.Pkg() == pass.Pkg {
		return false
	}
	return pass.ImportObjectFact(fn, new(noReturn))
}

// solve returns the functions of the package that never return. Functions
// are visited one strongly connected component of the call graph at a time,
// callees first, and the whole set is iterated until it stops growing so that
// mutual recursion is resolved.
func solve(pass *analysis.Pass, funcs []*ssa.Function) map[*ssa.Function]bool {
	ids := make(map[*ssa.Function]int64, len(funcs))
	g := simple.NewDirectedGraph()
	for i, fn := range funcs {
		ids[fn] = int64(i)
		g.AddNode(simple.Node(i))
	}
	for _, fn := range funcs {
		for _, callee := range staticCallees(fn) {
			id, ok := ids[callee]
			if !ok || callee == fn {
				continue
			}
			g.SetEdge(g.NewEdge(simple.Node(ids[fn]), simple.Node(id)))
		}
	}
	sccs := topo.TarjanSCC(g)

	result := map[*ssa.Function]bool{}
	calleeNoReturn := func(callee *ssa.Function) bool {
		if result[callee] {
			return true
		}
		if _, ok := ids[callee]; ok {
			return false
		}
		obj, ok := callee.Object().(*types.Func)
		return ok && isImportedNoReturn(pass, obj)
	}

	for changed := true; changed; {
		changed = false
		for _, scc := range sccs {
			for _, node := range scc {
				fn := funcs[node.ID()]
				if result[fn] || returns(fn, calleeNoReturn) {
					continue
				}
				result[fn] = true
				changed = true
			}
		}
	}
	return result
}

func staticCallees(fn *ssa.Function) []*ssa.Function {
	var callees []*ssa.Function
	for _, b := range fn.Blocks {
		for _, instr := range b.Instrs {
			if call, ok := instr.(*ssa.Call); ok {
				if callee := call.Common().StaticCallee(); callee != nil {
					callees = append(callees, callee)
				}
			}
		}
	}
	return callees
}

// returns reports whether a Return instruction of fn is reachable from its
// entry. Blocks that call a function that never returns end the path there.
func returns(fn *ssa.Function, noReturn func(*ssa.Function) bool) bool {
	if len(fn.Blocks) == 0 || (fn.Recover != nil && defersRecover(fn)) {
		// External, or may return through a deferred recover.
		return true
	}

	visited := make([]bool, len(fn.Blocks))
	stack := []*ssa.BasicBlock{fn.Blocks[0]}
	visited[0] = true
	for len(stack) > 0 {
		b := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if blockEndsPath(b, noReturn) {
			continue
		}
		if _, ok := b.Instrs[len(b.Instrs)-1].(*ssa.Return); ok {
			return true
		}
		for _, succ := range b.Succs {
			if !visited[succ.Index] {
				visited[succ.Index] = true
				stack = append(stack, succ)
			}
		}
	}
	return false
}

// defersRecover reports whether fn defers a call that may recover a panic.
// A deferred call whose callee is not known statically is assumed to.
func defersRecover(fn *ssa.Function) bool {
	for _, b := range fn.Blocks {
		for _, instr := range b.Instrs {
			d, ok := instr.(*ssa.Defer)
			if !ok {
				continue
			}
			callee := d.Common().StaticCallee()
			if callee == nil || callsRecover(callee) {
				return true
			}
		}
	}
	return false
}

func callsRecover(fn *ssa.Function) bool {
	if len(fn.Blocks) == 0 {
		return false
	}
	for _, b := range fn.Blocks {
		for _, instr := range b.Instrs {
			call, ok := instr.(*ssa.Call)
			if !ok {
				continue
			}
			if builtin, ok := call.Common().Value.(*ssa.Builtin); ok && builtin.Name() == "recover" {
				return true
			}
		}
	}
	return false
}

func blockEndsPath(b *ssa.BasicBlock, noReturn func(*ssa.Function) bool) bool {
	for _, instr := range b.Instrs {
		call, ok := instr.(*ssa.Call)
		if !ok {
			continue
		}
		if callee := call.Common().StaticCallee(); callee != nil && noReturn(callee) {
			return true
		}
	}
	return false
}
