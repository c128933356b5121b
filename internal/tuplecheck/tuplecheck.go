// Package tuplecheck reports tuple uses the type checker accepts but the
// tuple package cannot support:
//
//   - instantiating a tuple with an element type that holds a pointer, slice,
//     map, channel, func or interface, at any depth of arrays and structs;
//   - EqualToN calls whose slot pairs cannot be compared;
//   - Equal method calls on tuples with a slot that is not comparable.
//
// Run it as a vet tool:
//
//	go vet -vettool=$(which tuplecheck) ./...
package tuplecheck

import (
	"fmt"
	"go/ast"
	"go/types"
	"regexp"
	"strconv"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

const defaultTuplePkg = "github.com/codewandler/clstr-msg/core/tuple"

var Analyzer = &analysis.Analyzer{
	Name:     "tuplecheck",
	Doc:      "check tuple element types and tuple comparisons",
	URL:      "https://pkg.go.dev/github.com/codewandler/clstr-msg/internal/tuplecheck",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

var tuplePkg string

func init() {
	Analyzer.Flags.StringVar(&tuplePkg, "pkg", defaultTuplePkg, "import path of the tuple package")
}

var (
	tupleName   = regexp.MustCompile(`^Tuple([1-9])$`)
	equalToName = regexp.MustCompile(`^EqualTo([1-9])$`)
)

func run(pass *analysis.Pass) (any, error) {
	c := &checker{pass: pass, reported: map[string]bool{}}

	for id, inst := range pass.TypesInfo.Instances {
		obj := pass.TypesInfo.Uses[id]
		if obj == nil {
			obj = pass.TypesInfo.Defs[id]
		}
		if obj != nil && isTuplePkg(obj.Pkg()) && equalToName.MatchString(obj.Name()) {
			c.checkEqualTo(id, obj.Name(), inst)
		}
		c.walk(inst.Type, map[types.Type]bool{}, func(n *types.Named) {
			c.checkElements(id, n)
		})
	}

	ins := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	ins.Preorder([]ast.Node{(*ast.CallExpr)(nil)}, func(n ast.Node) {
		c.checkEqualCall(n.(*ast.CallExpr))
	})

	return nil, nil
}

type checker struct {
	pass     *analysis.Pass
	reported map[string]bool
}

func (c *checker) report(n ast.Node, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	key := strconv.Itoa(int(n.Pos())) + msg
	if c.reported[key] {
		return
	}
	c.reported[key] = true
	c.pass.Reportf(n.Pos(), "%s", msg)
}

func (c *checker) typeString(t types.Type) string {
	return types.TypeString(t, func(p *types.Package) string { return p.Name() })
}

// checkElements reports illegal element types of one tuple instantiation.
func (c *checker) checkElements(at ast.Node, n *types.Named) {
	args := n.TypeArgs()
	for i := range args.Len() {
		if err := legal(args.At(i)); err != nil {
			c.report(at, "illegal tuple element type %s (slot %d): %v", c.typeString(args.At(i)), i, err)
		}
	}
}

func (c *checker) checkEqualTo(at ast.Node, name string, inst types.Instance) {
	args := inst.TypeArgs
	if args == nil || args.Len()%2 != 0 {
		return
	}
	n := args.Len() / 2
	for i := range n {
		a, b := args.At(i), args.At(n+i)
		if !comparablePair(a, b) {
			c.report(at, "%s: slot %d: %s is not comparable with %s", name, i, c.typeString(a), c.typeString(b))
		}
	}
}

func (c *checker) checkEqualCall(call *ast.CallExpr) {
	fun, ok := call.Fun.(*ast.SelectorExpr)
	if !ok || fun.Sel.Name != "Equal" {
		return
	}
	sel := c.pass.TypesInfo.Selections[fun]
	if sel == nil || sel.Kind() != types.MethodVal {
		return
	}
	recv := sel.Recv()
	if p, ok := recv.Underlying().(*types.Pointer); ok {
		recv = p.Elem()
	}
	n, ok := types.Unalias(recv).(*types.Named)
	if !ok || !isTuple(n) {
		return
	}
	args := n.TypeArgs()
	for i := range args.Len() {
		if t := args.At(i); !comparablePair(t, t) {
			c.report(fun.Sel, "Equal: slot %d of type %s is not comparable", i, c.typeString(t))
		}
	}
}

// walk calls fn for every tuple instantiation reachable from t without
// looking through named types.
func (c *checker) walk(t types.Type, seen map[types.Type]bool, fn func(*types.Named)) {
	if t == nil || seen[t] {
		return
	}
	seen[t] = true

	switch t := types.Unalias(t).(type) {
	case *types.Named:
		if isTuple(t) {
			fn(t)
		}
		args := t.TypeArgs()
		for i := range args.Len() {
			c.walk(args.At(i), seen, fn)
		}
	case *types.Pointer:
		c.walk(t.Elem(), seen, fn)
	case *types.Slice:
		c.walk(t.Elem(), seen, fn)
	case *types.Array:
		c.walk(t.Elem(), seen, fn)
	case *types.Map:
		c.walk(t.Key(), seen, fn)
		c.walk(t.Elem(), seen, fn)
	case *types.Chan:
		c.walk(t.Elem(), seen, fn)
	case *types.Signature:
		c.walk(t.Params(), seen, fn)
		c.walk(t.Results(), seen, fn)
	case *types.Tuple:
		for i := range t.Len() {
			c.walk(t.At(i).Type(), seen, fn)
		}
	case *types.Struct:
		for i := range t.NumFields() {
			c.walk(t.Field(i).Type(), seen, fn)
		}
	}
}

func isTuplePkg(p *types.Package) bool { return p != nil && p.Path() == tuplePkg }

func isTuple(n *types.Named) bool {
	obj := n.Obj()
	return isTuplePkg(obj.Pkg()) && tupleName.MatchString(obj.Name())
}
