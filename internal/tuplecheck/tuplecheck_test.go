package tuplecheck

import (
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/tools/go/analysis/analysistest"
)

func TestAnalyzer(t *testing.T) {
	analysistest.Run(t, analysistest.TestData(), Analyzer, "a")
}

func TestLegal(t *testing.T) {
	intT := types.Typ[types.Int]
	strT := types.Typ[types.String]

	require.NoError(t, legal(intT))
	require.NoError(t, legal(types.NewArray(strT, 3)))
	require.NoError(t, legal(types.NewStruct([]*types.Var{
		types.NewField(0, nil, "A", intT, false),
		types.NewField(0, nil, "_", types.NewPointer(intT), false),
	}, nil)))

	require.ErrorContains(t, legal(types.NewPointer(intT)), "pointer")
	require.ErrorContains(t, legal(types.NewSlice(intT)), "slice")
	require.ErrorContains(t, legal(types.NewMap(strT, intT)), "map")
	require.ErrorContains(t, legal(types.NewChan(types.SendRecv, intT)), "channel")
	require.ErrorContains(t, legal(types.NewInterfaceType(nil, nil)), "interface")
	require.ErrorContains(t, legal(types.NewArray(types.NewSlice(intT), 1)), "array element: slice")
}

func TestComparablePair(t *testing.T) {
	intT := types.Typ[types.Int]
	pkg := types.NewPackage("example.com/a", "a")
	myInt := types.NewNamed(types.NewTypeName(0, pkg, "myInt", nil), intT, nil)

	require.True(t, comparablePair(intT, intT))
	require.True(t, comparablePair(intT, myInt))
	require.True(t, comparablePair(myInt, intT))
	require.False(t, comparablePair(intT, types.Typ[types.Int64]))
	require.False(t, comparablePair(intT, types.Typ[types.String]))
	require.False(t, comparablePair(types.NewSlice(intT), types.NewSlice(intT)))
}

const nestedSrc = `package tuple

type Tuple1[A any] struct{}

func (Tuple1[A]) EqualAny(any) bool { return false }

type Tuple2[A, B any] struct{}

func (Tuple2[A, B]) EqualAny(any) bool { return false }

type myInt int

var (
	ofInt       Tuple1[int]
	ofMyInt     Tuple1[myInt]
	ofString    Tuple1[string]
	ofPair      Tuple2[int, int]
	nestedInt   Tuple1[Tuple1[int]]
	nestedStr   Tuple1[Tuple1[string]]
	nestedMyInt Tuple1[Tuple1[myInt]]
)
`

func TestComparablePair_nested_tuples(t *testing.T) {
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, "tuple.go", nestedSrc, 0)
	require.NoError(t, err)
	pkg, err := new(types.Config).Check(tuplePkg, fset, []*ast.File{f}, nil)
	require.NoError(t, err)
	typ := func(name string) types.Type { return pkg.Scope().Lookup(name).Type() }

	require.True(t, comparablePair(typ("ofInt"), typ("ofMyInt")))
	require.True(t, comparablePair(typ("nestedInt"), typ("nestedMyInt")))
	require.False(t, comparablePair(typ("ofInt"), typ("ofString")))
	require.False(t, comparablePair(typ("nestedInt"), typ("nestedStr")))
	require.False(t, comparablePair(typ("ofInt"), typ("ofPair")))
	require.False(t, comparablePair(typ("ofInt"), types.Typ[types.Int]))
}
