package tuple

import (
	"encoding/json"
	"runtime"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type myInt int

type point struct{ X, Y int }

func TestTuple_construct(t *testing.T) {
	tp := New2(42, "hi")
	require.Equal(t, 2, tp.Size())
	require.Equal(t, 42, tp.Get0())
	require.Equal(t, "hi", tp.Get1())
	require.Equal(t, `(42, "hi")`, tp.String())
}

func TestTuple_size(t *testing.T) {
	require.Equal(t, 1, New1("x").Size())
	require.Equal(t, 2, New2(1, 2).Size())
	require.Equal(t, 3, New3(1, "b", point{1, 2}).Size())
	require.Equal(t, 4, New4(1, "b", 3.5, true).Size())
	require.Equal(t, 4, Make4[int, int, int, int]().Size())
}

func TestTuple_get(t *testing.T) {
	inner := New2(1, "a")
	tp := New4(uint8(7), "s", point{X: 1, Y: 2}, inner)

	require.Equal(t, uint8(7), tp.Get0())
	require.Equal(t, "s", tp.Get1())
	require.Equal(t, point{X: 1, Y: 2}, tp.Get2())
	require.True(t, tp.Get3().Equal(inner))
	require.Equal(t, 1, tp.Get3().Get0())
}

func TestTuple_default(t *testing.T) {
	tp := Make3[int, string, point]()
	require.Equal(t, 0, tp.Get0())
	require.Equal(t, "", tp.Get1())
	require.Equal(t, point{}, tp.Get2())

	// the zero value reads like a default-constructed tuple
	var zero Tuple2[int, string]
	require.Equal(t, 2, zero.Size())
	require.Equal(t, 0, zero.Get0())
	require.True(t, zero.Equal(Make2[int, string]()))

	zero.Set1("set")
	require.Equal(t, "set", zero.Get1())
}

func TestTuple_descriptors(t *testing.T) {
	tp := New2(42, "hi")
	m := tp.Message()

	require.True(t, m.DescriptorAt(0).IsIntegral())
	require.True(t, m.DescriptorAt(1).IsString())
	require.Equal(t, "int", tp.DescriptorAt(0).Name)
	require.Equal(t, "string", tp.DescriptorAt(1).Name)
	require.Equal(t, "(int,string)", m.TypeName())
}

func TestTuple_copy_on_write(t *testing.T) {
	t1 := New2(42, "hi")
	t2 := t1.Share()
	require.Same(t, t1.c, t2.c)

	t2.Set0(7)

	require.Equal(t, 42, t1.Get0())
	require.Equal(t, 7, t2.Get0())
	require.Equal(t, "hi", t2.Get1())
	require.NotSame(t, t1.c, t2.c)
	require.EqualValues(t, 1, t1.c.refs.Load())
	require.EqualValues(t, 1, t2.c.refs.Load())
}

func TestTuple_assignment_keeps_snapshot(t *testing.T) {
	t1 := New2(42, "hi")
	t2 := t1
	t2.Set0(7)

	require.Equal(t, 42, t1.Get0())
	require.Equal(t, 7, t2.Get0())
	require.Equal(t, "hi", t1.Get1())
	require.Equal(t, "hi", t2.Get1())
}

func TestTuple_set_never_writes_published_cell(t *testing.T) {
	tp := New2(1, "a")
	c := tp.c
	tp.Set0(2)
	require.NotSame(t, c, tp.c)
	require.Equal(t, 1, c.data.v0)
	require.Equal(t, 2, tp.Get0())

	// a second write on the now private cell still leaves earlier copies alone
	snap := tp
	tp.Set1("b")
	require.Equal(t, "a", snap.Get1())
	require.Equal(t, "b", tp.Get1())
}

func TestTuple_release_floor(t *testing.T) {
	t1 := New1(1)
	c := t1.c
	t2 := t1
	t1.Release()
	t2.Release()
	require.EqualValues(t, 0, c.refs.Load())
	require.Equal(t, 0, t1.Get0())
	require.Equal(t, 0, t2.Get0())
}

func TestTuple_refcount(t *testing.T) {
	t1 := New2(1, "a")
	c := t1.c
	require.EqualValues(t, 1, c.refs.Load())

	t2 := t1.Share()
	m := t1.Message()
	require.EqualValues(t, 3, c.refs.Load())

	t2.Release()
	m.Release()
	require.EqualValues(t, 1, c.refs.Load())
	require.True(t, m.IsZero())
	require.Equal(t, 0, t2.Get0())

	// releasing twice is harmless
	t2.Release()
	require.EqualValues(t, 1, c.refs.Load())
	runtime.KeepAlive(t1)
}

func TestTuple_message_keeps_snapshot(t *testing.T) {
	tp := New2(42, "hi")
	m := tp.Message()

	tp.Set0(1)

	require.Equal(t, 42, m.At(0))
	require.Equal(t, 1, tp.Get0())
}

func TestTuple_nested_isolation(t *testing.T) {
	inner := New2(1, "a")
	outer := New2(inner, 5)

	inner.Set0(100)
	require.Equal(t, 1, outer.Get0().Get0())

	in := outer.Get0()
	in.Set0(9)
	require.Equal(t, 1, outer.Get0().Get0())
	require.Equal(t, 9, in.Get0())

	o2 := outer.Share()
	o2.Set0(New2(2, "b"))
	require.Equal(t, 1, outer.Get0().Get0())
	require.Equal(t, 2, o2.Get0().Get0())
}

func TestTuple_equality(t *testing.T) {
	a := New2(42, "hi")
	b := New2(42, "hi")
	c := New2(42, "ho")

	// reflexive
	require.True(t, a.Equal(a))
	require.True(t, Equal2(a, a))

	// symmetric
	require.Equal(t, a.Equal(b), b.Equal(a))
	require.Equal(t, a.Equal(c), c.Equal(a))
	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c))
	require.True(t, Equal2(a, b))
	require.False(t, Equal2(a, c))

	// first slot mismatch short-circuits
	require.False(t, New2(1, "x").Equal(New2(2, "x")))

	// nested tuples compare structurally
	n1 := New2(New2(1, "a"), point{1, 2})
	n2 := New2(New2(1, "a"), point{1, 2})
	n3 := New2(New2(2, "a"), point{1, 2})
	require.True(t, n1.Equal(n2))
	require.False(t, n1.Equal(n3))
}

func TestTuple_equal_across_declared_types(t *testing.T) {
	a := New2(42, "hi")
	b := New2(myInt(42), "hi")
	c := New2(myInt(7), "hi")

	require.True(t, EqualTo2(a, b))
	require.True(t, EqualTo2(b, a))
	require.False(t, EqualTo2(a, c))

	// not pairwise comparable at run time
	require.False(t, EqualTo2(New2(int64(42), "hi"), a))
}

func TestTuple_json(t *testing.T) {
	tp := New3(42, "hi", New1(point{X: 1}))
	b, err := json.Marshal(tp)
	require.NoError(t, err)
	require.JSONEq(t, `[42,"hi",[{"X":1,"Y":0}]]`, string(b))

	var out Tuple3[int, string, Tuple1[point]]
	require.NoError(t, json.Unmarshal(b, &out))
	require.True(t, out.Equal(tp))

	var short Tuple4[int, int, int, int]
	require.ErrorIs(t, json.Unmarshal([]byte(`[1,2]`), &short), ErrArity)

	var bad Tuple1[int]
	require.ErrorContains(t, json.Unmarshal([]byte(`["x"]`), &bad), "decode slot 0")
}

func TestTuple_concurrent_share(t *testing.T) {
	tp := New2(42, "hi")
	c := tp.c

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func(own Tuple2[int, string]) {
			defer wg.Done()
			for i := range 100 {
				s := own.Share()
				assert.Equal(t, 42, s.Get0())
				if i%2 == 0 {
					s.Set0(i)
					assert.Equal(t, i, s.Get0())
				}
				s.Release()
			}
			own.Release()
		}(tp.Share())
	}
	wg.Wait()

	require.Equal(t, 42, tp.Get0())
	require.EqualValues(t, 1, c.refs.Load())
	runtime.KeepAlive(tp)
}

func TestTuple_wide(t *testing.T) {
	tp := New8(1, "b", 3.0, true, myInt(5), point{X: 6}, uint8(7), New1("h"))
	require.Equal(t, 8, tp.Size())
	require.Equal(t, "h", tp.Get7().Get0())

	cp := tp
	cp.Set4(50)
	require.Equal(t, myInt(5), tp.Get4())
	require.Equal(t, myInt(50), cp.Get4())

	back, ok := As8[int, string, float64, bool, myInt, point, uint8, Tuple1[string]](tp.Message())
	require.True(t, ok)
	require.True(t, back.Equal(tp))
}
