package a

import (
	"unsafe"

	"github.com/codewandler/clstr-msg/core/tuple"
)

type myInt int

type point struct{ X, Y int }

type withPtr struct {
	Name string
	P    *int
}

type grid [2][2]point

type handler func(tuple.Tuple1[[]byte]) error // want `\[\]byte \(slot 0\): slice`

func legalUses() {
	_ = tuple.New2(1, "a")
	_ = tuple.New2(point{}, grid{})
	_ = tuple.New1(tuple.New2(1, "a"))
	_ = tuple.Make1[tuple.Message]()
	_, _ = tuple.As1[myInt](tuple.Message{})
}

func illegalUses() {
	x := 1
	_ = tuple.New2(1, &x) // want `illegal tuple element type \*int \(slot 1\): pointer`

	var _ tuple.Tuple1[[]int] // want `illegal tuple element type \[\]int \(slot 0\): slice`

	_ = tuple.Make1[withPtr]() // want `illegal tuple element type a.withPtr \(slot 0\): field P: pointer`

	_ = tuple.Make1[[2]map[string]int]() // want `array element: map`

	_ = tuple.Make1[any]() // want `\(slot 0\): interface`

	_ = tuple.Make1[unsafe.Pointer]() // want `unsafe pointer`

	_, _ = tuple.As1[chan int](tuple.Message{}) // want `channel`
}

func generic[T any](v T) tuple.Tuple1[T] {
	return tuple.New1(v)
}

func comparisons() {
	_ = tuple.EqualTo1(tuple.New1(1), tuple.New1(myInt(1)))
	_ = tuple.EqualTo1(tuple.New1(tuple.New1(1)), tuple.New1(tuple.New1(myInt(2))))
	_ = tuple.EqualTo1(tuple.New1(tuple.New1(1)), tuple.New1(tuple.New1(1).Message()))

	_ = tuple.EqualTo1(tuple.New1(tuple.New1(1)), tuple.New1(tuple.New1("a"))) // want `EqualTo1: slot 0: tuple.Tuple1\[int\] is not comparable with tuple.Tuple1\[string\]`
	_ = tuple.EqualTo1(tuple.New1(tuple.New1(1)), tuple.New1(tuple.New2(1, 2))) // want `tuple.Tuple1\[int\] is not comparable with tuple.Tuple2\[int, int\]`

	_ = tuple.EqualTo1(tuple.New1(1), tuple.New1("s")) // want `EqualTo1: slot 0: int is not comparable with string`

	_ = tuple.EqualTo2(tuple.New2(1, point{}), tuple.New2(2, 3)) // want `EqualTo2: slot 1: a.point is not comparable with int`

	_ = tuple.EqualTo1(tuple.New1(int64(1)), tuple.New1(1)) // want `int64 is not comparable with int`

	p := tuple.New1(point{})
	_ = p.Equal(p)
	_ = generic(1).Equal(generic(2))
}

func nonComparableEqual(t tuple.Tuple1[func()]) { // want `func\(\) \(slot 0\): func`
	_ = t.Equal(t) // want `Equal: slot 0 of type func\(\) is not comparable`
}
