package tuple

type Tuple1[A any] struct {
	_  [0]func()
	v0 A
}

type Tuple2[A, B any] struct {
	_  [0]func()
	v0 A
	v1 B
}

type Message struct {
	_ [0]func()
}

func New1[A any](a A) Tuple1[A] {
	return Tuple1[A]{v0: a}
}

func New2[A, B any](a A, b B) Tuple2[A, B] {
	return Tuple2[A, B]{v0: a, v1: b}
}

func Make1[A any]() Tuple1[A] {
	return Tuple1[A]{}
}

func As1[A any](m Message) (Tuple1[A], bool) {
	return Tuple1[A]{}, false
}

func EqualTo1[A1, A2 any](x Tuple1[A1], y Tuple1[A2]) bool {
	return false
}

func EqualTo2[A1, B1, A2, B2 any](x Tuple2[A1, B1], y Tuple2[A2, B2]) bool {
	return false
}

func (t Tuple1[A]) Equal(o Tuple1[A]) bool {
	return false
}

func (t Tuple1[A]) EqualAny(o any) bool {
	return false
}

func (t Tuple1[A]) Message() Message {
	return Message{}
}

func (t Tuple2[A, B]) Equal(o Tuple2[A, B]) bool {
	return false
}

func (t Tuple2[A, B]) EqualAny(o any) bool {
	return false
}

func (m Message) EqualAny(o any) bool {
	return false
}
