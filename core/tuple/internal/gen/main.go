// Command gen writes tuple.go: one TupleN type with its constructors,
// accessors and conversions for every supported arity.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"log/slog"
	"os"
	"strings"
)

const maxArity = 8

var words = []string{"", "one", "two", "three", "four", "five", "six", "seven", "eight"}

type arity struct {
	n     int
	upper []string
	lower []string
}

func newArity(n int) arity {
	a := arity{n: n}
	for i := range n {
		a.upper = append(a.upper, string(rune('A'+i)))
		a.lower = append(a.lower, string(rune('a'+i)))
	}
	return a
}

func (a arity) params() string { return strings.Join(a.upper, ", ") }
func (a arity) tuple() string  { return fmt.Sprintf("Tuple%d[%s]", a.n, a.params()) }
func (a arity) slots() string  { return fmt.Sprintf("slots%d[%s]", a.n, a.params()) }

func (a arity) suffixed(s string) string {
	out := make([]string, a.n)
	for i, u := range a.upper {
		out[i] = u + s
	}
	return strings.Join(out, ", ")
}

type writer struct{ bytes.Buffer }

func (w *writer) line(format string, args ...any) {
	fmt.Fprintf(w, format, args...)
	w.WriteByte('\n')
}

func main() {
	out := flag.String("o", "tuple.go", "output file")
	flag.Parse()

	var w writer
	w.line("// Code generated by go run ./internal/gen; DO NOT EDIT.")
	w.line("")
	w.line("package tuple")
	w.line("")
	w.line("import (")
	w.line("\t\"encoding/json\"")
	w.line("")
	w.line("\t\"github.com/codewandler/clstr-msg/core/reflector\"")
	w.line(")")
	for n := 1; n <= maxArity; n++ {
		w.line("")
		emit(&w, newArity(n))
	}

	src, err := format.Source(w.Bytes())
	if err != nil {
		slog.Error("format generated source", slog.Any("error", err))
		os.Exit(1)
	}
	if err := os.WriteFile(*out, src, 0o644); err != nil {
		slog.Error("write generated source", slog.String("file", *out), slog.Any("error", err))
		os.Exit(1)
	}
}

func emit(w *writer, a arity) {
	n, T, S, tp := a.n, a.tuple(), a.slots(), a.params()
	tpd := tp + " any"
	noun := "slots"
	if n == 1 {
		noun = "slot"
	}

	w.line("// Tuple%d is a message of %s %s. A Tuple%d value is a read-only view of its", n, words[n], noun, n)
	w.line("// storage: copying it is cheap, and a Set moves only the tuple it is called")
	w.line("// on to a private copy.")
	w.line("type Tuple%d[%s] struct {", n, tpd)
	w.line("\t_ [0]func()")
	w.line("\tc *cell[%s]", S)
	w.line("}")
	w.line("")
	w.line("type slots%d[%s] struct {", n, tpd)
	for i, u := range a.upper {
		w.line("\tv%d %s", i, u)
	}
	w.line("}")
	w.line("")
	w.line("func (%s) size() int { return %d }", S, n)
	w.line("")
	w.line("func (s %s) at(i int) any {", S)
	w.line("\tswitch i {")
	for i := range n {
		w.line("\tcase %d:", i)
		w.line("\t\treturn s.v%d", i)
	}
	w.line("\t}")
	w.line("\tpanic(slotOutOfRange(i, %d))", n)
	w.line("}")
	w.line("")
	w.line("func (s %s) share() %s {", S, S)
	w.line("\treturn %s{", S)
	for i := range n {
		w.line("\t\tv%d: shareSlot(s.v%d),", i, i)
	}
	w.line("\t}")
	w.line("}")
	w.line("")
	w.line("func (%s) descriptors() []reflector.Descriptor {", S)
	w.line("\treturn []reflector.Descriptor{")
	for _, u := range a.upper {
		w.line("\t\treflector.DescriptorFor[%s](),", u)
	}
	w.line("\t}")
	w.line("}")
	w.line("")
	w.line("// Make%d returns a tuple with value-initialized slots.", n)
	w.line("func Make%d[%s]() %s {", n, tpd, T)
	w.line("\treturn %s{c: held(newCell(%s{}))}", T, S)
	w.line("}")
	w.line("")

	args := make([]string, n)
	for i := range n {
		args[i] = a.lower[i] + " " + a.upper[i]
	}
	w.line("// New%d returns a tuple holding a copy of each argument, in order.", n)
	w.line("func New%d[%s](%s) %s {", n, tpd, strings.Join(args, ", "), T)
	w.line("\treturn %s{c: held(newCell(%s{", T, S)
	for i, l := range a.lower {
		w.line("\t\tv%d: shareSlot(%s),", i, l)
	}
	w.line("\t}))}")
	w.line("}")
	w.line("")
	w.line("func (t %s) Size() int { return %d }", T, n)
	w.line("")
	for i, u := range a.upper {
		w.line("func (t %s) Get%d() %s { return shareSlot(t.cell().data.v%d) }", T, i, u, i)
	}
	w.line("")
	w.line("// At is the erased read of slot i; it panics if i is out of range.")
	w.line("func (t %s) At(i int) any { return shareSlot(t.cell().at(i)) }", T)
	w.line("")
	w.line("func (t %s) DescriptorAt(i int) reflector.Descriptor { return t.cell().descriptorAt(i) }", T)
	w.line("")
	w.line("// Share returns another holder of the same storage. No values are copied.")
	w.line("func (t %s) Share() %s { return %s{c: t.c.share()} }", T, T, T)
	w.line("")
	w.line("// Release gives up this holder's reference; t reads as zero afterwards.")
	w.line("func (t *%s) Release() {", T)
	w.line("\tt.c.release()")
	w.line("\tt.c = nil")
	w.line("}")
	w.line("")
	w.line("// Message returns an erased holder of the same storage.")
	w.line("func (t %s) Message() Message { return newMessage(t.store()) }", T)
	w.line("")
	w.line("func (t %s) Equal(o %s) bool { return equalStorage(t.store(), o.store()) }", T, T)
	w.line("")
	w.line("func (t %s) EqualAny(o any) bool { return equalAny(t.store(), o) }", T)
	w.line("")
	w.line("func (t %s) String() string { return format(t.store()) }", T)
	w.line("")
	w.line("func (t %s) MarshalJSON() ([]byte, error) { return marshalSlots(t.store()) }", T)
	w.line("")
	w.line("func (t *%s) UnmarshalJSON(b []byte) error {", T)
	w.line("\traw, err := unmarshalSlots(b, %d)", n)
	w.line("\tif err != nil {")
	w.line("\t\treturn err")
	w.line("\t}")
	w.line("\tvar s %s", S)
	for i := range n {
		w.line("\tif err := json.Unmarshal(raw[%d], &s.v%d); err != nil {", i, i)
		w.line("\t\treturn slotError(%d, err)", i)
		w.line("\t}")
	}
	w.line("\tt.Release()")
	w.line("\tt.c = held(newCell(s))")
	w.line("\treturn nil")
	w.line("}")
	w.line("")
	for i, u := range a.upper {
		w.line("// Set%d replaces slot %d in a private copy of the storage.", i, i)
		w.line("func (t *%s) Set%d(v %s) { *t.ref%d() = shareSlot(v) }", T, i, u, i)
		w.line("")
	}
	for i, u := range a.upper {
		w.line("func (t *%s) ref%d() *%s { return &t.own().data.v%d }", T, i, u, i)
	}
	w.line("")
	w.line("func (t *%s) own() *cell[%s] {", T, S)
	w.line("\tt.c = privatize(t.c)")
	w.line("\treturn t.c")
	w.line("}")
	w.line("")
	w.line("func (t %s) cell() *cell[%s] { return cellOf(t.c) }", T, S)
	w.line("")
	w.line("func (t %s) store() storage { return t.cell() }", T)
	w.line("")
	w.line("func (t %s) shareAny() any { return t.Share() }", T)
	w.line("")
	w.line("// As%d recovers a Tuple%d from m. It shares storage when m was built from a", n, n)
	w.line("// Tuple%d of exactly these types and copies the values when only the dynamic", n)
	w.line("// slot types match. Any other shape reports false.")
	w.line("func As%d[%s](m Message) (%s, bool) {", n, tpd, T)
	w.line("\tif c, ok := m.store().(*cell[%s]); ok {", S)
	w.line("\t\treturn %s{c: c.share()}, true", T)
	w.line("\t}")
	w.line("\tif m.Size() != %d {", n)
	w.line("\t\treturn %s{}, false", T)
	w.line("\t}")
	oks := make([]string, n)
	for i, l := range a.lower {
		w.line("\t%s, ok%d := slotAs[%s](m, %d)", l, i, a.upper[i], i)
		oks[i] = fmt.Sprintf("!ok%d", i)
	}
	w.line("\tif %s {", strings.Join(oks, " || "))
	w.line("\t\treturn %s{}, false", T)
	w.line("\t}")
	w.line("\treturn New%d(%s), true", n, strings.Join(a.lower, ", "))
	w.line("}")
	w.line("")

	eqs := make([]string, n)
	for i := range n {
		eqs[i] = fmt.Sprintf("s.v%d == o.v%d", i, i)
	}
	w.line("// Equal%d compares slot by slot with ==.", n)
	w.line("func Equal%d[%s comparable](x, y %s) bool {", n, tp, T)
	w.line("\ts, o := x.cell().data, y.cell().data")
	w.line("\treturn %s", strings.Join(eqs, " &&\n\t\t"))
	w.line("}")
	w.line("")
	w.line("// EqualTo%d compares tuples of different declared slot types through their", n)
	w.line("// descriptors.")
	w.line("func EqualTo%d[%s, %s any](x Tuple%d[%s], y Tuple%d[%s]) bool {", n, a.suffixed("1"), a.suffixed("2"), n, a.suffixed("1"), n, a.suffixed("2"))
	w.line("\treturn equalStorage(x.store(), y.store())")
	w.line("}")
}
