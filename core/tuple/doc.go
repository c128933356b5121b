// Package tuple implements the messages exchanged between actors: fixed-arity,
// heterogeneously typed tuples over reference-counted copy-on-write storage.
//
// # Construction and access
//
//	t := tuple.New2(42, "hi")
//	t.Size() // 2
//	t.Get0() // 42
//	t.Get1() // "hi"
//
// Slot indices are methods, so reading past the arity does not compile, and
// there is no zero-arity tuple type.
//
// # Sharing
//
// A tuple value is a read-only view of reference-counted storage. Copying the
// value, by assignment or with Share, never copies slot values. SetN is the
// only write, and it first moves the tuple it is called on to a private copy
// of the storage, so every other copy keeps seeing the old values:
//
//	t1 := tuple.New2(42, "hi")
//	t2 := t1
//	t2.Set0(7)
//	t1.Get0() // 42
//	t2.Get0() // 7
//
// Storage that has been handed out is never written, so copies may be read
// from any number of goroutines. Share and Release count explicit holders;
// messages give up their reference when they become unreachable.
//
// # Element types
//
// Slots hold values, never references: pointers, slices, maps, channels,
// funcs and interfaces are rejected by the tuplecheck vet tool at build time
// and by [NewMessage] at run time. Nested tuples are allowed.
//
// # Equality
//
//   - [Equal2] and friends compare comparable slot types with ==.
//   - Tuple.Equal compares two tuples of the same declared types structurally,
//     which also covers nested tuples.
//   - [EqualTo2] and friends compare tuples of different declared types whose
//     slots are pairwise comparable, e.g. int and a named int.
//
// Comparing tuples of different arity does not compile.
//
// # Arity
//
// Tuple1 through Tuple8 are generated into tuple.go; wider messages nest a
// tuple in a slot.
//
// # Erased messages
//
// [Message] is the type-erased form used by routers and transports. Convert
// with Tuple.Message and back with [As2] and friends, which report false
// instead of panicking when the shape does not match.
package tuple

//go:generate go run ./internal/gen -o tuple.go
