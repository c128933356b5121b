package tuplecheck

import (
	"errors"
	"fmt"
	"go/types"
)

// legal mirrors the run-time check of the reflector: element types must be
// values all the way down, except for types that compare themselves
// structurally.
func legal(t types.Type) error {
	if _, ok := types.Unalias(t).(*types.TypeParam); ok {
		// decided at the instantiation
		return nil
	}
	if structural(t) {
		return nil
	}

	switch u := t.Underlying().(type) {
	case *types.Basic:
		if u.Kind() == types.UnsafePointer {
			return errors.New("unsafe pointer")
		}
		return nil
	case *types.Pointer:
		return errors.New("pointer")
	case *types.Slice:
		return errors.New("slice")
	case *types.Map:
		return errors.New("map")
	case *types.Chan:
		return errors.New("channel")
	case *types.Signature:
		return errors.New("func")
	case *types.Interface:
		return errors.New("interface")
	case *types.Array:
		if err := legal(u.Elem()); err != nil {
			return fmt.Errorf("array element: %w", err)
		}
		return nil
	case *types.Struct:
		for i := range u.NumFields() {
			f := u.Field(i)
			if f.Name() == "_" {
				continue
			}
			if err := legal(f.Type()); err != nil {
				return fmt.Errorf("field %s: %w", f.Name(), err)
			}
		}
		return nil
	default:
		return fmt.Errorf("unsupported type %s", t)
	}
}

// structural reports whether t compares itself through EqualAny(any) bool,
// as nested tuples and messages do.
func structural(t types.Type) bool {
	obj, _, _ := types.LookupFieldOrMethod(t, false, nil, "EqualAny")
	fn, ok := obj.(*types.Func)
	if !ok {
		return false
	}
	sig := fn.Signature()
	if sig.Params().Len() != 1 || sig.Results().Len() != 1 {
		return false
	}
	b, ok := sig.Results().At(0).Type().(*types.Basic)
	return ok && b.Kind() == types.Bool
}

// comparablePair follows the descriptors' rule: identical comparable types,
// basic types with identical underlying types, or two structural types. Two
// tuple instantiations must also have the same arity and pairwise comparable
// slots, since that is what the run-time comparison will walk.
func comparablePair(a, b types.Type) bool {
	if structural(a) || structural(b) {
		if !structural(a) || !structural(b) {
			return false
		}
		na, okA := types.Unalias(a).(*types.Named)
		nb, okB := types.Unalias(b).(*types.Named)
		if !okA || !okB || !isTuple(na) || !isTuple(nb) {
			return true
		}
		if na.Obj().Name() != nb.Obj().Name() {
			return false
		}
		argsA, argsB := na.TypeArgs(), nb.TypeArgs()
		for i := range argsA.Len() {
			if !comparablePair(argsA.At(i), argsB.At(i)) {
				return false
			}
		}
		return true
	}
	if types.Identical(a, b) {
		return types.Comparable(a)
	}
	ua, okA := a.Underlying().(*types.Basic)
	ub, okB := b.Underlying().(*types.Basic)
	return okA && okB && types.Identical(ua, ub) && types.Comparable(ua)
}
