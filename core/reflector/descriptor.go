package reflector

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrIllegalType is returned by [Descriptor.Legal] for slot types that may
// alias memory across actors.
var ErrIllegalType = errors.New("illegal message element type")

// StructuralEqualer is implemented by values that are compared structurally
// rather than with ==, such as nested tuples. Such types are legal message
// elements even though they hold a handle internally.
type StructuralEqualer interface {
	EqualAny(other any) bool
}

var structuralEqualerType = reflect.TypeFor[StructuralEqualer]()

// Descriptor identifies a slot type at run time.
type Descriptor struct {
	Name string       // "pkg/path.TypeName", or the type literal for unnamed types
	Type reflect.Type // The underlying reflect.Type

	legal error
}

func newDescriptor(t reflect.Type) Descriptor {
	return Descriptor{
		Name:  typeName(t),
		Type:  t,
		legal: checkLegal(t, t),
	}
}

// IsZero reports whether d describes no type at all.
func (d Descriptor) IsZero() bool { return d.Type == nil }

func (d Descriptor) String() string {
	if d.IsZero() {
		return "<nil>"
	}
	return d.Name
}

// Kind returns the reflect kind of the described type.
func (d Descriptor) Kind() reflect.Kind {
	if d.IsZero() {
		return reflect.Invalid
	}
	return d.Type.Kind()
}

// IsIntegral reports whether d describes a signed or unsigned integer type.
func (d Descriptor) IsIntegral() bool {
	switch d.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}

// IsString reports whether d describes a string type.
func (d Descriptor) IsString() bool { return d.Kind() == reflect.String }

// Same is type identity.
func (d Descriptor) Same(o Descriptor) bool { return d.Type == o.Type }

// Legal returns nil if values of the type may be carried in a message.
func (d Descriptor) Legal() error {
	if d.IsZero() {
		return fmt.Errorf("%w: nil type", ErrIllegalType)
	}
	return d.legal
}

// Comparable reports whether values described by d can be compared for
// equality with values described by o.
func (d Descriptor) Comparable(o Descriptor) bool {
	if d.IsZero() || o.IsZero() {
		return false
	}
	if d.isStructural() || o.isStructural() {
		return d.isStructural() && o.isStructural()
	}
	if d.Type == o.Type {
		return d.Type.Comparable()
	}
	// distinct declared types with the same basic kind, e.g. int and a named int
	return isBasic(d.Kind()) && d.Kind() == o.Kind() && o.Type.ConvertibleTo(d.Type)
}

// Equal compares a value of d's type with a value of any comparable type.
// It returns false, never panics, for incomparable inputs.
func (d Descriptor) Equal(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if e, ok := a.(StructuralEqualer); ok {
		return e.EqualAny(b)
	}
	bt := reflect.TypeOf(b)
	if bt != d.Type {
		if !d.Comparable(DescriptorForType(bt)) {
			return false
		}
		b = reflect.ValueOf(b).Convert(d.Type).Interface()
	}
	if !reflect.ValueOf(a).Comparable() {
		return false
	}
	return a == b
}

func (d Descriptor) isStructural() bool {
	return d.Type.Implements(structuralEqualerType)
}

func isBasic(k reflect.Kind) bool {
	switch k {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	}
	return false
}

func checkLegal(root, t reflect.Type) error {
	if t.Implements(structuralEqualerType) {
		return nil
	}
	switch t.Kind() {
	case reflect.Pointer, reflect.UnsafePointer, reflect.Slice, reflect.Map,
		reflect.Chan, reflect.Func, reflect.Interface:
		if root == t {
			return fmt.Errorf("%w: %s is a %s", ErrIllegalType, typeName(t), t.Kind())
		}
		return fmt.Errorf("%w: %s holds a %s (%s)", ErrIllegalType, typeName(root), t.Kind(), t)
	case reflect.Array:
		return checkLegal(root, t.Elem())
	case reflect.Struct:
		for i := range t.NumField() {
			f := t.Field(i)
			if f.Name == "_" {
				continue
			}
			if err := checkLegal(root, f.Type); err != nil {
				return err
			}
		}
	}
	return nil
}
