// Package reflector is the type registry of the message core. It hands out
// cached [Descriptor] values that identify a slot type at run time and know
// how to compare two values of (possibly different) slot types.
package reflector

import (
	"reflect"
	"sync"

	"github.com/codewandler/clstr-msg/core/sf"
)

// maxCacheSize is the maximum number of entries in the type cache.
// Since the number of types in a typical Go program is bounded and small,
// this limit is rarely hit. When exceeded, the cache is cleared.
// Named registrations are kept separately and never evicted.
const maxCacheSize = 1024

var (
	muCache sync.RWMutex
	cache   = make(map[reflect.Type]Descriptor)

	muNamed sync.RWMutex
	named   = make(map[string]Descriptor)

	builds = sf.New[Descriptor]()
)

func init() {
	RegisterType(reflect.TypeFor[bool]())
	RegisterType(reflect.TypeFor[string]())
	RegisterType(reflect.TypeFor[int]())
	RegisterType(reflect.TypeFor[int8]())
	RegisterType(reflect.TypeFor[int16]())
	RegisterType(reflect.TypeFor[int32]())
	RegisterType(reflect.TypeFor[int64]())
	RegisterType(reflect.TypeFor[uint]())
	RegisterType(reflect.TypeFor[uint8]())
	RegisterType(reflect.TypeFor[uint16]())
	RegisterType(reflect.TypeFor[uint32]())
	RegisterType(reflect.TypeFor[uint64]())
	RegisterType(reflect.TypeFor[float32]())
	RegisterType(reflect.TypeFor[float64]())
}

// DescriptorOf returns the Descriptor for the dynamic type of x.
func DescriptorOf(x any) Descriptor {
	return DescriptorForType(reflect.TypeOf(x))
}

// DescriptorFor returns the Descriptor for type parameter T.
func DescriptorFor[T any]() Descriptor {
	return DescriptorForType(reflect.TypeFor[T]())
}

// DescriptorForType returns the Descriptor for t. Unlike a plain name lookup,
// pointer types are not unwrapped: a pointer is its own (illegal) slot type.
// Results are cached; safe for concurrent use.
func DescriptorForType(t reflect.Type) Descriptor {
	if t == nil {
		return Descriptor{}
	}

	muCache.RLock()
	d, ok := cache[t]
	muCache.RUnlock()
	if ok {
		return d
	}

	// concurrent first lookups of one type share a single build
	out, _ := builds.Do(typeName(t), func() (*Descriptor, error) {
		d := newDescriptor(t)
		return &d, nil
	})
	d = *out
	if d.Type != t {
		// unnamed types from different packages can share a string form
		d = newDescriptor(t)
	}

	muCache.Lock()
	if existing, ok := cache[t]; ok {
		muCache.Unlock()
		return existing
	}
	if len(cache) >= maxCacheSize {
		cache = make(map[reflect.Type]Descriptor)
	}
	cache[t] = d
	muCache.Unlock()

	return d
}

// Register makes T resolvable by name via [Lookup] and returns its descriptor.
// Decoders need this for every slot type they may receive.
func Register[T any]() Descriptor {
	return RegisterType(reflect.TypeFor[T]())
}

// RegisterType is the reflect.Type form of [Register].
func RegisterType(t reflect.Type) Descriptor {
	d := DescriptorForType(t)
	if d.IsZero() {
		return d
	}
	muNamed.Lock()
	named[d.Name] = d
	muNamed.Unlock()
	return d
}

// Lookup resolves a descriptor by its registered name.
func Lookup(name string) (Descriptor, bool) {
	muNamed.RLock()
	defer muNamed.RUnlock()
	d, ok := named[name]
	return d, ok
}

func typeName(t reflect.Type) string {
	if t.PkgPath() == "" || t.Name() == "" {
		return t.String()
	}
	return t.PkgPath() + "." + t.Name()
}
