// Package sf deduplicates concurrent calls that compute the same keyed value.
// The registry uses it so that the first lookups of a slot type racing on
// several goroutines build its descriptor once.
package sf

import "golang.org/x/sync/singleflight"

// Singleflight runs at most one fn per key at a time; concurrent callers for
// the same key wait and receive the shared result.
type Singleflight[T any] struct {
	group singleflight.Group
}

// Do executes fn for key unless a call for key is already in flight, in which
// case it waits for that call and returns its result.
func (s *Singleflight[T]) Do(key string, fn func() (*T, error)) (*T, error) {
	v, err, _ := s.group.Do(key, func() (any, error) {
		return fn()
	})
	if err != nil {
		return nil, err
	}
	return v.(*T), nil
}

func New[T any]() *Singleflight[T] {
	return &Singleflight[T]{}
}
