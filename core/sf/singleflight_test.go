package sf

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSingleflight_Do(t *testing.T) {
	s := New[int]()
	v, err := s.Do("a", func() (*int, error) {
		n := 42
		return &n, nil
	})
	require.NoError(t, err)
	require.Equal(t, 42, *v)
}

func TestSingleflight_Do_error(t *testing.T) {
	s := New[int]()
	_, err := s.Do("a", func() (*int, error) { return nil, errors.New("boom") })
	require.ErrorContains(t, err, "boom")
}

func TestSingleflight_concurrent(t *testing.T) {
	s := New[int]()
	var calls atomic.Int32
	release := make(chan struct{})

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := s.Do("k", func() (*int, error) {
				calls.Add(1)
				<-release
				n := 7
				return &n, nil
			})
			require.NoError(t, err)
			require.Equal(t, 7, *v)
		}()
	}
	close(release)
	wg.Wait()
	require.GreaterOrEqual(t, calls.Load(), int32(1))
	require.LessOrEqual(t, calls.Load(), int32(10))
}
