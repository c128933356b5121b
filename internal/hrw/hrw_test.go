package hrw

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBest_empty(t *testing.T) {
	require.Equal(t, -1, Best([]byte("k"), nil, ""))
}

func TestBest_stable(t *testing.T) {
	targets := []string{"a", "b", "c", "d"}
	for i := range 100 {
		key := []byte(fmt.Sprintf("key-%d", i))
		first := Best(key, targets, "seed")
		require.GreaterOrEqual(t, first, 0)
		require.Equal(t, first, Best(key, targets, "seed"))
	}
}

func TestBest_minimal_movement(t *testing.T) {
	targets := []string{"a", "b", "c", "d"}
	without := []string{"a", "b", "d"}

	for i := range 200 {
		key := []byte(fmt.Sprintf("key-%d", i))
		before := targets[Best(key, targets, "")]
		after := without[Best(key, without, "")]
		if before != "c" {
			require.Equal(t, before, after, "key %s moved although its target stayed", key)
		}
	}
}

func TestBest_spreads(t *testing.T) {
	targets := []string{"a", "b", "c", "d"}
	seen := map[int]int{}
	for i := range 400 {
		seen[Best([]byte(fmt.Sprintf("key-%d", i)), targets, "")]++
	}
	require.Len(t, seen, 4)
}
