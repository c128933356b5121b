package router

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/codewandler/clstr-msg/core/dispatch"
	"github.com/codewandler/clstr-msg/core/tuple"
)

type counter struct {
	n int
}

func (c *counter) Invoke(context.Context, tuple.Message) dispatch.Outcome {
	c.n++
	return dispatch.Success
}

func TestRouter_no_targets(t *testing.T) {
	r := New(Options{})
	_, err := r.Pick(tuple.New1("k").Message())
	require.ErrorIs(t, err, ErrNoTargets)
	require.Equal(t, dispatch.Dropped, r.Invoke(t.Context(), tuple.New1("k").Message()))
}

func TestRouter_key_slot(t *testing.T) {
	r := New(Options{KeySlot: 2})
	r.Add("a", &counter{})

	_, err := r.Pick(tuple.New2("x", 1).Message())
	require.ErrorIs(t, err, ErrKeySlot)
	_, err = r.Pick(tuple.Message{})
	require.ErrorIs(t, err, ErrKeySlot)

	name, err := r.Pick(tuple.New3("x", 1, "key").Message())
	require.NoError(t, err)
	require.Equal(t, "a", name)
}

func TestRouter_same_key_same_target(t *testing.T) {
	r := New(Options{KeySlot: 1, Seed: "s"})
	targets := map[string]*counter{}
	for _, n := range []string{"a", "b", "c"} {
		targets[n] = &counter{}
		r.Add(n, targets[n])
	}
	require.Equal(t, []string{"a", "b", "c"}, r.Targets())

	for i := range 30 {
		key := fmt.Sprintf("user-%d", i)
		first, err := r.Pick(tuple.New2("deposit", key).Message())
		require.NoError(t, err)

		for j := range 3 {
			require.Equal(t, dispatch.Success, r.Invoke(t.Context(), tuple.New2(fmt.Sprint("op", j), key).Message()))
			name, err := r.Pick(tuple.New2("withdraw", key).Message())
			require.NoError(t, err)
			require.Equal(t, first, name)
		}
	}

	total := 0
	for _, c := range targets {
		total += c.n
	}
	require.Equal(t, 90, total)
}

func TestRouter_remove_moves_only_owned_keys(t *testing.T) {
	r := New(Options{})
	for _, n := range []string{"a", "b", "c"} {
		r.Add(n, &counter{})
	}

	before := map[int]string{}
	for i := range 100 {
		before[i], _ = r.Pick(tuple.New1(i).Message())
	}

	r.Remove("b")
	r.Remove("missing")
	require.Equal(t, []string{"a", "c"}, r.Targets())

	for i := range 100 {
		after, err := r.Pick(tuple.New1(i).Message())
		require.NoError(t, err)
		require.NotEqual(t, "b", after)
		if before[i] != "b" {
			require.Equal(t, before[i], after)
		}
	}
}

func TestKey(t *testing.T) {
	k, err := Key(tuple.New2(42, "x").Message(), 0)
	require.NoError(t, err)
	require.Equal(t, "42", string(k))

	k, err = Key(tuple.New2(42, "x").Message(), 1)
	require.NoError(t, err)
	require.Equal(t, "x", string(k))

	k, err = Key(tuple.New1(dispatch.Skipped).Message(), 0)
	require.NoError(t, err)
	require.Equal(t, "im_skipped", string(k))
}
