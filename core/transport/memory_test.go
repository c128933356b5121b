package transport

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/codewandler/clstr-msg/core/actor"
	"github.com/codewandler/clstr-msg/core/dispatch"
	"github.com/codewandler/clstr-msg/core/tuple"
)

type outcomes struct {
	mu  sync.Mutex
	got []dispatch.Outcome
}

func (o *outcomes) observe(_ string, out dispatch.Outcome) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.got = append(o.got, out)
}

func (o *outcomes) list() []dispatch.Outcome {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]dispatch.Outcome(nil), o.got...)
}

func TestMemoryTransport_publish_subscribe(t *testing.T) {
	tr := NewInMemoryTransport()
	defer tr.Close()

	got := make(chan tuple.Tuple2[string, int], 1)
	_, err := tr.Subscribe(t.Context(), "orders", dispatch.Typed2(func(ctx context.Context, m tuple.Tuple2[string, int]) error {
		got <- m.Share()
		return nil
	}))
	require.NoError(t, err)

	src := tuple.New2("buy", 3)
	require.NoError(t, tr.Publish(t.Context(), "orders", src.Message()))

	select {
	case m := <-got:
		require.True(t, m.Equal(src))
		m.Set1(4)
		require.Equal(t, 3, src.Get1())
	case <-time.After(time.Second):
		t.Fatal("timeout")
	}
}

func TestMemoryTransport_fanout(t *testing.T) {
	tr := NewInMemoryTransport()
	defer tr.Close()

	var mu sync.Mutex
	count := 0
	h := dispatch.HandlerFunc(func(context.Context, tuple.Message) dispatch.Outcome {
		mu.Lock()
		count++
		mu.Unlock()
		return dispatch.Success
	})
	for range 3 {
		_, err := tr.Subscribe(t.Context(), "t", h)
		require.NoError(t, err)
	}

	require.NoError(t, tr.Publish(t.Context(), "t", tuple.New1(1).Message()))
	require.NoError(t, tr.Publish(t.Context(), "other", tuple.New1(1).Message()))

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return count == 3
	}, time.Second, time.Millisecond)
}

func TestMemoryTransport_undecodable_is_dropped(t *testing.T) {
	obs := &outcomes{}
	tr := NewInMemoryTransport().WithObserver(obs.observe)
	defer tr.Close()

	_, err := tr.Subscribe(t.Context(), "t", dispatch.Chain())
	require.NoError(t, err)

	require.NoError(t, tr.PublishRaw(t.Context(), "t", []byte("garbage")))
	require.Eventually(t, func() bool { return len(obs.list()) == 1 }, time.Second, time.Millisecond)
	require.Equal(t, []dispatch.Outcome{dispatch.Dropped}, obs.list())
}

func TestMemoryTransport_reports_handler_outcome(t *testing.T) {
	obs := &outcomes{}
	tr := NewInMemoryTransport().WithObserver(obs.observe)
	defer tr.Close()

	_, err := tr.Subscribe(t.Context(), "t", dispatch.Typed1(func(ctx context.Context, m tuple.Tuple1[string]) error {
		return nil
	}))
	require.NoError(t, err)

	require.NoError(t, tr.Publish(t.Context(), "t", tuple.New1(5).Message()))
	require.Eventually(t, func() bool { return len(obs.list()) == 1 }, time.Second, time.Millisecond)
	require.Equal(t, dispatch.Skipped, obs.list()[0])
}

func TestMemoryTransport_delivery_outlives_publish_context(t *testing.T) {
	obs := &outcomes{}
	tr := NewInMemoryTransport().WithObserver(obs.observe)
	defer tr.Close()

	release := make(chan struct{})
	var handled atomic.Int32
	a := actor.New(actor.Options{Context: t.Context(), MailboxSize: 1}, dispatch.HandlerFunc(func(context.Context, tuple.Message) dispatch.Outcome {
		<-release
		handled.Add(1)
		return dispatch.Success
	}))
	defer a.Stop()

	_, err := tr.Subscribe(t.Context(), "jobs", a)
	require.NoError(t, err)

	const total = 10
	for i := range total {
		ctx, cancel := context.WithCancel(t.Context())
		require.NoError(t, tr.Publish(ctx, "jobs", tuple.New1(i).Message()))
		cancel()
	}
	close(release)

	require.Eventually(t, func() bool { return handled.Load() == total }, time.Second, time.Millisecond)
	require.Eventually(t, func() bool { return len(obs.list()) == total }, time.Second, time.Millisecond)
	for _, o := range obs.list() {
		require.Equal(t, dispatch.Success, o)
	}
}

func TestMemoryTransport_unsubscribe(t *testing.T) {
	obs := &outcomes{}
	tr := NewInMemoryTransport().WithObserver(obs.observe)
	defer tr.Close()

	ctx, cancel := context.WithCancel(t.Context())
	sub, err := tr.Subscribe(ctx, "t", dispatch.Chain())
	require.NoError(t, err)
	require.NoError(t, sub.Unsubscribe())
	require.NoError(t, sub.Unsubscribe())
	cancel()

	require.NoError(t, tr.Publish(t.Context(), "t", tuple.New1(1).Message()))
	time.Sleep(10 * time.Millisecond)
	require.Empty(t, obs.list())
}

func TestMemoryTransport_closed(t *testing.T) {
	tr := NewInMemoryTransport()
	require.NoError(t, tr.Close())
	require.NoError(t, tr.Close())

	require.ErrorIs(t, tr.Publish(t.Context(), "t", tuple.New1(1).Message()), ErrClosed)
	_, err := tr.Subscribe(t.Context(), "t", dispatch.Chain())
	require.ErrorIs(t, err, ErrClosed)

	require.ErrorIs(t, tr.Publish(t.Context(), "", tuple.New1(1).Message()), ErrEmptyTopic)
	require.ErrorIs(t, tr.Publish(t.Context(), "t", tuple.Message{}), tuple.ErrEmpty)
}
