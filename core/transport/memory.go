package transport

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/codewandler/clstr-msg/core/dispatch"
	"github.com/codewandler/clstr-msg/core/tuple"
	"github.com/codewandler/clstr-msg/internal/codec"
)

// Observer receives the outcome of every delivery. Payloads that fail to
// decode are reported as dropped.
type Observer func(topic string, outcome dispatch.Outcome)

type MemoryTransport struct {
	mu  sync.RWMutex
	log *slog.Logger

	codec    codec.Codec
	observer Observer
	closed   bool

	// topic -> subID -> handler
	subs map[string]map[string]dispatch.Handler

	seq uint64
}

var _ Transport = (*MemoryTransport)(nil)

func NewInMemoryTransport() *MemoryTransport {
	return &MemoryTransport{
		log:      slog.New(slog.DiscardHandler),
		codec:    codec.JSONCodec{},
		observer: func(string, dispatch.Outcome) {},
		subs:     make(map[string]map[string]dispatch.Handler),
	}
}

func (t *MemoryTransport) WithLog(log *slog.Logger) *MemoryTransport {
	t.log = log.With(slog.String("transport", "mem"))
	return t
}

func (t *MemoryTransport) WithObserver(o Observer) *MemoryTransport {
	t.observer = o
	return t
}

func (t *MemoryTransport) Publish(ctx context.Context, topic string, msg tuple.Message) error {
	if topic == "" {
		return ErrEmptyTopic
	}
	b, err := t.codec.Encode(msg)
	if err != nil {
		return fmt.Errorf("publish %s: %w", topic, err)
	}
	return t.PublishRaw(ctx, topic, b)
}

// PublishRaw delivers an already encoded payload.
func (t *MemoryTransport) PublishRaw(ctx context.Context, topic string, payload []byte) error {
	t.mu.RLock()
	if t.closed {
		t.mu.RUnlock()
		return ErrClosed
	}

	// Copy handlers to avoid holding lock while invoking user code.
	subs := t.subs[topic]
	handlers := make([]dispatch.Handler, 0, len(subs))
	for _, h := range subs {
		handlers = append(handlers, h)
	}
	t.mu.RUnlock()

	// Delivery is asynchronous and must not end with the publisher's context;
	// only its values are passed on.
	dctx := context.WithoutCancel(ctx)

	// every subscriber decodes its own copy
	for _, h := range handlers {
		go t.deliver(dctx, topic, h, payload)
	}
	return nil
}

func (t *MemoryTransport) Subscribe(ctx context.Context, topic string, h dispatch.Handler) (Subscription, error) {
	if topic == "" {
		return nil, ErrEmptyTopic
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return nil, ErrClosed
	}
	if t.subs[topic] == nil {
		t.subs[topic] = make(map[string]dispatch.Handler)
	}

	subID := fmt.Sprintf("sub.%d", atomic.AddUint64(&t.seq, 1))
	t.subs[topic][subID] = h

	s := &subscription{
		t:     t,
		log:   t.log.With(slog.String("subscription", subID), slog.String("topic", topic)),
		topic: topic,
		subID: subID,
	}
	s.log.Debug("subscribed")

	context.AfterFunc(ctx, func() {
		_ = s.Unsubscribe()
	})

	return s, nil
}

func (t *MemoryTransport) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return nil
	}
	t.closed = true
	clear(t.subs)

	t.log.Debug("closed")
	return nil
}

func (t *MemoryTransport) deliver(ctx context.Context, topic string, h dispatch.Handler, payload []byte) {
	env, err := t.codec.Decode(payload)
	if err != nil {
		t.log.Warn("undecodable message", slog.String("topic", topic), slog.Any("error", err))
		t.observer(topic, dispatch.Dropped)
		return
	}
	defer env.Msg.Release()

	o := h.Invoke(dispatch.WithLogger(ctx, t.log), env.Msg)
	if o != dispatch.Success {
		t.log.Debug("delivery", slog.String("topic", topic), slog.String("id", env.ID), slog.String("outcome", o.String()))
	}
	t.observer(topic, o)
}

type subscription struct {
	t     *MemoryTransport
	log   *slog.Logger
	topic string
	subID string
	once  sync.Once
}

func (s *subscription) Unsubscribe() error {
	s.once.Do(func() {
		s.t.mu.Lock()
		defer s.t.mu.Unlock()
		if subs := s.t.subs[s.topic]; subs != nil {
			delete(subs, s.subID)
			if len(subs) == 0 {
				delete(s.t.subs, s.topic)
			}
		}
		s.log.Debug("unsubscribed")
	})
	return nil
}
