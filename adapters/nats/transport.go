package nats

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	natsgo "github.com/nats-io/nats.go"

	"github.com/codewandler/clstr-msg/core/dispatch"
	"github.com/codewandler/clstr-msg/core/transport"
	"github.com/codewandler/clstr-msg/core/tuple"
	"github.com/codewandler/clstr-msg/internal/codec"
)

type TransportConfig struct {
	Connect       Connector          // Connect is used to create the underlying NATS connection. If nil, ConnectDefault() is used.
	Log           *slog.Logger       // Log for diagnostics (optional)
	SubjectPrefix string             // SubjectPrefix for topic subjects, e.g. "clstr" -> clstr.<topic>
	Observer      transport.Observer // Observer is told the outcome of every delivery (optional)
}

type Transport struct {
	nc       *natsgo.Conn
	closeNc  closeFunc
	log      *slog.Logger
	prefix   string
	codec    codec.Codec
	observer transport.Observer

	mu   sync.Mutex
	subs map[*natsgo.Subscription]struct{}

	closed atomic.Bool
}

var _ transport.Transport = (*Transport)(nil)

func NewTransport(cfg TransportConfig) (*Transport, error) {
	connFn := cfg.Connect
	if connFn == nil {
		connFn = ConnectDefault()
	}

	log := cfg.Log
	if log == nil {
		log = slog.Default()
	}

	observer := cfg.Observer
	if observer == nil {
		observer = func(string, dispatch.Outcome) {}
	}

	prefix := cfg.SubjectPrefix
	if prefix == "" {
		prefix = "clstr"
	}

	nc, closeNc, err := connFn()
	if err != nil {
		return nil, fmt.Errorf("nats: connect: %w", err)
	}

	return &Transport{
		nc:       nc,
		closeNc:  closeNc,
		log:      log.With(slog.String("transport", "nats")),
		prefix:   prefix,
		codec:    codec.JSONCodec{},
		observer: observer,
		subs:     make(map[*natsgo.Subscription]struct{}),
	}, nil
}

func (t *Transport) subject(topic string) string { return t.prefix + "." + topic }

func (t *Transport) Publish(ctx context.Context, topic string, msg tuple.Message) error {
	if topic == "" {
		return transport.ErrEmptyTopic
	}
	if t.closed.Load() {
		return transport.ErrClosed
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	payload, err := t.codec.Encode(msg)
	if err != nil {
		return fmt.Errorf("publish %s: %w", topic, err)
	}
	if err := t.nc.Publish(t.subject(topic), payload); err != nil {
		return fmt.Errorf("nats: publish: %w", err)
	}
	return nil
}

// Subscribe decodes every message on <prefix>.<topic> and hands it to h.
// Messages are delivered one at a time per subscription.
func (t *Transport) Subscribe(ctx context.Context, topic string, h dispatch.Handler) (transport.Subscription, error) {
	if topic == "" {
		return nil, transport.ErrEmptyTopic
	}
	if t.closed.Load() {
		return nil, transport.ErrClosed
	}

	log := t.log.With(slog.String("topic", topic))
	hctx := dispatch.WithLogger(ctx, log)

	sub, err := t.nc.Subscribe(t.subject(topic), func(m *natsgo.Msg) {
		env, err := t.codec.Decode(m.Data)
		if err != nil {
			log.Warn("undecodable message", slog.Any("error", err))
			t.observer(topic, dispatch.Dropped)
			return
		}
		defer env.Msg.Release()

		o := h.Invoke(hctx, env.Msg)
		if o != dispatch.Success {
			log.Debug("delivery", slog.String("id", env.ID), slog.String("outcome", o.String()))
		}
		t.observer(topic, o)
	})
	if err != nil {
		return nil, fmt.Errorf("nats: subscribe %s: %w", topic, err)
	}

	t.mu.Lock()
	t.subs[sub] = struct{}{}
	t.mu.Unlock()

	s := &subscription{sub: sub, t: t}
	context.AfterFunc(ctx, func() {
		_ = s.Unsubscribe()
	})

	return s, nil
}

// Flush waits until the server has processed everything published so far.
func (t *Transport) Flush(ctx context.Context) error {
	return t.nc.FlushWithContext(ctx)
}

func (t *Transport) Close() error {
	if t.closed.Swap(true) {
		return nil
	}
	t.mu.Lock()
	for s := range t.subs {
		_ = s.Unsubscribe()
	}
	clear(t.subs)
	t.mu.Unlock()
	if t.nc != nil {
		// the connection may be leased to others, so only flush it
		_ = t.nc.Flush()
		t.closeNc()
	}
	t.log.Debug("closed")
	return nil
}

type subscription struct {
	sub  *natsgo.Subscription
	t    *Transport
	once sync.Once
}

func (s *subscription) Unsubscribe() (err error) {
	s.once.Do(func() {
		s.t.mu.Lock()
		_, live := s.t.subs[s.sub]
		delete(s.t.subs, s.sub)
		s.t.mu.Unlock()
		if live {
			err = s.sub.Unsubscribe()
		}
	})
	return err
}
