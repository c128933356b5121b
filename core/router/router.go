// Package router spreads messages over a set of named targets. The target is
// chosen by rendezvous hashing the formatted value of one message slot, so
// every message with the same key reaches the same target while the target
// set is stable, and removing a target only moves the keys it owned.
package router

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/codewandler/clstr-msg/core/dispatch"
	"github.com/codewandler/clstr-msg/core/tuple"
	"github.com/codewandler/clstr-msg/internal/hrw"
)

var (
	ErrNoTargets = errors.New("no targets")
	ErrKeySlot   = errors.New("message has no key slot")
)

type Options struct {
	// KeySlot is the slot whose value selects the target.
	KeySlot int
	// Seed perturbs the hash; routers sharing a seed agree on placement.
	Seed   string
	Logger *slog.Logger
}

type Router struct {
	keySlot int
	seed    string
	log     *slog.Logger

	mu      sync.RWMutex
	names   []string
	targets map[string]dispatch.Handler
}

var _ dispatch.Handler = (*Router)(nil)

func New(opt Options) *Router {
	if opt.Logger == nil {
		opt.Logger = slog.Default()
	}
	return &Router{
		keySlot: opt.KeySlot,
		seed:    opt.Seed,
		log:     opt.Logger.With(slog.String("component", "router")),
		targets: make(map[string]dispatch.Handler),
	}
}

// Add registers h under name, replacing a previous target of that name.
func (r *Router) Add(name string, h dispatch.Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.targets[name]; !ok {
		r.names = append(r.names, name)
		slices.Sort(r.names)
	}
	r.targets[name] = h
}

func (r *Router) Remove(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.targets[name]; !ok {
		return
	}
	delete(r.targets, name)
	r.names = slices.DeleteFunc(r.names, func(n string) bool { return n == name })
}

func (r *Router) Targets() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.names)
}

// Pick returns the name of the target owning msg.
func (r *Router) Pick(msg tuple.Message) (string, error) {
	name, _, err := r.pick(msg)
	return name, err
}

// Invoke forwards msg to its target and reports the target's outcome.
// A message that cannot be routed is dropped.
func (r *Router) Invoke(ctx context.Context, msg tuple.Message) dispatch.Outcome {
	name, h, err := r.pick(msg)
	if err != nil {
		r.log.Warn("route failed", slog.String("msg_type", msg.TypeName()), slog.Any("error", err))
		return dispatch.Dropped
	}
	r.log.Debug("route", slog.String("target", name), slog.String("msg_type", msg.TypeName()))
	return h.Invoke(ctx, msg)
}

func (r *Router) pick(msg tuple.Message) (string, dispatch.Handler, error) {
	key, err := Key(msg, r.keySlot)
	if err != nil {
		return "", nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	i := hrw.Best(key, r.names, r.seed)
	if i < 0 {
		return "", nil, ErrNoTargets
	}
	name := r.names[i]
	return name, r.targets[name], nil
}

// Key returns the routing key of msg: the formatted value of slot i.
func Key(msg tuple.Message, i int) ([]byte, error) {
	if i < 0 || i >= msg.Size() {
		return nil, fmt.Errorf("%w: slot %d of %d", ErrKeySlot, i, msg.Size())
	}
	switch v := msg.At(i).(type) {
	case string:
		return []byte(v), nil
	case fmt.Stringer:
		return []byte(v.String()), nil
	default:
		return fmt.Append(nil, v), nil
	}
}
