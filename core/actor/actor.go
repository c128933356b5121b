package actor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/codewandler/clstr-msg/core/dispatch"
	"github.com/codewandler/clstr-msg/core/tuple"
)

var ErrStopped = errors.New("actor stopped")

type OnPanic func(recovered any, stack []byte, msg tuple.Message)

type Options struct {
	// ID names the actor in logs and metrics. Defaults to a random id.
	ID          string
	MailboxSize int
	// StashSize bounds the messages kept after every handler skipped them.
	// When full, the oldest stashed message is dropped.
	StashSize int
	Context   context.Context
	Logger    *slog.Logger
	Metrics   Metrics
	OnPanic   OnPanic
}

type ctrlMsg struct {
	become dispatch.Handler
}

// Actor owns a mailbox of messages and presents them one at a time to its
// current behavior. Outcomes decide what happens to a message:
//
//   - Success: consumed; stashed messages get another attempt.
//   - Skipped: stashed until a later success or a behavior change.
//   - Dropped: discarded.
//
// A panicking handler is contained and the message counts as dropped.
type Actor struct {
	id      string
	ctx     context.Context
	log     *slog.Logger
	metrics Metrics
	onPanic OnPanic

	mailbox   chan tuple.Message
	control   chan ctrlMsg
	stashSize int

	stop chan struct{}
	done chan struct{}

	mu     sync.Mutex
	closed bool
}

var _ dispatch.Handler = (*Actor)(nil)

func New(opt Options, behavior dispatch.Handler) *Actor {
	if opt.ID == "" {
		opt.ID = "actor-" + gonanoid.Must(8)
	}
	if opt.MailboxSize == 0 {
		opt.MailboxSize = 1024
	}
	if opt.StashSize == 0 {
		opt.StashSize = 256
	}
	if opt.Context == nil {
		opt.Context = context.Background()
	}
	if opt.Logger == nil {
		opt.Logger = slog.Default()
	}
	if opt.Metrics == nil {
		opt.Metrics = NopMetrics()
	}
	log := opt.Logger.With(slog.String("actor", opt.ID))
	if opt.OnPanic == nil {
		opt.OnPanic = func(recovered any, stack []byte, msg tuple.Message) {
			log.Error(
				"actor panicked",
				slog.Any("recovered", recovered),
				slog.String("stack", string(stack)),
				slog.String("msg", msg.String()),
			)
		}
	}

	a := &Actor{
		id:        opt.ID,
		ctx:       opt.Context,
		log:       log,
		metrics:   opt.Metrics,
		onPanic:   opt.OnPanic,
		mailbox:   make(chan tuple.Message, opt.MailboxSize),
		control:   make(chan ctrlMsg, 1),
		stashSize: opt.StashSize,
		stop:      make(chan struct{}),
		done:      make(chan struct{}),
	}

	go a.loop(behavior)
	return a
}

func (a *Actor) ID() string { return a.id }

// Done is closed when the actor stops.
func (a *Actor) Done() <-chan struct{} { return a.done }

// Send enqueues a holder of msg, blocking until enqueued, ctx is canceled or
// the actor stops. The caller keeps its own holder. An actor whose
// Options.Context was canceled counts as stopped.
func (a *Actor) Send(ctx context.Context, msg tuple.Message) error {
	if a.isClosed() {
		return ErrStopped
	}
	own := msg.Share()
	select {
	case <-ctx.Done():
		own.Release()
		return fmt.Errorf("send failed: %w", ctx.Err())
	case <-a.stop:
		own.Release()
		return ErrStopped
	case <-a.done:
		own.Release()
		return ErrStopped
	case a.mailbox <- own:
		return nil
	}
}

// TrySend attempts a non-blocking enqueue.
func (a *Actor) TrySend(msg tuple.Message) bool {
	if a.isClosed() {
		return false
	}
	own := msg.Share()
	select {
	case <-a.stop:
	case <-a.done:
	case a.mailbox <- own:
		return true
	default:
	}
	own.Release()
	return false
}

// Invoke makes the actor a handler for routers and transports: msg is
// enqueued and counts as handled once it is in the mailbox.
func (a *Actor) Invoke(ctx context.Context, msg tuple.Message) dispatch.Outcome {
	if err := a.Send(ctx, msg); err != nil {
		a.log.Debug("forward failed", slog.String("msg_type", msg.TypeName()), slog.Any("error", err))
		return dispatch.Dropped
	}
	return dispatch.Success
}

// Become replaces the behavior. Stashed messages are presented to the new
// behavior before the next mailbox message.
func (a *Actor) Become(behavior dispatch.Handler) error {
	if a.isClosed() {
		return ErrStopped
	}
	select {
	case <-a.stop:
		return ErrStopped
	case <-a.done:
		return ErrStopped
	case a.control <- ctrlMsg{become: behavior}:
		return nil
	}
}

// Stop requests shutdown and waits for completion. Idempotent.
func (a *Actor) Stop() {
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		<-a.done
		return
	}
	a.closed = true
	a.mu.Unlock()

	close(a.stop)
	<-a.done
}

func (a *Actor) isClosed() bool {
	select {
	case <-a.done:
		return true
	default:
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.closed
}

func (a *Actor) loop(behavior dispatch.Handler) {
	defer close(a.done)

	ctx := dispatch.WithLogger(a.ctx, a.log)
	st := &stash{}
	defer func() {
		st.clear()
		for {
			select {
			case msg := <-a.mailbox:
				msg.Release()
			default:
				return
			}
		}
	}()

	for {
		select {
		case <-a.stop:
			return
		case <-a.ctx.Done():
			return
		case c := <-a.control:
			behavior = c.become
			a.replay(ctx, behavior, st)
		case msg := <-a.mailbox:
			a.metrics.MailboxDepth(a.id, len(a.mailbox))
			switch a.invoke(ctx, behavior, msg) {
			case dispatch.Success:
				msg.Release()
				a.replay(ctx, behavior, st)
			case dispatch.Skipped:
				a.keep(st, msg)
			default:
				msg.Release()
			}
		}
	}
}

// invoke presents msg to h with crash containment.
func (a *Actor) invoke(ctx context.Context, h dispatch.Handler, msg tuple.Message) (o dispatch.Outcome) {
	msgType := msg.TypeName()
	defer a.metrics.MessageDuration(msgType).ObserveDuration()

	defer func() {
		if r := recover(); r != nil {
			a.metrics.MessagePanic(msgType)
			a.onPanic(r, debug.Stack(), msg)
			o = dispatch.Dropped
		}
		a.metrics.MessageOutcome(msgType, o)
		if o == dispatch.Dropped {
			a.log.Debug("message dropped", slog.String("msg_type", msgType))
		}
	}()

	if h == nil {
		return dispatch.Skipped
	}
	return h.Invoke(ctx, msg)
}

func (a *Actor) keep(st *stash, msg tuple.Message) {
	if dropped, ok := st.push(msg, a.stashSize); ok {
		a.log.Warn("stash full, dropping oldest message", slog.String("msg_type", dropped.TypeName()))
		a.metrics.MessageOutcome(dropped.TypeName(), dispatch.Dropped)
		dropped.Release()
	}
	a.metrics.StashDepth(a.id, st.len())
}

// replay re-presents stashed messages, oldest first, until a full pass makes
// no progress.
func (a *Actor) replay(ctx context.Context, h dispatch.Handler, st *stash) {
	for progress := true; progress && st.len() > 0; {
		progress = false
		for _, msg := range st.take() {
			switch a.invoke(ctx, h, msg) {
			case dispatch.Success:
				progress = true
				msg.Release()
			case dispatch.Skipped:
				st.msgs = append(st.msgs, msg)
			default:
				progress = true
				msg.Release()
			}
		}
	}
	a.metrics.StashDepth(a.id, st.len())
}
