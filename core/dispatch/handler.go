package dispatch

import (
	"context"
	"log/slog"

	"github.com/codewandler/clstr-msg/core/tuple"
)

type (
	// Handler is one candidate for a message. It reports exactly one Outcome
	// per call.
	Handler interface {
		Invoke(ctx context.Context, msg tuple.Message) Outcome
	}

	// HandlerFunc adapts a function to Handler.
	HandlerFunc func(ctx context.Context, msg tuple.Message) Outcome
)

func (f HandlerFunc) Invoke(ctx context.Context, msg tuple.Message) Outcome { return f(ctx, msg) }

type chain []Handler

// Chain presents a message to each handler in order until one reports
// Success or Dropped. If every handler skips, so does the chain.
func Chain(handlers ...Handler) Handler {
	return chain(handlers)
}

func (c chain) Invoke(ctx context.Context, msg tuple.Message) Outcome {
	for _, h := range c {
		if o := h.Invoke(ctx, msg); o != Skipped {
			return o
		}
	}
	return Skipped
}

type loggerKey struct{}

// WithLogger attaches the logger typed handlers use to report errors.
func WithLogger(ctx context.Context, log *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, log)
}

// Logger returns the logger attached with WithLogger, or slog.Default().
func Logger(ctx context.Context) *slog.Logger {
	if log, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok && log != nil {
		return log
	}
	return slog.Default()
}

// typed runs fn on messages that convert to the handler's tuple type. A
// message of another shape is skipped; a failing fn drops the message.
func typed[T any](as func(tuple.Message) (T, bool), fn func(context.Context, T) error) Handler {
	return HandlerFunc(func(ctx context.Context, msg tuple.Message) Outcome {
		t, ok := as(msg)
		if !ok {
			return Skipped
		}
		if err := fn(ctx, t); err != nil {
			Logger(ctx).Debug(
				"handler failed, dropping message",
				slog.String("msg_type", msg.TypeName()),
				slog.Any("error", err),
			)
			return Dropped
		}
		return Success
	})
}

func Typed1[A any](fn func(context.Context, tuple.Tuple1[A]) error) Handler {
	return typed(tuple.As1[A], fn)
}

func Typed2[A, B any](fn func(context.Context, tuple.Tuple2[A, B]) error) Handler {
	return typed(tuple.As2[A, B], fn)
}

func Typed3[A, B, C any](fn func(context.Context, tuple.Tuple3[A, B, C]) error) Handler {
	return typed(tuple.As3[A, B, C], fn)
}

func Typed4[A, B, C, D any](fn func(context.Context, tuple.Tuple4[A, B, C, D]) error) Handler {
	return typed(tuple.As4[A, B, C, D], fn)
}

func Typed5[A, B, C, D, E any](fn func(context.Context, tuple.Tuple5[A, B, C, D, E]) error) Handler {
	return typed(tuple.As5[A, B, C, D, E], fn)
}

func Typed6[A, B, C, D, E, F any](fn func(context.Context, tuple.Tuple6[A, B, C, D, E, F]) error) Handler {
	return typed(tuple.As6[A, B, C, D, E, F], fn)
}

func Typed7[A, B, C, D, E, F, G any](fn func(context.Context, tuple.Tuple7[A, B, C, D, E, F, G]) error) Handler {
	return typed(tuple.As7[A, B, C, D, E, F, G], fn)
}

func Typed8[A, B, C, D, E, F, G, H any](fn func(context.Context, tuple.Tuple8[A, B, C, D, E, F, G, H]) error) Handler {
	return typed(tuple.As8[A, B, C, D, E, F, G, H], fn)
}
