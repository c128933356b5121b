// Package transport moves messages between processes by topic. A message is
// encoded on publish and rebuilt on the receiving side, so subscribers get
// their own storage and never share state with the publisher.
package transport

import (
	"context"
	"errors"

	"github.com/codewandler/clstr-msg/core/dispatch"
	"github.com/codewandler/clstr-msg/core/tuple"
)

var (
	ErrClosed     = errors.New("transport closed")
	ErrEmptyTopic = errors.New("topic is required")
)

type Subscription interface {
	Unsubscribe() error
}

type Transport interface {
	// Publish delivers msg to every current subscriber of topic.
	Publish(ctx context.Context, topic string, msg tuple.Message) error

	// Subscribe invokes h for each message published to topic until the
	// subscription is removed or ctx is done.
	Subscribe(ctx context.Context, topic string, h dispatch.Handler) (Subscription, error)

	Close() error
}
