package actor

import (
	"github.com/codewandler/clstr-msg/core/dispatch"
	"github.com/codewandler/clstr-msg/core/metrics"
)

// Metrics is what an actor reports while processing its mailbox.
// Implementations must be safe for concurrent use.
type Metrics interface {
	MessageDuration(msgType string) metrics.Timer
	MessageOutcome(msgType string, outcome dispatch.Outcome)
	MessagePanic(msgType string)

	MailboxDepth(actorID string, depth int)
	StashDepth(actorID string, depth int)
}

type nopMetrics struct{}

func (nopMetrics) MessageDuration(string) metrics.Timer    { return metrics.NopTimer() }
func (nopMetrics) MessageOutcome(string, dispatch.Outcome) {}
func (nopMetrics) MessagePanic(string)                     {}

func (nopMetrics) MailboxDepth(string, int) {}
func (nopMetrics) StashDepth(string, int)   {}

// NopMetrics returns a Metrics implementation that records nothing.
func NopMetrics() Metrics { return nopMetrics{} }
