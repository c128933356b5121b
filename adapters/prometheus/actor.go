package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/codewandler/clstr-msg/core/actor"
	"github.com/codewandler/clstr-msg/core/dispatch"
	"github.com/codewandler/clstr-msg/core/metrics"
)

// actorMetrics implements actor.Metrics using Prometheus.
type actorMetrics struct {
	messageDuration *prometheus.HistogramVec
	messagesTotal   *prometheus.CounterVec
	panicTotal      *prometheus.CounterVec
	mailboxDepth    *prometheus.GaugeVec
	stashDepth      *prometheus.GaugeVec
}

func NewActorMetrics(reg prometheus.Registerer) actor.Metrics {
	m := &actorMetrics{
		messageDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "clstr_actor_message_duration_seconds",
			Help:    "Message handling time in seconds",
			Buckets: defaultBuckets,
		}, []string{"message_type"}),

		messagesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "clstr_actor_messages_total",
			Help: "Total number of messages handled, by outcome",
		}, []string{"message_type", "outcome"}),

		panicTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "clstr_actor_panics_total",
			Help: "Total number of handler panics",
		}, []string{"message_type"}),

		mailboxDepth: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "clstr_actor_mailbox_depth",
			Help: "Current mailbox queue depth",
		}, []string{"actor_id"}),

		stashDepth: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "clstr_actor_stash_depth",
			Help: "Messages waiting in the stash",
		}, []string{"actor_id"}),
	}

	reg.MustRegister(
		m.messageDuration,
		m.messagesTotal,
		m.panicTotal,
		m.mailboxDepth,
		m.stashDepth,
	)

	return m
}

func (m *actorMetrics) MessageDuration(msgType string) metrics.Timer {
	return newTimer(m.messageDuration.WithLabelValues(msgType))
}

func (m *actorMetrics) MessageOutcome(msgType string, o dispatch.Outcome) {
	m.messagesTotal.WithLabelValues(msgType, o.String()).Inc()
}

func (m *actorMetrics) MessagePanic(msgType string) {
	m.panicTotal.WithLabelValues(msgType).Inc()
}

func (m *actorMetrics) MailboxDepth(actorID string, depth int) {
	m.mailboxDepth.WithLabelValues(actorID).Set(float64(depth))
}

func (m *actorMetrics) StashDepth(actorID string, depth int) {
	m.stashDepth.WithLabelValues(actorID).Set(float64(depth))
}

var _ actor.Metrics = (*actorMetrics)(nil)
