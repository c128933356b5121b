// Package prometheus provides Prometheus implementations of the actor and
// transport metrics hooks.
package prometheus

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/codewandler/clstr-msg/core/actor"
	"github.com/codewandler/clstr-msg/core/metrics"
)

// timer wraps a Prometheus histogram to implement the Timer interface.
type timer struct {
	h     prometheus.Observer
	start time.Time
}

func newTimer(h prometheus.Observer) metrics.Timer {
	return &timer{h: h, start: time.Now()}
}

func (t *timer) ObserveDuration() {
	t.h.Observe(time.Since(t.start).Seconds())
}

// Default histogram buckets for latency metrics (in seconds).
var defaultBuckets = []float64{
	.0001, .00025, .0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5, 1,
}

// AllMetrics bundles every metrics implementation of this package.
type AllMetrics struct {
	Actor     actor.Metrics
	Transport *TransportMetrics
}

func NewAllMetrics(reg prometheus.Registerer) *AllMetrics {
	return &AllMetrics{
		Actor:     NewActorMetrics(reg),
		Transport: NewTransportMetrics(reg),
	}
}
