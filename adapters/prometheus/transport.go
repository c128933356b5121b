package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/codewandler/clstr-msg/core/dispatch"
)

// TransportMetrics counts deliveries per topic and outcome. Its Observe
// method is a transport.Observer.
type TransportMetrics struct {
	deliveriesTotal *prometheus.CounterVec
}

func NewTransportMetrics(reg prometheus.Registerer) *TransportMetrics {
	m := &TransportMetrics{
		deliveriesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "clstr_transport_deliveries_total",
			Help: "Total number of delivered messages, by outcome",
		}, []string{"topic", "outcome"}),
	}
	reg.MustRegister(m.deliveriesTotal)
	return m
}

func (m *TransportMetrics) Observe(topic string, o dispatch.Outcome) {
	m.deliveriesTotal.WithLabelValues(topic, o.String()).Inc()
}
