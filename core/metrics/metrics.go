// Package metrics declares the instruments the actor runtime reports to, so
// that core packages stay independent of any metrics backend. See
// adapters/prometheus for the Prometheus implementation.
package metrics

// Timer measures one operation; call ObserveDuration when it completes:
//
//	defer m.MessageDuration(msgType).ObserveDuration()
type Timer interface {
	ObserveDuration()
}

type nopTimer struct{}

func (nopTimer) ObserveDuration() {}

// NopTimer returns a Timer that records nothing.
func NopTimer() Timer { return nopTimer{} }
