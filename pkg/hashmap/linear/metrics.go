package linear

import (
	"github.com/cockroachdb/errors"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics is a set of Prometheus collectors describing table activity.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	inserts     prometheus.Counter
	updates     prometheus.Counter
	deletes     prometheus.Counter
	growths     prometheus.Counter
	relocations prometheus.Counter
	probes      prometheus.Histogram
}

// NewMetrics creates the table collectors under namespace and registers
// them with reg. A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer, namespace string) (*Metrics, error) {
	counter := func(name, help string) prometheus.Counter {
		return prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: MetricsSubsystem,
			Name:      name,
			Help:      help,
		})
	}
	m := &Metrics{
		inserts:     counter("inserts_total", "Number of new keys inserted."),
		updates:     counter("updates_total", "Number of inserts that overwrote an existing key."),
		deletes:     counter("deletes_total", "Number of keys deleted."),
		growths:     counter("growths_total", "Number of times a table doubled its capacity."),
		relocations: counter("relocations_total", "Number of entries moved while repairing probe chains after a delete."),
		probes: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: MetricsSubsystem,
			Name:      "probe_length",
			Help:      "Distance walked from the home slot by inserts and lookups.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 8),
		}),
	}
	if reg == nil {
		return m, nil
	}
	for _, c := range m.collectors() {
		if err := reg.Register(c); err != nil {
			return nil, errors.Wrap(err, "register table metrics")
		}
	}
	return m, nil
}

func (m *Metrics) collectors() []prometheus.Collector {
	return []prometheus.Collector{m.inserts, m.updates, m.deletes, m.growths, m.relocations, m.probes}
}

func (m *Metrics) inserted(replaced bool, probe int) {
	if m == nil {
		return
	}
	if replaced {
		m.updates.Inc()
	} else {
		m.inserts.Inc()
	}
	m.probes.Observe(float64(probe))
}

func (m *Metrics) probed(probe int) {
	if m == nil {
		return
	}
	m.probes.Observe(float64(probe))
}

func (m *Metrics) deleted(moved int) {
	if m == nil {
		return
	}
	m.deletes.Inc()
	m.relocations.Add(float64(moved))
}

func (m *Metrics) grew() {
	if m == nil {
		return
	}
	m.growths.Inc()
}
