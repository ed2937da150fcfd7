package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// PromRecorder counts classifier outcomes.
type PromRecorder struct {
	total *prometheus.CounterVec
}

func registerCollector(reg prometheus.Registerer, c prometheus.Collector) prometheus.Collector {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			return are.ExistingCollector
		}
	}
	return c
}

// NewPromRecorder registers contacturl_classifications_total{kind,result} on
// reg. A nil reg means prometheus.DefaultRegisterer. Registering twice on the
// same registry reuses the existing counter.
func NewPromRecorder(reg prometheus.Registerer, namespace, subsystem string) *PromRecorder {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "contacturl"
	}

	total := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace, Subsystem: subsystem,
		Name: "classifications_total", Help: "Classifications by kind and result",
	}, []string{"kind", "result"})

	if existing, ok := registerCollector(reg, total).(*prometheus.CounterVec); ok {
		total = existing
	}
	return &PromRecorder{total: total}
}

// Observe records one outcome. result is "ok" or a failure reason.
func (p *PromRecorder) Observe(kind, result string) {
	if p == nil {
		return
	}
	p.total.WithLabelValues(kind, result).Inc()
}
