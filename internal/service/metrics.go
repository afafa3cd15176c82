package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics collects the service's operational counters.
type Metrics struct {
	LoadsTotal    *prometheus.CounterVec
	BuildDuration prometheus.Histogram
	Generations   prometheus.Gauge
}

// NewMetrics registers the treeview metrics on the given registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		LoadsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "treeview",
			Name:      "family_loads_total",
			Help:      "Root family loads by outcome.",
		}, []string{"outcome"}),
		BuildDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "treeview",
			Name:      "tree_build_seconds",
			Help:      "Time spent loading descendants and building generations.",
			Buckets:   prometheus.DefBuckets,
		}),
		Generations: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "treeview",
			Name:      "generations",
			Help:      "Generation count of the currently loaded tree.",
		}),
	}
}

const (
	outcomeOK         = "ok"
	outcomeError      = "error"
	outcomeSuperseded = "superseded"
)
