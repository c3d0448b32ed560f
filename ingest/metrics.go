package ingest

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type metrics struct {
	nodes             *prometheus.CounterVec
	updateErrors      prometheus.Counter
	structuralChanges *prometheus.CounterVec
}

func newMetrics(reg prometheus.Registerer) *metrics {
	f := promauto.With(reg)
	return &metrics{
		nodes: f.NewCounterVec(prometheus.CounterOpts{
			Name: "nodeshape_records_total",
			Help: "Record events applied to shape metadata, by node type and operation.",
		}, []string{"type", "op"}),
		updateErrors: f.NewCounter(prometheus.CounterOpts{
			Name: "nodeshape_update_errors_total",
			Help: "Record events that violated the add/delete protocol.",
		}),
		structuralChanges: f.NewCounterVec(prometheus.CounterOpts{
			Name: "nodeshape_structural_changes_total",
			Help: "Transitions of a node type's metadata from clean to dirty.",
		}, []string{"type"}),
	}
}
