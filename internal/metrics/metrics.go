// Package metrics counts search activity in a private Prometheus registry
// and writes it in the node_exporter textfile format.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"hat-surround/internal/surround"
)

const metricsNamespace = "hatsurround"

const searchSubsystem = "search"

// Metrics holds the search counters. It implements surround.Observer.
type Metrics struct {
	registry *prometheus.Registry

	// PlacementsTried counts candidate placements made.
	PlacementsTried prometheus.Counter
	// PlacementsPruned counts placements rejected for leaving a hole.
	PlacementsPruned prometheus.Counter
	// SurroundsFound counts complete coronas.
	SurroundsFound prometheus.Counter

	// PatchesExamined and PatchesSurroundable mirror the last survey result.
	PatchesExamined     prometheus.Gauge
	PatchesSurroundable prometheus.Gauge
}

var _ surround.Observer = (*Metrics)(nil)

// New creates the counters and registers them on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		PlacementsTried: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: searchSubsystem,
			Name:      "placements_tried_total",
			Help:      "Candidate hat placements made by the surround search",
		}),
		PlacementsPruned: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: searchSubsystem,
			Name:      "placements_pruned_total",
			Help:      "Placements rejected because the boundary stopped being simply connected",
		}),
		SurroundsFound: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: searchSubsystem,
			Name:      "surrounds_found_total",
			Help:      "Complete coronas yielded by the surround search",
		}),
		PatchesExamined: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Subsystem: "survey",
			Name:      "patches_examined",
			Help:      "2-patches examined by the last survey",
		}),
		PatchesSurroundable: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Subsystem: "survey",
			Name:      "patches_surroundable",
			Help:      "2-patches found to admit a 3-patch by the last survey",
		}),
	}
	m.registry.MustRegister(
		m.PlacementsTried,
		m.PlacementsPruned,
		m.SurroundsFound,
		m.PatchesExamined,
		m.PatchesSurroundable,
	)
	return m
}

// Registry returns the registry holding the counters.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) PlacementTried()  { m.PlacementsTried.Inc() }
func (m *Metrics) PlacementPruned() { m.PlacementsPruned.Inc() }
func (m *Metrics) SurroundFound()   { m.SurroundsFound.Inc() }

// ObserveSurvey records the running survey counts.
func (m *Metrics) ObserveSurvey(res surround.SurveyResult) {
	m.PatchesExamined.Set(float64(res.Examined))
	m.PatchesSurroundable.Set(float64(res.Surroundable))
}

// WriteTextfile writes every metric to path, replacing it atomically.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("metrics: write %s: %w", path, err)
	}
	return nil
}
