// Package metrics expone contadores Prometheus de registro de cargas.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/Cargas-api/internal/application/carga"
)

const namespace = "cargas"

var _ carga.Recorder = (*Recorder)(nil)

// Recorder implementa carga.Recorder sobre un registro propio (no el global).
type Recorder struct {
	registry        *prometheus.Registry
	loads           *prometheus.CounterVec
	lines           prometheus.Counter
	reconcileErrors prometheus.Counter
	exportErrors    *prometheus.CounterVec
}

// NewRecorder registra los contadores y los colectores de proceso y runtime.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		loads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "loads_total",
			Help:      "Cargas registradas por estado (ok, saved_with_warnings, failed).",
		}, []string{"status"}),
		lines: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "load_lines_total",
			Help:      "Líneas de producto en cargas guardadas.",
		}),
		reconcileErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reconcile_failures_total",
			Help:      "Incrementos de sub-inventario fallidos.",
		}),
		exportErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "export_failures_total",
			Help:      "Exportaciones fallidas por formato.",
		}, []string{"format"}),
	}
	r.registry.MustRegister(
		r.loads, r.lines, r.reconcileErrors, r.exportErrors,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return r
}

func (r *Recorder) LoadRegistered(status string, lines int) {
	r.loads.WithLabelValues(status).Inc()
	if status != carga.StatusFailed {
		r.lines.Add(float64(lines))
	}
}

// ReconcileFailed no etiqueta por producto para no disparar la cardinalidad.
func (r *Recorder) ReconcileFailed(string) {
	r.reconcileErrors.Inc()
}

func (r *Recorder) ExportFailed(format string) {
	r.exportErrors.WithLabelValues(format).Inc()
}

// Handler expone el registro en formato de texto Prometheus.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}
