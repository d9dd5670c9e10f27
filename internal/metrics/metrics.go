package metrics

import (
	"net/http"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Sample outcomes used as the "result" label.
const (
	ResultAccepted = "accepted"
	ResultRejected = "rejected"
	ResultInvalid  = "invalid"
)

// Metric holds the regulator collectors. Each instance owns its registry so
// several can coexist in tests.
type Metric struct {
	reg *prometheus.Registry

	compensations *prometheus.CounterVec
	samples       *prometheus.CounterVec
	queueDepth    prometheus.Gauge
	temperature   prometheus.Gauge
	target        prometheus.Gauge
	intensity     prometheus.Gauge
}

func New(appID string) *Metric {
	ns := strings.NewReplacer("-", "_", " ", "_").Replace(appID)

	m := &Metric{
		reg: prometheus.NewRegistry(),
		compensations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: ns,
				Name:      "compensations_total",
				Help:      "Out of band readings grouped by the setpoint chosen as target.",
			},
			[]string{"point"},
		),
		samples: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: ns,
				Name:      "samples_total",
				Help:      "Consumed samples by outcome.",
			},
			[]string{"result"},
		),
		queueDepth: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: ns,
			Name:      "queue_depth",
			Help:      "Samples waiting in the work queue.",
		}),
		temperature: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: ns,
			Name:      "box_temperature_celsius",
			Help:      "Last temperature reading.",
		}),
		target: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: ns,
			Name:      "target_celsius",
			Help:      "Current target setpoint.",
		}),
		intensity: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: ns,
			Name:      "actuator_intensity",
			Help:      "Actuator intensity, 0 to 100.",
		}),
	}

	m.reg.MustRegister(
		m.compensations,
		m.samples,
		m.queueDepth,
		m.temperature,
		m.target,
		m.intensity,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *Metric) Compensation(point string) {
	m.compensations.WithLabelValues(point).Inc()
}

func (m *Metric) Sample(result string) {
	m.samples.WithLabelValues(result).Inc()
}

func (m *Metric) QueueDepth(n int)          { m.queueDepth.Set(float64(n)) }
func (m *Metric) Temperature(c float64)     { m.temperature.Set(c) }
func (m *Metric) Target(c float64)          { m.target.Set(c) }
func (m *Metric) ActuatorIntensity(v uint8) { m.intensity.Set(float64(v)) }

// Registry exposes the underlying registry.
func (m *Metric) Registry() *prometheus.Registry { return m.reg }

// Handler serves the registry in the Prometheus exposition format.
func (m *Metric) Handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{Registry: m.reg})
}
