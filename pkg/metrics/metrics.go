// Package metrics exposes Prometheus counters and gauges describing a
// running capture session, the way cmd/tcgdiskstat reported per-drive
// gauges: a small fixed set of metrics, registered once, gathered on
// demand.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds every metric a capture session reports and the
// Prometheus registry they are registered against.
type Registry struct {
	reg *prometheus.Registry

	packetsByOpcode     *prometheus.CounterVec
	malformedPackets    *prometheus.CounterVec
	indexTableOccupancy prometheus.Gauge
}

// NewRegistry builds and registers a fresh set of metrics.
func NewRegistry() *Registry {
	r := &Registry{
		reg: prometheus.NewPedanticRegistry(),
		packetsByOpcode: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "hcimon_monitor_packets_total",
			Help: "Monitor-channel packets dispatched, by monitor opcode.",
		}, []string{"opcode"}),
		malformedPackets: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "hcimon_malformed_packets_total",
			Help: "Packets rejected as malformed by a dissector, by reason.",
		}, []string{"reason"}),
		indexTableOccupancy: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "hcimon_index_table_occupancy",
			Help: "Number of adapter indices currently tracked in the index table.",
		}),
	}

	r.reg.MustRegister(r.packetsByOpcode, r.malformedPackets, r.indexTableOccupancy)
	return r
}

// RecordPacket increments the counter for a dispatched monitor-channel
// opcode.
func (r *Registry) RecordPacket(opcodeName string) {
	r.packetsByOpcode.WithLabelValues(opcodeName).Inc()
}

// RecordMalformed increments the counter for a rejected packet, tagged
// with why it was rejected (e.g. "invalid-command-size", "too-short-event").
func (r *Registry) RecordMalformed(reason string) {
	r.malformedPackets.WithLabelValues(reason).Inc()
}

// SetIndexTableOccupancy reports how many adapter indices are currently
// tracked.
func (r *Registry) SetIndexTableOccupancy(n int) {
	r.indexTableOccupancy.Set(float64(n))
}

// Handler returns an http.Handler serving this registry's metrics in the
// Prometheus text exposition format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{})
}
