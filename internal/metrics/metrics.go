// Package metrics exposes Prometheus collectors for the trading desk.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for a desk.
type Metrics struct {
	OrdersPlaced    prometheus.Counter
	OrdersRejected  prometheus.Counter
	Recommendations prometheus.Counter
	TrackingCycles  prometheus.Counter
	Exits           *prometheus.CounterVec // labels: signal
	ActivePositions prometheus.Gauge
	TotalPnL        prometheus.Gauge
	CycleDuration   prometheus.Histogram
	AlgoTransitions *prometheus.CounterVec // labels: mode, state
}

// New registers the desk metrics on reg and returns them.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		OrdersPlaced: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "desk_orders_placed_total",
			Help: "Total simulated buy orders that opened a position",
		}),
		OrdersRejected: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "desk_orders_rejected_total",
			Help: "Total buy orders rejected by validation",
		}),
		Recommendations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "desk_recommendations_total",
			Help: "Total recommendations generated",
		}),
		TrackingCycles: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "desk_tracking_cycles_total",
			Help: "Total tracking cycles run",
		}),
		Exits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "desk_exits_total",
			Help: "Positions closed, by exit signal",
		}, []string{"signal"}),
		ActivePositions: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "desk_active_positions",
			Help: "Positions currently Active",
		}),
		TotalPnL: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "desk_total_pnl_rupees",
			Help: "Sum of P&L across all positions",
		}),
		CycleDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "desk_tracking_cycle_duration_seconds",
			Help:    "Wall time of one tracking cycle",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
		}),
		AlgoTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "desk_algo_transitions_total",
			Help: "Algo mode state changes",
		}, []string{"mode", "state"}),
	}

	reg.MustRegister(
		m.OrdersPlaced,
		m.OrdersRejected,
		m.Recommendations,
		m.TrackingCycles,
		m.Exits,
		m.ActivePositions,
		m.TotalPnL,
		m.CycleDuration,
		m.AlgoTransitions,
	)
	return m
}

// Handler serves the metrics gathered by g.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
