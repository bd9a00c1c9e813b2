// Package metrics exposes Prometheus counters for HTTP traffic and for the
// dealership commands. A nil *Metrics is valid and records nothing.
package metrics

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"net/http"
	"strconv"
	"time"
)

const namespace = "dealership"

type Metrics struct {
	HTTPRequests        *prometheus.CounterVec
	HTTPDuration        *prometheus.HistogramVec
	AppointmentsBooked  *prometheus.CounterVec
	InventoryAdded      prometheus.Counter
	FinancingCalculated prometheus.Counter
	CommandsRejected    *prometheus.CounterVec

	reg prometheus.Registerer
}

// New registers every collector on reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	m := &Metrics{
		HTTPRequests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		HTTPDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		AppointmentsBooked: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "appointments_booked_total",
			Help:      "Appointments accepted, by kind.",
		}, []string{"kind"}),
		InventoryAdded: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "inventory_items_added_total",
			Help:      "Vehicles added to the inventory.",
		}),
		FinancingCalculated: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "financing_calculations_total",
			Help:      "Financing options saved to a vehicle.",
		}),
		CommandsRejected: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "commands_rejected_total",
			Help:      "Commands rejected before any change, by command and error kind.",
		}, []string{"command", "kind"}),
	}
	m.reg = reg
	return m
}

// Handler serves the registry New was given, or the default one if it cannot be gathered.
func (m *Metrics) Handler() http.Handler {
	if g, ok := m.reg.(prometheus.Gatherer); ok {
		return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
	}
	return promhttp.Handler()
}

func (m *Metrics) AppointmentBooked(kind string) {
	if m == nil {
		return
	}
	m.AppointmentsBooked.WithLabelValues(kind).Inc()
}

func (m *Metrics) ItemAdded() {
	if m == nil {
		return
	}
	m.InventoryAdded.Inc()
}

func (m *Metrics) FinancingSaved() {
	if m == nil {
		return
	}
	m.FinancingCalculated.Inc()
}

func (m *Metrics) Rejected(command, kind string) {
	if m == nil {
		return
	}
	m.CommandsRejected.WithLabelValues(command, kind).Inc()
}

// Middleware counts and times every request. Routes are labelled by their
// registered path (":vin", not the VIN itself) to keep cardinality bounded.
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if m == nil {
				return next(c)
			}

			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			method := c.Request().Method
			status := strconv.Itoa(c.Response().Status)

			m.HTTPRequests.WithLabelValues(method, route, status).Inc()
			m.HTTPDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
			return nil
		}
	}
}
