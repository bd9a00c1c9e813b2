package metrics

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCounters(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.AppointmentBooked("sales")
	m.AppointmentBooked("sales")
	m.AppointmentBooked("service")
	m.ItemAdded()
	m.FinancingSaved()
	m.Rejected("add_inventory", "missing_field")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.AppointmentsBooked.WithLabelValues("sales")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.AppointmentsBooked.WithLabelValues("service")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.InventoryAdded))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.FinancingCalculated))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CommandsRejected.WithLabelValues("add_inventory", "missing_field")))
}

func TestNilMetrics(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.AppointmentBooked("sales")
		m.ItemAdded()
		m.FinancingSaved()
		m.Rejected("x", "y")
	})
}

func TestMiddleware_LabelsByRoute(t *testing.T) {
	m := New(prometheus.NewRegistry())

	e := echo.New()
	e.Use(m.Middleware())
	e.GET("/api/inventory/:vin/financing", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	for _, vin := range []string{"A1", "B2"} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/inventory/"+vin+"/financing", nil))
		require.Equal(t, http.StatusOK, rec.Code)
	}

	got := testutil.ToFloat64(m.HTTPRequests.WithLabelValues(http.MethodGet, "/api/inventory/:vin/financing", "200"))
	assert.Equal(t, 2.0, got)
}

func TestHandler_ServesOwnRegistry(t *testing.T) {
	m := New(prometheus.NewRegistry())
	m.ItemAdded()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "dealership_inventory_items_added_total 1")
}
