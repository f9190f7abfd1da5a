package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_IndependentRegistries(t *testing.T) {
	a, b := New(), New()
	a.BeaconRotations.Inc()
	a.Signals.WithLabelValues("mutual").Inc()

	assert.Equal(t, 1.0, testutil.ToFloat64(a.BeaconRotations))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.BeaconRotations))
	assert.Equal(t, 1.0, testutil.ToFloat64(a.Signals.WithLabelValues("mutual")))
}

func TestHandler_ExposesCollectors(t *testing.T) {
	m := New()
	m.SweepRows.WithLabelValues("presence").Add(3)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `waveos_sweep_rows_total{action="presence"} 3`)
	assert.Contains(t, string(body), "waveos_beacon_rotations_total 0")
}
