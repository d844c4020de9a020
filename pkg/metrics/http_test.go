package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordHTTPRequest(t *testing.T) {
	m, err := NewHTTPMetrics(prometheus.NewRegistry())
	require.NoError(t, err)

	m.RecordHTTPRequest("GET", "/api/jobs/:id", 200, 0.01)
	m.RecordHTTPRequest("GET", "/api/jobs/:id", 404, 0.01)
	m.RecordHTTPRequest("POST", "/api/jobs", 500, 0.2)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues("GET", "/api/jobs/:id", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequestErrors.WithLabelValues("GET", "/api/jobs/:id", "client")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequestErrors.WithLabelValues("POST", "/api/jobs", "server")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.httpRequestDuration))
}

func TestRecordAuthOperation(t *testing.T) {
	m, err := NewHTTPMetrics(prometheus.NewRegistry())
	require.NoError(t, err)

	m.RecordAuthOperation("login", false)
	m.RecordAuthOperation("login", false)
	m.RecordAuthOperation("login", true)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.authOperationsTotal.WithLabelValues("login", "failure")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.authOperationsTotal.WithLabelValues("login", "success")))
}

func TestNewHTTPMetrics_DoubleRegister(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewHTTPMetrics(reg)
	require.NoError(t, err)

	_, err = NewHTTPMetrics(reg)
	assert.Error(t, err)
}
