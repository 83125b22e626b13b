package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	m := New(prometheus.NewRegistry(), "test")

	m.ScanResolved("edit")
	m.ScanResolved("edit")
	m.ScanResolved("create")
	m.HistoryEntriesWritten(3)
	m.HistoryWriteFailed(1)
	m.AccessDenied("export")
	m.ViewOpened()
	m.ViewOpened()
	m.ViewClosed()

	assert.InDelta(t, 2, testutil.ToFloat64(m.scans.WithLabelValues("edit")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.scans.WithLabelValues("create")), 0)
	assert.InDelta(t, 3, testutil.ToFloat64(m.historyEntries), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.historyFailed), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.accessDenied.WithLabelValues("export")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.activeViews), 0)
}

func TestMetrics_Handler(t *testing.T) {
	m := New(prometheus.NewRegistry(), "test")
	m.ScanResolved("create")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `test_scan_resolutions_total{mode="create"} 1`)
}
