package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"carpool/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_ObserveRoleOperation(t *testing.T) {
	r := New()
	lifecycle := NewLifecycleMetrics(r)

	lifecycle.ObserveRoleOperation("activate", "driver", service.OutcomeSuccess)
	lifecycle.ObserveRoleOperation("activate", "driver", service.OutcomeSuccess)
	lifecycle.ObserveRoleOperation("revoke", "passenger", service.OutcomeNotFound)

	assert.InDelta(t, 2, testutil.ToFloat64(r.roleOperations.WithLabelValues("activate", "driver", "success")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(r.roleOperations.WithLabelValues("revoke", "passenger", "not_found")), 0)
}

func TestRegistry_ObserveHTTPRequest(t *testing.T) {
	r := New()

	r.ObserveHTTPRequest(http.MethodPost, "/roles", http.StatusOK, 15*time.Millisecond)
	r.ObserveHTTPRequest(http.MethodPost, "/roles", http.StatusBadRequest, 5*time.Millisecond)

	assert.InDelta(t, 1, testutil.ToFloat64(r.httpRequestsTotal.WithLabelValues("POST", "/roles", "200")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(r.httpRequestsTotal.WithLabelValues("POST", "/roles", "400")), 0)
	assert.Equal(t, 1, testutil.CollectAndCount(r.httpRequestDuration))
}

func TestRegistry_Handler(t *testing.T) {
	r := New()
	r.ObserveRoleOperation("deactivate", "driver", service.OutcomeSuccess)

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `carpool_role_lifecycle_total{kind="driver",operation="deactivate",outcome="success"} 1`)
	assert.Contains(t, string(body), "go_goroutines")
}
