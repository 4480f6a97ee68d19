package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scrape(t *testing.T, reg *prometheus.Registry) string {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	Handler(reg).ServeHTTP(w, req)

	resp := w.Result()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}

func TestCollector_HTTPRequests(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.ObserveHTTPRequest(http.MethodGet, "/api/service/list", 200, 15*time.Millisecond)
	c.ObserveHTTPRequest(http.MethodGet, "/api/service/list", 200, 5*time.Millisecond)
	c.ObserveHTTPRequest(http.MethodDelete, "/api/service/{id}", 401, time.Millisecond)

	body := scrape(t, reg)
	assert.Contains(t, body, `booking_http_requests_total{method="GET",route="/api/service/list",status="200"} 2`)
	assert.Contains(t, body, `booking_http_requests_total{method="DELETE",route="/api/service/{id}",status="401"} 1`)
	assert.Contains(t, body, `booking_http_request_duration_seconds_count{method="GET",route="/api/service/list"} 2`)
}

func TestCollector_AuthEvents(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordAuthEvent(AuthActionLogin, OutcomeSuccess)
	c.RecordAuthEvent(AuthActionLogin, OutcomeRejected)
	c.RecordAuthEvent(AuthActionLogin, OutcomeRejected)

	body := scrape(t, reg)
	assert.Contains(t, body, `booking_auth_events_total{action="login",outcome="success"} 1`)
	assert.Contains(t, body, `booking_auth_events_total{action="login",outcome="rejected"} 2`)
}

func TestNewCollector_DoubleRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	_ = NewCollector(reg)

	assert.Panics(t, func() { NewCollector(reg) })
}

func TestNoop(t *testing.T) {
	var r Recorder = Noop{}
	assert.NotPanics(t, func() {
		r.ObserveHTTPRequest("GET", "/", 200, time.Second)
		r.RecordAuthEvent(AuthActionLogout, OutcomeSuccess)
	})
}
