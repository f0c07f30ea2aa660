package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/senior-care-guide/internal/domain"
)

func TestCollector_Counters(t *testing.T) {
	c := NewCollector("scg")

	c.ObserveRecommendation(domain.CarePathHomeCare, false)
	c.ObserveRecommendation(domain.CarePathHomeCare, true)
	c.ObserveRecommendation(domain.CarePathHomeCare, true)
	c.ObserveWaitlistMutation("add", true)
	c.ObserveWaitlistMutation("add", false)
	c.ObservePersistenceFailure("scg_v1", "save")
	c.SetWaitlist(4, 1)

	assert.Equal(t, 2.0, testutil.ToFloat64(c.Recommendations.WithLabelValues("Home Care", "true")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.Recommendations.WithLabelValues("Home Care", "false")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.WaitlistMutations.WithLabelValues("add", "false")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.PersistenceFailures.WithLabelValues("scg_v1", "save")))
	assert.Equal(t, 4.0, testutil.ToFloat64(c.WaitlistSize))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.WaitlistDue))
}

func TestCollector_IndependentRegistries(t *testing.T) {
	a := NewCollector("scg")
	b := NewCollector("scg")

	a.SetWaitlist(3, 0)

	assert.Equal(t, 3.0, testutil.ToFloat64(a.WaitlistSize))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.WaitlistSize))
}

func TestCollector_Handler(t *testing.T) {
	c := NewCollector("scg")
	c.ObserveHTTP(http.MethodGet, "/health", http.StatusOK, 15*time.Millisecond)

	srv := httptest.NewServer(c.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `scg_http_requests_total{method="GET",route="/health",status="200"} 1`)
	assert.Contains(t, string(body), "scg_http_request_duration_seconds_bucket")
}
