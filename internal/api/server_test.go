package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/senior-care-guide/internal/domain"
	"github.com/senior-care-guide/internal/metrics"
	"github.com/senior-care-guide/internal/service"
	"github.com/senior-care-guide/internal/session"
	"github.com/senior-care-guide/internal/storage"
	"github.com/senior-care-guide/internal/waitlist"
)

type stubConfig struct {
	cfg domain.Config
}

func (s *stubConfig) GetConfig() *domain.Config { return &s.cfg }

func (s *stubConfig) GetServerConfig() *domain.ServerConfig { return &s.cfg.Server }

func (s *stubConfig) GetStorageConfig() *domain.StorageConfig { return &s.cfg.Storage }

func (s *stubConfig) Reload() error { return nil }

func (s *stubConfig) Validate() error { return nil }

func (s *stubConfig) IsProduction() bool { return false }

func (s *stubConfig) IsDevelopment() bool { return true }

type testEnv struct {
	server  *Server
	session *session.Session
	store   *storage.MemoryStore
	metrics *metrics.Collector
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger, _ := test.NewNullLogger()
	store := storage.NewMemoryStore()
	collector := metrics.NewCollector("scg_test")

	n := 0
	sess := session.Open(context.Background(), store,
		session.WithLogger(logger),
		session.WithMetrics(collector),
		session.WithClock(func() time.Time { return time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC) }),
		session.WithIDGenerator(func() string {
			n++
			return "item-" + string(rune('0'+n))
		}),
	)

	cfg := &stubConfig{cfg: domain.Config{Logging: domain.LoggingConfig{Level: "info"}}}
	server := NewServer(cfg, sess, service.NewCarePathEngine(logger), collector, logger)
	gin.SetMode(gin.TestMode)

	return &testEnv{server: server, session: sess, store: store, metrics: collector}
}

func (e *testEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	e.server.Handler().ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func highNeedAssessment() domain.Assessment {
	a := domain.DefaultAssessment()
	a.ADL = domain.ADLNeedsDailyHelp
	return a
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/health", nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := decode[map[string]any](t, w)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "2024-03-01", body["today"])
	assert.Equal(t, float64(0), body["due_count"])
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestAssessment_GetAndPut(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/api/v1/assessment", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, domain.DefaultAssessment(), decode[domain.Assessment](t, w))

	w = env.do(t, http.MethodPut, "/api/v1/assessment", highNeedAssessment())
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Assessment     domain.Assessment      `json:"assessment"`
		Recommendation recommendationResponse `json:"recommendation"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, highNeedAssessment(), body.Assessment)
	assert.Equal(t, domain.CarePathLongTermCare, body.Recommendation.Path)
	assert.LessOrEqual(t, len(body.Recommendation.Preview), previewReasons)
	assert.Equal(t, highNeedAssessment(), env.session.Assessment())
}

func TestAssessment_PutRejectsUnknownOption(t *testing.T) {
	env := newTestEnv(t)

	bad := map[string]string{
		"province":  "Quebec",
		"age":       "70to79",
		"adl":       "SomeHelp",
		"cognitive": "None",
		"assessed":  "NotSure",
		"budget":    "PreferNot",
	}
	w := env.do(t, http.MethodPut, "/api/v1/assessment", bad)

	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decode[map[string]any](t, w)
	assert.Equal(t, domain.ErrCodeValidation, body["code"])
	assert.NotEmpty(t, body["fields"])
	assert.Equal(t, domain.DefaultAssessment(), env.session.Assessment())
}

func TestAssessment_PutMalformedBody(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodPut, "/api/v1/assessment", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	env.server.Handler().ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, domain.ErrCodeInvalidInput, decode[map[string]any](t, w)["code"])
}

func TestRecommendation_Language(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/api/v1/recommendation", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "en", decode[recommendationResponse](t, w).Language)

	w = env.do(t, http.MethodGet, "/api/v1/recommendation?lang=zh", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "zh", decode[recommendationResponse](t, w).Language)

	w = env.do(t, http.MethodGet, "/api/v1/recommendation?lang=fr", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRecommendation_EvaluateLeavesSessionAlone(t *testing.T) {
	env := newTestEnv(t)

	req := evaluateRequest{Assessment: highNeedAssessment(), Language: "zh"}
	w := env.do(t, http.MethodPost, "/api/v1/recommendation", req)

	require.Equal(t, http.StatusOK, w.Code)
	rec := decode[recommendationResponse](t, w)
	assert.Equal(t, domain.CarePathLongTermCare, rec.Path)
	assert.Equal(t, "zh", rec.Language)
	assert.Equal(t, domain.DefaultAssessment(), env.session.Assessment())

	req.Language = "xx"
	w = env.do(t, http.MethodPost, "/api/v1/recommendation", req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLanguage(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/api/v1/language", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode[languageResponse](t, w)
	assert.Equal(t, "en", string(body.Language))
	assert.Len(t, body.Supported, 2)

	w = env.do(t, http.MethodPut, "/api/v1/language", languageRequest{Language: "ZH"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "zh", string(decode[languageResponse](t, w).Language))

	stored, err := env.store.Get(context.Background(), storage.LanguageKey)
	require.NoError(t, err)
	assert.Equal(t, "zh", string(stored))

	w = env.do(t, http.MethodPut, "/api/v1/language", languageRequest{Language: "fr"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "zh", string(env.session.Language()))

	w = env.do(t, http.MethodPut, "/api/v1/language", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCatalog(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/api/v1/i18n/zh", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode[map[string]any](t, w)
	assert.Equal(t, "zh", body["language"])
	assert.NotEmpty(t, body["messages"])

	w = env.do(t, http.MethodGet, "/api/v1/i18n/fr", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestWaitlist_Lifecycle(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/v1/waitlist", domain.WaitlistDraft{Facility: "   "})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, domain.ErrCodeRejected, decode[map[string]any](t, w)["code"])

	w = env.do(t, http.MethodPost, "/api/v1/waitlist", domain.WaitlistDraft{Facility: "Maple", DateApplied: "03/01/2024"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(t, http.MethodPost, "/api/v1/waitlist", domain.WaitlistDraft{Facility: " Maple Grove ", DateApplied: "2024-02-01"})
	require.Equal(t, http.StatusCreated, w.Code)
	item := decode[domain.WaitlistItem](t, w)
	assert.Equal(t, "Maple Grove", item.Facility)
	assert.Equal(t, waitlist.DefaultFollowUpDays, item.FollowUpEveryDays)

	w = env.do(t, http.MethodPost, "/api/v1/waitlist", domain.WaitlistDraft{Facility: "Birch House"})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "2024-03-01", decode[domain.WaitlistItem](t, w).DateApplied)

	w = env.do(t, http.MethodGet, "/api/v1/waitlist", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list struct {
		Items    []waitlist.ItemView `json:"items"`
		DueCount int                 `json:"dueCount"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list.Items, 2)
	assert.Equal(t, "Birch House", list.Items[0].Facility)
	assert.Equal(t, waitlist.StatusDue, list.Items[1].Status)
	assert.Equal(t, 1, list.DueCount)

	w = env.do(t, http.MethodGet, "/api/v1/waitlist/due", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), decode[map[string]any](t, w)["count"])

	w = env.do(t, http.MethodPost, "/api/v1/waitlist/"+item.ID+"/follow-up", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "2024-03-01", decode[domain.WaitlistItem](t, w).LastFollowUp)
	assert.Equal(t, 0, env.session.DueCount())

	w = env.do(t, http.MethodPost, "/api/v1/waitlist/missing/follow-up", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = env.do(t, http.MethodDelete, "/api/v1/waitlist/"+item.ID, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Len(t, env.session.Waitlist(), 1)

	w = env.do(t, http.MethodDelete, "/api/v1/waitlist/"+item.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	env := newTestEnv(t)

	env.do(t, http.MethodGet, "/health", nil)
	w := env.do(t, http.MethodGet, "/metrics", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "scg_test_http_requests_total")
	assert.Contains(t, w.Body.String(), `route="/health"`)
}

func TestRateLimitEnabled(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger, _ := test.NewNullLogger()
	sess := session.Open(context.Background(), storage.NewMemoryStore(), session.WithLogger(logger))

	cfg := &stubConfig{cfg: domain.Config{
		Logging:   domain.LoggingConfig{Level: "info"},
		RateLimit: domain.RateLimitConfig{Enabled: true, RequestsPerSecond: 0.1, Burst: 1},
	}}
	server := NewServer(cfg, sess, service.NewCarePathEngine(logger), nil, logger)

	codes := make([]int, 0, 2)
	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		server.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestStart_ShutsDownOnCancel(t *testing.T) {
	logger, _ := test.NewNullLogger()
	sess := session.Open(context.Background(), storage.NewMemoryStore(), session.WithLogger(logger))
	cfg := &stubConfig{cfg: domain.Config{Server: domain.ServerConfig{Host: "127.0.0.1", Port: 0, ShutdownTimeout: time.Second}}}
	server := NewServer(cfg, sess, service.NewCarePathEngine(logger), nil, logger)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- server.Start(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
