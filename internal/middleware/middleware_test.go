package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"talentops/config"
	"talentops/internal/database/client"
	"talentops/internal/database/fluentd/repository"
	"talentops/internal/pkg/response"
	"talentops/internal/telemetry"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type pipeline struct {
	engine *gin.Engine
	logs   *observer.ObservedLogs
	metric *telemetry.Metric
}

func newPipeline(t *testing.T) *pipeline {
	t.Helper()
	gin.SetMode(gin.TestMode)
	conf := &config.Configuration{}
	conf.App.Name = "talentops"
	conf.Telemetry.Metric.Enabled = true

	observed, logs := observer.New(zapcore.DebugLevel)
	logger := zap.New(observed)
	trace := &telemetry.Trace{}
	metric := telemetry.NewMetricWithRegisterer(conf, prometheus.NewRegistry())
	logRepository := repository.NewLogRepository(conf, &client.NoopClient{})

	engine := gin.New()
	engine.Use(
		NewTraceEntry(trace, metric, conf).Handler(),
		NewLogger(logger, trace, conf, logRepository).LoggerHandler(),
		NewRecovery(logger, trace, conf, logRepository).ErrorHandler(),
		NewResponse(logger, trace, conf, logRepository).FormatHandler(),
	)
	engine.POST("/performance/snapshots", func(c *gin.Context) {
		var body map[string]any
		require.NoError(t, c.ShouldBindJSON(&body))
		response.Create(c, gin.H{"echo": body["date"]})
	})
	engine.GET("/performance/gone", func(c *gin.Context) {
		c.Status(http.StatusNotFound)
	})
	engine.GET("/performance/panic", func(c *gin.Context) {
		panic("boom")
	})
	engine.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	return &pipeline{engine: engine, logs: logs, metric: metric}
}

func (p *pipeline) do(method, path, body string) (*httptest.ResponseRecorder, response.Response) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer secret-token")
	w := httptest.NewRecorder()
	p.engine.ServeHTTP(w, req)
	var envelope response.Response
	_ = json.Unmarshal(w.Body.Bytes(), &envelope)
	return w, envelope
}

func TestPipeline_SuccessEnvelope(t *testing.T) {
	p := newPipeline(t)
	w, envelope := p.do(http.MethodPost, "/performance/snapshots", `{"date":"2025-07-01"}`)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 0, envelope.Code)
	assert.Equal(t, "OK", envelope.Message)
	assert.Equal(t, "Create Success", envelope.Description)
	assert.Equal(t, map[string]any{"echo": "2025-07-01"}, envelope.Data)

	requests := p.logs.FilterMessageSnippet("[Request]").All()
	require.Len(t, requests, 1)
	fields := requests[0].ContextMap()
	assert.Equal(t, `{"date":"2025-07-01"}`, fields["body"])
	assert.Equal(t, "***", fields["headers"].(map[string]string)["authorization"])

	assert.Equal(t, float64(1), testutil.ToFloat64(p.metric.HttpRequestsTotal.WithLabelValues("/performance/snapshots", "201")))
}

func TestPipeline_Errors(t *testing.T) {
	testCases := []struct {
		name       string
		path       string
		wantStatus int
	}{
		{name: "handler 只設狀態碼", path: "/performance/gone", wantStatus: http.StatusNotFound},
		{name: "panic", path: "/performance/panic", wantStatus: http.StatusInternalServerError},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := newPipeline(t)
			w, envelope := p.do(http.MethodGet, tc.path, "")
			assert.Equal(t, tc.wantStatus, w.Code)
			assert.NotZero(t, envelope.Code)
			assert.NotEmpty(t, envelope.RequestID)
			assert.Nil(t, envelope.Data)
		})
	}
}

func TestPipeline_SkipsOperationalRoutes(t *testing.T) {
	p := newPipeline(t)
	w, _ := p.do(http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())
	assert.Zero(t, p.logs.Len())
}

func TestSafeText(t *testing.T) {
	testCases := []struct {
		name  string
		input []byte
		limit int
		want  string
	}{
		{name: "空值", input: nil, limit: 10, want: ""},
		{name: "未超過", input: []byte("季度目標"), limit: 100, want: "季度目標"},
		{name: "截斷", input: []byte("abcdef"), limit: 3, want: "abc…"},
		{name: "非 UTF-8", input: []byte{0xff, 0xfe}, limit: 10, want: "b64://4="},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, safeText(tc.input, tc.limit))
		})
	}
}

func TestIsBinaryContent(t *testing.T) {
	assert.True(t, isBinaryContent("multipart/form-data"))
	assert.True(t, isBinaryContent("application/octet-stream"))
	assert.False(t, isBinaryContent("application/json"))
	assert.NotEqual(t, "10.0.0.1", hashIP("10.0.0.1"))
	assert.Len(t, hashIP("10.0.0.1"), 16)
	assert.Empty(t, hashIP(""))
}

func TestCorsHandler(t *testing.T) {
	testCases := []struct {
		name        string
		origins     []string
		origin      string
		wantAllowed string
		wantCreds   string
	}{
		{name: "未設定來源", origin: "https://any.example.com", wantAllowed: "*"},
		{name: "白名單來源", origins: []string{"https://hr.example.com"}, origin: "https://hr.example.com", wantAllowed: "https://hr.example.com", wantCreds: "true"},
		{name: "非白名單來源", origins: []string{"https://hr.example.com"}, origin: "https://evil.example.com"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			conf := &config.Configuration{}
			conf.App.AllowOrigins = tc.origins
			engine := gin.New()
			engine.Use(NewCors(&telemetry.Trace{}, conf).CorsHandler())
			engine.GET("/performance/daily", func(c *gin.Context) { c.Status(http.StatusOK) })

			req := httptest.NewRequest(http.MethodOptions, "/performance/daily", nil)
			req.Header.Set("Origin", tc.origin)
			req.Header.Set("Access-Control-Request-Method", http.MethodGet)
			w := httptest.NewRecorder()
			engine.ServeHTTP(w, req)

			assert.Equal(t, tc.wantAllowed, w.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, tc.wantCreds, w.Header().Get("Access-Control-Allow-Credentials"))
		})
	}
}
