package middleware

import (
	"net"
	"net/http"
	"strconv"
	"time"

	"talentops/config"
	"talentops/internal/core"
	"talentops/internal/telemetry"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

// TraceEntry 最外層 middleware：建立 server span 並記錄 HTTP 指標
type TraceEntry struct {
	trace  *telemetry.Trace
	metric *telemetry.Metric
	conf   *config.Configuration
}

func NewTraceEntry(trace *telemetry.Trace, metric *telemetry.Metric, conf *config.Configuration) *TraceEntry {
	return &TraceEntry{trace: trace, metric: metric, conf: conf}
}

func (m *TraceEntry) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		route := c.FullPath()
		if skipObservability(route) {
			c.Next()
			return
		}
		start := requestStart(c)

		parent := otel.GetTextMapPropagator().Extract(c.Request.Context(), propagation.HeaderCarrier(c.Request.Header))
		ctx, span := m.trace.StartSpanForLayer(parent,
			core.TraceSpanName(c.Request.Method+" "+route),
			trace.WithSpanKind(trace.SpanKindServer),
		)
		c.Request = c.Request.WithContext(ctx)
		c.Set(core.ContextTraceKey, ctx)

		meta := m.serverMeta(c, route)
		meta.SpanTraceID = span.SpanContext().TraceID().String()
		m.trace.ApplyTraceAttributes(span, &meta)

		c.Next()

		status := c.Writer.Status()
		meta.HttpStatusCode = status
		m.trace.ApplyTraceAttributes(span, &meta)
		m.observe(route, status, time.Since(start))

		var cause error
		if status >= http.StatusBadRequest && len(c.Errors) > 0 {
			cause = c.Errors.Last().Err
		}
		m.trace.EndSpan(span, cause)
	}
}

func (m *TraceEntry) serverMeta(c *gin.Context, route string) core.TraceHttpServerMeta {
	peerAddr, peerPort := c.ClientIP(), 0
	if host, port, err := net.SplitHostPort(c.Request.RemoteAddr); err == nil {
		peerAddr = host
		peerPort, _ = strconv.Atoi(port)
	}
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	return core.TraceHttpServerMeta{
		ClientAddr:        c.ClientIP(),
		HttpRequestMethod: c.Request.Method,
		HttpRoute:         route,
		UrlPath:           c.Request.URL.Path,
		UrlScheme:         scheme,
		UserAgent:         c.Request.UserAgent(),
		ServerAddress:     m.conf.App.Name,
		NetworkPeerAddr:   peerAddr,
		NetworkPeerPort:   peerPort,
		NetworkProtoVer:   c.Request.Proto,
	}
}

// observe 未啟用 metrics 時 collector 為 nil
func (m *TraceEntry) observe(route string, status int, elapsed time.Duration) {
	if m.metric == nil || m.metric.HttpRequestsTotal == nil || m.metric.HttpRequestDuration == nil {
		return
	}
	m.metric.HttpRequestsTotal.WithLabelValues(route, strconv.Itoa(status)).Inc()
	m.metric.HttpRequestDuration.WithLabelValues(route).Observe(elapsed.Seconds())
}
