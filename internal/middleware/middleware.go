package middleware

import (
	"encoding/base64"
	"strings"
	"time"
	"unicode/utf8"

	"talentops/internal/core"

	"github.com/gin-gonic/gin"
	"github.com/google/wire"
	"go.opentelemetry.io/otel/trace"
)

var ProviderSet = wire.NewSet(
	NewCors,
	NewLogger,
	NewRecovery,
	NewTraceEntry,
	NewAuth,
	NewResponse,
)

const (
	contextRequestStartKey = "requestStart"
	fluentTimeLayout       = "2006-01-02 15:04:05.999999 UTC"

	bodyPreviewLimit  = 2000
	errorPreviewLimit = 8000
	stackPreviewLimit = 16000
)

// requestStart 取第一個 middleware 記下的開始時間，沒有就以現在為準並寫回
func requestStart(c *gin.Context) time.Time {
	if v, ok := c.Get(contextRequestStartKey); ok {
		if t, ok := v.(time.Time); ok {
			return t
		}
	}
	now := time.Now().UTC()
	c.Set(contextRequestStartKey, now)
	return now
}

func spanIDs(span trace.Span) (traceID, spanID string) {
	sc := span.SpanContext()
	return sc.TraceID().String(), sc.SpanID().String()
}

func fluentTime(t time.Time) string {
	return t.UTC().Format(fluentTimeLayout)
}

// employeeOf auth 通過後才有值
func employeeOf(c *gin.Context) string {
	return c.GetString(core.ContextEmployeeIDKey)
}

// safeText UTF-8 直接截斷，非 UTF-8 截斷後以 base64 表示
func safeText(b []byte, limit int) string {
	if len(b) == 0 {
		return ""
	}
	if !utf8.Valid(b) {
		if len(b) > limit {
			b = b[:limit]
		}
		return "b64:" + base64.StdEncoding.EncodeToString(b)
	}
	if len(b) > limit {
		return string(b[:limit]) + "…"
	}
	return string(b)
}

// skipObservability 維運路徑不做 tracing / logging
func skipObservability(endpoint string) bool {
	for _, prefix := range []string{"/swagger", "/metrics", "/version", "/health", "/debug/pprof"} {
		if strings.HasPrefix(endpoint, prefix) {
			return true
		}
	}
	return false
}
