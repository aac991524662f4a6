package middleware

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"mime"
	"strings"

	"talentops/config"
	"talentops/internal/core"
	"talentops/internal/database/fluentd/model"
	"talentops/internal/database/fluentd/repository"
	"talentops/internal/telemetry"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var maskedHeaders = map[string]struct{}{
	"authorization": {},
	"cookie":        {},
}

type Logger struct {
	logger            *zap.Logger
	trace             *telemetry.Trace
	config            *config.Configuration
	fluentdRepository *repository.LogRepository
}

func NewLogger(
	logger *zap.Logger,
	trace *telemetry.Trace,
	config *config.Configuration,
	fluentdRepository *repository.LogRepository,
) *Logger {
	return &Logger{
		logger:            logger,
		trace:             trace,
		config:            config,
		fluentdRepository: fluentdRepository,
	}
}

// LoggerHandler 進入 handler 前記一筆 request log（zap + span + fluentd）
func (m *Logger) LoggerHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		route := c.FullPath()
		if skipObservability(route) {
			c.Next()
			return
		}

		ctx, span, end := m.trace.WithSpan(c.Request.Context(), string(core.SpanLoggerMiddleware))
		start := requestStart(c)
		body := captureBody(c)
		headers := headerMap(c)
		params := make(map[string]string, len(c.Params))
		for _, p := range c.Params {
			params[p.Key] = p.Value
		}

		m.trace.ApplyTraceAttributes(span, core.LoggerRequestMeta{
			Method:     c.Request.Method,
			Path:       c.Request.URL.Path,
			FullPath:   route,
			Query:      c.Request.URL.RawQuery,
			Body:       body,
			Scheme:     c.Request.URL.Scheme,
			Host:       c.Request.Host,
			UserAgent:  c.Request.UserAgent(),
			ContentLen: c.Request.ContentLength,
			Proto:      c.Request.Proto,
			ClientIP:   c.ClientIP(),
			Headers:    headers,
			Params:     params,
		})

		traceID, spanID := spanIDs(span)
		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Any("headers", headers),
			zap.String("spanId", spanID),
			zap.String("traceId", traceID),
		}
		if q := c.Request.URL.RawQuery; q != "" {
			fields = append(fields, zap.String("query", q))
		}
		if len(params) > 0 {
			fields = append(fields, zap.Any("params", params))
		}
		if body != "" {
			fields = append(fields, zap.String("body", body))
		}
		m.logger.Info("[Request] "+c.Request.Method+" "+route, fields...)

		err := m.fluentdRepository.LogRequest(ctx, model.RequestLog{
			RequestID: traceID,
			Method:    c.Request.Method,
			Path:      c.Request.URL.Path,
			Route:     route,
			RequestTS: fluentTime(start),
			Body:      body,
			IPHash:    hashIP(c.ClientIP()),
			UserAgent: c.Request.UserAgent(),
		})
		if err != nil {
			m.logger.Warn("fluentd request log failed", zap.Error(err))
		}
		end(nil)
		c.Next()
	}
}

// captureBody 讀出文字 body 後回填供 handler 綁定；二進位內容只記型別與長度
func captureBody(c *gin.Context) string {
	mediaType, _, _ := mime.ParseMediaType(c.GetHeader("Content-Type"))
	if isBinaryContent(mediaType) {
		if c.Request.ContentLength > 0 {
			return fmt.Sprintf("(binary %s, %d bytes)", mediaType, c.Request.ContentLength)
		}
		return fmt.Sprintf("(binary %s)", mediaType)
	}
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		return ""
	}
	data, _ := io.ReadAll(c.Request.Body)
	c.Request.Body = io.NopCloser(bytes.NewReader(data))
	return safeText(data, bodyPreviewLimit)
}

// headerMap key 轉小寫，憑證類 header 遮蔽
func headerMap(c *gin.Context) map[string]string {
	headers := make(map[string]string, len(c.Request.Header))
	for k, v := range c.Request.Header {
		key := strings.ToLower(k)
		if _, masked := maskedHeaders[key]; masked {
			headers[key] = "***"
			continue
		}
		headers[key] = strings.Join(v, ",")
	}
	return headers
}

func hashIP(ip string) string {
	if ip == "" {
		return ""
	}
	sum := sha256.Sum256([]byte(ip))
	return hex.EncodeToString(sum[:8])
}

func isBinaryContent(mediaType string) bool {
	if mediaType == "application/octet-stream" {
		return true
	}
	for _, prefix := range []string{"multipart/", "image/", "audio/", "video/"} {
		if strings.HasPrefix(mediaType, prefix) {
			return true
		}
	}
	return false
}
