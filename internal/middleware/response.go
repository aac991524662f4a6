package middleware

import (
	"encoding/json"
	"net/http"
	"time"

	"talentops/config"
	"talentops/internal/core"
	"talentops/internal/database/fluentd/model"
	"talentops/internal/database/fluentd/repository"
	cErr "talentops/internal/pkg/error"
	"talentops/internal/pkg/response"
	"talentops/internal/telemetry"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const defaultSuccessMessage = "Request Success"

type Response struct {
	logger            *zap.Logger
	trace             *telemetry.Trace
	config            *config.Configuration
	fluentdRepository *repository.LogRepository
}

func NewResponse(
	logger *zap.Logger,
	trace *telemetry.Trace,
	config *config.Configuration,
	fluentdRepository *repository.LogRepository,
) *Response {
	return &Response{
		logger:            logger,
		trace:             trace,
		config:            config,
		fluentdRepository: fluentdRepository,
	}
}

// FormatHandler 把 handler 以 c.Set("data"/"message") 留下的結果包成統一信封。
// 已有 gin error 或已寫出回應時不處理；狀態碼 >= 400 但沒有 error 時轉成應用錯誤交給 Recovery。
func (middleware *Response) FormatHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if skipObservability(c.FullPath()) {
			c.Next()
			return
		}
		start := requestStart(c)

		c.Next()

		if len(c.Errors) > 0 || c.Writer.Written() {
			return
		}
		status := c.Writer.Status()
		if status >= http.StatusBadRequest {
			response.AbortWithError(c, cErr.MapHttpStatusToError(status, "request error"))
			return
		}

		ctx, span, end := middleware.trace.WithSpan(c.Request.Context(), string(core.SpanResponseMiddleware))
		defer end(nil)

		data, message := payloadOf(c)
		body, err := json.Marshal(data)
		if err != nil {
			response.AbortWithError(c, cErr.InternalServer("marshal response failed"))
			return
		}
		duration := time.Since(start)
		traceID, spanID := spanIDs(span)

		middleware.trace.ApplyTraceAttributes(span, core.TraceResponseMeta{
			Path:       c.Request.URL.Path,
			Method:     c.Request.Method,
			Status:     status,
			Message:    message,
			DurationMs: float64(duration.Milliseconds()),
			Data:       safeText(body, bodyPreviewLimit),
		})
		middleware.logger.Info("[Response] "+message,
			zap.String("path", c.Request.URL.Path),
			zap.String("method", c.Request.Method),
			zap.Int("status", status),
			zap.String("employeeId", employeeOf(c)),
			zap.Duration("duration", duration),
			zap.String("spanId", spanID),
			zap.String("traceId", traceID),
		)
		err = middleware.fluentdRepository.LogResponse(ctx, model.ResponseLog{
			RequestID:  traceID,
			EmployeeID: employeeOf(c),
			StatusCode: status,
			Body:       safeText(body, bodyPreviewLimit),
			DurationMs: duration.Milliseconds(),
			ResponseTS: fluentTime(time.Now()),
		})
		if err != nil {
			middleware.logger.Warn("fluentd response log failed", zap.Error(err))
		}

		envelope, err := json.Marshal(response.Response{
			RequestID:   traceID,
			Code:        0,
			Data:        json.RawMessage(body),
			Message:     "OK",
			Description: message,
		})
		if err != nil {
			response.AbortWithError(c, cErr.InternalServer("marshal response failed"))
			return
		}
		c.Writer.Header().Set("Content-Type", "application/json; charset=utf-8")
		c.Writer.WriteHeader(status)
		if _, err := c.Writer.Write(envelope); err != nil {
			middleware.logger.Warn("write response failed", zap.Error(err), zap.String("traceId", traceID))
		}
	}
}

// payloadOf 沒有 data 時回空物件，沒有 message 時用預設訊息
func payloadOf(c *gin.Context) (any, string) {
	data, _ := c.Get("data")
	if data == nil {
		data = map[string]any{}
	}
	message := c.GetString("message")
	if message == "" {
		message = defaultSuccessMessage
	}
	return data, message
}
