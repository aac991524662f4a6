package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"talentops/config"
	"talentops/internal/core"
	"talentops/internal/database/fluentd/model"
	"talentops/internal/database/fluentd/repository"
	cErr "talentops/internal/pkg/error"
	res "talentops/internal/pkg/response"
	"talentops/internal/telemetry"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Recovery struct {
	logger            *zap.Logger
	trace             *telemetry.Trace
	config            *config.Configuration
	fluentdRepository *repository.LogRepository
}

func NewRecovery(
	logger *zap.Logger,
	trace *telemetry.Trace,
	config *config.Configuration,
	fluentdRepository *repository.LogRepository,
) *Recovery {
	return &Recovery{
		logger:            logger,
		trace:             trace,
		config:            config,
		fluentdRepository: fluentdRepository,
	}
}

func (middleware *Recovery) ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestTime := requestStart(c)
		requestUUID, err := uuid.NewV7()
		if err != nil {
			requestUUID = uuid.New()
		}
		requestID := requestUUID.String()

		// ---- panic recover 必須在 c.Next() 之前註冊 ----
		defer func() {
			if rec := recover(); rec != nil {
				duration := time.Since(requestTime)

				ctx, span, end := middleware.trace.WithSpan(c.Request.Context(), string(core.SpanRecoveryMiddleware))
				traceID, spanID := spanIDs(span)

				meta := core.TracePanicMeta{
					Path:       c.Request.URL.Path,
					Method:     c.Request.Method,
					ClientIP:   c.ClientIP(),
					UserAgent:  c.Request.UserAgent(),
					DurationMs: float64(duration.Milliseconds()),
					Message:    safeText([]byte(fmt.Sprint(rec)), errorPreviewLimit),
					Stack:      safeText(debug.Stack(), stackPreviewLimit),
					Status:     http.StatusInternalServerError,
				}
				middleware.trace.ApplyTraceAttributes(span, meta)

				middleware.logger.Error("[PANIC] Recovered",
					zap.String("path", meta.Path),
					zap.String("method", meta.Method),
					zap.String("client_ip", meta.ClientIP),
					zap.String("user_agent", meta.UserAgent),
					zap.Duration("duration", duration),
					zap.String("panic", meta.Message),
					zap.String("stacktrace", meta.Stack),
					zap.String("requestId", requestID),
					zap.String("spanId", spanID),
					zap.String("traceId", traceID),
				)

				appErr := cErr.InternalServer("unexpected panic")
				end(appErr)
				// 尚未回寫才輸出
				if !c.Writer.Written() {
					res.FailByErr(c, requestID, appErr)
				}
				middleware.logResponse(ctx, c, requestID, requestTime, cErr.INTERNAL_ERROR, http.StatusInternalServerError, meta.Message)
				c.Abort()
			}
		}()

		// 執行下游
		c.Next()

		// ---- 統一處理非 panic 的 gin errors（若尚未回寫）----
		if len(c.Errors) > 0 && !c.Writer.Written() {
			duration := time.Since(requestTime)

			ctx, span, end := middleware.trace.WithSpan(c.Request.Context(), string(core.SpanRecoveryMiddleware))
			traceID, spanID := spanIDs(span)

			// 找第一個 *cErr.Error
			for _, e := range c.Errors {
				var appErr *cErr.Error
				if !errors.As(e.Err, &appErr) {
					continue
				}
				middleware.trace.ApplyTraceAttributes(span, core.TraceErrorMeta{
					Code:       appErr.ErrorCode(),
					Message:    appErr.Error(),
					Detail:     appErr.ErrorDesc(),
					DurationMs: float64(duration.Milliseconds()),
					Status:     appErr.HttpCode(),
				})
				end(appErr)

				fields := []zap.Field{
					zap.Int("code", appErr.ErrorCode()),
					zap.String("data", appErr.ErrorDesc()),
					zap.Duration("duration", duration),
					zap.String("requestId", requestID),
					zap.String("spanId", spanID),
					zap.String("traceId", traceID),
				}
				if appErr.HttpCode() >= http.StatusInternalServerError {
					middleware.logger.Error(appErr.Error(), fields...)
				} else {
					middleware.logger.Warn(appErr.Error(), fields...)
				}
				middleware.logResponse(ctx, c, requestID, requestTime, appErr.ErrorCode(), appErr.HttpCode(), appErr.Error())
				res.FailByErr(c, requestID, appErr)
				c.Abort()
				return
			}

			// 其餘未知錯誤
			unknown := c.Errors.String()
			middleware.trace.ApplyTraceAttributes(span, core.TraceErrorMeta{
				Code:       cErr.INTERNAL_ERROR,
				Message:    "unknown-error",
				Detail:     safeText([]byte(unknown), errorPreviewLimit),
				DurationMs: float64(duration.Milliseconds()),
				Status:     http.StatusInternalServerError,
			})
			end(c.Errors.Last().Err)
			middleware.logger.Error("[ERROR] unknown",
				zap.String("error", unknown),
				zap.Duration("duration", duration),
				zap.String("requestId", requestID),
				zap.String("spanId", spanID),
				zap.String("traceId", traceID),
			)
			middleware.logResponse(ctx, c, requestID, requestTime, cErr.INTERNAL_ERROR, http.StatusInternalServerError, safeText([]byte(unknown), errorPreviewLimit))
			res.Fail(c, requestID, http.StatusInternalServerError, cErr.INTERNAL_ERROR, "unknown-error", unknown)
			c.Abort()
			return
		}
	}
}

func (middleware *Recovery) logResponse(ctx context.Context, c *gin.Context, requestID string, start time.Time, code, status int, message string) {
	err := middleware.fluentdRepository.LogResponse(ctx, model.ResponseLog{
		RequestID:  requestID,
		EmployeeID: employeeOf(c),
		Code:       code,
		StatusCode: status,
		Error:      message,
		DurationMs: time.Since(start).Milliseconds(),
		ResponseTS: fluentTime(time.Now()),
	})
	if err != nil {
		middleware.logger.Warn("fluentd response log failed", zap.Error(err))
	}
}
