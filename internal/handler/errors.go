package handler

import (
	"context"
	"errors"

	"talentops/internal/core"
	"talentops/internal/database"
	"talentops/internal/database/mongodb/model"
	cErr "talentops/internal/pkg/error"
	"talentops/internal/service"

	"go.mongodb.org/mongo-driver/mongo"
)

// toAppError 將 service / repository 的 sentinel error 轉為對外錯誤碼
func toAppError(err error) *cErr.Error {
	if err == nil {
		return nil
	}
	var appErr *cErr.Error
	if errors.As(err, &appErr) {
		return appErr
	}

	switch {
	case errors.Is(err, database.ErrNotFound):
		return cErr.NotFound(err.Error())
	case errors.Is(err, service.ErrInvalidDateRange):
		return cErr.InvalidDateRange(err.Error())
	case errors.Is(err, core.ErrInvalidCalendarDate):
		return cErr.InvalidDate(err.Error())
	case errors.Is(err, service.ErrInvalidScope),
		errors.Is(err, service.ErrInvalidPerspective):
		return cErr.InvalidScope(err.Error())
	case errors.Is(err, service.ErrSelfTargetMapping):
		return cErr.SelfTargetMapping(err.Error())
	case errors.Is(err, service.ErrInvalidTargetMapping),
		errors.Is(err, service.ErrNegativeMetrics),
		errors.Is(err, core.ErrInvalidQuarter):
		return cErr.BadRequestBody(err.Error())
	case errors.Is(err, service.ErrScopeLocked):
		return cErr.Conflict(err.Error())
	case errors.Is(err, service.ErrUnknownTargetPolicy),
		errors.Is(err, model.ErrMissingSubmittedAt):
		return cErr.UnprocessablePolicy(err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return cErr.GatewayTimeout(err.Error())
	case mongo.IsTimeout(err), mongo.IsNetworkError(err):
		return cErr.ServiceUnavailable(err.Error())
	default:
		return cErr.DatabaseError(err.Error())
	}
}
