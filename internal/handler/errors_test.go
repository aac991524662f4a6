package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"talentops/internal/core"
	"talentops/internal/database"
	"talentops/internal/database/mongodb/model"
	cErr "talentops/internal/pkg/error"
	"talentops/internal/service"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestToAppError(t *testing.T) {
	testCases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   int
	}{
		{"查無資料", fmt.Errorf("employee x: %w", database.ErrNotFound), http.StatusNotFound, cErr.NOT_FOUND},
		{"日期區間", service.ErrInvalidDateRange, http.StatusBadRequest, cErr.INVALID_DATE_RANGE},
		{"日期格式", core.ErrInvalidCalendarDate, http.StatusBadRequest, cErr.INVALID_DATE},
		{"scope", service.ErrInvalidScope, http.StatusBadRequest, cErr.INVALID_SCOPE},
		{"perspective", service.ErrInvalidPerspective, http.StatusBadRequest, cErr.INVALID_SCOPE},
		{"自己對自己", service.ErrSelfTargetMapping, http.StatusBadRequest, cErr.SELF_TARGET_MAPPING},
		{"目標內容錯誤", service.ErrInvalidTargetMapping, http.StatusBadRequest, cErr.BAD_REQUEST_BODY},
		{"負數", service.ErrNegativeMetrics, http.StatusBadRequest, cErr.BAD_REQUEST_BODY},
		{"季度", core.ErrInvalidQuarter, http.StatusBadRequest, cErr.BAD_REQUEST_BODY},
		{"鎖定中", service.ErrScopeLocked, http.StatusConflict, cErr.CONFLICT},
		{"未知政策", fmt.Errorf("requirement x: %w", service.ErrUnknownTargetPolicy), http.StatusUnprocessableEntity, cErr.UNPROCESSABLE_POLICY},
		{"缺 submittedAt", model.ErrMissingSubmittedAt, http.StatusUnprocessableEntity, cErr.UNPROCESSABLE_POLICY},
		{"逾時", context.DeadlineExceeded, http.StatusGatewayTimeout, cErr.GATEWAY_TIMEOUT},
		{"其他", errors.New("boom"), http.StatusInternalServerError, cErr.DATABASE_ERROR},
		{"已是應用錯誤", cErr.Forbidden("nope"), http.StatusForbidden, cErr.FORBIDDEN},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := toAppError(tc.err)
			assert.Equal(t, tc.wantStatus, got.HttpCode())
			assert.Equal(t, tc.wantCode, got.ErrorCode())
		})
	}
	assert.Nil(t, toAppError(nil))
}

func TestParseScope(t *testing.T) {
	id := primitive.NewObjectID()
	scopeType, scopeID, err := parseScope("team", id.Hex())
	assert.NoError(t, err)
	assert.Equal(t, core.ScopeTeam, scopeType)
	assert.Equal(t, id, *scopeID)

	scopeType, scopeID, err = parseScope("organization", "")
	assert.NoError(t, err)
	assert.Equal(t, core.ScopeOrganization, scopeType)
	assert.Nil(t, scopeID)

	for _, tc := range [][2]string{{"team", ""}, {"team", "zzz"}, {"organization", id.Hex()}, {"company", ""}} {
		_, _, err := parseScope(tc[0], tc[1])
		var appErr *cErr.Error
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, cErr.INVALID_SCOPE, appErr.ErrorCode())
	}
}
