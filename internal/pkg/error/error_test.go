package error

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructors(t *testing.T) {
	testCases := []struct {
		name       string
		err        *Error
		wantStatus int
		wantCode   int
		wantMsg    string
	}{
		{name: "驗證失敗", err: ValidateErr("d"), wantStatus: http.StatusBadRequest, wantCode: BAD_REQUEST_BODY, wantMsg: "bad-request-body"},
		{name: "日期", err: InvalidDate("d"), wantStatus: http.StatusBadRequest, wantCode: INVALID_DATE, wantMsg: "invalid-date"},
		{name: "自我對應", err: SelfTargetMapping("d"), wantStatus: http.StatusBadRequest, wantCode: SELF_TARGET_MAPPING, wantMsg: "self-target-mapping"},
		{name: "token", err: InvalidToken("d"), wantStatus: http.StatusUnauthorized, wantCode: INVALID_TOKEN, wantMsg: "invalid-token"},
		{name: "角色", err: Forbidden("d"), wantStatus: http.StatusForbidden, wantCode: FORBIDDEN, wantMsg: "forbidden"},
		{name: "鎖衝突", err: Conflict("d"), wantStatus: http.StatusConflict, wantCode: CONFLICT, wantMsg: "conflict"},
		{name: "政策", err: UnprocessablePolicy("d"), wantStatus: http.StatusUnprocessableEntity, wantCode: UNPROCESSABLE_POLICY, wantMsg: "unprocessable-target-policy"},
		{name: "逾時", err: GatewayTimeout("d"), wantStatus: http.StatusGatewayTimeout, wantCode: GATEWAY_TIMEOUT, wantMsg: "gateway-timeout"},
		{name: "未登記的碼", err: Of(12345, "d"), wantStatus: http.StatusInternalServerError, wantCode: 12345, wantMsg: "internal-server-error"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.wantStatus, tc.err.HttpCode())
			assert.Equal(t, tc.wantCode, tc.err.ErrorCode())
			assert.Equal(t, tc.wantMsg, tc.err.Error())
			assert.Equal(t, "d", tc.err.ErrorDesc())
		})
	}
}

func TestMapHttpStatusToError(t *testing.T) {
	testCases := []struct {
		status   int
		wantCode int
	}{
		{status: http.StatusBadRequest, wantCode: BAD_REQUEST_BODY},
		{status: http.StatusNotFound, wantCode: NOT_FOUND},
		{status: http.StatusConflict, wantCode: CONFLICT},
		{status: http.StatusServiceUnavailable, wantCode: SERVICE_UNAVAILABLE},
		{status: http.StatusTeapot, wantCode: INTERNAL_ERROR},
	}
	for _, tc := range testCases {
		t.Run(http.StatusText(tc.status), func(t *testing.T) {
			assert.Equal(t, tc.wantCode, MapHttpStatusToError(tc.status, "request error").ErrorCode())
		})
	}
}
