package error

import "net/http"

// 業務錯誤碼：前三碼對應 HTTP status
const (
	BAD_REQUEST_BODY    = 40000 // 請求 body 或 query 驗證失敗
	BAD_REQUEST_PARAMS  = 40001 // path / query 參數無效
	INVALID_DATE        = 40003 // 日期不是 YYYY-MM-DD
	INVALID_DATE_RANGE  = 40004 // 起日晚於迄日或超過上限
	INVALID_SCOPE       = 40005 // scopeType 與 scopeId 不符
	SELF_TARGET_MAPPING = 40006 // 主管與成員不可為同一人

	UNAUTHORIZED  = 40100 // 缺少憑證或員工不可用
	INVALID_TOKEN = 40101 // token 無效或過期
	FORBIDDEN     = 40301 // 角色不允許

	NOT_FOUND = 40400

	CONFLICT = 40900 // 同一 scope 快照正在寫入

	UNPROCESSABLE_POLICY = 42200 // criticality/toughness 不在政策表且為嚴格模式

	INTERNAL_ERROR      = 50000
	DATABASE_ERROR      = 50001
	SERVICE_UNAVAILABLE = 50002 // 儲存層連線中斷

	GATEWAY_TIMEOUT = 50400 // 儲存層逾時
)

type kind struct {
	status int
	slug   string
}

var kinds = map[int]kind{
	BAD_REQUEST_BODY:     {http.StatusBadRequest, "bad-request-body"},
	BAD_REQUEST_PARAMS:   {http.StatusBadRequest, "bad-request-params"},
	INVALID_DATE:         {http.StatusBadRequest, "invalid-date"},
	INVALID_DATE_RANGE:   {http.StatusBadRequest, "invalid-date-range"},
	INVALID_SCOPE:        {http.StatusBadRequest, "invalid-scope"},
	SELF_TARGET_MAPPING:  {http.StatusBadRequest, "self-target-mapping"},
	UNAUTHORIZED:         {http.StatusUnauthorized, "unauthorized"},
	INVALID_TOKEN:        {http.StatusUnauthorized, "invalid-token"},
	FORBIDDEN:            {http.StatusForbidden, "forbidden"},
	NOT_FOUND:            {http.StatusNotFound, "not-found"},
	CONFLICT:             {http.StatusConflict, "conflict"},
	UNPROCESSABLE_POLICY: {http.StatusUnprocessableEntity, "unprocessable-target-policy"},
	INTERNAL_ERROR:       {http.StatusInternalServerError, "internal-server-error"},
	DATABASE_ERROR:       {http.StatusInternalServerError, "database-error"},
	SERVICE_UNAVAILABLE:  {http.StatusServiceUnavailable, "service-unavailable"},
	GATEWAY_TIMEOUT:      {http.StatusGatewayTimeout, "gateway-timeout"},
}

// statusDefaults MapHttpStatusToError 用：HTTP status → 預設業務碼
var statusDefaults = map[int]int{
	http.StatusBadRequest:          BAD_REQUEST_BODY,
	http.StatusUnauthorized:        UNAUTHORIZED,
	http.StatusForbidden:           FORBIDDEN,
	http.StatusNotFound:            NOT_FOUND,
	http.StatusConflict:            CONFLICT,
	http.StatusUnprocessableEntity: UNPROCESSABLE_POLICY,
	http.StatusServiceUnavailable:  SERVICE_UNAVAILABLE,
	http.StatusGatewayTimeout:      GATEWAY_TIMEOUT,
}
