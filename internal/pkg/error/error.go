package error

// Error 對外錯誤：HTTP status、業務碼、簡短代號與說明。
// Error() 只回傳代號，說明放在 ErrorDesc。
type Error struct {
	httpCode  int
	errorCode int
	errorMsg  string
	errorDesc string
}

func New(httpCode, errorCode int, errorMsg string, errorDesc string) *Error {
	return &Error{httpCode: httpCode, errorCode: errorCode, errorMsg: errorMsg, errorDesc: errorDesc}
}

// Of 依業務碼建立錯誤，未登記的碼視為 500
func Of(errorCode int, errorDesc string) *Error {
	k, ok := kinds[errorCode]
	if !ok {
		k = kinds[INTERNAL_ERROR]
	}
	return New(k.status, errorCode, k.slug, errorDesc)
}

// ValidateErr DTO 綁定或驗證失敗
func ValidateErr(errorDesc string) *Error { return Of(BAD_REQUEST_BODY, errorDesc) }

func ValidatePathParamsErr(errorDesc string) *Error { return Of(BAD_REQUEST_PARAMS, errorDesc) }

func BadRequest(errorDesc string) *Error        { return Of(BAD_REQUEST_BODY, errorDesc) }
func BadRequestBody(errorDesc string) *Error    { return Of(BAD_REQUEST_BODY, errorDesc) }
func BadRequestParams(errorDesc string) *Error  { return Of(BAD_REQUEST_PARAMS, errorDesc) }
func InvalidDate(errorDesc string) *Error       { return Of(INVALID_DATE, errorDesc) }
func InvalidDateRange(errorDesc string) *Error  { return Of(INVALID_DATE_RANGE, errorDesc) }
func InvalidScope(errorDesc string) *Error      { return Of(INVALID_SCOPE, errorDesc) }
func SelfTargetMapping(errorDesc string) *Error { return Of(SELF_TARGET_MAPPING, errorDesc) }

func Unauthorized(errorDesc string) *Error { return Of(UNAUTHORIZED, errorDesc) }
func InvalidToken(errorDesc string) *Error { return Of(INVALID_TOKEN, errorDesc) }
func Forbidden(errorDesc string) *Error    { return Of(FORBIDDEN, errorDesc) }
func NotFound(errorDesc string) *Error     { return Of(NOT_FOUND, errorDesc) }
func Conflict(errorDesc string) *Error     { return Of(CONFLICT, errorDesc) }

func UnprocessablePolicy(errorDesc string) *Error { return Of(UNPROCESSABLE_POLICY, errorDesc) }

func InternalServer(errorDesc string) *Error     { return Of(INTERNAL_ERROR, errorDesc) }
func DatabaseError(errorDesc string) *Error      { return Of(DATABASE_ERROR, errorDesc) }
func ServiceUnavailable(errorDesc string) *Error { return Of(SERVICE_UNAVAILABLE, errorDesc) }
func GatewayTimeout(errorDesc string) *Error     { return Of(GATEWAY_TIMEOUT, errorDesc) }

func (e *Error) HttpCode() int {
	return e.httpCode
}

func (e *Error) ErrorCode() int {
	return e.errorCode
}

func (e *Error) ErrorDesc() string {
	return e.errorDesc
}

func (e *Error) Error() string {
	return e.errorMsg
}

// MapHttpStatusToError handler 只設了狀態碼時轉成對應的應用錯誤
func MapHttpStatusToError(status int, desc string) *Error {
	if code, ok := statusDefaults[status]; ok {
		return Of(code, desc)
	}
	return InternalServer(desc)
}
