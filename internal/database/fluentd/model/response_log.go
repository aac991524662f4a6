package model

// ResponseLog 以 RequestID 對應 RequestLog；錯誤時 Error 帶訊息、Body 為空
type ResponseLog struct {
	RequestID   string `json:"request_id"`
	ProjectName string `json:"project_name,omitempty"`
	EmployeeID  string `json:"employee_id,omitempty"`
	Code        int    `json:"code"`
	StatusCode  int    `json:"status_code"`
	Body        string `json:"body,omitempty"`
	Error       string `json:"error,omitempty"`
	DurationMs  int64  `json:"duration_ms"`
	Version     string `json:"version,omitempty"`
	ResponseTS  string `json:"response_ts"`
	LoggedAt    string `json:"logged_at"`
}
