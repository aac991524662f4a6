package core

const ContextTraceKey = "telemetry_trace_ctx"

// ==== 型別安全 span name ====
// 專案全域建議都寫這裡，方便集中管理
type TraceSpanName string

const (
	SpanHttpRequest        TraceSpanName = "http_request"
	SpanLoggerMiddleware   TraceSpanName = "logger_middleware"
	SpanRecoveryMiddleware TraceSpanName = "recovery_middleware"
	SpanCorsMiddleware     TraceSpanName = "cors_middleware"
	SpanResponseMiddleware TraceSpanName = "response_middleware"
	SpanAuthMiddleware     TraceSpanName = "auth_middleware"

	SpanRecruiterDaily    TraceSpanName = "delivery.recruiter_daily"
	SpanTeamDaily         TraceSpanName = "delivery.team_daily"
	SpanOrganizationDaily TraceSpanName = "delivery.organization_daily"
	SpanSnapshotUpsert    TraceSpanName = "snapshot.upsert"
	SpanSnapshotList      TraceSpanName = "snapshot.list_by_date_range"
	SpanSnapshotCapture   TraceSpanName = "snapshot.capture"
	SpanTargetSummary     TraceSpanName = "target.summary"
	SpanTargetMapping     TraceSpanName = "target.mapping"
)

// 指標名稱常數
type MetricName string

const (
	MetricHttpRequestsTotal        MetricName = "requests_total"
	MetricHttpRequestDuration      MetricName = "request_duration_seconds"
	MetricSnapshotWritesTotal      MetricName = "snapshot_writes_total"
	MetricSnapshotJobDuration      MetricName = "snapshot_job_duration_seconds"
	MetricSnapshotLockedTotal      MetricName = "snapshot_locked_total"
	MetricUnknownTargetPolicyTotal MetricName = "unknown_target_policy_total"
)

// label name 常數
type MetricLabelName string

const (
	MetricLabelEndpoint  MetricLabelName = "endpoint"
	MetricLabelStatus    MetricLabelName = "status"
	MetricLabelScopeType MetricLabelName = "scope_type"
	MetricLabelResult    MetricLabelName = "result"
)

type LoggerRequestMeta struct {
	Method     string            `trace:"request.method"`
	Path       string            `trace:"request.path"`
	FullPath   string            `trace:"request.full_path"`
	Query      string            `trace:"request.query"`
	Body       string            `trace:"request.body"`
	Scheme     string            `trace:"http.scheme"`
	Host       string            `trace:"http.host"`
	UserAgent  string            `trace:"http.user_agent"`
	ContentLen int64             `trace:"http.request_content_length"`
	Proto      string            `trace:"http.flavor"`
	ClientIP   string            `trace:"net.peer.ip"`
	Headers    map[string]string `trace:"http.request.header"`
	Params     map[string]string `trace:"http.request.param"`
}

type TraceAuthMeta struct {
	EmployeeID string `trace:"auth.employee_id,omitempty"`
	Role       string `trace:"auth.role,omitempty"`
	Status     string `trace:"auth.status"`
}

type TracePanicMeta struct {
	Path       string  `trace:"http.path"`
	Method     string  `trace:"http.method"`
	ClientIP   string  `trace:"net.peer.ip"`
	UserAgent  string  `trace:"http.user_agent"`
	DurationMs float64 `trace:"response.latency_ms"`
	Status     int     `trace:"http.status_code"`
	Message    string  `trace:"error.message"`
	Stack      string  `trace:"error.stack"`
}

type TraceErrorMeta struct {
	Code       int     `trace:"error.code"`
	Message    string  `trace:"error.message"`
	Detail     string  `trace:"error.detail"`
	Status     int     `trace:"http.status_code"`
	DurationMs float64 `trace:"response.latency_ms"`
}

type TraceResponseMeta struct {
	Path       string  `trace:"http.path"`
	Method     string  `trace:"http.method"`
	Status     int     `trace:"http.status_code"`
	Message    string  `trace:"response.message"`
	Code       int     `trace:"response.code"`
	DurationMs float64 `trace:"response.latency_ms"`
	Data       string  `trace:"response.data_preview"`
}

type TraceHttpServerMeta struct {
	// request side
	ClientAddr        string `trace:"client.address"`
	HttpRequestMethod string `trace:"http.request.method"`
	HttpRoute         string `trace:"http.route"`
	UrlPath           string `trace:"http.request.path"`
	UrlScheme         string `trace:"http.request.url.scheme"`
	UserAgent         string `trace:"user_agent.original"`
	ServerAddress     string `trace:"server.address"`
	NetworkPeerAddr   string `trace:"network.peer.address"`
	NetworkPeerPort   int    `trace:"network.peer.port"`
	NetworkProtoVer   string `trace:"network.protocol.version"`
	SpanTraceID       string `trace:"span.trace_id"`
	HttpStatusCode    int    `trace:"http.response.status_code"`
}

// 每日交付計算
type TraceDeliveryMeta struct {
	Scope            string `trace:"delivery.scope"`
	ScopeID          string `trace:"delivery.scope_id,omitempty"`
	Date             string `trace:"delivery.date"`
	Members          int    `trace:"delivery.members,omitempty"`
	Required         int    `trace:"delivery.required"`
	Delivered        int    `trace:"delivery.delivered"`
	Defaulted        int    `trace:"delivery.defaulted"`
	RequirementCount int    `trace:"delivery.requirement_count"`
}

// 快照寫入／查詢
type TraceSnapshotMeta struct {
	Op        string `trace:"snapshot.op"`
	Date      string `trace:"snapshot.date,omitempty"`
	StartDate string `trace:"snapshot.start_date,omitempty"`
	EndDate   string `trace:"snapshot.end_date,omitempty"`
	ScopeType string `trace:"snapshot.scope_type"`
	ScopeID   string `trace:"snapshot.scope_id,omitempty"`
	Count     int    `trace:"result.count,omitempty"`
}

type TraceTargetSummaryMeta struct {
	PersonID       string `trace:"target.person_id"`
	Perspective    string `trace:"target.perspective"`
	CurrentQuarter string `trace:"target.current_quarter"`
	Mappings       int    `trace:"target.mappings"`
	Quarters       int    `trace:"target.quarters"`
}

type TraceRequestLogMeta struct {
	RequestID   string `trace:"http.request.request_id"`
	Path        string `trace:"http.request.path"`
	Method      string `trace:"http.request.method"`
	ProjectName string `trace:"project.name"`
	Body        string `trace:"http.request.body,omitempty"`
	IPHash      string `trace:"http.request.net.peer.ip_hash"`
	UserAgent   string `trace:"http.request.user_agent"`
	Version     string `trace:"log.version"`
	RequestTS   string `trace:"http.request_ts"`
	LoggedAt    string `trace:"http.logged_at"`
}

type TraceResponseLogMeta struct {
	RequestID   string `trace:"http.request.request_id"`
	ProjectName string `trace:"project.name"`
	Code        int    `trace:"http.response.code"`
	StatusCode  int    `trace:"http.response.status_code"`
	Body        string `trace:"http.response.body,omitempty"`
	Error       string `trace:"http.response.error_message,omitempty"`
	Version     string `trace:"log.version"`
	ResponseTS  string `trace:"http.request_ts"`
	LoggedAt    string `trace:"http.logged_at"`
}

type TraceSnapshotLogMeta struct {
	ProjectName      string `trace:"project.name"`
	Date             string `trace:"snapshot.date"`
	ScopeType        string `trace:"snapshot.scope_type"`
	ScopeID          string `trace:"snapshot.scope_id,omitempty"`
	Delivered        int    `trace:"snapshot.delivered"`
	Defaulted        int    `trace:"snapshot.defaulted"`
	RequirementCount int    `trace:"snapshot.requirement_count"`
	Version          string `trace:"log.version"`
	LoggedAt         string `trace:"http.logged_at"`
}
