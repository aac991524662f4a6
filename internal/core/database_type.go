package core

// ─── Database Types ────────────────────────────────────────────────────────────

type MongoDatabaseName string
type MongoCollection string
type RedisKey string
type FluentdSubTag string

// ─── MongoDB ───────────────────────────────────────────────────────────────────

// MongoDBTalentOps 未設定 MONGODB__DATABASE 時使用的預設資料庫
const MongoDBTalentOps MongoDatabaseName = "talentops"

const (
	MongoCollectionEmployees              MongoCollection = "employees"
	MongoCollectionRequirements           MongoCollection = "requirements"
	MongoCollectionRequirementAssignments MongoCollection = "requirement_assignments"
	MongoCollectionResumeSubmissions      MongoCollection = "resume_submissions"
	MongoCollectionDailyMetricsSnapshots  MongoCollection = "daily_metrics_snapshots"
	MongoCollectionTargetMappings         MongoCollection = "target_mappings"
)

// ─── Redis Keys ────────────────────────────────────────────────────────────────

const (
	RedisKeyServerName   RedisKey = "talentops"     // 伺服器名稱
	RedisKeySnapshotLock RedisKey = "snapshot_lock" // 快照寫入鎖
)

// ─── Fluentd ───────────────────────────────────────────────────────────────────

const (
	FluentdRequest  FluentdSubTag = "request_log"
	FluentdResponse FluentdSubTag = "response_log"
	FluentdSnapshot FluentdSubTag = "metrics_snapshot_log"
)

// ListOptions 分頁參數，Page 從 1 開始
type ListOptions struct {
	Page int64 `json:"page,omitempty"`
	Size int64 `json:"size,omitempty"`
}
