package config

// Performance 績效統計相關設定
type Performance struct {
	// 未知 criticality / toughness 組合時採用的需求履歷數；<= 0 代表使用內建預設
	DefaultRequiredResumes int `mapstructure:"DEFAULT_REQUIRED_RESUMES" json:"defaultRequiredResumes" yaml:"defaultRequiredResumes"`
	// true：未知組合直接回傳錯誤；false：使用預設值並記錄警告
	StrictTargetPolicy bool `mapstructure:"STRICT_TARGET_POLICY" json:"strictTargetPolicy" yaml:"strictTargetPolicy"`
	// 團隊 / 組織彙總時同時計算的成員數上限
	AggregateConcurrency int `mapstructure:"AGGREGATE_CONCURRENCY" json:"aggregateConcurrency" yaml:"aggregateConcurrency"`
	// 財務年度起始月份（1-12）；0 或 1 代表日曆季度
	FiscalYearStartMonth int `mapstructure:"FISCAL_YEAR_START_MONTH" json:"fiscalYearStartMonth" yaml:"fiscalYearStartMonth"`
	// 每日快照排程（含秒欄位），空字串代表不排程
	SnapshotCron string `mapstructure:"SNAPSHOT_CRON" json:"snapshotCron" yaml:"snapshotCron"`
	// 快照寫入鎖的存活秒數
	SnapshotLockTTLSeconds int64 `mapstructure:"SNAPSHOT_LOCK_TTL_SECONDS" json:"snapshotLockTTLSeconds" yaml:"snapshotLockTTLSeconds"`
}
