package model

// SnapshotLog 每次快照寫入送一筆，供報表端重播
type SnapshotLog struct {
	ProjectName      string `json:"project_name,omitempty"`
	Date             string `json:"date"`
	ScopeType        string `json:"scope_type"`
	ScopeID          string `json:"scope_id,omitempty"`
	Delivered        int    `json:"delivered"`
	Defaulted        int    `json:"defaulted"`
	RequirementCount int    `json:"requirement_count"`
	Trigger          string `json:"trigger,omitempty"`
	Version          string `json:"version,omitempty"`
	LoggedAt         string `json:"logged_at"`
}
