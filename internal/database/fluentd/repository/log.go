package repository

import (
	"context"
	"encoding/json"
	"time"

	"talentops/config"
	"talentops/internal/core"
	"talentops/internal/database/client"
	"talentops/internal/database/fluentd/model"
)

const loggedAtLayout = "2006-01-02 15:04:05.999999 UTC"

// LogRepository 統一負責發送 Request/Response/Snapshot Log 到 Fluentd
type LogRepository struct {
	fluentdClient client.Client
	projectName   string
	version       string
}

func NewLogRepository(config *config.Configuration, fluentdClient client.Client) *LogRepository {
	version := "1.0.0"
	if config.App.Version != "" {
		version = config.App.Version
	}
	return &LogRepository{fluentdClient: fluentdClient, projectName: config.App.Name, version: version}
}

func (repository *LogRepository) LogRequest(ctx context.Context, req model.RequestLog) error {
	repository.stamp(&req.LoggedAt, &req.Version, &req.ProjectName)
	return repository.post(ctx, core.FluentdRequest, req)
}

func (repository *LogRepository) LogResponse(ctx context.Context, resp model.ResponseLog) error {
	repository.stamp(&resp.LoggedAt, &resp.Version, &resp.ProjectName)
	return repository.post(ctx, core.FluentdResponse, resp)
}

func (repository *LogRepository) LogSnapshot(ctx context.Context, snapshot model.SnapshotLog) error {
	repository.stamp(&snapshot.LoggedAt, &snapshot.Version, &snapshot.ProjectName)
	return repository.post(ctx, core.FluentdSnapshot, snapshot)
}

// stamp 補上呼叫端未填的共用欄位
func (repository *LogRepository) stamp(loggedAt, version, projectName *string) {
	if *loggedAt == "" {
		*loggedAt = time.Now().UTC().Format(loggedAtLayout)
	}
	if *version == "" {
		*version = repository.version
	}
	if *projectName == "" {
		*projectName = repository.projectName
	}
}

// post 先轉成 map，fluent 的 msgpack 編碼才會沿用 json 欄位名
func (repository *LogRepository) post(ctx context.Context, tag core.FluentdSubTag, record any) error {
	b, err := json.Marshal(record)
	if err != nil {
		return err
	}
	var fluentdMessage map[string]any
	if err := json.Unmarshal(b, &fluentdMessage); err != nil {
		return err
	}
	return repository.fluentdClient.Post(ctx, string(tag), fluentdMessage)
}
