package telemetry

import (
	"talentops/config"
	"talentops/internal/core"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric struct，未啟用時所有欄位皆為 nil，呼叫端需以 nil 判斷
type Metric struct {
	HttpRequestsTotal        *prometheus.CounterVec
	HttpRequestDuration      *prometheus.HistogramVec
	SnapshotWritesTotal      *prometheus.CounterVec
	SnapshotLockedTotal      *prometheus.CounterVec
	SnapshotJobDuration      *prometheus.HistogramVec
	UnknownTargetPolicyTotal prometheus.Counter
	config                   *config.Configuration
}

// NewMetric 建立所有指標並註冊到 prometheus 預設 registry
func NewMetric(config *config.Configuration) *Metric {
	return NewMetricWithRegisterer(config, prometheus.DefaultRegisterer)
}

// NewMetricWithRegisterer 測試時傳入獨立 registry，避免重複註冊 panic
func NewMetricWithRegisterer(config *config.Configuration, registerer prometheus.Registerer) *Metric {
	if config == nil || !config.Telemetry.Metric.Enabled {
		return &Metric{}
	}
	factory := promauto.With(registerer)
	buckets := prometheus.DefBuckets
	if len(config.Telemetry.Metric.Buckets) > 0 {
		buckets = config.Telemetry.Metric.Buckets
	}
	prefix := config.App.Name + "_"
	return &Metric{
		config: config,
		HttpRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + string(core.MetricHttpRequestsTotal),
				Help: "Total received API requests",
			},
			labelNames(core.MetricLabelEndpoint, core.MetricLabelStatus),
		),
		HttpRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    prefix + string(core.MetricHttpRequestDuration),
				Help:    "API request duration (seconds)",
				Buckets: buckets,
			},
			labelNames(core.MetricLabelEndpoint),
		),
		SnapshotWritesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + string(core.MetricSnapshotWritesTotal),
				Help: "Daily metrics snapshot upserts",
			},
			labelNames(core.MetricLabelScopeType),
		),
		SnapshotLockedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + string(core.MetricSnapshotLockedTotal),
				Help: "Snapshot captures skipped because the scope lock was held",
			},
			labelNames(core.MetricLabelScopeType),
		),
		SnapshotJobDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    prefix + string(core.MetricSnapshotJobDuration),
				Help:    "Full snapshot capture duration (seconds)",
				Buckets: buckets,
			},
			labelNames(core.MetricLabelResult),
		),
		UnknownTargetPolicyTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: prefix + string(core.MetricUnknownTargetPolicyTotal),
				Help: "Requirements whose criticality/toughness fell back to the default target",
			},
		),
	}
}

// labelNames helper: LabelName slice 轉成 []string
func labelNames(labels ...core.MetricLabelName) []string {
	strs := make([]string, len(labels))
	for i, l := range labels {
		strs[i] = string(l)
	}
	return strs
}
