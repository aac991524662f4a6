package repository

import "github.com/google/wire"

// ProviderSet fluentd 端只有 request / response / snapshot 三種 log
var ProviderSet = wire.NewSet(NewLogRepository)
