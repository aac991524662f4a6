package handler

import "github.com/google/wire"

// ProviderSet 績效 / 目標 / 健康檢查 handler
var ProviderSet = wire.NewSet(
	NewPerformanceHandler,
	NewTargetHandler,
	NewHealthHandler,
)
