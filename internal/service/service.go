package service

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewHealthService,
	NewTargetPolicy,
	NewDeliveryService,
	NewSnapshotService,
	NewTargetSummaryService,
	NewTargetMappingService,
)
