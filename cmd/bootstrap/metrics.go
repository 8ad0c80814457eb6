package bootstrap

import (
	"lng-loading/internal/observability/metrics"

	"go.uber.org/fx"
)

var MetricsModule = fx.Module("metrics",
	fx.Invoke(func() {
		metrics.Init()
	}),
)
