package bootstrap

import (
	"github.com/ranjayd-harvard/venue-management-system-sub003/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		func(cfg config.Config) config.QuoteConfig {
			return cfg.Quote
		},
	),
)
