package bootstrap

import (
	"library-circulation/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		func(cfg config.Config) config.BorrowingConfig { return cfg.Borrowing },
	),
)
