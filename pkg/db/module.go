package db

import (
	"context"

	"github.com/PrimeDigitals001/Prototype-pos/internal/config"
	"github.com/PrimeDigitals001/Prototype-pos/internal/observability/logger"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var Module = fx.Module("db",
	fx.Provide(New),
)

// New opens the configured database and closes it on shutdown.
func New(lc fx.Lifecycle, cfg config.Config, log *zap.Logger) (*gorm.DB, error) {
	dialector, err := Dialect(cfg)
	if err != nil {
		return nil, err
	}

	gdb, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.NewGormLogger(logger.DefaultGormLoggerConfig(log)),
	})
	if err != nil {
		return nil, err
	}

	log.Info("database opened",
		zap.String("type", cfg.DBType),
		zap.String("path", cfg.DBPath),
	)

	if lc != nil {
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				sqlDB, err := gdb.DB()
				if err != nil {
					return err
				}
				return sqlDB.Close()
			},
		})
	}

	return gdb, nil
}
