package dbfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"planner/internal/config"
	"planner/internal/infra"
)

var Module = fx.Provide(provideDB)

func provideDB(cfg *config.AppConfig) *gorm.DB {
	return infra.InitPostgresql(cfg.PostgresURL)
}
