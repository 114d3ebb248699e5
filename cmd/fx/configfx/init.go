package configfx

import (
	"go.uber.org/fx"
	"planner/internal/config"
)

var Module = fx.Provide(config.Load)
