package activityfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"planner/internal/repositories"
	"planner/internal/services"
)

var Module = fx.Provide(provideActivityRepo, provideActivityService)

func provideActivityRepo(db *gorm.DB) repositories.ActivityRepository {
	return repositories.NewActivityRepository(db)
}

func provideActivityService(
	activityRepo repositories.ActivityRepository,
	tripRepo repositories.TripRepository,
) services.ActivityServiceInterface {
	return services.NewActivityService(activityRepo, tripRepo)
}
