package tripfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"planner/internal/config"
	"planner/internal/repositories"
	"planner/internal/services"
)

var Module = fx.Provide(provideTripRepo, provideTripService)

func provideTripRepo(db *gorm.DB) repositories.TripRepository {
	return repositories.NewTripRepository(db)
}

func provideTripService(
	tripRepo repositories.TripRepository,
	participantRepo repositories.ParticipantRepository,
	mailService services.IMailService,
	cfg *config.AppConfig,
) services.TripServiceInterface {
	return services.NewTripService(tripRepo, participantRepo, mailService, cfg)
}
