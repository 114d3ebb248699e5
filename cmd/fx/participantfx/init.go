package participantfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"planner/internal/config"
	"planner/internal/repositories"
	"planner/internal/services"
)

var Module = fx.Provide(provideParticipantRepo, provideParticipantService)

func provideParticipantRepo(db *gorm.DB) repositories.ParticipantRepository {
	return repositories.NewParticipantRepository(db)
}

func provideParticipantService(
	participantRepo repositories.ParticipantRepository,
	cfg *config.AppConfig,
) services.ParticipantServiceInterface {
	return services.NewParticipantService(participantRepo, cfg)
}
