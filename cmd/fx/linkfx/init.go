package linkfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"planner/internal/repositories"
	"planner/internal/services"
)

var Module = fx.Provide(provideLinkRepo, provideLinkService)

func provideLinkRepo(db *gorm.DB) repositories.LinkRepository {
	return repositories.NewLinkRepository(db)
}

func provideLinkService(
	linkRepo repositories.LinkRepository,
	tripRepo repositories.TripRepository,
) services.LinkServiceInterface {
	return services.NewLinkService(linkRepo, tripRepo)
}
