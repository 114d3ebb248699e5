package services

import (
	"context"

	dbm "planner/internal/models/db_models"
	"planner/internal/models/response_models"
	"planner/internal/repositories"
	"planner/pkg/utils"
)

type LinkServiceInterface interface {
	CreateLink(ctx context.Context, tripId string, title string, url string) (string, error)
	ListLinksOfTrip(ctx context.Context, tripId string) ([]response_models.LinkResponse, error)
}

type LinkService struct {
	linkRepo repositories.LinkRepository
	tripRepo repositories.TripRepository
}

func NewLinkService(
	linkRepo repositories.LinkRepository,
	tripRepo repositories.TripRepository,
) LinkServiceInterface {
	return &LinkService{
		linkRepo: linkRepo,
		tripRepo: tripRepo,
	}
}

func (s *LinkService) CreateLink(ctx context.Context, tripId string, title string, url string) (string, error) {
	trip, err := s.tripRepo.GetTripById(ctx, tripId)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	if trip == nil {
		return "", utils.ErrTripNotFound
	}

	linkId, err := s.linkRepo.CreateLink(ctx, &dbm.Link{
		TripID: trip.ID,
		Title:  title,
		URL:    url,
	})
	if err != nil {
		return "", utils.ErrDatabaseError
	}

	return linkId.String(), nil
}

func (s *LinkService) ListLinksOfTrip(ctx context.Context, tripId string) ([]response_models.LinkResponse, error) {
	links, err := s.linkRepo.ListLinksByTripId(ctx, tripId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.LinkResponse, 0, len(links))
	for _, l := range links {
		out = append(out, response_models.LinkResponse{
			ID:    l.ID.String(),
			Title: l.Title,
			URL:   l.URL,
		})
	}
	return out, nil
}
