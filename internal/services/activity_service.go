package services

import (
	"context"
	"time"

	dbm "planner/internal/models/db_models"
	"planner/internal/models/response_models"
	"planner/internal/repositories"
	"planner/pkg/utils"
)

type ActivityServiceInterface interface {
	CreateActivity(ctx context.Context, tripId string, title string, occursAt time.Time) (string, error)
	ListActivitiesOfTrip(ctx context.Context, tripId string) ([]response_models.ActivityResponse, error)
}

type ActivityService struct {
	activityRepo repositories.ActivityRepository
	tripRepo     repositories.TripRepository
}

func NewActivityService(
	activityRepo repositories.ActivityRepository,
	tripRepo repositories.TripRepository,
) ActivityServiceInterface {
	return &ActivityService{
		activityRepo: activityRepo,
		tripRepo:     tripRepo,
	}
}

func (s *ActivityService) CreateActivity(ctx context.Context, tripId string, title string, occursAt time.Time) (string, error) {
	trip, err := s.tripRepo.GetTripById(ctx, tripId)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	if trip == nil {
		return "", utils.ErrTripNotFound
	}

	if err := utils.ValidateActivityWindow(occursAt, trip.StartsAt, trip.EndsAt); err != nil {
		return "", err
	}

	activityId, err := s.activityRepo.CreateActivity(ctx, &dbm.Activity{
		TripID:   trip.ID,
		Title:    title,
		OccursAt: occursAt.UTC(),
	})
	if err != nil {
		return "", utils.ErrDatabaseError
	}

	return activityId.String(), nil
}

func (s *ActivityService) ListActivitiesOfTrip(ctx context.Context, tripId string) ([]response_models.ActivityResponse, error) {
	activities, err := s.activityRepo.ListActivitiesByTripId(ctx, tripId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.ActivityResponse, 0, len(activities))
	for _, a := range activities {
		out = append(out, response_models.ActivityResponse{
			ID:       a.ID.String(),
			Title:    a.Title,
			OccursAt: utils.FormatRFC3339(a.OccursAt),
		})
	}
	return out, nil
}
