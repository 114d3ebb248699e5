package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	dbm "planner/internal/models/db_models"
)

type ActivityRepository interface {
	CreateActivity(ctx context.Context, activity *dbm.Activity) (uuid.UUID, error)
	ListActivitiesByTripId(ctx context.Context, tripId string) ([]dbm.Activity, error)
}

type activityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) CreateActivity(ctx context.Context, activity *dbm.Activity) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(activity).Error; err != nil {
		return uuid.Nil, err
	}
	return activity.ID, nil
}

func (r *activityRepository) ListActivitiesByTripId(ctx context.Context, tripId string) ([]dbm.Activity, error) {
	var activities []dbm.Activity
	err := r.db.WithContext(ctx).
		Where("trip_id = ?", tripId).
		Order("occurs_at").
		Find(&activities).Error

	if err != nil {
		return nil, err
	}

	return activities, nil
}
