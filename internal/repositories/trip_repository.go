// internal/repositories/trip_repo.go
package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	dbm "planner/internal/models/db_models"
)

type TripRepository interface {
	// CreateTripWithParticipants persists the trip and its full participant
	// set in one transaction; either everything lands or nothing does.
	CreateTripWithParticipants(ctx context.Context, trip *dbm.Trip, participants []dbm.Participant) (uuid.UUID, error)
	GetTripById(ctx context.Context, tripId string) (*dbm.Trip, error)
	// MarkTripConfirmed flips is_confirmed with an is_confirmed = false
	// guard. Returns false when the trip was already confirmed, so two
	// racing confirmations can never both observe a fresh flip.
	MarkTripConfirmed(ctx context.Context, tripId string) (bool, error)
}

type tripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) TripRepository {
	return &tripRepository{db: db}
}

func (r *tripRepository) CreateTripWithParticipants(
	ctx context.Context,
	trip *dbm.Trip,
	participants []dbm.Participant,
) (uuid.UUID, error) {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(trip).Error; err != nil {
			return err
		}

		for i := range participants {
			participants[i].TripID = trip.ID
		}
		if len(participants) > 0 {
			if err := tx.Create(&participants).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	return trip.ID, nil
}

func (r *tripRepository) GetTripById(ctx context.Context, tripId string) (*dbm.Trip, error) {
	var trip dbm.Trip
	err := r.db.WithContext(ctx).
		Where("id = ?", tripId).
		First(&trip).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &trip, nil
}

func (r *tripRepository) MarkTripConfirmed(ctx context.Context, tripId string) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&dbm.Trip{}).
		Where("id = ? AND is_confirmed = ?", tripId, false).
		Update("is_confirmed", true)

	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
