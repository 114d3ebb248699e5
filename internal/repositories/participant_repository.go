package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	dbm "planner/internal/models/db_models"
)

type ParticipantRepository interface {
	GetParticipantById(ctx context.Context, participantId string) (*dbm.Participant, error)
	ListParticipantsByTripId(ctx context.Context, tripId string) ([]dbm.Participant, error)
	// ListInviteesByTripId returns the non-owner participants of a trip,
	// confirmed or not. These are the recipients of trip-confirmation mail.
	ListInviteesByTripId(ctx context.Context, tripId string) ([]dbm.Participant, error)
	// MarkParticipantConfirmed is the same conditional flip as the trip
	// variant: false means the participant had already confirmed.
	MarkParticipantConfirmed(ctx context.Context, participantId string) (bool, error)
}

type participantRepository struct {
	db *gorm.DB
}

func NewParticipantRepository(db *gorm.DB) ParticipantRepository {
	return &participantRepository{db: db}
}

func (r *participantRepository) GetParticipantById(ctx context.Context, participantId string) (*dbm.Participant, error) {
	var participant dbm.Participant
	err := r.db.WithContext(ctx).
		Where("id = ?", participantId).
		First(&participant).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &participant, nil
}

func (r *participantRepository) ListParticipantsByTripId(ctx context.Context, tripId string) ([]dbm.Participant, error) {
	var participants []dbm.Participant
	err := r.db.WithContext(ctx).
		Where("trip_id = ?", tripId).
		Order("created_at").
		Find(&participants).Error

	if err != nil {
		return nil, err
	}

	return participants, nil
}

func (r *participantRepository) ListInviteesByTripId(ctx context.Context, tripId string) ([]dbm.Participant, error) {
	var participants []dbm.Participant
	err := r.db.WithContext(ctx).
		Where("trip_id = ? AND is_owner = ?", tripId, false).
		Order("created_at").
		Find(&participants).Error

	if err != nil {
		return nil, err
	}

	return participants, nil
}

func (r *participantRepository) MarkParticipantConfirmed(ctx context.Context, participantId string) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&dbm.Participant{}).
		Where("id = ? AND is_confirmed = ?", participantId, false).
		Update("is_confirmed", true)

	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
