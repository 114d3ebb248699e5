package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	dbm "planner/internal/models/db_models"
)

type LinkRepository interface {
	CreateLink(ctx context.Context, link *dbm.Link) (uuid.UUID, error)
	ListLinksByTripId(ctx context.Context, tripId string) ([]dbm.Link, error)
}

type linkRepository struct {
	db *gorm.DB
}

func NewLinkRepository(db *gorm.DB) LinkRepository {
	return &linkRepository{db: db}
}

func (r *linkRepository) CreateLink(ctx context.Context, link *dbm.Link) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(link).Error; err != nil {
		return uuid.Nil, err
	}
	return link.ID, nil
}

func (r *linkRepository) ListLinksByTripId(ctx context.Context, tripId string) ([]dbm.Link, error) {
	var links []dbm.Link
	err := r.db.WithContext(ctx).
		Where("trip_id = ?", tripId).
		Order("created_at").
		Find(&links).Error

	if err != nil {
		return nil, err
	}

	return links, nil
}
