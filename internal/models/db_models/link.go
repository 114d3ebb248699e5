package db_models

import (
	"github.com/google/uuid"
)

type Link struct {
	BaseModel
	TripID uuid.UUID `gorm:"type:uuid;index"`
	Title  string
	URL    string
}
