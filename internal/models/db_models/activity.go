package db_models

import (
	"github.com/google/uuid"
	"time"
)

// Activity is a dated sub-event of a trip. OccursAt must fall inside the
// owning trip's window; the service layer enforces that before creation.
type Activity struct {
	BaseModel
	TripID   uuid.UUID `gorm:"type:uuid;index"`
	Title    string
	OccursAt time.Time
}
