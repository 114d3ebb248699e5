package db_models

import (
	"github.com/google/uuid"
)

// Participant is one attendee of a trip. Exactly one participant per trip
// carries IsOwner; the owner is created already confirmed. Invitees have no
// name until they identify themselves.
type Participant struct {
	BaseModel
	TripID      uuid.UUID `gorm:"type:uuid;index"`
	Name        string
	Email       string
	IsOwner     bool
	IsConfirmed bool
}
