package request_models

import "time"

type CreateTripRequest struct {
	Destination    string    `json:"destination" binding:"required,min=4"`
	StartsAt       time.Time `json:"starts_at" binding:"required"`
	EndsAt         time.Time `json:"ends_at" binding:"required"`
	OwnerName      string    `json:"owner_name" binding:"required"`
	OwnerEmail     string    `json:"owner_email" binding:"required,email"`
	EmailsToInvite []string  `json:"emails_to_invite" binding:"omitempty,dive,email"`
}
