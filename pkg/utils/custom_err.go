package utils

import "errors"

var (
	ErrTripNotFound        = errors.New("trip not found")
	ErrParticipantNotFound = errors.New("participant not found")
	ErrInvalidDate         = errors.New("invalid date")
	ErrInvalidInput        = errors.New("invalid input")
	ErrMailDelivery        = errors.New("mail delivery failed")
	ErrDatabaseError       = errors.New("database error")
)
