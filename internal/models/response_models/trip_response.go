package response_models

type CreateTripResponse struct {
	TripID string `json:"tripId"`
}

type TripDetailResponse struct {
	ID           string                `json:"id"`
	Destination  string                `json:"destination"`
	StartsAt     string                `json:"starts_at"`
	EndsAt       string                `json:"ends_at"`
	IsConfirmed  bool                  `json:"is_confirmed"`
	Participants []ParticipantResponse `json:"participants"`
}
