package response_models

type ParticipantResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name,omitempty"`
	Email       string `json:"email"`
	IsOwner     bool   `json:"is_owner"`
	IsConfirmed bool   `json:"is_confirmed"`
}
