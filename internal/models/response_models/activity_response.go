package response_models

type CreateActivityResponse struct {
	ActivityID string `json:"activityId"`
}

type ActivityResponse struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	OccursAt string `json:"occurs_at"`
}
