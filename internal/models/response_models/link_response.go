package response_models

type CreateLinkResponse struct {
	LinkID string `json:"linkId"`
}

type LinkResponse struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	URL   string `json:"url"`
}
