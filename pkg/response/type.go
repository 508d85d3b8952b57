package response

// ErrorBody is the JSON error payload of the log API, e.g. {"error": "No log found"}.
type ErrorBody struct {
	Error string `json:"error"`
}

// InfoBody describes the API at GET /api/.
type InfoBody struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	Description string `json:"description"`
	Status      string `json:"status"`
}
