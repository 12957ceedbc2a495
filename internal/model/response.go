package model

type APIErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

type ErrorResponse struct {
	Error APIErrorBody `json:"error"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
