package model

// Common Response structure for all API calls
type Response struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"Scan complete"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// DefaultResponse is a generic wrapper for Huma responses
type DefaultResponse struct {
	Body Response
}

// AcceptedResponse is returned by operations that continue in the background.
type AcceptedResponse struct {
	Status int `json:"-"`
	Body   Response
}
