package model

// Response is the envelope every users API response is wrapped in.
type Response struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
	Data    any    `json:"data,omitempty"`
}
