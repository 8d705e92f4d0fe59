package model

// Response is the envelope every API endpoint writes.
type Response struct {
	Data      any     `json:"data,omitempty"`
	Error     *string `json:"error,omitempty"`
	Message   string  `json:"message"`
	RequestID string  `json:"request_id,omitempty"`
}
