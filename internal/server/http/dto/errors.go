package dto

// ErrorResponse is the body of every non-2xx JSON reply.
type ErrorResponse struct {
	Error   string            `json:"error"`
	Details map[string]string `json:"details,omitempty"`
}
