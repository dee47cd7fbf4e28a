package request

type CreateBookingRequest struct {
	// SessionID overrides the session resolved from the request.
	SessionID string            `json:"session_id"`
	Fields    map[string]string `json:"fields" binding:"required"`
}
