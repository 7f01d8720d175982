package handler

// errorResponse is the envelope for validation and internal errors.
type errorResponse struct {
	Error string `json:"error"`
}

// messageResponse is the envelope for the legacy message-style replies the
// frontend expects (register, delete, auth failures).
type messageResponse struct {
	Message string `json:"message"`
}
