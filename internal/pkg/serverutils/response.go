package serverutils

import "time"

// ErrorBody is the wire shape for every non-2xx response.
type ErrorBody struct {
	Timestamp time.Time `json:"timestamp"`
	Status    int       `json:"status"`
	Error     string    `json:"error"`
	Message   string    `json:"message"`
}

func NewErrorBody(status int, errorText, message string) ErrorBody {
	return ErrorBody{
		Timestamp: time.Now(),
		Status:    status,
		Error:     errorText,
		Message:   message,
	}
}
