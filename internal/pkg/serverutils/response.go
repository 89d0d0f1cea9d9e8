package serverutils

// ErrorBody is returned by every failing endpoint.
type ErrorBody struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func ErrorResponse(message string) ErrorBody {
	return ErrorBody{
		Success: false,
		Error:   message,
	}
}
