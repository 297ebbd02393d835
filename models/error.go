package models

// ErrorMessageResponse returns the error message response struct
type ErrorMessageResponse struct {
	Response MessageError
}

// MessageError contains the inner details for the error message response
type MessageError struct {
	Message string
	Error   string
}

// ValidationErrorResponse is the body returned when a request fails schema
// validation
type ValidationErrorResponse struct {
	Error   string       `json:"error"`
	Details []FieldError `json:"details"`
}

// FieldError describes a single invalid field in a request body
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
