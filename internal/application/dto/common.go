package dto

import "github.com/sendhur-traders/gst-invoice/internal/domain"

// ErrorResponse HTTP error body. Fields is set for VALIDATION errors.
type ErrorResponse struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Fields  []domain.FieldError `json:"fields,omitempty"`
}

// MessageResponse plain acknowledgement body.
type MessageResponse struct {
	Message string `json:"message"`
}
