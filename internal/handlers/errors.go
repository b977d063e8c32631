package handlers

import (
	"errors"
	"time"

	"github.com/mynameberto/ProcessarMatriculaApp/internal/models"
	"github.com/mynameberto/ProcessarMatriculaApp/internal/services"
)

// Error labels surfaced in the "erro" field
const (
	errParse      = "Invalid request body"
	errValidation = "Validation failed"
	errInternal   = "Internal server error"
)

// newErrorResponse builds the standard error payload with a fresh timestamp.
func newErrorResponse(label, message string, details []string) models.ErrorResponse {
	return models.ErrorResponse{
		Error:     label,
		Message:   message,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Details:   details,
	}
}

// asValidationError unwraps a services.ValidationError if present.
func asValidationError(err error) (*services.ValidationError, bool) {
	var vErr *services.ValidationError
	if errors.As(err, &vErr) {
		return vErr, true
	}
	return nil, false
}
