package service

import (
	apperrors "meal-mosaic/internal/errors"
	"meal-mosaic/internal/validation"
)

// rejection converts a rejected verdict into the structured error handlers
// translate to an HTTP response. Accepted verdicts never reach here.
func rejection(v *validation.Verdict) *apperrors.RequestError {
	return &apperrors.RequestError{
		Status:        v.Status,
		Message:       v.Message,
		Detail:        v.Detail,
		MissingFields: v.MissingFields,
		InvalidFields: v.InvalidFields,
	}
}
