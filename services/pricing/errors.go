package pricing

import (
	"fmt"
	"strings"
)

// FieldError pinpoints one invalid request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError signals a malformed quote request. It carries enough
// field-level detail for the caller to correct the request.
type ValidationError struct {
	Details []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Details))
	for i, d := range e.Details {
		parts[i] = d.Field + ": " + d.Message
	}
	return "invalid quote request: " + strings.Join(parts, "; ")
}

// NotFoundError signals that a referenced service, stylist or event does not
// exist or is inactive.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found or inactive", e.Resource, e.ID)
}
