package domain

import "strings"

// ValidationError is a field-scoped, recoverable input error
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors is the flat aggregate of all failed rules
type ValidationErrors []ValidationError

// Error implements error
func (e ValidationErrors) Error() string {
	parts := make([]string, 0, len(e))
	for _, ve := range e {
		parts = append(parts, ve.Field+": "+ve.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Add appends an error for the field
func (e *ValidationErrors) Add(field, message string) {
	*e = append(*e, ValidationError{Field: field, Message: message})
}

// HasField reports whether any error is tagged with the field
func (e ValidationErrors) HasField(field string) bool {
	return e.FieldMessage(field) != ""
}

// FieldMessage returns the first message for the field
func (e ValidationErrors) FieldMessage(field string) string {
	for _, ve := range e {
		if ve.Field == field {
			return ve.Message
		}
	}
	return ""
}
