package gateway

import "fmt"

// ValidationError names the request field that is missing or invalid. It is
// raised strictly before any outbound provider call.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("%s is required", e.Field)
}

func missingField(name string) *ValidationError {
	return &ValidationError{Field: name}
}

// SchemaValidationError reports model output on the schema-validated path
// that does not conform to the expected shape. It is never passed through to
// the caller as a success.
type SchemaValidationError struct {
	Reason string
}

func (e *SchemaValidationError) Error() string {
	return "model output failed schema validation: " + e.Reason
}
