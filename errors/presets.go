package errors

import "google.golang.org/grpc/codes"

func Unknown() ErrorResponse {
	return New("Unknown error occurred", codes.Unknown, nil).WithReason("unknown")
}

func InvalidArgument() ErrorResponse {
	return New("Invalid argument", codes.InvalidArgument, nil).WithReason("invalid_argument")
}

// ValidationViolations reports per-field classification failures.
func ValidationViolations(v []FieldViolation) ErrorResponse {
	return InvalidArgument().WithReason("validation_failed").WithViolations(v)
}

// Violation is a shortcut for a single-field ValidationViolations.
func Violation(field, reason, description string) ErrorResponse {
	return ValidationViolations([]FieldViolation{{Field: field, Reason: reason, Description: description}})
}
