// Package apperror provides tests for the custom error types and utility functions.
package apperror

import (
	"errors"
	"testing"
)

// TestError_Error verifies that the Error() method returns the correct string format.
func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name:     "without field",
			err:      New(CodeDuplicateIdentifier, "duplicate employee name"),
			expected: "[DUPLICATE_IDENTIFIER] duplicate employee name",
		},
		{
			name:     "with field",
			err:      NewWithField(CodeDuplicateIdentifier, "duplicate employee name", "Alice"),
			expected: "[DUPLICATE_IDENTIFIER] duplicate employee name (field: Alice)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %v, want %v", got, tt.expected)
			}
		})
	}
}

// TestError_Unwrap verifies that Unwrap() returns the underlying cause.
func TestError_Unwrap(t *testing.T) {
	cause := errors.New("underlying failure")
	err := Wrap(cause, CodeInternal, "wrapped")

	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}
	if err.Unwrap() != cause {
		t.Errorf("Unwrap() = %v, want %v", err.Unwrap(), cause)
	}
}

func TestIs_MatchesCode(t *testing.T) {
	err := New(CodeIterationLimit, "too many augmentations")

	if !Is(err, CodeIterationLimit) {
		t.Error("Is should match the error's own code")
	}
	if Is(err, CodeTimeout) {
		t.Error("Is should not match a different code")
	}
	if Is(errors.New("plain"), CodeTimeout) {
		t.Error("Is should be false for non-app errors")
	}
}

func TestCode_Extraction(t *testing.T) {
	if got := Code(New(CodeEmptyRoster, "no employees")); got != CodeEmptyRoster {
		t.Errorf("Code() = %v, want %v", got, CodeEmptyRoster)
	}
	if got := Code(errors.New("plain")); got != CodeInternal {
		t.Errorf("Code() for plain error = %v, want %v", got, CodeInternal)
	}

	// The code must survive fmt wrapping.
	wrapped := Wrap(New(CodeNotFound, "run not found"), CodeNotFound, "lookup failed")
	if got := Code(wrapped); got != CodeNotFound {
		t.Errorf("Code() for wrapped = %v, want %v", got, CodeNotFound)
	}
}

func TestSeverity(t *testing.T) {
	if !IsWarning(NewWarning(CodeEmptyRoster, "degenerate input")) {
		t.Error("IsWarning should be true for warning errors")
	}
	if !IsCritical(NewCritical(CodeFlowViolation, "conservation violated")) {
		t.Error("IsCritical should be true for critical errors")
	}
	if IsCritical(New(CodeInternal, "plain error")) {
		t.Error("IsCritical should be false for standard errors")
	}
	if SeverityWarning.String() != "warning" || SeverityCritical.String() != "critical" {
		t.Error("unexpected severity string representation")
	}
}

func TestError_Builders(t *testing.T) {
	err := New(CodeInvalidArgument, "bad input").
		WithField("roster").
		WithDetails("count", 0).
		WithSeverity(SeverityCritical)

	if err.Field != "roster" {
		t.Errorf("Field = %v, want roster", err.Field)
	}
	if err.Details["count"] != 0 {
		t.Errorf("Details[count] = %v, want 0", err.Details["count"])
	}
	if err.Severity != SeverityCritical {
		t.Errorf("Severity = %v, want critical", err.Severity)
	}
}

func TestValidationErrors(t *testing.T) {
	v := NewValidationErrors()
	if !v.IsValid() {
		t.Error("empty collection should be valid")
	}

	v.AddWarning(CodeEmptyCustomerList, "no customers requested")
	if v.HasErrors() || !v.HasWarnings() || !v.IsValid() {
		t.Error("warnings alone should not invalidate the collection")
	}

	v.AddErrorWithField(CodeDuplicateIdentifier, "duplicate customer", "Customer1")
	if !v.HasErrors() || v.IsValid() {
		t.Error("collection with errors should be invalid")
	}

	other := NewValidationErrors()
	other.AddError(CodeNilInput, "roster is nil")
	v.Merge(other)

	if len(v.Errors) != 2 {
		t.Errorf("Errors length = %d, want 2", len(v.Errors))
	}
	if len(v.ErrorMessages()) != 2 || len(v.WarningMessages()) != 1 {
		t.Error("message slices should mirror collected entries")
	}
}
