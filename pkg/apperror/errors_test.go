package apperror

import (
	"errors"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name:     "without field",
			err:      New(CodeInvalidArgument, "edge file is unreadable"),
			expected: "[INVALID_ARGUMENT] edge file is unreadable",
		},
		{
			name:     "with field",
			err:      NewWithField(CodeInvalidSource, "source not found", "s"),
			expected: "[INVALID_SOURCE] source not found (field: s)",
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

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(cause, CodeInternal, "wrapped error")

	if unwrapped := err.Unwrap(); unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}
}

func TestNew(t *testing.T) {
	err := New(CodeMalformedEdge, "edge line has fewer than 4 fields")

	if err.Code != CodeMalformedEdge {
		t.Errorf("Code = %v, want %v", err.Code, CodeMalformedEdge)
	}
	if err.Severity != SeverityError {
		t.Errorf("Severity = %v, want %v", err.Severity, SeverityError)
	}
}

func TestNewWarning(t *testing.T) {
	err := NewWarning(CodeMalformedEdge, "blank line skipped")
	if err.Severity != SeverityWarning {
		t.Errorf("Severity = %v, want %v", err.Severity, SeverityWarning)
	}
}

func TestNewCritical(t *testing.T) {
	err := NewCritical(CodeInternal, "critical failure")
	if err.Severity != SeverityCritical {
		t.Errorf("Severity = %v, want %v", err.Severity, SeverityCritical)
	}
}

func TestWithDetails(t *testing.T) {
	err := New(CodeInvalidArgument, "invalid").
		WithDetails("line", 5).
		WithDetails("field", "cost")

	if err.Details["line"] != 5 {
		t.Errorf("Details[line] = %v, want 5", err.Details["line"])
	}
	if err.Details["field"] != "cost" {
		t.Errorf("Details[field] = %v, want cost", err.Details["field"])
	}
}

func TestWithField(t *testing.T) {
	err := New(CodeInvalidSource, "invalid source").WithField("s")
	if err.Field != "s" {
		t.Errorf("Field = %v, want s", err.Field)
	}
}

func TestWithSeverity(t *testing.T) {
	err := New(CodeInvalidArgument, "invalid").WithSeverity(SeverityCritical)
	if err.Severity != SeverityCritical {
		t.Errorf("Severity = %v, want %v", err.Severity, SeverityCritical)
	}
}

func TestIs(t *testing.T) {
	err := New(CodeMalformedEdge, "malformed")

	if !Is(err, CodeMalformedEdge) {
		t.Error("Is() should return true for matching code")
	}
	if Is(err, CodeInvalidArgument) {
		t.Error("Is() should return false for non-matching code")
	}
	if Is(errors.New("regular error"), CodeMalformedEdge) {
		t.Error("Is() should return false for non-Error")
	}
}

func TestCode(t *testing.T) {
	err := New(CodeInfeasible, "no feasible path")
	if Code(err) != CodeInfeasible {
		t.Errorf("Code() = %v, want %v", Code(err), CodeInfeasible)
	}

	regularErr := errors.New("regular error")
	if Code(regularErr) != CodeInternal {
		t.Errorf("Code() for regular error = %v, want %v", Code(regularErr), CodeInternal)
	}
}

func TestIsWarning(t *testing.T) {
	warning := NewWarning(CodeMalformedEdge, "blank line")
	err := New(CodeInvalidArgument, "invalid")

	if !IsWarning(warning) {
		t.Error("IsWarning() should return true for warning")
	}
	if IsWarning(err) {
		t.Error("IsWarning() should return false for error")
	}
}

func TestIsCritical(t *testing.T) {
	critical := NewCritical(CodeInternal, "critical")
	err := New(CodeInvalidArgument, "invalid")

	if !IsCritical(critical) {
		t.Error("IsCritical() should return true for critical")
	}
	if IsCritical(err) {
		t.Error("IsCritical() should return false for error")
	}
}

func TestSeverity_String(t *testing.T) {
	tests := []struct {
		severity Severity
		expected string
	}{
		{SeverityWarning, "warning"},
		{SeverityError, "error"},
		{SeverityCritical, "critical"},
		{Severity(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.severity.String(); got != tt.expected {
			t.Errorf("Severity.String() = %v, want %v", got, tt.expected)
		}
	}
}

func TestValidationErrors(t *testing.T) {
	t.Run("new validation errors", func(t *testing.T) {
		ve := NewValidationErrors()
		if ve.HasErrors() {
			t.Error("new ValidationErrors should not have errors")
		}
		if !ve.IsValid() {
			t.Error("new ValidationErrors should be valid")
		}
	})

	t.Run("add error", func(t *testing.T) {
		ve := NewValidationErrors()
		ve.AddError(CodeMalformedEdge, "line 3: expected 4 fields")

		if !ve.HasErrors() {
			t.Error("should have errors")
		}
		if ve.IsValid() {
			t.Error("should not be valid")
		}
		if len(ve.Errors) != 1 {
			t.Errorf("errors count = %d, want 1", len(ve.Errors))
		}
	})

	t.Run("add error with field", func(t *testing.T) {
		ve := NewValidationErrors()
		ve.AddErrorWithField(CodeInvalidSource, "invalid", "s")

		if ve.Errors[0].Field != "s" {
			t.Errorf("Field = %v, want s", ve.Errors[0].Field)
		}
	})

	t.Run("error messages", func(t *testing.T) {
		ve := NewValidationErrors()
		ve.AddError(CodeMalformedEdge, "error1")
		ve.AddError(CodeMalformedEdge, "error2")

		messages := ve.ErrorMessages()
		if len(messages) != 2 {
			t.Errorf("messages count = %d, want 2", len(messages))
		}
	})
}

func TestPredefinedErrors(t *testing.T) {
	predefinedErrors := []*Error{
		ErrInvalidSource,
		ErrInvalidSink,
		ErrTimeout,
	}

	for _, err := range predefinedErrors {
		if err == nil {
			t.Error("predefined error should not be nil")
			continue
		}
		if err.Code == "" {
			t.Error("predefined error should have a code")
		}
		if err.Message == "" {
			t.Error("predefined error should have a message")
		}
	}
}
