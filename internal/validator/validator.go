// Package validator defines the result model shared by skillcheck
// validations: issues partitioned into blocking errors and advisory
// warnings, plus a reporter for rendering them.
package validator

import (
	"fmt"
	"strings"
)

// Severity represents the impact of a validation issue.
type Severity int

const (
	// SeverityError indicates a blocking validation failure; the
	// descriptor must be fixed before it is accepted.
	SeverityError Severity = iota
	// SeverityWarning indicates an advisory issue; the descriptor is
	// still accepted.
	SeverityWarning
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler so severities render as
// their names in JSON and YAML reports.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Issue represents a single validation problem.
type Issue struct {
	// Severity indicates the impact of the issue.
	Severity Severity `json:"severity" yaml:"severity"`
	// Field identifies the field with the issue (optional).
	Field string `json:"field,omitempty" yaml:"field,omitempty"`
	// Message is a human-readable description of the problem.
	Message string `json:"message" yaml:"message"`
}

// Error implements the error interface.
func (i Issue) Error() string {
	var sb strings.Builder
	sb.WriteString(i.Severity.String())
	sb.WriteString(": ")
	if i.Field != "" {
		fmt.Fprintf(&sb, "%s: ", i.Field)
	}
	sb.WriteString(i.Message)
	return sb.String()
}

// Result aggregates validation issues for one descriptor.
// Issues keep their insertion order, which is the fixed rule
// evaluation order, so reports are deterministic.
type Result struct {
	Issues []Issue `json:"issues" yaml:"issues"`
}

// AddError appends an error issue to the result.
func (r *Result) AddError(field, message string) {
	r.Issues = append(r.Issues, Issue{
		Severity: SeverityError,
		Field:    field,
		Message:  message,
	})
}

// AddErrorf appends an error issue with a formatted message.
func (r *Result) AddErrorf(field, format string, args ...any) {
	r.AddError(field, fmt.Sprintf(format, args...))
}

// AddWarning appends a warning issue to the result.
func (r *Result) AddWarning(field, message string) {
	r.Issues = append(r.Issues, Issue{
		Severity: SeverityWarning,
		Field:    field,
		Message:  message,
	})
}

// AddWarningf appends a warning issue with a formatted message.
func (r *Result) AddWarningf(field, format string, args ...any) {
	r.AddWarning(field, fmt.Sprintf(format, args...))
}

// HasErrors returns true if any issue has SeverityError.
func (r *Result) HasErrors() bool {
	if r == nil {
		return false
	}
	for _, i := range r.Issues {
		if i.Severity == SeverityError {
			return true
		}
	}
	return false
}

// HasWarnings returns true if any issue has SeverityWarning.
func (r *Result) HasWarnings() bool {
	if r == nil {
		return false
	}
	for _, i := range r.Issues {
		if i.Severity == SeverityWarning {
			return true
		}
	}
	return false
}

// Errors returns all issues with SeverityError, in evaluation order.
func (r *Result) Errors() []Issue {
	if r == nil {
		return nil
	}
	var res []Issue
	for _, i := range r.Issues {
		if i.Severity == SeverityError {
			res = append(res, i)
		}
	}
	return res
}

// Warnings returns all issues with SeverityWarning, in evaluation order.
func (r *Result) Warnings() []Issue {
	if r == nil {
		return nil
	}
	var res []Issue
	for _, i := range r.Issues {
		if i.Severity == SeverityWarning {
			res = append(res, i)
		}
	}
	return res
}
