// Package validator provides the shared validation result model for
// skillcheck.
//
// It defines two severities (blocking errors and advisory warnings),
// the [Issue] and [Result] types that accumulate them in rule
// evaluation order, and a [Reporter] that renders results as text,
// JSON, or YAML.
//
// # Basic Usage
//
//	result := &validator.Result{}
//	if name == "" {
//		result.AddError("name", "name is required")
//	}
//
//	if result.HasErrors() {
//		// descriptor must be fixed before acceptance
//	}
package validator
