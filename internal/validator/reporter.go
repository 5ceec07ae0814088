package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/tmorrison/skillcheck/internal/errors"
)

// Format specifies the output format for validation reports.
type Format string

const (
	// FormatText produces human-readable text output.
	FormatText Format = "text"
	// FormatJSON produces machine-readable JSON output.
	FormatJSON Format = "json"
	// FormatYAML produces machine-readable YAML output.
	FormatYAML Format = "yaml"
)

// ValidFormat reports whether f names a supported report format.
func ValidFormat(f Format) bool {
	switch f {
	case FormatText, FormatJSON, FormatYAML:
		return true
	}
	return false
}

// Report is the serializable shape of a validation outcome for one
// descriptor.
type Report struct {
	Path     string   `json:"path,omitempty" yaml:"path,omitempty"`
	Valid    bool     `json:"valid" yaml:"valid"`
	Errors   []string `json:"errors,omitempty" yaml:"errors,omitempty"`
	Warnings []string `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// NewReport flattens a Result into a Report for the given path.
func NewReport(path string, result *Result) Report {
	rep := Report{
		Path:  path,
		Valid: !result.HasErrors(),
	}
	for _, i := range result.Errors() {
		rep.Errors = append(rep.Errors, issueLine(i))
	}
	for _, i := range result.Warnings() {
		rep.Warnings = append(rep.Warnings, issueLine(i))
	}
	return rep
}

func issueLine(i Issue) string {
	if i.Field == "" {
		return i.Message
	}
	return fmt.Sprintf("%s: %s", i.Field, i.Message)
}

// Reporter formats and writes validation results.
type Reporter struct {
	out    io.Writer
	format Format
}

// NewReporter creates a new Reporter writing to out in the given format.
func NewReporter(out io.Writer, format Format) *Reporter {
	return &Reporter{
		out:    out,
		format: format,
	}
}

// Report writes the validation outcome for one descriptor.
func (r *Reporter) Report(path string, result *Result) error {
	switch r.format {
	case FormatJSON:
		return r.reportJSON(path, result)
	case FormatYAML:
		return r.reportYAML(path, result)
	default:
		return r.reportText(path, result)
	}
}

func (r *Reporter) reportJSON(path string, result *Result) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(NewReport(path, result)), "encoding JSON report")
}

func (r *Reporter) reportYAML(path string, result *Result) error {
	enc := yaml.NewEncoder(r.out)
	enc.SetIndent(2)
	if err := enc.Encode(NewReport(path, result)); err != nil {
		return errors.Wrap(err, "encoding YAML report")
	}
	return errors.Wrap(enc.Close(), "encoding YAML report")
}

func (r *Reporter) reportText(path string, result *Result) error {
	errs := result.Errors()
	warnings := result.Warnings()

	if path != "" {
		fmt.Fprintf(r.out, "Validating: %s\n\n", path)
	}

	switch {
	case len(errs) > 0:
		fmt.Fprintln(r.out, color.RedString("✗ Validation failed"))
	case len(warnings) > 0:
		fmt.Fprintln(r.out, color.YellowString("⚠ Validation passed with warnings"))
	default:
		fmt.Fprintln(r.out, color.GreenString("✓ Validation passed"))
		return nil
	}
	fmt.Fprintln(r.out)

	if len(errs) > 0 {
		fmt.Fprintln(r.out, "Errors:")
		for _, i := range errs {
			r.printIssue(i, color.FgRed)
		}
		fmt.Fprintln(r.out)
	}

	if len(warnings) > 0 {
		fmt.Fprintln(r.out, "Warnings:")
		for _, i := range warnings {
			r.printIssue(i, color.FgYellow)
		}
		fmt.Fprintln(r.out)
	}

	return nil
}

func (r *Reporter) printIssue(i Issue, c color.Attribute) {
	printer := color.New(c).SprintFunc()

	var sb strings.Builder
	sb.WriteString("  - ")
	if i.Field != "" {
		sb.WriteString(printer(i.Field))
		sb.WriteString(": ")
	}
	sb.WriteString(i.Message)

	fmt.Fprintln(r.out, sb.String())
}
