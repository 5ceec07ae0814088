// Package validator checks parsed skill descriptors against the skill
// authoring rules and partitions the findings into blocking errors and
// advisory warnings.
package validator

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/tmorrison/skillcheck/internal/skill"
	"github.com/tmorrison/skillcheck/internal/skill/parser"
	"github.com/tmorrison/skillcheck/internal/validator"
)

// nameRegex constrains names to lowercase letters, digits, and hyphens.
var nameRegex = regexp.MustCompile(`^[a-z0-9-]+$`)

// xmlTagRegex matches anything shaped like a markup tag.
var xmlTagRegex = regexp.MustCompile(`<[^>]+>`)

// firstPersonRegexes flag first-person voice in descriptions. Bare
// pronouns match case-sensitively on word boundaries; contractions
// match case-insensitively. Only the first match per list is reported.
var firstPersonRegexes = []*regexp.Regexp{
	regexp.MustCompile(`\bI\b`),
	regexp.MustCompile(`\bmy\b`),
	regexp.MustCompile(`\bme\b`),
	regexp.MustCompile(`(?i)\bI'm\b`),
	regexp.MustCompile(`(?i)\bI'll\b`),
}

// secondPersonRegexes flag second-person voice in descriptions.
var secondPersonRegexes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\byou\b`),
	regexp.MustCompile(`(?i)\byour\b`),
	regexp.MustCompile(`(?i)\byou're\b`),
	regexp.MustCompile(`(?i)\byou'll\b`),
}

// Option configures a Validator.
type Option func(*Validator)

// Validator validates skill descriptors against a fixed rule set.
// It is stateless across calls and safe for concurrent use.
type Validator struct {
	rules  Rules
	parser *parser.Parser
}

// New creates a new Validator with the given options.
func New(opts ...Option) *Validator {
	v := &Validator{
		rules:  DefaultRules(),
		parser: parser.New(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// WithRules substitutes the rule tables. Used by tests and callers
// that need non-standard limits.
func WithRules(rules Rules) Option {
	return func(v *Validator) {
		v.rules = rules
	}
}

// Rules returns the rule tables this validator applies.
func (v *Validator) Rules() Rules {
	return v.rules
}

// ValidateContent runs the full validation pass over raw descriptor
// content.
//
// If header extraction fails, the result carries that single error and
// nothing else; no field data is trustworthy without a well-formed
// header. Otherwise name checks run before description checks, and the
// body length check contributes at most one warning.
func (v *Validator) ValidateContent(content string) *validator.Result {
	result := &validator.Result{}

	s, err := v.parser.ParseContent(content)
	if err != nil {
		result.AddError("frontmatter", err.Error())
		return result
	}

	return v.Validate(s)
}

// Validate checks an already-parsed Skill.
func (v *Validator) Validate(s *skill.Skill) *validator.Result {
	result := &validator.Result{}

	v.validateName(s.Name, result)
	v.validateDescription(s.Description, result)

	if count := s.BodyLineCount(); count > v.rules.MaxBodyLines {
		result.AddWarningf("body",
			"body has %d non-blank lines (recommended: under %d); consider moving reference material into separate files",
			count, v.rules.MaxBodyLines)
	}

	return result
}

// validateName applies the name rules in fixed order. An empty name
// short-circuits to the single "required" error; otherwise every
// failing check appends its own message.
func (v *Validator) validateName(name string, result *validator.Result) {
	if name == "" {
		result.AddError("name", "name is required")
		return
	}

	if length := utf8.RuneCountInString(name); length > v.rules.MaxNameLength {
		result.AddErrorf("name", "name exceeds maximum length of %d characters (found %d)",
			v.rules.MaxNameLength, length)
	}

	if !nameRegex.MatchString(name) {
		result.AddError("name", "name must contain only lowercase letters, numbers, and hyphens")
	}

	if xmlTagRegex.MatchString(name) {
		result.AddError("name", "name cannot contain XML tags")
	}

	lower := strings.ToLower(name)
	for _, word := range v.rules.ReservedWords {
		if strings.Contains(lower, word) {
			result.AddErrorf("name", "name cannot contain reserved word %q", word)
		}
	}
}

// validateDescription applies the description rules in fixed order,
// with the same empty-value short-circuit as validateName. The voice
// heuristics stop after the first match per category so message counts
// stay reproducible.
func (v *Validator) validateDescription(description string, result *validator.Result) {
	if description == "" {
		result.AddError("description", "description is required")
		return
	}

	if length := utf8.RuneCountInString(description); length > v.rules.MaxDescriptionLength {
		result.AddErrorf("description", "description exceeds maximum length of %d characters (found %d)",
			v.rules.MaxDescriptionLength, length)
	}

	if xmlTagRegex.MatchString(description) {
		result.AddError("description", "description cannot contain XML tags")
	}

	for _, re := range firstPersonRegexes {
		if re.MatchString(description) {
			result.AddError("description",
				"description should use third person, not first person (avoid 'I', 'my', 'me')")
			break
		}
	}

	for _, re := range secondPersonRegexes {
		if re.MatchString(description) {
			result.AddError("description",
				"description should use third person, not second person (avoid 'you', 'your')")
			break
		}
	}

	lower := strings.ToLower(description)
	hasGuidance := false
	for _, phrase := range v.rules.GuidancePhrases {
		if strings.Contains(lower, phrase) {
			hasGuidance = true
			break
		}
	}
	if !hasGuidance {
		result.AddError("description",
			"description should include 'when to use' guidance (e.g., 'Use when...')")
	}
}
