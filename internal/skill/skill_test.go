package skill

import (
	"strings"
	"testing"
)

func TestSkill_BodyLineCount(t *testing.T) {
	tests := []struct {
		name string
		body string
		want int
	}{
		{name: "empty body", body: "", want: 0},
		{name: "single line", body: "one line", want: 1},
		{name: "blank lines are not counted", body: "a\n\n  \nb\n\t\nc\n", want: 3},
		{name: "only whitespace", body: " \n\t\n   \n", want: 0},
		{name: "501 non-blank lines", body: strings.Repeat("line\n", 501), want: 501},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Skill{Body: tt.body}
			if got := s.BodyLineCount(); got != tt.want {
				t.Errorf("BodyLineCount() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSkill_Field(t *testing.T) {
	s := &Skill{Fields: map[string]string{"license": "MIT"}}

	if got := s.Field("license"); got != "MIT" {
		t.Errorf("Field(license) = %q, want MIT", got)
	}
	if got := s.Field("missing"); got != "" {
		t.Errorf("Field(missing) = %q, want empty", got)
	}
}
