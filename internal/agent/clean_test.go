package agent

import (
	"testing"
)

func TestCleanResponse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain text untouched",
			input: "Paris has many restaurants.",
			want:  "Paris has many restaurants.",
		},
		{
			name:  "ansi escape sequences removed",
			input: "\x1b[1mimportant\x1b[0m text",
			want:  "important text",
		},
		{
			name:  "box drawing characters removed",
			input: "┃ boxed content ┃",
			want:  "boxed content",
		},
		{
			name:  "heading markers removed",
			input: "## Top results\ncontent",
			want:  "Top results\ncontent",
		},
		{
			name:  "bold and code markers removed",
			input: "**Go** is a `compiled` language",
			want:  "Go is a compiled language",
		},
		{
			name:  "link formatting removed",
			input: "See [the docs](https://go.dev/doc) for details",
			want:  "See the docs for details",
		},
		{
			name:  "bullet symbols normalized",
			input: "• first\n• second",
			want:  "- first\n- second",
		},
		{
			name:  "excess blank lines collapsed",
			input: "first\n\n\n\n\nsecond",
			want:  "first\n\nsecond",
		},
		{
			name:  "surrounding whitespace trimmed",
			input: "  \n answer \n\n",
			want:  "answer",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanResponse(tt.input); got != tt.want {
				t.Errorf("CleanResponse(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
