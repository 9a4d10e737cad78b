package ai

import "testing"

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain json",
			input: `{"entries": []}`,
			want:  `{"entries": []}`,
		},
		{
			name:  "json fence",
			input: "Here you go:\n```json\n{\"entries\": []}\n```",
			want:  `{"entries": []}`,
		},
		{
			name:  "bare fence",
			input: "```\n{\"entries\": []}\n```",
			want:  `{"entries": []}`,
		},
		{
			name:  "surrounding text",
			input: "Sure! {\"a\": 1} Hope that helps.",
			want:  `{"a": 1}`,
		},
		{
			name:  "line comment",
			input: "{\n\"a\": 1 // комментарий\n}",
			want:  "{\n\"a\": 1\n}",
		},
		{
			name:  "slashes inside string survive",
			input: "{\n\"url\": \"http://example.com\"\n}",
			want:  "{\n\"url\": \"http://example.com\"\n}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractJSON(tt.input); got != tt.want {
				t.Errorf("extractJSON() = %q, want %q", got, tt.want)
			}
		})
	}
}
