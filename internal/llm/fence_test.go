package llm

import (
	"encoding/json"
	"testing"
)

func TestStripFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare json", `{"a":1}`, `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"plain fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"fence with prose", "Here is the result:\n```json\n{\"a\":1}\n```\nDone.", `{"a":1}`},
		{"prose around object", `The answer is {"a":1} as requested.`, `{"a":1}`},
		{"array", `[1,2,3]`, `[1,2,3]`},
		{"whitespace", "  \n {\"a\":1} \n ", `{"a":1}`},
		{"no json at all", "just text", "just text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := string(StripFences(json.RawMessage(tt.in)))
			if got != tt.want {
				t.Errorf("StripFences(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestTrimQuotes(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`"Why does the scheme target rural households?"`, "Why does the scheme target rural households?"},
		{`no quotes here`, "no quotes here"},
		{`"unbalanced`, `"unbalanced`},
		{`  "padded"  `, "padded"},
		{`""`, ""},
	}

	for _, tt := range tests {
		if got := TrimQuotes(tt.in); got != tt.want {
			t.Errorf("TrimQuotes(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
