package llm

import (
	"encoding/json"
	"regexp"
	"strings"
)

// Some backends wrap JSON in markdown fences even when asked for bare JSON.
// Providers run their raw text through StripFences before schema validation
// so a fenced-but-valid payload is not rejected.

var fenceRe = regexp.MustCompile("(?s)```(?:json)?\\s*\\n?(.*?)\\n?```")

// StripFences extracts JSON content from markdown code fences. If no fence
// is found, it falls back to the outermost {...} or [...] span; failing
// that, it returns the trimmed input unchanged.
func StripFences(raw json.RawMessage) json.RawMessage {
	s := strings.TrimSpace(string(raw))

	if m := fenceRe.FindStringSubmatch(s); m != nil {
		return json.RawMessage(strings.TrimSpace(m[1]))
	}

	// No fence. If the text already starts with a JSON value, keep it.
	if strings.HasPrefix(s, "{") || strings.HasPrefix(s, "[") || strings.HasPrefix(s, `"`) {
		return json.RawMessage(s)
	}

	// Prose around a JSON object: take the outermost braces.
	if start := strings.IndexAny(s, "{["); start >= 0 {
		open := s[start]
		close := byte('}')
		if open == '[' {
			close = ']'
		}
		if end := strings.LastIndexByte(s, close); end > start {
			return json.RawMessage(strings.TrimSpace(s[start : end+1]))
		}
	}

	return json.RawMessage(s)
}

// TrimQuotes removes a single layer of wrapping double quotes from generated
// question text. Oracles occasionally quote the whole question.
func TrimQuotes(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return strings.TrimSpace(s[1 : len(s)-1])
	}
	return s
}
