package llm

import (
	"errors"
	"strings"
	"unicode"
)

// ErrNoJSONObject is returned when text has no '{' ... '}' span
var ErrNoJSONObject = errors.New("no JSON object found in model output")

// StripCodeFences removes a surrounding markdown code fence and its optional
// language tag, e.g. "```json\n{...}\n```". Text without fences is only trimmed.
func StripCodeFences(text string) string {
	s := strings.TrimSpace(text)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimLeftFunc(s[3:], isFenceTagRune)
	}
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// ExtractJSONObject returns the span from the first '{' to the last '}'.
//
// This is a heuristic to discard prose around the object. It does not balance
// braces, so prose containing a stray '{' before the object or a '}' after it
// yields a span that fails to decode.
func ExtractJSONObject(text string) (string, error) {
	start := strings.IndexByte(text, '{')
	end := strings.LastIndexByte(text, '}')
	if start < 0 || end < start {
		return "", ErrNoJSONObject
	}
	return text[start : end+1], nil
}

func isFenceTagRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '+' || r == '-' || r == '_'
}
