package quizgen

import (
	"encoding/json"
	"regexp"
	"strings"
)

var (
	fencedJSONRe = regexp.MustCompile("```json\\s*\\n([\\s\\S]*?)\\n\\s*```")
	fencedAnyRe  = regexp.MustCompile("```\\s*\\n?([\\s\\S]*?)```")
)

// ExtractJSON recovers a JSON object from raw model output. Models asked
// for bare JSON still wrap it in prose or markdown fences, so recovery
// strategies are tried in order of strictness:
//
//  1. the whole output parses as JSON
//  2. the contents of a fenced code block (```json preferred) parse
//  3. the substring from the first "{" to the last "}" parses
//
// Returns *ErrUnparseable when every strategy fails.
func ExtractJSON(content string) (json.RawMessage, error) {
	trimmed := strings.TrimSpace(content)

	if raw, ok := tryParse(trimmed); ok {
		return raw, nil
	}

	if m := fencedJSONRe.FindStringSubmatch(content); m != nil {
		if raw, ok := tryParse(m[1]); ok {
			return raw, nil
		}
	}
	if m := fencedAnyRe.FindStringSubmatch(content); m != nil {
		if raw, ok := tryParse(m[1]); ok {
			return raw, nil
		}
	}

	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start >= 0 && end > start {
		if raw, ok := tryParse(content[start : end+1]); ok {
			return raw, nil
		}
	}

	return nil, &ErrUnparseable{Content: preview(content)}
}

// tryParse validates candidate as a JSON object or array.
func tryParse(candidate string) (json.RawMessage, bool) {
	candidate = strings.TrimSpace(candidate)
	if candidate == "" {
		return nil, false
	}
	var v any
	if err := json.Unmarshal([]byte(candidate), &v); err != nil {
		return nil, false
	}
	switch v.(type) {
	case map[string]any, []any:
		return json.RawMessage(candidate), true
	}
	return nil, false
}
