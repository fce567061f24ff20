// Package llm provides the client abstraction and degrading call ladder used
// to obtain schema-shaped JSON from the generative endpoint.
package llm

import (
	"encoding/json"
	"strings"
)

// CleanJSONBlock removes markdown code block wrappers from JSON responses.
// Models often wrap JSON in ```json ... ``` blocks even when instructed not to.
func CleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)

	// Handle ```json ... ``` blocks
	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		return strings.TrimSpace(text)
	}

	// Handle generic ``` ... ``` blocks
	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		// Skip potential language identifier on first line
		if idx := strings.Index(text, "\n"); idx >= 0 {
			firstLine := text[:idx]
			if len(firstLine) < 20 && !strings.Contains(firstLine, " ") && !strings.Contains(firstLine, "{") {
				text = text[idx+1:]
			}
		}
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		return strings.TrimSpace(text)
	}

	return text
}

// SalvageJSON extracts a JSON object from possibly malformed model output.
// It tries a strict decode first, then the substring between the first '{'
// and the last '}'. The worst case is an empty map; it never fails.
func SalvageJSON(text string) map[string]any {
	var out map[string]any
	if err := json.Unmarshal([]byte(text), &out); err == nil && out != nil {
		return out
	}

	i := strings.Index(text, "{")
	j := strings.LastIndex(text, "}")
	if i >= 0 && j > i {
		out = nil
		if err := json.Unmarshal([]byte(text[i:j+1]), &out); err == nil && out != nil {
			return out
		}
	}

	return map[string]any{}
}
