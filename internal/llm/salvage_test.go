package llm

import (
	"reflect"
	"testing"
)

func TestCleanJSONBlock(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "json code block",
			input:    "```json\n{\"key\": \"value\"}\n```",
			expected: `{"key": "value"}`,
		},
		{
			name:     "generic code block",
			input:    "```\n{\"key\": \"value\"}\n```",
			expected: `{"key": "value"}`,
		},
		{
			name:     "code block with language",
			input:    "```javascript\n{\"key\": \"value\"}\n```",
			expected: `{"key": "value"}`,
		},
		{
			name:     "plain JSON",
			input:    `{"key": "value"}`,
			expected: `{"key": "value"}`,
		},
		{
			name:     "surrounding whitespace",
			input:    "  \n{\"key\": \"value\"}\n  ",
			expected: `{"key": "value"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CleanJSONBlock(tt.input)
			if result != tt.expected {
				t.Errorf("CleanJSONBlock() = %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestSalvageJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected map[string]any
	}{
		{
			name:     "strict JSON object",
			input:    `{"names": ["Welder"]}`,
			expected: map[string]any{"names": []any{"Welder"}},
		},
		{
			name:     "object wrapped in prose",
			input:    "Here is the result you asked for:\n{\"name\": \"Хирург\"}\nLet me know if you need more.",
			expected: map[string]any{"name": "Хирург"},
		},
		{
			name:     "object with prefix and suffix braceless text",
			input:    "result -> {\"a\": 1} <- done",
			expected: map[string]any{"a": float64(1)},
		},
		{
			name:     "nested objects",
			input:    "Output: {\"outer\": {\"inner\": \"v\"}}",
			expected: map[string]any{"outer": map[string]any{"inner": "v"}},
		},
		{
			name:     "no braces at all",
			input:    "no structured data here",
			expected: map[string]any{},
		},
		{
			name:     "malformed inside braces",
			input:    "{not json}",
			expected: map[string]any{},
		},
		{
			name:     "empty string",
			input:    "",
			expected: map[string]any{},
		},
		{
			name:     "json null",
			input:    "null",
			expected: map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := SalvageJSON(tt.input)
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("SalvageJSON() = %#v, want %#v", result, tt.expected)
			}
		})
	}
}

func TestSalvageJSON_NeverNil(t *testing.T) {
	inputs := []string{"", "{", "}", "{}", "[1,2,3]", "{\"a\":}"}
	for _, in := range inputs {
		if got := SalvageJSON(in); got == nil {
			t.Errorf("SalvageJSON(%q) returned nil, want non-nil map", in)
		}
	}
}
