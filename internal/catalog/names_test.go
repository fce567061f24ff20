package catalog

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/profession-catalog/internal/llm"
)

// mapFetcher returns a canned payload per matching user-prompt substring.
type mapFetcher struct {
	payloads map[string]map[string]any
	calls    []string
}

func (f *mapFetcher) Fetch(_ context.Context, req llm.Request) map[string]any {
	f.calls = append(f.calls, req.User)
	for key, payload := range f.payloads {
		if strings.Contains(req.User, key) {
			return payload
		}
	}
	return map[string]any{}
}

func TestDedupFold(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{
			name:     "mixed casing keeps first-seen casing and order",
			input:    []string{"Data Analyst", "data analyst", "Welder", "WELDER", "Nurse"},
			expected: []string{"Data Analyst", "Welder", "Nurse"},
		},
		{
			name:     "trims before comparing",
			input:    []string{" Welder ", "welder"},
			expected: []string{"Welder"},
		},
		{
			name:     "drops blanks",
			input:    []string{"", "  ", "Nurse"},
			expected: []string{"Nurse"},
		},
		{
			name:     "empty input",
			input:    nil,
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DedupFold(tt.input))
		})
	}
}

func TestReadNamesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "names.txt")
	content := "# trades\nWelder\n\n  Electrician  \nwelder\n# end\nNurse\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	names, err := ReadNamesFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Welder", "Electrician", "Nurse"}, names)
}

func TestReadNamesFile_Missing(t *testing.T) {
	_, err := ReadNamesFile(filepath.Join(t.TempDir(), "absent.txt"))
	assert.Error(t, err)
}

func TestNamesFromPayload(t *testing.T) {
	tests := []struct {
		name     string
		payload  map[string]any
		expected []string
	}{
		{
			name:     "strings kept, non-strings filtered",
			payload:  map[string]any{"names": []any{"Welder", 42, "Nurse", nil}},
			expected: []string{"Welder", "Nurse"},
		},
		{
			name:     "missing names field",
			payload:  map[string]any{"sourceNote": "n/a"},
			expected: nil,
		},
		{
			name:     "wrong-shaped names field",
			payload:  map[string]any{"names": "Welder"},
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NamesFromPayload(tt.payload))
		})
	}
}

func TestCollectNames_MergesCategoriesSequentially(t *testing.T) {
	fetcher := &mapFetcher{payloads: map[string]map[string]any{
		"TECHNOLOGY": {"names": []any{"Data Analyst", "ML Engineer"}},
		"MEDICINE":   {"names": []any{"Nurse", "data analyst"}},
	}}

	names := CollectNames(context.Background(), fetcher, "Kazakhstan", []string{"TECHNOLOGY", "MEDICINE"}, 0)

	assert.Equal(t, []string{"Data Analyst", "ML Engineer", "Nurse"}, names)
	require.Len(t, fetcher.calls, 2)
	assert.Contains(t, fetcher.calls[0], "TECHNOLOGY")
	assert.Contains(t, fetcher.calls[1], "MEDICINE")
}

func TestCollectNames_EmptyDiscoveryFallsBackToSeeds(t *testing.T) {
	fetcher := &mapFetcher{payloads: map[string]map[string]any{}}

	names := CollectNames(context.Background(), fetcher, "Global", []string{"TECHNOLOGY"}, 0)

	assert.Equal(t, SeedNames([]string{"TECHNOLOGY"}), names)
	assert.NotEmpty(t, names)
}

func TestSeedNames(t *testing.T) {
	all := SeedNames(nil)
	assert.NotEmpty(t, all)

	tech := SeedNames([]string{"TECHNOLOGY"})
	assert.Contains(t, tech, "Инженер DevOps")

	// a category without its own seed still yields a usable name set
	unseeded := SeedNames([]string{"LAW"})
	assert.Equal(t, all, unseeded)

	// seeds themselves carry no duplicates
	assert.Equal(t, DedupFold(all), all)
}

func TestCollectNames_NeverReturnsEmpty(t *testing.T) {
	fetcher := &mapFetcher{payloads: map[string]map[string]any{}}

	for _, categories := range [][]string{nil, {"LAW"}, {"TECHNOLOGY"}, {"LAW", "GOVERNMENT"}} {
		names := CollectNames(context.Background(), fetcher, "Global", categories, 0)
		assert.NotEmpty(t, names, "categories=%v", categories)
	}
}
