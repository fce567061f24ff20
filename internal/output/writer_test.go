package output

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/profession-catalog/internal/types"
)

func TestLocaleSlug(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Global", "global"},
		{"  Kazakhstan ", "kazakhstan"},
		{"United Arab Emirates", "united-arab-emirates"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, LocaleSlug(tt.input))
	}
}

func TestWriteProfessions(t *testing.T) {
	dir := t.TempDir()
	desc := "Сварочные работы на объектах"
	records := []types.ProfessionRecord{
		{
			Name:        "Сварщик",
			Category:    types.CategoryEngineering,
			Description: &desc,
			Skills:      []string{"Сварка", "ТБ & нормы"},
		},
	}

	path, err := WriteProfessions(dir, "kazakhstan", records)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "professions-kazakhstan.json"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	// Non-ASCII stays literal and HTML escaping is off.
	assert.Contains(t, string(data), "Сварщик")
	assert.Contains(t, string(data), "ТБ & нормы")
	assert.NotContains(t, string(data), `\u0026`)
	assert.NotContains(t, string(data), `\u0421`)
	assert.True(t, strings.Contains(string(data), "\n  "), "output should be indented")

	var back []types.ProfessionRecord
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, records, back)
}

func TestWriteProfessions_EmptyIsArray(t *testing.T) {
	dir := t.TempDir()
	path, err := WriteProfessions(dir, "global", nil)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]", strings.TrimSpace(string(data)))
}

func TestWritePreflightReport(t *testing.T) {
	dir := t.TempDir()
	entries := []types.RejectionEntry{
		{Profession: "Маг", Reason: "validation_error:category"},
	}

	path, err := WritePreflightReport(dir, entries)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, PreflightReportFile), path)

	var back []types.RejectionEntry
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, entries, back)
}

func TestWriteProfessions_CreatesOutputDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	_, err := WriteProfessions(dir, "global", nil)
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, "professions-global.json"))
	assert.NoError(t, err)
}
