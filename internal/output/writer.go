// Package output writes the collected catalog artifacts to disk: the
// accepted professions JSON and the preflight rejection report.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/profession-catalog/internal/types"
)

// ProfessionsFilePattern names the accepted-records artifact.
const ProfessionsFilePattern = "professions-%s.json"

// PreflightReportFile names the rejection-report artifact.
const PreflightReportFile = "upload_preflight_report.json"

// LocaleSlug normalizes a locale string into a file-name slug.
func LocaleSlug(locale string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(locale)), " ", "-")
}

// WriteProfessions writes the accepted records for a locale and returns the
// file path. The output is indented UTF-8 with non-ASCII kept literal.
func WriteProfessions(outDir, localeSlug string, records []types.ProfessionRecord) (string, error) {
	if records == nil {
		records = []types.ProfessionRecord{}
	}
	path := filepath.Join(outDir, fmt.Sprintf(ProfessionsFilePattern, localeSlug))
	if err := writeJSON(path, records); err != nil {
		return "", err
	}
	return path, nil
}

// WritePreflightReport writes the rejection entries and returns the file path.
func WritePreflightReport(outDir string, entries []types.RejectionEntry) (string, error) {
	if entries == nil {
		entries = []types.RejectionEntry{}
	}
	path := filepath.Join(outDir, PreflightReportFile)
	if err := writeJSON(path, entries); err != nil {
		return "", err
	}
	return path, nil
}

// writeJSON encodes v human-readably. HTML escaping is off so that text
// like "C&B" or "<QA>" survives verbatim.
func writeJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
