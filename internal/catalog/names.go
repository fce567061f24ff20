// Package catalog implements the two-stage collection pipeline: profession
// name discovery, bounded per-name enrichment, and normalization of model
// payloads into validated records.
package catalog

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/jonathan/profession-catalog/internal/llm"
)

// Fetcher is the ladder-shaped dependency: it returns a parsed mapping or an
// empty map, never an error.
type Fetcher interface {
	Fetch(ctx context.Context, req llm.Request) map[string]any
}

// DedupFold removes case-insensitive duplicates, keeping the first-seen
// casing and order. Blank entries are dropped after trimming.
func DedupFold(items []string) []string {
	out := make([]string, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for _, it := range items {
		t := strings.TrimSpace(it)
		if t == "" {
			continue
		}
		k := strings.ToLower(t)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, t)
	}
	return out
}

// ReadNamesFile loads a newline-delimited profession name list. Blank lines
// and lines starting with '#' are ignored; the rest are trimmed and deduped
// case-insensitively.
func ReadNamesFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read names file: %w", err)
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read names file: %w", err)
	}
	return DedupFold(lines), nil
}

// CollectNames runs Stage A: one names-mode ladder call per category (or a
// single all-categories call), merged and deduped case-insensitively. When
// discovery yields nothing, the built-in seed list keeps the pipeline useful.
func CollectNames(ctx context.Context, fetcher Fetcher, locale string, categories []string, maxItems int) []string {
	requests := []string{""}
	if len(categories) > 0 {
		requests = categories
	}

	var merged []string
	for _, category := range requests {
		payload := fetcher.Fetch(ctx, llm.NamesRequest(locale, category, maxItems))
		merged = append(merged, NamesFromPayload(payload)...)
	}

	merged = DedupFold(merged)
	if len(merged) == 0 {
		return SeedNames(categories)
	}
	return merged
}

// NamesFromPayload extracts the 'names' entries from a Stage A payload,
// keeping only string values. Absent or wrong-shaped fields yield nil.
func NamesFromPayload(payload map[string]any) []string {
	raw, ok := payload["names"].([]any)
	if !ok {
		return nil
	}
	names := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			names = append(names, s)
		}
	}
	return DedupFold(names)
}
