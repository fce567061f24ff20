package catalog

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/profession-catalog/internal/types"
)

// unknownName labels rejection entries for payloads carrying no name at all.
const unknownName = "unknown"

// DetailRecord turns a Stage B payload into a record ready for validation,
// applying the request-context defaults: the originally requested name when
// the payload omits one, and the safe default category. Self-healing
// coercions (salary swap, skills cleaning) are applied; constraint checks
// are the caller's job via Validate.
func DetailRecord(requestedName string, payload map[string]any) *types.ProfessionRecord {
	rec := RecordFromPayload(payload)
	if rec.Name == "" {
		rec.Name = requestedName
	}
	if rec.Category == "" {
		rec.Category = types.DefaultCategory
	}
	rec.Normalize()
	return rec
}

// RecordFromPayload builds a record from one detail-shaped mapping without
// any request-context defaults. Used by the single-call entry point, where
// there is no per-name request to fall back on.
func RecordFromPayload(payload map[string]any) *types.ProfessionRecord {
	rec := &types.ProfessionRecord{
		Name:        stringField(payload, "name"),
		Category:    types.Category(stringField(payload, "category")),
		Description: optionalString(payload, "description"),
		StartSalary: optionalNumber(payload, "startSalary"),
		EndSalary:   optionalNumber(payload, "endSalary"),
		Skills:      stringList(payload["skills"]),
	}
	if p := stringField(payload, "popularity"); p != "" {
		pop := types.Popularity(p)
		rec.Popularity = &pop
	}
	return rec
}

// ListRecords splits a single-call payload into accepted records and
// rejection entries. Coercions are applied per record, then each record is
// validated independently.
func ListRecords(payload map[string]any) ([]types.ProfessionRecord, []types.RejectionEntry) {
	raw, _ := payload["professions"].([]any)

	var accepted []types.ProfessionRecord
	var rejected []types.RejectionEntry
	for _, v := range raw {
		item, ok := v.(map[string]any)
		if !ok {
			rejected = append(rejected, types.RejectionEntry{
				Profession: unknownName,
				Reason:     types.ValidationReason("not_an_object"),
			})
			continue
		}
		rec := RecordFromPayload(item)
		rec.Normalize()
		if err := rec.Validate(); err != nil {
			name := rec.Name
			if name == "" {
				name = unknownName
			}
			rejected = append(rejected, types.RejectionEntry{
				Profession: name,
				Reason:     classifyValidation(err),
			})
			continue
		}
		accepted = append(accepted, *rec)
	}
	return accepted, rejected
}

// classifyValidation maps a validation failure to a coarse reason tag,
// naming the first offending field when known.
func classifyValidation(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return types.ValidationReason(strings.ToLower(verrs[0].Field()))
	}
	return types.ValidationReason("invalid")
}

func stringField(payload map[string]any, key string) string {
	s, _ := payload[key].(string)
	return s
}

func optionalString(payload map[string]any, key string) *string {
	if s, ok := payload[key].(string); ok {
		return &s
	}
	return nil
}

func optionalNumber(payload map[string]any, key string) *float64 {
	switch n := payload[key].(type) {
	case float64:
		return &n
	case int:
		f := float64(n)
		return &f
	default:
		return nil
	}
}

func stringList(v any) []string {
	raw, ok := v.([]any)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
