package llm

import (
	"fmt"

	"github.com/jonathan/profession-catalog/internal/prompts"
	"github.com/jonathan/profession-catalog/internal/schemas"
)

// promptFile is the embedded template file holding all catalog prompts.
const promptFile = "professions.json"

// allCategoriesLabel is used in Stage A prompts when no category filter applies.
const allCategoriesLabel = "ВСЕ КАТЕГОРИИ"

// NamesRequest builds the Stage A request: a list of profession names for a
// locale, optionally restricted to one category and capped at maxItems.
func NamesRequest(locale, category string, maxItems int) Request {
	if category == "" {
		category = allCategoriesLabel
	}
	return Request{
		System: prompts.MustGet(promptFile, "names-system"),
		User: prompts.Format(prompts.MustGet(promptFile, "names-user"), map[string]string{
			"Locale":   locale,
			"Category": category,
			"Cap":      capLine(maxItems),
		}),
		Schema: schemas.Names,
	}
}

// DetailRequest builds the Stage B request: full attributes for one profession.
func DetailRequest(locale, name string) Request {
	return Request{
		System: prompts.MustGet(promptFile, "detail-system"),
		User: prompts.Format(prompts.MustGet(promptFile, "detail-user"), map[string]string{
			"Locale": locale,
			"Name":   name,
		}),
		Schema: schemas.Detail,
	}
}

// ListRequest builds the single-call request: every profession with full
// attributes in one response.
func ListRequest(locale, category string, maxItems int) Request {
	if category == "" {
		category = allCategoriesLabel
	}
	return Request{
		System: prompts.MustGet(promptFile, "list-system"),
		User: prompts.Format(prompts.MustGet(promptFile, "list-user"), map[string]string{
			"Locale":   locale,
			"Category": category,
			"Cap":      capLine(maxItems),
		}),
		Schema: schemas.List,
	}
}

func capLine(maxItems int) string {
	if maxItems > 0 {
		return fmt.Sprintf("Нужно ~%d названий", maxItems)
	}
	return "Нужно МАКСИМАЛЬНО ПОЛНЫЙ список (100+ если возможно)"
}
