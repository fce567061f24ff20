package catalog

import "github.com/jonathan/profession-catalog/internal/types"

// seedNames is the built-in fallback used when name discovery comes back
// empty for every category.
var seedNames = map[types.Category][]string{
	types.CategoryTechnology: {
		"Разработчик программного обеспечения", "Инженер по данным", "Инженер DevOps",
		"Специалист по кибербезопасности", "Аналитик данных", "ML-инженер", "Системный администратор",
		"Тестировщик (QA-инженер)", "Архитектор программного обеспечения", "Продакт-менеджер",
	},
	types.CategoryMedicine: {
		"Врач-терапевт", "Хирург", "Стоматолог", "Медсестра", "Фармацевт",
		"Радиолог", "Анестезиолог", "Педиатр", "Врач общей практики", "Лаборант",
	},
	types.CategoryBusiness: {
		"Финансовый аналитик", "Маркетолог", "Бизнес-аналитик", "Менеджер по продажам",
		"HR-менеджер", "Логист", "Закупщик", "Операционный менеджер", "Аудитор", "Бухгалтер",
	},
}

// seedOrder keeps the global seed deterministic.
var seedOrder = []types.Category{types.CategoryTechnology, types.CategoryMedicine, types.CategoryBusiness}

// SeedNames returns the fallback name list for the given categories, or the
// full seed when no categories are requested. When none of the requested
// categories carries a seed, the full seed is returned instead: the pipeline
// must never proceed with an empty name set.
func SeedNames(categories []string) []string {
	if len(categories) > 0 {
		var chosen []string
		for _, c := range categories {
			chosen = append(chosen, seedNames[types.Category(c)]...)
		}
		if deduped := DedupFold(chosen); len(deduped) > 0 {
			return deduped
		}
	}

	var seed []string
	for _, c := range seedOrder {
		seed = append(seed, seedNames[c]...)
	}
	return DedupFold(seed)
}
