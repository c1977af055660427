package domain

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NormalizeFilter приводит значение фильтра, введенное пользователем, к виду,
// в котором тип хранится в коллекции: "villa" -> "Villa", "all" -> "All".
// Незнакомые значения только приводятся к Title Case: набор типов открытый.
func NormalizeFilter(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	fold := cases.Fold()
	folded := fold.String(raw)
	if folded == fold.String(FilterAll) {
		return FilterAll
	}
	for _, t := range PropertyTypes() {
		if folded == fold.String(string(t)) {
			return string(t)
		}
	}
	return cases.Title(language.English).String(raw)
}
