package usecase

import (
	"restate-gateway/internal/core/domain"
	"restate-gateway/internal/core/port"
)

const latestFallbackSize = 2

// resolveWithFallback - единая точка, где ошибка бэкенда маскируется резервными
// данными. Ошибка логируется один раз и дальше не передается.
func resolveWithFallback[T any](logger port.LoggerPort, msg string, fetch func() (T, error), fallback func() T) T {
	result, err := fetch()
	if err != nil {
		logger.Error(msg, err, port.Fields{"fallback": true})
		return fallback()
	}
	return result
}

// fallbackLatest - первые два объекта резервного набора.
func fallbackLatest() []domain.Property {
	return domain.MockProperties()[:latestFallbackSize]
}

// fallbackProperties повторяет семантику реального запроса на резервном наборе:
// фильтр по типу, затем ограничение количества.
func fallbackProperties(spec domain.QuerySpec) []domain.Property {
	all := domain.MockProperties()

	filtered := all
	if spec.HasTypeFilter() {
		filtered = make([]domain.Property, 0, len(all))
		for _, p := range all {
			if string(p.Type) == spec.Filter {
				filtered = append(filtered, p)
			}
		}
	}

	if spec.HasLimit() && len(filtered) > spec.Limit {
		filtered = filtered[:spec.Limit]
	}
	return filtered
}

func fallbackPropertyByID(id string) *domain.Property {
	for _, p := range domain.MockProperties() {
		if p.ID == id {
			found := p
			return &found
		}
	}
	return nil
}
