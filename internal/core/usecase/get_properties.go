package usecase

import (
	"context"
	"restate-gateway/internal/contextkeys"
	"restate-gateway/internal/core/domain"
	"restate-gateway/internal/core/port"
)

type GetPropertiesUseCase struct {
	documents port.PropertyDocumentsPort
}

func NewGetPropertiesUseCase(documents port.PropertyDocumentsPort) *GetPropertiesUseCase {
	return &GetPropertiesUseCase{documents: documents}
}

// buildPropertiesQueries собирает запрос: новые объекты первыми, фильтр по типу
// (кроме "All") и ограничение количества.
//
// spec.Query не применяется: для name/address/type нет полнотекстовых
// индексов. Когда они появятся, сюда добавится
// domain.Or(Search("name", q), Search("address", q), Search("type", q)).
func buildPropertiesQueries(spec domain.QuerySpec) []domain.Query {
	queries := []domain.Query{domain.OrderDesc(domain.AttributeCreatedAt)}

	if spec.HasTypeFilter() {
		queries = append(queries, domain.Equal("type", spec.Filter))
	}

	if spec.HasLimit() {
		queries = append(queries, domain.Limit(spec.Limit))
	}

	return queries
}

func (uc *GetPropertiesUseCase) Execute(ctx context.Context, spec domain.QuerySpec) []domain.Property {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "GetProperties",
		"filter":   spec.Filter,
		"limit":    spec.Limit,
	})

	if spec.Query != "" {
		ucLogger.Debug("Search query is not applied: fulltext indexes are not configured", port.Fields{"query": spec.Query})
	}

	return resolveWithFallback(ucLogger, "Error fetching properties",
		func() ([]domain.Property, error) {
			return uc.documents.ListProperties(ctx, buildPropertiesQueries(spec))
		},
		func() []domain.Property {
			return fallbackProperties(spec)
		},
	)
}
