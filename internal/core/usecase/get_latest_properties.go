package usecase

import (
	"context"
	"restate-gateway/internal/contextkeys"
	"restate-gateway/internal/core/domain"
	"restate-gateway/internal/core/port"
)

const latestPropertiesLimit = 5

type GetLatestPropertiesUseCase struct {
	documents port.PropertyDocumentsPort
}

func NewGetLatestPropertiesUseCase(documents port.PropertyDocumentsPort) *GetLatestPropertiesUseCase {
	return &GetLatestPropertiesUseCase{documents: documents}
}

// latestPropertiesQueries - самые ранние по времени создания объекты, не более пяти.
func latestPropertiesQueries() []domain.Query {
	return []domain.Query{
		domain.OrderAsc(domain.AttributeCreatedAt),
		domain.Limit(latestPropertiesLimit),
	}
}

func (uc *GetLatestPropertiesUseCase) Execute(ctx context.Context) []domain.Property {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "GetLatestProperties",
	})

	return resolveWithFallback(ucLogger, "Error fetching latest properties",
		func() ([]domain.Property, error) {
			return uc.fetch(ctx, ucLogger)
		},
		fallbackLatest,
	)
}

func (uc *GetLatestPropertiesUseCase) fetch(ctx context.Context, logger port.LoggerPort) ([]domain.Property, error) {
	properties, err := uc.documents.ListProperties(ctx, latestPropertiesQueries())
	if err != nil {
		return nil, err
	}
	logger.Debug("Latest properties fetched", port.Fields{"count": len(properties)})
	return properties, nil
}
