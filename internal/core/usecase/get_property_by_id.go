package usecase

import (
	"context"
	"restate-gateway/internal/contextkeys"
	"restate-gateway/internal/core/domain"
	"restate-gateway/internal/core/port"
)

type GetPropertyByIDUseCase struct {
	documents port.PropertyDocumentsPort
}

func NewGetPropertyByIDUseCase(documents port.PropertyDocumentsPort) *GetPropertyByIDUseCase {
	return &GetPropertyByIDUseCase{documents: documents}
}

// Execute возвращает объект по идентификатору. При ошибке бэкенда ищет его
// в резервном наборе; nil, если такого идентификатора там нет.
func (uc *GetPropertyByIDUseCase) Execute(ctx context.Context, id string) *domain.Property {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "GetPropertyByID",
		"id":       id,
	})

	return resolveWithFallback(ucLogger, "Error fetching property by id",
		func() (*domain.Property, error) {
			return uc.documents.GetProperty(ctx, id)
		},
		func() *domain.Property {
			return fallbackPropertyByID(id)
		},
	)
}
