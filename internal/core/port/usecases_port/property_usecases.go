package usecases_port

import (
	"context"
	"restate-gateway/internal/core/domain"
)

type GetLatestPropertiesUseCase interface {
	Execute(ctx context.Context) []domain.Property
}

type GetPropertiesUseCase interface {
	Execute(ctx context.Context, spec domain.QuerySpec) []domain.Property
}

type GetPropertyByIDUseCase interface {
	Execute(ctx context.Context, id string) *domain.Property
}
