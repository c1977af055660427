package port

import (
	"context"
	"restate-gateway/internal/core/domain"
)

// PropertyDocumentsPort - контракт для чтения коллекции объектов недвижимости.
type PropertyDocumentsPort interface {
	ListProperties(ctx context.Context, queries []domain.Query) ([]domain.Property, error)
	GetProperty(ctx context.Context, id string) (*domain.Property, error)
}
