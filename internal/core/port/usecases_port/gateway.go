package usecases_port

import (
	"context"
	"restate-gateway/internal/core/domain"
)

// PropertyDataGateway - единый фасад над всеми операциями клиента.
// Ни одна операция не возвращает ошибку: сбои превращаются в false/nil
// или в резервные данные.
type PropertyDataGateway interface {
	Login(ctx context.Context) bool
	Logout(ctx context.Context) bool
	CheckAuthStatus(ctx context.Context) bool
	GetCurrentUser(ctx context.Context) *domain.UserProfile
	GetLatestProperties(ctx context.Context) []domain.Property
	GetProperties(ctx context.Context, spec domain.QuerySpec) []domain.Property
	GetPropertyByID(ctx context.Context, id string) *domain.Property
}
