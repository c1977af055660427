package usecases_port

import (
	"context"
	"restate-gateway/internal/core/domain"
)

type LoginUseCase interface {
	Execute(ctx context.Context) bool
}

type LogoutUseCase interface {
	Execute(ctx context.Context) bool
}

type CheckAuthStatusUseCase interface {
	Execute(ctx context.Context) bool
}

type GetCurrentUserUseCase interface {
	Execute(ctx context.Context) *domain.UserProfile
}
