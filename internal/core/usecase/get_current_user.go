package usecase

import (
	"context"
	"restate-gateway/internal/contextkeys"
	"restate-gateway/internal/core/domain"
	"restate-gateway/internal/core/port"
)

type GetCurrentUserUseCase struct {
	account port.AccountPort
	avatars port.AvatarsPort
}

func NewGetCurrentUserUseCase(account port.AccountPort, avatars port.AvatarsPort) *GetCurrentUserUseCase {
	return &GetCurrentUserUseCase{account: account, avatars: avatars}
}

// Execute возвращает профиль текущего пользователя с аватаром из инициалов,
// либо nil, если пользователя нет или запрос не удался.
func (uc *GetCurrentUserUseCase) Execute(ctx context.Context) *domain.UserProfile {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{"use_case": "GetCurrentUser"})

	account, err := uc.account.Get(ctx)
	if err != nil {
		if domain.IsUnauthenticated(err) {
			ucLogger.Info("User is not authenticated", nil)
			return nil
		}
		ucLogger.Error("Failed to fetch current account", err, nil)
		return nil
	}
	if account == nil || account.ID == "" {
		return nil
	}

	avatar, err := uc.avatars.GetInitials(ctx, account.Name)
	if err != nil {
		ucLogger.Error("Failed to generate initials avatar", err, port.Fields{"user_id": account.ID})
		return nil
	}

	return &domain.UserProfile{Account: *account, Avatar: avatar}
}
