package usecase

import (
	"context"
	"restate-gateway/internal/contextkeys"
	"restate-gateway/internal/core/domain"
	"restate-gateway/internal/core/port"
)

type LogoutUseCase struct {
	account port.AccountPort
}

func NewLogoutUseCase(account port.AccountPort) *LogoutUseCase {
	return &LogoutUseCase{account: account}
}

func (uc *LogoutUseCase) Execute(ctx context.Context) bool {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{"use_case": "Logout"})

	if err := uc.account.DeleteSession(ctx, domain.CurrentSession); err != nil {
		ucLogger.Error("Failed to delete current session", err, nil)
		return false
	}

	ucLogger.Info("Current session deleted", nil)
	return true
}
