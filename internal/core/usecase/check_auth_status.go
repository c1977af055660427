package usecase

import (
	"context"
	"restate-gateway/internal/contextkeys"
	"restate-gateway/internal/core/port"
)

type CheckAuthStatusUseCase struct {
	account port.AccountPort
}

func NewCheckAuthStatusUseCase(account port.AccountPort) *CheckAuthStatusUseCase {
	return &CheckAuthStatusUseCase{account: account}
}

// Execute проверяет, есть ли активная сессия. Любая ошибка, включая
// "не авторизован", означает false.
func (uc *CheckAuthStatusUseCase) Execute(ctx context.Context) bool {
	if _, err := uc.account.Get(ctx); err != nil {
		contextkeys.LoggerFromContext(ctx).Debug("No active session", port.Fields{
			"use_case": "CheckAuthStatus",
			"reason":   err.Error(),
		})
		return false
	}
	return true
}
