package port

import "context"

// AvatarsPort генерирует аватары на стороне бэкенда.
type AvatarsPort interface {
	// GetInitials возвращает ссылку на аватар с инициалами из имени.
	GetInitials(ctx context.Context, name string) (string, error)
}
