package usecase

import (
	"context"
	"restate-gateway/internal/core/domain"
	"restate-gateway/internal/core/port"
	"restate-gateway/internal/core/port/usecases_port"
)

var _ usecases_port.PropertyDataGateway = (*PropertyDataGateway)(nil)

// Backend - набор клиентов бэкенда, создаваемый один раз при старте процесса
// и разделяемый всеми операциями шлюза.
type Backend struct {
	Account   port.AccountPort
	Documents port.PropertyDocumentsPort
	Avatars   port.AvatarsPort
	Redirect  port.RedirectURIPort
	Browser   port.AuthBrowserPort
}

// PropertyDataGateway собирает все use case'ы клиента за одним фасадом.
// Состояния между вызовами нет, поэтому фасад безопасен для конкурентного использования.
type PropertyDataGateway struct {
	login           *LoginUseCase
	logout          *LogoutUseCase
	checkAuthStatus *CheckAuthStatusUseCase
	currentUser     *GetCurrentUserUseCase
	latest          *GetLatestPropertiesUseCase
	properties      *GetPropertiesUseCase
	propertyByID    *GetPropertyByIDUseCase
}

func NewPropertyDataGateway(backend Backend) *PropertyDataGateway {
	return &PropertyDataGateway{
		login:           NewLoginUseCase(backend.Account, backend.Redirect, backend.Browser),
		logout:          NewLogoutUseCase(backend.Account),
		checkAuthStatus: NewCheckAuthStatusUseCase(backend.Account),
		currentUser:     NewGetCurrentUserUseCase(backend.Account, backend.Avatars),
		latest:          NewGetLatestPropertiesUseCase(backend.Documents),
		properties:      NewGetPropertiesUseCase(backend.Documents),
		propertyByID:    NewGetPropertyByIDUseCase(backend.Documents),
	}
}

func (g *PropertyDataGateway) Login(ctx context.Context) bool {
	return g.login.Execute(ctx)
}

func (g *PropertyDataGateway) Logout(ctx context.Context) bool {
	return g.logout.Execute(ctx)
}

func (g *PropertyDataGateway) CheckAuthStatus(ctx context.Context) bool {
	return g.checkAuthStatus.Execute(ctx)
}

func (g *PropertyDataGateway) GetCurrentUser(ctx context.Context) *domain.UserProfile {
	return g.currentUser.Execute(ctx)
}

func (g *PropertyDataGateway) GetLatestProperties(ctx context.Context) []domain.Property {
	return g.latest.Execute(ctx)
}

func (g *PropertyDataGateway) GetProperties(ctx context.Context, spec domain.QuerySpec) []domain.Property {
	return g.properties.Execute(ctx, spec)
}

func (g *PropertyDataGateway) GetPropertyByID(ctx context.Context, id string) *domain.Property {
	return g.propertyByID.Execute(ctx, id)
}
