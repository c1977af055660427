package appwrite

import (
	"context"
	"net/url"
	"restate-gateway/internal/core/port"
)

// Avatars реализует port.AvatarsPort. Аватар генерирует бэкенд по ссылке,
// поэтому метод только строит URL.
type Avatars struct {
	client *Client
}

func NewAvatars(client *Client) *Avatars {
	return &Avatars{client: client}
}

var _ port.AvatarsPort = (*Avatars)(nil)

func (a *Avatars) GetInitials(_ context.Context, name string) (string, error) {
	params := url.Values{}
	params.Set("project", a.client.projectID)
	if name != "" {
		params.Set("name", name)
	}
	return a.client.buildURL("/avatars/initials", params), nil
}
