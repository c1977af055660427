package rest

import "restate-gateway/internal/core/domain"

type ErrorResponse struct {
	Error string `json:"error"`
}

type PropertiesResponse struct {
	Data  []domain.Property `json:"data"`
	Count int               `json:"count"`
}

type AuthStatusResponse struct {
	Authenticated bool `json:"authenticated"`
}

type ActionResponse struct {
	Success bool `json:"success"`
}

func newPropertiesResponse(props []domain.Property) PropertiesResponse {
	if props == nil {
		props = []domain.Property{}
	}
	return PropertiesResponse{Data: props, Count: len(props)}
}
