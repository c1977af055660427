package rest

import (
	"net/http"
	"restate-gateway/internal/contextkeys"
	"restate-gateway/internal/core/domain"
	"restate-gateway/internal/core/port"
	"restate-gateway/internal/core/port/usecases_port"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// PropertyHandlers отдает операции шлюза по HTTP. Шлюз не возвращает ошибок,
// поэтому обработчики отвечают 200, а nil превращают в 404/401.
type PropertyHandlers struct {
	gateway usecases_port.PropertyDataGateway
}

func NewPropertyHandlers(gateway usecases_port.PropertyDataGateway) *PropertyHandlers {
	return &PropertyHandlers{gateway: gateway}
}

// ListProperties - GET /api/v1/properties?filter=&query=&limit=
func (h *PropertyHandlers) ListProperties(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "ListProperties"})
	q := r.URL.Query()

	spec := domain.QuerySpec{
		Filter: domain.NormalizeFilter(q.Get("filter")),
		Query:  q.Get("query"),
	}
	if limitStr := q.Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 0 {
			logger.Warn("Invalid limit parameter", port.Fields{"limit": limitStr})
			WriteJSONError(w, http.StatusBadRequest, "Query parameter 'limit' must be a non-negative integer")
			return
		}
		spec.Limit = limit
	}

	RespondWithJSON(w, http.StatusOK, newPropertiesResponse(h.gateway.GetProperties(r.Context(), spec)))
}

// LatestProperties - GET /api/v1/properties/latest
func (h *PropertyHandlers) LatestProperties(w http.ResponseWriter, r *http.Request) {
	RespondWithJSON(w, http.StatusOK, newPropertiesResponse(h.gateway.GetLatestProperties(r.Context())))
}

// GetProperty - GET /api/v1/properties/{propertyID}
func (h *PropertyHandlers) GetProperty(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "propertyID")
	if id == "" {
		WriteJSONError(w, http.StatusBadRequest, "Property ID is required")
		return
	}

	property := h.gateway.GetPropertyByID(r.Context(), id)
	if property == nil {
		WriteJSONError(w, http.StatusNotFound, "Property not found")
		return
	}
	RespondWithJSON(w, http.StatusOK, property)
}

func (h *PropertyHandlers) AuthStatus(w http.ResponseWriter, r *http.Request) {
	RespondWithJSON(w, http.StatusOK, AuthStatusResponse{Authenticated: h.gateway.CheckAuthStatus(r.Context())})
}

func (h *PropertyHandlers) CurrentUser(w http.ResponseWriter, r *http.Request) {
	user := h.gateway.GetCurrentUser(r.Context())
	if user == nil {
		WriteJSONError(w, http.StatusUnauthorized, "User is not authenticated")
		return
	}
	RespondWithJSON(w, http.StatusOK, user)
}

// Login запускает браузерную авторизацию на машине, где работает сервер.
func (h *PropertyHandlers) Login(w http.ResponseWriter, r *http.Request) {
	RespondWithJSON(w, http.StatusOK, ActionResponse{Success: h.gateway.Login(r.Context())})
}

func (h *PropertyHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	RespondWithJSON(w, http.StatusOK, ActionResponse{Success: h.gateway.Logout(r.Context())})
}
