package appwrite

import "encoding/json"

// errorResponse - тело ошибки бэкенда.
type errorResponse struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
	Type    string `json:"type"`
	Version string `json:"version"`
}

type createSessionRequest struct {
	UserID string `json:"userId"`
	Secret string `json:"secret"`
}

type sessionResponse struct {
	ID       string `json:"$id"`
	UserID   string `json:"userId"`
	Provider string `json:"provider"`
	Expire   string `json:"expire"`
	Current  bool   `json:"current"`
	// Заполняется только для серверных ключей; клиент получает секрет в куке.
	Secret string `json:"secret"`
}

// documentListResponse - документы оставляем сырыми, чтобы проверить каждый по схеме.
type documentListResponse struct {
	Total     int               `json:"total"`
	Documents []json.RawMessage `json:"documents"`
}

// propertyDocument - документ коллекции properties.
// Эта структура должна совпадать с атрибутами коллекции на бэкенде.
type propertyDocument struct {
	ID         string   `json:"$id"`
	CreatedAt  string   `json:"$createdAt"`
	Name       string   `json:"name"`
	Address    string   `json:"address"`
	Price      float64  `json:"price"`
	Image      string   `json:"image"`
	Bedrooms   int      `json:"bedrooms"`
	Bathrooms  int      `json:"bathrooms"`
	Area       float64  `json:"area"`
	Type       string   `json:"type"`
	Rating     float64  `json:"rating"`
	Facilities []string `json:"facilities"`
}
