package appwrite

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"restate-gateway/internal/contextkeys"
	"restate-gateway/internal/contracts"
	"restate-gateway/internal/core/domain"
	"restate-gateway/internal/core/port"
)

// Collections - идентификаторы базы, коллекций и бакета проекта.
type Collections struct {
	DatabaseID             string
	PropertiesCollectionID string
	GalleriesCollectionID  string
	ReviewsCollectionID    string
	AgentsCollectionID     string
	BucketID               string
}

// Properties реализует port.PropertyDocumentsPort для коллекции properties.
type Properties struct {
	client      *Client
	collections Collections
}

func NewProperties(client *Client, collections Collections) *Properties {
	return &Properties{client: client, collections: collections}
}

var _ port.PropertyDocumentsPort = (*Properties)(nil)

func (p *Properties) documentsPath() string {
	return "/databases/" + url.PathEscape(p.collections.DatabaseID) +
		"/collections/" + url.PathEscape(p.collections.PropertiesCollectionID) + "/documents"
}

// encodeQueries кладет каждое условие в параметр queries[i] в JSON-виде.
func encodeQueries(queries []domain.Query) (url.Values, error) {
	params := url.Values{}
	for i, q := range queries {
		raw, err := json.Marshal(q)
		if err != nil {
			return nil, fmt.Errorf("failed to encode query %d: %w", i, err)
		}
		params.Set(fmt.Sprintf("queries[%d]", i), string(raw))
	}
	return params, nil
}

func (p *Properties) ListProperties(ctx context.Context, queries []domain.Query) ([]domain.Property, error) {
	const op = "list documents"
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component":     "AppwriteProperties",
		"method":        "ListProperties",
		"query_clauses": len(queries),
	})

	params, err := encodeQueries(queries)
	if err != nil {
		return nil, &domain.BackendError{Op: op, Err: err}
	}

	var list documentListResponse
	if err := p.client.getJSON(ctx, op, p.documentsPath(), params, &list); err != nil {
		return nil, err
	}

	result := make([]domain.Property, 0, len(list.Documents))
	for _, raw := range list.Documents {
		property, err := p.decodeProperty(op, raw)
		if err != nil {
			return nil, err
		}
		result = append(result, property)
	}

	logger.Debug("Documents received", port.Fields{"total": list.Total, "returned": len(result)})
	return result, nil
}

func (p *Properties) GetProperty(ctx context.Context, id string) (*domain.Property, error) {
	const op = "get document"

	var raw json.RawMessage
	if err := p.client.getJSON(ctx, op, p.documentsPath()+"/"+url.PathEscape(id), nil, &raw); err != nil {
		return nil, err
	}

	property, err := p.decodeProperty(op, raw)
	if err != nil {
		return nil, err
	}
	return &property, nil
}

// decodeProperty проверяет документ по схеме и переводит его в доменную модель.
func (p *Properties) decodeProperty(op string, raw json.RawMessage) (domain.Property, error) {
	if err := contracts.Validate(contracts.PropertyDocumentV1, raw); err != nil {
		return domain.Property{}, &domain.BackendError{Op: op, Err: fmt.Errorf("%w: %w", domain.ErrInvalidDocument, err)}
	}

	var doc propertyDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return domain.Property{}, &domain.BackendError{Op: op, Err: fmt.Errorf("failed to decode document: %w", err)}
	}
	return toDomainProperty(doc, p.imageResolver()), nil
}

// imageResolver превращает идентификатор файла в ссылку на бакет.
func (p *Properties) imageResolver() func(string) string {
	if p.collections.BucketID == "" {
		return nil
	}
	return func(fileID string) string {
		return p.client.FileViewURL(p.collections.BucketID, fileID)
	}
}
