package appwrite

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"restate-gateway/internal/contextkeys"
	"restate-gateway/internal/core/domain"
	"restate-gateway/internal/core/port"
	"strings"
	"time"
)

const (
	responseFormat = "1.6.0"

	headerProject        = "X-Appwrite-Project"
	headerResponseFormat = "X-Appwrite-Response-Format"
	headerPlatform       = "X-Appwrite-Platform"
	headerFallbackCookie = "X-Fallback-Cookies"
	headerTraceID        = "X-Trace-ID"
)

// Config - параметры подключения к бэкенду.
type Config struct {
	Endpoint  string // например, "https://cloud.appwrite.io/v1"
	ProjectID string
	Platform  string
	Timeout   time.Duration
}

// Client - общий для всего процесса HTTP-клиент бэкенда. Сам по себе состояния
// не хранит: секрет сессии живет в SessionStore.
type Client struct {
	endpoint   string
	projectID  string
	platform   string
	httpClient *http.Client
	sessions   port.SessionStore
}

// NewClient проверяет обязательные параметры: без endpoint и projectID
// клиент не создается.
func NewClient(cfg Config, sessions port.SessionStore) (*Client, error) {
	if cfg.Endpoint == "" || cfg.ProjectID == "" {
		return nil, fmt.Errorf("%w: endpoint=%q project=%q", domain.ErrIncompleteConfig, cfg.Endpoint, cfg.ProjectID)
	}
	if _, err := url.ParseRequestURI(cfg.Endpoint); err != nil {
		return nil, fmt.Errorf("%w: invalid endpoint: %w", domain.ErrIncompleteConfig, err)
	}
	if sessions == nil {
		return nil, fmt.Errorf("session store cannot be nil")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	return &Client{
		endpoint:   strings.TrimRight(cfg.Endpoint, "/"),
		projectID:  cfg.ProjectID,
		platform:   cfg.Platform,
		httpClient: &http.Client{Timeout: timeout},
		sessions:   sessions,
	}, nil
}

// buildURL собирает абсолютный URL ресурса бэкенда.
func (c *Client) buildURL(path string, params url.Values) string {
	u := c.endpoint + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	return u
}

// doRequest - внутренний хелпер для выполнения запросов. Возвращает
// *domain.BackendError для сетевых ошибок и ответов не из диапазона 2xx.
func (c *Client) doRequest(ctx context.Context, op, method, path string, params url.Values, payload interface{}) (*http.Response, error) {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, &domain.BackendError{Op: op, Err: fmt.Errorf("failed to marshal request body: %w", err)}
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.buildURL(path, params), body)
	if err != nil {
		return nil, &domain.BackendError{Op: op, Err: fmt.Errorf("failed to create request: %w", err)}
	}

	req.Header.Set(headerProject, c.projectID)
	req.Header.Set(headerResponseFormat, responseFormat)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.platform != "" {
		req.Header.Set(headerPlatform, c.platform)
	}
	if traceID := contextkeys.TraceIDFromContext(ctx); traceID != "" {
		req.Header.Set(headerTraceID, traceID)
	}

	cookie, err := c.sessions.Load()
	if err != nil {
		contextkeys.LoggerFromContext(ctx).Warn("Failed to load session, sending request as guest", port.Fields{
			"component": "AppwriteClient",
			"error":     err.Error(),
		})
	} else if cookie != "" {
		req.Header.Set(headerFallbackCookie, cookie)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &domain.BackendError{Op: op, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		defer resp.Body.Close()
		return nil, decodeError(op, resp)
	}
	return resp, nil
}

// getJSON выполняет запрос и декодирует тело ответа в out.
func (c *Client) getJSON(ctx context.Context, op, path string, params url.Values, out interface{}) error {
	resp, err := c.doRequest(ctx, op, http.MethodGet, path, params, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &domain.BackendError{Op: op, Err: fmt.Errorf("failed to decode response: %w", err)}
	}
	return nil
}

func decodeError(op string, resp *http.Response) error {
	backendErr := &domain.BackendError{Op: op, StatusCode: resp.StatusCode}

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	var apiErr errorResponse
	if err := json.Unmarshal(raw, &apiErr); err == nil && apiErr.Message != "" {
		backendErr.Message = apiErr.Message
		backendErr.Type = apiErr.Type
	} else if len(raw) > 0 {
		backendErr.Message = strings.TrimSpace(string(raw))
	}
	return backendErr
}
