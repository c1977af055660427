package browser

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"os"
	"restate-gateway/internal/contextkeys"
	"restate-gateway/internal/core/domain"
	"restate-gateway/internal/core/port"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
)

const callbackPage = `<!doctype html><html><body><p>Authorization finished. You can close this tab and return to the terminal.</p></body></html>`

type LoopbackConfig struct {
	Port    int
	Timeout time.Duration
	// Out - куда печатать ссылку авторизации. По умолчанию os.Stderr.
	Out io.Writer
	// Open открывает ссылку в браузере; nil - только печать ссылки.
	Open func(url string) error
}

// LoopbackSession принимает OAuth-редирект на локальный HTTP-сервер
// 127.0.0.1:<port>. Одновременно может идти только одна сессия.
type LoopbackSession struct {
	cfg  LoopbackConfig
	mu   sync.Mutex
	busy bool
}

func NewLoopbackSession(cfg LoopbackConfig) (*LoopbackSession, error) {
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid callback port: %d", cfg.Port)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 2 * time.Minute
	}
	if cfg.Out == nil {
		cfg.Out = os.Stderr
	}
	return &LoopbackSession{cfg: cfg}, nil
}

var (
	_ port.RedirectURIPort = (*LoopbackSession)(nil)
	_ port.AuthBrowserPort = (*LoopbackSession)(nil)
)

func (s *LoopbackSession) addr() string {
	return net.JoinHostPort("127.0.0.1", strconv.Itoa(s.cfg.Port))
}

// CreateURL возвращает адрес на локальном сервере для пути path.
func (s *LoopbackSession) CreateURL(path string) string {
	if path == "" || path[0] != '/' {
		path = "/" + path
	}
	return "http://" + s.addr() + path
}

func (s *LoopbackSession) acquire() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.busy {
		return false
	}
	s.busy = true
	return true
}

func (s *LoopbackSession) release() {
	s.mu.Lock()
	s.busy = false
	s.mu.Unlock()
}

// OpenAuthSession показывает пользователю authURL и ждет, пока браузер
// вернется на redirectURL. Исход: success с полным URL возврата, cancel при
// отмене контекста, dismiss по таймауту, locked если сессия уже идет.
func (s *LoopbackSession) OpenAuthSession(ctx context.Context, authURL, redirectURL string) (domain.BrowserResult, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "LoopbackSession",
		"address":   s.addr(),
	})

	if !s.acquire() {
		logger.Warn("Auth session already in progress", nil)
		return domain.BrowserResult{Type: domain.BrowserResultLocked}, nil
	}
	defer s.release()

	redirect, err := url.Parse(redirectURL)
	if err != nil {
		return domain.BrowserResult{}, fmt.Errorf("invalid redirect url: %w", err)
	}
	callbackPath := redirect.Path
	if callbackPath == "" {
		callbackPath = "/"
	}

	listener, err := net.Listen("tcp", s.addr())
	if err != nil {
		return domain.BrowserResult{}, fmt.Errorf("failed to listen for callback: %w", err)
	}

	callbacks := make(chan string, 1)
	r := chi.NewRouter()
	r.Get(callbackPath, func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		io.WriteString(w, callbackPage)

		select {
		case callbacks <- "http://" + s.addr() + req.URL.RequestURI():
		default:
		}
	})

	server := &http.Server{Handler: r, ReadHeaderTimeout: 10 * time.Second}
	go func() {
		if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Callback server failed", err, nil)
		}
	}()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		server.Shutdown(shutdownCtx)
	}()

	fmt.Fprintf(s.cfg.Out, "Open the following link to sign in:\n\n  %s\n\n", authURL)
	if s.cfg.Open != nil {
		if err := s.cfg.Open(authURL); err != nil {
			logger.Warn("Could not open browser, use the printed link", port.Fields{"error": err.Error()})
		}
	}

	logger.Info("Waiting for OAuth callback", port.Fields{"timeout": s.cfg.Timeout.String()})

	timer := time.NewTimer(s.cfg.Timeout)
	defer timer.Stop()

	select {
	case callbackURL := <-callbacks:
		return domain.BrowserResult{Type: domain.BrowserResultSuccess, URL: callbackURL}, nil
	case <-ctx.Done():
		return domain.BrowserResult{Type: domain.BrowserResultCancel}, nil
	case <-timer.C:
		return domain.BrowserResult{Type: domain.BrowserResultDismiss}, nil
	}
}
