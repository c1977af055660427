package rest

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"restate-gateway/internal/core/port"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type Server struct {
	httpServer *http.Server
	logger     port.LoggerPort
}

// NewRouter собирает маршруты API отдельно от сервера, чтобы их можно было
// проверять через httptest.
func NewRouter(handlers *PropertyHandlers, allowedOrigins []string, baseLogger port.LoggerPort) http.Handler {
	r := chi.NewRouter()

	r.Use(LoggerMiddleware(baseLogger)) // метод, путь, время выполнения
	r.Use(middleware.Recoverer)         // паника -> 500, сервер продолжает работать
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Trace-ID"},
		ExposedHeaders:   []string{"X-Trace-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/properties", func(r chi.Router) {
			r.Get("/", handlers.ListProperties)
			r.Get("/latest", handlers.LatestProperties)
			r.Get("/{propertyID}", handlers.GetProperty)
		})

		r.Route("/auth", func(r chi.Router) {
			r.Get("/status", handlers.AuthStatus)
			r.Get("/me", handlers.CurrentUser)
			r.Post("/login", handlers.Login)
			r.Post("/logout", handlers.Logout)
		})
	})

	return r
}

func NewServer(port string, handler http.Handler, baseLogger port.LoggerPort) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              ":" + port,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		},
		logger: baseLogger,
	}
}

// Start блокируется, пока сервер не остановят через Stop.
func (s *Server) Start() error {
	s.logger.Info("Starting REST API server", port.Fields{"address": s.httpServer.Addr})
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		s.logger.Error("Could not start server", err, nil)
		return fmt.Errorf("could not start server: %w", err)
	}
	return nil
}

func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping REST API server...", nil)
	return s.httpServer.Shutdown(ctx)
}
