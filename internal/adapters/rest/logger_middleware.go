package rest

import (
	"net/http"
	"restate-gateway/internal/contextkeys"
	"restate-gateway/internal/core/port"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

const headerTraceID = "X-Trace-ID"

// requestTraceID берет trace id клиента, если это UUID, иначе выдает новый.
// Произвольная строка из заголовка в логи и в запросы к бэкенду не попадает.
func requestTraceID(r *http.Request) string {
	if id, err := uuid.Parse(r.Header.Get(headerTraceID)); err == nil {
		return id.String()
	}
	return uuid.New().String()
}

// LoggerMiddleware кладет в контекст логгер с trace_id. Тот же id уходит
// в заголовке к бэкенду и возвращается клиенту: по нему фронтенд находит
// запрос в логах, даже если ответ был собран из резервных данных.
func LoggerMiddleware(logger port.LoggerPort) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			traceID := requestTraceID(r)
			w.Header().Set(headerTraceID, traceID)

			coreLogger := logger.WithFields(port.Fields{"trace_id": traceID})
			httpLogger := coreLogger.WithFields(port.Fields{
				"http_method": r.Method,
				"http_path":   r.URL.Path,
				"remote_addr": r.RemoteAddr,
			})

			ctx := contextkeys.ContextWithTraceID(contextkeys.ContextWithLogger(r.Context(), coreLogger), traceID)

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			startTime := time.Now()
			next.ServeHTTP(ww, r.WithContext(ctx))

			fields := port.Fields{
				"status_code":   ww.Status(),
				"bytes_written": ww.BytesWritten(),
				"duration_ms":   time.Since(startTime).Milliseconds(),
			}
			// 401 на /auth/me и 404 на неизвестный id - обычные ответы, не сбой сервера
			if ww.Status() >= http.StatusInternalServerError {
				httpLogger.Warn("Request failed", fields)
				return
			}
			httpLogger.Info("Request finished", fields)
		})
	}
}
