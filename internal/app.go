package internal

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"restate-gateway/internal/adapters/appwrite"
	"restate-gateway/internal/adapters/browser"
	logger_adapter "restate-gateway/internal/adapters/logger"
	"restate-gateway/internal/adapters/rest"
	"restate-gateway/internal/adapters/session"
	"restate-gateway/internal/configs"
	"restate-gateway/internal/contextkeys"
	"restate-gateway/internal/core/port"
	"restate-gateway/internal/core/port/usecases_port"
	"restate-gateway/internal/core/usecase"
	"restate-gateway/pkg/fluentlogger"
	"strings"
	"syscall"
	"time"

	"github.com/fluent/fluent-logger-golang/fluent"
	sysbrowser "github.com/pkg/browser"
)

// SessionMode - где хранить секрет сессии бэкенда.
type SessionMode int

const (
	// SessionFile - в файле, чтобы CLI оставался авторизованным между запусками.
	SessionFile SessionMode = iota
	// SessionMemory - только в памяти процесса (serve).
	SessionMemory
)

type App struct {
	config     *configs.AppConfig
	gateway    *usecase.PropertyDataGateway
	baseLogger port.LoggerPort
	logger     port.LoggerPort
	// loggers - корневой логгер, владеющий соединением с Fluent Bit
	loggers *logger_adapter.MultiLoggerAdapter
}

// NewApp загружает конфигурацию и собирает шлюз со всеми адаптерами.
// envPath может быть пустым: тогда читается .env из текущего каталога, если он есть.
func NewApp(envPath string, mode SessionMode) (*App, error) {
	appConfig, err := configs.LoadConfig(envPath)
	if err != nil {
		return nil, fmt.Errorf("error loading application configuration: %w", err)
	}

	// --- 1. ЛОГГЕРЫ ---
	var activeLoggers []port.LoggerPort

	stdoutLogger := logger_adapter.NewSlogAdapter(logger_adapter.SlogConfig{
		Level:    parseLogLevel(appConfig.StdoutLogger.Level),
		UseColor: true,
	})
	activeLoggers = append(activeLoggers, stdoutLogger)

	var fluentClient *fluent.Fluent
	if appConfig.FluentBit.Enabled {
		fluentClient, err = fluentlogger.NewClient(fluentlogger.Config{
			Host:      appConfig.FluentBit.Host,
			Port:      appConfig.FluentBit.Port,
			TagPrefix: appConfig.AppName,
			Async:     true,
		})
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit client", err, nil)
			return nil, fmt.Errorf("failed to create fluentbit client: %w", err)
		}

		fluentAdapter, err := logger_adapter.NewFluentLoggerAdapter(fluentClient, parseLogLevel(appConfig.FluentBit.Level))
		if err != nil {
			fluentClient.Close()
			return nil, err
		}
		activeLoggers = append(activeLoggers, fluentAdapter)
	}

	multiLogger, err := logger_adapter.NewMultiloggerAdapter(activeLoggers...)
	if err != nil {
		return nil, fmt.Errorf("failed to create multi-logger: %w", err)
	}

	baseLogger := multiLogger.WithFields(port.Fields{"service_name": appConfig.AppName})
	appLogger := baseLogger.WithFields(port.Fields{"component": "app"})
	appLogger.Debug("Logger system initialized", port.Fields{
		"active_loggers": len(activeLoggers), "fluent_enabled": appConfig.FluentBit.Enabled,
	})

	cleanup := func() {
		if fluentClient != nil {
			fluentClient.Close()
		}
	}

	// --- 2. ХРАНИЛИЩЕ СЕССИИ ---
	var sessions port.SessionStore
	switch mode {
	case SessionMemory:
		sessions = session.NewMemoryStore()
	default:
		fileStore, err := session.NewFileStore(appConfig.Session.File)
		if err != nil {
			cleanup()
			return nil, fmt.Errorf("failed to create session store: %w", err)
		}
		sessions = fileStore

		if appConfig.Session.UseKeyring {
			keyringStore, err := session.NewKeyringStore(appConfig.AppName, appConfig.Appwrite.ProjectID, fileStore)
			if err != nil {
				cleanup()
				return nil, fmt.Errorf("failed to create session store: %w", err)
			}
			sessions = keyringStore
		}
	}

	// --- 3. КЛИЕНТ БЭКЕНДА ---
	client, err := appwrite.NewClient(appwrite.Config{
		Endpoint:  appConfig.Appwrite.Endpoint,
		ProjectID: appConfig.Appwrite.ProjectID,
		Platform:  appConfig.Appwrite.Platform,
		Timeout:   appConfig.Appwrite.HTTPTimeout,
	}, sessions)
	if err != nil {
		appLogger.Error("Failed to create backend client", err, nil)
		cleanup()
		return nil, err
	}
	if appConfig.Appwrite.BucketID == "" {
		appLogger.Warn("APPWRITE_BUCKET_ID is not set, image file ids will not be resolved", nil)
	}

	var opener func(string) error
	if appConfig.OAuth.OpenBrowser {
		// вывод xdg-open не должен попадать в JSON-вывод команд
		sysbrowser.Stdout = os.Stderr
		opener = sysbrowser.OpenURL
	}
	loopback, err := browser.NewLoopbackSession(browser.LoopbackConfig{
		Port:    appConfig.OAuth.CallbackPort,
		Timeout: appConfig.OAuth.Timeout,
		Open:    opener,
	})
	if err != nil {
		cleanup()
		return nil, fmt.Errorf("failed to create auth browser session: %w", err)
	}

	// --- 4. ШЛЮЗ ---
	gateway := usecase.NewPropertyDataGateway(usecase.Backend{
		Account: appwrite.NewAccount(client),
		Documents: appwrite.NewProperties(client, appwrite.Collections{
			DatabaseID:             appConfig.Appwrite.DatabaseID,
			PropertiesCollectionID: appConfig.Appwrite.PropertiesCollectionID,
			GalleriesCollectionID:  appConfig.Appwrite.GalleriesCollectionID,
			ReviewsCollectionID:    appConfig.Appwrite.ReviewsCollectionID,
			AgentsCollectionID:     appConfig.Appwrite.AgentsCollectionID,
			BucketID:               appConfig.Appwrite.BucketID,
		}),
		Avatars:  appwrite.NewAvatars(client),
		Redirect: loopback,
		Browser:  loopback,
	})

	appLogger.Debug("Gateway initialized", port.Fields{
		"endpoint": appConfig.Appwrite.Endpoint,
		"project":  appConfig.Appwrite.ProjectID,
	})

	return &App{
		config:     appConfig,
		gateway:    gateway,
		baseLogger: baseLogger,
		logger:     appLogger,
		loggers:    multiLogger,
	}, nil
}

func (a *App) Gateway() usecases_port.PropertyDataGateway {
	return a.gateway
}

// Context добавляет в ctx логгер приложения и новый trace id.
func (a *App) Context(ctx context.Context) context.Context {
	ctx, traceID := contextkeys.ContextWithNewTraceID(ctx)
	return contextkeys.ContextWithLogger(ctx, a.baseLogger.WithFields(port.Fields{"trace_id": traceID}))
}

// Serve поднимает REST API и блокируется до сигнала ОС, отмены ctx или
// ошибки сервера.
func (a *App) Serve(ctx context.Context) error {
	handlers := rest.NewPropertyHandlers(a.gateway)
	router := rest.NewRouter(handlers, a.config.Rest.CORSAllowedOrigins, a.baseLogger)
	apiServer := rest.NewServer(a.config.Rest.PORT, router, a.baseLogger.WithFields(port.Fields{"component": "rest"}))

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- apiServer.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	a.logger.Info("Application running. Waiting for signals or server error...", port.Fields{"port": a.config.Rest.PORT})

	var runErr error
	select {
	case receivedSignal := <-quit:
		a.logger.Warn("Received OS signal, shutting down...", port.Fields{"signal": receivedSignal.String()})
	case <-ctx.Done():
		a.logger.Warn("Context was cancelled, shutting down...", nil)
	case err := <-serverErrors:
		if err != nil {
			a.logger.Error("HTTP server failed, shutting down", err, nil)
			return err
		}
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := apiServer.Stop(shutdownCtx); err != nil {
		a.logger.Error("Error during API server shutdown", err, nil)
		runErr = err
	}
	a.logger.Info("Application shut down gracefully.", nil)
	return runErr
}

func (a *App) Close() error {
	if err := a.loggers.Close(); err != nil {
		// fluent к этому моменту может быть недоступен, пишем напрямую
		fmt.Fprintf(os.Stderr, "ERROR: Error closing loggers: %v\n", err)
		return err
	}
	return nil
}

func parseLogLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		log.Printf("Warning: Unknown log level '%s'. Defaulting to 'info'.", levelStr)
		return slog.LevelInfo
	}
}
