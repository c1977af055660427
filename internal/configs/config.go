package configs

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"restate-gateway/internal/core/domain"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// AppwriteConfig - подключение к бэкенду и идентификаторы его ресурсов.
type AppwriteConfig struct {
	Endpoint               string
	ProjectID              string
	Platform               string
	DatabaseID             string
	GalleriesCollectionID  string
	ReviewsCollectionID    string
	AgentsCollectionID     string
	PropertiesCollectionID string
	BucketID               string
	HTTPTimeout            time.Duration
}

type OAuthConfig struct {
	CallbackPort int
	Timeout      time.Duration
	OpenBrowser  bool
}

type SessionConfig struct {
	File string
	// UseKeyring - хранить секрет в системном keyring, файл остается запасным.
	UseKeyring bool
}

type RESTconfig struct {
	PORT               string
	CORSAllowedOrigins []string
}

type StdoutLogConfig struct {
	Level string
}

type FluentBitConfig struct {
	Host    string
	Port    int
	Enabled bool
	Level   string
}

// AppConfig хранит всю конфигурацию приложения
type AppConfig struct {
	Appwrite     AppwriteConfig
	OAuth        OAuthConfig
	Session      SessionConfig
	Rest         RESTconfig
	FluentBit    FluentBitConfig
	AppName      string
	StdoutLogger StdoutLogConfig
}

// LoadConfig загружает конфигурацию из .env (если он есть) и переменных окружения.
// Отсутствие endpoint или project id - фатальная ошибка ErrIncompleteConfig.
func LoadConfig(envPath ...string) (*AppConfig, error) {
	var err error
	if len(envPath) > 0 && envPath[0] != "" {
		err = godotenv.Load(envPath[0])
		if err != nil {
			return nil, fmt.Errorf("could not load .env file (path: %s): %w", envPath[0], err)
		}
	} else if err = godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("could not load .env file: %w", err)
	}

	cfg := &AppConfig{}

	cfg.AppName = getEnvAsString("APP_NAME", "restate-gateway")

	cfg.Appwrite.Endpoint = strings.TrimSpace(os.Getenv("APPWRITE_ENDPOINT"))
	cfg.Appwrite.ProjectID = strings.TrimSpace(os.Getenv("APPWRITE_PROJECT_ID"))
	var missing []string
	if cfg.Appwrite.Endpoint == "" {
		missing = append(missing, "APPWRITE_ENDPOINT")
	}
	if cfg.Appwrite.ProjectID == "" {
		missing = append(missing, "APPWRITE_PROJECT_ID")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s environment variable is required", domain.ErrIncompleteConfig, strings.Join(missing, ", "))
	}

	cfg.Appwrite.Platform = getEnvAsString("APPWRITE_PLATFORM", "com.jsm.restate")
	cfg.Appwrite.DatabaseID = os.Getenv("APPWRITE_DATABASE_ID")
	cfg.Appwrite.GalleriesCollectionID = os.Getenv("APPWRITE_GALLERIES_COLLECTION_ID")
	cfg.Appwrite.ReviewsCollectionID = os.Getenv("APPWRITE_REVIEWS_COLLECTION_ID")
	cfg.Appwrite.AgentsCollectionID = os.Getenv("APPWRITE_AGENTS_COLLECTION_ID")
	cfg.Appwrite.PropertiesCollectionID = os.Getenv("APPWRITE_PROPERTIES_COLLECTION_ID")
	cfg.Appwrite.BucketID = os.Getenv("APPWRITE_BUCKET_ID")
	cfg.Appwrite.HTTPTimeout = getEnvAsDuration("HTTP_TIMEOUT", 15*time.Second)

	if cfg.Appwrite.DatabaseID == "" || cfg.Appwrite.PropertiesCollectionID == "" {
		// Без них запросы к документам будут падать и отдавать резервные данные.
		log.Println("WARNING: APPWRITE_DATABASE_ID or APPWRITE_PROPERTIES_COLLECTION_ID is not set. Property queries will use mock data.")
	}

	cfg.OAuth.CallbackPort = getEnvAsInt("OAUTH_CALLBACK_PORT", 8765)
	cfg.OAuth.Timeout = getEnvAsDuration("OAUTH_TIMEOUT", 2*time.Minute)
	cfg.OAuth.OpenBrowser = getEnvAsBool("OAUTH_OPEN_BROWSER", true)

	cfg.Session.File = getEnvAsString("SESSION_FILE", defaultSessionFile())
	cfg.Session.UseKeyring = getEnvAsBool("SESSION_KEYRING", true)

	cfg.Rest.PORT = getEnvAsString("PORT", "8080")
	cfg.Rest.CORSAllowedOrigins = getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"*"})

	cfg.FluentBit.Enabled = getEnvAsBool("FLUENTBIT_ENABLED", false)
	if cfg.FluentBit.Enabled {
		cfg.FluentBit.Host = os.Getenv("FLUENTBIT_HOST")
		if cfg.FluentBit.Host == "" {
			log.Println("WARNING: FLUENTBIT_ENABLED is true, but FLUENTBIT_HOST is not set. Disabling Fluent Bit.")
			cfg.FluentBit.Enabled = false
		}

		cfg.FluentBit.Port = getEnvAsInt("FLUENTBIT_PORT", 24224)
		cfg.FluentBit.Level = getEnvAsString("FLUENTBIT_LOG_LEVEL", "info")
	}

	cfg.StdoutLogger.Level = getEnvAsString("STDOUT_LOG_LEVEL", "warn")

	return cfg, nil
}

func defaultSessionFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".restate-session.json"
	}
	return filepath.Join(dir, "restate-gateway", "session.json")
}

func getEnvAsString(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt читает переменную окружения как int или возвращает значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}

	valueInt, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Environment variable %s (value: %s) could not be parsed as int: %v. Using default value: %d\n", key, valueStr, err, defaultValue)
		return defaultValue
	}
	return valueInt
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valBool, err := strconv.ParseBool(valStr)
	if err != nil {
		log.Printf("Warning: Environment variable %s (value: %s) could not be parsed as bool: %v. Using default value: %t\n", key, valStr, err, defaultValue)
		return defaultValue
	}
	return valBool
}

// getEnvAsDuration принимает "30s", "2m" и т.п.
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valDur, err := time.ParseDuration(valStr)
	if err != nil || valDur <= 0 {
		log.Printf("Warning: Environment variable %s (value: %s) is not a positive duration. Using default value: %s\n", key, valStr, defaultValue)
		return defaultValue
	}
	return valDur
}

// getEnvAsList разбирает список через запятую.
func getEnvAsList(key string, defaultValue []string) []string {
	valStr, exists := os.LookupEnv(key)
	if !exists || strings.TrimSpace(valStr) == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(valStr, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
