package config

import (
	"moodjournal-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Postgres: Postgres{
			Host:            utils.GetEnvString("POSTGRES_HOST", "localhost"),
			Port:            utils.GetEnvString("POSTGRES_PORT", "5432"),
			DbName:          utils.GetEnvString("POSTGRES_DB_NAME", "moodjournal"),
			Username:        utils.GetEnvString("POSTGRES_USERNAME", "postgres"),
			Password:        utils.GetEnvString("POSTGRES_PASSWORD", "postgres"),
			SSLMode:         utils.GetEnvString("POSTGRES_SSL_MODE", "disable"),
			MaxConns:        utils.GetEnvInt("POSTGRES_MAX_CONNS", 10),
			MinConns:        utils.GetEnvInt("POSTGRES_MIN_CONNS", 1),
			MaxConnLifetime: utils.GetEnvInt("POSTGRES_MAX_CONN_LIFETIME_IN_MINUTES", 30),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:       utils.GetEnvInt("REDIS_DB", 0),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Minio: Minio{
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Host:     utils.GetEnvString("MINIO_HOST", "localhost"),
			Username: utils.GetEnvString("MINIO_USERNAME", "minioadmin"),
			Password: utils.GetEnvString("MINIO_PASSWORD", "minioadmin"),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                        utils.GetEnvString("APP_ENV", "development"),
			Port:                       utils.GetEnvString("APP_PORT", "8080"),
			Version:                    utils.GetEnvString("APP_VERSION", "v1.0"),
			Address:                    utils.GetEnvString("APP_ADDRESS", "0.0.0.0"),
			Timezone:                   utils.GetEnvString("APP_TIMEZONE", "UTC"),
			FrontendURL:                utils.GetEnvString("FRONTEND_URL", "http://localhost:5173"),
			EndpointPrefix:             utils.GetEnvString("APP_ENDPOINT_PREFIX", "/api"),
			CookieDomain:               utils.GetEnvString("APP_COOKIE_DOMAIN", ""),
			CookieSecure:               utils.GetEnvBool("APP_COOKIE_SECURE", false),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUEST", 100),
			ShutdownTimeoutInSeconds:   utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			MaxTimeRequestsPerSeconds:  utils.GetEnvInt("APP_MAX_TIME_REQUESTS_PER_SECONDS", 60),
			RequestBodyLimitInMegabyte: utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 1),
			LoginRateLimitPerMinute:    utils.GetEnvInt("APP_LOGIN_RATE_LIMIT_PER_MINUTE", 10),
			LoginBlockDurationInMinute: utils.GetEnvInt("APP_LOGIN_BLOCK_DURATION_IN_MINUTE", 5),
		},
		JWT: AppJWT{
			Secret:                utils.GetEnvString("JWT_SECRET", "change-me"),
			AccessTTLInMinutes:    utils.GetEnvInt("JWT_ACCESS_TTL_MINUTES", 30),
			RefreshTTLInHours:     utils.GetEnvInt("JWT_REFRESH_TTL_HOURS", 24),
			RefreshCookiePathName: utils.GetEnvString("JWT_REFRESH_COOKIE_PATH", "/api/refresh-token"),
		},
		CSRF: AppCSRF{
			AnonymousTTLInMinutes: utils.GetEnvInt("CSRF_ANON_TTL_MINUTES", 60),
		},
		OAuth: AppOAuth{
			GoogleClientID:     utils.GetEnvString("GOOGLE_CLIENT_ID", ""),
			GoogleClientSecret: utils.GetEnvString("GOOGLE_CLIENT_SECRET", ""),
			GoogleRedirectURL:  utils.GetEnvString("GOOGLE_REDIRECT_URL", "http://localhost:8080/api/authorize"),
			StateTTLInMinutes:  utils.GetEnvInt("OAUTH_STATE_TTL_MINUTES", 10),
			FrontendCallback:   utils.GetEnvString("OAUTH_FRONTEND_CALLBACK_PATH", "/oauth/callback"),
			CleanupCronSpec:    utils.GetEnvString("OAUTH_STATE_CLEANUP_CRON", "@every 1h"),
		},
		AI: AppAI{
			APIKey:            utils.GetEnvString("AI_API_KEY", ""),
			Model:             utils.GetEnvString("AI_MODEL", "gemini-2.0-flash"),
			DailyQuota:        utils.GetEnvInt("AI_DAILY_QUOTA", 10),
			RequestTimeoutSec: utils.GetEnvInt("AI_REQUEST_TIMEOUT_SECONDS", 8),
		},
		Mailer: AppMailer{
			RabbitMQQueue: utils.GetEnvString("APP_RABBITMQ_MAILER_QUEUE", "mailer"),
		},
		Export: AppExport{
			BucketName:         utils.GetEnvString("EXPORT_BUCKET_NAME", "moodjournal-exports"),
			URLExpiryInMinutes: utils.GetEnvInt("EXPORT_URL_TTL_MINUTES", 15),
		},
	}
}
