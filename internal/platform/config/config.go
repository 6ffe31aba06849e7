package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL       string
	Port              string
	IsProduction      bool
	EnableDBCheck     bool
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	RefreshTokenExpiryDuration time.Duration

	// External OAuth Providers
	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURL  string

	CORSAllowedOrigins []string

	// File storage for attachments
	StorageBackend     string // "local" or "gcs"
	StorageLocalDir    string
	GCSBucket          string
	GCSCredentialsFile string

	TelegramBotToken string
	TelegramChatID   int64

	PosthogAPIKey string

	// BookValueMode is "manual" (stored value is authoritative) or "schedule" (derived on read).
	BookValueMode string

	// UnknownCurrencyPolicy is one of "skip", "fail" or "usd".
	UnknownCurrencyPolicy string
	EnabledModules        []string

	ImportMaxBytes     int64
	AttachmentMaxBytes int64
	LoginRateLimit     string
	ImportRateLimit    string

	// Optional first admin account, created at start-up when missing.
	BootstrapAdminUsername string
	BootstrapAdminPassword string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("JWT_ISSUER", "backoffice-app")
	viper.SetDefault("REFRESH_TOKEN_EXPIRY_DURATION", "168h")
	viper.SetDefault("GOOGLE_CLIENT_ID", "")
	viper.SetDefault("GOOGLE_CLIENT_SECRET", "")
	viper.SetDefault("GOOGLE_REDIRECT_URL", "http://localhost:8080/api/v1/auth/google/callback")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("STORAGE_BACKEND", "local")
	viper.SetDefault("STORAGE_LOCAL_DIR", "./uploads")
	viper.SetDefault("GCS_BUCKET", "")
	viper.SetDefault("GCS_CREDENTIALS_FILE", "")
	viper.SetDefault("TELEGRAM_BOT_TOKEN", "")
	viper.SetDefault("TELEGRAM_CHAT_ID", 0)
	viper.SetDefault("POSTHOG_API_KEY", "")
	viper.SetDefault("BOOK_VALUE_MODE", "manual")
	viper.SetDefault("UNKNOWN_CURRENCY_POLICY", "skip")
	viper.SetDefault("ENABLED_MODULES", "subscriptions,payments,vendors,assets,depreciation,imports,page_builder,notifications")
	viper.SetDefault("IMPORT_MAX_BYTES", 5<<20)
	viper.SetDefault("ATTACHMENT_MAX_BYTES", 10<<20)
	viper.SetDefault("LOGIN_RATE_LIMIT", "5-M")
	viper.SetDefault("IMPORT_RATE_LIMIT", "10-M")
	viper.SetDefault("BOOTSTRAP_ADMIN_USERNAME", "")
	viper.SetDefault("BOOTSTRAP_ADMIN_PASSWORD", "")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "a-very-secret-key-should-be-longer-and-random" // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = time.Hour
		if jwtExpiryStr != "" {
			log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
		}
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration

	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")
	if cfg.JWTIssuer == "" {
		cfg.JWTIssuer = "backoffice-app"
		log.Printf("Warning: JWT_ISSUER not set. Defaulting to %s.\n", cfg.JWTIssuer)
	}

	refreshExpiryStr := viper.GetString("REFRESH_TOKEN_EXPIRY_DURATION")
	refreshExpiry, err := time.ParseDuration(refreshExpiryStr)
	if err != nil || refreshExpiry <= 0 {
		refreshExpiry = 7 * 24 * time.Hour
		log.Printf("Warning: Invalid value for REFRESH_TOKEN_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", refreshExpiryStr, refreshExpiry.String())
	}
	cfg.RefreshTokenExpiryDuration = refreshExpiry

	cfg.GoogleClientID = viper.GetString("GOOGLE_CLIENT_ID")
	if cfg.GoogleClientID == "" {
		log.Println("Warning: GOOGLE_CLIENT_ID not set. Google sign-in will not function.")
	}
	cfg.GoogleClientSecret = viper.GetString("GOOGLE_CLIENT_SECRET")
	cfg.GoogleRedirectURL = viper.GetString("GOOGLE_REDIRECT_URL")

	cfg.CORSAllowedOrigins = splitList(viper.GetString("CORS_ALLOWED_ORIGINS"))

	cfg.StorageBackend = strings.ToLower(viper.GetString("STORAGE_BACKEND"))
	if cfg.StorageBackend != "local" && cfg.StorageBackend != "gcs" {
		log.Printf("Warning: Invalid value for STORAGE_BACKEND ('%s'). Defaulting to local.\n", cfg.StorageBackend)
		cfg.StorageBackend = "local"
	}
	cfg.StorageLocalDir = viper.GetString("STORAGE_LOCAL_DIR")
	cfg.GCSBucket = viper.GetString("GCS_BUCKET")
	cfg.GCSCredentialsFile = viper.GetString("GCS_CREDENTIALS_FILE")
	if cfg.StorageBackend == "gcs" && cfg.GCSBucket == "" {
		log.Println("Warning: STORAGE_BACKEND is gcs but GCS_BUCKET is not set. Falling back to local storage.")
		cfg.StorageBackend = "local"
	}

	cfg.TelegramBotToken = viper.GetString("TELEGRAM_BOT_TOKEN")
	cfg.TelegramChatID = viper.GetInt64("TELEGRAM_CHAT_ID")
	if cfg.TelegramBotToken != "" && cfg.TelegramChatID == 0 {
		log.Println("Warning: TELEGRAM_BOT_TOKEN set without TELEGRAM_CHAT_ID. Renewal digests will not be delivered.")
	}

	cfg.PosthogAPIKey = viper.GetString("POSTHOG_API_KEY")

	cfg.BookValueMode = strings.ToLower(viper.GetString("BOOK_VALUE_MODE"))
	if cfg.BookValueMode != "manual" && cfg.BookValueMode != "schedule" {
		log.Printf("Warning: Invalid value for BOOK_VALUE_MODE ('%s'). Defaulting to manual.\n", cfg.BookValueMode)
		cfg.BookValueMode = "manual"
	}

	cfg.UnknownCurrencyPolicy = strings.ToLower(viper.GetString("UNKNOWN_CURRENCY_POLICY"))
	switch cfg.UnknownCurrencyPolicy {
	case "skip", "fail", "usd":
	default:
		log.Printf("Warning: Invalid value for UNKNOWN_CURRENCY_POLICY ('%s'). Defaulting to skip.\n", cfg.UnknownCurrencyPolicy)
		cfg.UnknownCurrencyPolicy = "skip"
	}

	cfg.EnabledModules = splitList(viper.GetString("ENABLED_MODULES"))

	cfg.ImportMaxBytes = viper.GetInt64("IMPORT_MAX_BYTES")
	if cfg.ImportMaxBytes <= 0 {
		cfg.ImportMaxBytes = 5 << 20
	}
	cfg.AttachmentMaxBytes = viper.GetInt64("ATTACHMENT_MAX_BYTES")
	if cfg.AttachmentMaxBytes <= 0 {
		cfg.AttachmentMaxBytes = 10 << 20
	}
	cfg.LoginRateLimit = viper.GetString("LOGIN_RATE_LIMIT")
	cfg.ImportRateLimit = viper.GetString("IMPORT_RATE_LIMIT")

	cfg.BootstrapAdminUsername = viper.GetString("BOOTSTRAP_ADMIN_USERNAME")
	cfg.BootstrapAdminPassword = viper.GetString("BOOTSTRAP_ADMIN_PASSWORD")
	if cfg.BootstrapAdminUsername != "" && len(cfg.BootstrapAdminPassword) < 8 {
		log.Println("Warning: BOOTSTRAP_ADMIN_PASSWORD shorter than 8 characters. Skipping admin bootstrap.")
		cfg.BootstrapAdminUsername = ""
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")

	return cfg, nil
}

// splitList turns a comma separated value into trimmed, non-empty items.
func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
