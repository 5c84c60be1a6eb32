package utils

import (
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Mongo     MongoConfig
	Redis     RedisConfig
	JWT       JWTConfig
	Email     EmailConfig
	OTP       OTPConfig
	Upload    UploadConfig
	Stripe    StripeConfig
	RateLimit RateLimitConfig
	Janitor   JanitorConfig
}

type AppConfig struct {
	Name             string
	Port             string
	Debug            bool
	LogPath          string
	LogLevel         string
	CORSOrigins      []string
	SettingsCacheTTL time.Duration
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string
	MaxConns int32
}

type MongoConfig struct {
	URI      string
	Database string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret      string
	ExpiryHours int
	CookieName  string
}

type EmailConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

type OTPConfig struct {
	ExpiryMinutes  int
	Length         int
	MaxAttempts    int
	ResendCooldown time.Duration
}

type UploadConfig struct {
	Dir       string
	PublicURL string
	MaxBytes  int64
}

type StripeConfig struct {
	SecretKey string
	Currency  string
}

type RateLimitConfig struct {
	RPS   float64
	Burst int
}

type JanitorConfig struct {
	Interval time.Duration
}

// LoadConfig reads .env (when present) and environment variables.
func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("APP_NAME", "celebrity-booking")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("CORS_ORIGINS", "*")
	viper.SetDefault("SETTINGS_CACHE_TTL_SECONDS", 300)
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_SSLMODE", "disable")
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	viper.SetDefault("MONGO_DB", "celebrity_booking")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("JWT_EXPIRY_HOURS", 24)
	viper.SetDefault("JWT_COOKIE_NAME", "token")
	viper.SetDefault("SMTP_PORT", 587)
	viper.SetDefault("OTP_EXPIRY_MINUTES", 10)
	viper.SetDefault("OTP_LENGTH", 6)
	viper.SetDefault("OTP_MAX_ATTEMPTS", 5)
	viper.SetDefault("OTP_RESEND_COOLDOWN_SECONDS", 60)
	viper.SetDefault("UPLOAD_DIR", "uploads/")
	viper.SetDefault("UPLOAD_PUBLIC_URL", "/uploads")
	viper.SetDefault("UPLOAD_MAX_BYTES", 10<<20)
	viper.SetDefault("STRIPE_CURRENCY", "usd")
	viper.SetDefault("RATE_LIMIT_RPS", 10)
	viper.SetDefault("RATE_LIMIT_BURST", 20)
	viper.SetDefault("JANITOR_INTERVAL_MINUTES", 15)

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// .env is optional, the environment alone is enough
		var pathErr *fs.PathError
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &pathErr) && !errors.As(err, &notFound) {
			return nil, err
		}
	}

	config := &Config{
		App: AppConfig{
			Name:             viper.GetString("APP_NAME"),
			Port:             viper.GetString("PORT"),
			Debug:            viper.GetBool("DEBUG"),
			LogPath:          viper.GetString("LOG_PATH"),
			LogLevel:         viper.GetString("LOG_LEVEL"),
			CORSOrigins:      splitList(viper.GetString("CORS_ORIGINS")),
			SettingsCacheTTL: time.Duration(viper.GetInt("SETTINGS_CACHE_TTL_SECONDS")) * time.Second,
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			SSLMode:  viper.GetString("DB_SSLMODE"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		Mongo: MongoConfig{
			URI:      viper.GetString("MONGO_URI"),
			Database: viper.GetString("MONGO_DB"),
		},
		Redis: RedisConfig{
			Addr:     viper.GetString("REDIS_ADDR"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret:      viper.GetString("JWT_SECRET"),
			ExpiryHours: viper.GetInt("JWT_EXPIRY_HOURS"),
			CookieName:  viper.GetString("JWT_COOKIE_NAME"),
		},
		Email: EmailConfig{
			Host:     viper.GetString("SMTP_HOST"),
			Port:     viper.GetInt("SMTP_PORT"),
			User:     viper.GetString("SMTP_USER"),
			Password: viper.GetString("SMTP_PASS"),
			From:     viper.GetString("EMAIL_FROM"),
		},
		OTP: OTPConfig{
			ExpiryMinutes:  viper.GetInt("OTP_EXPIRY_MINUTES"),
			Length:         viper.GetInt("OTP_LENGTH"),
			MaxAttempts:    viper.GetInt("OTP_MAX_ATTEMPTS"),
			ResendCooldown: time.Duration(viper.GetInt("OTP_RESEND_COOLDOWN_SECONDS")) * time.Second,
		},
		Upload: UploadConfig{
			Dir:       viper.GetString("UPLOAD_DIR"),
			PublicURL: viper.GetString("UPLOAD_PUBLIC_URL"),
			MaxBytes:  viper.GetInt64("UPLOAD_MAX_BYTES"),
		},
		Stripe: StripeConfig{
			SecretKey: viper.GetString("STRIPE_SECRET_KEY"),
			Currency:  viper.GetString("STRIPE_CURRENCY"),
		},
		RateLimit: RateLimitConfig{
			RPS:   viper.GetFloat64("RATE_LIMIT_RPS"),
			Burst: viper.GetInt("RATE_LIMIT_BURST"),
		},
		Janitor: JanitorConfig{
			Interval: time.Duration(viper.GetInt("JANITOR_INTERVAL_MINUTES")) * time.Minute,
		},
	}

	if config.JWT.Secret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}

	return config, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
