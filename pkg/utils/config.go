package utils

import (
	"errors"
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Session  SessionConfig
	Email    EmailConfig
	OTP      OTPConfig
	Storage  StorageConfig
	Redis    RedisConfig
	Cache    CacheConfig
	Cron     CronConfig
}

type AppConfig struct {
	Name           string
	Port           string
	Debug          bool
	LogPath        string
	AllowedOrigins []string
	MaxUploadMB    int64
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

type SessionConfig struct {
	ExpiryHours int
}

type EmailConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

type OTPConfig struct {
	ExpiryMinutes int
	Length        int
}

// StorageConfig selects where uploaded images live. Driver is "local" or "cloudinary".
type StorageConfig struct {
	Driver           string
	LocalPath        string
	PublicURL        string
	CloudinaryName   string
	CloudinaryKey    string
	CloudinarySecret string
	CloudinaryFolder string
}

type RedisConfig struct {
	Addr     string
	Username string
	Password string
	DB       int
}

type CacheConfig struct {
	DashboardTTL time.Duration
}

type CronConfig struct {
	VerificationCleanup string
	SessionCleanup      string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("APP_NAME", "umrah-booking")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("ALLOWED_ORIGINS", "*")
	viper.SetDefault("MAX_UPLOAD_MB", 20)
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_SSLMODE", "disable")
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("SESSION_EXPIRY_HOURS", 24)
	viper.SetDefault("SMTP_PORT", 587)
	viper.SetDefault("OTP_EXPIRY_MINUTES", 5)
	viper.SetDefault("OTP_LENGTH", 6)
	viper.SetDefault("STORAGE_DRIVER", "local")
	viper.SetDefault("STORAGE_LOCAL_PATH", "storage/")
	viper.SetDefault("STORAGE_PUBLIC_URL", "http://localhost:8080/storage")
	viper.SetDefault("CLOUDINARY_FOLDER", "umrah")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("DASHBOARD_CACHE_TTL", "10m")
	viper.SetDefault("CRON_VERIFICATION_CLEANUP", "@every 15m")
	viper.SetDefault("CRON_SESSION_CLEANUP", "0 3 * * *")

	if err := viper.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:           viper.GetString("APP_NAME"),
			Port:           viper.GetString("PORT"),
			Debug:          viper.GetBool("DEBUG"),
			LogPath:        viper.GetString("LOG_PATH"),
			AllowedOrigins: viper.GetStringSlice("ALLOWED_ORIGINS"),
			MaxUploadMB:    viper.GetInt64("MAX_UPLOAD_MB"),
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
		Session: SessionConfig{
			ExpiryHours: viper.GetInt("SESSION_EXPIRY_HOURS"),
		},
		Email: EmailConfig{
			Host:     viper.GetString("SMTP_HOST"),
			Port:     viper.GetInt("SMTP_PORT"),
			User:     viper.GetString("SMTP_USER"),
			Password: viper.GetString("SMTP_PASS"),
			From:     viper.GetString("EMAIL_FROM"),
		},
		OTP: OTPConfig{
			ExpiryMinutes: viper.GetInt("OTP_EXPIRY_MINUTES"),
			Length:        viper.GetInt("OTP_LENGTH"),
		},
		Storage: StorageConfig{
			Driver:           viper.GetString("STORAGE_DRIVER"),
			LocalPath:        viper.GetString("STORAGE_LOCAL_PATH"),
			PublicURL:        viper.GetString("STORAGE_PUBLIC_URL"),
			CloudinaryName:   viper.GetString("CLOUDINARY_CLOUD_NAME"),
			CloudinaryKey:    viper.GetString("CLOUDINARY_API_KEY"),
			CloudinarySecret: viper.GetString("CLOUDINARY_API_SECRET"),
			CloudinaryFolder: viper.GetString("CLOUDINARY_FOLDER"),
		},
		Redis: RedisConfig{
			Addr:     viper.GetString("REDIS_ADDR"),
			Username: viper.GetString("REDIS_USER"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			DashboardTTL: viper.GetDuration("DASHBOARD_CACHE_TTL"),
		},
		Cron: CronConfig{
			VerificationCleanup: viper.GetString("CRON_VERIFICATION_CLEANUP"),
			SessionCleanup:      viper.GetString("CRON_SESSION_CLEANUP"),
		},
	}

	return config, nil
}
