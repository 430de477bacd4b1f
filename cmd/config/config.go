package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
)

type Config struct {
	Environment   string
	LogLevel      string
	Version       string
	StorageDriver string

	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Auth     AuthConfig
	OTP      OTPConfig
	MSG91    MSG91Config
	RabbitMQ RabbitMQConfig
	Storage  StorageConfig
	CORS     CORSConfig
}

type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type AuthConfig struct {
	AdminJWTSecret string
	AdminTokenTTL  time.Duration
}

type OTPConfig struct {
	TTL               time.Duration
	ResendCooldown    time.Duration
	MaxVerifyAttempts int
	BcryptCost        int
}

type MSG91Config struct {
	BaseURL    string
	AuthKey    string
	TemplateID string
	Timeout    time.Duration
}

type RabbitMQConfig struct {
	Host     string
	Port     int
	User     string
	Password string
}

// Enabled reports whether the OTP fallback channel should go through the queue.
func (c RabbitMQConfig) Enabled() bool {
	return c.Host != ""
}

type StorageConfig struct {
	Endpoint        string
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
	PublicBaseURL   string
}

// Enabled reports whether CSV exports should be archived to object storage.
func (c StorageConfig) Enabled() bool {
	return c.Bucket != "" && c.AccessKeyID != "" && c.SecretAccessKey != ""
}

type CORSConfig struct {
	AllowedOrigins []string
}

// Load reads configuration from environment variables, loading a .env file first when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Environment:   getEnv("APP_ENV", "development"),
		LogLevel:      getEnv("LOG_LEVEL", ""),
		Version:       getEnv("APP_VERSION", "1.0.0"),
		StorageDriver: getEnv("STORAGE_DRIVER", "mysql"),
		Server: ServerConfig{
			Port:            getEnv("PORT", "5000"),
			ReadTimeout:     getDuration("SERVER_READ_TIMEOUT", 10*time.Second),
			WriteTimeout:    getDuration("SERVER_WRITE_TIMEOUT", 10*time.Second),
			IdleTimeout:     getDuration("SERVER_IDLE_TIMEOUT", 120*time.Second),
			ShutdownTimeout: getDuration("SERVER_SHUTDOWN_TIMEOUT", 15*time.Second),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getInt("DB_PORT", 3306),
			User:            getEnv("DB_USER", "root"),
			Password:        getEnv("DB_PASSWORD", ""),
			Name:            getEnv("DB_NAME", "esports_tournament"),
			MaxOpenConns:    getInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getInt("DB_MAX_IDLE_CONNS", 25),
			ConnMaxLifetime: getDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getInt("REDIS_PORT", 6379),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getInt("REDIS_DB", 0),
		},
		Auth: AuthConfig{
			AdminJWTSecret: getEnv("ADMIN_JWT_SECRET", ""),
			AdminTokenTTL:  getDuration("ADMIN_TOKEN_TTL", 12*time.Hour),
		},
		OTP: OTPConfig{
			TTL:               getDuration("OTP_TTL", 5*time.Minute),
			ResendCooldown:    getDuration("OTP_RESEND_COOLDOWN", 30*time.Second),
			MaxVerifyAttempts: getInt("OTP_MAX_VERIFY_ATTEMPTS", 5),
			BcryptCost:        getInt("OTP_BCRYPT_COST", 10),
		},
		MSG91: MSG91Config{
			BaseURL:    getEnv("MSG91_BASE_URL", "https://control.msg91.com"),
			AuthKey:    getEnv("MSG91_AUTH_KEY", ""),
			TemplateID: getEnv("MSG91_TEMPLATE_ID", ""),
			Timeout:    getDuration("MSG91_TIMEOUT", 10*time.Second),
		},
		RabbitMQ: RabbitMQConfig{
			Host:     getEnv("RABBITMQ_HOST", ""),
			Port:     getInt("RABBITMQ_PORT", 5672),
			User:     getEnv("RABBITMQ_USER", "guest"),
			Password: getEnv("RABBITMQ_PASSWORD", "guest"),
		},
		Storage: StorageConfig{
			Endpoint:        getEnv("EXPORT_S3_ENDPOINT", ""),
			Region:          getEnv("EXPORT_S3_REGION", "auto"),
			AccessKeyID:     getEnv("EXPORT_S3_ACCESS_KEY_ID", ""),
			SecretAccessKey: getEnv("EXPORT_S3_SECRET_ACCESS_KEY", ""),
			Bucket:          getEnv("EXPORT_S3_BUCKET", ""),
			PublicBaseURL:   getEnv("EXPORT_S3_PUBLIC_BASE_URL", ""),
		},
		CORS: CORSConfig{
			AllowedOrigins: getList("FRONTEND_URL", []string{"*"}),
		},
	}
}

// GetDSN returns the MySQL data source name.
func (c *Config) GetDSN() string {
	mc := mysql.NewConfig()
	mc.User = c.Database.User
	mc.Passwd = c.Database.Password
	mc.Net = "tcp"
	mc.Addr = c.Database.Host + ":" + strconv.Itoa(c.Database.Port)
	mc.DBName = c.Database.Name
	mc.ParseTime = true
	mc.Loc = time.UTC
	return mc.FormatDSN()
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return v
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return v
}

func getList(key string, fallback []string) []string {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback
	}
	out := make([]string, 0)
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
