package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config is built once in main and handed to every component that needs a
// piece of it. Nothing below main reads process environment directly.
type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
	JWT      JWTConfig
	SMTP     SMTPConfig
	Import   ImportConfig
}

type AppConfig struct {
	Env  string
	Port string
}

type DatabaseConfig struct {
	Host     string
	User     string
	Password string
	Name     string
	Port     string
	SSLMode  string
}

type RedisConfig struct {
	Addr string
}

type KafkaConfig struct {
	Broker  string
	GroupID string
}

type JWTConfig struct {
	Secret          string
	Issuer          string
	Audience        string
	ExpirationHours int
}

type SMTPConfig struct {
	Host      string
	Port      int
	User      string
	Password  string
	FromName  string
	FromEmail string
}

type ImportConfig struct {
	UploadDir string
}

func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Env:  getEnv("APP_ENV", "development"),
			Port: getEnv("PORT", "3000"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "talentoplus"),
			Port:     getEnv("DB_PORT", "5432"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			Addr: getEnv("REDIS_ADDR", "localhost:6379"),
		},
		Kafka: KafkaConfig{
			Broker:  getEnv("KAFKA_BROKER", "localhost:9092"),
			GroupID: getEnv("KAFKA_GROUP_ID", "talentoplus-notify"),
		},
		JWT: JWTConfig{
			Secret:          getEnv("JWT_SECRET", "DefaultSecretKey12345678901234567890"),
			Issuer:          getEnv("JWT_ISSUER", "TalentoPlusAPI"),
			Audience:        getEnv("JWT_AUDIENCE", "TalentoPlusClients"),
			ExpirationHours: getEnvInt("JWT_EXPIRATION_HOURS", 24),
		},
		SMTP: SMTPConfig{
			Host:      getEnv("SMTP_HOST", "smtp.gmail.com"),
			Port:      getEnvInt("SMTP_PORT", 587),
			User:      getEnv("SMTP_USER", ""),
			Password:  getEnv("SMTP_PASSWORD", ""),
			FromName:  getEnv("SMTP_FROM_NAME", "TalentoPlus S.A.S."),
			FromEmail: getEnv("SMTP_FROM_EMAIL", ""),
		},
		Import: ImportConfig{
			UploadDir: getEnv("UPLOAD_DIR", "uploads"),
		},
	}

	if cfg.JWT.ExpirationHours <= 0 {
		return nil, fmt.Errorf("JWT_EXPIRATION_HOURS must be positive")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
