package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config корневая конфигурация сервиса, загружается из config.toml
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Database  DatabaseConfig  `toml:"database"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Auth      AuthConfig      `toml:"auth"`
	Notifier  NotifierConfig  `toml:"notifier"`
	Mailer    MailerConfig    `toml:"mailer"`
	Reminders RemindersConfig `toml:"reminders"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // seconds
	WriteTimeout    int `toml:"write_timeout"`    // seconds
	IdleTimeout     int `toml:"idle_timeout"`     // seconds
	ShutdownTimeout int `toml:"shutdown_timeout"` // seconds
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // seconds
}

// DSN собирает строку подключения lib/pq.
// Пароль можно переопределить переменной окружения DB_PASSWORD (.env).
func (c DatabaseConfig) DSN() string {
	password := c.Password
	if env := os.Getenv("DB_PASSWORD"); env != "" {
		password = env
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, password, c.DBName, c.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// AuthConfig настройки выдачи и проверки JWT.
// Секрет можно переопределить переменной окружения JWT_SECRET (.env).
type AuthConfig struct {
	JWTSecret     string `toml:"jwt_secret"`
	TokenTTLHours int    `toml:"token_ttl_hours"`
}

// Secret возвращает действующий секрет подписи токенов
func (c AuthConfig) Secret() string {
	if env := os.Getenv("JWT_SECRET"); env != "" {
		return env
	}
	return c.JWTSecret
}

// NotifierConfig настройки webhook-уведомлений о подтверждении брони
type NotifierConfig struct {
	WebhookURL string `toml:"webhook_url"`
	Timeout    int    `toml:"timeout"` // seconds
}

// MailerConfig настройки отправки писем через SendGrid.
// API-ключ можно переопределить переменной окружения SENDGRID_API_KEY (.env).
type MailerConfig struct {
	APIKey    string `toml:"api_key"`
	FromEmail string `toml:"from_email"`
	FromName  string `toml:"from_name"`
}

// Key возвращает действующий API-ключ SendGrid
func (c MailerConfig) Key() string {
	if env := os.Getenv("SENDGRID_API_KEY"); env != "" {
		return env
	}
	return c.APIKey
}

// RemindersConfig настройки cron-задачи напоминаний о записи
type RemindersConfig struct {
	Enabled  bool   `toml:"enabled"`
	Schedule string `toml:"schedule"` // cron spec, например "0 9 * * *"
}

// Load читает и валидирует конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if cfg.Server.HTTPPort == 0 {
		cfg.Server.HTTPPort = 8080
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 10
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Metrics.Enabled && cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
	if cfg.Auth.TokenTTLHours == 0 {
		cfg.Auth.TokenTTLHours = 24
	}
	if cfg.Auth.Secret() == "" {
		return nil, fmt.Errorf("config: auth.jwt_secret is required (or JWT_SECRET env)")
	}
	if cfg.Reminders.Enabled && cfg.Reminders.Schedule == "" {
		cfg.Reminders.Schedule = "0 9 * * *"
	}

	return &cfg, nil
}
