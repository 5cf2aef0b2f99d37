package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"gopkg.in/yaml.v3"
)

const defaultConfigPath = "config/config.yaml"

// Config объединяет все аспекты настройки приложения.
type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	Database DatabaseConfig `yaml:"database"`
	Timeouts TimeoutConfig  `yaml:"timeouts"`
	Logging  LoggingConfig  `yaml:"logging"`
	Swagger  SwaggerConfig  `yaml:"swagger"`
	Limits   LimitsConfig   `yaml:"limits"`
}

// HTTPConfig описывает HTTP-сервер.
type HTTPConfig struct {
	Port         string        `yaml:"port" env:"HTTP_PORT"`
	ReadTimeout  time.Duration `yaml:"read_timeout" env:"HTTP_READ_TIMEOUT"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"HTTP_WRITE_TIMEOUT"`
	IdleTimeout  time.Duration `yaml:"idle_timeout" env:"HTTP_IDLE_TIMEOUT"`
}

// DatabaseConfig описывает подключение к PostgreSQL, где хранятся колёса и история вращений.
type DatabaseConfig struct {
	URL             string        `yaml:"url" env:"DATABASE_URL"`
	MigrationsPath  string        `yaml:"migrations_path" env:"MIGRATIONS_PATH"`
	MaxConnections  int32         `yaml:"max_connections" env:"DB_MAX_CONNECTIONS"`
	MinConnections  int32         `yaml:"min_connections" env:"DB_MIN_CONNECTIONS"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DB_MAX_CONN_IDLE_TIME"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime" env:"DB_MAX_CONN_LIFETIME"`
}

// TimeoutConfig содержит таймауты разного уровня.
type TimeoutConfig struct {
	Operation time.Duration `yaml:"operation" env:"OPERATION_TIMEOUT"`
	Shutdown  time.Duration `yaml:"shutdown" env:"SHUTDOWN_TIMEOUT"`
}

// LoggingConfig описывает формат и место логов.
type LoggingConfig struct {
	Level  string `yaml:"level" env:"LOG_LEVEL"`
	Output string `yaml:"output" env:"LOG_OUTPUT"`
}

// SwaggerConfig задаёт путь до OpenAPI-спецификации.
type SwaggerConfig struct {
	SpecPath string `yaml:"spec_path" env:"SWAGGER_SPEC_PATH"`
}

// LimitsConfig ограничивает размер входных данных HTTP API.
type LimitsConfig struct {
	MaxItems      int `yaml:"max_items" env:"LIMIT_MAX_ITEMS"`
	MaxNameLength int `yaml:"max_name_length" env:"LIMIT_MAX_NAME_LENGTH"`
	MaxDiceCount  int `yaml:"max_dice_count" env:"LIMIT_MAX_DICE_COUNT"`
	HistoryLimit  int `yaml:"history_limit" env:"LIMIT_HISTORY"`
}

// MustLoad загружает конфигурацию из YAML + ENV и паникует при ошибке.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

// Load загружает конфигурацию, отдавая предпочтение пути из CONFIG_PATH.
func Load() (Config, error) {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = defaultConfigPath
	}

	cfg := Config{}
	if err := readYAML(path, &cfg); err != nil {
		return Config{}, err
	}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env vars: %w", err)
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func readYAML(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("config file %s not found", path)
		}
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("decode config yaml: %w", err)
	}
	return nil
}

// Normalize подставляет значения по умолчанию во все незаданные поля.
func (c *Config) Normalize() {
	c.HTTP.normalize()
	c.Database.normalize()
	c.Timeouts.normalize()
	c.Logging.normalize()
	c.Limits.normalize()
	setDefault(&c.Swagger.SpecPath, "openapi.yml")
}

// Validate проверяет значения, для которых нет разумного умолчания.
func (c *Config) Validate() error {
	var errs []error
	if c.Database.MinConnections < 0 || c.Database.MaxConnections < 0 {
		errs = append(errs, errors.New("database: connection counts must not be negative"))
	}
	if c.Database.MaxConnections > 0 && c.Database.MinConnections > c.Database.MaxConnections {
		errs = append(errs, fmt.Errorf("database: min_connections %d exceeds max_connections %d",
			c.Database.MinConnections, c.Database.MaxConnections))
	}
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("logging: unknown level %q", c.Logging.Level))
	}
	return errors.Join(errs...)
}

func (h *HTTPConfig) normalize() {
	setDefault(&h.Port, "8080")
	setPositive(&h.ReadTimeout, 5*time.Second)
	setPositive(&h.WriteTimeout, 5*time.Second)
	setPositive(&h.IdleTimeout, 5*time.Minute)
}

func (d *DatabaseConfig) normalize() {
	setDefault(&d.MigrationsPath, "migrations")
}

func (t *TimeoutConfig) normalize() {
	setPositive(&t.Operation, 10*time.Second)
	setPositive(&t.Shutdown, 10*time.Second)
}

func (l *LoggingConfig) normalize() {
	setDefault(&l.Level, "info")
	setDefault(&l.Output, "stdout")
}

func (l *LimitsConfig) normalize() {
	setPositive(&l.MaxItems, 1000)
	setPositive(&l.MaxNameLength, 200)
	setPositive(&l.MaxDiceCount, 100)
	setPositive(&l.HistoryLimit, 20)
}

func setDefault(v *string, def string) {
	if *v == "" {
		*v = def
	}
}

func setPositive[T int | time.Duration](v *T, def T) {
	if *v <= 0 {
		*v = def
	}
}
