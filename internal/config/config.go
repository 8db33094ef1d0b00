package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-RoomReservationService/internal/domain"
)

// Config конфигурация сервиса, загружается из TOML файла
type Config struct {
	Server      ServerConfig   `toml:"server"`
	Database    DatabaseConfig `toml:"database"`
	Logs        LogsConfig     `toml:"logs"`
	Metrics     MetricsConfig  `toml:"metrics"`
	DefaultPool string         `toml:"default_pool"`
	Pools       []PoolConfig   `toml:"pools"`
}

// ServerConfig настройки HTTP сервера, таймауты в секундах
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
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
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN собирает строку подключения к PostgreSQL
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// PoolConfig пул номеров: имя и ёмкость
type PoolConfig struct {
	Name     string `toml:"name"`
	Capacity int    `toml:"capacity"`
}

// Load читает и валидирует конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}

	if cfg.Server.HTTPPort == 0 {
		return nil, fmt.Errorf("config: server.http_port is required")
	}
	if cfg.Database.Host == "" || cfg.Database.DBName == "" {
		return nil, fmt.Errorf("config: database host and dbname are required")
	}
	if len(cfg.Pools) == 0 {
		return nil, fmt.Errorf("config: at least one [[pools]] entry is required")
	}

	return &cfg, nil
}

// PoolSet собирает доменный набор пулов из конфигурации
func (c *Config) PoolSet() (*domain.PoolSet, error) {
	pools := make([]domain.Pool, 0, len(c.Pools))
	for _, p := range c.Pools {
		pools = append(pools, domain.Pool{Name: p.Name, Capacity: p.Capacity})
	}
	return domain.NewPoolSet(pools, c.DefaultPool)
}
