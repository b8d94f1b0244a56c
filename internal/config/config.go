package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/aldnch/GolfTeeService/internal/domain"
	"github.com/aldnch/GolfTeeService/pkg/types"
)

// Config конфигурация сервиса, загружается из config.toml
type Config struct {
	Server        ServerConfig        `toml:"server"`
	Database      DatabaseConfig      `toml:"database"`
	Redis         RedisConfig         `toml:"redis"`
	Booking       BookingConfig       `toml:"booking"`
	MemberService MemberServiceConfig `toml:"member_service"`
	Metrics       MetricsConfig       `toml:"metrics"`
	Logs          LogsConfig          `toml:"logs"`
}

// ServerConfig настройки HTTP сервера
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
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN собирает строку подключения к PostgreSQL
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// RedisConfig настройки Redis для хранилища выбранных слотов
type RedisConfig struct {
	Addr                string `toml:"addr"`
	Password            string `toml:"password"`
	DB                  int    `toml:"db"`
	SelectionTTLMinutes int    `toml:"selection_ttl_minutes"`
}

// BookingConfig параметры слотовой сетки и окна бронирования
type BookingConfig struct {
	SlotCapacity           int    `toml:"slot_capacity"`
	SlotGranularityMinutes int    `toml:"slot_granularity_minutes"`
	WindowDays             int    `toml:"window_days"`
	OpenTime               string `toml:"open_time"`
	CloseTime              string `toml:"close_time"`
	Timezone               string `toml:"timezone"`
}

// Schedule собирает слотовую сетку из конфигурации
func (b *BookingConfig) Schedule() domain.SlotSchedule {
	return domain.SlotSchedule{
		Capacity:           b.SlotCapacity,
		GranularityMinutes: b.SlotGranularityMinutes,
		WindowDays:         b.WindowDays,
		OpenTime:           types.TimeString(b.OpenTime),
		CloseTime:          types.TimeString(b.CloseTime),
	}
}

// MemberServiceConfig настройки клиента сервиса участников клуба
type MemberServiceConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"`
}

// MetricsConfig настройки метрик Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// Load читает конфигурацию из TOML файла и подставляет дефолты
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	applyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Booking.SlotCapacity == 0 {
		cfg.Booking.SlotCapacity = domain.DefaultSlotCapacity
	}
	if cfg.Booking.SlotGranularityMinutes == 0 {
		cfg.Booking.SlotGranularityMinutes = domain.DefaultSlotGranularityMinutes
	}
	if cfg.Booking.WindowDays == 0 {
		cfg.Booking.WindowDays = domain.DefaultBookingWindowDays
	}
	if cfg.Booking.OpenTime == "" {
		cfg.Booking.OpenTime = domain.DefaultOpenTime
	}
	if cfg.Booking.CloseTime == "" {
		cfg.Booking.CloseTime = domain.DefaultCloseTime
	}
	if cfg.Booking.Timezone == "" {
		cfg.Booking.Timezone = domain.DefaultTimezone
	}
	if cfg.Redis.SelectionTTLMinutes == 0 {
		cfg.Redis.SelectionTTLMinutes = 120
	}
}

func validate(cfg *Config) error {
	if cfg.Server.HTTPPort <= 0 {
		return fmt.Errorf("config: server.http_port must be positive")
	}
	if cfg.Booking.SlotCapacity <= 0 {
		return fmt.Errorf("config: booking.slot_capacity must be positive")
	}
	if cfg.Booking.OpenTime >= cfg.Booking.CloseTime {
		return fmt.Errorf("config: booking.open_time must be before close_time")
	}
	return nil
}
