package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-CateringService/internal/domain"
)

// Config конфигурация сервиса, загружаемая из config.toml
type Config struct {
	Server           ServerConfig  `toml:"server"`
	Logs             LogsConfig    `toml:"logs"`
	Metrics          MetricsConfig `toml:"metrics"`
	Database         DBConfig      `toml:"database"`
	CalendarService  ClientConfig  `toml:"calendar_service"`
	AffiliateService ClientConfig  `toml:"affiliate_service"`
	Booking          BookingConfig `toml:"booking"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int    `toml:"http_port"`
	ReadTimeout     int    `toml:"read_timeout"`
	WriteTimeout    int    `toml:"write_timeout"`
	IdleTimeout     int    `toml:"idle_timeout"`
	ShutdownTimeout int    `toml:"shutdown_timeout"`
	AdminToken      string `toml:"admin_token"`
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

// DBConfig настройки подключения к PostgreSQL (журнал решений о допуске)
type DBConfig struct {
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

// DSN возвращает строку подключения к PostgreSQL
func (c DBConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// ClientConfig настройки HTTP клиента внешнего сервиса
type ClientConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"`
}

// BookingConfig бизнес-параметры допуска бронирований
type BookingConfig struct {
	Timezone       string `toml:"timezone"`
	HoursStart     int    `toml:"hours_start"`
	HoursEnd       int    `toml:"hours_end"`
	MaxPerDay      int    `toml:"max_per_day"`
	MaxPerSlot     int    `toml:"max_per_slot"`
	PrepMinutes    int    `toml:"prep_minutes"`
	CleanupMinutes int    `toml:"cleanup_minutes"`

	// ServiceHours длительность живого обслуживания по пакетам, в часах.
	// Пустая таблица означает значения по умолчанию (small/medium/large).
	ServiceHours        map[string]float64 `toml:"service_hours"`
	DefaultServiceHours float64            `toml:"default_service_hours"`
}

// Load загружает и валидирует конфигурацию из toml файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if cfg.Server.HTTPPort == 0 {
		cfg.Server.HTTPPort = 8080
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
	if cfg.Booking.Timezone == "" {
		cfg.Booking.Timezone = "UTC"
	}

	if _, err := cfg.Booking.Policy(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Policy собирает иммутабельную domain.BookingPolicy из конфигурации.
// Незаданные поля откатываются к дефолтам domain пакета.
func (b BookingConfig) Policy() (domain.BookingPolicy, error) {
	loc, err := time.LoadLocation(b.Timezone)
	if err != nil {
		return domain.BookingPolicy{}, fmt.Errorf("config: invalid timezone %q: %w", b.Timezone, err)
	}

	policy := domain.DefaultPolicy(loc)

	if b.HoursStart != 0 || b.HoursEnd != 0 {
		if b.HoursStart < 0 || b.HoursEnd > 24 || b.HoursStart >= b.HoursEnd {
			return domain.BookingPolicy{}, fmt.Errorf("config: invalid business hours [%d, %d)", b.HoursStart, b.HoursEnd)
		}
		policy.HoursStart = b.HoursStart
		policy.HoursEnd = b.HoursEnd
	}

	if b.MaxPerDay > 0 {
		policy.MaxPerDay = b.MaxPerDay
	}
	if b.MaxPerSlot > 0 {
		policy.MaxPerSlot = b.MaxPerSlot
	}
	if b.PrepMinutes > 0 {
		policy.PrepDuration = time.Duration(b.PrepMinutes) * time.Minute
	}
	if b.CleanupMinutes > 0 {
		policy.CleanupDuration = time.Duration(b.CleanupMinutes) * time.Minute
	}

	if len(b.ServiceHours) > 0 {
		durations := make(map[domain.PackageCode]time.Duration, len(b.ServiceHours))
		for code, hours := range b.ServiceHours {
			if hours <= 0 {
				return domain.BookingPolicy{}, fmt.Errorf("config: invalid service_hours for package %q: %v", code, hours)
			}
			durations[domain.PackageCode(code)] = time.Duration(hours * float64(time.Hour))
		}
		policy.ServiceDurations = durations
	}

	if b.DefaultServiceHours > 0 {
		policy.DefaultServicePeriod = time.Duration(b.DefaultServiceHours * float64(time.Hour))
	}

	return policy, nil
}
