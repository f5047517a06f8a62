package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	GRPC     GRPCConfig     `yaml:"grpc"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	Kafka    KafkaConfig    `yaml:"kafka"`
	Booking  BookingConfig  `yaml:"booking"`
	Worker   WorkerConfig   `yaml:"worker"`
	Log      LogConfig      `yaml:"log"`
}

type HTTPConfig struct {
	Address    string `yaml:"address"`
	SwaggerDir string `yaml:"swagger_dir"`
}

type GRPCConfig struct {
	Address string `yaml:"address"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	SSLMode  string `yaml:"ssl_mode"`
	Migrate  bool   `yaml:"migrate"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s", d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

// RedisConfig with an empty Addr disables the flight cache and the distributed lock.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

func (r RedisConfig) Enabled() bool { return r.Addr != "" }

// KafkaConfig with no brokers disables booking events.
type KafkaConfig struct {
	Brokers            []string `yaml:"brokers"`
	BookingEventsTopic string   `yaml:"booking_events_topic"`
	GroupID            string   `yaml:"group_id"`
}

func (k KafkaConfig) Enabled() bool { return len(k.Brokers) > 0 && k.BookingEventsTopic != "" }

type BookingConfig struct {
	BusinessSharePercent int  `yaml:"business_share_percent"`
	SeatsPerRow          int  `yaml:"seats_per_row"`
	FlightsCacheTTL      int  `yaml:"flights_cache_ttl_seconds"`
	DistributedLock      bool `yaml:"distributed_lock"`
	LockTTLSeconds       int  `yaml:"lock_ttl_seconds"`
	LockRetries          int  `yaml:"lock_retries"`
	LockRetryDelayMS     int  `yaml:"lock_retry_delay_ms"`
}

func (b BookingConfig) CacheTTL() time.Duration {
	return time.Duration(b.FlightsCacheTTL) * time.Second
}

func (b BookingConfig) LockTTL() time.Duration {
	return time.Duration(b.LockTTLSeconds) * time.Second
}

func (b BookingConfig) LockRetryDelay() time.Duration {
	return time.Duration(b.LockRetryDelayMS) * time.Millisecond
}

type WorkerConfig struct {
	AuditIntervalMinutes int `yaml:"audit_interval_minutes"`
}

func (w WorkerConfig) AuditInterval() time.Duration {
	return time.Duration(w.AuditIntervalMinutes) * time.Minute
}

type LogConfig struct {
	Env string `yaml:"env"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Config, error) {
	cfg := Defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.fill()
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Defaults is also the base Parse decodes onto, so keys absent from the file keep these
// values while an explicit business_share_percent of 0 gives an all-economy cabin.
func Defaults() *Config {
	cfg := &Config{Booking: BookingConfig{BusinessSharePercent: 20}}
	cfg.fill()
	return cfg
}

// fill replaces zero values with defaults.
func (c *Config) fill() {
	if c.HTTP.Address == "" {
		c.HTTP.Address = ":8080"
	}
	if c.GRPC.Address == "" {
		c.GRPC.Address = ":9090"
	}
	if c.Database.Port == 0 {
		c.Database.Port = 5432
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Booking.SeatsPerRow == 0 {
		c.Booking.SeatsPerRow = 6
	}
	if c.Booking.FlightsCacheTTL == 0 {
		c.Booking.FlightsCacheTTL = 60
	}
	if c.Booking.LockTTLSeconds == 0 {
		c.Booking.LockTTLSeconds = 10
	}
	if c.Booking.LockRetries == 0 {
		c.Booking.LockRetries = 50
	}
	if c.Booking.LockRetryDelayMS == 0 {
		c.Booking.LockRetryDelayMS = 20
	}
	if c.Worker.AuditIntervalMinutes == 0 {
		c.Worker.AuditIntervalMinutes = 10
	}
	if c.Log.Env == "" {
		c.Log.Env = "development"
	}
}

func (c *Config) validate() error {
	switch {
	case c.Booking.BusinessSharePercent < 0 || c.Booking.BusinessSharePercent > 100:
		return fmt.Errorf("booking.business_share_percent must be within 0..100, got %d", c.Booking.BusinessSharePercent)
	case c.Booking.SeatsPerRow < 0:
		return fmt.Errorf("booking.seats_per_row must be positive, got %d", c.Booking.SeatsPerRow)
	case c.Booking.LockTTLSeconds < 0, c.Booking.LockRetries < 0, c.Booking.LockRetryDelayMS < 0:
		return fmt.Errorf("booking lock settings must not be negative")
	case c.Worker.AuditIntervalMinutes <= 0:
		return fmt.Errorf("worker.audit_interval_minutes must be positive, got %d", c.Worker.AuditIntervalMinutes)
	}
	return nil
}
