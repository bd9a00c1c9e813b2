package config

import (
	"dealership/cmd/internal/domain"
	"dealership/cmd/internal/schedule"
	"errors"
	"fmt"
	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Server     ServerConfig     `toml:"server"`
	Database   DatabaseConfig   `toml:"database"`
	Logs       LogsConfig       `toml:"logs"`
	Calendar   CalendarConfig   `toml:"calendar"`
	Dealership DealershipConfig `toml:"dealership"`
	Metrics    MetricsConfig    `toml:"metrics"`
}

type ServerConfig struct {
	Addr            string  `toml:"addr" validate:"required"`
	CORSOrigin      string  `toml:"cors_origin" validate:"required"`
	RateLimit       float64 `toml:"rate_limit" validate:"gte=0"` // requests per second per client, 0 disables
	ShutdownTimeout int     `toml:"shutdown_timeout" validate:"gt=0"`
}

type DatabaseConfig struct {
	DSN string `toml:"dsn" validate:"required"`
}

type LogsConfig struct {
	Level string `toml:"level" validate:"oneof=DEBUG INFO WARN ERROR OFF"`
}

type CalendarConfig struct {
	WeekStart string `toml:"week_start" validate:"required,datetime=2006-01-02"`
	Days      int    `toml:"days" validate:"gte=1,lte=31"`
	FirstHour int    `toml:"first_hour" validate:"gte=0,lte=23"`
	HourSlots int    `toml:"hour_slots" validate:"gte=1,lte=24"`
}

type DealershipConfig struct {
	Salesmen   []string `toml:"salesmen" validate:"required,min=1,dive,required"`
	DefaultAPR float64  `toml:"default_apr" validate:"gte=0"`
}

type MetricsConfig struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path" validate:"required_if=Enabled true"`
}

// Default is the fixed week, roster and APR the dealership runs with.
func Default() Config {
	week := schedule.DefaultWeek()
	return Config{
		Server: ServerConfig{
			Addr:            ":6060",
			CORSOrigin:      "*",
			RateLimit:       20,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{DSN: ":memory:"},
		Logs:     LogsConfig{Level: "INFO"},
		Calendar: CalendarConfig{
			WeekStart: week.Start.Format(schedule.DateLayout),
			Days:      week.Length,
			FirstHour: week.FirstHour,
			HourSlots: week.HourSlots,
		},
		Dealership: DealershipConfig{
			Salesmen:   append([]string(nil), domain.DefaultSalesmen...),
			DefaultAPR: domain.DefaultAPRPercent,
		},
		Metrics: MetricsConfig{Enabled: true, Path: "/metrics"},
	}
}

// LoadEnvFiles loads the given dotenv files into the process environment.
// Files that do not exist are skipped; variables already set are kept.
func LoadEnvFiles(files ...string) error {
	var present []string
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			present = append(present, f)
		}
	}
	if len(present) == 0 {
		return nil
	}
	return godotenv.Load(present...)
}

// Load builds the configuration from defaults, the optional TOML file at path,
// and the process environment, in that order of precedence (last wins).
func Load(path string) (*Config, error) {
	return LoadWithLookup(path, os.LookupEnv)
}

// LoadWithLookup is Load with a custom environment source.
func LoadWithLookup(path string, lookup func(string) (string, bool)) (*Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	if err := applyEnv(&cfg, lookup); err != nil {
		return nil, err
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if _, err := cfg.Week(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

// Week is the scheduling calendar described by the configuration.
func (c *Config) Week() (schedule.Week, error) {
	start, err := time.Parse(schedule.DateLayout, c.Calendar.WeekStart)
	if err != nil {
		return schedule.Week{}, err
	}
	return schedule.NewWeek(start, c.Calendar.Days, c.Calendar.FirstHour, c.Calendar.HourSlots)
}

func (c *Config) ShutdownTimeout() time.Duration {
	return time.Duration(c.Server.ShutdownTimeout) * time.Second
}

func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}
	var errs []error
	integer := func(key string, dst *int) {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			n, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil {
				errs = append(errs, fmt.Errorf("config: %s: %w", key, err))
				return
			}
			*dst = n
		}
	}
	float := func(key string, dst *float64) {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
			if err != nil {
				errs = append(errs, fmt.Errorf("config: %s: %w", key, err))
				return
			}
			*dst = f
		}
	}
	boolean := func(key string, dst *bool) {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			b, err := strconv.ParseBool(strings.TrimSpace(v))
			if err != nil {
				errs = append(errs, fmt.Errorf("config: %s: %w", key, err))
				return
			}
			*dst = b
		}
	}

	str("SERVER_ADDR", &cfg.Server.Addr)
	str("CORS_ORIGIN", &cfg.Server.CORSOrigin)
	float("RATE_LIMIT", &cfg.Server.RateLimit)
	integer("SHUTDOWN_TIMEOUT", &cfg.Server.ShutdownTimeout)
	str("DATABASE_DSN", &cfg.Database.DSN)
	str("LOG_LEVEL", &cfg.Logs.Level)
	str("WEEK_START", &cfg.Calendar.WeekStart)
	integer("WEEK_DAYS", &cfg.Calendar.Days)
	integer("FIRST_HOUR", &cfg.Calendar.FirstHour)
	integer("HOUR_SLOTS", &cfg.Calendar.HourSlots)
	float("DEFAULT_APR", &cfg.Dealership.DefaultAPR)
	boolean("METRICS_ENABLED", &cfg.Metrics.Enabled)
	str("METRICS_PATH", &cfg.Metrics.Path)

	if v, ok := lookup("SALESMEN"); ok && strings.TrimSpace(v) != "" {
		var roster []string
		for _, name := range strings.Split(v, ",") {
			if name = strings.TrimSpace(name); name != "" {
				roster = append(roster, name)
			}
		}
		cfg.Dealership.Salesmen = roster
	}

	cfg.Logs.Level = strings.ToUpper(cfg.Logs.Level)
	return errors.Join(errs...)
}
