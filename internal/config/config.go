package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/diegoclair/report-relay-bot/internal/domain"
	"github.com/diegoclair/report-relay-bot/internal/domain/entity"
	"github.com/hashicorp/go-multierror"
)

const (
	PlatformTelegram = "telegram"
	PlatformSlack    = "slack"
)

type Config struct {
	Platform string `env:"PLATFORM" envDefault:"telegram"`
	ChatID   string `env:"CHAT_ID"`

	TelegramBotToken   string `env:"TELEGRAM_BOT_TOKEN"`
	SlackBotToken      string `env:"SLACK_BOT_TOKEN"`
	SlackSigningSecret string `env:"SLACK_SIGNING_SECRET"`

	Timezone     string `env:"TIMEZONE" envDefault:"Europe/Moscow"`
	ScheduleTime string `env:"SCHEDULE_TIME" envDefault:"10:00"`
	ScheduleDays string `env:"SCHEDULE_DAYS" envDefault:"1,2,3,4,5"`

	ReportCommand   string        `env:"REPORT_COMMAND" envDefault:"python3 bot.py"`
	ReportWorkdir   string        `env:"REPORT_WORKDIR" envDefault:"bot"`
	DispatchTimeout time.Duration `env:"DISPATCH_TIMEOUT" envDefault:"60s"`

	// An explicitly empty DATABASE_PATH keeps the ledger in memory only.
	DatabasePath string `env:"DATABASE_PATH" envDefault:"./relay.db"`
	Port         string `env:"PORT" envDefault:"3000"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`
	LogFile   string `env:"LOG_FILE"`
}

// Load reads the environment (after godotenv has populated it) and validates it.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	cfg.Platform = strings.ToLower(strings.TrimSpace(cfg.Platform))
	cfg.ChatID = strings.TrimSpace(cfg.ChatID)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate reports every problem at once instead of stopping at the first one.
func (c *Config) Validate() error {
	var result *multierror.Error

	if c.ChatID == "" {
		result = multierror.Append(result, fmt.Errorf("CHAT_ID is not set"))
	}

	switch c.Platform {
	case PlatformTelegram:
		if c.TelegramBotToken == "" {
			result = multierror.Append(result, fmt.Errorf("TELEGRAM_BOT_TOKEN is not set"))
		}
	case PlatformSlack:
		if c.SlackBotToken == "" {
			result = multierror.Append(result, fmt.Errorf("SLACK_BOT_TOKEN is not set"))
		}
		if c.SlackSigningSecret == "" {
			result = multierror.Append(result, fmt.Errorf("SLACK_SIGNING_SECRET is not set"))
		}
	default:
		result = multierror.Append(result, fmt.Errorf("PLATFORM %q is not supported, use %s or %s", c.Platform, PlatformTelegram, PlatformSlack))
	}

	if _, err := time.LoadLocation(c.Timezone); err != nil {
		result = multierror.Append(result, fmt.Errorf("TIMEZONE %q is invalid: %w", c.Timezone, err))
	}

	if _, _, err := ParseTime(c.ScheduleTime); err != nil {
		result = multierror.Append(result, fmt.Errorf("SCHEDULE_TIME: %w", err))
	}

	if _, err := ParseDays(c.ScheduleDays); err != nil {
		result = multierror.Append(result, fmt.Errorf("SCHEDULE_DAYS: %w", err))
	}

	if len(c.ReportArgs()) == 0 {
		result = multierror.Append(result, fmt.Errorf("REPORT_COMMAND is empty"))
	}

	if c.DispatchTimeout <= 0 {
		result = multierror.Append(result, fmt.Errorf("DISPATCH_TIMEOUT must be positive, got %s", c.DispatchTimeout))
	}

	return result.ErrorOrNil()
}

// Schedule builds the validated schedule. Call it after Validate.
func (c *Config) Schedule() (entity.ScheduleSpec, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return entity.ScheduleSpec{}, fmt.Errorf("invalid timezone: %w", err)
	}

	hour, minute, err := ParseTime(c.ScheduleTime)
	if err != nil {
		return entity.ScheduleSpec{}, err
	}

	weekdays, err := ParseDays(c.ScheduleDays)
	if err != nil {
		return entity.ScheduleSpec{}, err
	}

	return entity.ScheduleSpec{
		Weekdays: weekdays,
		Hour:     hour,
		Minute:   minute,
		Location: loc,
	}, nil
}

// ReportArgs splits REPORT_COMMAND on whitespace. Quoting is not supported.
func (c *Config) ReportArgs() []string {
	return strings.Fields(c.ReportCommand)
}

// ParseTime validates an HH:MM time string.
func ParseTime(value string) (hour, minute int, err error) {
	parts := strings.Split(strings.TrimSpace(value), ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid time %q, use HH:MM", value)
	}

	hour, err = strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("invalid hour in %q", value)
	}

	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 || len(parts[1]) != 2 {
		return 0, 0, fmt.Errorf("invalid minute in %q", value)
	}

	return hour, minute, nil
}

// ParseDays reads a comma separated list of ISO weekdays (1=Monday ... 7=Sunday).
func ParseDays(value string) ([]time.Weekday, error) {
	seen := make(map[int]bool)
	var weekdays []time.Weekday

	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		day, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid day %q", part)
		}

		weekday, ok := domain.ToWeekday(day)
		if !ok {
			return nil, fmt.Errorf("day %d is out of range 1-7", day)
		}

		if seen[day] {
			continue
		}
		seen[day] = true
		weekdays = append(weekdays, weekday)
	}

	if len(weekdays) == 0 {
		return nil, fmt.Errorf("at least one day is required")
	}

	return weekdays, nil
}
