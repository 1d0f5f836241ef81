package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/diegoclair/slack-birthday-bot/internal/domain"
	"github.com/diegoclair/slack-birthday-bot/internal/domain/event"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

// Config is read from the environment. Variable names are unprefixed.
type Config struct {
	SlackBotToken      string `envconfig:"SLACK_BOT_TOKEN"`
	SlackSigningSecret string `envconfig:"SLACK_SIGNING_SECRET"`
	DatabasePath       string `envconfig:"DATABASE_PATH" default:"./birthday.db"`
	Port               string `envconfig:"PORT" default:"3000"`
	LogLevel           string `envconfig:"LOG_LEVEL" default:"info"`
	Language           string `envconfig:"LANGUAGE" default:"en"`
	Timezone           string `envconfig:"TIMEZONE" default:"Local"`
	CalendarToken      string `envconfig:"CALENDAR_TOKEN"`

	// Tenor GIF provider
	TenorAPIKey        string        `envconfig:"TENOR_API_KEY"`
	TenorBaseURL       string        `envconfig:"TENOR_BASE_URL" default:"https://api.tenor.com/v1"`
	TenorBlacklist     []string      `envconfig:"TENOR_BLACKLIST" default:"641ee5344bdc3f9f4d3ef52344dfe6bd"`
	TenorImgLimit      int           `envconfig:"TENOR_IMG_LIMIT" default:"50"`
	TenorSearchTerm    string        `envconfig:"TENOR_SEARCH_TERM"`
	TenorRetryAttempts int           `envconfig:"TENOR_RETRY_ATTEMPTS" default:"60"`
	TenorRetryDelay    time.Duration `envconfig:"TENOR_RETRY_DELAY" default:"1s"`

	// Schedules
	HappyReminderSchedule   string `envconfig:"HAPPY_REMINDER_SCHEDULER" default:"0 0 7 * * *"`
	AdvanceReminderSchedule string `envconfig:"ADVANCE_REMINDER_SCHEDULER" default:"0 0 7 * * *"`
	DaysInAdvance           int    `envconfig:"NUMBER_OF_DAYS_IN_ADVANCE" default:"7"`
	AnnouncementBeforeMode  string `envconfig:"BIRTHDAY_ANNOUNCEMENT_BEFORE_MODE" default:"days"`

	// Birthday channels and surveys
	ChannelMessage          string   `envconfig:"BIRTHDAY_CHANNEL_MESSAGE"`
	ChannelBlacklist        []string `envconfig:"BIRTHDAY_CHANNEL_BLACKLIST"`
	ChannelTTLDays          int      `envconfig:"BIRTHDAY_CHANNEL_TTL" default:"3"`
	CreateBirthdayChannels  bool     `envconfig:"CREATE_BIRTHDAY_CHANNELS" default:"false"`
	CreatePitchingInSurveys bool     `envconfig:"CREATE_PITCHING_IN_SURVEYS" default:"false"`

	CompanyName    string `envconfig:"COMPANY_NAME" default:"WIS Software"`
	LoggingChannel string `envconfig:"BIRTHDAY_LOGGING_CHANNEL" default:"hr"`
	GeneralChannel string `envconfig:"GENERAL_CHANNEL" default:"general"`
}

// Load parses the environment. It only fails on values of the wrong type;
// semantic problems are reported by Validate.
func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}

	log.Info().
		Str("database_path", cfg.DatabasePath).
		Str("port", cfg.Port).
		Str("language", cfg.Language).
		Str("timezone", cfg.Timezone).
		Str("happy_schedule", cfg.HappyReminderSchedule).
		Str("advance_schedule", cfg.AdvanceReminderSchedule).
		Int("days_in_advance", cfg.DaysInAdvance).
		Str("announcement_mode", cfg.AnnouncementBeforeMode).
		Bool("birthday_channels", cfg.CreateBirthdayChannels).
		Bool("pitching_in_surveys", cfg.CreatePitchingInSurveys).
		Bool("tenor_key_present", cfg.TenorAPIKey != "").
		Bool("calendar_enabled", cfg.CalendarToken != "").
		Msg("Configuration loaded")

	return &cfg, nil
}

// Validate reports every configuration problem at once.
func (c *Config) Validate() error {
	var errs []error

	if c.TenorAPIKey == "" {
		errs = append(errs, errors.New("TENOR_API_KEY is not specified"))
	}
	if c.SlackBotToken == "" {
		errs = append(errs, errors.New("SLACK_BOT_TOKEN is not specified"))
	}
	if c.SlackSigningSecret == "" {
		errs = append(errs, errors.New("SLACK_SIGNING_SECRET is not specified"))
	}
	if _, err := c.ReminderWindow(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.Location(); err != nil {
		errs = append(errs, err)
	}
	if c.ChannelTTLDays < 0 {
		errs = append(errs, fmt.Errorf("BIRTHDAY_CHANNEL_TTL must not be negative, got %d", c.ChannelTTLDays))
	}
	if c.TenorRetryAttempts < 1 {
		errs = append(errs, fmt.Errorf("TENOR_RETRY_ATTEMPTS must be positive, got %d", c.TenorRetryAttempts))
	}

	return errors.Join(errs...)
}

// ReminderWindow combines NUMBER_OF_DAYS_IN_ADVANCE with its unit.
func (c *Config) ReminderWindow() (event.Window, error) {
	unit, err := event.ParseUnit(c.AnnouncementBeforeMode)
	if err != nil {
		return event.Window{}, fmt.Errorf("BIRTHDAY_ANNOUNCEMENT_BEFORE_MODE: %w", err)
	}
	if c.DaysInAdvance < 1 {
		return event.Window{}, fmt.Errorf("NUMBER_OF_DAYS_IN_ADVANCE must be positive, got %d", c.DaysInAdvance)
	}

	return event.Window{Amount: c.DaysInAdvance, Unit: unit}, nil
}

// Location resolves TIMEZONE, "Local" being the host zone.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("TIMEZONE: %w", err)
	}
	return loc, nil
}

// ChannelTemplates splits BIRTHDAY_CHANNEL_MESSAGE on "|".
func (c *Config) ChannelTemplates() []string {
	var templates []string
	for _, template := range strings.Split(c.ChannelMessage, "|") {
		if template = strings.TrimSpace(template); template != "" {
			templates = append(templates, template)
		}
	}

	if len(templates) == 0 {
		return []string{domain.DefaultChannelMessage}
	}
	return templates
}

// TenorSearchTerms splits TENOR_SEARCH_TERM on commas.
func (c *Config) TenorSearchTerms() []string {
	raw := c.TenorSearchTerm
	if strings.TrimSpace(raw) == "" {
		raw = domain.DefaultTenorSearchTerms
	}

	var terms []string
	for _, term := range strings.Split(raw, ",") {
		if term = strings.TrimSpace(term); term != "" {
			terms = append(terms, term)
		}
	}
	return terms
}

// SameSchedule reports whether both reminders fire on the same cron expression.
func (c *Config) SameSchedule() bool {
	return strings.TrimSpace(c.HappyReminderSchedule) == strings.TrimSpace(c.AdvanceReminderSchedule)
}
