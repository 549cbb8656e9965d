package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"auja/internal/domain"
)

const (
	defaultHTTPTimeout = 30 * time.Second
	defaultPageSize    = 50
)

type Config struct {
	JiraServer        string
	JiraTicketBaseURL string
	JiraUsername      string
	JiraPassword      string
	JiraProject       string

	SMTPHost     string
	SMTPPort     int
	rawSMTPPort  string
	SMTPUsername string
	SMTPPassword string
	Sender       string
	Recipients   []string
	CC           []string

	HTTPTimeout time.Duration
	PageSize    int
}

// Load reads settings from an optional .env file and the environment,
// then validates them. The returned Config is immutable; callers pass it
// down the pipeline instead of reaching for globals.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		JiraServer:        os.Getenv("JIRA_SERVER"),
		JiraTicketBaseURL: os.Getenv("JIRA_TICKET_BASE_URL"),
		JiraUsername:      os.Getenv("JIRA_USERNAME"),
		JiraPassword:      os.Getenv("JIRA_PASSWORD"),
		JiraProject:       os.Getenv("JIRA_PROJECT"),
		SMTPHost:          os.Getenv("SMTP_HOST"),
		rawSMTPPort:       os.Getenv("SMTP_PORT"),
		SMTPUsername:      os.Getenv("SMTP_USERNAME"),
		SMTPPassword:      os.Getenv("SMTP_PASSWORD"),
		Sender:            os.Getenv("EMAIL_SENDER"),
		Recipients:        splitList(os.Getenv("EMAIL_RECIPIENTS")),
		CC:                splitList(os.Getenv("EMAIL_CC")),
		HTTPTimeout:       defaultHTTPTimeout,
		PageSize:          defaultPageSize,
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	port, err := strconv.Atoi(cfg.rawSMTPPort)
	if err != nil || port <= 0 {
		return nil, fmt.Errorf("%w: SMTP_PORT must be a positive number", domain.ErrConfig)
	}
	cfg.SMTPPort = port

	return cfg, nil
}

// Validate checks required settings in a fixed order, connection section
// first, then delivery, so the first key reported is deterministic.
func (c *Config) Validate() error {
	required := []struct {
		key   string
		value string
	}{
		{"JIRA_SERVER", c.JiraServer},
		{"JIRA_TICKET_BASE_URL", c.JiraTicketBaseURL},
		{"JIRA_USERNAME", c.JiraUsername},
		{"JIRA_PASSWORD", c.JiraPassword},
		{"JIRA_PROJECT", c.JiraProject},
		{"SMTP_HOST", c.SMTPHost},
		{"SMTP_PORT", c.rawSMTPPort},
		{"SMTP_USERNAME", c.SMTPUsername},
		{"SMTP_PASSWORD", c.SMTPPassword},
		{"EMAIL_SENDER", c.Sender},
	}

	for _, r := range required {
		if r.value == "" {
			return fmt.Errorf("%w: missing required setting: %s", domain.ErrConfig, r.key)
		}
	}

	if len(c.Recipients) == 0 {
		return fmt.Errorf("%w: missing required setting: EMAIL_RECIPIENTS", domain.ErrConfig)
	}
	return nil
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
