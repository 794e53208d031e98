package config

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.PasswordHashCost < bcrypt.MinCost || c.Auth.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.password_hash_cost must be between %d and %d (got %d)",
			bcrypt.MinCost, bcrypt.MaxCost, c.Auth.PasswordHashCost)
	}
	if c.Auth.PasswordMinLength < 6 {
		return fmt.Errorf("auth.password_min_length must be >= 6 (got %d)", c.Auth.PasswordMinLength)
	}

	if err := c.Election.validate(); err != nil {
		return fmt.Errorf("election: %w", err)
	}

	switch c.Mail.Driver {
	case "log":
	case "smtp":
		if c.Mail.Host == "" {
			return fmt.Errorf("mail.host is required for the smtp driver")
		}
	default:
		return fmt.Errorf("mail.driver must be log or smtp (got %q)", c.Mail.Driver)
	}

	if c.Realtime.ReconnectBase <= 0 || c.Realtime.ReconnectMax < c.Realtime.ReconnectBase {
		return fmt.Errorf("realtime: reconnect_base must be > 0 and <= reconnect_max")
	}

	return nil
}

func (e *ElectionConfig) validate() error {
	d := strings.TrimSpace(e.AllowedEmailDomain)
	if !strings.HasPrefix(d, "@") || len(d) < 4 || !strings.Contains(d[1:], ".") {
		return fmt.Errorf("allowed_email_domain must look like @example.org (got %q)", e.AllowedEmailDomain)
	}
	e.AllowedEmailDomain = strings.ToLower(d)
	e.AdminEmails = ParseList(e.AdminEmailsRaw)
	return nil
}

// ParseList splits a comma-separated list, trimming and lower-casing items.
// An empty string returns a nil slice.
func ParseList(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.ToLower(strings.TrimSpace(p))
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}
