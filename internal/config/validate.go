package config

import (
	"fmt"
	"strings"
)

var (
	validLogLevels  = []string{"debug", "info", "warn", "error"}
	validLogFormats = []string{"json", "text"}
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be > 0 (got %s)", c.Auth.AccessTokenTTL)
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if c.Database.MinConns < 0 || c.Database.MaxConns <= 0 || c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database: need 0 <= min_conns <= max_conns and max_conns > 0 (got %d/%d)",
			c.Database.MinConns, c.Database.MaxConns)
	}

	if err := c.Log.validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}

	if err := c.Upload.validate(); err != nil {
		return fmt.Errorf("upload: %w", err)
	}

	return nil
}

func (l LogConfig) validate() error {
	if !oneOf(l.Level, validLogLevels) {
		return fmt.Errorf("level must be one of %s (got %q)", strings.Join(validLogLevels, ", "), l.Level)
	}
	if !oneOf(l.Format, validLogFormats) {
		return fmt.Errorf("format must be one of %s (got %q)", strings.Join(validLogFormats, ", "), l.Format)
	}
	return nil
}

func (u UploadConfig) validate() error {
	if u.MaxTextBytes <= 0 {
		return fmt.Errorf("max_text_bytes must be > 0 (got %d)", u.MaxTextBytes)
	}
	if u.MaxPDFBytes <= 0 {
		return fmt.Errorf("max_pdf_bytes must be > 0 (got %d)", u.MaxPDFBytes)
	}
	if u.MaxItemsPerBatch <= 0 {
		return fmt.Errorf("max_items_per_batch must be > 0 (got %d)", u.MaxItemsPerBatch)
	}
	if u.PerMinute <= 0 {
		return fmt.Errorf("per_minute must be > 0 (got %d)", u.PerMinute)
	}
	return nil
}

func oneOf(v string, allowed []string) bool {
	v = strings.ToLower(strings.TrimSpace(v))
	for _, a := range allowed {
		if v == a {
			return true
		}
	}
	return false
}
