package config

import (
	"errors"
	"fmt"
	"net"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateTelegram(); err != nil {
		return err
	}
	if err := c.validateCommands(); err != nil {
		return err
	}
	if err := c.validateKeepAlive(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateTelegram() error {
	token := strings.TrimSpace(c.Telegram.Token)
	if token == "" {
		// The CLI can run dataset and local ask commands without a token;
		// the daemon re-checks before connecting.
		return nil
	}
	parts := strings.Split(token, ":")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return errors.New("telegram.token must look like <bot id>:<secret>")
	}
	return nil
}

// RequireTelegramToken reports an actionable error when no token is set.
func (c *Config) RequireTelegramToken() error {
	if strings.TrimSpace(c.Telegram.Token) != "" {
		return nil
	}
	defaultPath, err := DefaultConfigPath()
	if err != nil {
		defaultPath = "~/.config/cinebob/config.toml"
	}
	return fmt.Errorf("telegram.token is required. Set CINEBOB_TELEGRAM_TOKEN env var or edit %s (create with 'cinebob config init')", defaultPath)
}

func (c *Config) validateCommands() error {
	if c.Commands.PopularCount <= 0 {
		return errors.New("commands.popular_count must be positive")
	}
	if c.Commands.PopularMax < c.Commands.PopularCount {
		return errors.New("commands.popular_max must be at least commands.popular_count")
	}
	return nil
}

func (c *Config) validateKeepAlive() error {
	if !c.KeepAlive.Enabled {
		return nil
	}
	if _, _, err := net.SplitHostPort(c.KeepAlive.Bind); err != nil {
		return fmt.Errorf("keepalive.bind: %w", err)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
