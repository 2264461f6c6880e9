package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	if err := c.normalizeCatalog(); err != nil {
		return err
	}
	c.normalizeTelegram()
	c.normalizeCommands()
	c.normalizeKeepAlive()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.DataDir) == "" {
		c.Paths.DataDir = defaultDataDir
	}
	if c.Paths.DataDir, err = expandPath(c.Paths.DataDir); err != nil {
		return fmt.Errorf("paths.data_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeCatalog() error {
	var err error
	if path := strings.TrimSpace(c.Catalog.StorePath); path != "" {
		if c.Catalog.StorePath, err = expandPath(path); err != nil {
			return fmt.Errorf("catalog.store_path: %w", err)
		}
	} else {
		c.Catalog.StorePath = ""
	}
	if path := strings.TrimSpace(c.Catalog.RawCSVPath); path != "" {
		if c.Catalog.RawCSVPath, err = expandPath(path); err != nil {
			return fmt.Errorf("catalog.raw_csv_path: %w", err)
		}
	} else {
		c.Catalog.RawCSVPath = ""
	}
	return nil
}

func (c *Config) normalizeTelegram() {
	if token, ok := os.LookupEnv("CINEBOB_TELEGRAM_TOKEN"); ok && strings.TrimSpace(token) != "" {
		c.Telegram.Token = token
	}
	c.Telegram.Token = strings.TrimSpace(c.Telegram.Token)
	c.Telegram.BaseURL = strings.TrimRight(strings.TrimSpace(c.Telegram.BaseURL), "/")
	if c.Telegram.BaseURL == "" {
		c.Telegram.BaseURL = defaultTelegramBaseURL
	}
	if c.Telegram.PollTimeout <= 0 {
		c.Telegram.PollTimeout = defaultPollTimeout
	}
	if c.Telegram.RequestTimeout <= 0 {
		c.Telegram.RequestTimeout = defaultRequestTimeout
	}
	// The HTTP timeout must outlive the long-poll window.
	if c.Telegram.RequestTimeout <= c.Telegram.PollTimeout {
		c.Telegram.RequestTimeout = c.Telegram.PollTimeout + 5
	}
}

func (c *Config) normalizeCommands() {
	if c.Commands.PopularCount <= 0 {
		c.Commands.PopularCount = defaultPopularCount
	}
	if c.Commands.PopularMax <= 0 {
		c.Commands.PopularMax = defaultPopularMax
	}
	if c.Commands.PopularCount > c.Commands.PopularMax {
		c.Commands.PopularCount = c.Commands.PopularMax
	}
}

func (c *Config) normalizeKeepAlive() {
	if strings.TrimSpace(c.KeepAlive.Bind) == "" {
		c.KeepAlive.Bind = defaultKeepAliveBind
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
