package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeAnnotations()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.CatalogPath) == "" {
		c.Paths.CatalogPath = defaultCatalogPath
	}
	if c.Paths.CatalogPath, err = expandPath(c.Paths.CatalogPath); err != nil {
		return fmt.Errorf("paths.catalog_path: %w", err)
	}
	if strings.TrimSpace(c.Player.MpvSocket) != "" {
		if c.Player.MpvSocket, err = expandPath(c.Player.MpvSocket); err != nil {
			return fmt.Errorf("player.mpv_socket: %w", err)
		}
	}
	return nil
}

func (c *Config) normalizeAnnotations() {
	if strings.TrimSpace(c.Annotations.DefaultShotType) == "" {
		c.Annotations.DefaultShotType = defaultShotType
	}
	trimmed := make([]string, 0, len(c.Annotations.ShotTypes))
	for _, label := range c.Annotations.ShotTypes {
		if label = strings.TrimSpace(label); label != "" {
			trimmed = append(trimmed, label)
		}
	}
	if len(trimmed) == 0 {
		trimmed = defaultShotTypes()
	}
	c.Annotations.ShotTypes = trimmed
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
