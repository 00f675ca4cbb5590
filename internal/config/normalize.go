package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeFiles()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if c.Paths.DataDir, err = expandPath(c.Paths.DataDir); err != nil {
		return fmt.Errorf("paths.data_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	for i, dir := range c.Paths.RecordingDirs {
		if c.Paths.RecordingDirs[i], err = expandPath(dir); err != nil {
			return fmt.Errorf("paths.recording_dirs[%d]: %w", i, err)
		}
	}
	for i, dir := range c.Paths.DownloadDirs {
		if c.Paths.DownloadDirs[i], err = expandPath(dir); err != nil {
			return fmt.Errorf("paths.download_dirs[%d]: %w", i, err)
		}
	}
	return nil
}

func (c *Config) normalizeFiles() {
	if strings.TrimSpace(c.Files.VideoExtension) == "" {
		c.Files.VideoExtension = defaultVideoExtension
	}
	if strings.TrimSpace(c.Files.MetaExtension) == "" {
		c.Files.MetaExtension = defaultMetaExtension
	}
	if strings.TrimSpace(c.Files.EITExtension) == "" {
		c.Files.EITExtension = defaultEITExtension
	}
	if len(c.Files.ComponentExtensions) == 0 {
		c.Files.ComponentExtensions = append([]string(nil), defaultComponentExtensions...)
	}
	if len(c.Files.DownloadExtensions) == 0 {
		c.Files.DownloadExtensions = append([]string(nil), defaultDownloadExtensions...)
	}
}

func (c *Config) normalizeLogging() {
	format := strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if format == "" {
		format = defaultLogFormat
	}
	c.Logging.Format = format

	level := strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if level == "" {
		level = defaultLogLevel
	}
	c.Logging.Level = level
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", nil
	}
	if trimmed == "~" || strings.HasPrefix(trimmed, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if trimmed == "~" {
			return home, nil
		}
		return filepath.Join(home, trimmed[2:]), nil
	}
	return filepath.Clean(trimmed), nil
}
