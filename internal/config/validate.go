package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateFiles(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validatePaths() error {
	if strings.TrimSpace(c.Paths.DataDir) == "" {
		return errors.New("paths.data_dir must be set")
	}
	if len(c.Paths.RecordingDirs) == 0 && len(c.Paths.DownloadDirs) == 0 {
		return errors.New("at least one of paths.recording_dirs or paths.download_dirs must be set")
	}
	return nil
}

func (c *Config) validateFiles() error {
	for _, ext := range append([]string{c.Files.VideoExtension, c.Files.MetaExtension, c.Files.EITExtension},
		append(c.Files.ComponentExtensions, c.Files.DownloadExtensions...)...) {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("file extension %q must start with a dot", ext)
		}
	}
	found := false
	for _, ext := range c.Files.ComponentExtensions {
		if ext == c.Files.VideoExtension {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("files.component_extensions must include the video extension %q", c.Files.VideoExtension)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
