package utils

import (
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

type Config struct {
	eventsDir string
	siteDir   string
	port      string

	location        *time.Location
	rebuildInterval time.Duration
}

func NewConfig() *Config {
	return &Config{
		eventsDir: func() string {
			eventsDir := os.Getenv("EVENTS_DIR")
			if eventsDir == "" {
				eventsDir = "events"
			}
			slog.Debug("env", "EVENTS_DIR", eventsDir)
			return filepath.Clean(eventsDir)
		}(),

		siteDir: func() string {
			siteDir := os.Getenv("SITE_DIR")
			if siteDir == "" {
				siteDir = "."
			}
			info, err := os.Stat(siteDir)
			if err != nil {
				slog.Error("can't get info of SITE_DIR", "error", err)
				os.Exit(1)
			}
			if !info.IsDir() {
				slog.Error("SITE_DIR is not a directory", "dir", siteDir)
				os.Exit(1)
			}
			slog.Debug("env", "SITE_DIR", siteDir)
			return filepath.Clean(siteDir)
		}(),

		port: func() string {
			port := os.Getenv("PORT")
			if port == "" {
				port = "8000"
			}
			slog.Debug("env", "PORT", port)
			return port
		}(),

		location: func() *time.Location {
			timezoneStr := os.Getenv("TIMEZONE")
			var loc *time.Location
			var err error
			switch timezoneStr {
			case "":
				slog.Warn("TIMEZONE is not set, using local timezone", "timezone", time.Local)
				loc = time.Local
			case "UTC":
				loc = time.UTC
			default:
				loc, err = time.LoadLocation(timezoneStr)
				if err != nil {
					slog.Error("invalid timezone", "timezone", timezoneStr, "error", err)
					os.Exit(1)
				}
			}
			slog.Debug("env", "TIMEZONE", timezoneStr)
			return loc
		}(),

		rebuildInterval: func() time.Duration {
			rebuildInterval := os.Getenv("REBUILD_INTERVAL")
			if rebuildInterval == "" {
				rebuildInterval = "5m"
			}
			duration, err := time.ParseDuration(rebuildInterval)
			if err != nil {
				slog.Error("invalid REBUILD_INTERVAL", "error", err)
				os.Exit(1)
			}
			slog.Debug("env", "REBUILD_INTERVAL", rebuildInterval, "duration", duration)
			return duration
		}(),
	}
}

// Get EVENTS_DIR env, default to "events"
func (c *Config) GetEventsDir() string {
	return c.eventsDir
}

// Get SITE_DIR env, default to the working directory
func (c *Config) GetSiteDir() string {
	return c.siteDir
}

// Get PORT env, default to 8000
func (c *Config) GetPort() string {
	return c.port
}

// Get TIMEZONE env
func (c *Config) GetLocation() *time.Location {
	return c.location
}

// Get REBUILD_INTERVAL env, default to 5m
func (c *Config) GetRebuildInterval() time.Duration {
	return c.rebuildInterval
}
