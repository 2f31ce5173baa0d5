// Package config defines the application configuration for labstreams
// services: dictionary namespace selection, recording options, export
// destinations, NATS event intake, and the metrics endpoint.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/opcua-lads/labstreams/dictionary"
	"github.com/opcua-lads/labstreams/errors"
)

// Config represents the complete application configuration.
type Config struct {
	Dictionary DictionaryConfig `json:"dictionary"`
	Recording  RecordingConfig  `json:"recording"`
	Export     ExportConfig     `json:"export"`
	NATS       NATSConfig       `json:"nats"`
	Metrics    MetricsConfig    `json:"metrics"`
}

// DictionaryConfig selects the semantic dictionary namespace.
type DictionaryConfig struct {
	// NamespaceURI is the namespace probed on first catalog use.
	NamespaceURI string `json:"namespace_uri"`
}

// RecordingConfig holds track-derivation options.
type RecordingConfig struct {
	// ShortTrackNames abbreviates well-known value names (PV/SP). Off by
	// default; see recorder.TrackOptions.
	ShortTrackNames bool `json:"short_track_names"`
}

// ExportConfig holds artifact-destination settings.
type ExportConfig struct {
	// Directory receives export artifacts. Created when missing.
	Directory string `json:"directory"`
	// WorkbookName is the spreadsheet artifact file name.
	WorkbookName string `json:"workbook_name"`
	// ReportName is the JSON artifact file name.
	ReportName string `json:"report_name"`
}

// NATSConfig holds the optional broker-backed event intake.
type NATSConfig struct {
	Enabled bool `json:"enabled"`
	// URL is the NATS server URL.
	URL string `json:"url"`
	// EventSubject carries JSON-encoded device events.
	EventSubject string `json:"event_subject"`
}

// MetricsConfig holds the Prometheus endpoint settings.
type MetricsConfig struct {
	Enabled bool   `json:"enabled"`
	Addr    string `json:"addr"`
	Path    string `json:"path"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Dictionary: DictionaryConfig{
			NamespaceURI: dictionary.DefaultNamespaceURI,
		},
		Recording: RecordingConfig{
			ShortTrackNames: false,
		},
		Export: ExportConfig{
			Directory:    "/var/lib/labstreams/reports",
			WorkbookName: "report.xlsx",
			ReportName:   "report.json",
		},
		NATS: NATSConfig{
			Enabled:      false,
			URL:          "nats://localhost:4222",
			EventSubject: "device.events",
		},
		Metrics: MetricsConfig{
			Enabled: false,
			Addr:    ":9090",
			Path:    "/metrics",
		},
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Dictionary.NamespaceURI == "" {
		return errors.WrapInvalid(errors.ErrInvalidConfig, "Config", "Validate",
			"dictionary.namespace_uri is required")
	}
	if c.Export.Directory == "" {
		return errors.WrapInvalid(errors.ErrInvalidConfig, "Config", "Validate",
			"export.directory is required")
	}
	if c.Export.WorkbookName == "" || c.Export.ReportName == "" {
		return errors.WrapInvalid(errors.ErrInvalidConfig, "Config", "Validate",
			"export artifact names are required")
	}
	if strings.ContainsAny(c.Export.WorkbookName, "/\\") ||
		strings.ContainsAny(c.Export.ReportName, "/\\") {
		return errors.WrapInvalid(errors.ErrInvalidConfig, "Config", "Validate",
			"export artifact names must not contain path separators")
	}
	if c.NATS.Enabled {
		if c.NATS.URL == "" {
			return errors.WrapInvalid(errors.ErrMissingConfig, "Config", "Validate",
				"nats.url is required when nats is enabled")
		}
		if c.NATS.EventSubject == "" {
			return errors.WrapInvalid(errors.ErrMissingConfig, "Config", "Validate",
				"nats.event_subject is required when nats is enabled")
		}
	}
	if c.Metrics.Enabled && c.Metrics.Addr == "" {
		return errors.WrapInvalid(errors.ErrMissingConfig, "Config", "Validate",
			"metrics.addr is required when metrics are enabled")
	}
	return nil
}

// Load reads a JSON configuration file, layered over the defaults, and
// validates the result.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.WrapFatal(err, "Config", "Load", "reading config file")
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.WrapInvalid(
			fmt.Errorf("parsing %s: %w", path, err),
			"Config", "Load", "decoding config file")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
