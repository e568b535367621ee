package xdisplay

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/xdisplay/internal/env"
	"github.com/viant/xdisplay/service/naming"
	"gopkg.in/yaml.v3"
)

// Store vendors.
const (
	StoreMemory = "memory"
	StoreFS     = "fs"
)

// Config is a serialisable representation of the service configuration.
// Fields left out of a loaded document keep their DefaultConfig values.
type Config struct {
	// Display is returned for screens without their own name.
	Display string `json:"display" yaml:"display"`
	// Marker is stored when a screen name is set to an empty value.
	Marker string `json:"marker" yaml:"marker"`
	// AutoNameTemplate must hold exactly one integer verb.
	AutoNameTemplate string `json:"autoNameTemplate" yaml:"autoNameTemplate"`
	// NameBufferSize bounds generated names; the result holds at most NameBufferSize-1 bytes.
	NameBufferSize int `json:"nameBufferSize" yaml:"nameBufferSize"`
	// AutoName names screens from their index when they are added.
	AutoName bool          `json:"autoName" yaml:"autoName"`
	Store    StoreConfig   `json:"store" yaml:"store"`
	Events   EventsConfig  `json:"events" yaml:"events"`
	Tracing  TracingConfig `json:"tracing" yaml:"tracing"`
	Log      LogConfig     `json:"log" yaml:"log"`
}

type StoreConfig struct {
	Vendor  string `json:"vendor" yaml:"vendor"`
	BaseURL string `json:"baseURL" yaml:"baseURL"`
}

type EventsConfig struct {
	QueueBuffer int `json:"queueBuffer" yaml:"queueBuffer"`
}

type TracingConfig struct {
	Enabled     bool   `json:"enabled" yaml:"enabled"`
	ServiceName string `json:"serviceName" yaml:"serviceName"`
	OutputFile  string `json:"outputFile" yaml:"outputFile"`
}

type LogConfig struct {
	// Level is one of debug, info, warn, error or none.
	Level string `json:"level" yaml:"level"`
}

// DefaultConfig returns the configuration used when none is supplied.
func DefaultConfig() *Config {
	return &Config{
		Display:          naming.DefaultDisplay,
		Marker:           naming.DefaultMarker,
		AutoNameTemplate: naming.DefaultTemplate,
		NameBufferSize:   naming.DefaultBufferSize,
		Store:            StoreConfig{Vendor: StoreMemory},
		Events:           EventsConfig{QueueBuffer: 100},
		Tracing:          TracingConfig{ServiceName: "xdisplay"},
		Log:              LogConfig{Level: "info"},
	}
}

// Validate returns all configuration problems joined, or nil.
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}
	var errs []error
	if c.Display == "" {
		errs = append(errs, fmt.Errorf("display must not be empty"))
	}
	if c.Marker == "" {
		errs = append(errs, fmt.Errorf("marker must not be empty"))
	}
	if !isIndexTemplate(c.AutoNameTemplate) {
		errs = append(errs, fmt.Errorf("autoNameTemplate %q must hold exactly one integer verb", c.AutoNameTemplate))
	}
	if c.NameBufferSize < 2 {
		errs = append(errs, fmt.Errorf("nameBufferSize must be >= 2, got %d", c.NameBufferSize))
	}
	switch c.Store.Vendor {
	case StoreMemory:
	case StoreFS:
		if c.Store.BaseURL == "" {
			errs = append(errs, fmt.Errorf("store.baseURL is required for the fs vendor"))
		}
	default:
		errs = append(errs, fmt.Errorf("unsupported store vendor: %q", c.Store.Vendor))
	}
	if c.Events.QueueBuffer < 0 {
		errs = append(errs, fmt.Errorf("events.queueBuffer must be >= 0"))
	}
	if _, ok := logLevels[c.Log.Level]; !ok {
		errs = append(errs, fmt.Errorf("unsupported log level: %q", c.Log.Level))
	}
	return errors.Join(errs...)
}

// isIndexTemplate reports whether template formats exactly one integer: an int
// must format cleanly while a bool must be rejected, which rules out %v.
func isIndexTemplate(template string) bool {
	if template == "" {
		return false
	}
	if strings.Contains(fmt.Sprintf(template, 0), "%!") {
		return false
	}
	return strings.Contains(fmt.Sprintf(template, true), "%!")
}

// LoadConfig reads a YAML configuration from any afs supported URL.
// ${env.NAME} expressions are expanded before decoding.
func LoadConfig(ctx context.Context, URL string) (*Config, error) {
	data, err := afs.New().DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to load config from %s: %w", URL, err)
	}
	cfg := DefaultConfig()
	if err = yaml.Unmarshal([]byte(env.Expand(string(data))), cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", URL, err)
	}
	if err = cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", URL, err)
	}
	return cfg, nil
}
