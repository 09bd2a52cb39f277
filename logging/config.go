package logging

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoggerConfig holds logger configuration for a single process-wide logger.
//
// Adapted from the Fulmen logging standard: the original schema-validated,
// policy-enforced, multi-profile configuration is trimmed to the fields a
// library embedding a batch distance engine actually needs — a handful of
// sinks and static fields describing the run.
type LoggerConfig struct {
	DefaultLevel     string         `json:"defaultLevel" yaml:"defaultLevel"`
	Service          string         `json:"service" yaml:"service"`
	Component        string         `json:"component,omitempty" yaml:"component,omitempty"`
	Environment      string         `json:"environment" yaml:"environment"`
	Sinks            []SinkConfig   `json:"sinks" yaml:"sinks"`
	StaticFields     map[string]any `json:"staticFields,omitempty" yaml:"staticFields,omitempty"`
	EnableCaller     bool           `json:"enableCaller" yaml:"enableCaller"`
	EnableStacktrace bool           `json:"enableStacktrace" yaml:"enableStacktrace"`
}

// SinkConfig defines an output sink.
type SinkConfig struct {
	Type    string             `json:"type" yaml:"type"` // console, file
	Level   string             `json:"level,omitempty" yaml:"level,omitempty"`
	Format  string             `json:"format" yaml:"format"` // json, console
	Console *ConsoleSinkConfig `json:"console,omitempty" yaml:"console,omitempty"`
	File    *FileSinkConfig    `json:"file,omitempty" yaml:"file,omitempty"`
}

// ConsoleSinkConfig configures console output.
type ConsoleSinkConfig struct {
	Stream   string `json:"stream" yaml:"stream"` // must be "stderr"
	Colorize bool   `json:"colorize" yaml:"colorize"`
}

// FileSinkConfig configures file output with rotation via lumberjack.
type FileSinkConfig struct {
	Path       string `json:"path" yaml:"path"`
	MaxSize    int    `json:"maxSize" yaml:"maxSize"`       // MB
	MaxAge     int    `json:"maxAge" yaml:"maxAge"`         // days
	MaxBackups int    `json:"maxBackups" yaml:"maxBackups"` // number of old files to keep
	Compress   bool   `json:"compress" yaml:"compress"`
}

// DefaultConfig returns a minimal configuration for the given service name:
// one console-format sink on stderr at INFO.
func DefaultConfig(service string) *LoggerConfig {
	return &LoggerConfig{
		DefaultLevel: "INFO",
		Service:      service,
		Environment:  "development",
		Sinks: []SinkConfig{
			{
				Type:   "console",
				Format: "console",
				Console: &ConsoleSinkConfig{
					Stream:   "stderr",
					Colorize: false,
				},
			},
		},
		StaticFields: make(map[string]any),
	}
}

// LoadConfig loads a logger configuration from a JSON or YAML file.
func LoadConfig(path string) (*LoggerConfig, error) {
	// #nosec G304 -- intentional user-controlled file access for loading logger configuration from a caller-specified path
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var jsonData []byte
	if isYAML(path) {
		var yamlContent any
		if err := yaml.Unmarshal(data, &yamlContent); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
		jsonData, err = json.Marshal(yamlContent)
		if err != nil {
			return nil, fmt.Errorf("failed to convert YAML to JSON: %w", err)
		}
	} else {
		jsonData = data
	}

	var config LoggerConfig
	if err := json.Unmarshal(jsonData, &config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&config)

	if err := validateConsoleSinks(config.Sinks); err != nil {
		return nil, fmt.Errorf("sink validation failed: %w", err)
	}

	return &config, nil
}

func applyDefaults(config *LoggerConfig) {
	if config.DefaultLevel == "" {
		config.DefaultLevel = "INFO"
	}
	if config.Environment == "" {
		config.Environment = "development"
	}
	if config.StaticFields == nil {
		config.StaticFields = make(map[string]any)
	}

	for i := range config.Sinks {
		sink := &config.Sinks[i]
		if sink.Format == "" {
			sink.Format = "json"
		}
		if sink.Type == "console" && sink.Console == nil {
			sink.Console = &ConsoleSinkConfig{Stream: "stderr", Colorize: false}
		}
	}
}

// validateConsoleSinks ensures console sinks only write to stderr, keeping
// stdout free for the caller's own data output (e.g. a pairwise result vector).
func validateConsoleSinks(sinks []SinkConfig) error {
	for _, sink := range sinks {
		if sink.Type == "console" && sink.Console != nil && sink.Console.Stream != "" && sink.Console.Stream != "stderr" {
			return fmt.Errorf("console sink must use stderr (stdout is reserved for results), got: %s", sink.Console.Stream)
		}
	}
	return nil
}

func isYAML(path string) bool {
	return strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml")
}
