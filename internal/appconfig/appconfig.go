// internal/appconfig/appconfig.go
// Package appconfig manages loading and interpreting application configuration.
package appconfig

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/xeipuuv/gojsonschema"
)

const (
	// DefaultConfigPath is the default path to the application's configuration file.
	DefaultConfigPath = "config/config.json"
	// defaultIterations is the number of timed invocations per test case.
	defaultIterations = 50
	// defaultTimeoutSeconds bounds a single compiler invocation.
	defaultTimeoutSeconds = 30
)

// Config represents the top-level application configuration.
type Config struct {
	CompilerPath   string       `json:"compilerPath"`
	CompilerArgs   []string     `json:"compilerArgs,omitempty"`
	Iterations     int          `json:"iterations"`
	TimeoutSeconds int          `json:"timeoutSeconds,omitempty"`
	WarmupRuns     int          `json:"warmupRuns,omitempty"`
	Cases          []CaseConfig `json:"cases,omitempty"`
	ExportPath     string       `json:"exportPath,omitempty"`
	LogFile        string       `json:"logFile,omitempty"`
	Debug          bool         `json:"debug"`
	ConfigPath     string       `json:"-"`
}

// CaseConfig describes one benchmark input supplied through the configuration.
// Source holds inline source text; File points at a file to read instead.
// Exactly one of the two must be set.
type CaseConfig struct {
	Name   string `json:"name"`
	Source string `json:"source,omitempty"`
	File   string `json:"file,omitempty"`
}

// IterationCount returns the configured iteration count, falling back to the default.
func (c Config) IterationCount() int {
	if c.Iterations <= 0 {
		return defaultIterations
	}
	return c.Iterations
}

// InvocationTimeout returns the per-invocation timeout duration.
func (c Config) InvocationTimeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return defaultTimeoutSeconds * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// LogFilePath returns the path to the application log file, or "" when file
// logging is disabled.
func (c Config) LogFilePath() string {
	return strings.TrimSpace(c.LogFile)
}

// configSchema describes the shape of a configuration document. It is applied
// to the merged configuration so that out-of-range flag values are rejected
// the same way as bad file contents.
var configSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"compilerPath":   map[string]any{"type": "string"},
		"compilerArgs":   map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
		"iterations":     map[string]any{"type": "integer", "minimum": 1},
		"timeoutSeconds": map[string]any{"type": "integer", "minimum": 1},
		"warmupRuns":     map[string]any{"type": "integer", "minimum": 0},
		"exportPath":     map[string]any{"type": "string"},
		"logFile":        map[string]any{"type": "string"},
		"debug":          map[string]any{"type": "boolean"},
		"cases": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":     "object",
				"required": []string{"name"},
				"properties": map[string]any{
					"name":   map[string]any{"type": "string", "minLength": 1},
					"source": map[string]any{"type": "string"},
					"file":   map[string]any{"type": "string"},
				},
			},
		},
	},
}

// Validate checks the configuration against the embedded JSON schema and the
// cross-field rules the schema cannot express.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New("configuration is nil")
	}

	schemaLoader := gojsonschema.NewGoLoader(configSchema)
	documentLoader := gojsonschema.NewGoLoader(cfg)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("validate config: %w", err)
	}
	if !result.Valid() {
		var issues []string
		for _, desc := range result.Errors() {
			issues = append(issues, desc.String())
		}
		return fmt.Errorf("invalid configuration: %s", strings.Join(issues, "; "))
	}

	for _, cc := range cfg.Cases {
		if cc.Source == "" && cc.File == "" {
			return fmt.Errorf("case %q must set either source or file", cc.Name)
		}
		if cc.Source != "" && cc.File != "" {
			return fmt.Errorf("case %q sets both source and file", cc.Name)
		}
	}

	return nil
}

// Load reads and validates the application configuration from the specified path.
func Load(path string) (Config, error) {
	if path == "" {
		path = DefaultConfigPath
	}

	config, err := loadFromPath(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("no configuration file found at %q", path)
		}
		return Config{}, fmt.Errorf("could not read config file %q: %w", path, err)
	}

	if err := Validate(&config); err != nil {
		return Config{}, err
	}
	config.ConfigPath = path
	return config, nil
}

// loadFromPath is a helper function that loads the configuration from a specific file path.
func loadFromPath(path string) (Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer file.Close()

	var config Config
	if err := json.NewDecoder(file).Decode(&config); err != nil {
		return Config{}, err
	}
	if config.TimeoutSeconds <= 0 {
		config.TimeoutSeconds = defaultTimeoutSeconds
	}
	if config.Iterations <= 0 {
		config.Iterations = defaultIterations
	}

	return config, nil
}
