package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	// ConfigEnvVar points to an explicit configuration file, bypassing auto-detection.
	ConfigEnvVar = "DEPMETA_CONFIG"

	defaultConcurrency = 4
	defaultServerAddr  = ":8080"
	defaultOutput      = "json"
)

// Settings is the top-level configuration for depmeta.
type Settings struct {
	Concurrency int              `yaml:"concurrency"` // Max dependency entries enriched at once
	Output      string           `yaml:"output"`      // "json", "yaml" or "table"
	Advisories  AdvisoryConfig   `yaml:"advisories"`
	Scores      ScoreTableConfig `yaml:"scores"`
	Server      ServerConfig     `yaml:"server"`
}

// AdvisoryConfig locates the offline OSV advisory documents.
type AdvisoryConfig struct {
	Path string `yaml:"path"` // Directory of *.json files or a single JSON file; empty disables lookups
}

// ScoreTableConfig locates the offline compatibility score table.
type ScoreTableConfig struct {
	Path string `yaml:"path"` // YAML file; empty disables scoring
}

// ServerConfig holds the HTTP listener settings for the serve command.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// NewDefaultSettings returns the settings used when no configuration file exists.
func NewDefaultSettings() *Settings {
	return &Settings{
		Concurrency: defaultConcurrency,
		Output:      defaultOutput,
		Server:      ServerConfig{Addr: defaultServerAddr},
	}
}

// NewSettings reads and parses a configuration file, expanding environment variables
// in every path and filling defaults for omitted values.
func NewSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	settings := NewDefaultSettings()
	if unmarshalErr := yaml.Unmarshal(data, settings); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	settings.Advisories.Path = expandEnv(settings.Advisories.Path)
	settings.Scores.Path = expandEnv(settings.Scores.Path)
	settings.Server.Addr = expandEnv(settings.Server.Addr)

	if validateErr := validate(settings); validateErr != nil {
		return nil, validateErr
	}

	return settings, nil
}

// NewSettingsFromEnvironment loads the file named by DEPMETA_CONFIG, or the first
// auto-detected configuration file, or falls back to defaults when there is none.
func NewSettingsFromEnvironment() (*Settings, error) {
	path := os.Getenv(ConfigEnvVar)
	if path == "" {
		found, err := FindConfigFile()
		if err != nil {
			logger.Debugf("No config file found, using defaults: %v", err)
			return NewDefaultSettings(), nil
		}
		path = found
	}

	logger.Debugf("Using config file: %s", path)
	return NewSettings(path)
}

// FindConfigFile searches for a configuration file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
		"configs",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".depmeta.yaml",
		".depmeta.yml",
		"depmeta.yaml",
		"depmeta.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

// expandEnv replaces ${ENV_VAR} references with their values.
func expandEnv(raw string) string {
	if raw == "" {
		return raw
	}

	return envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})
}

// validate checks for out-of-range configuration values.
func validate(settings *Settings) error {
	if settings.Concurrency < 1 {
		return fmt.Errorf("concurrency must be at least 1, got %d", settings.Concurrency)
	}

	switch settings.Output {
	case "json", "yaml", "table":
	default:
		return fmt.Errorf("output must be one of json, yaml or table, got %q", settings.Output)
	}

	return nil
}
