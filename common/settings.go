package common

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/bitrise-io/bitrise-plugins-ai-commit/logger"
	"gopkg.in/yaml.v3"
)

const (
	DefaultBaseURL    = "https://api.openai.com/v1"
	DefaultModel      = "gpt-4o-mini"
	DefaultMaxTokens  = 256
	DefaultLanguage   = "en-US"

	// TemplateMarker is replaced by the staged diff in the user template
	TemplateMarker = "{}"

	appName = "ai-commit"
)

// ConfigFileNames are looked up, in order, in the working directory
var ConfigFileNames = []string{".ai-commit.yml", ".ai-commit.yaml", ".ai-commit.toml"}

var userConfigFileNames = []string{"config.yml", "config.yaml", "config.toml"}

type Prompts struct {
	System       string `yaml:"system" toml:"system"`
	UserTemplate string `yaml:"user_template" toml:"user_template"`
	Slides       string `yaml:"slides" toml:"slides"`
}

type Settings struct {
	APIKey     string   `yaml:"api_key" toml:"api_key"`
	BaseURL    string   `yaml:"base_url" toml:"base_url"`
	Model      string   `yaml:"model" toml:"model"`
	MaxTokens  int      `yaml:"max_tokens" toml:"max_tokens"`
	APITimeout int      `yaml:"api_timeout" toml:"api_timeout"` // in seconds, 0 keeps the transport default
	Language   string   `yaml:"language" toml:"language"`
	Exclude    []string `yaml:"exclude" toml:"exclude"`
	Prompts    Prompts  `yaml:"prompts" toml:"prompts"`

	// Path of the file the settings were read from, empty for defaults
	Source string `yaml:"-" toml:"-"`
}

func WithDefaultSettings() Settings {
	return Settings{
		BaseURL:    DefaultBaseURL,
		Model:      DefaultModel,
		MaxTokens:  DefaultMaxTokens,
		Language:   DefaultLanguage,
	}
}

// LoadSettings reads settings from path, or from the first config file found
// when path is empty, and applies environment overrides on top.
// Values missing from the file keep their defaults.
func LoadSettings(path string) (Settings, error) {
	settings := WithDefaultSettings()

	if path == "" {
		path = findConfigFile()
	}

	if path != "" {
		if err := decodeFile(path, &settings); err != nil {
			return settings, WrapError(InvalidConfiguration, fmt.Sprintf("failed to read configuration file %s", path), err)
		}
		settings.Source = path
		logger.Infof("Using settings from file: %s", path)
	} else {
		logger.Debug("No configuration file found. Using default settings.")
	}

	applyEnv(&settings)

	return settings, nil
}

func decodeFile(path string, settings *Settings) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		_, err = toml.Decode(string(data), settings)
		return err
	}

	return yaml.Unmarshal(data, settings)
}

func findConfigFile() string {
	for _, name := range ConfigFileNames {
		if info, err := os.Stat(name); err == nil && !info.IsDir() {
			return name
		}
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}

	for _, name := range userConfigFileNames {
		candidate := filepath.Join(dir, appName, name)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}
	}

	return ""
}

func applyEnv(settings *Settings) {
	if key := os.Getenv("LLM_API_KEY"); key != "" {
		if settings.APIKey != "" && settings.APIKey != key {
			logger.Warnf("LLM_API_KEY overrides api_key from %s", settings.Source)
		}
		settings.APIKey = key
	} else if key := os.Getenv("OPENAI_API_KEY"); key != "" && settings.APIKey == "" {
		logger.Debug("LLM_API_KEY is not set, using OPENAI_API_KEY")
		settings.APIKey = key
	}

	if baseURL := os.Getenv("LLM_BASE_URL"); baseURL != "" {
		if settings.BaseURL != DefaultBaseURL && settings.BaseURL != baseURL {
			logger.Warnf("LLM_BASE_URL overrides base_url %s from %s", settings.BaseURL, settings.Source)
		}
		settings.BaseURL = baseURL
	}

	if model := os.Getenv("LLM_MODEL"); model != "" {
		settings.Model = model
	}
}

// Validate checks the settings needed to talk to the chat endpoint
func (s Settings) Validate() error {
	switch {
	case s.APIKey == "":
		return NewError(InvalidConfiguration, "no API key configured, set LLM_API_KEY or api_key in the configuration file")
	case s.BaseURL == "":
		return NewError(InvalidConfiguration, "base_url cannot be empty")
	case s.Model == "":
		return NewError(InvalidConfiguration, "model cannot be empty")
	case s.MaxTokens <= 0:
		return NewError(InvalidConfiguration, fmt.Sprintf("max_tokens must be positive, got %d", s.MaxTokens))
	case s.APITimeout < 0:
		return NewError(InvalidConfiguration, fmt.Sprintf("api_timeout cannot be negative, got %d", s.APITimeout))
	case s.Prompts.UserTemplate != "" && !strings.Contains(s.Prompts.UserTemplate, TemplateMarker):
		return NewError(InvalidConfiguration, fmt.Sprintf("prompts.user_template must contain the %s marker", TemplateMarker))
	}

	return nil
}
