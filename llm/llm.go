package llm

import (
	"net/http"

	"github.com/bitrise-io/bitrise-plugins-ai-commit/common"
)

// OptionType defines the type of option
type OptionType string

// Available option types
const (
	APITimeoutOption OptionType = "api_timeout"
	HTTPClientOption OptionType = "http_client"
)

// Option represents a configuration option for the chat client
type Option struct {
	Type  OptionType
	Value any
}

// WithAPITimeout creates an option to set the API timeout in seconds, 0 disables it
func WithAPITimeout(timeout int) Option {
	return Option{
		Type:  APITimeoutOption,
		Value: timeout,
	}
}

// WithHTTPClient creates an option to replace the HTTP client
func WithHTTPClient(client *http.Client) Option {
	return Option{
		Type:  HTTPClientOption,
		Value: client,
	}
}

// NewFromSettings creates a client for the endpoint described by settings
func NewFromSettings(settings common.Settings, opts ...Option) (*Client, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	options := []Option{
		WithAPITimeout(settings.APITimeout),
	}
	options = append(options, opts...)

	return NewClient(settings.APIKey, options...)
}
