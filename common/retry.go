package common

import (
	"net/http"
	"time"

	"github.com/bitrise-io/bitrise-plugins-ai-commit/logger"
	"github.com/hashicorp/go-retryablehttp"
)

// HTTPConfig holds the transport configuration for the chat endpoint
type HTTPConfig struct {
	// Overall request timeout, zero keeps the transport default (no timeout)
	Timeout time.Duration
	// Maximum number of retries
	RetryMax int
}

// DefaultHTTPConfig returns an HTTPConfig that sends every request exactly once
func DefaultHTTPConfig() HTTPConfig {
	return HTTPConfig{
		RetryMax: 0,
	}
}

// NewHTTPClient creates the HTTP client used for the chat endpoint.
// Responses with any status are handed back to the caller unchanged.
func NewHTTPClient(config HTTPConfig) *http.Client {
	retryClient := retryablehttp.NewClient()

	retryClient.RetryMax = config.RetryMax
	retryClient.HTTPClient.Timeout = config.Timeout
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	logger.Debugf("Created HTTP client with max retries: %d, timeout: %s",
		config.RetryMax, config.Timeout)

	retryClient.Logger = &zapRetryLogger{}

	return retryClient.StandardClient()
}

// zapRetryLogger adapts our zap logger to the interface required by retryablehttp
type zapRetryLogger struct{}

func (z *zapRetryLogger) Error(msg string, keysAndValues ...interface{}) {
	logger.Sugar().Errorw(msg, keysAndValues...)
}

func (z *zapRetryLogger) Info(msg string, keysAndValues ...interface{}) {
	logger.Sugar().Infow(msg, keysAndValues...)
}

func (z *zapRetryLogger) Debug(msg string, keysAndValues ...interface{}) {
	logger.Sugar().Debugw(msg, keysAndValues...)
}

func (z *zapRetryLogger) Warn(msg string, keysAndValues ...interface{}) {
	logger.Sugar().Warnw(msg, keysAndValues...)
}
