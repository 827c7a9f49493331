package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/bitrise-io/bitrise-plugins-ai-commit/common"
	"github.com/bitrise-io/bitrise-plugins-ai-commit/logger"
	"github.com/sashabaranov/go-openai"
)

// Client sends chat requests to an OpenAI compatible endpoint
type Client struct {
	httpClient *http.Client
	apiKey     string
}

// candidateList is the part of the chat response we read.
// Content is a pointer so a null content can be told apart from an empty one.
type candidateList struct {
	Choices []struct {
		Message struct {
			Content *string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// NewClient creates a new chat client authenticating with apiKey
func NewClient(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		errMsg := "API key cannot be empty"
		logger.Error(errMsg)
		return nil, common.NewError(common.InvalidConfiguration, errMsg)
	}

	httpConfig := common.DefaultHTTPConfig()
	var httpClient *http.Client

	// Apply options
	for _, opt := range opts {
		switch opt.Type {
		case APITimeoutOption:
			if timeout, ok := opt.Value.(int); ok {
				httpConfig.Timeout = time.Duration(timeout) * time.Second
			}
		case HTTPClientOption:
			if client, ok := opt.Value.(*http.Client); ok {
				httpClient = client
			}
		}
	}

	if httpClient == nil {
		httpClient = common.NewHTTPClient(httpConfig)
	}

	return &Client{
		httpClient: httpClient,
		apiKey:     apiKey,
	}, nil
}

// Complete posts req to the profile's endpoint and returns the extracted
// content of the first candidate. Every call sends a new request.
func (c *Client) Complete(ctx context.Context, profile Profile, baseURL string, req openai.ChatCompletionRequest) (string, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return "", common.WrapError(common.RequestConstructionFailed, "failed to construct the request payload", err)
	}

	endpoint := profile.Endpoint(baseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", common.WrapError(common.RequestConstructionFailed, "failed to construct the request", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	logger.Infof("Sending %s request to %s with model %s, max tokens %d",
		profile.Kind(), endpoint, req.Model, req.MaxTokens)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", common.WrapError(common.TransportFailed, "failed to send the request to the API provider", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", common.WrapError(common.TransportFailed, "failed to read the response from the API provider", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", common.WrapError(common.TransportFailed, "the API provider rejected the request", statusError(resp, body))
	}

	var candidates candidateList
	if err := json.Unmarshal(body, &candidates); err != nil {
		return "", common.WrapError(common.TransportFailed, "failed to parse the response from the API provider", err)
	}

	// Only the first candidate is used
	if len(candidates.Choices) == 0 {
		return "", common.NewError(common.NoCandidates, "the API provider returned no candidates")
	}

	content := candidates.Choices[0].Message.Content
	if content == nil {
		return "", common.NewError(common.NoCandidates, "the first candidate has no message content")
	}

	logger.Debug("LLM Response:")
	logger.Debug(*content)

	return profile.Extract(*content)
}

// statusError describes a non-success response, preferring the provider's error envelope
func statusError(resp *http.Response, body []byte) error {
	var errResp openai.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != nil {
		errResp.Error.HTTPStatusCode = resp.StatusCode
		errResp.Error.HTTPStatus = resp.Status
		return errResp.Error
	}

	text := strings.TrimSpace(string(body))
	if text == "" {
		return fmt.Errorf("status %s", resp.Status)
	}
	return fmt.Errorf("status %s: %s", resp.Status, text)
}
