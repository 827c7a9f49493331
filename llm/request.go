package llm

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/bitrise-io/bitrise-plugins-ai-commit/common"
	"github.com/bitrise-io/bitrise-plugins-ai-commit/logger"
	"github.com/bitrise-io/bitrise-plugins-ai-commit/prompt"
	"github.com/sashabaranov/go-openai"
)

// BuildCommitRequest creates the chat request asking for a commit message for diff.
// The diff is sent in full, max tokens only bounds the reply.
func BuildCommitRequest(settings common.Settings, diff string) (openai.ChatCompletionRequest, error) {
	logger.Debug("Adding system prompt to the commit request")
	systemPrompt := prompt.GetCommitSystemPrompt(settings)
	logger.Debug(systemPrompt)

	logger.Debug("Adding user prompt to the commit request")
	userPrompt := prompt.GetDiffPrompt(settings, diff)
	logger.Debug(userPrompt)

	return newRequest(settings, []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
		{Role: openai.ChatMessageRoleUser, Content: userPrompt},
	})
}

// BuildSummaryRequest creates the chat request asking for one summary of documents.
// Each document becomes its own user message, in the given order.
// Empty or whitespace-only documents are rejected.
func BuildSummaryRequest(settings common.Settings, documents []string) (openai.ChatCompletionRequest, error) {
	if len(documents) == 0 {
		return openai.ChatCompletionRequest{}, common.NewError(common.RequestConstructionFailed, "no documents to summarize")
	}

	messages := make([]openai.ChatCompletionMessage, 0, len(documents)+1)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: prompt.GetSlidesPrompt(settings),
	})

	for i, document := range documents {
		if strings.TrimSpace(document) == "" {
			return openai.ChatCompletionRequest{}, common.NewError(common.RequestConstructionFailed,
				fmt.Sprintf("document %d is empty", i+1))
		}

		logger.Debugf("Adding document %d (%d bytes) to the summary request", i+1, len(document))
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleUser,
			Content: document,
		})
	}

	return newRequest(settings, messages)
}

func newRequest(settings common.Settings, messages []openai.ChatCompletionMessage) (openai.ChatCompletionRequest, error) {
	if settings.Model == "" {
		return openai.ChatCompletionRequest{}, common.NewError(common.RequestConstructionFailed, "model cannot be empty")
	}

	if settings.MaxTokens <= 0 {
		return openai.ChatCompletionRequest{}, common.NewError(common.RequestConstructionFailed,
			fmt.Sprintf("max tokens must be positive, got %d", settings.MaxTokens))
	}

	for i, message := range messages {
		if !utf8.ValidString(message.Content) {
			return openai.ChatCompletionRequest{}, common.NewError(common.RequestConstructionFailed,
				fmt.Sprintf("message %d (%s) is not valid UTF-8 text", i, message.Role))
		}
	}

	return openai.ChatCompletionRequest{
		Model:     settings.Model,
		MaxTokens: settings.MaxTokens,
		Messages:  messages,
	}, nil
}
